package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type bookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, customer_id, license_plate, booking_start, booking_end, booking_status, total_price, has_driver, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (customer_id, license_plate, booking_start, booking_end, booking_status, total_price, has_driver, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.CustomerID, b.LicensePlate, b.BookingStart, b.BookingEnd, b.Status, b.TotalPrice, b.HasDriver, now, now).Scan(&b.ID, &b.CreatedOn)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.CustomerID, &b.LicensePlate, &b.BookingStart, &b.BookingEnd, &b.Status, &b.TotalPrice, &b.HasDriver, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking does not exist")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET booking_status = $1, updated_on = $2 WHERE id = $3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("booking does not exist")
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("booking does not exist")
	}
	return nil
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	where := `FROM bookings WHERE customer_id = $1`
	return r.list(ctx, where, []interface{}{customerID}, page, pageSize)
}

// ListByOwner replaces the naive plate-set intersection with an indexed join
// against the owner's vehicles.
func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	where := `FROM bookings JOIN vehicles ON vehicles.license_plate = bookings.license_plate WHERE vehicles.owner_id = $1`
	return r.list(ctx, where, []interface{}{ownerID}, page, pageSize)
}

func (r *bookingRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error) {
	return r.list(ctx, `FROM bookings`, nil, page, pageSize)
}

func (r *bookingRepository) list(ctx context.Context, fromWhere string, args []interface{}, page, pageSize int32) ([]domain.Booking, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) `+fromWhere, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	cols := `bookings.id, bookings.customer_id, bookings.license_plate, bookings.booking_start, bookings.booking_end, bookings.booking_status, bookings.total_price, bookings.has_driver, bookings.created_on, bookings.updated_on`
	query := fmt.Sprintf(`SELECT %s %s ORDER BY bookings.created_on DESC LIMIT $%d OFFSET $%d`,
		cols, fromWhere, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.LicensePlate, &b.BookingStart, &b.BookingEnd, &b.Status, &b.TotalPrice, &b.HasDriver, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, count, rows.Err()
}
