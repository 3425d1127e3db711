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

type bookingDetailRepository struct {
	db DBTX
}

func NewBookingDetailRepository(db DBTX) repository.BookingDetailRepository {
	return &bookingDetailRepository{db: db}
}

func (r *bookingDetailRepository) Create(ctx context.Context, d *domain.BookingDetail) error {
	query := `INSERT INTO booking_details (booking_id, customer_name, customer_email, customer_phone, address, license_plate, is_paid, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, d.BookingID, d.CustomerName, d.CustomerEmail, d.CustomerPhone, d.Address, d.LicensePlate, d.IsPaid, time.Now()).Scan(&d.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("booking %d already has a detail record", d.BookingID)
	}
	return err
}

func (r *bookingDetailRepository) GetByBookingID(ctx context.Context, bookingID int32) (*domain.BookingDetail, error) {
	d := &domain.BookingDetail{}
	var createdOn time.Time
	query := `SELECT id, booking_id, customer_name, customer_email, COALESCE(customer_phone, ''), COALESCE(address, ''), license_plate, is_paid, created_on
	          FROM booking_details WHERE booking_id = $1`
	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(&d.ID, &d.BookingID, &d.CustomerName, &d.CustomerEmail, &d.CustomerPhone, &d.Address, &d.LicensePlate, &d.IsPaid, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking detail does not exist")
	}
	if err != nil {
		return nil, err
	}
	d.CreatedOn = createdOn.Format("2006-01-02")
	return d, nil
}

func (r *bookingDetailRepository) MarkPaid(ctx context.Context, bookingID int32) error {
	res, err := r.db.ExecContext(ctx, `UPDATE booking_details SET is_paid = TRUE WHERE booking_id = $1`, bookingID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("booking detail does not exist")
	}
	return nil
}

func (r *bookingDetailRepository) DeleteByBookingID(ctx context.Context, bookingID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM booking_details WHERE booking_id = $1`, bookingID)
	return err
}
