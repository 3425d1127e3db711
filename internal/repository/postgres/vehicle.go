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

type vehicleRepository struct {
	db DBTX
}

func NewVehicleRepository(db DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, owner_id, license_plate, COALESCE(description, ''), price, is_rented, year, COALESCE(insurance, ''), mortgage, COALESCE(image_path, ''), created_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (owner_id, license_plate, description, price, is_rented, year, insurance, mortgage, image_path, created_on)
	          VALUES ($1, $2, $3, $4, FALSE, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, v.OwnerID, v.LicensePlate, v.Description, v.Price, v.Year, v.Insurance, v.Mortgage, v.ImagePath, time.Now()).Scan(&v.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("license plate %s is already registered", v.LicensePlate)
	}
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *vehicleRepository) GetByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error) {
	return r.getOne(ctx, `WHERE license_plate = $1`, licensePlate)
}

func (r *vehicleRepository) getOne(ctx context.Context, where string, arg interface{}) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var createdOn time.Time
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&v.ID, &v.OwnerID, &v.LicensePlate, &v.Description, &v.Price, &v.IsRented, &v.Year, &v.Insurance, &v.Mortgage, &v.ImagePath, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("vehicle does not exist")
	}
	if err != nil {
		return nil, err
	}
	v.CreatedOn = createdOn.Format("2006-01-02")
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET description=$1, price=$2, year=$3, insurance=$4, mortgage=$5, image_path=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, v.Description, v.Price, v.Year, v.Insurance, v.Mortgage, v.ImagePath, v.ID)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.NotFoundf("vehicle does not exist")
	}
	return nil
}

func (r *vehicleRepository) ListAvailable(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return r.list(ctx, `WHERE is_rented = FALSE`, nil, page, pageSize)
}

func (r *vehicleRepository) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return r.list(ctx, `WHERE owner_id = $1`, []interface{}{ownerID}, page, pageSize)
}

func (r *vehicleRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM vehicles ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT %s FROM vehicles %s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`,
		vehicleColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		var createdOn time.Time
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.LicensePlate, &v.Description, &v.Price, &v.IsRented, &v.Year, &v.Insurance, &v.Mortgage, &v.ImagePath, &createdOn); err != nil {
			return nil, 0, err
		}
		v.CreatedOn = createdOn.Format("2006-01-02")
		vehicles = append(vehicles, v)
	}
	return vehicles, count, rows.Err()
}

func (r *vehicleRepository) MarkRented(ctx context.Context, licensePlate string) (bool, error) {
	return r.toggle(ctx, licensePlate, true)
}

func (r *vehicleRepository) MarkAvailable(ctx context.Context, licensePlate string) (bool, error) {
	return r.toggle(ctx, licensePlate, false)
}

// toggle is a conditional single-statement update so that two concurrent
// bookings of the same vehicle serialize on the row: the loser sees zero rows
// affected, never a corrupted flag.
func (r *vehicleRepository) toggle(ctx context.Context, licensePlate string, rented bool) (bool, error) {
	query := `UPDATE vehicles SET is_rented = $1 WHERE license_plate = $2 AND is_rented = $3`
	res, err := r.db.ExecContext(ctx, query, rented, licensePlate, !rented)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected == 1, nil
}
