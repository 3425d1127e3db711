package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
)

func TestVehicleRepository_GetByLicensePlate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "owner_id", "license_plate", "description", "price", "is_rented", "year", "insurance", "mortgage", "image_path", "created_on"}).
			AddRow(1, 10, "51F-123.45", "Sedan", 100000, false, 2022, "full", false, "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE license_plate = \\$1").
			WithArgs("51F-123.45").
			WillReturnRows(rows)

		v, err := repo.GetByLicensePlate(ctx, "51F-123.45")
		assert.NoError(t, err)
		assert.Equal(t, int32(1), v.ID)
		assert.Equal(t, int64(100000), v.Price)
		assert.False(t, v.IsRented)
	})

	t.Run("Unknown plate maps to not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE license_plate = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByLicensePlate(ctx, "missing")
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	vehicle := &domain.Vehicle{
		OwnerID:      10,
		LicensePlate: "51F-123.45",
		Description:  "Sedan",
		Price:        100000,
		Year:         2022,
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(vehicle.OwnerID, vehicle.LicensePlate, vehicle.Description, vehicle.Price, vehicle.Year, vehicle.Insurance, vehicle.Mortgage, vehicle.ImagePath, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		assert.NoError(t, repo.Create(ctx, vehicle))
		assert.Equal(t, int32(1), vehicle.ID)
	})

	t.Run("Duplicate plate maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(vehicle.OwnerID, vehicle.LicensePlate, vehicle.Description, vehicle.Price, vehicle.Year, vehicle.Insurance, vehicle.Mortgage, vehicle.ImagePath, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, vehicle)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestVehicleRepository_MarkRented(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Winner flips the flag", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET is_rented = \\$1 WHERE license_plate = \\$2 AND is_rented = \\$3").
			WithArgs(true, "51F-123.45", false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.MarkRented(ctx, "51F-123.45")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Loser sees zero rows and no error", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET is_rented = \\$1 WHERE license_plate = \\$2 AND is_rented = \\$3").
			WithArgs(true, "51F-123.45", false).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.MarkRented(ctx, "51F-123.45")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MarkAvailable flips the other way", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET is_rented = \\$1 WHERE license_plate = \\$2 AND is_rented = \\$3").
			WithArgs(false, "51F-123.45", true).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.MarkAvailable(ctx, "51F-123.45")
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
