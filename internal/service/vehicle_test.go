package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
)

func TestVehicleService_RegisterVehicle(t *testing.T) {
	ctx := context.Background()
	owner := domain.Actor{ID: testOwnerID, Role: domain.RoleHotelier}

	t.Run("Hotelier registers an available vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo, new(MockUserRepo))
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(nil)

		v := &domain.Vehicle{LicensePlate: testPlate, Price: 100000, IsRented: true}
		assert.NoError(t, svc.RegisterVehicle(ctx, owner, v))
		assert.Equal(t, testOwnerID, v.OwnerID)
		// Registration never starts in the rented state.
		assert.False(t, v.IsRented)
	})

	t.Run("Customers may not register vehicles", func(t *testing.T) {
		svc := NewVehicleService(new(MockVehicleRepo), new(MockUserRepo))
		err := svc.RegisterVehicle(ctx, domain.Actor{ID: 1, Role: domain.RoleCustomer}, &domain.Vehicle{LicensePlate: testPlate, Price: 100})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("Non-positive price is rejected", func(t *testing.T) {
		svc := NewVehicleService(new(MockVehicleRepo), new(MockUserRepo))
		err := svc.RegisterVehicle(ctx, owner, &domain.Vehicle{LicensePlate: testPlate, Price: 0})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("Duplicate plate surfaces the repository conflict", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo, new(MockUserRepo))
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).
			Return(domain.Conflictf("vehicle with license plate %s already exists", testPlate))

		err := svc.RegisterVehicle(ctx, owner, &domain.Vehicle{LicensePlate: testPlate, Price: 100000})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestVehicleService_DeleteVehicle(t *testing.T) {
	ctx := context.Background()
	owner := domain.Actor{ID: testOwnerID, Role: domain.RoleHotelier}

	t.Run("Owner deletes an idle vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo, new(MockUserRepo))
		vehicleRepo.On("GetByID", ctx, int32(5)).Return(&domain.Vehicle{ID: 5, OwnerID: testOwnerID}, nil)
		vehicleRepo.On("Delete", ctx, int32(5)).Return(nil)

		assert.NoError(t, svc.DeleteVehicle(ctx, owner, 5))
	})

	t.Run("Rented vehicle may not be deleted", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo, new(MockUserRepo))
		vehicleRepo.On("GetByID", ctx, int32(5)).Return(&domain.Vehicle{ID: 5, OwnerID: testOwnerID, LicensePlate: testPlate, IsRented: true}, nil)

		err := svc.DeleteVehicle(ctx, owner, 5)
		assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
		vehicleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Strangers may not delete", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewVehicleService(vehicleRepo, new(MockUserRepo))
		vehicleRepo.On("GetByID", ctx, int32(5)).Return(&domain.Vehicle{ID: 5, OwnerID: testOwnerID}, nil)

		err := svc.DeleteVehicle(ctx, domain.Actor{ID: 42, Role: domain.RoleHotelier}, 5)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestUserService_GetProfit(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner reads own balance", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)
		userRepo.On("GetByID", ctx, testOwnerID).Return(&domain.User{ID: testOwnerID, Profit: 285000}, nil)

		profit, err := svc.GetProfit(ctx, domain.Actor{ID: testOwnerID, Role: domain.RoleHotelier}, testOwnerID)
		assert.NoError(t, err)
		assert.Equal(t, int64(285000), profit)
	})

	t.Run("Admin reads any balance", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewUserService(userRepo)
		userRepo.On("GetByID", ctx, testOwnerID).Return(&domain.User{ID: testOwnerID, Profit: 15000}, nil)

		profit, err := svc.GetProfit(ctx, domain.Actor{ID: 2, Role: domain.RoleAdmin}, testOwnerID)
		assert.NoError(t, err)
		assert.Equal(t, int64(15000), profit)
	})

	t.Run("Other users are refused", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepo))
		_, err := svc.GetProfit(ctx, domain.Actor{ID: 1, Role: domain.RoleCustomer}, testOwnerID)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}

func TestBookingDetailService_CreateDetail(t *testing.T) {
	ctx := context.Background()
	customer := domain.Actor{ID: testCustomerID, Role: domain.RoleCustomer}
	booking := &domain.Booking{ID: 7, CustomerID: testCustomerID, LicensePlate: testPlate}

	t.Run("Detail inherits the booking's plate", func(t *testing.T) {
		detailRepo := new(MockBookingDetailRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingDetailService(detailRepo, bookingRepo)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)
		detailRepo.On("Create", ctx, mock.AnythingOfType("*domain.BookingDetail")).Return(nil)

		d, err := svc.CreateDetail(ctx, customer, CreateBookingDetailInput{
			BookingID:     7,
			CustomerName:  "A Customer",
			CustomerEmail: "customer@test.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, testPlate, d.LicensePlate)
		assert.Equal(t, int32(7), d.BookingID)
	})

	t.Run("Missing booking is not found", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingDetailService(new(MockBookingDetailRepo), bookingRepo)
		bookingRepo.On("GetByID", ctx, int32(8)).Return(nil, domain.NotFoundf("booking does not exist"))

		_, err := svc.CreateDetail(ctx, customer, CreateBookingDetailInput{
			BookingID:     8,
			CustomerName:  "A Customer",
			CustomerEmail: "customer@test.com",
		})
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("Second detail for a booking conflicts", func(t *testing.T) {
		detailRepo := new(MockBookingDetailRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingDetailService(detailRepo, bookingRepo)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)
		detailRepo.On("Create", ctx, mock.AnythingOfType("*domain.BookingDetail")).
			Return(domain.Conflictf("booking %d already has a detail", 7))

		_, err := svc.CreateDetail(ctx, customer, CreateBookingDetailInput{
			BookingID:     7,
			CustomerName:  "A Customer",
			CustomerEmail: "customer@test.com",
		})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("Only the booking's customer or an admin may attach", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingDetailService(new(MockBookingDetailRepo), bookingRepo)
		bookingRepo.On("GetByID", ctx, int32(7)).Return(booking, nil)

		_, err := svc.CreateDetail(ctx, domain.Actor{ID: 42, Role: domain.RoleCustomer}, CreateBookingDetailInput{
			BookingID:     7,
			CustomerName:  "A Customer",
			CustomerEmail: "customer@test.com",
		})
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})
}
