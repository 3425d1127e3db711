package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
)

func TestCommentService_RateBooking(t *testing.T) {
	ctx := context.Background()
	customer := domain.Actor{ID: testCustomerID, Role: domain.RoleCustomer}
	owner := domain.Actor{ID: testOwnerID, Role: domain.RoleHotelier}

	completed := &domain.Booking{
		ID:           3,
		CustomerID:   testCustomerID,
		LicensePlate: testPlate,
		Status:       domain.BookingStatusCompleted,
	}
	vehicle := &domain.Vehicle{ID: 5, OwnerID: testOwnerID, LicensePlate: testPlate}

	t.Run("Customer rates the owner", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCommentService(store)
		store.bookings.On("GetByID", ctx, int32(3)).Return(completed, nil)
		store.vehicles.On("GetByLicensePlate", ctx, testPlate).Return(vehicle, nil)
		store.comments.On("ExistsForBookingByReviewer", ctx, int32(3), testCustomerID).Return(false, nil)
		store.comments.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)
		store.users.On("RecomputeRating", ctx, testOwnerID).Return(4.5, nil)

		c, err := svc.RateBooking(ctx, customer, 3, 5, "smooth rental")
		assert.NoError(t, err)
		assert.Equal(t, testOwnerID, c.RevieweeID)
		assert.Equal(t, testCustomerID, c.ReviewerID)
		store.users.AssertCalled(t, "RecomputeRating", ctx, testOwnerID)
	})

	t.Run("Owner rates the customer", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCommentService(store)
		store.bookings.On("GetByID", ctx, int32(3)).Return(completed, nil)
		store.vehicles.On("GetByLicensePlate", ctx, testPlate).Return(vehicle, nil)
		store.comments.On("ExistsForBookingByReviewer", ctx, int32(3), testOwnerID).Return(false, nil)
		store.comments.On("Create", ctx, mock.AnythingOfType("*domain.Comment")).Return(nil)
		store.users.On("RecomputeRating", ctx, testCustomerID).Return(5.0, nil)

		c, err := svc.RateBooking(ctx, owner, 3, 5, "")
		assert.NoError(t, err)
		assert.Equal(t, testCustomerID, c.RevieweeID)
	})

	t.Run("Rate outside 1..5 is rejected", func(t *testing.T) {
		svc := NewCommentService(newFakeStore())
		_, err := svc.RateBooking(ctx, customer, 3, 0, "")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		_, err = svc.RateBooking(ctx, customer, 3, 6, "")
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})

	t.Run("Only completed bookings can be rated", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCommentService(store)
		active := *completed
		active.Status = domain.BookingStatusProcessing
		store.bookings.On("GetByID", ctx, int32(3)).Return(&active, nil)

		_, err := svc.RateBooking(ctx, customer, 3, 4, "")
		assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
	})

	t.Run("Third parties may not rate", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCommentService(store)
		store.bookings.On("GetByID", ctx, int32(3)).Return(completed, nil)
		store.vehicles.On("GetByLicensePlate", ctx, testPlate).Return(vehicle, nil)

		_, err := svc.RateBooking(ctx, domain.Actor{ID: 42, Role: domain.RoleCustomer}, 3, 4, "")
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("Second rating by the same reviewer conflicts", func(t *testing.T) {
		store := newFakeStore()
		svc := NewCommentService(store)
		store.bookings.On("GetByID", ctx, int32(3)).Return(completed, nil)
		store.vehicles.On("GetByLicensePlate", ctx, testPlate).Return(vehicle, nil)
		store.comments.On("ExistsForBookingByReviewer", ctx, int32(3), testCustomerID).Return(true, nil)

		_, err := svc.RateBooking(ctx, customer, 3, 4, "")
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		store.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
