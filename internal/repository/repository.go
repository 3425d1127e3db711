package repository

import (
	"context"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error

	// CreditProfit atomically adds amount to the user's accumulated profit.
	// Returns false without error when no such user exists.
	CreditProfit(ctx context.Context, userID int32, amount int64) (bool, error)
	// RecomputeRating sets the user's rating to the mean of all comments
	// directed at them and returns the new value.
	RecomputeRating(ctx context.Context, userID int32) (float64, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	GetByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int32) error
	ListAvailable(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Vehicle, int32, error)

	// Availability register. MarkRented flips is_rented to true only when it
	// is currently false, in a single conditional update; it returns false
	// without error when the flag was already set or the vehicle is gone.
	// MarkAvailable is the reverse. No other code path mutates is_rented.
	MarkRented(ctx context.Context, licensePlate string) (bool, error)
	MarkAvailable(ctx context.Context, licensePlate string) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	Delete(ctx context.Context, id int32) error
	ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListByOwner joins bookings to the owner's vehicles on license plate.
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Booking, int32, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error)
}

type BookingDetailRepository interface {
	Create(ctx context.Context, detail *domain.BookingDetail) error
	GetByBookingID(ctx context.Context, bookingID int32) (*domain.BookingDetail, error)
	MarkPaid(ctx context.Context, bookingID int32) error
	DeleteByBookingID(ctx context.Context, bookingID int32) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Comment, int32, error)
	ExistsForBookingByReviewer(ctx context.Context, bookingID, reviewerID int32) (bool, error)
	DeleteByBookingID(ctx context.Context, bookingID int32) error
}

// Store bundles all repositories with a transaction boundary. Transact runs
// fn against a store whose repositories share one database transaction,
// committing on nil return and rolling back otherwise. Calling Transact on an
// already transactional store joins the enclosing transaction.
type Store interface {
	Users() UserRepository
	Vehicles() VehicleRepository
	Bookings() BookingRepository
	BookingDetails() BookingDetailRepository
	Comments() CommentRepository

	Transact(ctx context.Context, fn func(Store) error) error
}
