package service

import (
	"context"
	"time"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, user *domain.User, err error)
	RefreshToken(ctx context.Context, refreshToken string) (access, refresh string, err error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor domain.Actor, name, email, phone string) (*domain.User, error)
	GetProfit(ctx context.Context, actor domain.Actor, userID int32) (int64, error)
}

type VehicleService interface {
	RegisterVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error
	GetVehicle(ctx context.Context, licensePlate string) (*domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error)
	ListMyVehicles(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Vehicle, int32, error)
	UpdateVehicle(ctx context.Context, actor domain.Actor, vehicle *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, actor domain.Actor, vehicleID int32) error
	AttachImage(ctx context.Context, actor domain.Actor, vehicleID int32, imagePath string) error
}

// BookingScope selects which bookings a listing returns.
type BookingScope string

const (
	BookingScopeCustomer BookingScope = "customer" // bookings the actor created
	BookingScopeOwner    BookingScope = "owner"    // bookings on the actor's vehicles
	BookingScopeAll      BookingScope = "all"      // every booking, admin only
)

type CreateBookingInput struct {
	LicensePlate string
	BookingStart time.Time
	BookingEnd   time.Time
	HasDriver    bool
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor domain.Actor, in CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	ReturnVehicle(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, actor domain.Actor, bookingID int32) error
	GetBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, actor domain.Actor, scope BookingScope, page, pageSize int32) ([]domain.Booking, int32, error)
}

type CreateBookingDetailInput struct {
	BookingID     int32
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
}

type BookingDetailService interface {
	CreateDetail(ctx context.Context, actor domain.Actor, in CreateBookingDetailInput) (*domain.BookingDetail, error)
	GetDetail(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.BookingDetail, error)
	MarkPaid(ctx context.Context, actor domain.Actor, bookingID int32) error
}

type CommentService interface {
	RateBooking(ctx context.Context, actor domain.Actor, bookingID int32, rate int32, content string) (*domain.Comment, error)
	ListForUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Comment, int32, error)
}

type EmailService interface {
	SendBookingCreatedNotification(ctx context.Context, ownerEmail, customerName, licensePlate string, totalPrice int64) error
	SendBookingCancelledNotification(ctx context.Context, ownerEmail, customerName, licensePlate string) error
	SendBookingCompletedNotification(ctx context.Context, customerEmail, licensePlate string) error
}
