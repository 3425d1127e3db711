package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) CreditProfit(ctx context.Context, userID int32, amount int64) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) RecomputeRating(ctx context.Context, userID int32) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, licensePlate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) ListAvailable(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockVehicleRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}
func (m *MockVehicleRepo) MarkRented(ctx context.Context, licensePlate string) (bool, error) {
	args := m.Called(ctx, licensePlate)
	return args.Bool(0), args.Error(1)
}
func (m *MockVehicleRepo) MarkAvailable(ctx context.Context, licensePlate string) (bool, error) {
	args := m.Called(ctx, licensePlate)
	return args.Bool(0), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByCustomer(ctx context.Context, customerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, customerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockBookingDetailRepo
type MockBookingDetailRepo struct {
	mock.Mock
}

func (m *MockBookingDetailRepo) Create(ctx context.Context, detail *domain.BookingDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}
func (m *MockBookingDetailRepo) GetByBookingID(ctx context.Context, bookingID int32) (*domain.BookingDetail, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingDetail), args.Error(1)
}
func (m *MockBookingDetailRepo) MarkPaid(ctx context.Context, bookingID int32) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}
func (m *MockBookingDetailRepo) DeleteByBookingID(ctx context.Context, bookingID int32) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockCommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockCommentRepo) ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Comment, int32, error) {
	args := m.Called(ctx, revieweeID, page, pageSize)
	return args.Get(0).([]domain.Comment), args.Get(1).(int32), args.Error(2)
}
func (m *MockCommentRepo) ExistsForBookingByReviewer(ctx context.Context, bookingID, reviewerID int32) (bool, error) {
	args := m.Called(ctx, bookingID, reviewerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCommentRepo) DeleteByBookingID(ctx context.Context, bookingID int32) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingCreatedNotification(ctx context.Context, ownerEmail, customerName, licensePlate string, totalPrice int64) error {
	args := m.Called(ctx, ownerEmail, customerName, licensePlate, totalPrice)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCancelledNotification(ctx context.Context, ownerEmail, customerName, licensePlate string) error {
	args := m.Called(ctx, ownerEmail, customerName, licensePlate)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCompletedNotification(ctx context.Context, customerEmail, licensePlate string) error {
	args := m.Called(ctx, customerEmail, licensePlate)
	return args.Error(0)
}

// fakeStore bundles the mocks behind the Store interface. Transact runs the
// closure against the same store, which is exactly the join-enclosing-tx
// behavior of the real store.
type fakeStore struct {
	users    *MockUserRepo
	vehicles *MockVehicleRepo
	bookings *MockBookingRepo
	details  *MockBookingDetailRepo
	comments *MockCommentRepo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    new(MockUserRepo),
		vehicles: new(MockVehicleRepo),
		bookings: new(MockBookingRepo),
		details:  new(MockBookingDetailRepo),
		comments: new(MockCommentRepo),
	}
}

func (s *fakeStore) Users() repository.UserRepository                   { return s.users }
func (s *fakeStore) Vehicles() repository.VehicleRepository             { return s.vehicles }
func (s *fakeStore) Bookings() repository.BookingRepository             { return s.bookings }
func (s *fakeStore) BookingDetails() repository.BookingDetailRepository { return s.details }
func (s *fakeStore) Comments() repository.CommentRepository             { return s.comments }

func (s *fakeStore) Transact(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
