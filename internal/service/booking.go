package service

import (
	"context"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/logger"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/utils"
)

type bookingEvent string

const (
	eventCancel bookingEvent = "cancel"
	eventReturn bookingEvent = "return"
	eventDelete bookingEvent = "delete"
)

// transitionTable is the single source of truth for which roles may fire
// which lifecycle event from which booking state. Ownership (the booking's
// own customer, the vehicle's registered owner) is checked separately.
var transitionTable = map[bookingEvent]struct {
	roles  []domain.Role
	states []domain.BookingStatus
}{
	eventCancel: {
		roles:  []domain.Role{domain.RoleCustomer, domain.RoleAdmin},
		states: []domain.BookingStatus{domain.BookingStatusProcessing},
	},
	eventReturn: {
		roles:  []domain.Role{domain.RoleHotelier},
		states: []domain.BookingStatus{domain.BookingStatusProcessing},
	},
	eventDelete: {
		roles:  []domain.Role{domain.RoleAdmin},
		states: []domain.BookingStatus{domain.BookingStatusCancelled, domain.BookingStatusCompleted},
	},
}

func guardTransition(ev bookingEvent, role domain.Role, status domain.BookingStatus) error {
	entry := transitionTable[ev]
	roleOK := false
	for _, r := range entry.roles {
		if r == role {
			roleOK = true
			break
		}
	}
	if !roleOK {
		return domain.Forbiddenf("role %s may not %s a booking", role, ev)
	}
	for _, s := range entry.states {
		if s == status {
			return nil
		}
	}
	return domain.InvalidStatef("booking with status %s does not allow %s", status, ev)
}

type bookingService struct {
	store              repository.Store
	emailSvc           EmailService
	platformAccountID  int32
	platformFeePercent int64
}

func NewBookingService(store repository.Store, emailSvc EmailService, platformAccountID int32, platformFeePercent int64) BookingService {
	return &bookingService{
		store:              store,
		emailSvc:           emailSvc,
		platformAccountID:  platformAccountID,
		platformFeePercent: platformFeePercent,
	}
}

// CreateBooking inserts the booking, flips the vehicle to rented, and credits
// both settlement legs inside a single database transaction. Any failure
// undoes all effects of the attempt.
func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, in CreateBookingInput) (*domain.Booking, error) {
	if actor.Role != domain.RoleCustomer {
		return nil, domain.Forbiddenf("only customers can create bookings")
	}
	if in.LicensePlate == "" {
		return nil, domain.Validationf("license plate is required")
	}
	if in.BookingStart.IsZero() || in.BookingEnd.IsZero() {
		return nil, domain.Validationf("booking start and end dates are required")
	}
	if !in.BookingEnd.After(in.BookingStart) {
		return nil, domain.Validationf("booking end must be after booking start")
	}

	var booking *domain.Booking
	var ownerID int32
	err := s.store.Transact(ctx, func(st repository.Store) error {
		vehicle, err := st.Vehicles().GetByLicensePlate(ctx, in.LicensePlate)
		if err != nil {
			return err
		}
		if vehicle.IsRented {
			return domain.Conflictf("vehicle %s is already rented", in.LicensePlate)
		}

		days := utils.RentalDays(in.BookingStart, in.BookingEnd)
		total := utils.TotalPrice(days, vehicle.Price)

		b := &domain.Booking{
			CustomerID:   actor.ID,
			LicensePlate: vehicle.LicensePlate,
			BookingStart: in.BookingStart,
			BookingEnd:   in.BookingEnd,
			Status:       domain.BookingStatusProcessing,
			TotalPrice:   total,
			HasDriver:    in.HasDriver,
		}
		if err := st.Bookings().Create(ctx, b); err != nil {
			return err
		}

		// The conditional update is the availability lock: a concurrent
		// create that read is_rented == false above loses here with zero
		// rows affected and the whole transaction rolls back.
		rented, err := st.Vehicles().MarkRented(ctx, vehicle.LicensePlate)
		if err != nil {
			return err
		}
		if !rented {
			return domain.Conflictf("vehicle %s is already rented", in.LicensePlate)
		}

		ownerShare, platformShare := utils.SplitProfit(total, s.platformFeePercent)
		if err := s.credit(ctx, st, vehicle.OwnerID, ownerShare, "vehicle owner"); err != nil {
			return err
		}
		if err := s.credit(ctx, st, s.platformAccountID, platformShare, "platform account"); err != nil {
			return err
		}

		booking = b
		ownerID = vehicle.OwnerID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyOwner(ctx, ownerID, booking, eventCreated)
	return booking, nil
}

func (s *bookingService) credit(ctx context.Context, st repository.Store, userID int32, amount int64, who string) error {
	ok, err := st.Users().CreditProfit(ctx, userID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Inconsistencyf("%s %d vanished during settlement", who, userID)
	}
	return nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	var booking *domain.Booking
	released := true
	err := s.store.Transact(ctx, func(st repository.Store) error {
		b, err := st.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleAdmin && actor.ID != b.CustomerID {
			return domain.Forbiddenf("only the booking's customer or an admin can cancel it")
		}
		if err := guardTransition(eventCancel, actor.Role, b.Status); err != nil {
			return err
		}

		if err := st.Bookings().UpdateStatus(ctx, b.ID, domain.BookingStatusCancelled); err != nil {
			return err
		}
		released, err = st.Vehicles().MarkAvailable(ctx, b.LicensePlate)
		if err != nil {
			return err
		}

		b.Status = domain.BookingStatusCancelled
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !released {
		// The cancellation stands, but the availability flag could not be
		// restored. Surface the drift instead of swallowing it.
		logger.ErrorContext(ctx, "vehicle availability not restored after cancellation",
			"booking_id", booking.ID, "license_plate", booking.LicensePlate)
		return booking, domain.Inconsistencyf("booking %d cancelled but vehicle %s availability could not be restored",
			booking.ID, booking.LicensePlate)
	}

	s.notifyOwnerByPlate(ctx, booking, eventCancelled)
	return booking, nil
}

func (s *bookingService) ReturnVehicle(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	var booking *domain.Booking
	var customerID int32
	released := true
	err := s.store.Transact(ctx, func(st repository.Store) error {
		b, err := st.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := guardTransition(eventReturn, actor.Role, b.Status); err != nil {
			return err
		}

		vehicle, err := st.Vehicles().GetByLicensePlate(ctx, b.LicensePlate)
		if err != nil {
			return err
		}
		if vehicle.OwnerID != actor.ID {
			return domain.Forbiddenf("only the vehicle's registered owner can confirm its return")
		}

		released, err = st.Vehicles().MarkAvailable(ctx, b.LicensePlate)
		if err != nil {
			return err
		}
		if err := st.Bookings().UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted); err != nil {
			return err
		}

		b.Status = domain.BookingStatusCompleted
		booking = b
		customerID = b.CustomerID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !released {
		logger.ErrorContext(ctx, "vehicle availability not restored after return",
			"booking_id", booking.ID, "license_plate", booking.LicensePlate)
		return booking, domain.Inconsistencyf("booking %d completed but vehicle %s availability could not be restored",
			booking.ID, booking.LicensePlate)
	}

	s.notifyCustomer(ctx, customerID, booking)
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, actor domain.Actor, bookingID int32) error {
	return s.store.Transact(ctx, func(st repository.Store) error {
		b, err := st.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if err := guardTransition(eventDelete, actor.Role, b.Status); err != nil {
			return err
		}
		if err := st.Comments().DeleteByBookingID(ctx, b.ID); err != nil {
			return err
		}
		if err := st.BookingDetails().DeleteByBookingID(ctx, b.ID); err != nil {
			return err
		}
		return st.Bookings().Delete(ctx, b.ID)
	})
}

func (s *bookingService) GetBooking(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error) {
	b, err := s.store.Bookings().GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleAdmin || actor.ID == b.CustomerID {
		return b, nil
	}
	vehicle, err := s.store.Vehicles().GetByLicensePlate(ctx, b.LicensePlate)
	if err == nil && vehicle.OwnerID == actor.ID {
		return b, nil
	}
	return nil, domain.Forbiddenf("booking %d does not belong to you", bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context, actor domain.Actor, scope BookingScope, page, pageSize int32) ([]domain.Booking, int32, error) {
	switch scope {
	case BookingScopeCustomer:
		return s.store.Bookings().ListByCustomer(ctx, actor.ID, page, pageSize)
	case BookingScopeOwner:
		return s.store.Bookings().ListByOwner(ctx, actor.ID, page, pageSize)
	case BookingScopeAll:
		if actor.Role != domain.RoleAdmin {
			return nil, 0, domain.Forbiddenf("only admins can list all bookings")
		}
		return s.store.Bookings().ListAll(ctx, page, pageSize)
	default:
		return nil, 0, domain.Validationf("unknown booking scope %q", scope)
	}
}

type notifyEvent int

const (
	eventCreated notifyEvent = iota
	eventCancelled
)

// Notifications are best effort: a failed email never fails the booking
// operation that triggered it.
func (s *bookingService) notifyOwner(ctx context.Context, ownerID int32, b *domain.Booking, ev notifyEvent) {
	owner, _ := s.store.Users().GetByID(ctx, ownerID)
	customer, _ := s.store.Users().GetByID(ctx, b.CustomerID)
	if owner == nil || customer == nil {
		return
	}
	switch ev {
	case eventCreated:
		_ = s.emailSvc.SendBookingCreatedNotification(ctx, owner.Email, customer.Name, b.LicensePlate, b.TotalPrice)
	case eventCancelled:
		_ = s.emailSvc.SendBookingCancelledNotification(ctx, owner.Email, customer.Name, b.LicensePlate)
	}
}

func (s *bookingService) notifyOwnerByPlate(ctx context.Context, b *domain.Booking, ev notifyEvent) {
	vehicle, _ := s.store.Vehicles().GetByLicensePlate(ctx, b.LicensePlate)
	if vehicle == nil {
		return
	}
	s.notifyOwner(ctx, vehicle.OwnerID, b, ev)
}

func (s *bookingService) notifyCustomer(ctx context.Context, customerID int32, b *domain.Booking) {
	customer, _ := s.store.Users().GetByID(ctx, customerID)
	if customer == nil {
		return
	}
	_ = s.emailSvc.SendBookingCompletedNotification(ctx, customer.Email, b.LicensePlate)
}
