package service

import (
	"context"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type commentService struct {
	store repository.Store
}

func NewCommentService(store repository.Store) CommentService {
	return &commentService{store: store}
}

// RateBooking records a rating from one party of a completed booking about
// the other and refreshes the reviewee's running average in the same
// transaction.
func (s *commentService) RateBooking(ctx context.Context, actor domain.Actor, bookingID int32, rate int32, content string) (*domain.Comment, error) {
	if rate < 1 || rate > 5 {
		return nil, domain.Validationf("rate must be between 1 and 5")
	}

	var comment *domain.Comment
	err := s.store.Transact(ctx, func(st repository.Store) error {
		booking, err := st.Bookings().GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != domain.BookingStatusCompleted {
			return domain.InvalidStatef("only completed bookings can be rated")
		}

		vehicle, err := st.Vehicles().GetByLicensePlate(ctx, booking.LicensePlate)
		if err != nil {
			return err
		}

		var revieweeID int32
		switch actor.ID {
		case booking.CustomerID:
			revieweeID = vehicle.OwnerID
		case vehicle.OwnerID:
			revieweeID = booking.CustomerID
		default:
			return domain.Forbiddenf("only the booking's parties can rate each other")
		}

		rated, err := st.Comments().ExistsForBookingByReviewer(ctx, bookingID, actor.ID)
		if err != nil {
			return err
		}
		if rated {
			return domain.Conflictf("booking %d has already been rated by this user", bookingID)
		}

		c := &domain.Comment{
			BookingID:  bookingID,
			ReviewerID: actor.ID,
			RevieweeID: revieweeID,
			Rate:       rate,
			Content:    content,
		}
		if err := st.Comments().Create(ctx, c); err != nil {
			return err
		}

		// The new comment is already inserted, so the AVG covers it and the
		// first rating simply sets the average.
		if _, err := st.Users().RecomputeRating(ctx, revieweeID); err != nil {
			return err
		}

		comment = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListForUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Comment, int32, error) {
	return s.store.Comments().ListByReviewee(ctx, userID, page, pageSize)
}
