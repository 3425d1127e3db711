package service

import (
	"context"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type bookingDetailService struct {
	detailRepo  repository.BookingDetailRepository
	bookingRepo repository.BookingRepository
}

func NewBookingDetailService(detailRepo repository.BookingDetailRepository, bookingRepo repository.BookingRepository) BookingDetailService {
	return &bookingDetailService{detailRepo: detailRepo, bookingRepo: bookingRepo}
}

func (s *bookingDetailService) CreateDetail(ctx context.Context, actor domain.Actor, in CreateBookingDetailInput) (*domain.BookingDetail, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, domain.Validationf("customer name and email are required")
	}

	booking, err := s.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.Forbiddenf("booking %d does not belong to you", in.BookingID)
	}

	detail := &domain.BookingDetail{
		BookingID:     booking.ID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Address:       in.Address,
		LicensePlate:  booking.LicensePlate,
	}
	// The unique constraint on booking_id makes the at-most-one rule hold
	// under concurrent creates; a duplicate surfaces as Conflict.
	if err := s.detailRepo.Create(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *bookingDetailService) GetDetail(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.Forbiddenf("booking %d does not belong to you", bookingID)
	}
	return s.detailRepo.GetByBookingID(ctx, bookingID)
}

func (s *bookingDetailService) MarkPaid(ctx context.Context, actor domain.Actor, bookingID int32) error {
	if actor.Role != domain.RoleAdmin {
		return domain.Forbiddenf("only admins can mark a booking detail as paid")
	}
	if _, err := s.bookingRepo.GetByID(ctx, bookingID); err != nil {
		return err
	}
	return s.detailRepo.MarkPaid(ctx, bookingID)
}
