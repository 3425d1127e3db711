package service

import (
	"context"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, userRepo repository.UserRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, userRepo: userRepo}
}

func (s *vehicleService) RegisterVehicle(ctx context.Context, actor domain.Actor, v *domain.Vehicle) error {
	if actor.Role != domain.RoleHotelier {
		return domain.Forbiddenf("only hoteliers can register vehicles")
	}
	if v.LicensePlate == "" {
		return domain.Validationf("license plate is required")
	}
	if v.Price <= 0 {
		return domain.Validationf("daily price must be positive")
	}
	v.OwnerID = actor.ID
	v.IsRented = false
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, licensePlate string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByLicensePlate(ctx, licensePlate)
	if err != nil {
		return nil, err
	}
	owner, _ := s.userRepo.GetByID(ctx, vehicle.OwnerID)
	vehicle.Owner = owner
	return vehicle, nil
}

func (s *vehicleService) ListAvailableVehicles(ctx context.Context, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.ListAvailable(ctx, page, pageSize)
}

func (s *vehicleService) ListMyVehicles(ctx context.Context, actor domain.Actor, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	return s.vehicleRepo.ListByOwner(ctx, actor.ID, page, pageSize)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, actor domain.Actor, v *domain.Vehicle) error {
	existing, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.Forbiddenf("vehicle %d does not belong to you", v.ID)
	}
	if v.Price <= 0 {
		return domain.Validationf("daily price must be positive")
	}
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, actor domain.Actor, vehicleID int32) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.Forbiddenf("vehicle %d does not belong to you", vehicleID)
	}
	// A rented vehicle is tied to a Processing booking; deleting it would
	// orphan the booking's availability release.
	if vehicle.IsRented {
		return domain.InvalidStatef("vehicle %s is currently rented", vehicle.LicensePlate)
	}
	return s.vehicleRepo.Delete(ctx, vehicleID)
}

func (s *vehicleService) AttachImage(ctx context.Context, actor domain.Actor, vehicleID int32, imagePath string) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.OwnerID != actor.ID {
		return domain.Forbiddenf("vehicle %d does not belong to you", vehicleID)
	}
	vehicle.ImagePath = imagePath
	return s.vehicleRepo.Update(ctx, vehicle)
}
