package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// RentalInput carries the writable fields of a rental booking.
type RentalInput struct {
	CarID          uint
	RentalPrice    float64
	StartDate      models.Date
	EndDate        models.Date
	Deposit        float64
	PickupLocation string
	Email          string
}

// RentalService coordinates rental bookings: it resolves the referenced car,
// runs the availability check, and keeps the popularity counter in step with
// each accepted booking.
type RentalService struct {
	DB           *gorm.DB
	Availability *AvailabilityChecker
	Log          *slog.Logger
}

func NewRentalService(db *gorm.DB, logger *slog.Logger) *RentalService {
	return &RentalService{DB: db, Availability: NewAvailabilityChecker(db), Log: logger}
}

func (s *RentalService) List(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := s.DB.WithContext(ctx).Find(&rentals).Error; err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	return rentals, nil
}

func (s *RentalService) Get(ctx context.Context, id uint) (*models.Rental, error) {
	var rental models.Rental
	if err := s.DB.WithContext(ctx).First(&rental, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load rental %d: %w", id, err)
	}
	return &rental, nil
}

// Create books a car for the requested period. The availability check runs
// before anything is persisted; the rental insert and the popularity
// increment then commit together in one transaction.
func (s *RentalService) Create(ctx context.Context, in RentalInput) (*models.Rental, error) {
	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, in.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("car %d: %w", in.CarID, ErrNotFound)
		}
		return nil, fmt.Errorf("load car %d: %w", in.CarID, err)
	}

	rented, err := s.Availability.IsCarRented(ctx, car.ID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, fmt.Errorf("car %d already rented between %s and %s: %w",
			car.ID, in.StartDate, in.EndDate, ErrConflict)
	}

	rental := models.Rental{
		CarID:          car.ID,
		RentalPrice:    in.RentalPrice,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Deposit:        in.Deposit,
		PickupLocation: in.PickupLocation,
		Email:          in.Email,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rental).Error; err != nil {
			return fmt.Errorf("save rental: %w", err)
		}
		var pop models.Popularity
		if err := tx.Where("car_id = ?", car.ID).First(&pop).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("load popularity for car %d: %w", car.ID, err)
			}
			// Cars registered before popularity tracking have no record yet.
			pop = models.Popularity{CarID: car.ID}
		}
		pop.Likes++
		if err := tx.Save(&pop).Error; err != nil {
			return fmt.Errorf("save popularity for car %d: %w", car.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("rental created",
		"rental", rental.ID, "car", car.ID,
		"from", rental.StartDate.String(), "to", rental.EndDate.String())
	return &rental, nil
}

// Update overwrites all mutable fields of an existing rental after re-running
// the availability check against the requested car and range. The check does
// not exclude the rental being updated, so a rental shifting its own range
// can be rejected as conflicting with itself (see DESIGN.md). Popularity is
// not touched on update.
func (s *RentalService) Update(ctx context.Context, id uint, in RentalInput) (*models.Rental, error) {
	var rental models.Rental
	if err := s.DB.WithContext(ctx).First(&rental, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rental %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load rental %d: %w", id, err)
	}

	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, in.CarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("car %d: %w", in.CarID, ErrNotFound)
		}
		return nil, fmt.Errorf("load car %d: %w", in.CarID, err)
	}

	rented, err := s.Availability.IsCarRented(ctx, car.ID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, fmt.Errorf("car %d already rented between %s and %s: %w",
			car.ID, in.StartDate, in.EndDate, ErrConflict)
	}

	rental.CarID = car.ID
	rental.RentalPrice = in.RentalPrice
	rental.StartDate = in.StartDate
	rental.EndDate = in.EndDate
	rental.Deposit = in.Deposit
	rental.PickupLocation = in.PickupLocation
	rental.Email = in.Email
	if err := s.DB.WithContext(ctx).Save(&rental).Error; err != nil {
		return nil, fmt.Errorf("save rental %d: %w", id, err)
	}
	return &rental, nil
}

// Delete removes a rental. It is idempotent: deleting an unknown id succeeds
// and leaves the store unchanged. Popularity is not adjusted.
func (s *RentalService) Delete(ctx context.Context, id uint) error {
	if err := s.DB.WithContext(ctx).Delete(&models.Rental{}, id).Error; err != nil {
		return fmt.Errorf("delete rental %d: %w", id, err)
	}
	return nil
}
