package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// CarInput carries the writable fields of a car listing.
type CarInput struct {
	Brand       string
	Model       string
	Power       int
	Year        int
	Color       string
	ImageURI    string
	Description string
	DealerID    uint
}

// RankedCar pairs a car with its accumulated likes for the popularity
// ranking.
type RankedCar struct {
	Car   models.Car
	Likes int
}

// CarService owns the car lifecycle: CRUD, the ordered cascade on delete, the
// dealer-joined view and the popularity ranking.
type CarService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewCarService(db *gorm.DB, logger *slog.Logger) *CarService {
	return &CarService{DB: db, Log: logger}
}

func (s *CarService) List(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := s.DB.WithContext(ctx).Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return cars, nil
}

// Get returns a car only when both the car and its popularity record exist;
// a car without ranking data is reported as missing.
func (s *CarService) Get(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load car %d: %w", id, err)
	}
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Popularity{}).
		Where("car_id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("load popularity for car %d: %w", id, err)
	}
	if count == 0 {
		return nil, fmt.Errorf("car %d has no popularity record: %w", id, ErrNotFound)
	}
	return &car, nil
}

// Create registers a car with its dealer and a zero-likes popularity record,
// both in one transaction.
func (s *CarService) Create(ctx context.Context, in CarInput) (*models.Car, error) {
	var dealer models.Dealer
	if err := s.DB.WithContext(ctx).First(&dealer, in.DealerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dealer %d: %w", in.DealerID, ErrNotFound)
		}
		return nil, fmt.Errorf("load dealer %d: %w", in.DealerID, err)
	}

	car := models.Car{
		Brand:       in.Brand,
		Model:       in.Model,
		Power:       in.Power,
		Year:        in.Year,
		Color:       in.Color,
		ImageURI:    in.ImageURI,
		Description: in.Description,
		DealerID:    dealer.ID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&car).Error; err != nil {
			return fmt.Errorf("save car: %w", err)
		}
		pop := models.Popularity{CarID: car.ID, Likes: 0}
		if err := tx.Create(&pop).Error; err != nil {
			return fmt.Errorf("save popularity for car %d: %w", car.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("car created", "car", car.ID, "dealer", dealer.ID, "brand", car.Brand, "model", car.Model)
	return &car, nil
}

func (s *CarService) Update(ctx context.Context, id uint, in CarInput) (*models.Car, error) {
	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load car %d: %w", id, err)
	}
	var dealer models.Dealer
	if err := s.DB.WithContext(ctx).First(&dealer, in.DealerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dealer %d: %w", in.DealerID, ErrNotFound)
		}
		return nil, fmt.Errorf("load dealer %d: %w", in.DealerID, err)
	}

	car.Brand = in.Brand
	car.Model = in.Model
	car.Power = in.Power
	car.Year = in.Year
	car.Color = in.Color
	car.ImageURI = in.ImageURI
	car.Description = in.Description
	car.DealerID = dealer.ID
	if err := s.DB.WithContext(ctx).Save(&car).Error; err != nil {
		return nil, fmt.Errorf("save car %d: %w", id, err)
	}
	return &car, nil
}

// Delete removes a car together with everything referencing it. The cascade
// runs in one transaction and in dependency order: rentals, then the
// popularity record, then the car itself. Sub-steps matching zero rows
// succeed.
func (s *CarService) Delete(ctx context.Context, id uint) error {
	var car models.Car
	if err := s.DB.WithContext(ctx).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("load car %d: %w", id, err)
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteCarGraph(tx, car.ID)
	})
	if err != nil {
		return err
	}
	s.Log.Info("car deleted", "car", car.ID)
	return nil
}

// deleteCarGraph removes one car and its dependents inside the caller's
// transaction. Shared with the dealer cascade.
func deleteCarGraph(tx *gorm.DB, carID uint) error {
	if err := tx.Where("car_id = ?", carID).Delete(&models.Rental{}).Error; err != nil {
		return fmt.Errorf("delete rentals for car %d: %w", carID, err)
	}
	if err := tx.Where("car_id = ?", carID).Delete(&models.Popularity{}).Error; err != nil {
		return fmt.Errorf("delete popularity for car %d: %w", carID, err)
	}
	if err := tx.Delete(&models.Car{}, carID).Error; err != nil {
		return fmt.Errorf("delete car %d: %w", carID, err)
	}
	return nil
}

// WithDealer returns a car together with its dealer. Missing car or missing
// dealer link both report NotFound.
func (s *CarService) WithDealer(ctx context.Context, id uint) (*models.Car, *models.Dealer, error) {
	var car models.Car
	if err := s.DB.WithContext(ctx).Preload("Dealer").First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("car %d: %w", id, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("load car %d: %w", id, err)
	}
	if car.Dealer == nil {
		return nil, nil, fmt.Errorf("car %d has no dealer: %w", id, ErrNotFound)
	}
	return &car, car.Dealer, nil
}

// TopCars ranks cars by likes, descending, with engine power as tie-break.
// Entries equal on both keys keep insertion order. Having no popularity data
// at all is NotFound rather than an empty success.
func (s *CarService) TopCars(ctx context.Context, n int) ([]RankedCar, error) {
	var pops []models.Popularity
	if err := s.DB.WithContext(ctx).Preload("Car").Order("id").Find(&pops).Error; err != nil {
		return nil, fmt.Errorf("list popularity: %w", err)
	}
	if len(pops) == 0 {
		return nil, fmt.Errorf("no popularity data: %w", ErrNotFound)
	}

	power := func(p models.Popularity) int {
		if p.Car == nil {
			return 0
		}
		return p.Car.Power
	}
	sort.SliceStable(pops, func(i, j int) bool {
		if pops[i].Likes != pops[j].Likes {
			return pops[i].Likes > pops[j].Likes
		}
		return power(pops[i]) > power(pops[j])
	})

	if n > len(pops) {
		n = len(pops)
	}
	ranked := make([]RankedCar, 0, n)
	for _, p := range pops[:n] {
		if p.Car == nil {
			continue
		}
		ranked = append(ranked, RankedCar{Car: *p.Car, Likes: p.Likes})
	}
	return ranked, nil
}
