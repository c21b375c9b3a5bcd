package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// AvailabilityChecker decides whether a candidate rental period collides with
// the existing rentals of a car. Intervals are closed on both ends: two
// ranges that only touch on a boundary day still overlap.
type AvailabilityChecker struct {
	DB *gorm.DB
}

func NewAvailabilityChecker(db *gorm.DB) *AvailabilityChecker {
	return &AvailabilityChecker{DB: db}
}

// IsCarRented reports whether any rental for carID overlaps [start, end],
// using the predicate start_date <= end AND end_date >= start. A car without
// rentals, including an unknown id, is not rented. No side effects.
func (a *AvailabilityChecker) IsCarRented(ctx context.Context, carID uint, start, end models.Date) (bool, error) {
	var count int64
	err := a.DB.WithContext(ctx).
		Model(&models.Rental{}).
		Where("car_id = ? AND start_date <= ? AND end_date >= ?", carID, end, start).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check rentals for car %d: %w", carID, err)
	}
	return count > 0, nil
}
