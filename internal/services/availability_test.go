package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaniilSsv/rental-api/internal/models"
)

func TestIsCarRentedClosedIntervals(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "overlap@example.com")
	car := createCar(t, db, dealer.ID, 122)
	createRental(t, db, car.ID, date(2025, 1, 1), date(2025, 1, 5))

	checker := NewAvailabilityChecker(db)

	tests := []struct {
		name   string
		start  models.Date
		end    models.Date
		rented bool
	}{
		{"shared boundary day", date(2025, 1, 5), date(2025, 1, 10), true},
		{"day after checkout", date(2025, 1, 6), date(2025, 1, 10), false},
		{"contained range", date(2025, 1, 2), date(2025, 1, 3), true},
		{"spanning range", date(2024, 12, 30), date(2025, 1, 2), true},
		{"identical range", date(2025, 1, 1), date(2025, 1, 5), true},
		{"touching start boundary", date(2024, 12, 28), date(2025, 1, 1), true},
		{"entirely before", date(2024, 12, 1), date(2024, 12, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rented, err := checker.IsCarRented(context.Background(), car.ID, tt.start, tt.end)
			require.NoError(t, err)
			require.Equal(t, tt.rented, rented)
		})
	}
}

func TestIsCarRentedUnknownCar(t *testing.T) {
	db := setupTestDB(t)
	checker := NewAvailabilityChecker(db)

	rented, err := checker.IsCarRented(context.Background(), 9999, date(2025, 1, 1), date(2025, 1, 5))
	require.NoError(t, err)
	require.False(t, rented, "a car without rentals is never rented")
}

func TestIsCarRentedIgnoresOtherCars(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "othercar@example.com")
	rentedCar := createCar(t, db, dealer.ID, 122)
	freeCar := createCar(t, db, dealer.ID, 150)
	createRental(t, db, rentedCar.ID, date(2025, 3, 1), date(2025, 3, 10))

	checker := NewAvailabilityChecker(db)

	rented, err := checker.IsCarRented(context.Background(), freeCar.ID, date(2025, 3, 1), date(2025, 3, 10))
	require.NoError(t, err)
	require.False(t, rented)
}
