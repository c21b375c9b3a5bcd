package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// setupTestDB opens a unique in-memory database per test to avoid cross-test
// collisions.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	require.NoError(t, db.AutoMigrate(
		&models.Dealer{}, &models.Car{}, &models.Rental{}, &models.Popularity{},
	), "migrate")
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(year, month, day int) models.Date {
	return models.NewDate(year, time.Month(month), day)
}

func createDealer(t *testing.T, db *gorm.DB, email string) models.Dealer {
	t.Helper()
	dealer := models.Dealer{
		Name:     "Garage Test",
		Address:  "Teststraat 1",
		City:     "Kortrijk",
		Email:    email,
		Postcode: 8500,
	}
	require.NoError(t, db.Create(&dealer).Error)
	return dealer
}

func createCar(t *testing.T, db *gorm.DB, dealerID uint, power int) models.Car {
	t.Helper()
	car := models.Car{
		Brand:    "Toyota",
		Model:    "Corolla",
		Power:    power,
		Year:     2021,
		Color:    "white",
		ImageURI: "https://images.example.com/corolla.jpg",
		DealerID: dealerID,
	}
	require.NoError(t, db.Create(&car).Error)
	return car
}

func createRental(t *testing.T, db *gorm.DB, carID uint, start, end models.Date) models.Rental {
	t.Helper()
	rental := models.Rental{
		CarID:          carID,
		RentalPrice:    100,
		StartDate:      start,
		EndDate:        end,
		Deposit:        500,
		PickupLocation: "Antwerp",
		Email:          "user@example.com",
	}
	require.NoError(t, db.Create(&rental).Error)
	return rental
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
