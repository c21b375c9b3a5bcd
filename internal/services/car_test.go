package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DaniilSsv/rental-api/internal/models"
)

func carInput(dealerID uint, power int) CarInput {
	return CarInput{
		Brand:    "BMW",
		Model:    "330i",
		Power:    power,
		Year:     2022,
		Color:    "black",
		ImageURI: "https://images.example.com/330i.jpg",
		DealerID: dealerID,
	}
}

func TestCarCreateUnknownDealer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db, testLogger())

	_, err := svc.Create(context.Background(), carInput(55, 258))
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, countRows(t, db, &models.Car{}))
}

func TestCarCreateInitializesPopularity(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "create@example.com")
	svc := NewCarService(db, testLogger())

	car, err := svc.Create(context.Background(), carInput(dealer.ID, 258))
	require.NoError(t, err)
	require.NotZero(t, car.ID)

	var pop models.Popularity
	require.NoError(t, db.Where("car_id = ?", car.ID).First(&pop).Error)
	require.Zero(t, pop.Likes, "a fresh car starts with zero likes")
}

func TestCarYearBounds(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "year@example.com")
	svc := NewCarService(db, testLogger())

	in := carInput(dealer.ID, 100)
	in.Year = 1885
	_, err := svc.Create(context.Background(), in)
	require.Error(t, err, "pre-automobile years are rejected at write time")

	in.Year = 2999
	_, err = svc.Create(context.Background(), in)
	require.Error(t, err, "future years are rejected at write time")

	require.Zero(t, countRows(t, db, &models.Car{}))
}

func TestCarGetRequiresPopularityRecord(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "get@example.com")
	svc := NewCarService(db, testLogger())

	car, err := svc.Create(context.Background(), carInput(dealer.ID, 258))
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), car.ID)
	require.NoError(t, err)
	require.Equal(t, car.ID, got.ID)

	require.NoError(t, db.Where("car_id = ?", car.ID).Delete(&models.Popularity{}).Error)
	_, err = svc.Get(context.Background(), car.ID)
	require.ErrorIs(t, err, ErrNotFound, "a car without ranking data reads as missing")

	_, err = svc.Get(context.Background(), 321)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCarDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "cascade@example.com")
	svc := NewCarService(db, testLogger())

	car, err := svc.Create(context.Background(), carInput(dealer.ID, 258))
	require.NoError(t, err)
	other := createCar(t, db, dealer.ID, 150)
	createRental(t, db, car.ID, date(2025, 1, 1), date(2025, 1, 5))
	createRental(t, db, car.ID, date(2025, 2, 1), date(2025, 2, 5))
	createRental(t, db, other.ID, date(2025, 1, 1), date(2025, 1, 5))

	require.NoError(t, svc.Delete(context.Background(), car.ID))

	require.Zero(t, countRows(t, db, &models.Popularity{}))
	var rentals []models.Rental
	require.NoError(t, db.Find(&rentals).Error)
	require.Len(t, rentals, 1, "only the other car's rental survives")
	require.Equal(t, other.ID, rentals[0].CarID)
	var cars []models.Car
	require.NoError(t, db.Find(&cars).Error)
	require.Len(t, cars, 1)
	require.Equal(t, other.ID, cars[0].ID)
}

func TestCarDeleteUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db, testLogger())
	require.ErrorIs(t, svc.Delete(context.Background(), 404), ErrNotFound)
}

func TestCarUpdate(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "update@example.com")
	svc := NewCarService(db, testLogger())

	car, err := svc.Create(context.Background(), carInput(dealer.ID, 258))
	require.NoError(t, err)

	in := carInput(dealer.ID, 300)
	in.Color = "red"
	updated, err := svc.Update(context.Background(), car.ID, in)
	require.NoError(t, err)
	require.Equal(t, 300, updated.Power)
	require.Equal(t, "red", updated.Color)

	_, err = svc.Update(context.Background(), 999, in)
	require.ErrorIs(t, err, ErrNotFound)

	in.DealerID = 999
	_, err = svc.Update(context.Background(), car.ID, in)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCarWithDealer(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "joined@example.com")
	svc := NewCarService(db, testLogger())

	car, err := svc.Create(context.Background(), carInput(dealer.ID, 258))
	require.NoError(t, err)

	gotCar, gotDealer, err := svc.WithDealer(context.Background(), car.ID)
	require.NoError(t, err)
	require.Equal(t, car.ID, gotCar.ID)
	require.Equal(t, dealer.ID, gotDealer.ID)
	require.Equal(t, "joined@example.com", gotDealer.Email)

	_, _, err = svc.WithDealer(context.Background(), 777)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTopCarsOrdering(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "ranking@example.com")
	svc := NewCarService(db, testLogger())

	weak := createCar(t, db, dealer.ID, 150)
	strong := createCar(t, db, dealer.ID, 200)
	fast := createCar(t, db, dealer.ID, 300)
	for carID, likes := range map[uint]int{weak.ID: 10, strong.ID: 10, fast.ID: 5} {
		require.NoError(t, db.Create(&models.Popularity{CarID: carID, Likes: likes}).Error)
	}

	ranked, err := svc.TopCars(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	// Likes descending, engine power breaks the tie.
	require.Equal(t, strong.ID, ranked[0].Car.ID)
	require.Equal(t, weak.ID, ranked[1].Car.ID)
	require.Equal(t, fast.ID, ranked[2].Car.ID)
	require.Equal(t, 10, ranked[0].Likes)
	require.Equal(t, 5, ranked[2].Likes)
}

func TestTopCarsLimit(t *testing.T) {
	db := setupTestDB(t)
	dealer := createDealer(t, db, "limit@example.com")
	svc := NewCarService(db, testLogger())

	for i := 0; i < 6; i++ {
		car := createCar(t, db, dealer.ID, 100+i)
		require.NoError(t, db.Create(&models.Popularity{CarID: car.ID, Likes: i}).Error)
	}

	ranked, err := svc.TopCars(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, ranked, 4)
	require.Equal(t, 5, ranked[0].Likes)
}

func TestTopCarsNoData(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCarService(db, testLogger())

	_, err := svc.TopCars(context.Background(), 4)
	require.ErrorIs(t, err, ErrNotFound, "no ranking data is not an empty success")
}
