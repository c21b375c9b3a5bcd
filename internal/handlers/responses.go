package handlers

import (
	"github.com/DaniilSsv/rental-api/internal/models"
	"github.com/DaniilSsv/rental-api/internal/services"
)

// Response types are immutable snapshots built by plain constructors; they
// pin the wire format independently of the gorm entities.

type CarResponse struct {
	ID          uint   `json:"id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Power       int    `json:"power"`
	Year        int    `json:"year"`
	Color       string `json:"color"`
	ImageURI    string `json:"imageUri"`
	Description string `json:"description,omitempty"`
}

func newCarResponse(car *models.Car) CarResponse {
	return CarResponse{
		ID:          car.ID,
		Brand:       car.Brand,
		Model:       car.Model,
		Power:       car.Power,
		Year:        car.Year,
		Color:       car.Color,
		ImageURI:    car.ImageURI,
		Description: car.Description,
	}
}

type RentalResponse struct {
	ID             uint        `json:"id"`
	CarID          uint        `json:"carId"`
	RentalPrice    float64     `json:"rentalPrice"`
	StartDate      models.Date `json:"startDate"`
	EndDate        models.Date `json:"endDate"`
	Deposit        float64     `json:"deposit"`
	PickupLocation string      `json:"pickupLocation"`
	Email          string      `json:"email"`
}

func newRentalResponse(rental *models.Rental) RentalResponse {
	return RentalResponse{
		ID:             rental.ID,
		CarID:          rental.CarID,
		RentalPrice:    rental.RentalPrice,
		StartDate:      rental.StartDate,
		EndDate:        rental.EndDate,
		Deposit:        rental.Deposit,
		PickupLocation: rental.PickupLocation,
		Email:          rental.Email,
	}
}

type CarDealerResponse struct {
	CarID          uint   `json:"carId"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	Power          int    `json:"power"`
	Year           int    `json:"year"`
	Color          string `json:"color"`
	ImageURI       string `json:"imageUri"`
	Description    string `json:"description,omitempty"`
	DealerID       uint   `json:"dealerId"`
	DealerName     string `json:"dealerName"`
	DealerAddress  string `json:"dealerAddress"`
	DealerCity     string `json:"dealerCity"`
	DealerEmail    string `json:"dealerEmail"`
	DealerPostcode int    `json:"dealerPostcode"`
	DealerPhone    *int   `json:"dealerPhone,omitempty"`
}

func newCarDealerResponse(car *models.Car, dealer *models.Dealer) CarDealerResponse {
	return CarDealerResponse{
		CarID:          car.ID,
		Brand:          car.Brand,
		Model:          car.Model,
		Power:          car.Power,
		Year:           car.Year,
		Color:          car.Color,
		ImageURI:       car.ImageURI,
		Description:    car.Description,
		DealerID:       dealer.ID,
		DealerName:     dealer.Name,
		DealerAddress:  dealer.Address,
		DealerCity:     dealer.City,
		DealerEmail:    dealer.Email,
		DealerPostcode: dealer.Postcode,
		DealerPhone:    dealer.Phone,
	}
}

type PopCarResponse struct {
	ID          uint   `json:"id"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Power       int    `json:"power"`
	Year        int    `json:"year"`
	Color       string `json:"color"`
	ImageURI    string `json:"imageUri"`
	Description string `json:"description,omitempty"`
	Likes       int    `json:"likes"`
}

func newPopCarResponse(ranked services.RankedCar) PopCarResponse {
	return PopCarResponse{
		ID:          ranked.Car.ID,
		Brand:       ranked.Car.Brand,
		Model:       ranked.Car.Model,
		Power:       ranked.Car.Power,
		Year:        ranked.Car.Year,
		Color:       ranked.Car.Color,
		ImageURI:    ranked.Car.ImageURI,
		Description: ranked.Car.Description,
		Likes:       ranked.Likes,
	}
}

type DealerResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Email    string `json:"email"`
	Postcode int    `json:"postcode"`
	Phone    *int   `json:"phone,omitempty"`
}

func newDealerResponse(dealer *models.Dealer) DealerResponse {
	return DealerResponse{
		ID:       dealer.ID,
		Name:     dealer.Name,
		Address:  dealer.Address,
		City:     dealer.City,
		Email:    dealer.Email,
		Postcode: dealer.Postcode,
		Phone:    dealer.Phone,
	}
}
