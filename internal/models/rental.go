package models

// Rental books a car for a closed [StartDate, EndDate] interval. Per car, no
// two rentals may overlap; touching boundary days count as overlapping.
type Rental struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	CarID          uint    `gorm:"index;not null" json:"carId"`
	Car            *Car    `gorm:"foreignKey:CarID" json:"-"`
	RentalPrice    float64 `gorm:"type:decimal(10,2);not null" json:"rentalPrice"`
	StartDate      Date    `gorm:"not null" json:"startDate"`
	EndDate        Date    `gorm:"not null" json:"endDate"`
	Deposit        float64 `gorm:"type:decimal(10,2);not null" json:"deposit"`
	PickupLocation string  `gorm:"size:255;not null" json:"pickupLocation"`
	Email          string  `gorm:"size:255;not null" json:"email"`
}
