package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// firstCarYear is the year the Benz Patent-Motorwagen was built.
const firstCarYear = 1886

type Car struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Brand       string  `gorm:"size:255;not null" json:"brand"`
	Model       string  `gorm:"size:255;not null" json:"model"`
	Power       int     `gorm:"not null" json:"power"`
	Year        int     `gorm:"not null" json:"year"`
	Color       string  `gorm:"size:255;not null" json:"color"`
	ImageURI    string  `gorm:"size:2048;not null" json:"imageUri"`
	Description string  `gorm:"size:3000" json:"description,omitempty"`
	DealerID    uint    `gorm:"index;not null" json:"dealerId"`
	Dealer      *Dealer `gorm:"foreignKey:DealerID" json:"-"`
}

// BeforeSave bounds the manufacture year at write time, so the rule also
// holds for updates that bypass request validation.
func (c *Car) BeforeSave(*gorm.DB) error {
	current := time.Now().Year()
	if c.Year < firstCarYear || c.Year > current {
		return fmt.Errorf("car year must be between %d and %d, got %d", firstCarYear, current, c.Year)
	}
	return nil
}
