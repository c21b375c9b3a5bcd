package models

// Popularity counts accepted bookings per car. Exactly one record per car;
// created with zero likes when the car is registered and incremented once for
// every accepted rental.
type Popularity struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	CarID uint `gorm:"uniqueIndex;not null" json:"carId"`
	Car   *Car `gorm:"foreignKey:CarID" json:"-"`
	Likes int  `gorm:"not null;default:0" json:"likes"`
}

func (Popularity) TableName() string { return "popularity" }
