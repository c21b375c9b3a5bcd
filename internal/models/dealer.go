package models

// Dealer owns the cars it lists. Ownership is exclusive: deleting a dealer
// takes its cars (and their rentals and popularity records) with it.
type Dealer struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Address  string `gorm:"size:255;not null" json:"address"`
	City     string `gorm:"size:100;not null" json:"city"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Postcode int    `gorm:"not null" json:"postcode"`
	Phone    *int   `json:"phone,omitempty"`
	Cars     []Car  `gorm:"foreignKey:DealerID" json:"cars,omitempty"`
}
