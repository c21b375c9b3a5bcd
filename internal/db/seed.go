package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/DaniilSsv/rental-api/internal/models"
)

// Seed inserts a small demo catalog. Re-running is safe: dealers are matched
// by email and cars by brand+model, and popularity records are only created
// when missing.
func Seed(db *gorm.DB) {
	dealers := []models.Dealer{
		{Name: "Garage Vermeulen", Address: "Stationsstraat 12", City: "Kortrijk", Email: "info@garagevermeulen.be", Postcode: 8500},
		{Name: "Autohandel Peeters", Address: "Brugsesteenweg 104", City: "Roeselare", Email: "verkoop@peeters-auto.be", Postcode: 8800},
	}
	for i := range dealers {
		if err := db.Where("email = ?", dealers[i].Email).FirstOrCreate(&dealers[i]).Error; err != nil {
			log.Printf("[DB] seed dealer %s: %v", dealers[i].Email, err)
			return
		}
	}

	cars := []models.Car{
		{Brand: "Toyota", Model: "Corolla", Power: 122, Year: 2021, Color: "white", ImageURI: "https://images.example.com/corolla.jpg", DealerID: dealers[0].ID},
		{Brand: "BMW", Model: "330i", Power: 258, Year: 2022, Color: "black", ImageURI: "https://images.example.com/330i.jpg", Description: "Sports sedan", DealerID: dealers[0].ID},
		{Brand: "Volkswagen", Model: "Golf", Power: 150, Year: 2020, Color: "blue", ImageURI: "https://images.example.com/golf.jpg", DealerID: dealers[1].ID},
	}
	for i := range cars {
		if err := db.Where("brand = ? AND model = ?", cars[i].Brand, cars[i].Model).
			FirstOrCreate(&cars[i]).Error; err != nil {
			log.Printf("[DB] seed car %s %s: %v", cars[i].Brand, cars[i].Model, err)
			return
		}
		pop := models.Popularity{CarID: cars[i].ID}
		if err := db.Where("car_id = ?", cars[i].ID).FirstOrCreate(&pop).Error; err != nil {
			log.Printf("[DB] seed popularity for car %d: %v", cars[i].ID, err)
			return
		}
	}
}
