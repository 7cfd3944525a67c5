package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// seedCityRows are the base city records matching the enrichment catalog
// keys. Landmarks are stored as JSON-encoded arrays like any other row.
var seedCityRows = []DBCity{
	{
		ID:          "b7e9c1a0-0001-4a00-8000-000000000001",
		Name:        "Tokyo",
		Country:     "Japan",
		Population:  37400000,
		Description: "The world's largest metropolitan area, blending cutting-edge technology with centuries of tradition.",
		Landmarks:   `["Shibuya Crossing","Senso-ji Temple","Tokyo Tower","Meiji Shrine"]`,
	},
	{
		ID:          "b7e9c1a0-0002-4a00-8000-000000000002",
		Name:        "Paris",
		Country:     "France",
		Population:  11000000,
		Description: "The capital of France, famed for its art, architecture, cuisine, and life along the Seine.",
		Landmarks:   `["Eiffel Tower","Louvre Museum","Notre-Dame","Arc de Triomphe"]`,
	},
	{
		ID:          "b7e9c1a0-0003-4a00-8000-000000000003",
		Name:        "New York City",
		Country:     "United States",
		Population:  18800000,
		Description: "A global center of finance, media, and culture across five boroughs.",
		Landmarks:   `["Statue of Liberty","Central Park","Times Square","Brooklyn Bridge"]`,
	},
	{
		ID:          "b7e9c1a0-0004-4a00-8000-000000000004",
		Name:        "London",
		Country:     "United Kingdom",
		Population:  9000000,
		Description: "A historic capital on the Thames where royal heritage meets modern global finance.",
		Landmarks:   `["Big Ben","Tower of London","British Museum","Buckingham Palace"]`,
	},
	{
		ID:          "b7e9c1a0-0005-4a00-8000-000000000005",
		Name:        "Sydney",
		Country:     "Australia",
		Population:  5300000,
		Description: "Australia's largest city, built around one of the world's great natural harbours.",
		Landmarks:   `["Sydney Opera House","Harbour Bridge","Bondi Beach","Royal Botanic Garden"]`,
	},
}

// SeedCities inserts the base city rows on first boot. Rows that already
// exist are left untouched, so the seed is safe to run on every start.
func SeedCities(db *gorm.DB) error {
	for _, row := range seedCityRows {
		var existing DBCity
		err := db.Where("id = ?", row.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check city %s: %w", row.Name, err)
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed city %s: %w", row.Name, err)
		}
	}
	return nil
}
