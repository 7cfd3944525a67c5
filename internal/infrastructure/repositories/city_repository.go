package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/karthikc1125/simple-login/domain"
)

// CityRepositoryImpl implements domain.CityRepository using GORM. The
// persisted row holds the base city record; enrichment data (traffic,
// climate, quality of life) lives in an in-process table keyed by city ID.
type CityRepositoryImpl struct {
	db *gorm.DB
}

// DBCity represents the database model for City
type DBCity struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"index;size:255"`
	Country     string `gorm:"size:255"`
	Population  int64  `gorm:"index"`
	Description string
	Landmarks   string // JSON-encoded string array
}

// TableName returns the table name for GORM
func (DBCity) TableName() string {
	return "cities"
}

// NewCityRepository creates a new city repository
func NewCityRepository(db *gorm.DB) domain.CityRepository {
	return &CityRepositoryImpl{db: db}
}

// List implements domain.CityRepository, ordered by population descending
func (r *CityRepositoryImpl) List(ctx context.Context) ([]*domain.City, error) {
	var rows []DBCity
	if err := r.db.WithContext(ctx).Order("population DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	cities := make([]*domain.City, 0, len(rows))
	for i := range rows {
		cities = append(cities, r.dbToDomain(&rows[i]))
	}
	return cities, nil
}

// FindByID implements domain.CityRepository
func (r *CityRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.City, error) {
	var row DBCity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCityNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&row), nil
}

// dbToDomain converts a database row to a domain city, merging enrichment
func (r *CityRepositoryImpl) dbToDomain(row *DBCity) *domain.City {
	var landmarks []string
	if row.Landmarks != "" {
		// Malformed landmark data degrades to an empty list rather than
		// failing the whole listing.
		_ = json.Unmarshal([]byte(row.Landmarks), &landmarks)
	}
	if landmarks == nil {
		landmarks = []string{}
	}

	city := &domain.City{
		ID:          row.ID,
		Name:        row.Name,
		Country:     row.Country,
		Population:  row.Population,
		Description: row.Description,
		Landmarks:   landmarks,
	}

	enrichment, ok := cityEnrichments[row.ID]
	if !ok {
		enrichment = defaultEnrichment
	}
	city.CountryCode = enrichment.CountryCode
	city.Region = enrichment.Region
	city.Timezone = enrichment.Timezone
	city.AreaKm2 = enrichment.AreaKm2
	city.DensityPerKm2 = enrichment.DensityPerKm2
	city.Traffic = enrichment.Traffic
	city.QualityOfLife = enrichment.QualityOfLife
	city.Climate = enrichment.Climate
	city.ImageURL = enrichment.ImageURL
	city.Tagline = enrichment.Tagline
	city.Keywords = enrichment.Keywords

	return city
}
