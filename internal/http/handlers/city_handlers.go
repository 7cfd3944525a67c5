package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/karthikc1125/simple-login/domain"
)

// CityHandlers handles city read endpoints
type CityHandlers struct {
	cities domain.CityRepository
	logger *zap.Logger
}

// NewCityHandlers creates new city handlers
func NewCityHandlers(cities domain.CityRepository, logger *zap.Logger) *CityHandlers {
	return &CityHandlers{cities: cities, logger: logger}
}

// List returns all cities ordered by population
func (h *CityHandlers) List(c *gin.Context) {
	cities, err := h.cities.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list cities", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cities"})
		return
	}
	c.JSON(http.StatusOK, cities)
}

// Get returns one city by ID
func (h *CityHandlers) Get(c *gin.Context) {
	city, err := h.cities.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		}
		h.logger.Error("failed to load city", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city"})
		return
	}
	c.JSON(http.StatusOK, city)
}
