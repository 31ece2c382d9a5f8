package openmeteo

import (
	"context"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// HourlyForecaster defines the interface for fetching hourly forecast series
type HourlyForecaster interface {
	// GetHourly retrieves the hourly forecast series for a location
	GetHourly(ctx context.Context, lat, lon float64) (*models.HourlySeries, error)
}

// Geocoder defines the interface for resolving a place name to a location
type Geocoder interface {
	// Geocode returns the best matching candidate for name
	Geocode(ctx context.Context, name string) (*models.Location, error)
}
