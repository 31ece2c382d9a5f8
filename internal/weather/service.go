package weather

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/forecast"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/sixdouglas/suncalc"
)

// Result is the outcome of one lookup
type Result struct {
	Query     string
	Location  models.Location
	Reading   models.Reading
	Daylight  models.Daylight
	FetchedAt time.Time
}

// Service runs lookups: geocode, then forecast, then extract
type Service struct {
	geocoder   openmeteo.Geocoder
	forecaster openmeteo.HourlyForecaster
	timezone   *time.Location
	now        func() time.Time
}

// NewService creates a lookup service. timezone must be the zone the
// forecaster requests its timestamps in.
func NewService(geocoder openmeteo.Geocoder, forecaster openmeteo.HourlyForecaster, timezone *time.Location) *Service {
	if timezone == nil {
		timezone = time.Local
	}
	return &Service{
		geocoder:   geocoder,
		forecaster: forecaster,
		timezone:   timezone,
		now:        time.Now,
	}
}

// SetClock replaces the time source (useful for testing)
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Lookup resolves name to a location and returns its current reading
func (s *Service) Lookup(ctx context.Context, name string) (*Result, error) {
	loc, err := s.geocoder.Geocode(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}

	result, err := s.LookupLocation(ctx, *loc)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", name, err)
	}
	result.Query = name
	return result, nil
}

// LookupLocation returns the current reading for an already resolved location
func (s *Service) LookupLocation(ctx context.Context, loc models.Location) (*Result, error) {
	series, err := s.forecaster.GetHourly(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	now := s.now()
	reading, err := forecast.CurrentReading(series, now, s.timezone)
	if err != nil {
		return nil, fmt.Errorf("reading current hour: %w", err)
	}

	log.Printf("reading for %s at %s: %.1f°C %s", loc.DisplayName(), reading.Time, reading.Temperature, reading.Condition)

	return &Result{
		Location:  loc,
		Reading:   reading,
		Daylight:  daylight(now.In(s.timezone), loc.Latitude, loc.Longitude),
		FetchedAt: now,
	}, nil
}

// daylight computes sunrise and sunset for the day containing t, in t's zone
func daylight(t time.Time, lat, lon float64) models.Daylight {
	times := suncalc.GetTimes(t, lat, lon)
	return models.Daylight{
		Sunrise: times["sunrise"].Value.In(t.Location()),
		Sunset:  times["sunset"].Value.In(t.Location()),
	}
}
