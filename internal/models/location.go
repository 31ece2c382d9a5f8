package models

import (
	"fmt"
	"time"
)

// Location is a geocoding candidate
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Region    string  `json:"admin1"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// DisplayName returns "Name, Region, Country" with empty parts left out
func (l Location) DisplayName() string {
	name := l.Name
	for _, part := range []string{l.Region, l.Country} {
		if part == "" || part == name {
			continue
		}
		if name == "" {
			name = part
			continue
		}
		name += ", " + part
	}
	if name == "" {
		return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
	}
	return name
}

// Place is a saved lookup. Looking up a saved place skips geocoding.
type Place struct {
	ID        int64     `json:"id"`    // Database Primary Key (0 if not saved)
	Name      string    `json:"name"`  // User-facing name, unique
	Query     string    `json:"query"` // Original search text
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Location converts the saved place back into a location
func (p Place) Location() Location {
	return Location{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Name:      p.Name,
	}
}
