package places

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// Service orchestrates saved place operations
type Service struct {
	repo *Repository
}

// NewService creates a new place service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// SaveFromLookup saves the location of a lookup result under its display name
func (s *Service) SaveFromLookup(result *weather.Result) (*models.Place, error) {
	if result == nil {
		return nil, fmt.Errorf("nothing to save")
	}

	name := result.Location.DisplayName()
	query := strings.TrimSpace(result.Query)
	if query == "" {
		query = name
	}

	place := &models.Place{
		Name:      name,
		Query:     query,
		Latitude:  result.Location.Latitude,
		Longitude: result.Location.Longitude,
	}

	if err := s.repo.SavePlace(place); err != nil {
		return nil, err
	}

	return place, nil
}

func (s *Service) ListPlaces() ([]models.Place, error) {
	return s.repo.ListPlaces()
}

func (s *Service) GetPlace(name string) (*models.Place, error) {
	return s.repo.GetPlace(name)
}

func (s *Service) DeletePlace(name string) error {
	return s.repo.DeletePlace(name)
}
