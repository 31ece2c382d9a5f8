package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/places"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

type placesFetchedMsg struct {
	places []models.Place
	err    error
}

type placeSavedMsg struct {
	place *models.Place
	err   error
}

type placeFetchedMsg struct {
	place *models.Place
	err   error
}

type placeDeletedMsg struct {
	name string
	err  error
}

func fetchSavedPlaces(s *places.Service) tea.Cmd {
	return func() tea.Msg {
		list, err := s.ListPlaces()
		return placesFetchedMsg{places: list, err: err}
	}
}

func savePlace(s *places.Service, result *weather.Result) tea.Cmd {
	return func() tea.Msg {
		place, err := s.SaveFromLookup(result)
		return placeSavedMsg{place: place, err: err}
	}
}

func fetchPlaceByName(s *places.Service, name string) tea.Cmd {
	return func() tea.Msg {
		place, err := s.GetPlace(name)
		return placeFetchedMsg{place: place, err: err}
	}
}

func deletePlace(s *places.Service, name string) tea.Cmd {
	return func() tea.Msg {
		err := s.DeletePlace(name)
		return placeDeletedMsg{name: name, err: err}
	}
}
