package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// Message types for async operations

// lookupMsg is sent when a weather lookup has finished
type lookupMsg struct {
	result *weather.Result
	err    error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

var errPlacesUnavailable = errors.New("saved places are unavailable")

// Lookuper runs weather lookups
type Lookuper interface {
	Lookup(ctx context.Context, name string) (*weather.Result, error)
	LookupLocation(ctx context.Context, loc models.Location) (*weather.Result, error)
}

const lookupTimeout = 30 * time.Second

// lookupPlace geocodes query and fetches its weather in the background
func lookupPlace(svc Lookuper, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		result, err := svc.Lookup(ctx, query)
		return lookupMsg{result: result, err: err}
	}
}

// lookupSavedPlace fetches weather for a saved place without geocoding
func lookupSavedPlace(svc Lookuper, place models.Place) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		result, err := svc.LookupLocation(ctx, place.Location())
		if result != nil {
			result.Query = place.Query
		}
		return lookupMsg{result: result, err: err}
	}
}
