package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/places"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlaceService(t *testing.T) *places.Service {
	t.Helper()
	repo, err := places.NewRepository(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return places.NewService(repo)
}

// TestIntegration_LookupSaveAndReload tests the complete saved place workflow
func TestIntegration_LookupSaveAndReload(t *testing.T) {
	lookup := &mockLookup{result: sampleResult()}
	svc := newPlaceService(t)

	m, _ := update(NewModel(lookup, svc, nil), tea.WindowSizeMsg{Width: 100, Height: 30})

	// Look up a place
	m = typeString(m, "Chicago")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, lookupPlace(lookup, m.searchQuery)())
	require.Equal(t, StateDisplay, m.state)

	view := m.View()
	for _, want := range []string{"Chicago, Illinois, United States", "7.2°C", "Rain", "90%", "20.0 km/h"} {
		assert.Contains(t, view, want)
	}

	// Save it
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd, "Ctrl+S should return a save command")
	m, _ = update(m, cmd())
	assert.Contains(t, m.status, "Saved Chicago, Illinois, United States")

	// Open saved places
	m, cmd = update(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	require.NotNil(t, cmd, "Ctrl+P should return a fetch command")
	m, _ = update(m, cmd())
	require.Equal(t, StatePlaceList, m.state)
	require.Len(t, m.placeList.Items(), 1)

	// Select it - should skip geocoding
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, StateLoading, m.state)

	item := m.placeList.SelectedItem().(placeItem)
	m, _ = update(m, lookupSavedPlace(lookup, item.place)())

	assert.Equal(t, StateDisplay, m.state)
	assert.Len(t, lookup.queries, 1, "saved place skips geocoding")
	require.Len(t, lookup.located, 1)
	assert.Equal(t, 41.85003, lookup.located[0].Latitude)
	assert.Equal(t, "Chicago", m.result.Query)
}

// TestIntegration_DeletePlace tests deleting from the saved place list
func TestIntegration_DeletePlace(t *testing.T) {
	lookup := &mockLookup{result: sampleResult()}
	svc := newPlaceService(t)
	_, err := svc.SaveFromLookup(sampleResult())
	require.NoError(t, err)

	m, _ := update(NewModel(lookup, svc, nil), fetchSavedPlaces(svc)())
	require.Equal(t, StatePlaceList, m.state)

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	require.NotNil(t, cmd, "'d' should return a delete command")

	m, cmd = update(m, cmd())
	assert.Regexp(t, `^Deleted `, m.status)

	// Deletion refreshes the list
	m, _ = update(m, cmd())
	assert.Empty(t, m.placeList.Items())

	// Esc goes back to search since nothing has been looked up
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateSearch, m.state)
}

// TestIntegration_InitialPlace tests loading a saved place on startup
func TestIntegration_InitialPlace(t *testing.T) {
	lookup := &mockLookup{result: sampleResult()}
	svc := newPlaceService(t)

	m := NewModel(lookup, svc, nil).WithInitialPlace("Nowhere")
	require.Equal(t, StateLoading, m.state)

	m, _ = update(m, fetchPlaceByName(svc, "Nowhere")())

	assert.Equal(t, StateError, m.state)
	assert.ErrorIs(t, m.err, places.ErrNotFound)
	assert.Equal(t, "Saved place not found", errorTitle(m.err))
}
