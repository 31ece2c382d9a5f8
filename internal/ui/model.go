package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/places"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch    AppState = iota // Waiting for a place name
	StateLoading                   // Lookup in flight
	StateDisplay                   // Showing a reading
	StatePlaceList                 // Choosing a saved place
	StateError                     // Last lookup failed
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error
	status string // one-line feedback, e.g. "Saved Chicago"

	// Search
	searchInput textinput.Model
	searchQuery string // Last search query

	// Services
	lookup Lookuper
	places *places.Service // nil when saved places are unavailable
	assets map[models.Condition]string

	// Data
	result *weather.Result

	// Saved places
	placeList  list.Model
	savedCount int

	spinner  spinner.Model
	startCmd tea.Cmd
}

// NewModel creates a new application model. placeSvc may be nil.
func NewModel(lookup Lookuper, placeSvc *places.Service, assets map[models.Condition]string) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a place name (e.g. Chicago or New York)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = cardWidth - 4

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if assets == nil {
		assets = config.DefaultConditionAssets()
	}

	return Model{
		state:       StateSearch,
		searchInput: ti,
		lookup:      lookup,
		places:      placeSvc,
		assets:      assets,
		spinner:     s,
	}
}

// WithInitialLocation starts a lookup for name as soon as the program runs
func (m Model) WithInitialLocation(name string) Model {
	name = strings.TrimSpace(name)
	if name == "" {
		return m
	}
	m.searchQuery = name
	m.state = StateLoading
	m.startCmd = lookupPlace(m.lookup, name)
	return m
}

// WithInitialPlace loads a saved place as soon as the program runs
func (m Model) WithInitialPlace(name string) Model {
	if name == "" {
		return m
	}
	m.searchQuery = name
	m.state = StateLoading
	if m.places == nil {
		m.startCmd = func() tea.Msg { return errMsg{err: errPlacesUnavailable} }
		return m
	}
	m.startCmd = fetchPlaceByName(m.places, name)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if m.startCmd != nil {
		return tea.Batch(m.spinner.Tick, m.startCmd)
	}
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StatePlaceList {
			m.placeList.SetSize(msg.Width-4, msg.Height-4)
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case lookupMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.result = msg.result
		m.err = nil
		m.status = ""
		m.state = StateDisplay
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case placeFetchedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading saved place: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.searchQuery = msg.place.Name
		return m, lookupSavedPlace(m.lookup, *msg.place)

	case placesFetchedMsg:
		if msg.err != nil {
			m.status = "Could not load saved places: " + msg.err.Error()
			return m, nil
		}
		m.savedCount = len(msg.places)
		m.placeList = createPlaceList(msg.places, m.listWidth(), m.listHeight())
		m.state = StatePlaceList
		return m, nil

	case placeSavedMsg:
		if msg.err != nil {
			m.status = "Could not save place: " + msg.err.Error()
		} else {
			m.status = "Saved " + msg.place.Name
		}
		return m, nil

	case placeDeletedMsg:
		if msg.err != nil {
			m.status = "Could not delete place: " + msg.err.Error()
			return m, nil
		}
		m.status = "Deleted " + msg.name
		return m, fetchSavedPlaces(m.places)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Global keys
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// State-specific handling
		switch m.state {
		case StateSearch, StateDisplay:
			return m.handleSearchInput(keyMsg)

		case StatePlaceList:
			return m.handlePlaceList(keyMsg)

		case StateLoading:
			return m, nil

		case StateError:
			// Any key returns to search; typing starts a new query
			m.err = nil
			m.state = StateSearch
			m.searchInput.Focus()
			if keyMsg.Type == tea.KeyRunes {
				m.searchInput.SetValue("")
				return m.handleSearchInput(keyMsg)
			}
			return m, textinput.Blink
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateSearch, StateDisplay:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StatePlaceList:
		m.placeList, cmd = m.placeList.Update(msg)
	}

	return m, cmd
}

// handleSearchInput handles keyboard input in search and display states
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.status = ""
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, lookupPlace(m.lookup, query))

	case tea.KeyCtrlS:
		if m.result == nil {
			return m, nil
		}
		if m.places == nil {
			m.status = "Saved places are unavailable"
			return m, nil
		}
		return m, savePlace(m.places, m.result)

	case tea.KeyCtrlP:
		if m.places == nil {
			m.status = "Saved places are unavailable"
			return m, nil
		}
		return m, fetchSavedPlaces(m.places)
	}

	// Clear feedback when typing
	m.status = ""

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handlePlaceList handles keyboard input in the saved place list
func (m Model) handlePlaceList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	filtering := m.placeList.FilterState() == list.Filtering

	if !filtering {
		switch {
		case msg.Type == tea.KeyEnter:
			if item, ok := m.placeList.SelectedItem().(placeItem); ok {
				m.searchQuery = item.place.Name
				m.status = ""
				m.state = StateLoading
				return m, tea.Batch(m.spinner.Tick, lookupSavedPlace(m.lookup, item.place))
			}
			return m, nil

		case msg.String() == "d":
			if item, ok := m.placeList.SelectedItem().(placeItem); ok {
				return m, deletePlace(m.places, item.place.Name)
			}
			return m, nil

		case msg.Type == tea.KeyEsc && m.placeList.FilterState() == list.Unfiltered:
			m.state = m.returnState()
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	m.placeList, cmd = m.placeList.Update(msg)
	return m, cmd
}

// returnState is where the user lands when leaving the place list
func (m Model) returnState() AppState {
	if m.result != nil {
		return StateDisplay
	}
	return StateSearch
}

func (m Model) listWidth() int {
	if m.width > 4 {
		return m.width - 4
	}
	return cardWidth
}

func (m Model) listHeight() int {
	if m.height > 4 {
		return m.height - 4
	}
	return 20
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StatePlaceList:
		return m.viewPlaceList()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render(m.assets[models.ConditionClear] + " Weather Terminal")
	subtitle := mutedStyle.Render("Current conditions from Open-Meteo")

	var sections []string
	sections = append(sections, title, subtitle, "", searchBoxStyle.Render(m.searchInput.View()))

	if m.status != "" {
		sections = append(sections, "", mutedStyle.Render(m.status))
	}

	help := helpStyle.Render("Enter: Search • Ctrl+P: Saved places • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	s := fmt.Sprintf("%s Looking up weather", m.spinner.View())
	if m.searchQuery != "" {
		s += fmt.Sprintf(" for %s", m.searchQuery)
	}
	return s + "..."
}

// viewDisplay renders the reading for the current result
func (m Model) viewDisplay() string {
	if m.result == nil {
		return "No location selected"
	}

	loc := m.result.Location
	header := titleStyle.Render(loc.DisplayName())
	coords := mutedStyle.Render(fmt.Sprintf("%.4f, %.4f", loc.Latitude, loc.Longitude))

	asset := m.assets[m.result.Reading.Condition]
	if asset == "" {
		asset = m.assets[models.ConditionUnknown]
	}

	var sections []string
	sections = append(sections,
		header,
		coords,
		"",
		renderReadingCard(m.result, asset),
	)

	if updated := formatUpdated(m.result.FetchedAt); updated != "" {
		sections = append(sections, mutedStyle.Render(updated))
	}

	if m.status != "" {
		sections = append(sections, successStyle.Render(m.status))
	}

	sections = append(sections, "", searchBoxStyle.Render(m.searchInput.View()))

	help := helpStyle.Render("Enter: Search • Ctrl+S: Save place • Ctrl+P: Saved places • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewPlaceList renders the saved place selection list
func (m Model) viewPlaceList() string {
	var sections []string
	if m.savedCount == 0 {
		sections = append(sections, mutedStyle.Render("No saved places yet. Look up a place and press Ctrl+S."))
	}
	sections = append(sections, m.placeList.View())

	if m.status != "" {
		sections = append(sections, mutedStyle.Render(m.status))
	}

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • D: Delete • Esc: Back • Ctrl+C: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorTitleStyle.Render("✗ " + errorTitle(m.err))

	var errorMsg, detail string
	if m.err != nil {
		errorMsg = httpapi.UserMessage(m.err)
		detail = mutedStyle.Render(m.err.Error())
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return to search • Ctrl+C: Quit")

	var sections []string
	sections = append(sections, title, "", errorMsg)
	if detail != "" {
		sections = append(sections, detail)
	}
	sections = append(sections, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// errorTitle names the kind of failure
func errorTitle(err error) string {
	if errors.Is(err, places.ErrNotFound) {
		return "Saved place not found"
	}
	if errors.Is(err, errPlacesUnavailable) {
		return "Saved places unavailable"
	}
	switch httpapi.KindOf(err) {
	case httpapi.KindTransport:
		return "Connection failed"
	case httpapi.KindHTTPStatus:
		return "Service error"
	case httpapi.KindParse:
		return "Unreadable response"
	case httpapi.KindNoCandidate:
		return "Location not found"
	case httpapi.KindIndexMismatch:
		return "Incomplete forecast"
	case httpapi.KindInvalidInput:
		return "Invalid search"
	}
	return "Error"
}
