package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// placeItem wraps a Place for use in a list
type placeItem struct {
	place models.Place
}

// FilterValue implements list.Item
func (p placeItem) FilterValue() string {
	return p.place.Name
}

// Title implements list.DefaultItem
func (p placeItem) Title() string {
	return p.place.Name
}

// Description implements list.DefaultItem
func (p placeItem) Description() string {
	desc := fmt.Sprintf("%.4f, %.4f", p.place.Latitude, p.place.Longitude)
	if p.place.Query != "" && p.place.Query != p.place.Name {
		desc = fmt.Sprintf("%q • %s", p.place.Query, desc)
	}
	return desc
}

// createPlaceList creates a list.Model from saved places
func createPlaceList(places []models.Place, width, height int) list.Model {
	items := make([]list.Item, len(places))
	for i, place := range places {
		items[i] = placeItem{place: place}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Saved Places"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}
