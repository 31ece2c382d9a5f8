package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for warnings
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Reading card, fixed width so the layout does not jump between lookups
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(cardWidth).
			Align(lipgloss.Center)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(cardWidth)

	assetStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	temperatureStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)
)

const cardWidth = 48

// conditionStyle colors the condition text
func conditionStyle(c models.Condition) lipgloss.Style {
	switch c {
	case models.ConditionClear:
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	case models.ConditionCloudy:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#B0BEC5")).Bold(true)
	case models.ConditionRain:
		return lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	case models.ConditionSnow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	}
	return mutedStyle
}
