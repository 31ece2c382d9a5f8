package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

// renderReadingCard renders the fixed-layout reading card
func renderReadingCard(result *weather.Result, asset string) string {
	if result == nil {
		return cardStyle.Render(mutedStyle.Render("No weather data available"))
	}
	r := result.Reading

	var lines []string
	lines = append(lines,
		assetStyle.Render(asset),
		temperatureStyle.Render(formatTemperature(r.Temperature)),
		conditionStyle(r.Condition).Render(conditionText(r.Condition)),
		"",
	)

	details := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Humidity ")+valueStyle.Render(formatHumidity(r.Humidity)),
		"    ",
		labelStyle.Render("Wind ")+valueStyle.Render(formatWind(r.WindSpeed)),
	)
	lines = append(lines, details)

	if d := formatDaylight(result.Daylight); d != "" {
		lines = append(lines, mutedStyle.Render(d))
	}

	if r.Fallback {
		lines = append(lines, "", warningStyle.Render(fallbackNotice(r)))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// FormatPlain renders a result as plain text for non-interactive output
func FormatPlain(result *weather.Result, asset string) string {
	if result == nil {
		return ""
	}
	r := result.Reading

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", result.Location.DisplayName())
	fmt.Fprintf(&b, "%s %s %s\n", asset, formatTemperature(r.Temperature), conditionText(r.Condition))
	fmt.Fprintf(&b, "Humidity: %s\n", formatHumidity(r.Humidity))
	fmt.Fprintf(&b, "Wind: %s\n", formatWind(r.WindSpeed))
	if d := formatDaylight(result.Daylight); d != "" {
		fmt.Fprintf(&b, "%s\n", d)
	}
	fmt.Fprintf(&b, "Hour: %s\n", r.Time)
	if r.Fallback {
		fmt.Fprintf(&b, "%s\n", fallbackNotice(r))
	}
	return b.String()
}

// formatUpdated formats how long ago the reading was fetched
func formatUpdated(fetchedAt time.Time) string {
	if fetchedAt.IsZero() {
		return ""
	}
	return "Updated " + humanize.Time(fetchedAt)
}

func formatTemperature(t float64) string {
	return fmt.Sprintf("%.1f°C", t)
}

func formatHumidity(h int) string {
	return fmt.Sprintf("%d%%", h)
}

// formatWind formats wind speed for display
func formatWind(speed float64) string {
	return fmt.Sprintf("%.1f km/h", speed)
}

// conditionText returns the condition label, or a dash when there is none
func conditionText(c models.Condition) string {
	if s := c.String(); s != "" {
		return s
	}
	return "—"
}

func formatDaylight(d models.Daylight) string {
	if d.Sunrise.IsZero() || d.Sunset.IsZero() {
		return ""
	}
	return fmt.Sprintf("Sunrise %s • Sunset %s", d.Sunrise.Format("15:04"), d.Sunset.Format("15:04"))
}

func fallbackNotice(r models.Reading) string {
	return fmt.Sprintf("⚠ Current hour not in forecast, showing %s", r.Time)
}
