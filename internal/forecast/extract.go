// Package forecast picks the current hour out of an hourly forecast series
// and turns it into a normalized reading.
package forecast

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// HourLayout matches the forecast API's hourly timestamps
const HourLayout = "2006-01-02T15:00"

// CurrentHour formats now, in loc, truncated to the hour
func CurrentHour(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return now.Format(HourLayout)
}

// ResolveIndex returns the index of the first timestamp equal to target,
// ignoring case. When nothing matches it returns 0 and false.
func ResolveIndex(times []string, target string) (int, bool) {
	for i, ts := range times {
		if strings.EqualFold(ts, target) {
			return i, true
		}
	}
	return 0, false
}

// ClassifyWeatherCode maps a WMO weather code to a coarse condition
func ClassifyWeatherCode(code int) models.Condition {
	switch {
	case code == 0:
		return models.ConditionClear
	case code >= 1 && code <= 3:
		return models.ConditionCloudy
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 99):
		return models.ConditionRain
	case code >= 71 && code <= 77:
		return models.ConditionSnow
	default:
		return models.ConditionUnknown
	}
}

// Validate checks that every hourly sequence has the same, non-zero length
func Validate(series *models.HourlySeries) error {
	if series == nil || len(series.Time) == 0 {
		return &httpapi.Error{Kind: httpapi.KindIndexMismatch, Op: "extract", Message: "hourly series is empty"}
	}

	n := len(series.Time)
	lengths := []struct {
		key string
		n   int
	}{
		{"temperature_2m", len(series.Temperature)},
		{"relative_humidity_2m", len(series.RelativeHumidity)},
		{"weather_code", len(series.WeatherCode)},
		{"wind_speed_10m", len(series.WindSpeed)},
	}
	for _, l := range lengths {
		if l.n != n {
			return &httpapi.Error{
				Kind:    httpapi.KindIndexMismatch,
				Op:      "extract",
				Message: fmt.Sprintf("%s has %d values, time has %d", l.key, l.n, n),
			}
		}
	}
	return nil
}

// Assemble reads all four metrics at index. Values are passed through unconverted.
func Assemble(series *models.HourlySeries, index int) (models.Reading, error) {
	if err := Validate(series); err != nil {
		return models.Reading{}, err
	}
	if index < 0 || index >= len(series.Time) {
		return models.Reading{}, &httpapi.Error{
			Kind:    httpapi.KindIndexMismatch,
			Op:      "extract",
			Message: fmt.Sprintf("index %d out of range [0,%d)", index, len(series.Time)),
		}
	}

	return models.Reading{
		Temperature: series.Temperature[index],
		Condition:   ClassifyWeatherCode(series.WeatherCode[index]),
		Humidity:    series.RelativeHumidity[index],
		WindSpeed:   series.WindSpeed[index],
		Time:        series.Time[index],
	}, nil
}

// CurrentReading builds the reading for the hour containing now.
// If the hour is missing from the series the first hour is used and
// Reading.Fallback is set.
func CurrentReading(series *models.HourlySeries, now time.Time, loc *time.Location) (models.Reading, error) {
	if err := Validate(series); err != nil {
		return models.Reading{}, err
	}

	target := CurrentHour(now, loc)
	index, found := ResolveIndex(series.Time, target)
	if !found {
		log.Printf("warning: hour %s not in forecast (%s..%s), using first hour",
			target, series.Time[0], series.Time[len(series.Time)-1])
	}

	reading, err := Assemble(series, index)
	if err != nil {
		return models.Reading{}, err
	}
	reading.Fallback = !found
	return reading, nil
}
