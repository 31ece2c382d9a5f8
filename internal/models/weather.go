package models

import "time"

// Condition is the coarse weather category shown for a reading
type Condition int

const (
	ConditionUnknown Condition = iota // no reading text assigned
	ConditionClear
	ConditionCloudy
	ConditionRain
	ConditionSnow
)

// String returns the display text for the condition. Unknown has none.
func (c Condition) String() string {
	switch c {
	case ConditionClear:
		return "Clear"
	case ConditionCloudy:
		return "Cloudy"
	case ConditionRain:
		return "Rain"
	case ConditionSnow:
		return "Snow"
	}
	return ""
}

// HourlySeries holds the forecast API's parallel hourly arrays.
// Every slice is indexed by hour-of-forecast and must have the same length.
type HourlySeries struct {
	Time             []string  // local time, "2006-01-02T15:04"
	Temperature      []float64 // °C
	RelativeHumidity []int     // %
	WeatherCode      []int     // WMO code
	WindSpeed        []float64 // km/h
}

// Reading is a normalized summary of one hour's weather
type Reading struct {
	Temperature float64 // °C
	Condition   Condition
	Humidity    int     // %
	WindSpeed   float64 // km/h

	Time     string // timestamp of the hour the values were read from
	Fallback bool   // true when the current hour was not found and the first hour was used
}

// Daylight holds sunrise and sunset for a location on a given day
type Daylight struct {
	Sunrise time.Time
	Sunset  time.Time
}
