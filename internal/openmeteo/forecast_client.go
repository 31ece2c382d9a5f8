package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultBaseURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultTimezone = "America/Chicago"

	hourlyVariables = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"
)

// ForecastClient implements HourlyForecaster using the Open-Meteo forecast API
type ForecastClient struct {
	baseURL  string
	timezone string
	client   *httpapi.Client
}

// NewForecastClient creates a new forecast client pinned to timezone
func NewForecastClient(timezone string) *ForecastClient {
	return &ForecastClient{
		baseURL:  DefaultBaseURL,
		timezone: timezone,
		client:   httpapi.NewClient("forecast", 10*time.Second),
	}
}

// NewForecastClientWithClient creates a forecast client that sends requests through client
func NewForecastClientWithClient(client *httpapi.Client, baseURL, timezone string) *ForecastClient {
	return &ForecastClient{
		baseURL:  baseURL,
		timezone: timezone,
		client:   client,
	}
}

// SetBaseURL sets the forecast endpoint (useful for testing)
func (c *ForecastClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// Timezone returns the timezone the forecast timestamps are expressed in
func (c *ForecastClient) Timezone() string {
	return c.timezone
}

// GetHourly retrieves the hourly series for a location
func (c *ForecastClient) GetHourly(ctx context.Context, lat, lon float64) (*models.HourlySeries, error) {
	var resp forecastResponse
	if err := c.client.GetJSON(ctx, "forecast", c.buildURL(lat, lon), &resp); err != nil {
		return nil, err
	}

	if resp.Hourly == nil {
		return nil, &httpapi.Error{Kind: httpapi.KindParse, Op: "forecast", Message: "response has no hourly data"}
	}

	return &models.HourlySeries{
		Time:             resp.Hourly.Time,
		Temperature:      resp.Hourly.Temperature,
		RelativeHumidity: resp.Hourly.RelativeHumidity,
		WeatherCode:      resp.Hourly.WeatherCode,
		WindSpeed:        resp.Hourly.WindSpeed,
	}, nil
}

// buildURL constructs the forecast URL with query parameters
func (c *ForecastClient) buildURL(lat, lon float64) string {
	params := url.Values{}
	params.Set("latitude", formatFloat(lat))
	params.Set("longitude", formatFloat(lon))
	params.Set("hourly", hourlyVariables)
	params.Set("timezone", c.timezone)

	return fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Internal types for Open-Meteo API responses

type forecastResponse struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Hourly    *hourlyArrays `json:"hourly"`
}

type hourlyArrays struct {
	Time             []string  `json:"time"`
	Temperature      []float64 `json:"temperature_2m"`
	RelativeHumidity []int     `json:"relative_humidity_2m"`
	WeatherCode      []int     `json:"weather_code"`
	WindSpeed        []float64 `json:"wind_speed_10m"`
}
