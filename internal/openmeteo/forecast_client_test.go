package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForecastClient(t *testing.T) {
	client := NewForecastClient(DefaultTimezone)

	require.NotNil(t, client)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", client.baseURL)
	assert.Equal(t, "America/Chicago", client.Timezone())
}

func TestForecastClient_BuildURL(t *testing.T) {
	client := NewForecastClient("Europe/Berlin")
	client.SetBaseURL("https://api.example.com/v1/forecast")

	got := client.buildURL(52.52, 13.41)
	assert.Equal(t,
		"https://api.example.com/v1/forecast?hourly=temperature_2m%2Crelative_humidity_2m%2Cweather_code%2Cwind_speed_10m&latitude=52.52&longitude=13.41&timezone=Europe%2FBerlin",
		got)
}

func TestForecastClient_GetHourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "41.85003", q.Get("latitude"))
		assert.Equal(t, "-87.65005", q.Get("longitude"))
		assert.Equal(t, "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m", q.Get("hourly"))
		assert.Equal(t, "America/Chicago", q.Get("timezone"))

		data, err := os.ReadFile("../../testdata/openmeteo_forecast_response.json")
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer server.Close()

	client := NewForecastClient(DefaultTimezone)
	client.SetBaseURL(server.URL)

	series, err := client.GetHourly(context.Background(), 41.85003, -87.65005)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"}, series.Time)
	assert.Equal(t, []float64{5.0, 7.2, 6.8}, series.Temperature)
	assert.Equal(t, []int{80, 90, 85}, series.RelativeHumidity)
	assert.Equal(t, []int{0, 61, 3}, series.WeatherCode)
	assert.Equal(t, []float64{10.0, 20.0, 15.5}, series.WindSpeed)
}

func TestForecastClient_MissingHourly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": 1, "longitude": 2}`))
	}))
	defer server.Close()

	client := NewForecastClientWithClient(httpapi.NewClient("forecast", 5*time.Second), server.URL, "UTC")

	series, err := client.GetHourly(context.Background(), 1, 2)
	assert.Nil(t, series)
	assert.ErrorIs(t, err, httpapi.ErrParse)
}

func TestForecastClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"400 bad request", http.StatusBadRequest},
		{"404 not found", http.StatusNotFound},
		{"500 server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error": true, "reason": "bad"}`))
			}))
			defer server.Close()

			client := NewForecastClient(DefaultTimezone)
			client.SetBaseURL(server.URL)

			_, err := client.GetHourly(context.Background(), 41.85, -87.65)
			assert.ErrorIs(t, err, httpapi.ErrHTTPStatus)
		})
	}
}
