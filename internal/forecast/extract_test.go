package forecast

import (
	"testing"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() *models.HourlySeries {
	return &models.HourlySeries{
		Time:             []string{"2024-01-01T00:00", "2024-01-01T01:00"},
		Temperature:      []float64{5.0, 7.2},
		RelativeHumidity: []int{80, 90},
		WeatherCode:      []int{0, 61},
		WindSpeed:        []float64{10.0, 20.0},
	}
}

func TestClassifyWeatherCode(t *testing.T) {
	tests := []struct {
		from, to int
		want     models.Condition
	}{
		{0, 0, models.ConditionClear},
		{1, 3, models.ConditionCloudy},
		{51, 67, models.ConditionRain},
		{80, 99, models.ConditionRain},
		{71, 77, models.ConditionSnow},
		{4, 50, models.ConditionUnknown},
		{68, 70, models.ConditionUnknown},
		{78, 79, models.ConditionUnknown},
		{100, 120, models.ConditionUnknown},
		{-5, -1, models.ConditionUnknown},
	}

	for _, tt := range tests {
		for code := tt.from; code <= tt.to; code++ {
			assert.Equal(t, tt.want, ClassifyWeatherCode(code), "code %d", code)
		}
	}

	assert.Equal(t, models.ConditionUnknown, ClassifyWeatherCode(10))
}

func TestCurrentHour(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 7, 42, 13, 0, time.UTC)

	assert.Equal(t, "2024-01-01T07:00", CurrentHour(now, time.UTC))
	assert.Equal(t, "2024-01-01T01:00", CurrentHour(now, chicago))
	assert.Equal(t, "2024-01-01T07:00", CurrentHour(now, nil))

	midnight := time.Date(2024, 3, 9, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-08T18:00", CurrentHour(midnight, chicago))
}

func TestResolveIndex(t *testing.T) {
	times := []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T02:00"}

	idx, found := ResolveIndex(times, "2024-01-01T01:00")
	assert.Equal(t, 1, idx)
	assert.True(t, found)

	idx, found = ResolveIndex(times, "2024-01-01t02:00")
	assert.Equal(t, 2, idx)
	assert.True(t, found, "match is case-insensitive")

	idx, found = ResolveIndex(times, "2030-06-01T12:00")
	assert.Equal(t, 0, idx, "missing hour falls back to index 0")
	assert.False(t, found)

	idx, found = ResolveIndex(nil, "2024-01-01T00:00")
	assert.Equal(t, 0, idx)
	assert.False(t, found)
}

func TestResolveIndex_FirstMatchWins(t *testing.T) {
	times := []string{"2024-01-01T00:00", "2024-01-01T01:00", "2024-01-01T01:00"}

	idx, _ := ResolveIndex(times, "2024-01-01T01:00")
	assert.Equal(t, 1, idx)
}

func TestAssemble(t *testing.T) {
	reading, err := Assemble(sampleSeries(), 1)
	require.NoError(t, err)

	assert.Equal(t, 7.2, reading.Temperature)
	assert.Equal(t, models.ConditionRain, reading.Condition)
	assert.Equal(t, 90, reading.Humidity)
	assert.Equal(t, 20.0, reading.WindSpeed)
	assert.Equal(t, "2024-01-01T01:00", reading.Time)
	assert.False(t, reading.Fallback)
}

func TestAssemble_IndexMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *models.HourlySeries)
		index  int
	}{
		{"short temperature", func(s *models.HourlySeries) { s.Temperature = s.Temperature[:1] }, 1},
		{"long humidity", func(s *models.HourlySeries) { s.RelativeHumidity = append(s.RelativeHumidity, 70) }, 0},
		{"missing weather code", func(s *models.HourlySeries) { s.WeatherCode = nil }, 0},
		{"short wind speed", func(s *models.HourlySeries) { s.WindSpeed = s.WindSpeed[:1] }, 1},
		{"empty series", func(s *models.HourlySeries) { *s = models.HourlySeries{} }, 0},
		{"index out of range", func(s *models.HourlySeries) {}, 2},
		{"negative index", func(s *models.HourlySeries) {}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSeries()
			tt.mutate(s)

			_, err := Assemble(s, tt.index)
			assert.ErrorIs(t, err, httpapi.ErrIndexMismatch)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), httpapi.ErrIndexMismatch)
}

func TestCurrentReading(t *testing.T) {
	now := time.Date(2024, 1, 1, 1, 30, 0, 0, time.UTC)

	reading, err := CurrentReading(sampleSeries(), now, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, models.Reading{
		Temperature: 7.2,
		Condition:   models.ConditionRain,
		Humidity:    90,
		WindSpeed:   20.0,
		Time:        "2024-01-01T01:00",
	}, reading)
}

func TestCurrentReading_Fallback(t *testing.T) {
	now := time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC)

	reading, err := CurrentReading(sampleSeries(), now, time.UTC)
	require.NoError(t, err)

	assert.True(t, reading.Fallback)
	assert.Equal(t, "2024-01-01T00:00", reading.Time)
	assert.Equal(t, 5.0, reading.Temperature)
	assert.Equal(t, models.ConditionClear, reading.Condition)
	assert.Equal(t, 80, reading.Humidity)
	assert.Equal(t, 10.0, reading.WindSpeed)
}

func TestCurrentReading_Mismatch(t *testing.T) {
	s := sampleSeries()
	s.WindSpeed = []float64{10.0}

	_, err := CurrentReading(s, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.ErrorIs(t, err, httpapi.ErrIndexMismatch)
}
