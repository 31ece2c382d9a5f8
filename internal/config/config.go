package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/ngmaloney/weather-terminal/internal/database"
	"github.com/ngmaloney/weather-terminal/internal/geocoding"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
)

var validate = validator.New()

type AppConfig struct {
	GeocodingURL   string        `validate:"required,url"`
	ForecastURL    string        `validate:"required,url"`
	GeocodingCount int           `validate:"min=1,max=100"`
	Language       string        `validate:"required,alpha,len=2"`
	Timezone       string        `validate:"required,timezone"`
	HTTPTimeout    time.Duration `validate:"gt=0"`
	DBPath         string        `validate:"required"`

	// DebugLog is a file path for logs. Logs are discarded when empty.
	DebugLog string

	// ConditionAssets maps each condition to the asset shown for it.
	ConditionAssets map[models.Condition]string
}

// DefaultConditionAssets are the icons used when no asset is configured
func DefaultConditionAssets() map[models.Condition]string {
	return map[models.Condition]string{
		models.ConditionClear:   "☀",
		models.ConditionCloudy:  "☁",
		models.ConditionRain:    "☂",
		models.ConditionSnow:    "❄",
		models.ConditionUnknown: "?",
	}
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		GeocodingURL: getenvDefault("WEATHER_GEOCODING_URL", geocoding.DefaultBaseURL),
		ForecastURL:  getenvDefault("WEATHER_FORECAST_URL", openmeteo.DefaultBaseURL),
		Language:     getenvDefault("WEATHER_LANGUAGE", geocoding.DefaultLanguage),
		Timezone:     getenvDefault("WEATHER_TIMEZONE", openmeteo.DefaultTimezone),
		DBPath:       getenvDefault("WEATHER_DB_PATH", database.DBPath()),
		DebugLog:     os.Getenv("WEATHER_DEBUG_LOG"),
	}

	count, err := getenvInt("WEATHER_GEOCODING_COUNT", geocoding.DefaultCount)
	if err != nil {
		return nil, err
	}
	cfg.GeocodingCount = count

	timeout, err := time.ParseDuration(getenvDefault("WEATHER_HTTP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.ConditionAssets = DefaultConditionAssets()
	overrides := map[string]models.Condition{
		"WEATHER_ASSET_CLEAR":   models.ConditionClear,
		"WEATHER_ASSET_CLOUDY":  models.ConditionCloudy,
		"WEATHER_ASSET_RAIN":    models.ConditionRain,
		"WEATHER_ASSET_SNOW":    models.ConditionSnow,
		"WEATHER_ASSET_UNKNOWN": models.ConditionUnknown,
	}
	for key, cond := range overrides {
		if v := os.Getenv(key); v != "" {
			cfg.ConditionAssets[cond] = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Location returns the timezone the forecast is requested in
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Asset returns the configured asset for a condition
func (c *AppConfig) Asset(cond models.Condition) string {
	if a, ok := c.ConditionAssets[cond]; ok {
		return a
	}
	return c.ConditionAssets[models.ConditionUnknown]
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
