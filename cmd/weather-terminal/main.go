package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/geocoding"
	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/openmeteo"
	"github.com/ngmaloney/weather-terminal/internal/places"
	"github.com/ngmaloney/weather-terminal/internal/ui"
	"github.com/ngmaloney/weather-terminal/internal/weather"
)

func main() {
	location := flag.String("location", "", "Place name to look up on startup (e.g., \"New York\")")
	placeName := flag.String("place", "", "Name of a saved place to load directly")
	once := flag.Bool("once", false, "Print the current reading for --location or --place and exit")
	flag.Parse()

	if *location != "" && *placeName != "" {
		fmt.Println("Error: --location and --place cannot be used together.")
		os.Exit(1)
	}
	if *once && *location == "" && *placeName == "" {
		fmt.Println("Error: --once requires --location or --place.")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "weather")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	tz, err := cfg.Location()
	if err != nil {
		fmt.Printf("Error loading timezone: %v\n", err)
		os.Exit(1)
	}

	geocoder := geocoding.NewGeocoderWithClient(
		httpapi.NewClient("geocoding", cfg.HTTPTimeout),
		cfg.GeocodingURL, cfg.GeocodingCount, cfg.Language,
	)
	forecaster := openmeteo.NewForecastClientWithClient(
		httpapi.NewClient("forecast", cfg.HTTPTimeout),
		cfg.ForecastURL, cfg.Timezone,
	)
	svc := weather.NewService(geocoder, forecaster, tz)

	var placeSvc *places.Service
	repo, err := places.NewRepository(cfg.DBPath)
	if err != nil {
		log.Printf("WARNING: saved places unavailable: %v", err)
	} else {
		defer repo.Close()
		placeSvc = places.NewService(repo)
	}

	if *once {
		if err := printOnce(svc, placeSvc, cfg, *location, *placeName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", httpapi.UserMessage(err))
			log.Printf("ERROR: %v", err)
			os.Exit(1)
		}
		return
	}

	m := ui.NewModel(svc, placeSvc, cfg.ConditionAssets).
		WithInitialLocation(*location).
		WithInitialPlace(*placeName)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}

// printOnce runs a single lookup and writes the reading to stdout
func printOnce(svc *weather.Service, placeSvc *places.Service, cfg *config.AppConfig, location, placeName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		result *weather.Result
		err    error
	)
	if placeName != "" {
		if placeSvc == nil {
			return fmt.Errorf("saved places are unavailable")
		}
		place, perr := placeSvc.GetPlace(placeName)
		if perr != nil {
			return perr
		}
		result, err = svc.LookupLocation(ctx, place.Location())
		if result != nil {
			result.Query = place.Query
		}
	} else {
		result, err = svc.Lookup(ctx, location)
	}
	if err != nil {
		return err
	}

	fmt.Print(ui.FormatPlain(result, cfg.Asset(result.Reading.Condition)))
	return nil
}
