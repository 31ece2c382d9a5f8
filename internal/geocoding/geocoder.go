package geocoding

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/httpapi"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const (
	DefaultBaseURL  = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultCount    = 10
	DefaultLanguage = "en"
)

// Geocoder resolves place names to coordinates using the Open-Meteo geocoding API
type Geocoder struct {
	baseURL  string
	count    int
	language string
	client   *httpapi.Client
}

// NewGeocoder creates a new geocoder
func NewGeocoder() *Geocoder {
	return &Geocoder{
		baseURL:  DefaultBaseURL,
		count:    DefaultCount,
		language: DefaultLanguage,
		client:   httpapi.NewClient("geocoding", 10*time.Second),
	}
}

// NewGeocoderWithClient creates a geocoder that sends requests through client
func NewGeocoderWithClient(client *httpapi.Client, baseURL string, count int, language string) *Geocoder {
	return &Geocoder{
		baseURL:  baseURL,
		count:    count,
		language: language,
		client:   client,
	}
}

// SetBaseURL sets the search endpoint (useful for testing)
func (g *Geocoder) SetBaseURL(baseURL string) {
	g.baseURL = baseURL
}

// searchResponse is the geocoding API response. results is absent when nothing matched.
type searchResponse struct {
	Results []models.Location `json:"results"`
}

// EncodeName trims the place name and replaces every space with a literal '+'.
// A '+' typed by the user is sent as %2B so it does not read back as a space.
func EncodeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &httpapi.Error{Kind: httpapi.KindInvalidInput, Op: "geocode", Message: "place name cannot be empty"}
	}
	return strings.ReplaceAll(strings.ReplaceAll(name, "+", "%2B"), " ", "+"), nil
}

// Search returns every candidate for name in the order the API ranked them
func (g *Geocoder) Search(ctx context.Context, name string) ([]models.Location, error) {
	reqURL, err := g.buildURL(name)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := g.client.GetJSON(ctx, "geocode", reqURL, &resp); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

// Geocode returns the first candidate for name
func (g *Geocoder) Geocode(ctx context.Context, name string) (*models.Location, error) {
	results, err := g.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, &httpapi.Error{
			Kind:    httpapi.KindNoCandidate,
			Op:      "geocode",
			Message: fmt.Sprintf("no results found for '%s'", strings.TrimSpace(name)),
		}
	}

	loc := results[0]
	return &loc, nil
}

// buildURL assembles the search URL. The API expects spaces as '+', so the
// name is written into the raw query word by word instead of via url.Values.
func (g *Geocoder) buildURL(name string) (string, error) {
	if _, err := EncodeName(name); err != nil {
		return "", err
	}

	words := strings.Split(strings.TrimSpace(name), " ")
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}

	params := url.Values{}
	params.Set("count", strconv.Itoa(g.count))
	params.Set("language", g.language)
	params.Set("format", "json")

	return fmt.Sprintf("%s?name=%s&%s", g.baseURL, strings.Join(words, "+"), params.Encode()), nil
}
