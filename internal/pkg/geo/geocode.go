package geo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/config"
	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/provider"
)

// Coordinates is the input to a reverse-geocode attempt.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeocodeResult is a resolved human-readable location label.
type GeocodeResult struct {
	Label  string `json:"label"`
	Source string `json:"source"`
}

// ReverseGeocoder resolves coordinates to a label via the provider chain.
type ReverseGeocoder = provider.Chain[Coordinates, GeocodeResult]

// NewReverseGeocoder builds the reverse-geocoding chain. Configuration
// selects exactly one active provider; providers missing their credentials
// opt out rather than fail, so a misconfigured chain degrades to the
// caller's deterministic fallback label.
func NewReverseGeocoder(cfg config.GeocodeConfig, client *http.Client) *ReverseGeocoder {
	var p provider.Provider[Coordinates, GeocodeResult]
	switch cfg.Provider {
	case "mapbox":
		p = &mapboxProvider{token: cfg.MapboxToken, client: client}
	case "google":
		p = &googleProvider{key: cfg.GoogleMapsKey, client: client}
	default:
		p = &nominatimProvider{userAgent: cfg.UserAgent, language: cfg.Language, client: client}
	}
	return provider.NewChain(provider.DefaultAttemptTimeout, p)
}

// --- Nominatim (OpenStreetMap) ---

type nominatimProvider struct {
	baseURL   string
	userAgent string
	language  string
	client    *http.Client
}

func (p *nominatimProvider) Name() string { return "nominatim" }

func (p *nominatimProvider) Attempt(ctx context.Context, in Coordinates) (GeocodeResult, error) {
	base := p.baseURL
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	url := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f&zoom=18&addressdetails=1", base, in.Latitude, in.Longitude)

	headers := map[string]string{
		"User-Agent":      p.userAgent,
		"Accept-Language": p.language,
	}

	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := fetchJSON(ctx, p.client, url, headers, &body); err != nil {
		return GeocodeResult{}, err
	}
	if body.DisplayName == "" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	return GeocodeResult{Label: body.DisplayName, Source: p.Name()}, nil
}

// --- Mapbox ---

type mapboxProvider struct {
	baseURL string
	token   string
	client  *http.Client
}

func (p *mapboxProvider) Name() string { return "mapbox" }

func (p *mapboxProvider) Attempt(ctx context.Context, in Coordinates) (GeocodeResult, error) {
	if p.token == "" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	base := p.baseURL
	if base == "" {
		base = "https://api.mapbox.com"
	}
	url := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%f,%f.json?access_token=%s", base, in.Longitude, in.Latitude, p.token)

	var body struct {
		Features []struct {
			PlaceName string `json:"place_name"`
		} `json:"features"`
	}
	if err := fetchJSON(ctx, p.client, url, nil, &body); err != nil {
		return GeocodeResult{}, err
	}
	if len(body.Features) == 0 || body.Features[0].PlaceName == "" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	return GeocodeResult{Label: body.Features[0].PlaceName, Source: p.Name()}, nil
}

// --- Google Maps ---

type googleProvider struct {
	baseURL string
	key     string
	client  *http.Client
}

func (p *googleProvider) Name() string { return "google" }

func (p *googleProvider) Attempt(ctx context.Context, in Coordinates) (GeocodeResult, error) {
	if p.key == "" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	base := p.baseURL
	if base == "" {
		base = "https://maps.googleapis.com"
	}
	url := fmt.Sprintf("%s/maps/api/geocode/json?latlng=%f,%f&key=%s", base, in.Latitude, in.Longitude, p.key)

	var body struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := fetchJSON(ctx, p.client, url, nil, &body); err != nil {
		return GeocodeResult{}, err
	}
	if body.Status != "" && body.Status != "OK" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	if len(body.Results) == 0 || body.Results[0].FormattedAddress == "" {
		return GeocodeResult{}, provider.ErrUnavailable
	}
	return GeocodeResult{Label: body.Results[0].FormattedAddress, Source: p.Name()}, nil
}
