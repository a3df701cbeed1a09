package geo

import (
	"context"
	"net/http"
	"strings"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/provider"
)

// NetworkLocation is a coarse location derived from the caller's network
// address. Coordinates are best-effort and may be absent.
type NetworkLocation struct {
	Label     string   `json:"label"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Source    string   `json:"source"`
}

// NetworkLocator tries the IP-geolocation services in a fixed order.
type NetworkLocator = provider.Chain[struct{}, NetworkLocation]

// NewNetworkLocator builds the IP-location chain: ipapi.co, then ipwho.is,
// then ip-api.com. A provider reporting its own failure flag is skipped,
// not treated as fatal.
func NewNetworkLocator(userAgent string, client *http.Client) *NetworkLocator {
	return provider.NewChain[struct{}, NetworkLocation](provider.DefaultAttemptTimeout,
		&ipapiProvider{userAgent: userAgent, client: client},
		&ipwhoisProvider{userAgent: userAgent, client: client},
		&ipAPIComProvider{userAgent: userAgent, client: client},
	)
}

func networkLabel(parts ...string) string {
	var present []string
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	if len(present) == 0 {
		return "IP location"
	}
	return "IP " + strings.Join(present, ", ")
}

// --- ipapi.co ---

type ipapiProvider struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func (p *ipapiProvider) Name() string { return "ipapi" }

func (p *ipapiProvider) Attempt(ctx context.Context, _ struct{}) (NetworkLocation, error) {
	base := p.baseURL
	if base == "" {
		base = "https://ipapi.co"
	}

	var body struct {
		City        string   `json:"city"`
		Region      string   `json:"region"`
		CountryName string   `json:"country_name"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	}
	if err := fetchJSON(ctx, p.client, base+"/json/", map[string]string{"User-Agent": p.userAgent}, &body); err != nil {
		return NetworkLocation{}, err
	}

	return NetworkLocation{
		Label:     networkLabel(body.City, body.Region, body.CountryName),
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Source:    p.Name(),
	}, nil
}

// --- ipwho.is ---

type ipwhoisProvider struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func (p *ipwhoisProvider) Name() string { return "ipwhois" }

func (p *ipwhoisProvider) Attempt(ctx context.Context, _ struct{}) (NetworkLocation, error) {
	base := p.baseURL
	if base == "" {
		base = "https://ipwho.is"
	}

	var body struct {
		Success   *bool    `json:"success"`
		City      string   `json:"city"`
		Region    string   `json:"region"`
		Country   string   `json:"country"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := fetchJSON(ctx, p.client, base+"/", map[string]string{"User-Agent": p.userAgent}, &body); err != nil {
		return NetworkLocation{}, err
	}
	if body.Success != nil && !*body.Success {
		return NetworkLocation{}, provider.ErrUnavailable
	}

	return NetworkLocation{
		Label:     networkLabel(body.City, body.Region, body.Country),
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Source:    p.Name(),
	}, nil
}

// --- ip-api.com ---

type ipAPIComProvider struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func (p *ipAPIComProvider) Name() string { return "ipapi-com" }

func (p *ipAPIComProvider) Attempt(ctx context.Context, _ struct{}) (NetworkLocation, error) {
	base := p.baseURL
	if base == "" {
		// the free tier of ip-api.com is HTTP only
		base = "http://ip-api.com"
	}

	var body struct {
		Status     string   `json:"status"`
		City       string   `json:"city"`
		RegionName string   `json:"regionName"`
		Country    string   `json:"country"`
		Lat        *float64 `json:"lat"`
		Lon        *float64 `json:"lon"`
	}
	if err := fetchJSON(ctx, p.client, base+"/json/", map[string]string{"User-Agent": p.userAgent}, &body); err != nil {
		return NetworkLocation{}, err
	}
	if body.Status != "success" {
		return NetworkLocation{}, provider.ErrUnavailable
	}

	return NetworkLocation{
		Label:     networkLabel(body.City, body.RegionName, body.Country),
		Latitude:  body.Lat,
		Longitude: body.Lon,
		Source:    p.Name(),
	}, nil
}
