package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FrisSoftwareteam/AttendanceApp-V1-Back/internal/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "attendance-app", r.Header.Get("User-Agent"))
		assert.Contains(t, r.URL.Path, "/reverse")
		w.Write([]byte(`{"display_name": "Jl. Sudirman 1, Jakarta, Indonesia"}`))
	}))
	defer server.Close()

	p := &nominatimProvider{baseURL: server.URL, userAgent: "attendance-app", language: "en", client: server.Client()}
	result, err := p.Attempt(context.Background(), Coordinates{Latitude: -6.2, Longitude: 106.8})

	require.NoError(t, err)
	assert.Equal(t, "Jl. Sudirman 1, Jakarta, Indonesia", result.Label)
	assert.Equal(t, "nominatim", result.Source)
}

func TestNominatimProviderEmptyLabelOptsOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	p := &nominatimProvider{baseURL: server.URL, client: server.Client()}
	_, err := p.Attempt(context.Background(), Coordinates{})

	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestMapboxProviderWithoutTokenOptsOut(t *testing.T) {
	p := &mapboxProvider{}
	_, err := p.Attempt(context.Background(), Coordinates{})
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestGoogleProviderNonOKStatusOptsOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	}))
	defer server.Close()

	p := &googleProvider{baseURL: server.URL, key: "key", client: server.Client()}
	_, err := p.Attempt(context.Background(), Coordinates{})

	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestIPWhoisProviderHonorsSuccessFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "city": "Nowhere"}`))
	}))
	defer server.Close()

	p := &ipwhoisProvider{baseURL: server.URL, client: server.Client()}
	_, err := p.Attempt(context.Background(), struct{}{})

	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestIPAPIComProviderParsesLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "city": "Jakarta", "regionName": "Jakarta", "country": "Indonesia", "lat": -6.2, "lon": 106.8}`))
	}))
	defer server.Close()

	p := &ipAPIComProvider{baseURL: server.URL, client: server.Client()}
	result, err := p.Attempt(context.Background(), struct{}{})

	require.NoError(t, err)
	assert.Equal(t, "IP Jakarta, Jakarta, Indonesia", result.Label)
	require.NotNil(t, result.Latitude)
	assert.InDelta(t, -6.2, *result.Latitude, 0.001)
	assert.Equal(t, "ipapi-com", result.Source)
}

func TestNetworkLocatorFallsThroughFailingProvider(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "city": "Bandung", "region": "West Java", "country": "Indonesia"}`))
	}))
	defer working.Close()

	chain := provider.NewChain[struct{}, NetworkLocation](provider.DefaultAttemptTimeout,
		&ipapiProvider{baseURL: failing.URL, client: failing.Client()},
		&ipwhoisProvider{baseURL: working.URL, client: working.Client()},
	)

	result, ok := chain.Resolve(context.Background(), struct{}{})

	require.True(t, ok)
	assert.Equal(t, "IP Bandung, West Java, Indonesia", result.Label)
	assert.Equal(t, "ipwhois", result.Source)
}

func TestNetworkLabelEmptyParts(t *testing.T) {
	assert.Equal(t, "IP location", networkLabel("", "", ""))
	assert.Equal(t, "IP Jakarta, Indonesia", networkLabel("Jakarta", "", "Indonesia"))
}
