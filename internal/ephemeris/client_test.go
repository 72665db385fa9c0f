package ephemeris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astromitra/astro-ai-go/internal/config"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(&config.EphemerisConfig{
		ServiceURL: server.URL,
		Timeout:    5,
		Version:    "sepl_18",
	})
	return client, server
}

func TestRawPosition(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/position/Sun", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("at"))
		json.NewEncoder(w).Encode(positionResponse{Body: "Sun", Longitude: 54.2, Speed: 0.97})
	}))
	defer server.Close()

	lon, speed, err := client.RawPosition(context.Background(), time.Now(), "Sun")
	require.NoError(t, err)
	assert.Equal(t, 54.2, lon)
	assert.Equal(t, 0.97, speed)
}

func TestRawHouses(t *testing.T) {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = float64(i) * 30
	}
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/houses", r.URL.Path)
		assert.Equal(t, "WholeSign", r.URL.Query().Get("system"))
		json.NewEncoder(w).Encode(housesResponse{Ascendant: 131.5, Cusps: cusps})
	}))
	defer server.Close()

	asc, gotCusps, err := client.RawHouses(context.Background(), time.Now(), 28.6, 77.2, "WholeSign")
	require.NoError(t, err)
	assert.Equal(t, 131.5, asc)
	assert.Equal(t, cusps, gotCusps)
}

func TestAyanamsa(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lahiri", r.URL.Query().Get("model"))
		json.NewEncoder(w).Encode(ayanamsaResponse{Model: "Lahiri", Offset: 23.85})
	}))
	defer server.Close()

	offset, err := client.Ayanamsa(context.Background(), time.Now(), "Lahiri")
	require.NoError(t, err)
	assert.Equal(t, 23.85, offset)
}

func TestRiseSet(t *testing.T) {
	rise := time.Date(2026, 8, 29, 0, 35, 0, 0, time.UTC)
	set := time.Date(2026, 8, 29, 13, 12, 0, 0, time.UTC)
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/riseset/Sun", r.URL.Path)
		json.NewEncoder(w).Encode(riseSetResponse{Rise: rise, Set: set})
	}))
	defer server.Close()

	gotRise, gotSet, err := client.RiseSet(context.Background(), time.Now(), 28.6, 77.2, "Sun")
	require.NoError(t, err)
	assert.True(t, rise.Equal(gotRise))
	assert.True(t, set.Equal(gotSet))
}

func TestErrorEnvelope(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(errorResponse{Error: "date outside ephemeris range"})
	}))
	defer server.Close()

	_, _, err := client.RawPosition(context.Background(), time.Now(), "Sun")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date outside ephemeris range")
	assert.Contains(t, err.Error(), "422")
}

func TestHealthCheck(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.NoError(t, client.HealthCheck(context.Background()))
}

func TestVersion(t *testing.T) {
	client := NewClient(&config.EphemerisConfig{ServiceURL: "http://localhost:0"})
	assert.Equal(t, "unknown", client.Version())

	client = NewClient(&config.EphemerisConfig{ServiceURL: "http://localhost:0", Version: "sepl_18"})
	assert.Equal(t, "sepl_18", client.Version())
}
