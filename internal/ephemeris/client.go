package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/astromitra/astro-ai-go/internal/config"
	"github.com/sirupsen/logrus"
)

// Client talks to the ephemeris sidecar service over HTTP. It implements
// Provider.
type Client struct {
	HTTPClient *http.Client
	baseURL    string
	timeout    time.Duration
	version    string
}

type positionResponse struct {
	Body      string  `json:"body"`
	Longitude float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
}

type housesResponse struct {
	Ascendant float64     `json:"ascendant"`
	Cusps     [12]float64 `json:"cusps"`
}

type ayanamsaResponse struct {
	Model  string  `json:"model"`
	Offset float64 `json:"offset"`
}

type riseSetResponse struct {
	Rise time.Time `json:"rise"`
	Set  time.Time `json:"set"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewClient creates an ephemeris client from configuration.
func NewClient(cfg *config.EphemerisConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	logrus.WithField("service_url", cfg.ServiceURL).Info("Ephemeris client initialized")

	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.ServiceURL, "/"),
		timeout:    timeout,
		version:    cfg.Version,
	}
}

// RawPosition returns the tropical longitude and speed for a body.
func (c *Client) RawPosition(ctx context.Context, instant time.Time, body string) (float64, float64, error) {
	path := fmt.Sprintf("/api/position/%s?at=%s", url.PathEscape(body),
		url.QueryEscape(instant.UTC().Format(time.RFC3339Nano)))
	var resp positionResponse
	if err := c.makeRequest(ctx, http.MethodGet, path, &resp); err != nil {
		return 0, 0, err
	}
	return resp.Longitude, resp.Speed, nil
}

// RawHouses returns the tropical ascendant and cusp longitudes.
func (c *Client) RawHouses(ctx context.Context, instant time.Time, lat, lon float64, system string) (float64, [12]float64, error) {
	params := url.Values{}
	params.Set("at", instant.UTC().Format(time.RFC3339Nano))
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("system", system)
	var resp housesResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/api/houses?"+params.Encode(), &resp); err != nil {
		return 0, [12]float64{}, err
	}
	return resp.Ascendant, resp.Cusps, nil
}

// Ayanamsa returns the precession offset for the named model.
func (c *Client) Ayanamsa(ctx context.Context, instant time.Time, model string) (float64, error) {
	params := url.Values{}
	params.Set("at", instant.UTC().Format(time.RFC3339Nano))
	params.Set("model", model)
	var resp ayanamsaResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/api/ayanamsa?"+params.Encode(), &resp); err != nil {
		return 0, err
	}
	return resp.Offset, nil
}

// RiseSet returns rise and set instants for a body.
func (c *Client) RiseSet(ctx context.Context, instant time.Time, lat, lon float64, body string) (time.Time, time.Time, error) {
	params := url.Values{}
	params.Set("at", instant.UTC().Format(time.RFC3339Nano))
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	var resp riseSetResponse
	path := fmt.Sprintf("/api/riseset/%s?%s", url.PathEscape(body), params.Encode())
	if err := c.makeRequest(ctx, http.MethodGet, path, &resp); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return resp.Rise, resp.Set, nil
}

// Version identifies the ephemeris data files behind the sidecar.
func (c *Client) Version() string {
	if c.version == "" {
		return "unknown"
	}
	return c.version
}

// HealthCheck verifies the sidecar responds.
func (c *Client) HealthCheck(ctx context.Context) error {
	var resp map[string]interface{}
	return c.makeRequest(ctx, http.MethodGet, "/health", &resp)
}

// BaseURL returns the sidecar base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) makeRequest(ctx context.Context, method, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.WithError(err).Warn("Error closing ephemeris response body")
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errorResp errorResponse
		if err := json.Unmarshal(respBody, &errorResp); err == nil && errorResp.Error != "" {
			return fmt.Errorf("ephemeris service error (%d): %s", resp.StatusCode, errorResp.Error)
		}
		return fmt.Errorf("ephemeris service error (%d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
