// Package geocode resolves venue and vendor addresses through a
// Nominatim-compatible forward geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"vivaha/config"
	"vivaha/internal/domain/service"
	"vivaha/internal/errors"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type nominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder creates the forward geocoder.
func NewNominatimGeocoder(cfg *config.GeocodeConfig) service.Geocoder {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &nominatimGeocoder{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) (*service.GeoPoint, error) {
	endpoint := g.baseURL + "/search?" + url.Values{
		"q":      []string{query},
		"format": []string{"json"},
		"limit":  []string{"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocode request")
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call geocoder")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode geocode response")
	}
	if len(results) == 0 {
		return nil, service.ErrNoGeocodeResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	return &service.GeoPoint{
		Latitude:    lat,
		Longitude:   lon,
		DisplayName: results[0].DisplayName,
	}, nil
}
