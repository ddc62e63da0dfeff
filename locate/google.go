// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package locate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wavescout/wavescout/spatial"
)

const defaultGeolocationBaseURL = "https://www.googleapis.com"

// GoogleGeolocation uses the Google Geolocation API, which estimates the
// caller's position from visible networks and the requesting IP.
type GoogleGeolocation struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleGeolocation creates a new Google Geolocation provider.
func NewGoogleGeolocation(apiKey string) *GoogleGeolocation {
	return &GoogleGeolocation{
		apiKey:  apiKey,
		baseURL: defaultGeolocationBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geolocationResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

// Locate implements Provider.
func (g *GoogleGeolocation) Locate(ctx context.Context) (*spatial.Point, error) {
	if g.apiKey == "" {
		return nil, ErrUnsupported
	}

	reqURL := fmt.Sprintf("%s/geolocation/v1/geolocate?key=%s", strings.TrimRight(g.baseURL, "/"), g.apiKey)

	// considerIp lets the service fall back to IP-based estimation when
	// no network observations are supplied.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(`{"considerIp": true}`))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}

	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("geolocation returned status %d: %w", resp.StatusCode, ErrDenied)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("geolocation returned status %d", resp.StatusCode)
	}

	var gr geolocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	pt := &spatial.Point{Lat: gr.Location.Lat, Lng: gr.Location.Lng}
	if !pt.Valid() {
		return nil, fmt.Errorf("geolocation returned invalid coordinates %v", pt)
	}

	return pt, nil
}
