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

const defaultIPAPIBaseURL = "http://ip-api.com"

// IPAPI estimates the caller's position from its public IP via ip-api.com.
// Keyless and coarse (city level), used as the fallback provider.
type IPAPI struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPI creates a new ip-api.com provider.
func NewIPAPI() *IPAPI {
	return &IPAPI{
		baseURL: defaultIPAPIBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ipAPIResponse struct {
	Status  string  `json:"status"` // success, fail
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Locate implements Provider.
func (p *IPAPI) Locate(ctx context.Context) (*spatial.Point, error) {
	reqURL := strings.TrimRight(p.baseURL, "/") + "/json/?fields=status,message,lat,lon,city,country"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ip geolocation request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("ip geolocation rate limited: %w", ErrDenied)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip geolocation returned status %d", resp.StatusCode)
	}

	var ir ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&ir); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if ir.Status != "success" {
		return nil, fmt.Errorf("ip geolocation failed: %s", ir.Message)
	}

	pt := &spatial.Point{Lat: ir.Lat, Lng: ir.Lon}
	if !pt.Valid() {
		return nil, fmt.Errorf("ip geolocation returned invalid coordinates %v", pt)
	}

	return pt, nil
}
