// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wavescout/wavescout/spatial"
	"github.com/wavescout/wavescout/utils/httputils"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Source produces the raw free-form text from which hotspot records are
// extracted. Implementations talk to a generative-content service.
type Source interface {
	NearbyHotspots(ctx context.Context, pt spatial.Point) (string, error)
}

// GeminiOptions configuration for the Gemini source.
type GeminiOptions struct {
	// Model is the generative model to query.
	Model string

	// BaseURL overrides the service endpoint, mainly for tests.
	BaseURL string

	// UserAgent is the User-Agent header to use in HTTP requests.
	UserAgent string

	// Enables light tracing of HTTP requests and responses.
	EnableHTTPTrace bool

	// Enables full HTTP body tracing.
	EnableHTTPBodyTrace bool
}

// GeminiSource queries the Gemini generateContent endpoint with Google
// Maps grounding bound to the scan coordinates.
type GeminiSource struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiSource creates a source using the provided API key.
func NewGeminiSource(apiKey string, options *GeminiOptions) *GeminiSource {
	if options == nil {
		options = &GeminiOptions{}
	}

	model := options.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}

	var httpLogWriter io.Writer
	if options.EnableHTTPTrace {
		httpLogWriter = os.Stderr
	}

	loggingTransport := &httputils.LoggingRoundTripper{
		Writer:    httpLogWriter,
		DumpBody:  options.EnableHTTPBodyTrace,
		Transport: http.DefaultTransport,
	}

	userAgent := "wavescout/unknown"
	if options.UserAgent != "" {
		userAgent = options.UserAgent
	}

	headerTransport := &httputils.AppendRequestHeadersRoundTripper{
		Headers: map[string]string{
			"User-Agent":   userAgent,
			"Content-Type": "application/json",
		},
		Transport: loggingTransport,
	}

	return &GeminiSource{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   60 * time.Second,
			Transport: headerTransport,
		},
	}
}

// Prompt builds the enumeration instruction sent to the model.
func Prompt(pt spatial.Point) string {
	return fmt.Sprintf(`List 8-12 public venues with Wi-Fi near latitude %.6f, longitude %.6f.
Respond with a JSON array only. Each element must have these fields:
"name", "address", "distance_meters" (number), "venue_type" (one of
"Cafe", "Library", "Public Space", "Transit", "Other"), "security" (one
of "Open", "WPA2", "WPA3", "Public", "Enterprise") and "password" (the
community-shared password, or "None" if no password applies).`, pt.Lat, pt.Lng)
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geminiRetrievalConfig struct {
	LatLng geminiLatLng `json:"latLng"`
}

type geminiToolConfig struct {
	RetrievalConfig geminiRetrievalConfig `json:"retrievalConfig"`
}

type geminiRequest struct {
	Contents   []geminiContent   `json:"contents"`
	Tools      []map[string]any  `json:"tools,omitempty"`
	ToolConfig *geminiToolConfig `json:"toolConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NearbyHotspots issues one generateContent request grounded on pt and
// returns the concatenated text of the first candidate.
func (g *GeminiSource) NearbyHotspots(ctx context.Context, pt spatial.Point) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: Prompt(pt)}}},
		},
		// Google Maps grounding keeps the enumeration geographically
		// relevant to the caller's coordinates.
		Tools: []map[string]any{{"googleMaps": map[string]any{}}},
		ToolConfig: &geminiToolConfig{
			RetrievalConfig: geminiRetrievalConfig{
				LatLng: geminiLatLng{Latitude: pt.Lat, Longitude: pt.Lng},
			},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	reqURL := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, g.model, g.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generative request failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(gr.Candidates) == 0 {
		return "", &ServiceError{
			Type:    ErrorTypeUnknown,
			Message: "response contains no candidates",
		}
	}

	var sb strings.Builder
	for _, part := range gr.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
