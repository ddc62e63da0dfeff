// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(texts ...string) string {
	type part struct {
		Text string `json:"text"`
	}

	parts := make([]part, len(texts))
	for i, s := range texts {
		parts[i] = part{Text: s}
	}

	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"role": "model", "parts": parts}},
		},
	})

	return string(body)
}

func TestGeminiSourceRequestShape(t *testing.T) {
	var captured geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geminiReply("[]")))
	}))
	defer srv.Close()

	src := NewGeminiSource("test-key", &GeminiOptions{BaseURL: srv.URL})

	text, err := src.NearbyHotspots(context.Background(), testPoint)

	require.NoError(t, err)
	assert.Equal(t, "[]", text)

	require.Len(t, captured.Contents, 1)
	assert.Contains(t, captured.Contents[0].Parts[0].Text, "8-12 public venues")

	require.NotNil(t, captured.ToolConfig, "location grounding must be bound to the scan coordinates")
	assert.InDelta(t, testPoint.Lat, captured.ToolConfig.RetrievalConfig.LatLng.Latitude, 1e-9)
	assert.InDelta(t, testPoint.Lng, captured.ToolConfig.RetrievalConfig.LatLng.Longitude, 1e-9)
}

func TestGeminiSourceConcatenatesParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(geminiReply("Here you go: ", `[{"name":"A"}]`)))
	}))
	defer srv.Close()

	src := NewGeminiSource("k", &GeminiOptions{BaseURL: srv.URL})

	text, err := src.NearbyHotspots(context.Background(), testPoint)

	require.NoError(t, err)
	assert.Equal(t, `Here you go: [{"name":"A"}]`, text)
}

func TestGeminiSourceHTTPErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantType ErrorType
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, wantType: ErrorTypeRateLimit},
		{name: "quota", status: http.StatusForbidden, wantType: ErrorTypeQuotaExceeded},
		{name: "bad request", status: http.StatusBadRequest, wantType: ErrorTypeInvalidRequest},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantType: ErrorTypeUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantType: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			src := NewGeminiSource("k", &GeminiOptions{BaseURL: srv.URL})

			_, err := src.NearbyHotspots(context.Background(), testPoint)

			var svcErr *ServiceError

			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantType, svcErr.Type)
		})
	}
}

func TestGeminiSourceNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	src := NewGeminiSource("k", &GeminiOptions{BaseURL: srv.URL})

	_, err := src.NearbyHotspots(context.Background(), testPoint)

	require.Error(t, err)
}
