// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavescout/wavescout/spatial"
)

// stubSource returns canned model text or an error.
type stubSource struct {
	text string
	err  error
}

func (s *stubSource) NearbyHotspots(_ context.Context, _ spatial.Point) (string, error) {
	return s.text, s.err
}

var testPoint = spatial.Point{Lat: 40.7128, Lng: -74.0060}

func TestResolveServiceFailure(t *testing.T) {
	r := NewResolver(&stubSource{err: errors.New("connection refused")})

	list, err := r.Resolve(context.Background(), testPoint)

	require.Error(t, err)
	assert.Nil(t, list)
}

func TestResolveMalformedReplyYieldsSamples(t *testing.T) {
	r := NewResolver(&stubSource{text: "I cannot produce structured data today."})

	list, err := r.Resolve(context.Background(), testPoint)

	require.NoError(t, err)
	require.Len(t, list, 3)

	first := list[0]
	assert.Equal(t, "Starbucks_Guest", first.Name)
	assert.Equal(t, 150.0, first.DistanceValue)
	assert.Equal(t, "150m", first.Distance)
	assert.Equal(t, 92, first.SignalStrength)
	assert.Equal(t, SecurityWPA2, first.Security)
	assert.Equal(t, "coffee_lover", first.Password)
	assert.Equal(t, VenueCafe, first.Venue)

	assert.Equal(t, "City_Library_Public", list[1].Name)
	assert.Equal(t, 300.0, list[1].DistanceValue)
	assert.Equal(t, SecurityOpen, list[1].Security)
	assert.Empty(t, list[1].Password)

	assert.Equal(t, "Blue_Bottle_Cafe", list[2].Name)
	assert.Equal(t, 450.0, list[2].DistanceValue)

	ids := map[string]bool{}
	for _, h := range list {
		assert.NotEmpty(t, h.ID)

		ids[h.ID] = true
	}

	assert.Len(t, ids, 3, "sample IDs must be unique")
}

func TestResolveEmptyArrayMeansZeroResults(t *testing.T) {
	r := NewResolver(&stubSource{text: "Nothing with Wi-Fi around here: []"})

	list, err := r.Resolve(context.Background(), testPoint)

	require.NoError(t, err)
	require.NotNil(t, list, "an answered-but-empty reply is not a failure")
	assert.Empty(t, list)
}

func TestResolveNormalizesRecords(t *testing.T) {
	r := NewResolver(&stubSource{text: `Here you go:
[
  {"name": "Harbor_Cafe", "address": "Pier 7", "distance_meters": 80,
   "venue_type": "Cafe", "security": "WPA2", "password": "tide_pool"},
  {"password": "None", "distance_meters": 210}
]`})

	list, err := r.Resolve(context.Background(), testPoint)

	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "Harbor_Cafe", list[0].Name)
	assert.Equal(t, "tide_pool", list[0].Password)
	assert.Equal(t, SignalFromDistance(80), list[0].SignalStrength)

	assert.Equal(t, "Unknown Hotspot", list[1].Name)
	assert.Equal(t, "Nearby", list[1].Address)
	assert.Empty(t, list[1].Password)
	assert.Equal(t, SecurityOpen, list[1].Security)
	assert.Equal(t, "210m", list[1].Distance)

	assert.NotEqual(t, list[0].ID, list[1].ID)
}
