// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavescout/wavescout/spatial"
)

func TestExtractRecords(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
		n    int
	}{
		{
			name: "bare array",
			text: `[{"name":"A"},{"name":"B"}]`,
			ok:   true,
			n:    2,
		},
		{
			name: "array embedded in prose",
			text: "Sure! Here are some venues:\n```json\n[{\"name\":\"A\"}]\n```\nEnjoy.",
			ok:   true,
			n:    1,
		},
		{
			name: "empty array",
			text: "I found nothing nearby. []",
			ok:   true,
			n:    0,
		},
		{
			name: "no array at all",
			text: "I'm sorry, I can't help with that.",
			ok:   false,
		},
		{
			name: "opening bracket only",
			text: "here you go: [",
			ok:   false,
		},
		{
			name: "brackets out of order",
			text: "] nothing [",
			ok:   false,
		},
		{
			name: "malformed json between brackets",
			text: `[{"name": "A",}]`,
			ok:   false,
		},
		{
			name: "array of scalars is rejected",
			text: `[1, 2, 3]`,
			ok:   false,
		},
		{
			name: "empty input",
			text: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, ok := extractRecords(tt.text)
			if ok != tt.ok {
				t.Fatalf("extractRecords() ok = %v, want %v", ok, tt.ok)
			}

			if ok && len(records) != tt.n {
				t.Errorf("extractRecords() len = %d, want %d", len(records), tt.n)
			}
		})
	}
}

func fixedDistance(v float64) func() float64 {
	return func() float64 { return v }
}

func TestNormalizeRecordDefaults(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	h := normalizeRecord(rawRecord{}, 0, now, nil, fixedDistance(240))

	assert.Equal(t, "Unknown Hotspot", h.Name)
	assert.Equal(t, "Nearby", h.Address)
	assert.Equal(t, VenueOther, h.Venue)
	assert.Equal(t, 240.0, h.DistanceValue)
	assert.Equal(t, "240m", h.Distance)
	assert.Equal(t, SignalFromDistance(240), h.SignalStrength)
	assert.Equal(t, SecurityOpen, h.Security)
	assert.Empty(t, h.Password)
	assert.NotEmpty(t, h.ID)
}

func TestNormalizeRecordFull(t *testing.T) {
	now := time.Now()

	h := normalizeRecord(rawRecord{
		"name":            "Central Perk",
		"address":         "90 Bedford St",
		"distance_meters": 120.0,
		"signal_strength": 88.0,
		"security":        "WPA3",
		"password":        "pivot!",
		"venue_type":      "Cafe",
	}, 3, now, nil, fixedDistance(0))

	assert.Equal(t, "Central Perk", h.Name)
	assert.Equal(t, "90 Bedford St", h.Address)
	assert.Equal(t, 120.0, h.DistanceValue)
	assert.Equal(t, "120m", h.Distance)
	assert.Equal(t, 88, h.SignalStrength)
	assert.Equal(t, SecurityWPA3, h.Security)
	assert.Equal(t, "pivot!", h.Password)
	assert.Equal(t, VenueCafe, h.Venue)
}

func TestNormalizeRecordPasswordSentinel(t *testing.T) {
	now := time.Now()

	for _, sentinel := range []string{"None", "none", "NONE"} {
		h := normalizeRecord(rawRecord{
			"name":            "Depot",
			"distance_meters": 50.0,
			"security":        "WPA2",
			"password":        sentinel,
		}, 0, now, nil, fixedDistance(0))

		assert.Emptyf(t, h.Password, "sentinel %q must normalize to absence", sentinel)
		// Absence of password does not imply an open network.
		assert.Equal(t, SecurityWPA2, h.Security)
	}

	h := normalizeRecord(rawRecord{
		"name":            "Depot",
		"distance_meters": 50.0,
		"password":        "Nonesuch_2024",
	}, 0, now, nil, fixedDistance(0))
	assert.Equal(t, "Nonesuch_2024", h.Password, "non-sentinel passwords are preserved verbatim")
}

func TestNormalizeRecordSecurityDefaults(t *testing.T) {
	now := time.Now()

	withPass := normalizeRecord(rawRecord{
		"name":            "A",
		"distance_meters": 10.0,
		"password":        "hunter2",
	}, 0, now, nil, fixedDistance(0))
	assert.Equal(t, SecurityWPA2, withPass.Security)

	withoutPass := normalizeRecord(rawRecord{
		"name":            "B",
		"distance_meters": 10.0,
	}, 0, now, nil, fixedDistance(0))
	assert.Equal(t, SecurityOpen, withoutPass.Security)

	unknown := normalizeRecord(rawRecord{
		"name":            "C",
		"distance_meters": 10.0,
		"security":        "WEP",
		"password":        "hunter2",
	}, 0, now, nil, fixedDistance(0))
	assert.Equal(t, SecurityWPA2, unknown.Security, "unrecognized classifications fall back on the password heuristic")
}

func TestNormalizeRecordDistanceFromCoordinates(t *testing.T) {
	now := time.Now()
	origin := &spatial.Point{Lat: -34.9011, Lng: -56.1645}

	// ~1 degree of longitude at this latitude is far more than 500m, so a
	// random fallback cannot produce this value by accident.
	h := normalizeRecord(rawRecord{
		"name":      "Remote",
		"latitude":  -34.9011,
		"longitude": -56.1745,
	}, 0, now, origin, fixedDistance(1))

	require.Greater(t, h.DistanceValue, 500.0)
	assert.Equal(t, FormatDistance(h.DistanceValue), h.Distance)
}

func TestNormalizeRecordPreservesSourceDistanceString(t *testing.T) {
	now := time.Now()

	h := normalizeRecord(rawRecord{
		"name":            "A",
		"distance_meters": 820.0,
		"distance":        "0.8 km",
	}, 0, now, nil, fixedDistance(0))

	assert.Equal(t, "0.8 km", h.Distance)
	assert.Equal(t, 820.0, h.DistanceValue)
}

func TestNormalizeRecordQuotedNumbers(t *testing.T) {
	now := time.Now()

	h := normalizeRecord(rawRecord{
		"name":            "A",
		"distance_meters": "150m",
		"signal_strength": "77",
	}, 0, now, nil, fixedDistance(0))

	assert.Equal(t, 150.0, h.DistanceValue)
	assert.Equal(t, 77, h.SignalStrength)
}
