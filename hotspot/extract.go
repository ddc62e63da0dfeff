// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"encoding/json"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/wavescout/wavescout/spatial"
)

// rawRecord is a loosely-typed record as emitted by the generative
// service. No schema is enforced upstream, so every field is coerced
// defensively.
type rawRecord map[string]any

// extractRecords locates the first top-level bracketed array in free-form
// model output and deserializes it. It fails closed: any missing bracket
// or malformed JSON yields (nil, false), never an error to the caller.
func extractRecords(text string) ([]rawRecord, bool) {
	start := strings.IndexByte(text, '[')
	end := strings.LastIndexByte(text, ']')

	if start < 0 || end <= start {
		return nil, false
	}

	var records []rawRecord
	if err := json.Unmarshal([]byte(text[start:end+1]), &records); err != nil {
		return nil, false
	}

	return records, true
}

// anyToString converts a loose JSON value to a trimmed string.
func anyToString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}

// anyToFloat converts a loose JSON value to a float64. Numbers arrive as
// float64 from encoding/json, but some sources quote them.
func anyToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(n), "m"), 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// normalizeRecord maps a raw source record to a Hotspot, applying the
// ingestion defaults. origin may be nil when the scan coordinates are
// unknown; randomDistance supplies the 0-500m fallback for records that
// carry neither a distance nor coordinates.
func normalizeRecord(raw rawRecord, ordinal int, now time.Time, origin *spatial.Point, randomDistance func() float64) Hotspot {
	h := Hotspot{
		ID:      newID(ordinal, now),
		Name:    "Unknown Hotspot",
		Address: "Nearby",
		Venue:   VenueOther,
	}

	if name, ok := anyToString(raw["name"]); ok {
		h.Name = name
	}

	if addr, ok := anyToString(raw["address"]); ok {
		h.Address = addr
	}

	if venue, ok := anyToString(raw["venue_type"]); ok {
		h.Venue = ParseVenue(venue)
	}

	if dist, ok := anyToFloat(raw["distance_meters"]); ok && dist >= 0 {
		h.DistanceValue = dist
	} else if pt, ok := recordPoint(raw); ok && origin != nil {
		h.DistanceValue = origin.HaversineDistance(pt)
	} else {
		// Last resort; makes output non-deterministic, but keeps the
		// record rankable.
		h.DistanceValue = randomDistance()
	}

	if s, ok := anyToString(raw["distance"]); ok {
		h.Distance = s
	} else {
		h.Distance = FormatDistance(h.DistanceValue)
	}

	if signal, ok := anyToFloat(raw["signal_strength"]); ok && signal >= 0 && signal <= 100 {
		h.SignalStrength = int(signal)
	} else {
		h.SignalStrength = SignalFromDistance(h.DistanceValue)
	}

	if pass, ok := anyToString(raw["password"]); ok && !strings.EqualFold(pass, noPasswordSentinel) {
		h.Password = pass
	}

	if sec, ok := anyToString(raw["security"]); ok {
		if parsed, known := ParseSecurity(sec); known {
			h.Security = parsed
		}
	}

	if h.Security == "" {
		if h.HasPassword() {
			h.Security = SecurityWPA2
		} else {
			h.Security = SecurityOpen
		}
	}

	return h
}

// recordPoint extracts optional venue coordinates from a raw record.
func recordPoint(raw rawRecord) (*spatial.Point, bool) {
	lat, okLat := anyToFloat(raw["latitude"])
	lng, okLng := anyToFloat(raw["longitude"])

	if !okLat || !okLng {
		return nil, false
	}

	pt := &spatial.Point{Lat: lat, Lng: lng}
	if !pt.Valid() {
		return nil, false
	}

	return pt, true
}

// defaultRandomDistance is the 0-500m fallback used outside tests.
func defaultRandomDistance() float64 {
	return rand.Float64() * 500
}
