// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package hotspot discovers nearby Wi-Fi-bearing venues through a
// generative-content service and normalizes them into ranked candidates.
package hotspot

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Security is the security classification of a hotspot.
type Security string

// Known security classifications.
const (
	SecurityOpen       Security = "Open"
	SecurityWPA2       Security = "WPA2"
	SecurityWPA3       Security = "WPA3"
	SecurityPublic     Security = "Public"
	SecurityEnterprise Security = "Enterprise"
)

// Venue is the venue-type classification of a hotspot.
type Venue string

// Known venue classifications.
const (
	VenueCafe        Venue = "Cafe"
	VenueLibrary     Venue = "Library"
	VenuePublicSpace Venue = "Public Space"
	VenueTransit     Venue = "Transit"
	VenueOther       Venue = "Other"
)

// sentinel the upstream source uses for "no community password applies".
// Distinct from an absent value, which we represent as the empty string.
const noPasswordSentinel = "none"

// Hotspot represents a discovered Wi-Fi-bearing venue candidate.
//
// IDs are assigned at ingestion time and are only unique within the
// process; a new scan produces entirely new IDs.
type Hotspot struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Distance       string   `json:"distance"`
	DistanceValue  float64  `json:"distance_value"` // meters
	SignalStrength int      `json:"signal_strength"`
	Security       Security `json:"security"`
	Password       string   `json:"password,omitempty"`
	Venue          Venue    `json:"venue_type"`
}

// HasPassword reports whether a community-shared password is known.
func (h *Hotspot) HasPassword() bool {
	return h.Password != ""
}

// SignalFromDistance derives a signal-strength score from a distance in
// meters when the source did not supply one. Farther venues score lower,
// floored at 30.
func SignalFromDistance(meters float64) int {
	s := 100 - int(math.Floor(meters/10))
	if s < 30 {
		return 30
	}

	return s
}

// FormatDistance renders a numeric distance in meters as display text.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%dm", int(math.Round(meters)))
}

// newID builds a process-unique hotspot identifier from the record's
// ordinal position and wall-clock time.
func newID(ordinal int, now time.Time) string {
	return fmt.Sprintf("hs-%d-%d", ordinal, now.UnixMilli())
}

// ParseSecurity maps free-form source text to a Security value. The
// boolean reports whether the text named a known classification.
func ParseSecurity(s string) (Security, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OPEN", "NONE", "UNSECURED":
		return SecurityOpen, true
	case "WPA2", "WPA2-PSK", "WPA/WPA2":
		return SecurityWPA2, true
	case "WPA3", "WPA3-SAE":
		return SecurityWPA3, true
	case "PUBLIC":
		return SecurityPublic, true
	case "ENTERPRISE", "WPA2-ENTERPRISE", "802.1X":
		return SecurityEnterprise, true
	default:
		return "", false
	}
}

// ParseVenue maps free-form source text to a Venue value, defaulting to
// VenueOther for anything unrecognized.
func ParseVenue(s string) Venue {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cafe", "café", "coffee shop", "coffee_shop", "restaurant":
		return VenueCafe
	case "library":
		return VenueLibrary
	case "public space", "public_space", "park", "plaza", "square":
		return VenuePublicSpace
	case "transit", "station", "airport", "bus station", "train station":
		return VenueTransit
	default:
		return VenueOther
	}
}
