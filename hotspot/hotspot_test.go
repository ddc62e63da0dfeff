// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"testing"
)

func TestSignalFromDistance(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		want   int
	}{
		{name: "at the venue", meters: 0, want: 100},
		{name: "one hundred meters", meters: 100, want: 90},
		{name: "rounds down within a ten meter band", meters: 105, want: 90},
		{name: "mid range", meters: 450, want: 55},
		{name: "floor boundary", meters: 700, want: 30},
		{name: "beyond the floor", meters: 1000, want: 30},
		{name: "far beyond the floor", meters: 5000, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignalFromDistance(tt.meters); got != tt.want {
				t.Errorf("SignalFromDistance(%v) = %d, want %d", tt.meters, got, tt.want)
			}
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{meters: 150, want: "150m"},
		{meters: 0, want: "0m"},
		{meters: 149.6, want: "150m"},
		{meters: 149.4, want: "149m"},
	}

	for _, tt := range tests {
		if got := FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestParseSecurity(t *testing.T) {
	tests := []struct {
		in    string
		want  Security
		known bool
	}{
		{in: "WPA2", want: SecurityWPA2, known: true},
		{in: "wpa2-psk", want: SecurityWPA2, known: true},
		{in: "WPA3", want: SecurityWPA3, known: true},
		{in: "open", want: SecurityOpen, known: true},
		{in: "unsecured", want: SecurityOpen, known: true},
		{in: "Public", want: SecurityPublic, known: true},
		{in: "802.1x", want: SecurityEnterprise, known: true},
		{in: " Enterprise ", want: SecurityEnterprise, known: true},
		{in: "WEP", known: false},
		{in: "", known: false},
	}

	for _, tt := range tests {
		got, known := ParseSecurity(tt.in)
		if known != tt.known {
			t.Errorf("ParseSecurity(%q) known = %v, want %v", tt.in, known, tt.known)

			continue
		}

		if known && got != tt.want {
			t.Errorf("ParseSecurity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseVenue(t *testing.T) {
	tests := []struct {
		in   string
		want Venue
	}{
		{in: "Cafe", want: VenueCafe},
		{in: "café", want: VenueCafe},
		{in: "coffee shop", want: VenueCafe},
		{in: "Library", want: VenueLibrary},
		{in: "public space", want: VenuePublicSpace},
		{in: "park", want: VenuePublicSpace},
		{in: "train station", want: VenueTransit},
		{in: "haberdashery", want: VenueOther},
		{in: "", want: VenueOther},
	}

	for _, tt := range tests {
		if got := ParseVenue(tt.in); got != tt.want {
			t.Errorf("ParseVenue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
