// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SortKey selects the ordering of a hotspot list.
type SortKey string

// Supported sort keys.
const (
	SortByName     SortKey = "name"
	SortByDistance SortKey = "distance"
	SortBySignal   SortKey = "signal"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName, nil
	case SortByDistance:
		return SortByDistance, nil
	case SortBySignal:
		return SortBySignal, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (want name, distance or signal)", s)
	}
}

// foldName normalizes a venue name for ordering: accents removed,
// lowercased, trimmed.
func foldName(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// Order returns a fresh slice sorted by the given key. The input is never
// mutated; ties keep their incoming relative order.
func Order(list []Hotspot, key SortKey) []Hotspot {
	out := make([]Hotspot, len(list))
	copy(out, list)

	switch key {
	case SortByDistance:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DistanceValue < out[j].DistanceValue
		})
	case SortBySignal:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SignalStrength > out[j].SignalStrength
		})
	default: // SortByName
		sort.SliceStable(out, func(i, j int) bool {
			return foldName(out[i].Name) < foldName(out[j].Name)
		})
	}

	return out
}
