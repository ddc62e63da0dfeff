// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package hotspot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wavescout/wavescout/spatial"
)

// Resolver turns a coordinate pair into a normalized hotspot list.
//
// Its contract is tri-state: a non-nil error means the service could not
// be reached (the caller surfaces an error state); a non-nil empty slice
// means the service answered and legitimately found nothing; a non-empty
// slice is a usable result. A malformed reply is recovered locally with
// the fixed sample set and never reported as an error.
type Resolver struct {
	src Source

	// overridable for deterministic tests
	now            func() time.Time
	randomDistance func() float64
}

// NewResolver creates a resolver backed by the given source.
func NewResolver(src Source) *Resolver {
	return &Resolver{
		src:            src,
		now:            time.Now,
		randomDistance: defaultRandomDistance,
	}
}

// Resolve asks the source for venues near pt and normalizes the reply.
func (r *Resolver) Resolve(ctx context.Context, pt spatial.Point) ([]Hotspot, error) {
	text, err := r.src.NearbyHotspots(ctx, pt)
	if err != nil {
		return nil, fmt.Errorf("resolving hotspots: %w", err)
	}

	records, ok := extractRecords(text)
	if !ok {
		log.Printf("Could not extract a hotspot array from the model reply, using sample data")

		return fallbackSamples(r.now()), nil
	}

	now := r.now()
	list := make([]Hotspot, 0, len(records))

	for i, raw := range records {
		list = append(list, normalizeRecord(raw, i, now, &pt, r.randomDistance))
	}

	return list, nil
}
