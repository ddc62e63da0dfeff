// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package locate obtains a best-effort position for the current caller.
package locate

import (
	"context"
	"errors"
	"fmt"

	"github.com/wavescout/wavescout/spatial"
)

// Errors a provider can report. Callers surface only fixed text per
// category, never provider detail.
var (
	// ErrUnsupported means no geolocation capability is available.
	ErrUnsupported = errors.New("geolocation is not available")

	// ErrDenied means the provider refused the request.
	ErrDenied = errors.New("geolocation request was denied")
)

// Provider resolves the caller's position. Implementations are one-shot;
// there is no watch/subscription mode.
type Provider interface {
	Locate(ctx context.Context) (*spatial.Point, error)
}

// Static always returns a fixed point, typically from command-line flags.
type Static struct {
	Point spatial.Point
}

// Locate implements Provider.
func (s *Static) Locate(_ context.Context) (*spatial.Point, error) {
	if !s.Point.Valid() {
		return nil, fmt.Errorf("invalid coordinates %v: %w", s.Point, ErrUnsupported)
	}

	pt := s.Point

	return &pt, nil
}

// Chain tries providers in order and returns the first success.
type Chain []Provider

// Locate implements Provider. An empty chain is ErrUnsupported; otherwise
// the last failure is returned.
func (c Chain) Locate(ctx context.Context) (*spatial.Point, error) {
	if len(c) == 0 {
		return nil, ErrUnsupported
	}

	var lastErr error

	for _, p := range c {
		pt, err := p.Locate(ctx)
		if err == nil {
			return pt, nil
		}

		lastErr = err
	}

	return nil, lastErr
}
