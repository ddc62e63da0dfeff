// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package passdb simulates a community password database lookup. The
// decision is a closed-form function of data the hotspot already carries;
// the delay exists to model lookup latency.
package passdb

import (
	"context"
	"time"

	"github.com/wavescout/wavescout/hotspot"
)

// Fixed outcome messages.
const (
	msgPublicNetwork = "This is a public network. No password is required, but web-based authentication may still apply."
	msgCommunity     = "Password retrieved from a community-shared source. Please use it responsibly."
	msgNotFound      = "No shared password was found for this network. Accessing private networks without authorization is not supported."
	msgFailed        = "Password lookup failed. Please try again."
)

// DefaultDelay models the latency of a community database query.
const DefaultDelay = 2 * time.Second

// Outcome is the result of a lookup. Password is empty when no shared
// password applies; Message is always set.
type Outcome struct {
	Password string `json:"password,omitempty"`
	Message  string `json:"message"`
}

// Retriever performs simulated lookups.
type Retriever struct {
	delay time.Duration
}

// New creates a Retriever with the default lookup delay.
func New() *Retriever {
	return &Retriever{delay: DefaultDelay}
}

// NewWithDelay creates a Retriever with a custom delay; zero disables it.
func NewWithDelay(delay time.Duration) *Retriever {
	return &Retriever{delay: delay}
}

// Lookup resolves the password outcome for a hotspot. It never fails: a
// cancelled context yields a generic failure message.
func (r *Retriever) Lookup(ctx context.Context, h hotspot.Hotspot) Outcome {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Outcome{Message: msgFailed}
		case <-timer.C:
		}
	}

	switch {
	case h.Security == hotspot.SecurityOpen || h.Security == hotspot.SecurityPublic:
		return Outcome{Message: msgPublicNetwork}
	case h.HasPassword():
		return Outcome{Password: h.Password, Message: msgCommunity}
	default:
		return Outcome{Message: msgNotFound}
	}
}
