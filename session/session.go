// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the scan/selection state machine. All mutation goes
// through commands; readers get immutable snapshots with the ordering
// recomputed on every read, so the underlying list is never resorted in
// place.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/locate"
	"github.com/wavescout/wavescout/passdb"
	"github.com/wavescout/wavescout/spatial"
)

// Phase is the scan lifecycle state.
type Phase string

// Lifecycle states.
const (
	PhaseIdle      Phase = "idle"
	PhaseScanning  Phase = "scanning"
	PhasePopulated Phase = "populated"
	PhaseEmpty     Phase = "empty"
	PhaseErrored   Phase = "errored"
)

// Fixed user-visible error texts. Provider detail is deliberately not
// surfaced.
const (
	MsgLocationUnavailable = "Location services are not available."
	MsgLocationDenied      = "Location permission was denied."
	MsgResolutionFailed    = "Could not fetch nearby hotspots. Check your connection and try again."
)

// ErrNoSelection is returned by RetrievePassword without a selected hotspot.
var ErrNoSelection = errors.New("no hotspot is selected")

// Resolver turns coordinates into a hotspot list. *hotspot.Resolver
// implements it.
type Resolver interface {
	Resolve(ctx context.Context, pt spatial.Point) ([]hotspot.Hotspot, error)
}

// Retriever performs the community password lookup. *passdb.Retriever
// implements it.
type Retriever interface {
	Lookup(ctx context.Context, h hotspot.Hotspot) passdb.Outcome
}

// Session is the view-model aggregate. Safe for concurrent use; state is
// only ever replaced whole, never partially mutated, and results from
// superseded scans or retrievals are discarded on arrival.
type Session struct {
	locator   locate.Provider
	resolver  Resolver
	retriever Retriever

	mu          sync.Mutex
	phase       Phase
	hotspots    []hotspot.Hotspot
	sortKey     hotspot.SortKey
	selectedID  string
	errMsg      string
	origin      *spatial.Point
	retrieving  bool
	outcome     *passdb.Outcome
	scanGen     int
	retrieveGen int
}

// New creates an idle session sorted by signal strength.
func New(locator locate.Provider, resolver Resolver, retriever Retriever) *Session {
	return &Session{
		locator:   locator,
		resolver:  resolver,
		retriever: retriever,
		phase:     PhaseIdle,
		sortKey:   hotspot.SortBySignal,
	}
}

// Snapshot is an immutable view of the session.
type Snapshot struct {
	Phase      Phase              `json:"phase"`
	Hotspots   []hotspot.Hotspot  `json:"hotspots"`
	SortKey    hotspot.SortKey    `json:"sort_key"`
	SelectedID string             `json:"selected_id,omitempty"`
	Error      string             `json:"error,omitempty"`
	Origin     *spatial.Point     `json:"origin,omitempty"`
	Retrieving bool               `json:"retrieving"`
	Outcome    *passdb.Outcome    `json:"outcome,omitempty"`
}

// Snapshot returns the current state with the visible ordering applied.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:      s.phase,
		Hotspots:   hotspot.Order(s.hotspots, s.sortKey),
		SortKey:    s.sortKey,
		SelectedID: s.selectedID,
		Error:      s.errMsg,
		Retrieving: s.retrieving,
	}

	if s.origin != nil {
		pt := *s.origin
		snap.Origin = &pt
	}

	if s.outcome != nil {
		out := *s.outcome
		snap.Outcome = &out
	}

	return snap
}

// StartScan clears prior results, obtains a location fix and resolves
// nearby hotspots. It blocks until the scan settles and returns the
// resulting snapshot. A newer StartScan supersedes this one: the older
// result is discarded on arrival.
func (s *Session) StartScan(ctx context.Context) Snapshot {
	return s.scan(ctx, s.locator)
}

// StartScanAt runs a scan anchored at explicit coordinates, bypassing the
// configured locator. Same lifecycle and supersession rules as StartScan.
func (s *Session) StartScanAt(ctx context.Context, pt spatial.Point) Snapshot {
	return s.scan(ctx, &locate.Static{Point: pt})
}

func (s *Session) scan(ctx context.Context, locator locate.Provider) Snapshot {
	s.mu.Lock()
	s.scanGen++
	gen := s.scanGen
	s.retrieveGen++ // pending retrievals are now stale
	s.phase = PhaseScanning
	s.hotspots = nil
	s.selectedID = ""
	s.errMsg = ""
	s.outcome = nil
	s.retrieving = false
	s.mu.Unlock()

	pt, err := locator.Locate(ctx)
	if err != nil {
		msg := MsgLocationUnavailable
		if errors.Is(err, locate.ErrDenied) {
			msg = MsgLocationDenied
		}

		// The resolver is never invoked without a location fix.
		s.commitScan(gen, func() {
			s.phase = PhaseErrored
			s.errMsg = msg
		})

		return s.Snapshot()
	}

	list, err := s.resolver.Resolve(ctx, *pt)

	s.commitScan(gen, func() {
		s.origin = pt

		switch {
		case err != nil:
			s.phase = PhaseErrored
			s.errMsg = MsgResolutionFailed
		case len(list) == 0:
			s.phase = PhaseEmpty
		default:
			s.phase = PhasePopulated
			s.hotspots = list
		}
	})

	return s.Snapshot()
}

// commitScan applies fn only if no newer scan has started since gen.
func (s *Session) commitScan(gen int, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanGen != gen {
		return
	}

	fn()
}

// SetSortKey changes the visible ordering. Pure state change; the stored
// list is untouched.
func (s *Session) SetSortKey(key hotspot.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortKey = key
}

// Select toggles the selection. Selecting the already-selected hotspot
// clears it; selecting a different one replaces it and discards any prior
// or in-flight retrieval outcome. Returns false when the id is unknown.
func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == s.selectedID {
		s.selectedID = ""
		s.outcome = nil
		s.retrieving = false
		s.retrieveGen++

		return true
	}

	for _, h := range s.hotspots {
		if h.ID == id {
			s.selectedID = id
			s.outcome = nil
			s.retrieving = false
			s.retrieveGen++

			return true
		}
	}

	return false
}

// Selected returns the currently selected hotspot, if any.
func (s *Session) Selected() (hotspot.Hotspot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedLocked()
}

func (s *Session) selectedLocked() (hotspot.Hotspot, bool) {
	if s.selectedID == "" {
		return hotspot.Hotspot{}, false
	}

	for _, h := range s.hotspots {
		if h.ID == s.selectedID {
			return h, true
		}
	}

	return hotspot.Hotspot{}, false
}

// RetrievePassword runs the community lookup for the current selection and
// blocks until it settles. If the selection changes or a new scan starts
// while the lookup is pending, the result is discarded on arrival instead
// of racing into shared state.
func (s *Session) RetrievePassword(ctx context.Context) (*passdb.Outcome, error) {
	s.mu.Lock()

	h, ok := s.selectedLocked()
	if !ok {
		s.mu.Unlock()

		return nil, ErrNoSelection
	}

	s.retrieveGen++
	gen := s.retrieveGen
	s.retrieving = true
	s.outcome = nil
	s.mu.Unlock()

	out := s.retriever.Lookup(ctx, h)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.retrieveGen != gen || s.selectedID != h.ID {
		// Superseded while pending.
		return nil, nil
	}

	s.retrieving = false
	s.outcome = &out

	return &out, nil
}
