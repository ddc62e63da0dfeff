// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/session"
)

type scanDoneMsg struct{}

type retrieveDoneMsg struct{}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case scanDoneMsg:
		// The session already discarded superseded scans; the latest
		// snapshot is always authoritative.
		m.snap = m.sess.Snapshot()
		m.cursor = 0

		return m, nil

	case retrieveDoneMsg:
		m.snap = m.sess.Snapshot()

		return m, nil

	case spinner.TickMsg:
		if m.snap.Phase == session.PhaseScanning || m.snap.Retrieving {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)

			return m, cmd
		}
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "s":
		if m.snap.Phase == session.PhaseScanning {
			return m, nil
		}

		return m.startScan()

	case "1":
		return m.setSort(hotspot.SortByName)

	case "2":
		return m.setSort(hotspot.SortByDistance)

	case "3":
		return m.setSort(hotspot.SortBySignal)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.snap.Hotspots)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.snap.Hotspots) {
			m.sess.Select(m.snap.Hotspots[m.cursor].ID)
			m.snap = m.sess.Snapshot()
		}

	case "p":
		return m.retrievePassword()
	}

	return m, nil
}

func (m model) startScan() (tea.Model, tea.Cmd) {
	sess := m.sess

	// Reflect the Scanning phase immediately; the command settles later.
	m.snap.Phase = session.PhaseScanning
	m.snap.Hotspots = nil
	m.snap.Error = ""
	m.snap.Outcome = nil
	m.cursor = 0
	m.showErr = ""

	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		sess.StartScan(context.Background())

		return scanDoneMsg{}
	})
}

func (m model) setSort(key hotspot.SortKey) (tea.Model, tea.Cmd) {
	m.sess.SetSortKey(key)
	m.snap = m.sess.Snapshot()
	m.cursor = 0

	return m, nil
}

func (m model) retrievePassword() (tea.Model, tea.Cmd) {
	if _, ok := m.sess.Selected(); !ok {
		m.showErr = "Select a hotspot first (enter)"

		return m, nil
	}

	m.showErr = ""
	m.snap.Retrieving = true
	m.snap.Outcome = nil
	sess := m.sess

	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		// Stale results are discarded inside the session.
		_, _ = sess.RetrievePassword(context.Background())

		return retrieveDoneMsg{}
	})
}
