// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/wavescout/wavescout/session"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("WaveScout — nearby Wi-Fi hotspots"))
	b.WriteString("\n")

	if m.snap.Origin != nil {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Position: %.4f, %.4f", m.snap.Origin.Lat, m.snap.Origin.Lng)))
		b.WriteString("\n")
	}

	b.WriteString(infoStyle.Render(fmt.Sprintf("Sort: %s", m.snap.SortKey)))
	b.WriteString("\n\n")

	switch m.snap.Phase {
	case session.PhaseIdle:
		b.WriteString(emptyStyle.Render("Press s to scan for nearby hotspots") + "\n")
	case session.PhaseScanning:
		b.WriteString(m.spin.View() + " Scanning...\n")
	case session.PhaseErrored:
		b.WriteString(errorStyle.Render(m.snap.Error) + "\n")
	case session.PhaseEmpty:
		b.WriteString(emptyStyle.Render("No networks found nearby") + "\n")
	case session.PhasePopulated:
		m.renderList(&b)
	}

	if m.snap.Retrieving {
		b.WriteString("\n" + m.spin.View() + " Looking up community password...\n")
	} else if m.snap.Outcome != nil {
		out := m.snap.Outcome

		var detail strings.Builder
		if out.Password != "" {
			detail.WriteString(fmt.Sprintf("Password: %s\n", out.Password))
		}

		detail.WriteString(out.Message)
		b.WriteString("\n" + outcomeStyle.Render(detail.String()) + "\n")
	}

	if m.showErr != "" {
		b.WriteString("\n" + errorStyle.Render(m.showErr) + "\n")
	}

	b.WriteString("\n" + infoStyle.Render("s scan · 1 name · 2 distance · 3 signal · enter select · p password · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderList(b *strings.Builder) {
	for i, h := range m.snap.Hotspots {
		marker := "  "
		if h.ID == m.snap.SelectedID {
			marker = "✓ "
		}

		row := fmt.Sprintf("%s%-28s %8s  %3d%%  %-10s %s",
			marker, h.Name, h.Distance, h.SignalStrength, h.Security, h.Venue)

		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("> " + row))
		} else {
			b.WriteString(itemStyle.Render("  " + row))
		}

		b.WriteString("\n")
	}
}
