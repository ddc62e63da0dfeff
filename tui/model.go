// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui is the interactive terminal front-end over a session.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/wavescout/wavescout/session"
)

type model struct {
	sess    *session.Session
	snap    session.Snapshot
	cursor  int
	spin    spinner.Model
	width   int
	showErr string
}

// Run starts the interactive UI over an existing session.
func Run(sess *session.Session) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	initialModel := model{
		sess: sess,
		snap: sess.Snapshot(),
		spin: sp,
	}

	prog := tea.NewProgram(initialModel)
	_, err := prog.Run()

	return err
}

func (m model) Init() tea.Cmd {
	return nil
}
