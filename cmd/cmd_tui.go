// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal UI for scanning and password lookup",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := buildSession(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		return tui.Run(sess)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addClientFlags(tuiCmd)
}
