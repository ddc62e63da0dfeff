// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/spatial"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

var debugPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent for the given coordinates",
	RunE: func(_ *cobra.Command, _ []string) error {
		pt := spatial.Point{Lat: clientOpts.Lat, Lng: clientOpts.Lng}
		if !pt.Valid() {
			return fmt.Errorf("invalid coordinates %v", pt)
		}

		fmt.Println(hotspot.Prompt(pt))

		return nil
	},
}

var debugResponseCmd = &cobra.Command{
	Use:   "response",
	Short: "Query the model for the given coordinates and dump the raw text",
	Long: `Issues the same request a scan would and prints the model response before
any record extraction, which is useful when the model drifts away from the
expected JSON shape.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pt := spatial.Point{Lat: clientOpts.Lat, Lng: clientOpts.Lng}
		if !pt.Valid() {
			return fmt.Errorf("invalid coordinates %v", pt)
		}

		src, err := buildSource(cmd.Context())
		if err != nil {
			return err
		}

		text, err := src.NearbyHotspots(cmd.Context(), pt)
		if err != nil {
			return err
		}

		fmt.Println(text)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	addClientFlags(debugCmd)
	debugCmd.AddCommand(debugPromptCmd)
	debugCmd.AddCommand(debugResponseCmd)
}
