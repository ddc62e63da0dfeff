// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/history"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/session"
)

var scanOpts = struct {
	Sort    string
	JSON    bool
	Timeout time.Duration
	DbPath  string
}{}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "One-shot scan: locate, query and print nearby hotspots",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sortKey, err := hotspot.ParseSortKey(scanOpts.Sort)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), scanOpts.Timeout)
		defer cancel()

		sess, err := buildSession(ctx, cmd)
		if err != nil {
			return err
		}
		sess.SetSortKey(sortKey)

		stop := startSpinner("Scanning for hotspots")
		snap := sess.StartScan(ctx)
		stop()

		switch snap.Phase {
		case session.PhaseErrored:
			return errors.New(snap.Error)
		case session.PhaseEmpty:
			fmt.Println("No hotspots found nearby.")

			return nil
		}

		if scanOpts.DbPath != "" && snap.Origin != nil {
			if err := saveScan(snap); err != nil {
				return fmt.Errorf("saving scan history: %w", err)
			}
		}

		if scanOpts.JSON {
			out, err := json.MarshalIndent(snap.Hotspots, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			return nil
		}

		printHotspots(snap)

		return nil
	},
}

// startSpinner spins on stderr while the scan is in flight. The returned
// func clears it; it is a no-op when stderr is not a terminal.
func startSpinner(description string) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				_ = bar.Finish()

				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() { close(done) }
}

func printHotspots(snap session.Snapshot) {
	if snap.Origin != nil {
		fmt.Printf("Hotspots near %s:\n", snap.Origin)
	}

	a, b, c, d, e := strings.Repeat("─", 24), strings.Repeat("─", 12),
		strings.Repeat("─", 9), strings.Repeat("─", 6), strings.Repeat("─", 10)
	fmt.Printf("╭─%-24s─┬─%-12s─┬─%-9s─┬─%-6s─┬─%-10s─╮\n", a, b, c, d, e)
	fmt.Printf("│ %-24s │ %-12s │ %9s │ %6s │ %-10s │\n",
		"Name", "Venue", "Distance", "Signal", "Security")
	fmt.Printf("├─%-24s─┼─%-12s─┼─%-9s─┼─%-6s─┼─%-10s─┤\n", a, b, c, d, e)
	for _, h := range snap.Hotspots {
		fmt.Printf("│ %-24.24s │ %-12s │ %9s │ %5d%% │ %-10s │\n",
			h.Name, h.Venue, h.Distance, h.SignalStrength, h.Security)
	}
	fmt.Printf("╰─%-24s─┴─%-12s─┴─%-9s─┴─%-6s─┴─%-10s─╯\n", a, b, c, d, e)
}

func saveScan(snap session.Snapshot) error {
	db, err := sql.Open("duckdb", scanOpts.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	repo := history.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	id, err := repo.SaveScan(*snap.Origin, time.Now(), snap.Hotspots)
	if err != nil {
		return err
	}
	log.Printf("Saved scan %d with %d hotspots", id, len(snap.Hotspots))

	return nil
}

func init() {
	rootCmd.AddCommand(scanCmd)
	addClientFlags(scanCmd)
	scanCmd.PersistentFlags().StringVar(
		&scanOpts.Sort,
		"sort",
		"signal",
		"Ordering of the results: name, distance or signal",
	)
	scanCmd.PersistentFlags().BoolVar(
		&scanOpts.JSON,
		"json",
		false,
		"Print the results as JSON instead of a table",
	)
	scanCmd.PersistentFlags().DurationVar(
		&scanOpts.Timeout,
		"timeout",
		90*time.Second,
		"Overall deadline for the scan",
	)
	scanCmd.PersistentFlags().StringVar(
		&scanOpts.DbPath,
		"db",
		"",
		"DuckDB file to append the scan to. History is off when empty",
	)
}
