// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/history"
)

var historyOpts = struct {
	DbPath string
	Limit  int
}{}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved scans",
}

func openHistory() (*sql.DB, history.Repository, error) {
	db, err := sql.Open("duckdb", historyOpts.DbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	repo := history.NewRepository(db)
	if err := repo.CreateSchema(); err != nil {
		db.Close()

		return nil, nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, repo, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scans, newest first",
	RunE: func(_ *cobra.Command, _ []string) error {
		db, repo, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()

		scans, err := repo.ListScans(historyOpts.Limit)
		if err != nil {
			return err
		}

		if len(scans) == 0 {
			fmt.Println("No saved scans.")

			return nil
		}

		a, b, c, d := strings.Repeat("─", 4), strings.Repeat("─", 19),
			strings.Repeat("─", 24), strings.Repeat("─", 8)
		fmt.Printf("╭─%-4s─┬─%-19s─┬─%-24s─┬─%-8s─╮\n", a, b, c, d)
		fmt.Printf("│ %4s │ %-19s │ %-24s │ %8s │\n", "Id", "When", "Origin", "Hotspots")
		fmt.Printf("├─%-4s─┼─%-19s─┼─%-24s─┼─%-8s─┤\n", a, b, c, d)
		for _, rec := range scans {
			fmt.Printf("│ %4d │ %-19s │ %-24s │ %8d │\n",
				rec.ID, rec.ScannedAt.Format("2006-01-02 15:04:05"),
				rec.Origin.String(), rec.Count)
		}
		fmt.Printf("╰─%-4s─┴─%-19s─┴─%-24s─┴─%-8s─╯\n", a, b, c, d)

		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scan-id>",
	Short: "Print the hotspots stored for a scan",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid scan id %q: %w", args[0], err)
		}

		db, repo, err := openHistory()
		if err != nil {
			return err
		}
		defer db.Close()

		hotspots, err := repo.ScanHotspots(id)
		if err != nil {
			return err
		}

		if len(hotspots) == 0 {
			fmt.Printf("No hotspots stored for scan %d.\n", id)

			return nil
		}

		for _, h := range hotspots {
			fmt.Printf("%-24s %-12s %9s %5d%% %s\n",
				h.Name, h.Venue, h.Distance, h.SignalStrength, h.Security)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.PersistentFlags().StringVar(
		&historyOpts.DbPath,
		"db",
		"wavescout.duckdb",
		"DuckDB file holding the scan history",
	)
	historyListCmd.PersistentFlags().IntVar(
		&historyOpts.Limit,
		"limit",
		20,
		"Maximum number of scans to list",
	)
}
