// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the scan workflow over a local HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := buildSession(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		log.Printf("Listening on http://%s", serveAddr)

		return server.NewServer(sess, serveAddr).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addClientFlags(serveCmd)
	serveCmd.PersistentFlags().StringVar(
		&serveAddr,
		"addr",
		"localhost:8080",
		"Address to listen on",
	)
}
