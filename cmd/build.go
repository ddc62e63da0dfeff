// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/locate"
	"github.com/wavescout/wavescout/passdb"
	"github.com/wavescout/wavescout/session"
	"github.com/wavescout/wavescout/spatial"
)

// clientOptions are the knobs shared by every command that talks to the
// generative service.
type clientOptions struct {
	Lat                 float64
	Lng                 float64
	Model               string
	EnableHTTPTrace     bool
	EnableHTTPBodyTrace bool
}

var clientOpts = &clientOptions{}

func addClientFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Float64Var(
		&clientOpts.Lat,
		"lat",
		0,
		"Skip geolocation and scan around this latitude (requires --lng)",
	)
	cmd.PersistentFlags().Float64Var(
		&clientOpts.Lng,
		"lng",
		0,
		"Skip geolocation and scan around this longitude (requires --lat)",
	)
	cmd.PersistentFlags().StringVar(
		&clientOpts.Model,
		"model",
		"",
		"Generative model to query. Defaults to gemini-2.0-flash",
	)
	cmd.PersistentFlags().BoolVar(
		&clientOpts.EnableHTTPTrace,
		"trace-http",
		false,
		"Display HTTP requests-responses",
	)
	cmd.PersistentFlags().BoolVar(
		&clientOpts.EnableHTTPBodyTrace,
		"trace-http-body",
		false,
		"Display HTTP requests-responses bodies",
	)
}

// buildLocator picks the position source: explicit --lat/--lng, otherwise
// the Google geolocation API when a key is around, otherwise IP lookup.
func buildLocator(cmd *cobra.Command) (locate.Provider, error) {
	latSet, lngSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
	if latSet != lngSet {
		return nil, errors.New("--lat and --lng must be given together")
	}

	if latSet {
		return &locate.Static{Point: spatial.Point{Lat: clientOpts.Lat, Lng: clientOpts.Lng}}, nil
	}

	return locate.Chain{
		locate.NewGoogleGeolocation(os.Getenv("GOOGLE_API_KEY")),
		locate.NewIPAPI(),
	}, nil
}

func buildSource(ctx context.Context) (*hotspot.GeminiSource, error) {
	key, err := resolveGeminiKey(ctx)
	if err != nil {
		return nil, err
	}

	return hotspot.NewGeminiSource(key, &hotspot.GeminiOptions{
		Model:               clientOpts.Model,
		UserAgent:           fmt.Sprintf("wavescout/%s (+https://github.com/wavescout/wavescout)", Version),
		EnableHTTPTrace:     clientOpts.EnableHTTPTrace,
		EnableHTTPBodyTrace: clientOpts.EnableHTTPBodyTrace,
	}), nil
}

func buildSession(ctx context.Context, cmd *cobra.Command) (*session.Session, error) {
	locator, err := buildLocator(cmd)
	if err != nil {
		return nil, err
	}

	src, err := buildSource(ctx)
	if err != nil {
		return nil, err
	}

	return session.New(locator, hotspot.NewResolver(src), passdb.New()), nil
}
