// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavescout/wavescout/locate"
)

func newFlaggedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "scan"}
	addClientFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestBuildLocatorExplicitCoordinates(t *testing.T) {
	cmd := newFlaggedCommand(t, "--lat=40.7128", "--lng=-74.0060")

	provider, err := buildLocator(cmd)
	require.NoError(t, err)

	static, ok := provider.(*locate.Static)
	require.True(t, ok, "expected a static provider, got %T", provider)
	assert.InDelta(t, 40.7128, static.Point.Lat, 1e-9)
	assert.InDelta(t, -74.0060, static.Point.Lng, 1e-9)
}

func TestBuildLocatorRejectsPartialCoordinates(t *testing.T) {
	for _, args := range [][]string{{"--lat=40.7128"}, {"--lng=-74.0060"}} {
		cmd := newFlaggedCommand(t, args...)

		_, err := buildLocator(cmd)
		assert.Error(t, err, "args %v", args)
	}
}

func TestBuildLocatorDefaultsToChain(t *testing.T) {
	cmd := newFlaggedCommand(t)

	provider, err := buildLocator(cmd)
	require.NoError(t, err)

	_, ok := provider.(locate.Chain)
	assert.True(t, ok, "expected a provider chain, got %T", provider)
}
