// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/wavescout/wavescout/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
