// Squarer pads an image onto a square canvas in place.
//
// Usage:
//
//	squarer <image>
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/squarer/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.NewRootCmd().Execute()))
}
