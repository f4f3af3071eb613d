// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sketchdemo runs a noise flow-field sketch, either in a window or
// headless to a PNG file.
//
//	sketchdemo --width 1024 --height 768
//	sketchdemo --headless --frames 300 --output flow.png
//
// Flags may also come from a YAML config file (--config) or from
// SKETCH_* environment variables, e.g. SKETCH_PARTICLES=2000.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
