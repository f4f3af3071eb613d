// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sketch drives interactive 2D sketches drawn with gg.
//
// # Overview
//
// A [Driver] owns a named [Canvas], mirrors pointer and keyboard state, and
// calls user-supplied hooks once per animation frame. The environment that
// delivers input and schedules frames is a [Host]: package headless
// provides an in-process host for tests and offline rendering, and package
// ebitenhost provides a window.
//
// # Quick Start
//
//	host := headless.New(800, 600)
//	canvas, _ := host.NewSurface("canvas", 800, 600)
//
//	d, err := sketch.New(host, sketch.Config{
//	    Width:   800,
//	    Height:  600,
//	    Animate: true,
//	    Hooks: sketch.Hooks{
//	        Draw: func(d *sketch.Driver, dt float64) {
//	            dc := d.Context()
//	            _ = d.Clear()
//	            p := d.Pointer()
//	            dc.DrawCircle(p.X, p.Y, 20)
//	            _ = dc.Fill()
//	        },
//	    },
//	})
//
// # Lifecycle
//
// New resolves the surface, attaches to the host, runs the Setup hook and
// requests the first frame, so a returned Driver is already running. Each
// frame computes a delta normalised to the target frame rate (1.0 means one
// frame's worth of time elapsed) and, while animating, calls Update then
// Draw. Dispose detaches from the host and stops the frame loop.
//
// # Threading
//
// A Driver is not safe for concurrent use. Hosts deliver events and frames
// from a single goroutine; code running elsewhere must hand work to the
// host (see headless.Host.Post).
package sketch
