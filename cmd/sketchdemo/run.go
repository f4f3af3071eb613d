// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/ebitenhost"
	"github.com/gogpu/sketch/headless"
)

const surfaceID = "canvas"

func driverConfig(cfg demoConfig, f *flowField) sketch.Config {
	return sketch.Config{
		Surface:    surfaceID,
		Width:      cfg.Width,
		Height:     cfg.Height,
		FPS:        cfg.FPS,
		Animate:    !cfg.Paused,
		Fullscreen: cfg.Fullscreen,
		Hooks:      f.hooks(),
	}
}

// runHeadless steps the sketch for cfg.Frames frames at the target rate
// and writes the last frame to cfg.Output.
func runHeadless(cfg demoConfig, out io.Writer) error {
	host := headless.New(cfg.Width, cfg.Height)
	canvas, err := host.NewSurface(surfaceID, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()

	start := time.Unix(0, 0)
	f := newFlowField(cfg)
	d, err := sketch.New(host, driverConfig(cfg, f), sketch.WithClock(func() time.Time { return start }))
	if err != nil {
		return err
	}
	defer d.Dispose()

	interval := time.Duration(float64(time.Second) / d.FPS())
	for i := 1; i <= cfg.Frames; i++ {
		host.Step(start.Add(time.Duration(i) * interval))
	}

	if err := canvas.SavePNG(cfg.Output); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Output, err)
	}
	fmt.Fprintf(out, "rendered %d frames (%dx%d) to %s\n", cfg.Frames, d.Width(), d.Height(), cfg.Output)
	return nil
}

// runWindow opens a window and runs until it is closed or Escape is
// pressed.
func runWindow(cfg demoConfig) error {
	canvas, err := sketch.NewCanvas(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()

	host := ebitenhost.New(surfaceID, canvas)
	f := newFlowField(cfg)
	f.quit = host.Quit

	d, err := sketch.New(host, driverConfig(cfg, f))
	if err != nil {
		return err
	}
	defer d.Dispose()

	return host.Run("sketchdemo", cfg.Fullscreen)
}
