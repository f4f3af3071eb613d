// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
)

// State is the lifecycle state of a Driver.
type State int

const (
	// StateIdle is the state between attaching to the host and running
	// the Setup hook.
	StateIdle State = iota
	// StateRunning means the frame loop is active.
	StateRunning
	// StateDisposed means the driver has detached from its host.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver binds a canvas to input events and a per-frame hook loop.
//
// Driver is NOT safe for concurrent use; see the package documentation.
type Driver struct {
	host   Host
	canvas *Canvas
	id     string
	hooks  Hooks
	opts   options

	width      int
	height     int
	fps        float64
	animate    bool
	fullscreen bool
	clearColor color.Color
	redraw     bool

	pointer Pointer
	keys    KeyState

	state       State
	lastTick    time.Time
	frames      uint64
	unlisten    func()
	cancelFrame func()
}

// New creates a driver for the canvas named by cfg.Surface and starts it.
//
// New sizes the canvas (to the host viewport when cfg.Fullscreen is set),
// registers an input listener, runs the Setup hook and requests the first
// frame.
//
// Returns ErrNilHost, ErrSurfaceNotFound, or ErrInvalidDimensions for a
// negative width or height.
func New(host Host, cfg Config, opts ...Option) (*Driver, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	cfg = cfg.withDefaults()

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas, ok := host.Surface(cfg.Surface)
	if !ok || canvas == nil {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, cfg.Surface)
	}

	d := &Driver{
		host:       host,
		canvas:     canvas,
		id:         cfg.Surface,
		hooks:      cfg.Hooks,
		opts:       o,
		fps:        cfg.FPS,
		animate:    cfg.Animate,
		fullscreen: cfg.Fullscreen,
		clearColor: cfg.ClearColor,
		keys:       newKeyState(),
		state:      StateIdle,
	}

	w, h := cfg.Width, cfg.Height
	if d.fullscreen {
		if vw, vh := host.Viewport(); vw > 0 && vh > 0 {
			w, h = vw, vh
		}
	}
	if err := canvas.Resize(w, h); err != nil {
		return nil, fmt.Errorf("sketch: sizing surface %q: %w", cfg.Surface, err)
	}
	d.width, d.height = w, h

	d.lastTick = o.clock()
	d.unlisten = host.Listen(d.Dispatch)
	d.start()
	return d, nil
}

// start runs Setup and enters the frame loop.
func (d *Driver) start() {
	d.logger().Info("sketch: driver started",
		"surface", d.id, "width", d.width, "height", d.height,
		"fps", d.fps, "animate", d.animate, "fullscreen", d.fullscreen)

	call(d.hooks.Setup, d)
	if d.state == StateDisposed {
		return
	}
	d.state = StateRunning
	d.requestFrame()
}

// Dispose detaches the driver: the input listener is removed and the
// pending frame is cancelled. Dispose is idempotent. The canvas belongs
// to the host and is left open.
func (d *Driver) Dispose() {
	if d.state == StateDisposed {
		return
	}
	if d.unlisten != nil {
		d.unlisten()
		d.unlisten = nil
	}
	if d.cancelFrame != nil {
		d.cancelFrame()
		d.cancelFrame = nil
	}
	d.state = StateDisposed
	d.logger().Info("sketch: driver disposed", "surface", d.id, "frames", d.frames)
}

// Close implements io.Closer by calling Dispose.
func (d *Driver) Close() error {
	d.Dispose()
	return nil
}

func (d *Driver) logger() *slog.Logger {
	if d.opts.logger != nil {
		return d.opts.logger
	}
	return Logger()
}

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Width returns the logical canvas width.
func (d *Driver) Width() int { return d.width }

// Height returns the logical canvas height.
func (d *Driver) Height() int { return d.height }

// Canvas returns the driven canvas.
func (d *Driver) Canvas() *Canvas { return d.canvas }

// Context returns the canvas drawing context.
func (d *Driver) Context() *gg.Context { return d.canvas.Context() }

// Pointer returns a copy of the pointer state.
func (d *Driver) Pointer() Pointer { return d.pointer }

// Keys returns the keyboard state. The returned value is owned by the
// driver and changes with every key event.
func (d *Driver) Keys() *KeyState { return &d.keys }

// FPS returns the target frame rate.
func (d *Driver) FPS() float64 { return d.fps }

// Fullscreen reports whether the canvas follows the host viewport.
func (d *Driver) Fullscreen() bool { return d.fullscreen }

// Frames returns the number of ticks run so far.
func (d *Driver) Frames() uint64 { return d.frames }

// ClearColor returns the colour used by Clear, or nil for transparent.
func (d *Driver) ClearColor() color.Color { return d.clearColor }

// SetClearColor sets the colour used by Clear. Nil erases to transparent.
func (d *Driver) SetClearColor(c color.Color) { d.clearColor = c }

// Animating reports whether Update and Draw run on every frame.
func (d *Driver) Animating() bool { return d.animate }

// SetAnimate turns per-frame Update and Draw calls on or off. The frame
// loop keeps running either way.
func (d *Driver) SetAnimate(on bool) { d.animate = on }

// RequestRedraw makes the next frame call Update and Draw once even when
// not animating.
func (d *Driver) RequestRedraw() { d.redraw = true }
