// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a sketch.Host without a window.
//
// Tests drive it by hand: Send delivers an event synchronously and Step
// runs the frames requested so far. Offline renderers and servers call Run
// instead, which paces frames with a ticker and serialises events posted
// from other goroutines onto the same loop.
package headless

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gogpu/sketch"
)

// Host is an in-process sketch.Host.
//
// Send, Step and Run must not be called concurrently with each other;
// Post is safe from any goroutine.
type Host struct {
	mu        sync.Mutex
	surfaces  map[string]*sketch.Canvas
	viewportW int
	viewportH int

	listeners  map[int]func(sketch.Event)
	frames     map[int]func(time.Time)
	nextListen int
	nextFrame  int

	events chan sketch.Event
}

var _ sketch.Host = (*Host)(nil)

// New creates a host with the given viewport size.
func New(viewportWidth, viewportHeight int) *Host {
	return &Host{
		surfaces:  make(map[string]*sketch.Canvas),
		viewportW: viewportWidth,
		viewportH: viewportHeight,
		listeners: make(map[int]func(sketch.Event)),
		frames:    make(map[int]func(time.Time)),
		events:    make(chan sketch.Event, 64),
	}
}

// AddSurface registers c under id, replacing any previous surface.
func (h *Host) AddSurface(id string, c *sketch.Canvas) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.surfaces[id] = c
}

// NewSurface creates a canvas and registers it under id.
func (h *Host) NewSurface(id string, width, height int) (*sketch.Canvas, error) {
	c, err := sketch.NewCanvas(width, height)
	if err != nil {
		return nil, fmt.Errorf("headless: surface %q: %w", id, err)
	}
	h.AddSurface(id, c)
	return c, nil
}

// Surface implements sketch.Host.
func (h *Host) Surface(id string) (*sketch.Canvas, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.surfaces[id]
	return c, ok
}

// Viewport implements sketch.Host.
func (h *Host) Viewport() (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewportW, h.viewportH
}

// SetViewport changes the reported viewport size.
func (h *Host) SetViewport(width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.viewportW, h.viewportH = width, height
}

// Listen implements sketch.Host.
func (h *Host) Listen(fn func(sketch.Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextListen++
	id := h.nextListen
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// RequestFrame implements sketch.Host.
func (h *Host) RequestFrame(fn func(time.Time)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextFrame++
	id := h.nextFrame
	h.frames[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.frames, id)
	}
}

// Listeners returns the number of registered listeners.
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Pending returns the number of frame requests waiting for Step.
func (h *Host) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.frames)
}

// Send delivers ev to every listener, in registration order.
func (h *Host) Send(ev sketch.Event) {
	h.mu.Lock()
	ids := sortedKeys(h.listeners)
	h.mu.Unlock()

	for _, id := range ids {
		h.mu.Lock()
		fn, ok := h.listeners[id]
		h.mu.Unlock()
		if ok {
			fn(ev)
		}
	}
}

// Step runs every frame callback requested before the call, passing now.
// Callbacks requested while stepping wait for the next Step, and a
// callback cancelled by an earlier one in the same step does not run.
// Step returns the number of callbacks run.
func (h *Host) Step(now time.Time) int {
	h.mu.Lock()
	ids := sortedKeys(h.frames)
	h.mu.Unlock()

	ran := 0
	for _, id := range ids {
		h.mu.Lock()
		fn, ok := h.frames[id]
		delete(h.frames, id)
		h.mu.Unlock()
		if ok {
			fn(now)
			ran++
		}
	}
	return ran
}

// Post queues ev for delivery by Run. It blocks while the queue is full
// and returns the context error if ctx ends first.
func (h *Host) Post(ctx context.Context, ev sketch.Event) error {
	select {
	case h.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run delivers posted events and steps frames every interval until ctx
// is done, all on the calling goroutine. It returns the context's error.
func (h *Host) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("headless: invalid frame interval %v", interval)
	}
	log := sketch.Logger()
	log.Debug("headless: run loop started", "interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("headless: run loop stopped", "err", ctx.Err())
			return ctx.Err()
		case ev := <-h.events:
			h.Send(ev)
		case now := <-ticker.C:
			h.Step(now)
		}
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
