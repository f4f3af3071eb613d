// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/sketch"
)

func TestSurfaces(t *testing.T) {
	h := New(100, 50)
	if _, ok := h.Surface("canvas"); ok {
		t.Fatal("Surface() found a surface on an empty host")
	}
	c, err := h.NewSurface("canvas", 10, 20)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	got, ok := h.Surface("canvas")
	if !ok || got != c {
		t.Errorf("Surface() = %p, %v; want %p, true", got, ok, c)
	}
	if _, err := h.NewSurface("bad", 0, 1); !errors.Is(err, sketch.ErrInvalidDimensions) {
		t.Errorf("NewSurface(0, 1) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestViewport(t *testing.T) {
	h := New(100, 50)
	if w, ht := h.Viewport(); w != 100 || ht != 50 {
		t.Errorf("Viewport() = %dx%d, want 100x50", w, ht)
	}
	h.SetViewport(7, 9)
	if w, ht := h.Viewport(); w != 7 || ht != 9 {
		t.Errorf("Viewport() = %dx%d, want 7x9", w, ht)
	}
}

func TestSendOrderAndRemove(t *testing.T) {
	h := New(1, 1)
	var got []string
	removeA := h.Listen(func(sketch.Event) { got = append(got, "a") })
	h.Listen(func(sketch.Event) { got = append(got, "b") })

	h.Send(sketch.KeyEvent{Kind: sketch.EventKeyDown, Code: 1})
	removeA()
	removeA()
	h.Send(sketch.KeyEvent{Kind: sketch.EventKeyDown, Code: 1})

	if diff := cmp.Diff([]string{"a", "b", "b"}, got); diff != "" {
		t.Errorf("delivery (-want +got):\n%s", diff)
	}
	if h.Listeners() != 1 {
		t.Errorf("Listeners() = %d, want 1", h.Listeners())
	}
}

func TestStepRunsOnlyEarlierRequests(t *testing.T) {
	h := New(1, 1)
	now := time.Unix(100, 0)
	var seen []time.Time

	var loop func(time.Time)
	loop = func(ts time.Time) {
		seen = append(seen, ts)
		h.RequestFrame(loop)
	}
	h.RequestFrame(loop)

	if ran := h.Step(now); ran != 1 {
		t.Errorf("Step() ran %d, want 1", ran)
	}
	if h.Pending() != 1 {
		t.Errorf("Pending() = %d, want the re-request waiting", h.Pending())
	}
	h.Step(now.Add(time.Second))
	if diff := cmp.Diff([]time.Time{now, now.Add(time.Second)}, seen); diff != "" {
		t.Errorf("frame timestamps (-want +got):\n%s", diff)
	}
}

func TestStepSkipsCancelled(t *testing.T) {
	h := New(1, 1)
	ran := false
	var cancelSecond func()
	h.RequestFrame(func(time.Time) { cancelSecond() })
	cancelSecond = h.RequestFrame(func(time.Time) { ran = true })

	if n := h.Step(time.Now()); n != 1 {
		t.Errorf("Step() ran %d, want 1", n)
	}
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestRunDeliversPostedEventsAndFrames(t *testing.T) {
	h := New(64, 64)
	if _, err := h.NewSurface("canvas", 64, 64); err != nil {
		t.Fatal(err)
	}

	var (
		frames, keys atomic.Int32
		once         sync.Once
		done         = make(chan struct{})
	)
	check := func() {
		if frames.Load() >= 3 && keys.Load() >= 1 {
			once.Do(func() { close(done) })
		}
	}
	d, err := sketch.New(h, sketch.Config{
		Animate: true,
		Hooks: sketch.Hooks{
			Update: func(*sketch.Driver, float64) {
				frames.Add(1)
				check()
			},
			KeyDown: func(*sketch.Driver) {
				keys.Add(1)
				check()
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- h.Run(ctx, time.Millisecond) }()

	if err := h.Post(ctx, sketch.KeyEvent{Kind: sketch.EventKeyDown, Code: 'K'}); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("frames did not run")
	}
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}

	// The loop has stopped, so the driver can be touched again here.
	d.Dispose()
	if keys.Load() != 1 {
		t.Errorf("KeyDown ran %d times, want 1", keys.Load())
	}
}

func TestRunInvalidInterval(t *testing.T) {
	if err := New(1, 1).Run(context.Background(), 0); err == nil {
		t.Error("Run() with zero interval should fail")
	}
}

func TestPostHonoursContext(t *testing.T) {
	h := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Fill the queue so the next Post must wait.
	for i := 0; i < cap(h.events); i++ {
		h.events <- sketch.KeyEvent{}
	}
	if err := h.Post(ctx, sketch.KeyEvent{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Post() error = %v, want context.Canceled", err)
	}
}
