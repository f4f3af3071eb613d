// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost runs a sketch in a desktop window using ebiten.
//
// The host implements ebiten.Game. Each ebiten update translates cursor,
// mouse button and keyboard input into sketch events and then runs the
// frames the driver requested; each draw uploads the canvas to the
// screen.
//
//	canvas := sketch.MustNewCanvas(800, 600)
//	host := ebitenhost.New("canvas", canvas)
//	d, err := sketch.New(host, cfg)
//	...
//	err = host.Run("my sketch")
package ebitenhost

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/sketch"
)

// Host is a windowed sketch.Host. All of its methods run on ebiten's game
// goroutine.
type Host struct {
	id     string
	canvas *sketch.Canvas

	viewportW int
	viewportH int

	listeners  map[int]func(sketch.Event)
	frames     map[int]func(time.Time)
	nextListen int
	nextFrame  int

	cursorX, cursorY int
	cursorKnown      bool

	keys  []ebiten.Key
	chars []rune

	screen *ebiten.Image
	now    func() time.Time
	quit   bool
}

var (
	_ sketch.Host = (*Host)(nil)
	_ ebiten.Game = (*Host)(nil)
)

// New creates a host that exposes canvas under id.
func New(id string, canvas *sketch.Canvas) *Host {
	return &Host{
		id:        id,
		canvas:    canvas,
		listeners: make(map[int]func(sketch.Event)),
		frames:    make(map[int]func(time.Time)),
		now:       time.Now,
	}
}

// Surface implements sketch.Host.
func (h *Host) Surface(id string) (*sketch.Canvas, bool) {
	if id != h.id {
		return nil, false
	}
	return h.canvas, true
}

// Viewport implements sketch.Host. It reports the window's outside size
// as last seen by Layout, or 0x0 before the first layout.
func (h *Host) Viewport() (width, height int) {
	return h.viewportW, h.viewportH
}

// Listen implements sketch.Host.
func (h *Host) Listen(fn func(sketch.Event)) func() {
	h.nextListen++
	id := h.nextListen
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// RequestFrame implements sketch.Host.
func (h *Host) RequestFrame(fn func(time.Time)) func() {
	h.nextFrame++
	id := h.nextFrame
	h.frames[id] = fn
	return func() { delete(h.frames, id) }
}

// Quit ends the game loop after the current update.
func (h *Host) Quit() { h.quit = true }

// Run opens the window and blocks until it is closed or Quit is called.
func (h *Host) Run(title string, fullscreen bool) error {
	w, ht := h.canvas.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, ht)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)

	sketch.Logger().Info("ebitenhost: opening window", "title", title, "width", w, "height", ht)
	return ebiten.RunGame(h)
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.quit {
		return ebiten.Termination
	}
	h.pollPointer()
	h.pollKeys()
	h.runFrames(h.now())
	if h.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	img := h.canvas.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	if h.screen == nil || h.screen.Bounds().Dx() != b.Dx() || h.screen.Bounds().Dy() != b.Dy() {
		if h.screen != nil {
			h.screen.Deallocate()
		}
		h.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	h.screen.WritePixels(img.Pix)
	screen.DrawImage(h.screen, nil)
}

// Layout implements ebiten.Game. The logical screen is the canvas size;
// the outside size becomes the viewport used in fullscreen mode.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.viewportW, h.viewportH = outsideWidth, outsideHeight
	return h.canvas.Size()
}

func (h *Host) pollPointer() {
	x, y := ebiten.CursorPosition()
	if !h.cursorKnown || x != h.cursorX || y != h.cursorY {
		h.cursorKnown = true
		h.cursorX, h.cursorY = x, y
		h.emitPointer(sketch.EventPointerMove, ebiten.MouseButtonLeft)
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			h.emitPointer(sketch.EventPointerDown, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			h.emitPointer(sketch.EventPointerUp, b)
		}
	}
}

func (h *Host) emitPointer(kind sketch.EventType, b ebiten.MouseButton) {
	h.emit(sketch.PointerEvent{
		Kind:    kind,
		ClientX: float64(h.cursorX),
		ClientY: float64(h.cursorY),
		Button:  int(b),
	})
}

func (h *Host) pollKeys() {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if code, ok := KeyCode(k); ok {
			h.emit(sketch.KeyEvent{Kind: sketch.EventKeyDown, Code: code})
		}
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if code, ok := KeyCode(k); ok {
			h.emit(sketch.KeyEvent{Kind: sketch.EventKeyUp, Code: code})
		}
	}
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, r := range h.chars {
		h.emit(sketch.KeyEvent{Kind: sketch.EventKeyPress, Code: int(r)})
	}
}

func (h *Host) emit(ev sketch.Event) {
	for _, id := range sortedKeys(h.listeners) {
		if fn, ok := h.listeners[id]; ok {
			fn(ev)
		}
	}
}

// runFrames runs the frame callbacks pending at entry.
func (h *Host) runFrames(now time.Time) int {
	ran := 0
	for _, id := range sortedKeys(h.frames) {
		fn, ok := h.frames[id]
		if !ok {
			continue
		}
		delete(h.frames, id)
		fn(now)
		ran++
	}
	return ran
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
