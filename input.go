// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "sort"

// Pointer is the pointer state relative to the canvas.
// PX and PY hold X and Y as they were before the latest update.
type Pointer struct {
	X, Y   float64
	PX, PY float64
	Down   bool
	Event  Event
}

// KeyState tracks held keys and the most recent key event.
type KeyState struct {
	held map[int]struct{}
	code int
	char string
}

func newKeyState() KeyState {
	return KeyState{held: make(map[int]struct{})}
}

// IsDown reports whether the key with the given code is currently held.
func (k *KeyState) IsDown(code int) bool {
	_, ok := k.held[code]
	return ok
}

// Held returns the codes of all held keys in ascending order.
func (k *KeyState) Held() []int {
	codes := make([]int, 0, len(k.held))
	for c := range k.held {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// Code returns the code of the most recent key event.
func (k *KeyState) Code() int { return k.code }

// Char returns the most recent key code as a one-character string.
func (k *KeyState) Char() string { return k.char }

func (k *KeyState) record(code int) {
	k.code = code
	k.char = string(rune(code))
}

// Dispatch applies an input event to the driver state and then calls the
// matching hook, so hooks always observe the updated state. Hosts call
// Dispatch through the listener registered by New; tests may call it
// directly. Events are ignored once the driver is disposed.
func (d *Driver) Dispatch(ev Event) {
	if d.state == StateDisposed || ev == nil {
		return
	}
	switch e := ev.(type) {
	case PointerEvent:
		d.dispatchPointer(e)
	case *PointerEvent:
		d.dispatchPointer(*e)
	case KeyEvent:
		d.dispatchKey(e)
	case *KeyEvent:
		d.dispatchKey(*e)
	default:
		d.logger().Debug("sketch: ignoring event", "type", ev.Type())
	}
}

func (d *Driver) dispatchPointer(e PointerEvent) {
	d.trackPointer(e)
	switch e.Kind {
	case EventPointerMove:
		call(d.hooks.PointerMove, d)
	case EventPointerDown:
		d.pointer.Down = true
		call(d.hooks.PointerDown, d)
	case EventPointerUp:
		// A release without a matching press is not reported.
		if d.pointer.Down {
			d.pointer.Down = false
			call(d.hooks.PointerUp, d)
		}
	}
}

func (d *Driver) trackPointer(e PointerEvent) {
	ox, oy := d.canvas.Origin()
	d.pointer.PX = d.pointer.X
	d.pointer.PY = d.pointer.Y
	d.pointer.X = e.ClientX - ox
	d.pointer.Y = e.ClientY - oy
	d.pointer.Event = e
}

func (d *Driver) dispatchKey(e KeyEvent) {
	d.keys.record(e.Code)
	switch e.Kind {
	case EventKeyDown:
		d.keys.held[e.Code] = struct{}{}
		call(d.hooks.KeyDown, d)
	case EventKeyUp:
		delete(d.keys.held, e.Code)
		call(d.hooks.KeyUp, d)
	case EventKeyPress:
		call(d.hooks.KeyPress, d)
	}
}

func call(h HookFunc, d *Driver) {
	if h != nil {
		h(d)
	}
}
