// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "fmt"

// EventType identifies the kind of an input event.
type EventType int

const (
	EventPointerMove EventType = iota + 1
	EventPointerDown
	EventPointerUp
	EventKeyDown
	EventKeyUp
	EventKeyPress
)

func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointermove"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventKeyPress:
		return "keypress"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is an input event delivered by a Host.
type Event interface {
	Type() EventType
}

// PointerEvent reports a pointer position in the host's client space.
type PointerEvent struct {
	Kind    EventType
	ClientX float64
	ClientY float64
	Button  int
}

// Type implements Event.
func (e PointerEvent) Type() EventType { return e.Kind }

// KeyEvent reports a key by its DOM-style key code. For EventKeyPress the
// code is the character's code point.
type KeyEvent struct {
	Kind EventType
	Code int
}

// Type implements Event.
func (e KeyEvent) Type() EventType { return e.Kind }
