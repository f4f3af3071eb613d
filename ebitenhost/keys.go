// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/sketch"
)

var keyCodes = buildKeyCodes()

func buildKeyCodes() map[ebiten.Key]int {
	m := map[ebiten.Key]int{
		ebiten.KeyBackspace:    sketch.KeyBackspace,
		ebiten.KeyTab:          sketch.KeyTab,
		ebiten.KeyEnter:        sketch.KeyEnter,
		ebiten.KeyNumpadEnter:  sketch.KeyEnter,
		ebiten.KeyMetaLeft:     sketch.KeyCommand,
		ebiten.KeyMetaRight:    sketch.KeyCommand,
		ebiten.KeyShiftLeft:    sketch.KeyShift,
		ebiten.KeyShiftRight:   sketch.KeyShift,
		ebiten.KeyControlLeft:  sketch.KeyControl,
		ebiten.KeyControlRight: sketch.KeyControl,
		ebiten.KeyAltLeft:      sketch.KeyAlt,
		ebiten.KeyAltRight:     sketch.KeyAlt,
		ebiten.KeyEscape:       sketch.KeyEscape,
		ebiten.KeySpace:        sketch.KeySpace,
		ebiten.KeyPageUp:       sketch.KeyPageUp,
		ebiten.KeyPageDown:     sketch.KeyPageDown,
		ebiten.KeyEnd:          sketch.KeyEnd,
		ebiten.KeyHome:         sketch.KeyHome,
		ebiten.KeyArrowLeft:    sketch.KeyLeft,
		ebiten.KeyArrowUp:      sketch.KeyUp,
		ebiten.KeyArrowRight:   sketch.KeyRight,
		ebiten.KeyArrowDown:    sketch.KeyDown,
		ebiten.KeyInsert:       sketch.KeyInsert,
		ebiten.KeyDelete:       sketch.KeyDelete,
	}

	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
		ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
		ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
		ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
		ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
		ebiten.KeyZ,
	}
	for i, k := range letters {
		m[k] = 'A' + i
	}

	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
		ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		m[k] = '0' + i
	}

	fkeys := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4,
		ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8,
		ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range fkeys {
		m[k] = 112 + i
	}
	return m
}

// KeyCode returns the sketch key code for an ebiten key.
func KeyCode(k ebiten.Key) (int, bool) {
	code, ok := keyCodes[k]
	return code, ok
}
