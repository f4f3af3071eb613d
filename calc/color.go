// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

import "fmt"

// RGBToHex formats an 8-bit RGB triple as "#RRGGBB".
//
// Components are clamped to [0, 255] and always written as two uppercase
// hex digits, so RGBToHex(10, 0, 255) is "#0A00FF".
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

// GrayToHex formats a grey level as "#VVVVVV".
func GrayToHex(v int) string {
	return RGBToHex(v, v, v)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
