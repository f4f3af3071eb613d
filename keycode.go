// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

// Key codes for common non-character keys. Letters use their uppercase
// ASCII value ('A' is 65) and digits their ASCII digit ('0' is 48).
const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyCommand   = 15
	KeyShift     = 16
	KeyControl   = 17
	KeyAlt       = 18
	KeyEscape    = 27
	KeySpace     = 32
	KeyPageUp    = 33
	KeyPageDown  = 34
	KeyEnd       = 35
	KeyHome      = 36
	KeyLeft      = 37
	KeyUp        = 38
	KeyRight     = 39
	KeyDown      = 40
	KeyInsert    = 45
	KeyDelete    = 46
)
