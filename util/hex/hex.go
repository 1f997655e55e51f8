/*
 * mpmp - Hex formatting helpers for debugger output.
 *
 * Copyright 2026, mpmp-emu contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hex builds fixed-width hex strings directly into a
// strings.Builder, the same low-allocation formatting style the
// reference codebase uses for its own dump/trace output, adapted here
// from 32/8-bit mainframe words down to this machine's 16-bit registers
// and 24-bit instruction words.
package hex

import "strings"

var hexDigits = "0123456789abcdef"

// FormatWord16 appends each of words as a 4-digit hex value separated by spaces.
func FormatWord16(str *strings.Builder, words []uint16) {
	for i, w := range words {
		if i > 0 {
			str.WriteByte(' ')
		}
		FormatUint(str, uint32(w), 4)
	}
}

// FormatWord24 appends each of words as a 6-digit hex value separated by spaces.
func FormatWord24(str *strings.Builder, words []uint32) {
	for i, w := range words {
		if i > 0 {
			str.WriteByte(' ')
		}
		FormatUint(str, w, 6)
	}
}

// FormatUint appends v as exactly digits hex characters, zero-padded.
func FormatUint(str *strings.Builder, v uint32, digits int) {
	shift := (digits - 1) * 4
	for shift >= 0 {
		str.WriteByte(hexDigits[(v>>uint(shift))&0xf])
		shift -= 4
	}
}

// FormatByte appends a single byte as two hex digits.
func FormatByte(str *strings.Builder, b byte) {
	str.WriteByte(hexDigits[(b>>4)&0xf])
	str.WriteByte(hexDigits[b&0xf])
}
