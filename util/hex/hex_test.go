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

package hex

import (
	"strings"
	"testing"
)

func TestFormatUint(t *testing.T) {
	var sb strings.Builder
	FormatUint(&sb, 0xAB, 4)
	if got := sb.String(); got != "00ab" {
		t.Errorf("FormatUint = %q, want %q", got, "00ab")
	}
}

func TestFormatWord16(t *testing.T) {
	var sb strings.Builder
	FormatWord16(&sb, []uint16{0x1, 0xffff, 0})
	if got := sb.String(); got != "0001 ffff 0000" {
		t.Errorf("FormatWord16 = %q, want %q", got, "0001 ffff 0000")
	}
}

func TestFormatWord24(t *testing.T) {
	var sb strings.Builder
	FormatWord24(&sb, []uint32{0x7f, 0x100000})
	if got := sb.String(); got != "00007f 100000" {
		t.Errorf("FormatWord24 = %q, want %q", got, "00007f 100000")
	}
}

func TestFormatByte(t *testing.T) {
	var sb strings.Builder
	FormatByte(&sb, 0x0a)
	if got := sb.String(); got != "0a" {
		t.Errorf("FormatByte = %q, want %q", got, "0a")
	}
}
