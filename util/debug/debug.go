/*
 * mpmp - Masked component debug logging.
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

// Package debug gates per-component diagnostic logging behind a bitmask
// selected by the --debug CLI flag, the way the reference codebase gates
// its own Debugf family behind a mask-and-level check — but routed through
// log/slog instead of a dedicated debug file, since this emulator has no
// multi-device config layer to register one against.
package debug

import (
	"log/slog"
	"strconv"
)

// Mask selects which components emit debug-level diagnostics.
type Mask int

const (
	Decode Mask = 1 << iota
	CPU
	IO
)

// Enabled reports whether component is turned on in mask.
func (mask Mask) Enabled(component Mask) bool {
	return mask&component != 0
}

// ParseMask parses the --debug flag's argument as a bitmask (decimal, or hex
// with a 0x prefix) combining Decode, CPU, and IO. An empty string parses to
// the zero mask (no diagnostics enabled).
func ParseMask(s string) (Mask, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return Mask(v), nil
}

// Logf emits a debug-level log line on logger if component is enabled in mask.
func Logf(logger *slog.Logger, mask Mask, component Mask, msg string, args ...any) {
	if logger == nil || !mask.Enabled(component) {
		return
	}
	logger.Debug(msg, args...)
}
