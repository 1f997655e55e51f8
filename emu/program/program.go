/*
 * mpmp - Loaded program container.
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

// Package program holds a decoded program: the original instruction words,
// their decoded operations, and a per-instruction breakpoint flag, all kept
// as three parallel slices of equal length.
package program

import (
	"log/slog"

	"github.com/mpmp-emu/mpmp/emu/decoder"
	"github.com/mpmp-emu/mpmp/emu/ir"
	"github.com/mpmp-emu/mpmp/emu/iword"
	"github.com/mpmp-emu/mpmp/util/debug"
)

// Program is an ordered, immutable (after construction) sequence of
// decoded instructions. Indexed by program counter.
type Program struct {
	Words       []iword.Word
	Operations  []ir.Operation
	Breakpoints []bool
}

// FromWords decodes a slice of raw 20-bit instruction words into a Program.
// mask gates the decoder's per-word debug.Decode trace (see util/debug).
func FromWords(words []iword.Word, logger *slog.Logger, mask debug.Mask) *Program {
	p := &Program{
		Words:       make([]iword.Word, len(words)),
		Operations:  make([]ir.Operation, len(words)),
		Breakpoints: make([]bool, len(words)),
	}
	copy(p.Words, words)
	for i, w := range words {
		p.Operations[i] = decoder.Decode(w, logger, mask)
	}
	return p
}

// FromTokens decodes a slice of 3-byte big-endian hex tokens into a Program,
// promoting each token to an instruction word first.
func FromTokens(tokens [][3]byte, logger *slog.Logger, mask debug.Mask) *Program {
	words := make([]iword.Word, len(tokens))
	for i, t := range tokens {
		words[i] = iword.FromBytes(t[0], t[1], t[2])
	}
	return FromWords(words, logger, mask)
}

// Len returns the number of instructions loaded.
func (p *Program) Len() int {
	return len(p.Operations)
}

// InRange reports whether pc addresses a loaded instruction.
func (p *Program) InRange(pc uint16) bool {
	return int(pc) < len(p.Operations)
}

// ToggleBreakpoint flips the breakpoint flag at idx. No-op if idx is out of range.
func (p *Program) ToggleBreakpoint(idx int) {
	if idx < 0 || idx >= len(p.Breakpoints) {
		return
	}
	p.Breakpoints[idx] = !p.Breakpoints[idx]
}

// SetBreakpoint sets the breakpoint flag at idx to the given value. No-op if
// idx is out of range.
func (p *Program) SetBreakpoint(idx int, set bool) {
	if idx < 0 || idx >= len(p.Breakpoints) {
		return
	}
	p.Breakpoints[idx] = set
}
