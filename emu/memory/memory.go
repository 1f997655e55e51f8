/*
 * mpmp - RAM and memory-mapped I/O ports.
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

// Package memory implements the 32,768-cell RAM and the memory-mapped I/O
// ports that shadow addresses >= 0x8000: two FIFO character streams
// (istream/ostream) and a 16-bit RNG port. Unlike a package-level device
// singleton, a Memory value is always owned by exactly one CpuState.
package memory

import (
	"log/slog"
	"math/rand/v2"

	"github.com/mpmp-emu/mpmp/util/debug"
)

// Size is the number of addressable RAM cells (2^15).
const Size = 32768

// MMIOBase is the first address redirected to a port instead of RAM.
const MMIOBase = 0x8000

// Port addresses (absolute, starting at MMIOBase).
const (
	PortOStreamWrite = 0x8000
	PortOStreamClear = 0x8001
	PortIStreamRead  = 0x8002
	PortIStreamClear = 0x8003
	PortJoystick     = 0x8004
	PortRNGReseedA   = 0x8005
	PortRNGReseedB   = 0x8006
	PortRNGRead      = 0x8007
)

// Stream is a FIFO buffer of Unicode scalar values, used for istream and ostream.
type Stream struct {
	runes []rune
}

// AppendChar appends c to the tail of the stream.
func (s *Stream) AppendChar(c rune) {
	s.runes = append(s.runes, c)
}

// ConsumeFirst removes and returns the head of the stream, or U+0000 if empty.
func (s *Stream) ConsumeFirst() rune {
	if len(s.runes) == 0 {
		return 0
	}
	c := s.runes[0]
	s.runes = s.runes[1:]
	return c
}

// PeekFirst returns the head of the stream without consuming it, or U+0000
// if empty.
func (s *Stream) PeekFirst() rune {
	if len(s.runes) == 0 {
		return 0
	}
	return s.runes[0]
}

// Clear empties the stream.
func (s *Stream) Clear() {
	s.runes = s.runes[:0]
}

// String returns the buffered contents without consuming them.
func (s *Stream) String() string {
	return string(s.runes)
}

// Len returns the number of buffered runes.
func (s *Stream) Len() int {
	return len(s.runes)
}

// Memory is the RAM + MMIO address space owned by one CpuState.
type Memory struct {
	ram     [Size]uint16
	IStream Stream
	OStream Stream
	rng     uint16

	// InvalidScalar, if set, is called whenever a Store to PortOStreamWrite
	// carries a value that is not a valid Unicode scalar (the surrogate
	// range 0xD800-0xDFFF); used to log the U+FFFD substitution.
	InvalidScalar func(code uint16)

	logger *slog.Logger
	mask   debug.Mask
}

// New returns a zero-initialised Memory with a freshly seeded RNG. mask
// gates the debug.IO port-access trace emitted by Load/Store.
func New(logger *slog.Logger, mask debug.Mask) *Memory {
	m := &Memory{logger: logger, mask: mask}
	m.reseed()
	return m
}

// Reset zeroes RAM and both streams and reseeds the RNG, matching CpuState reset.
func (m *Memory) Reset() {
	for i := range m.ram {
		m.ram[i] = 0
	}
	m.IStream.Clear()
	m.OStream.Clear()
	m.reseed()
}

func (m *Memory) reseed() {
	m.rng = uint16(rand.IntN(1 << 16))
}

// Load reads the cell or port at addr.
func (m *Memory) Load(addr uint16) uint16 {
	if addr < MMIOBase {
		return m.ram[addr]
	}
	debug.Logf(m.logger, m.mask, debug.IO, "mmio load", "port", addr)
	switch addr {
	case PortIStreamRead:
		return uint16(m.IStream.ConsumeFirst())
	case PortRNGRead:
		return m.rng
	default:
		return 0
	}
}

// Peek reports what Load would return from addr without any of Load's side
// effects (it does not drain PortIStreamRead). Used by read-only inspection
// views such as the debugger shell's "show ram" command.
func (m *Memory) Peek(addr uint16) uint16 {
	if addr < MMIOBase {
		return m.ram[addr]
	}
	switch addr {
	case PortIStreamRead:
		return uint16(m.IStream.PeekFirst())
	case PortRNGRead:
		return m.rng
	default:
		return 0
	}
}

// Store writes data to the cell or port at addr.
func (m *Memory) Store(addr uint16, data uint16) {
	if addr < MMIOBase {
		m.ram[addr] = data
		return
	}
	debug.Logf(m.logger, m.mask, debug.IO, "mmio store", "port", addr, "data", data)
	switch addr {
	case PortOStreamWrite:
		r := rune(data)
		if r >= 0xD800 && r <= 0xDFFF {
			if m.InvalidScalar != nil {
				m.InvalidScalar(data)
			}
			r = 0xFFFD
		}
		m.OStream.AppendChar(r)
	case PortOStreamClear:
		m.OStream.Clear()
	case PortIStreamClear:
		m.IStream.Clear()
	case PortRNGReseedA, PortRNGReseedB:
		// The reference source reseeds on both ports; preserved here
		// rather than giving 0x8006 a distinct deterministic-advance
		// behaviour no shipped program depends on (see DESIGN.md).
		m.reseed()
	default:
		// Joystick port and any other high address: discard.
	}
}
