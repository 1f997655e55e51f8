/*
 * mpmp - 20-bit instruction word bitfield accessors.
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

// Package iword implements the 20-bit instruction word: a flat uint32
// carrying only its low 20 bits of meaning, with typed accessors for
// the sub-fields the decoder needs (opcode, operand register indices,
// and the two immediate encodings used by jumps and load-constant).
package iword

import "fmt"

// Width is the number of meaningful low bits in a Word.
const Width = 20

// Word is a 20-bit instruction word. Only the low 20 bits are ever set.
type Word uint32

// FromUint32 builds a Word from a 32-bit value, keeping only the low 20 bits.
func FromUint32(v uint32) Word {
	return Word(v & ((1 << Width) - 1))
}

// FromBytes builds a Word from a big-endian 3-byte sequence: value =
// (b0<<16)|(b1<<8)|b2, of which only the low 20 bits are meaningful (the
// top 4 bits of b0 are discarded).
func FromBytes(b0, b1, b2 byte) Word {
	full := uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
	return FromUint32(full)
}

// BoundsError reports a bit range outside the word's 20 valid bit positions.
type BoundsError struct {
	Lower, Upper int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("iword: invalid bit range [%d,%d]", e.Lower, e.Upper)
}

// Bits extracts the inclusive bit range [lower,upper], little-endian
// (bit 0 is the least significant bit). lower==upper extracts a single bit.
func (w Word) Bits(lower, upper int) (uint32, error) {
	if lower > upper || lower >= Width || upper >= Width || lower < 0 {
		return 0, &BoundsError{Lower: lower, Upper: upper}
	}
	mask := uint32(1)<<(upper-lower+1) - 1
	return (uint32(w) >> lower) & mask, nil
}

// mustBits panics only on a programming error (a hardcoded, in-range
// literal range passed by this package's own accessors below) — never on
// caller-supplied data, since every caller here passes constant bounds.
func (w Word) mustBits(lower, upper int) uint32 {
	v, err := w.Bits(lower, upper)
	if err != nil {
		panic(err)
	}
	return v
}

// Opcode returns bits 0-7.
func (w Word) Opcode() uint8 {
	return uint8(w.mustBits(0, 7))
}

// OpA returns bits 8-10, the first source register index.
func (w Word) OpA() uint8 {
	return uint8(w.mustBits(8, 10))
}

// OpB returns bits 11-13, the second source register index.
func (w Word) OpB() uint8 {
	return uint8(w.mustBits(11, 13))
}

// OpC returns bits 14-16, the third source register index (ternary add).
func (w Word) OpC() uint8 {
	return uint8(w.mustBits(14, 16))
}

// Target returns bits 17-19, the destination register index.
func (w Word) Target() uint8 {
	return uint8(w.mustBits(17, 19))
}

// Constant12 returns bits 8-19, the raw (unsigned) 12-bit relative jump
// immediate. Callers that need a signed displacement must sign-extend it.
func (w Word) Constant12() uint16 {
	return uint16(w.mustBits(8, 19))
}

// SignedConstant12 sign-extends Constant12 to a 16-bit two's-complement offset.
func (w Word) SignedConstant12() int16 {
	c := w.Constant12()
	if c&0x800 != 0 {
		return int16(c | 0xF000)
	}
	return int16(c)
}

// LoadAddress returns bits 4-6, the destination register for LDC.
func (w Word) LoadAddress() uint8 {
	return uint8(w.mustBits(4, 6))
}

// Constant16 returns the LDC immediate: the low 4 bits of the opcode byte
// (bits 0-3) concatenated below the 12-bit constant field (bits 8-19).
func (w Word) Constant16() uint16 {
	low := w.mustBits(0, 3)
	high := w.mustBits(8, 19)
	return uint16(low | high<<4)
}
