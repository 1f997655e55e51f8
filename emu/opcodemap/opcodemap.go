/*
 * mpmp - CPU opcode definitions.
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

// Package opcodemap enumerates the opcode byte values the decoder matches
// against. Any raw opcode byte >= LDC collapses to LDC before lookup.
package opcodemap

const (
	ADD   = 0x00
	ADD3  = 0x01
	ADC   = 0x02
	SUB   = 0x03
	SUBC  = 0x04
	INC   = 0x05
	DEC   = 0x06
	MUL   = 0x07
	TST   = 0x08
	AND   = 0x09
	OR    = 0x0a
	NOT   = 0x0b
	NEG   = 0x0c
	XOR   = 0x0d
	XNOR  = 0x0e
	SHL   = 0x0f
	SHR   = 0x10
	MOV   = 0x48
	JMP   = 0x50
	JZ    = 0x51
	JNZ   = 0x52
	JC    = 0x53
	JNC   = 0x54
	JRCON = 0x58
	JZR   = 0x59
	JNZR  = 0x5a
	JCR   = 0x5b
	JNCR  = 0x5c
	ST    = 0x68
	LD    = 0x69
	NOP   = 0x6c
	DBG   = 0x7e
	HLT   = 0x7f
	LDC   = 0x80
)

// Canonicalize collapses any opcode byte >= LDC to exactly LDC, the way
// LDC packs its low 4 immediate bits inside the opcode byte.
func Canonicalize(raw uint8) uint8 {
	if raw >= LDC {
		return LDC
	}
	return raw
}
