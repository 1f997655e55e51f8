/*
 * mpmp - Decoded instruction intermediate representation.
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

// Package ir holds the decoded, semantically-tagged form of an instruction
// word: the Operation interface and its concrete variants, ready for the
// interpreter to execute by type switch and for the UI to disassemble.
package ir

import "fmt"

// Register is a register file index, 0..7.
type Register uint8

// Operation is the tagged variant produced by the decoder for one
// instruction word. The interpreter dispatches on the concrete type via a
// type switch; Mnemonic/String give the stable disassembly rendering.
type Operation interface {
	// Mnemonic returns the stable opcode mnemonic, e.g. "add", "jzr".
	Mnemonic() string
	// String returns the full disassembly line, e.g. "add %reg0 %reg1 %reg2".
	String() string
}

// Halt stops the interpreter; received_halt is set and no further state
// mutation occurs until reset.
type Halt struct{}

func (Halt) Mnemonic() string { return "hlt" }
func (Halt) String() string   { return "hlt" }

// Noop does nothing (also what unrecognized opcodes and DBG decode to).
type Noop struct{}

func (Noop) Mnemonic() string { return "nop" }
func (Noop) String() string   { return "nop" }

// UnaryOp is the shared shape for Inc, Dec, Neg, Not, Move.
type UnaryOp struct {
	Target   Register
	SourceA  Register
	mnemonic string
}

func (u UnaryOp) Mnemonic() string { return u.mnemonic }

func (u UnaryOp) String() string {
	switch u.mnemonic {
	case "inc", "dec":
		// INC/DEC mutate register[SourceA] in place; Target is unused by the
		// interpreter for these two, so the disassembly names only the
		// register actually touched.
		return fmt.Sprintf("%s %%reg%d", u.mnemonic, u.SourceA)
	default:
		return fmt.Sprintf("%s %%reg%d %%reg%d", u.mnemonic, u.Target, u.SourceA)
	}
}

func NewInc(sourceA Register) UnaryOp  { return UnaryOp{SourceA: sourceA, mnemonic: "inc"} }
func NewDec(sourceA Register) UnaryOp  { return UnaryOp{SourceA: sourceA, mnemonic: "dec"} }
func NewNeg(t, a Register) UnaryOp     { return UnaryOp{Target: t, SourceA: a, mnemonic: "neg"} }
func NewNot(t, a Register) UnaryOp     { return UnaryOp{Target: t, SourceA: a, mnemonic: "not"} }
func NewMove(t, a Register) UnaryOp    { return UnaryOp{Target: t, SourceA: a, mnemonic: "mov"} }

// BinaryOp is the shared shape for And, Or, Xor, Xnor, Add, AddCarry, Sub,
// SubCarry, Multiply, ShiftLeft, ShiftRight, Test.
type BinaryOp struct {
	Target   Register
	SourceA  Register
	SourceB  Register
	mnemonic string
}

func (b BinaryOp) Mnemonic() string { return b.mnemonic }

func (b BinaryOp) String() string {
	return fmt.Sprintf("%s %%reg%d %%reg%d %%reg%d", b.mnemonic, b.Target, b.SourceA, b.SourceB)
}

func newBinary(t, a, bb Register, mnemonic string) BinaryOp {
	return BinaryOp{Target: t, SourceA: a, SourceB: bb, mnemonic: mnemonic}
}

func NewAnd(t, a, b Register) BinaryOp        { return newBinary(t, a, b, "and") }
func NewOr(t, a, b Register) BinaryOp         { return newBinary(t, a, b, "or") }
func NewXor(t, a, b Register) BinaryOp        { return newBinary(t, a, b, "xor") }
func NewXnor(t, a, b Register) BinaryOp       { return newBinary(t, a, b, "xnor") }
func NewAdd(t, a, b Register) BinaryOp        { return newBinary(t, a, b, "add") }
func NewAddCarry(t, a, b Register) BinaryOp   { return newBinary(t, a, b, "addc") }
func NewSub(t, a, b Register) BinaryOp        { return newBinary(t, a, b, "sub") }
func NewSubCarry(t, a, b Register) BinaryOp   { return newBinary(t, a, b, "subc") }
func NewMultiply(t, a, b Register) BinaryOp   { return newBinary(t, a, b, "mul") }
func NewShiftLeft(t, a, b Register) BinaryOp  { return newBinary(t, a, b, "shl") }
func NewShiftRight(t, a, b Register) BinaryOp { return newBinary(t, a, b, "shr") }
func NewTest(t, a, b Register) BinaryOp       { return newBinary(t, a, b, "tst") }

// TernaryOp is the shape for Add3: target <- source_a + source_b + source_c.
type TernaryOp struct {
	Target  Register
	SourceA Register
	SourceB Register
	SourceC Register
}

func (TernaryOp) Mnemonic() string { return "add3" }

func (t TernaryOp) String() string {
	return fmt.Sprintf("add3 %%reg%d %%reg%d %%reg%d %%reg%d", t.Target, t.SourceA, t.SourceB, t.SourceC)
}

// JumpCondition selects which flag combination must hold for a Jump to be taken.
type JumpCondition int

const (
	Always JumpCondition = iota
	Zero
	NotZero
	Carry
	NotCarry
)

// JumpTarget is either an absolute address held in a register, or a
// relative signed offset applied to the program counter.
type JumpTarget interface {
	isJumpTarget()
}

// AbsoluteRegister holds the register whose low 16 bits are the jump target.
type AbsoluteRegister Register

func (AbsoluteRegister) isJumpTarget() {}

// RelativeOffset is the sign-extended 12-bit displacement added to PC.
type RelativeOffset int16

func (RelativeOffset) isJumpTarget() {}

// Jump is taken when Condition holds against the current flags.
type Jump struct {
	Target    JumpTarget
	Condition JumpCondition
}

func (j Jump) Mnemonic() string {
	switch t := j.Target.(type) {
	case AbsoluteRegister:
		switch j.Condition {
		case Zero:
			return "jz"
		case NotZero:
			return "jnz"
		case Carry:
			return "jc"
		case NotCarry:
			return "jnc"
		default:
			return "jmp"
		}
	case RelativeOffset:
		_ = t
		switch j.Condition {
		case Zero:
			return "jzr"
		case NotZero:
			return "jnzr"
		case Carry:
			return "jcr"
		case NotCarry:
			return "jncr"
		default:
			return "jrcon"
		}
	default:
		return "jmp"
	}
}

func (j Jump) String() string {
	switch t := j.Target.(type) {
	case AbsoluteRegister:
		return fmt.Sprintf("%s %%reg%d", j.Mnemonic(), Register(t))
	case RelativeOffset:
		return fmt.Sprintf("%s %d", j.Mnemonic(), int16(t))
	default:
		return j.Mnemonic()
	}
}

// LoadSource is either an immediate constant or a RAM/MMIO address register.
type LoadSource interface {
	isLoadSource()
}

// Constant is the LDC immediate.
type Constant uint16

func (Constant) isLoadSource() {}

// Ram holds the register whose value addresses RAM/MMIO for a Load.
type Ram struct {
	AddressRegister Register
}

func (Ram) isLoadSource() {}

// Load reads a value (constant or RAM/MMIO) into TargetRegister.
type Load struct {
	TargetRegister Register
	Source         LoadSource
}

func (l Load) Mnemonic() string {
	if _, ok := l.Source.(Constant); ok {
		return "ldc"
	}
	return "ld"
}

func (l Load) String() string {
	switch s := l.Source.(type) {
	case Constant:
		return fmt.Sprintf("ldc %%reg%d 0x%X", l.TargetRegister, uint16(s))
	case Ram:
		return fmt.Sprintf("ld %%reg%d %%reg%d", l.TargetRegister, s.AddressRegister)
	default:
		return l.Mnemonic()
	}
}

// Store writes register[DataRegister] to RAM/MMIO at register[AddressRegister].
type Store struct {
	AddressRegister Register
	DataRegister    Register
}

func (Store) Mnemonic() string { return "st" }

func (s Store) String() string {
	return fmt.Sprintf("st %%reg%d %%reg%d", s.AddressRegister, s.DataRegister)
}
