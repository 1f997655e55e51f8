/*
 * mpmp - CPU state and interpreter.
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

// Package cpu holds the register/flag/RAM/stream state (State) and the
// single-threaded, synchronous interpreter that executes one decoded
// Operation per Step call against a loaded program.Program.
//
// Instruction formats, leaves first: Unary (target, source_a), Binary
// (target, source_a, source_b), Ternary (target, source_a, source_b,
// source_c), Jump (absolute register or relative signed offset,
// conditioned on a flag), Load (constant or RAM/MMIO), Store (RAM/MMIO).
// See emu/ir for the full tagged variant set and emu/decoder for how an
// instruction word becomes one of these.
package cpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mpmp-emu/mpmp/emu/ir"
	"github.com/mpmp-emu/mpmp/emu/memory"
	"github.com/mpmp-emu/mpmp/emu/program"
	"github.com/mpmp-emu/mpmp/util/debug"
)

// NumRegisters is the width of the register file.
const NumRegisters = 8

// Flags holds the three condition flags. Only Zero and Carry are written
// by any specified instruction; Overflow is reserved and never set.
type Flags struct {
	Zero     bool
	Carry    bool
	Overflow bool
}

// State is the complete mutable state of one CPU: registers, flags,
// memory (RAM + MMIO + streams + RNG), and the program counter.
type State struct {
	Registers    [NumRegisters]uint16
	Flags        Flags
	Memory       *memory.Memory
	PC           uint16
	ReceivedHalt bool

	logger *slog.Logger
	mask   debug.Mask
}

// New returns a freshly reset State. mask gates the debug.CPU per-step
// trace and is also handed to the owned Memory for its debug.IO trace.
func New(logger *slog.Logger, mask debug.Mask) *State {
	s := &State{logger: logger, mask: mask}
	s.Memory = memory.New(logger, mask)
	if logger != nil {
		s.Memory.InvalidScalar = func(code uint16) {
			logger.Debug("substituting U+FFFD for invalid ostream scalar", "code", code)
		}
	}
	return s
}

// Reset returns registers, flags, PC, streams and received_halt to their
// defaults and reseeds the RNG. The loaded Program is not owned by State
// and is therefore unaffected; callers that want "Program cleared" per the
// external reset semantics do so by discarding their *program.Program.
func (s *State) Reset() {
	for i := range s.Registers {
		s.Registers[i] = 0
	}
	s.Flags = Flags{}
	s.PC = 0
	s.ReceivedHalt = false
	s.Memory.Reset()
}

// ErrPCOutOfProgram is returned by Step when the program counter addresses
// no loaded instruction.
var ErrPCOutOfProgram = errors.New("cpu: pc beyond loaded program")

// Step executes the operation at the current PC against prog, then
// post-increments PC by one (16-bit wrap). If ReceivedHalt is already
// true, Step does nothing and returns nil. If PC addresses no loaded
// instruction, Step returns ErrPCOutOfProgram without mutating state.
func (s *State) Step(prog *program.Program) error {
	if s.ReceivedHalt {
		return nil
	}
	if !prog.InRange(s.PC) {
		return fmt.Errorf("%w: pc=%d program length=%d", ErrPCOutOfProgram, s.PC, prog.Len())
	}

	op := prog.Operations[s.PC]
	debug.Logf(s.logger, s.mask, debug.CPU, "executing", "pc", s.PC, "op", op.String())
	s.execute(op)
	s.PC++
	return nil
}

// Run repeats Step until ReceivedHalt becomes true or Step returns an
// error. Run has no notion of breakpoints: per the concurrency model, an
// interactive driver that wants to stop at a breakpoint composes its own
// loop around Step instead (see emu/debugger for that policy).
func (s *State) Run(prog *program.Program) error {
	for !s.ReceivedHalt {
		if err := s.Step(prog); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) execute(op ir.Operation) {
	switch o := op.(type) {
	case ir.Halt:
		s.ReceivedHalt = true
	case ir.Noop:
		// nothing

	case ir.UnaryOp:
		s.execUnary(o)
	case ir.BinaryOp:
		s.execBinary(o)
	case ir.TernaryOp:
		s.execAdd3(o)
	case ir.Jump:
		s.execJump(o)
	case ir.Load:
		s.execLoad(o)
	case ir.Store:
		s.execStore(o)

	default:
		if s.logger != nil {
			s.logger.Warn("unhandled operation, treated as nop", "op", fmt.Sprintf("%T", op))
		}
	}
}

func (s *State) execUnary(o ir.UnaryOp) {
	switch o.Mnemonic() {
	case "inc":
		// Quirk preserved from the reference implementation: INC/DEC write
		// register[source_a], not register[target].
		v := s.Registers[o.SourceA]
		result := v + 1
		s.Registers[o.SourceA] = result
		s.Flags.Carry = result == 0
		s.Flags.Zero = result == 0
	case "dec":
		v := s.Registers[o.SourceA]
		result := v - 1
		s.Registers[o.SourceA] = result
		s.Flags.Carry = v == 0
		s.Flags.Zero = result == 0
	case "not":
		result := ^s.Registers[o.SourceA]
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "neg":
		result := ^s.Registers[o.SourceA] + 1
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "mov":
		s.Registers[o.Target] = s.Registers[o.SourceA]
	}
}

func (s *State) execBinary(o ir.BinaryOp) {
	a, b := s.Registers[o.SourceA], s.Registers[o.SourceB]
	switch o.Mnemonic() {
	case "add":
		sum := uint32(a) + uint32(b)
		result := uint16(sum)
		s.Registers[o.Target] = result
		s.Flags.Carry = sum >= 1<<16
		s.Flags.Zero = result == 0
	case "addc":
		carryIn := uint32(0)
		if s.Flags.Carry {
			carryIn = 1
		}
		s1 := uint32(a) + uint32(b)
		s2 := s1 + carryIn
		result := uint16(s2)
		s.Registers[o.Target] = result
		s.Flags.Carry = s1 >= 1<<16 || s2 >= 1<<16
		s.Flags.Zero = result == 0
	case "sub":
		result := a - b
		s.Registers[o.Target] = result
		s.Flags.Carry = a < b
		s.Flags.Zero = result == 0
	case "subc":
		borrowIn := uint16(0)
		if s.Flags.Carry {
			borrowIn = 1
		}
		d1 := a - b
		d2 := d1 - borrowIn
		s.Registers[o.Target] = d2
		s.Flags.Carry = a < b || d1 < borrowIn
		s.Flags.Zero = d2 == 0
	case "mul":
		result := uint16(uint32(a) * uint32(b))
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "and":
		result := a & b
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "or":
		result := a | b
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "xor":
		result := a ^ b
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "xnor":
		result := ^(a ^ b)
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "shl":
		result := shiftLeft(a, b)
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "shr":
		result := shiftRight(a, b)
		s.Registers[o.Target] = result
		s.Flags.Zero = result == 0
	case "tst":
		result := a - b
		s.Flags.Carry = a < b
		s.Flags.Zero = result == 0
	}
}

// shiftLeft/shiftRight: a shift amount >= 16 yields 0, matching a 16-bit
// register's defined behaviour (Go's own << and >> already saturate a
// uint16 operand to 0 once the shift count reaches the type width, but the
// count here is itself a uint16 value so the cast to a shift count needs
// the explicit clamp to document that this is intentional, not incidental).
func shiftLeft(v, amount uint16) uint16 {
	if amount >= 16 {
		return 0
	}
	return v << amount
}

func shiftRight(v, amount uint16) uint16 {
	if amount >= 16 {
		return 0
	}
	return v >> amount
}

func (s *State) execAdd3(o ir.TernaryOp) {
	a, b, c := uint32(s.Registers[o.SourceA]), uint32(s.Registers[o.SourceB]), uint32(s.Registers[o.SourceC])
	s1 := a + b
	s2 := s1 + c
	result := uint16(s2)
	s.Registers[o.Target] = result
	s.Flags.Carry = s1 >= 1<<16 || s2 >= 1<<16
	s.Flags.Zero = result == 0
}

func (s *State) conditionHolds(c ir.JumpCondition) bool {
	switch c {
	case ir.Zero:
		return s.Flags.Zero
	case ir.NotZero:
		return !s.Flags.Zero
	case ir.Carry:
		return s.Flags.Carry
	case ir.NotCarry:
		return !s.Flags.Carry
	default:
		return true // Always
	}
}

func (s *State) execJump(o ir.Jump) {
	if !s.conditionHolds(o.Condition) {
		return
	}
	switch t := o.Target.(type) {
	case ir.AbsoluteRegister:
		s.PC = s.Registers[t]
	case ir.RelativeOffset:
		s.PC = uint16(int32(s.PC) + int32(t))
	}
	// The post-increment in Step still applies after this write, per the
	// program-counter policy: a taken jump lands one past the written target.
}

func (s *State) execLoad(o ir.Load) {
	switch src := o.Source.(type) {
	case ir.Constant:
		s.Registers[o.TargetRegister] = uint16(src)
	case ir.Ram:
		addr := s.Registers[src.AddressRegister]
		s.Registers[o.TargetRegister] = s.Memory.Load(addr)
	}
}

func (s *State) execStore(o ir.Store) {
	addr := s.Registers[o.AddressRegister]
	data := s.Registers[o.DataRegister]
	s.Memory.Store(addr, data)
}
