/*
 * mpmp - Instruction word decoder.
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

// Package decoder maps an instruction word to its decoded ir.Operation.
package decoder

import (
	"log/slog"

	"github.com/mpmp-emu/mpmp/emu/ir"
	"github.com/mpmp-emu/mpmp/emu/iword"
	"github.com/mpmp-emu/mpmp/emu/opcodemap"
	"github.com/mpmp-emu/mpmp/util/debug"
)

// Decode classifies w's opcode and returns the corresponding Operation. An
// unrecognized opcode is logged as a warning on logger (if non-nil) and
// decodes to ir.Noop{}, per the reference behaviour: execution must still
// advance the program counter for it. If mask enables debug.Decode, every
// decoded word is additionally traced at debug level.
func Decode(w iword.Word, logger *slog.Logger, mask debug.Mask) ir.Operation {
	reg := func(v uint8) ir.Register { return ir.Register(v) }

	op := opcodemap.Canonicalize(w.Opcode())
	debug.Logf(logger, mask, debug.Decode, "decoding word", "word", uint32(w), "opcode", op)
	switch op {
	case opcodemap.ADD:
		return ir.NewAdd(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.ADD3:
		return ir.TernaryOp{
			Target:  reg(w.Target()),
			SourceA: reg(w.OpA()),
			SourceB: reg(w.OpB()),
			SourceC: reg(w.OpC()),
		}
	case opcodemap.ADC:
		return ir.NewAddCarry(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.SUB:
		return ir.NewSub(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.SUBC:
		return ir.NewSubCarry(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.INC:
		return ir.NewInc(reg(w.OpA()))
	case opcodemap.DEC:
		return ir.NewDec(reg(w.OpA()))
	case opcodemap.MUL:
		return ir.NewMultiply(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.TST:
		return ir.NewTest(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.AND:
		return ir.NewAnd(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.OR:
		return ir.NewOr(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.NOT:
		return ir.NewNot(reg(w.Target()), reg(w.OpA()))
	case opcodemap.NEG:
		return ir.NewNeg(reg(w.Target()), reg(w.OpA()))
	case opcodemap.XOR:
		return ir.NewXor(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.XNOR:
		return ir.NewXnor(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.SHL:
		return ir.NewShiftLeft(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.SHR:
		return ir.NewShiftRight(reg(w.Target()), reg(w.OpA()), reg(w.OpB()))
	case opcodemap.MOV:
		return ir.NewMove(reg(w.Target()), reg(w.OpA()))

	case opcodemap.JMP:
		return ir.Jump{Target: ir.AbsoluteRegister(w.OpA()), Condition: ir.Always}
	case opcodemap.JZ:
		return ir.Jump{Target: ir.AbsoluteRegister(w.OpA()), Condition: ir.Zero}
	case opcodemap.JNZ:
		return ir.Jump{Target: ir.AbsoluteRegister(w.OpA()), Condition: ir.NotZero}
	case opcodemap.JC:
		return ir.Jump{Target: ir.AbsoluteRegister(w.OpA()), Condition: ir.Carry}
	case opcodemap.JNC:
		return ir.Jump{Target: ir.AbsoluteRegister(w.OpA()), Condition: ir.NotCarry}

	case opcodemap.JRCON:
		return ir.Jump{Target: ir.RelativeOffset(w.SignedConstant12()), Condition: ir.Always}
	case opcodemap.JZR:
		return ir.Jump{Target: ir.RelativeOffset(w.SignedConstant12()), Condition: ir.Zero}
	case opcodemap.JNZR:
		return ir.Jump{Target: ir.RelativeOffset(w.SignedConstant12()), Condition: ir.NotZero}
	case opcodemap.JCR:
		return ir.Jump{Target: ir.RelativeOffset(w.SignedConstant12()), Condition: ir.Carry}
	case opcodemap.JNCR:
		return ir.Jump{Target: ir.RelativeOffset(w.SignedConstant12()), Condition: ir.NotCarry}

	case opcodemap.ST:
		// The operand encoding here is the source format's own quirk: the
		// data register is op_a, the address register is op_b.
		return ir.Store{AddressRegister: reg(w.OpB()), DataRegister: reg(w.OpA())}
	case opcodemap.LD:
		return ir.Load{
			TargetRegister: reg(w.Target()),
			Source:         ir.Ram{AddressRegister: reg(w.OpB())},
		}

	case opcodemap.NOP, opcodemap.DBG:
		return ir.Noop{}
	case opcodemap.HLT:
		return ir.Halt{}

	case opcodemap.LDC:
		return ir.Load{
			TargetRegister: reg(w.LoadAddress()),
			Source:         ir.Constant(w.Constant16()),
		}

	default:
		if logger != nil {
			logger.Warn("unknown opcode, decoding as nop", "opcode", op, "word", uint32(w))
		}
		return ir.Noop{}
	}
}
