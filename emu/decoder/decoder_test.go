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

package decoder

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/mpmp-emu/mpmp/emu/ir"
	"github.com/mpmp-emu/mpmp/emu/iword"
	"github.com/mpmp-emu/mpmp/util/debug"
)

func decode(raw uint32) ir.Operation {
	return Decode(iword.FromUint32(raw), nil, 0)
}

func TestDecodeTracesWhenDecodeMaskEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Decode(iword.FromUint32(0x00005), logger, debug.Decode)
	if !strings.Contains(buf.String(), "decoding word") {
		t.Errorf("no decode trace emitted with debug.Decode enabled: %q", buf.String())
	}
}

func TestDecodeDoesNotTraceWhenMaskDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Decode(iword.FromUint32(0x00005), logger, debug.CPU)
	if buf.Len() != 0 {
		t.Errorf("decode trace emitted with debug.Decode disabled: %q", buf.String())
	}
}

func TestDecodeLoadConstant(t *testing.T) {
	got := decode(0x800a1) // ldc %reg2 0x8001
	want := ir.Load{TargetRegister: 2, Source: ir.Constant(0x8001)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR1) = %#v, want %#v", got, want)
	}

	got = decode(0x783d2) // ldc %reg5 0x7832
	want = ir.Load{TargetRegister: 5, Source: ir.Constant(0x7832)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR7) = %#v, want %#v", got, want)
	}
}

func TestDecodeInc(t *testing.T) {
	got := decode(0x00005) // inc %reg0
	want := ir.NewInc(0)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR2) = %#v, want %#v", got, want)
	}
}

func TestDecodeAdd(t *testing.T) {
	got := decode(0x01100) // add %reg0 %reg1 %reg2
	want := ir.NewAdd(0, 1, 2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR3) = %#v, want %#v", got, want)
	}
}

func TestDecodeAdd3(t *testing.T) {
	got := decode(0x6ac01) // add3 %reg3 %reg4 %reg5 %reg2
	want := ir.TernaryOp{Target: 3, SourceA: 4, SourceB: 5, SourceC: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR4) = %#v, want %#v", got, want)
	}
}

func TestDecodeSub(t *testing.T) {
	got := decode(0x02c03) // sub %reg0 %reg4 %reg5
	want := ir.NewSub(0, 4, 5)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR5) = %#v, want %#v", got, want)
	}
}

func TestDecodeSubCarry(t *testing.T) {
	got := decode(0x42104) // subc %reg2 %reg1 %reg4
	want := ir.NewSubCarry(2, 1, 4)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR6) = %#v, want %#v", got, want)
	}
}

func TestDecodeOr(t *testing.T) {
	got := decode(0x0210a) // or %reg0 %reg1 %reg4
	want := ir.NewOr(0, 1, 4)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR8) = %#v, want %#v", got, want)
	}
}

func TestDecodeNop(t *testing.T) {
	got := decode(0x0006c) // nop
	if !reflect.DeepEqual(got, ir.Noop{}) {
		t.Errorf("decode(INSTR9) = %#v, want ir.Noop{}", got)
	}
}

func TestDecodeJumpZeroAbsolute(t *testing.T) {
	got := decode(0x00251) // jz %reg2
	want := ir.Jump{Target: ir.AbsoluteRegister(2), Condition: ir.Zero}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR10) = %#v, want %#v", got, want)
	}
}

func TestDecodeJumpAlwaysAbsolute(t *testing.T) {
	got := decode(0x00350) // jmp %reg3
	want := ir.Jump{Target: ir.AbsoluteRegister(3), Condition: ir.Always}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR11) = %#v, want %#v", got, want)
	}
}

func TestDecodeJumpCarryRelative(t *testing.T) {
	got := decode(0x0045b) // jcr 4 (constant12, bits 8-19, == 0x004)
	want := ir.Jump{Target: ir.RelativeOffset(4), Condition: ir.Carry}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR12) = %#v, want %#v", got, want)
	}
}

func TestDecodeStore(t *testing.T) {
	got := decode(0x01968) // st %reg3 %reg1 (data=op_a=1, address=op_b=3)
	want := ir.Store{AddressRegister: 3, DataRegister: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR13) = %#v, want %#v", got, want)
	}
}

func TestDecodeLoadRAM(t *testing.T) {
	got := decode(0x42869) // ld %reg2 %reg5
	want := ir.Load{TargetRegister: 2, Source: ir.Ram{AddressRegister: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decode(INSTR14) = %#v, want %#v", got, want)
	}
}

func TestDecodeHalt(t *testing.T) {
	got := decode(0x0007f) // hlt
	if !reflect.DeepEqual(got, ir.Halt{}) {
		t.Errorf("decode(INSTRH) = %#v, want ir.Halt{}", got)
	}
}

func TestDecodeUnknownOpcodeCollapsesToNop(t *testing.T) {
	// Any opcode in [0x81, 0xff] collapses to LDC per Canonicalize, so an
	// actually-unrecognized opcode must fall in the gaps below 0x80 that
	// opcodemap never maps to a named instruction, e.g. 0x20.
	got := decode(0x20)
	if !reflect.DeepEqual(got, ir.Noop{}) {
		t.Errorf("decode(0x20) = %#v, want ir.Noop{}", got)
	}
}
