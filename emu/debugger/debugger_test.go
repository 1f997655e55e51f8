/*
 * mpmp - Interactive debugger session.
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

package debugger

import (
	"strings"
	"testing"
)

const helloProgram = "800a1 01068 00481 0059b 800a0 01068 00005 00808 ffc5a 0007f"

func TestLoadFromDecodesAndResets(t *testing.T) {
	s := New(nil, 0)
	s.State.Registers[0] = 0xBEEF
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Program.Len() != 10 {
		t.Fatalf("Program.Len() = %d, want 10", s.Program.Len())
	}
	if s.State.Registers[0] != 0 {
		t.Error("LoadFrom did not reset CPU state")
	}
}

func TestStepAdvancesExactlyN(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := s.Step(3); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s.State.PC != 3 {
		t.Errorf("PC = %d, want 3", s.State.PC)
	}
}

func TestStepStopsAtHalt(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := s.Step(1000); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !s.State.ReceivedHalt {
		t.Error("Step(1000) did not reach halt")
	}
}

func TestRunUntilBreakStopsAtBreakpoint(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	s.ToggleBreakpoint(5)

	if err := s.RunUntilBreak(); err != nil {
		t.Fatalf("RunUntilBreak: %v", err)
	}
	if s.State.PC != 5 {
		t.Errorf("PC = %d, want 5 (stopped at breakpoint)", s.State.PC)
	}
	if s.State.ReceivedHalt {
		t.Error("halted before reaching the breakpoint")
	}
}

func TestRunUntilBreakIgnoresBreakpointAtStartingPC(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	s.ToggleBreakpoint(0) // breakpoint sits on the instruction we're already at

	if err := s.RunUntilBreak(); err != nil {
		t.Fatalf("RunUntilBreak: %v", err)
	}
	// Should run to completion (hlt), not stop immediately at PC==0.
	if !s.State.ReceivedHalt {
		t.Error("RunUntilBreak stopped immediately instead of running past the starting breakpoint")
	}
}

func TestSetBreakpointExplicitOnOff(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	s.SetBreakpoint(4, true)
	if !s.Program.Breakpoints[4] {
		t.Fatal("SetBreakpoint(4, true) did not set the breakpoint")
	}

	s.SetBreakpoint(4, false)
	if s.Program.Breakpoints[4] {
		t.Error("SetBreakpoint(4, false) did not clear the breakpoint")
	}

	// Clearing an address that was never set must be a no-op, not a toggle.
	s.SetBreakpoint(7, false)
	if s.Program.Breakpoints[7] {
		t.Error("SetBreakpoint(idx, false) set a breakpoint that was never set")
	}
}

func TestResetKeepsLoadedProgram(t *testing.T) {
	s := New(nil, 0)
	if err := s.LoadFrom(strings.NewReader(helloProgram)); err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := s.Step(5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	progLen := s.Program.Len()

	s.Reset()

	if s.State.PC != 0 {
		t.Errorf("PC after Reset = %d, want 0", s.State.PC)
	}
	if s.Program.Len() != progLen {
		t.Error("Reset discarded the loaded program")
	}
}
