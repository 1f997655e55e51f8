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

// Package debugger wraps a cpu.State and a program.Program behind the
// single synchronous entry point an interactive shell needs: Load, Step,
// RunUntilBreak, Reset, and breakpoint toggling. It owns no goroutines and
// blocks the caller for exactly as long as the CPU work it drives takes,
// preserving the core's single-threaded contract while still giving a line
// editor something to dispatch commands against.
package debugger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mpmp-emu/mpmp/emu/cpu"
	"github.com/mpmp-emu/mpmp/emu/hexload"
	"github.com/mpmp-emu/mpmp/emu/program"
	"github.com/mpmp-emu/mpmp/util/debug"
)

// Session pairs one CPU with the program currently loaded into it.
type Session struct {
	State   *cpu.State
	Program *program.Program
	logger  *slog.Logger
	mask    debug.Mask
}

// New returns a Session with a freshly reset CPU and an empty program. mask
// is the --debug bitmask (see util/debug) gating decode/cpu/io diagnostics.
func New(logger *slog.Logger, mask debug.Mask) *Session {
	return &Session{
		State:   cpu.New(logger, mask),
		Program: program.FromWords(nil, logger, mask),
		logger:  logger,
		mask:    mask,
	}
}

// Load reads a hex program file from path, replaces the current Program,
// and resets the CPU (fresh registers, flags, RAM, streams; cleared
// breakpoints come along for free since the new Program starts with none).
func (s *Session) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("debugger: opening program file: %w", err)
	}
	defer f.Close()
	return s.LoadFrom(f)
}

// LoadFrom is Load without the file-open step, useful for tests and for
// loading from an already-open reader.
func (s *Session) LoadFrom(r io.Reader) error {
	tokens, err := hexload.ReadTokens(r, s.logger)
	if err != nil {
		return fmt.Errorf("debugger: reading hex tokens: %w", err)
	}
	s.Program = program.FromTokens(tokens, s.logger, s.mask)
	s.State.Reset()
	return nil
}

// Step executes n instructions (n<1 means 1), stopping early if the CPU halts.
func (s *Session) Step(n int) error {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if s.State.ReceivedHalt {
			return nil
		}
		if err := s.State.Step(s.Program); err != nil {
			return err
		}
	}
	return nil
}

// RunUntilBreak steps the CPU until it halts or the program counter is
// about to execute a breakpointed instruction. A breakpoint on the
// instruction already at PC when RunUntilBreak is called does not stop it
// immediately — the caller just placed it there, or just stepped past it,
// and expects forward progress; the check applies to every instruction
// reached afterward.
func (s *Session) RunUntilBreak() error {
	first := true
	for !s.State.ReceivedHalt {
		pc := s.State.PC
		if !first && s.Program.InRange(pc) && s.Program.Breakpoints[pc] {
			return nil
		}
		first = false
		if err := s.State.Step(s.Program); err != nil {
			return err
		}
	}
	return nil
}

// Reset resets the CPU in place; the loaded Program is unaffected.
func (s *Session) Reset() {
	s.State.Reset()
}

// ToggleBreakpoint flips the breakpoint at the given program index.
func (s *Session) ToggleBreakpoint(idx int) {
	s.Program.ToggleBreakpoint(idx)
}

// SetBreakpoint sets or clears the breakpoint at the given program index.
func (s *Session) SetBreakpoint(idx int, set bool) {
	s.Program.SetBreakpoint(idx, set)
}
