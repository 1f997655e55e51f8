/*
 * mpmp - "show" command formatting.
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

package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mpmp-emu/mpmp/emu/debugger"
	"github.com/mpmp-emu/mpmp/util/hex"
)

func doShow(l *cmdLine, s *debugger.Session) (bool, error) {
	what := l.getWord()
	match := []string{"regs", "flags", "ram", "io"}
	found := ""
	for _, w := range match {
		if len(what) > 0 && len(what) <= len(w) && w[:len(what)] == what {
			if found != "" {
				return false, errors.New("show: ambiguous argument: " + what)
			}
			found = w
		}
	}
	if found == "" {
		return false, errors.New("show: expected regs, flags, ram, or io")
	}

	switch found {
	case "regs":
		showRegs(s)
	case "flags":
		showFlags(s)
	case "ram":
		addr, err := parseNumber(l.getWord())
		if err != nil {
			return false, fmt.Errorf("show ram: %w", err)
		}
		showRAM(s, uint16(addr))
	case "io":
		showIO(s)
	}
	return false, nil
}

func showRegs(s *debugger.Session) {
	var sb strings.Builder
	sb.WriteString("pc=")
	hex.FormatUint(&sb, uint32(s.State.PC), 4)
	fmt.Fprintf(&sb, " halt=%v\nregs: ", s.State.ReceivedHalt)
	hex.FormatWord16(&sb, s.State.Registers[:])
	sb.WriteByte('\n')
	fmt.Fprint(os.Stdout, sb.String())
}

func showFlags(s *debugger.Session) {
	f := s.State.Flags
	fmt.Fprintf(os.Stdout, "zero=%v carry=%v overflow=%v\n", f.Zero, f.Carry, f.Overflow)
}

func showRAM(s *debugger.Session, addr uint16) {
	var sb strings.Builder
	sb.WriteString("ram[")
	hex.FormatUint(&sb, uint32(addr), 4)
	sb.WriteString("]=")
	hex.FormatUint(&sb, uint32(s.State.Memory.Peek(addr)), 4)
	sb.WriteByte('\n')
	fmt.Fprint(os.Stdout, sb.String())
}

func showIO(s *debugger.Session) {
	fmt.Fprintf(os.Stdout, "ostream=%q istream=%q\n", s.State.Memory.OStream.String(), s.State.Memory.IStream.String())
}
