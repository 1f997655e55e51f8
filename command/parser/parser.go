/*
 * mpmp - Debugger command parser.
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

// Package parser implements the debugger's line-oriented command
// language: load/step/run/break/unbreak/show/reset/quit, matched against
// a prefix-matching command table the same shape as the reference
// codebase's own cmd{name, min, process} dispatcher.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mpmp-emu/mpmp/emu/debugger"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum unambiguous prefix length.
	process func(*cmdLine, *debugger.Session) (bool, error)
}

type cmdLine struct {
	line string
	pos  int
}

var cmdList = []cmd{
	{name: "load", min: 1, process: doLoad},
	{name: "step", min: 2, process: doStep},
	{name: "run", min: 2, process: doRun},
	{name: "break", min: 1, process: doBreak},
	{name: "unbreak", min: 2, process: doUnbreak},
	{name: "show", min: 2, process: doShow},
	{name: "reset", min: 2, process: doReset},
	{name: "quit", min: 1, process: doQuit},
}

// ProcessCommand executes one command line against session. The returned
// bool is true when the shell should exit.
func ProcessCommand(commandLine string, session *debugger.Session) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	match := matchList(name)
	switch {
	case len(match) == 0:
		if name == "" {
			return false, nil
		}
		return false, errors.New("command not found: " + name)
	case len(match) > 1:
		return false, errors.New("ambiguous command: " + name)
	}
	if len(name) < match[0].min {
		return false, errors.New("command abbreviation too short: " + name)
	}

	return match[0].process(&line, session)
}

// CompleteCmd returns the set of command names that could complete commandLine.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()
	if !line.isEOL() {
		return nil
	}
	var out []string
	for _, m := range matchList(name) {
		out = append(out, m.name)
	}
	return out
}

func matchCommand(m cmd, name string) bool {
	if len(name) > len(m.name) {
		return false
	}
	for i := range name {
		if m.name[i] != name[i] {
			return false
		}
	}
	return true
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// getWord returns the next whitespace-delimited, lowercased word.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

// rest returns everything remaining on the line, trimmed.
func (l *cmdLine) rest() string {
	l.skipSpace()
	r := l.line[l.pos:]
	l.pos = len(l.line)
	return strings.TrimSpace(r)
}

func parseNumber(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("expected a number")
	}
	return strconv.ParseUint(s, 0, 32)
}

func doLoad(l *cmdLine, s *debugger.Session) (bool, error) {
	path := l.rest()
	if path == "" {
		return false, errors.New("load requires a file path")
	}
	return false, s.Load(path)
}

func doStep(l *cmdLine, s *debugger.Session) (bool, error) {
	word := l.getWord()
	n := 1
	if word != "" {
		v, err := parseNumber(word)
		if err != nil {
			return false, fmt.Errorf("step: %w", err)
		}
		n = int(v)
	}
	return false, s.Step(n)
}

func doRun(_ *cmdLine, s *debugger.Session) (bool, error) {
	return false, s.RunUntilBreak()
}

func doBreak(l *cmdLine, s *debugger.Session) (bool, error) {
	addr, err := parseNumber(l.getWord())
	if err != nil {
		return false, fmt.Errorf("break: %w", err)
	}
	s.SetBreakpoint(int(addr), true)
	return false, nil
}

func doUnbreak(l *cmdLine, s *debugger.Session) (bool, error) {
	addr, err := parseNumber(l.getWord())
	if err != nil {
		return false, fmt.Errorf("unbreak: %w", err)
	}
	s.SetBreakpoint(int(addr), false)
	return false, nil
}

func doReset(_ *cmdLine, s *debugger.Session) (bool, error) {
	s.Reset()
	return false, nil
}

func doQuit(_ *cmdLine, _ *debugger.Session) (bool, error) {
	return true, nil
}

// doShow is implemented in show.go to keep the formatting code separate
// from command dispatch, the way the reference codebase splits its own
// show-command formatting into a dedicated file.
