/*
 * mpmp - Interactive line-editing front end for the debugger shell.
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

// Package reader drives the debugger's read-eval-print loop on top of
// liner, the same line editor the reference codebase uses for its own
// console shell: history, Ctrl-C abort, and tab completion wired to
// command/parser's prefix matcher.
package reader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/mpmp-emu/mpmp/command/parser"
	"github.com/mpmp-emu/mpmp/emu/debugger"
)

const prompt = "mpmp> "

// Run reads commands from the terminal until the user quits, enters EOF,
// or aborts with Ctrl-D. Ctrl-C aborts the current line without exiting.
func Run(session *debugger.Session, logger *slog.Logger) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return parser.CompleteCmd(partial)
	})

	for {
		text, err := line.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stdout)
			return nil
		case err != nil:
			return fmt.Errorf("reader: %w", err)
		}

		if strings.TrimSpace(text) != "" {
			line.AppendHistory(text)
		}

		done, cmdErr := parser.ProcessCommand(text, session)
		if cmdErr != nil {
			fmt.Fprintln(os.Stderr, cmdErr)
			if logger != nil {
				logger.Warn("command failed", "error", cmdErr, "line", text)
			}
		}
		if done {
			return nil
		}
	}
}
