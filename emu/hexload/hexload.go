/*
 * mpmp - Hex program token reader.
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

// Package hexload reads a program file: whitespace-separated hexadecimal
// tokens of up to 6 digits, each a 24-bit big-endian word whose low 20 bits
// are one instruction word. Malformed tokens are dropped with a logged
// warning; parsing continues, and the order of the surviving tokens defines
// the order of program addresses starting from 0.
package hexload

import (
	"bufio"
	"encoding/hex"
	"io"
	"log/slog"
)

// ReadTokens reads every whitespace-separated token from r and returns the
// well-formed ones as 3-byte big-endian words, in file order. A token is
// well-formed if it is 1-6 hex digits; it is zero-padded on the left to 6
// digits before being split into 3 bytes.
func ReadTokens(r io.Reader, logger *slog.Logger) ([][3]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tokens [][3]byte
	for scanner.Scan() {
		word := scanner.Text()
		tok, ok := parseToken(word)
		if !ok {
			if logger != nil {
				logger.Warn("skipping malformed hex token", "token", word)
			}
			continue
		}
		tokens = append(tokens, tok)
	}
	if err := scanner.Err(); err != nil {
		return tokens, err
	}
	return tokens, nil
}

func parseToken(word string) ([3]byte, bool) {
	var out [3]byte
	if len(word) == 0 || len(word) > 6 {
		return out, false
	}
	padded := word
	for len(padded) < 6 {
		padded = "0" + padded
	}
	raw, err := hex.DecodeString(padded)
	if err != nil || len(raw) != 3 {
		return out, false
	}
	out[0], out[1], out[2] = raw[0], raw[1], raw[2]
	return out, true
}
