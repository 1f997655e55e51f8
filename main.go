/*
 * mpmp - Main process.
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/mpmp-emu/mpmp/command/reader"
	"github.com/mpmp-emu/mpmp/emu/debugger"
	"github.com/mpmp-emu/mpmp/util/debug"
	logger "github.com/mpmp-emu/mpmp/util/logger"
)

var Logger *slog.Logger

func main() {
	optProgram := getopt.StringLong("program", 'p', "", "Hex program file to load at startup")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.StringLong("debug", 'd', "", "Bitmask enabling decode/cpu/io diagnostic logging")
	optBatch := getopt.BoolLong("batch", 'b', "Run the loaded program to completion instead of opening the shell")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	mask, err := debug.ParseMask(*optDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mpmp: parsing --debug mask:", err)
		os.Exit(1)
	}

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		file, err = os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mpmp: opening log file:", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, mask != 0))
	slog.SetDefault(Logger)

	Logger.Info("mpmp started")

	session := debugger.New(Logger, mask)

	if optProgram != nil && *optProgram != "" {
		if err := session.Load(*optProgram); err != nil {
			Logger.Error("loading program", "error", err, "path", *optProgram)
			os.Exit(1)
		}
	}

	if *optBatch {
		if err := session.State.Run(session.Program); err != nil {
			Logger.Error("run failed", "error", err)
			os.Exit(1)
		}
		fmt.Fprint(os.Stdout, session.State.Memory.OStream.String())
		return
	}

	if err := reader.Run(session, Logger); err != nil {
		Logger.Error("shell exited with error", "error", err)
		os.Exit(1)
	}

	Logger.Info("mpmp exiting")
}
