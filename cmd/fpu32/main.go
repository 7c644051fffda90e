/*
 * fpu32 - Main process.
 *
 * Copyright (c) 2026
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/s-ylide/cpuex2022-7-simulator/command/parser"
	"github.com/s-ylide/cpuex2022-7-simulator/command/reader"
	"github.com/s-ylide/cpuex2022-7-simulator/config"
	"github.com/s-ylide/cpuex2022-7-simulator/fpu"
	"github.com/s-ylide/cpuex2022-7-simulator/util/logger"
	"github.com/s-ylide/cpuex2022-7-simulator/util/trace"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optMode := getopt.StringLong("mode", 'm', "", "Table mode: runtime or precomputed")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optInteractive := getopt.BoolLong("interactive", 'i', "Drop into an interactive REPL")
	optTrace := getopt.BoolLong("trace", 't', "Print the 32-bit ASCII bit-string trace row")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	cfg := config.Default()
	if *optConfig != "" {
		var err error
		cfg, err = config.Load(*optConfig)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			os.Exit(1)
		}
	}
	if *optMode != "" {
		switch strings.ToLower(*optMode) {
		case "runtime":
			cfg.Mode = fpu.TableRuntime
		case "precomputed":
			cfg.Mode = fpu.TablePrecomputed
		default:
			fmt.Fprintln(os.Stderr, "Error: -m/--mode must be runtime or precomputed")
			os.Exit(1)
		}
	}
	if *optLogFile != "" {
		cfg.LogFile = *optLogFile
	}
	fpu.SetTableMode(cfg.Mode)

	var file *os.File
	if cfg.LogFile != "" {
		var err error
		file, err = os.Create(cfg.LogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(logLevelFromString(cfg.LogLevel))
	colorize := false
	if fi, statErr := os.Stderr.Stat(); statErr == nil && fi.Mode()&os.ModeCharDevice != 0 {
		colorize = file == nil
	}
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, colorize))
	slog.SetDefault(Logger)

	Logger.Info("fpu32 started", "mode", cfg.Mode)

	if *optInteractive {
		reader.ConsoleReader()
		return
	}

	args := getopt.Args()
	if len(args) < 1 {
		getopt.Usage()
		os.Exit(1)
	}

	out, err := parser.ProcessCommand(strings.Join(args, " "))
	if err != nil {
		if errors.Is(err, parser.ErrQuit) {
			return
		}
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
	fmt.Println(out)

	if *optTrace {
		words := make([]fpu.Word, 0, len(args)-1)
		for _, a := range args[1:] {
			v, convErr := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(a), "0x"), 16, 32)
			if convErr != nil {
				continue
			}
			words = append(words, fpu.Word(v))
		}
		resultWord, convErr := strconv.ParseUint(out, 16, 32)
		if convErr == nil {
			fmt.Print(trace.Row(words, fpu.Word(resultWord)))
		}
	}
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
