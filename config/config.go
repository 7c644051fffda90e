/*
 * fpu32 - Configuration file parser
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

/* Configuration file format:
 *
 * '#' indicates a comment; rest of the line is ignored.
 * Blank lines are skipped.
 * <line> := <key> <whitespace>* '=' <whitespace>* <value>
 * <key>  := 'mode' | 'logfile' | 'loglevel'
 * <value,mode>     := 'runtime' | 'precomputed'
 * <value,loglevel> := 'debug' | 'info' | 'warn' | 'error'
 */

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/s-ylide/cpuex2022-7-simulator/fpu"
)

// Config holds the options governing table-evaluation strategy and
// logging, assembled from a config file with CLI flags taking priority.
type Config struct {
	Mode     fpu.TableMode
	LogFile  string
	LogLevel string
}

// Default returns the CLI's built-in defaults: runtime table evaluation,
// no log file, info-level logging.
func Default() Config {
	return Config{Mode: fpu.TableRuntime, LogLevel: "info"}
}

var lineNumber int

// Load reads a line-oriented key=value options file and overlays it onto
// the CLI defaults.
func Load(name string) (Config, error) {
	cfg := Default()

	file, err := os.Open(name)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		raw, readErr := reader.ReadString('\n')
		lineNumber++
		if len(raw) > 0 {
			if parseErr := parseLine(&cfg, raw); parseErr != nil {
				return cfg, parseErr
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return cfg, readErr
		}
	}
	return cfg, nil
}

// parseLine applies one key=value line to cfg, skipping comments and
// blank lines.
func parseLine(cfg *Config, raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	if line == "" {
		return nil
	}

	eq := strings.Index(line, "=")
	if eq < 0 {
		return fmt.Errorf("config line %d: expected key = value, got %q", lineNumber, raw)
	}
	key := strings.ToLower(strings.TrimSpace(line[:eq]))
	value := strings.ToLower(strings.TrimSpace(line[eq+1:]))
	if key == "" || value == "" {
		return fmt.Errorf("config line %d: expected key = value, got %q", lineNumber, raw)
	}

	switch key {
	case "mode":
		switch value {
		case "runtime":
			cfg.Mode = fpu.TableRuntime
		case "precomputed":
			cfg.Mode = fpu.TablePrecomputed
		default:
			return fmt.Errorf("config line %d: mode must be runtime or precomputed, got %q", lineNumber, value)
		}
	case "logfile":
		cfg.LogFile = value
	case "loglevel":
		switch value {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = value
		default:
			return fmt.Errorf("config line %d: unknown loglevel %q", lineNumber, value)
		}
	default:
		return fmt.Errorf("config line %d: unknown option %q", lineNumber, key)
	}
	return nil
}
