/*
 * fpu32 - Command parser.
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

package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/s-ylide/cpuex2022-7-simulator/fpu"
)

type cmd struct {
	name    string // Command name.
	min     int    // Minimum match size.
	arity   int    // Number of hex-word operands required.
	process func([]fpu.Word) (string, error)
}

// cmdList is filled in init because doHelp reads it, which a package-level
// initializer cannot do without an initialization cycle.
var cmdList []cmd

func init() {
	cmdList = []cmd{
		{name: "mul", min: 1, arity: 2, process: doMul},
		{name: "div", min: 1, arity: 2, process: doDiv},
		{name: "sqrt", min: 2, arity: 1, process: doSqrt},
		{name: "cvtsw", min: 2, arity: 1, process: doCvtSW},
		{name: "cvtws", min: 2, arity: 1, process: doCvtWS},
		{name: "floor", min: 1, arity: 1, process: doFloor},
		{name: "quit", min: 1, arity: 0, process: doQuit},
		{name: "help", min: 1, arity: 0, process: doHelp},
	}
}

// ErrQuit is returned by ProcessCommand when the command line requests the
// REPL to exit.
var ErrQuit = errors.New("quit")

// ProcessCommand parses and executes a single command line, returning the
// text to print. ErrQuit signals a clean shutdown request rather than a
// failure.
func ProcessCommand(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	match := matchList(name)
	if len(match) == 0 {
		return "", fmt.Errorf("command not found: %s", name)
	}
	if len(match) > 1 {
		return "", fmt.Errorf("ambiguous command: %s", name)
	}
	found := match[0]

	if len(args) != found.arity {
		return "", fmt.Errorf("%s requires %d operand(s), got %d", found.name, found.arity, len(args))
	}

	operands := make([]fpu.Word, len(args))
	for i, a := range args {
		w, err := parseWord(a)
		if err != nil {
			return "", err
		}
		operands[i] = w
	}

	slog.Debug("dispatching command", "name", found.name, "args", args)
	return found.process(operands)
}

// CompleteCmd returns the list of command names that prefix-match the
// first word of line, for REPL tab completion.
func CompleteCmd(line string) []string {
	fields := strings.Fields(line)
	prefix := ""
	if len(fields) > 0 && !strings.HasSuffix(line, " ") {
		prefix = strings.ToLower(fields[0])
	}
	var matches []string
	for _, c := range cmdList {
		if strings.HasPrefix(c.name, prefix) {
			matches = append(matches, c.name)
		}
	}
	return matches
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, c := range cmdList {
		if matchCommand(c, name) {
			match = append(match, c)
		}
	}
	return match
}

// matchCommand reports whether name is a valid abbreviation of c.name: an
// exact prefix at least c.min characters long.
func matchCommand(c cmd, name string) bool {
	if len(name) < c.min || len(name) > len(c.name) {
		return false
	}
	return c.name[:len(name)] == name
}

func parseWord(s string) (fpu.Word, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("operand %q is not a hex word: %w", s, err)
	}
	return fpu.Word(v), nil
}

func hexWord(w fpu.Word) string {
	return fmt.Sprintf("%08x", uint32(w))
}

func doMul(ops []fpu.Word) (string, error) {
	r := fpu.FMul(fpu.FromBits(ops[0]), fpu.FromBits(ops[1]))
	return hexWord(r.Bits()), nil
}

func doDiv(ops []fpu.Word) (string, error) {
	r := fpu.FDiv(fpu.FromBits(ops[0]), fpu.FromBits(ops[1]))
	return hexWord(r.Bits()), nil
}

func doSqrt(ops []fpu.Word) (string, error) {
	r := fpu.FSqrt(fpu.FromBits(ops[0]))
	return hexWord(r.Bits()), nil
}

func doCvtSW(ops []fpu.Word) (string, error) {
	r := fpu.FCvtSW(fpu.Int32ToWord(int32(ops[0])))
	return hexWord(r.Bits()), nil
}

func doCvtWS(ops []fpu.Word) (string, error) {
	r := fpu.FCvtWS(fpu.FromBits(ops[0]))
	return hexWord(fpu.Word(uint32(r))), nil
}

func doFloor(ops []fpu.Word) (string, error) {
	r := fpu.FFloor(fpu.FromBits(ops[0]))
	return hexWord(r.Bits()), nil
}

func doQuit([]fpu.Word) (string, error) {
	return "", ErrQuit
}

func doHelp([]fpu.Word) (string, error) {
	var b strings.Builder
	for _, c := range cmdList {
		fmt.Fprintf(&b, "%s\n", c.name)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
