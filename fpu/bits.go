// Package fpu implements a software model of a single-precision (binary32)
// floating point arithmetic unit.

/* fpu - Bit field helpers and float/word reinterpretation

   Copyright (c) 2026

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

*/

package fpu

import "math"

// Word is the canonical 32-bit representation of every value flowing
// through the core: a bit pattern with no inherent interpretation.
type Word uint32

// Float is a Word interpreted as IEEE-754 binary32.
type Float Word

// SignedWord is a Word interpreted as a two's-complement 32-bit signed
// integer, used only at the boundaries of FCvtSW/FCvtWS.
type SignedWord Word

// Slice extracts the inclusive bit range [hi..lo] of x into the low bits
// of the result, zero-extended. 0 <= lo <= hi <= 31.
func Slice(x Word, hi, lo int) Word {
	if hi == 31 && lo == 0 {
		return x
	}
	width := hi - lo + 1
	return (x >> uint(lo)) & ((1 << uint(width)) - 1)
}

// MkFloat composes a 32-bit float image from a sign bit, an 8-bit biased
// exponent and a 23-bit mantissa. The fields are disjoint and in range, so
// addition and bitwise-or are equivalent.
func MkFloat(s, e, m Word) Float {
	return Float((s << 31) | (e << 23) | m)
}

// Bits returns the raw 32-bit image of f.
func (f Float) Bits() Word { return Word(f) }

// Sign returns the sign bit of f.
func (f Float) Sign() Word { return Slice(Word(f), 31, 31) }

// Exp returns the 8-bit biased exponent of f.
func (f Float) Exp() Word { return Slice(Word(f), 30, 23) }

// Mantissa returns the 23-bit mantissa field of f.
func (f Float) Mantissa() Word { return Slice(Word(f), 22, 0) }

// FromBits reinterprets a Word as a Float with no conversion.
func FromBits(w Word) Float { return Float(w) }

// FromNative converts a host float32 to its bit-exact Float image.
func FromNative(v float32) Float {
	return Float(math.Float32bits(v))
}

// Native reinterprets f as a host float32, bit-exact in both directions.
func (f Float) Native() float32 {
	return math.Float32frombits(uint32(f))
}

// Int32 reinterprets w as a two's-complement signed 32-bit integer.
func (w SignedWord) Int32() int32 { return int32(w) }

// Int32ToWord reinterprets a signed 32-bit integer as its unsigned bit
// pattern.
func Int32ToWord(x int32) SignedWord { return SignedWord(uint32(x)) }
