/* fpu - Integer/float conversion

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

import "math/bits"

// FCvtSW converts a signed 32-bit integer to the closest representable
// binary32, rounding the bit immediately below the kept mantissa up when
// set (round half away from zero).
func FCvtSW(x SignedWord) Float {
	xv := x.Int32()

	var sign Word
	var xabs uint32
	if xv < 0 {
		sign = 1
		// Two's-complement corner: -INT_MIN doesn't fit in int32, so
		// widen before negating.
		xabs = uint32(-int64(xv))
	} else {
		xabs = uint32(xv)
	}

	if xabs == 0 {
		return MkFloat(0, 0, 0)
	}

	// Left shift needed to bring the most-significant set bit of xabs to
	// bit 31.
	sa := Word(bits.LeadingZeros32(xabs))
	xs := Word(xabs) << sa

	// The 23 bits directly below the implicit leading one are the kept
	// mantissa; the next bit down is the round-up bit.
	top23 := Slice(xs, 30, 8)
	r := Slice(xs, 7, 7)

	raw := top23 + r
	ey := Word(127 + (31 - int(sa)))
	if raw == 0x800000 {
		// Rounding carried into the implicit bit: the result moves up
		// one binade and the mantissa resets to zero.
		ey++
		raw = 0
	}
	my := raw & 0x7fffff

	return MkFloat(sign, ey, my)
}

// FCvtWS converts a binary32 to the closest representable signed 32-bit
// integer, rounding on the bit immediately below the truncation point.
func FCvtWS(x Float) int32 {
	s, e, m := x.Sign(), x.Exp(), x.Mantissa()

	sa := Word(157) - e
	sai := sa - 1

	me := (Word(1) << 30) + (m << 7)

	var mes, mesi Word
	if sa > 31 {
		mes = 0
	} else {
		mes = me >> sa
	}
	if sai > 31 {
		mesi = 0
	} else {
		mesi = me >> sai
	}

	mesr := mes
	if mesi&1 != 0 {
		mesr = mes + 1
	}

	if s == 0 {
		return int32(mesr)
	}
	return int32((^mesr | 0x80000000) + 1)
}
