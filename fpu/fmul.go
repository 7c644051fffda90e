/* fpu - Floating point multiply

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

// FMul multiplies two binary32 operands using 24x24 mantissa
// multiplication decomposed into 12-bit halves, rather than the host's
// native float multiply.
func FMul(x1, x2 Float) Float {
	s1, e1, m1 := x1.Sign(), x1.Exp(), x1.Mantissa()
	s2, e2, m2 := x2.Sign(), x2.Exp(), x2.Mantissa()

	// Upper 12 bits of the 24-bit significand, implicit 1 OR'd at bit 12.
	h1 := (m1 >> 11) | 0x1000
	h2 := (m2 >> 11) | 0x1000
	// Lower 11 bits of the mantissa.
	l1 := m1 & 0x7ff
	l2 := m2 & 0x7ff

	hh := h1 * h2
	hl := h1 * l2
	lh := l1 * h2

	// The ll cross term is dropped; +1 centers the truncation error of
	// the two shifted cross terms it would otherwise have contributed,
	// relative to the mantissa extraction starting at bit 1/2 below.
	mm := hh + (hl >> 11) + (lh >> 11) + 1

	es := (e1 + e2 + 129) & 0x1ff

	var ey Word
	overflow := Slice(mm, 25, 25) != 0
	if (es >> 8) == 0 {
		ey = 0
	} else if overflow {
		ey = (es + 1) & 0xff
	} else {
		ey = es & 0xff
	}

	var my Word
	if e1 == 0 || e2 == 0 || ey == 0 {
		my = 0
	} else if overflow {
		my = Slice(mm, 24, 2)
	} else {
		my = Slice(mm, 23, 1)
	}

	sy := s1 ^ s2
	return MkFloat(sy, ey, my)
}
