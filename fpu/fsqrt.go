/* fpu - Floating point square root

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

// FSqrt computes the square root of x via a two-segment linear
// approximation of the mantissa-domain square root, keyed on the parity
// of x's biased exponent. Negative inputs are unspecified.
func FSqrt(x Float) Float {
	e, m := x.Exp(), x.Mantissa()

	// sqrt halves the exponent, so the mantissa-domain normalization
	// depends on whether the unbiased exponent is odd or even.
	var mn Float
	if e&1 != 0 {
		mn = MkFloat(0, 127, m)
	} else {
		mn = MkFloat(0, 128, m)
	}

	// XOR'ing bit 9 selects between the [1,2) and [2,4) tabulations
	// sharing one 1024-entry table.
	h := Slice(x.Bits(), 23, 14) ^ 0x200
	seg := sqrtSegment(h)

	result := seg.intercept.Native() + FMul(seg.grad, mn).Native()
	msqrt := FromNative(result)

	var ey Word
	if e == 0 || e == 255 {
		ey = 0
	} else {
		// Unsigned wraparound keeps the low 8 bits equal to
		// floor((e-127)/2)+127 for exponents below the bias as well.
		ey = ((e-127)/2 + 127) & 0xff
	}

	my := Slice(msqrt.Bits(), 22, 0)
	sy := x.Sign()

	return MkFloat(sy, ey, my)
}
