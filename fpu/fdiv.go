/* fpu - Floating point divide

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

// FDiv divides x1 by x2 via a piecewise linear approximation of the
// divisor's mantissa-domain reciprocal followed by a single FMul, rather
// than an iterative long division.
func FDiv(x1, x2 Float) Float {
	s1, e1, m1 := x1.Sign(), x1.Exp(), x1.Mantissa()
	s2, e2, m2 := x2.Sign(), x2.Exp(), x2.Mantissa()

	// Normalize both mantissas into [1, 2).
	m1p := MkFloat(0, 127, m1)
	m2p := MkFloat(0, 127, m2)

	// Top 10 bits of the divisor mantissa select the approximation
	// sub-interval, partitioning [1,2) into 1024 equal slices.
	h := Slice(m2, 22, 13)
	seg := divSegment(h)

	recip := seg.intercept.Native() - FMul(seg.grad, m2p).Native()
	m2inv := FromNative(recip)

	mdiv := FMul(m1p, m2inv)

	ovf := Slice(mdiv.Bits(), 31, 31)
	// udf is set when the product's exponent LSB is clear, i.e. it fell
	// below 1.0 into [0.5, 1).
	udf := Slice(^mdiv.Bits(), 23, 23)

	ey := Slice(e1-e2+127-udf+ovf, 7, 0)
	my := Slice(mdiv.Bits(), 22, 0)
	sy := s1 ^ s2

	return MkFloat(sy, ey, my)
}
