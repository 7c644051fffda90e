/* fpu - Floating point floor

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

// one is the binary32 representation of 1.0.
var one = MkFloat(0, 127, 0)

// FFloor returns the greatest representable integral value no greater
// than x: it rounds x to the nearest integer through FCvtWS/FCvtSW rather
// than inspecting the mantissa directly, and steps down by 1.0 when that
// lands above x.
func FFloor(x Float) Float {
	// Exponent large enough that every bit of the mantissa is an integer
	// bit: x is already integral.
	if x.Exp() > 157 {
		return x
	}

	truncated := FCvtSW(Int32ToWord(FCvtWS(x)))

	if truncated.Native() <= x.Native() {
		return truncated
	}
	return FromNative(truncated.Native() - one.Native())
}
