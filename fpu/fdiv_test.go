/* fpu - Floating point divide tests

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

import "testing"

func TestFDivSeedScenario(t *testing.T) {
	one := FromNative(1.0)
	two := FromNative(2.0)
	got := FDiv(one, two)
	if got.Bits() != 0x3f000000 {
		t.Errorf("FDiv(1.0,2.0) = %#x, want 0x3f000000 (0.5)", got.Bits())
	}
}

func TestFDivSignComposition(t *testing.T) {
	for _, s1 := range []Word{0, 1} {
		for _, s2 := range []Word{0, 1} {
			x1 := MkFloat(s1, 127, 0)
			x2 := MkFloat(s2, 127, 0)
			got := FDiv(x1, x2)
			want := s1 ^ s2
			if got.Sign() != want {
				t.Errorf("FDiv sign(%d,%d) = %d, want %d", s1, s2, got.Sign(), want)
			}
		}
	}
}

func TestFDivTableModesAgree(t *testing.T) {
	prev := activeMode
	defer SetTableMode(prev)

	SetTableMode(TableRuntime)
	x1 := FromNative(3.0)
	x2 := FromNative(7.0)
	runtime := FDiv(x1, x2)

	SetTableMode(TablePrecomputed)
	precomputed := FDiv(x1, x2)

	if runtime != precomputed {
		t.Errorf("runtime mode = %#x, precomputed mode = %#x, want equal", runtime.Bits(), precomputed.Bits())
	}
}

// TestFDivSweep checks the approximation tracks the host's native divide to
// a loose relative bound across a panel of mantissas and exponents, as a
// proxy for the ~2^-20 relative-error contract. Quotients below the normal
// range are outside that contract and are not compared.
func TestFDivSweep(t *testing.T) {
	mantissas := []Word{0, 1, 2, 0x380000, 0x400000, 0x5fffff, 0x7fffff}
	for e1 := Word(1); e1 <= 250; e1 += 23 {
		for e2 := Word(1); e2 <= 250; e2 += 29 {
			for _, m1 := range mantissas {
				for _, m2 := range mantissas {
					x1 := MkFloat(0, e1, m1)
					x2 := MkFloat(0, e2, m2)
					got := FDiv(x1, x2)
					want := x1.Native() / x2.Native()
					if want < 0x1p-126 {
						continue
					}
					diff := got.Native() - want
					if diff < 0 {
						diff = -diff
					}
					bound := want / (1 << 20)
					if bound < 0 {
						bound = -bound
					}
					if bound < 1e-30 {
						bound = 1e-30
					}
					if diff > bound {
						t.Errorf("FDiv(%v,%v) = %v, native = %v, diff %v exceeds bound %v",
							x1.Native(), x2.Native(), got.Native(), want, diff, bound)
					}
				}
			}
		}
	}
}
