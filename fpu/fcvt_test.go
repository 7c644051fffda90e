/* fpu - Integer/float conversion tests

   See bits.go for the copyright and permission notice carried by this
   package.
*/

package fpu

import "testing"

func TestFCvtSWSeedScenarios(t *testing.T) {
	if got := FCvtSW(Int32ToWord(-1)); got.Bits() != 0xbf800000 {
		t.Errorf("FCvtSW(-1) = %#x, want 0xbf800000", got.Bits())
	}

	// 16777217 = 2^24+1 sits exactly on a rounding tie: the 24-bit
	// significand cannot represent it, so the carry path that bumps
	// the kept mantissa (and possibly the exponent) is exercised.
	got := FCvtSW(Int32ToWord(16777217))
	native := float32(16777217)
	gotDiff := absFloat64(float64(got.Native()) - 16777217)
	nativeDiff := absFloat64(float64(native) - 16777217)
	if gotDiff > nativeDiff {
		t.Errorf("FCvtSW(16777217) = %v (%#x), worse than native cast %v", got.Native(), got.Bits(), native)
	}
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestFCvtSWZero(t *testing.T) {
	if got := FCvtSW(Int32ToWord(0)); got.Bits() != 0 {
		t.Errorf("FCvtSW(0) = %#x, want 0", got.Bits())
	}
}

func TestFCvtSWIntMin(t *testing.T) {
	got := FCvtSW(Int32ToWord(-2147483648))
	want := float32(-2147483648)
	if got.Native() != want {
		t.Errorf("FCvtSW(INT_MIN) = %v, want %v", got.Native(), want)
	}
}

func TestFCvtWSZero(t *testing.T) {
	if got := FCvtWS(FromNative(0)); got != 0 {
		t.Errorf("FCvtWS(0.0) = %d, want 0", got)
	}
}

func TestFCvtWSSeedScenarios(t *testing.T) {
	if got := FCvtWS(FromNative(1.5)); got != 1 && got != 2 {
		t.Errorf("FCvtWS(1.5) = %d, want 1 or 2", got)
	}
	if got := FCvtWS(FromNative(-0.5)); got != 0 && got != -1 {
		t.Errorf("FCvtWS(-0.5) = %d, want 0 or -1", got)
	}
}

// TestFCvtSWAccuracy sweeps a panel of integers and checks FCvtSW is never
// worse than the native cast, per the accuracy contract.
func TestFCvtSWAccuracy(t *testing.T) {
	values := []int32{
		0, 1, -1, 2, -2, 100, -100, 1 << 20, -(1 << 20),
		1<<24 - 1, 1 << 24, 1<<24 + 1, 1<<24 + 2,
		2147483647, -2147483648, 16777219, -16777219,
	}
	for _, v := range values {
		got := FCvtSW(Int32ToWord(v))
		native := float32(v)
		gotBack := int64(got.Native())
		nativeBack := int64(native)
		if absInt64(gotBack-int64(v)) > absInt64(nativeBack-int64(v)) {
			t.Errorf("FCvtSW(%d) = %v, worse than native cast %v", v, got.Native(), native)
		}
	}
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
