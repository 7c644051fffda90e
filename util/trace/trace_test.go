/* fpu32 - Trace codec tests

   See the fpu package's bits.go for the copyright and permission notice
   carried by this module.
*/

package trace

import (
	"strings"
	"testing"

	"github.com/s-ylide/cpuex2022-7-simulator/fpu"
)

func TestEncodeLength(t *testing.T) {
	s := Encode(0)
	if len(s) != 32 {
		t.Errorf("Encode length = %d, want 32", len(s))
	}
}

func TestEncodeBitOrder(t *testing.T) {
	s := Encode(0x80000001)
	if s[0] != '1' || s[31] != '1' {
		t.Errorf("Encode(0x80000001) = %q, want leading and trailing 1", s)
	}
	for i := 1; i < 31; i++ {
		if s[i] != '0' {
			t.Errorf("Encode(0x80000001)[%d] = %q, want '0'", i, s[i])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, w := range []fpu.Word{0, 1, 0xffffffff, 0x80000000, 0xdeadbeef, 0x12345678} {
		s := Encode(w)
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", s, err)
		}
		if got != w {
			t.Errorf("Decode(Encode(%#x)) = %#x, want %#x", w, got, w)
		}
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	if _, err := Decode("0101"); err == nil {
		t.Error("Decode of a short string did not return an error")
	}
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	bad := strings.Repeat("0", 31) + "2"
	if _, err := Decode(bad); err == nil {
		t.Error("Decode of a string with a non-bit character did not return an error")
	}
}

func TestRowOrdering(t *testing.T) {
	row := Row([]fpu.Word{1, 2}, 3)
	lines := strings.Split(strings.TrimRight(row, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Row produced %d lines, want 3", len(lines))
	}
	got1, _ := Decode(lines[0])
	got2, _ := Decode(lines[1])
	got3, _ := Decode(lines[2])
	if got1 != 1 || got2 != 2 || got3 != 3 {
		t.Errorf("Row ordering = %d,%d,%d want 1,2,3", got1, got2, got3)
	}
}
