/* fpu32 - ASCII bit-string trace codec for hardware co-simulation rows

   See the fpu package's bits.go for the copyright and permission notice
   carried by this module.
*/

package trace

import (
	"fmt"
	"strings"

	"github.com/s-ylide/cpuex2022-7-simulator/fpu"
)

// Encode renders w as a 32-character string of '0'/'1', most-significant
// bit first, matching the row format hardware co-simulation traces use.
func Encode(w fpu.Word) string {
	var b strings.Builder
	b.Grow(32)
	for bit := 31; bit >= 0; bit-- {
		if fpu.Slice(w, bit, bit) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Decode parses a 32-character '0'/'1' string back into a Word. It returns
// an error if the string isn't exactly 32 characters of '0' or '1'.
func Decode(s string) (fpu.Word, error) {
	if len(s) != 32 {
		return 0, fmt.Errorf("trace: row must be 32 bits, got %d", len(s))
	}
	var w fpu.Word
	for i := 0; i < 32; i++ {
		w <<= 1
		switch s[i] {
		case '0':
		case '1':
			w |= 1
		default:
			return 0, fmt.Errorf("trace: invalid bit character %q at position %d", s[i], i)
		}
	}
	return w, nil
}

// Row joins the bit-string encodings of the given inputs and output, in
// the inputs-then-output order the co-simulation trace format expects,
// terminated with a newline.
func Row(inputs []fpu.Word, output fpu.Word) string {
	parts := make([]string, 0, len(inputs)+1)
	for _, w := range inputs {
		parts = append(parts, Encode(w))
	}
	parts = append(parts, Encode(output))
	return strings.Join(parts, "\n") + "\n"
}
