// Package flow derives the dashboard's energy quantities and chart series
// from a 3-digit code. Every function here is pure: the same code always
// produces the same bundle, with no I/O and no state.
package flow

import (
	"strings"

	"github.com/WiL-dev/econstruct/internal/model"
)

// Normalize reduces an arbitrary string to a 3-digit code: every non-digit
// character is dropped, the remainder is left-padded with '0' to at least
// three characters, and the first three are kept. Empty or garbage input
// normalizes to "000"; Normalize never fails.
func Normalize(s string) model.Code {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return model.Code(digits[:3])
}
