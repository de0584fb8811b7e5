// Package ingest validates user-supplied input before it reaches the flow
// derivation. It is the only place a user-facing validation error can
// originate.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/WiL-dev/econstruct/internal/flow"
	"github.com/WiL-dev/econstruct/internal/model"
)

const (
	codeMin = 1
	codeMax = 100
)

// CodeFromFilename extracts the trailing digit run from the uploaded file's
// base name (extension stripped) and turns it into a normalized code. The
// digits must parse to a number in [1,100]; anything else is rejected with a
// plain validation message.
func CodeFromFilename(name string) (model.Code, error) {
	base := filepath.Base(name)
	base = base[:len(base)-len(filepath.Ext(base))]

	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	if start == end {
		return "", fmt.Errorf("filename %q has no trailing digits", name)
	}

	digits := base[start:end]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", fmt.Errorf("parsing code from %q: %w", name, err)
	}
	if n < codeMin || n > codeMax {
		return "", fmt.Errorf("code %d out of range [%d,%d]", n, codeMin, codeMax)
	}

	return flow.Normalize(digits), nil
}
