package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WiL-dev/econstruct/internal/model"
)

func TestCodeFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want model.Code
	}{
		{"building042.ifc", "042"},
		{"model7.ifc", "007"},
		{"house100.txt", "100"},
		{"site33", "033"},
		{"a/b/plan12.ifc", "012"},
		{"v2-area8.dwg", "008"},
	}

	for _, tt := range tests {
		code, err := CodeFromFilename(tt.name)
		require.NoError(t, err, "filename %q", tt.name)
		assert.Equal(t, tt.want, code, "filename %q", tt.name)
	}
}

func TestCodeFromFilename_Rejected(t *testing.T) {
	tests := []string{
		"report.ifc",     // no trailing digits
		"",               // empty
		"building.ifc",   // no digits at all
		"42building.ifc", // digits not trailing
		"house0.txt",     // below range
		"house101.txt",   // above range
		"house999.txt",   // above range
	}

	for _, name := range tests {
		_, err := CodeFromFilename(name)
		assert.Error(t, err, "filename %q", name)
	}
}

func TestCodeFromFilename_ZeroPaddedRange(t *testing.T) {
	// Leading zeros do not change the parsed value.
	code, err := CodeFromFilename("plot007.ifc")
	require.NoError(t, err)
	assert.Equal(t, model.Code("007"), code)

	_, err = CodeFromFilename("plot000.ifc")
	assert.Error(t, err)
}
