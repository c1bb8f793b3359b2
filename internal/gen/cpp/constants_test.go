package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantDecls(t *testing.T) {
	spec := mustParse(t, "geo", "Log", "uint8 DEBUG=1\nint32 MAX=100\nfloat64 PI=3.14\nbool ON=1\n")

	got, err := constantDecls(spec.Constants)
	require.NoError(t, err)
	assert.Contains(t, got, "  static const uint8_t DEBUG = 1;\n")
	assert.Contains(t, got, "  static const int32_t MAX = 100;\n")
	assert.Contains(t, got, "  static const double PI = 3.14;\n")
	assert.Contains(t, got, "  static const uint8_t ON = 1;\n")
}

func TestConstantRejection(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"string constant", "string NAME=foo\n"},
		{"time constant", "time WHEN=0\n"},
		{"duration constant", "duration SPAN=0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustParse(t, "geo", "M", tt.src)
			_, err := constantDecls(spec.Constants)
			require.ErrorIs(t, err, ErrUnsupportedConstant)
			// Error names the offending constant.
			assert.Contains(t, err.Error(), spec.Constants[0].Name)
		})
	}
}
