package cpp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberDecls(t *testing.T) {
	spec := mustParse(t, "geo", "Pose", "float64 x\nuint8[] data\ngeo/Quaternion q\n")

	got := memberDecls(spec.Fields)
	want := "" +
		"  typedef double _x_type;\n" +
		"  double x;\n\n" +
		"  typedef std::vector<uint8_t> _data_type;\n" +
		"  std::vector<uint8_t> data;\n\n" +
		"  typedef geo::Quaternion _q_type;\n" +
		"  geo::Quaternion q;\n\n"
	assert.Equal(t, want, got)
}

func TestConstructorInitializerList(t *testing.T) {
	spec := mustParse(t, "geo", "M", "int32 a\nfloat64 b\nbool c\nstring s\nuint8[] v\n")

	got := constructor("M", spec.Fields)
	want := "" +
		"  M()\n" +
		"  : a(0)\n" +
		"  , b(0.0)\n" +
		"  , c(false)\n" +
		"  , s()\n" +
		"  {\n" +
		"  }\n\n"
	assert.Equal(t, want, got)
}

func TestConstructorFixedArrayFill(t *testing.T) {
	spec := mustParse(t, "geo", "M", "uint8[4] pad\nfloat64[9] cov\nstring[2] names\nint32 n\n")

	got := constructor("M", spec.Fields)
	// Arrays never appear in the initializer list; only fixed arrays
	// with a default literal are filled in the body.
	require.Contains(t, got, "  : n(0)\n")
	assert.Contains(t, got, "    pad.assign(0);\n")
	assert.Contains(t, got, "    cov.assign(0.0);\n")
	assert.NotContains(t, got, "names.assign")
	assert.Equal(t, 1, strings.Count(got, ":"))
}

func TestConstructorNoFields(t *testing.T) {
	got := constructor("Empty", nil)
	assert.Equal(t, "  Empty()\n  {\n  }\n\n", got)
}
