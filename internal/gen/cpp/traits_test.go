package cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robomsg/msggen/internal/gendeps"
)

func TestEscapeDefinition(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lines", "float64 x\nfloat64 y\n", "\"float64 x\\n\"\n\"float64 y\\n\"\n"},
		{"quotes escaped", "string GREETING=\"hi\"\n", "\"string GREETING=\\\"hi\\\"\\n\"\n"},
		{"backslash escaped", `string PATH=C:\tmp` + "\n", "\"string PATH=C:\\\\tmp\\n\"\n"},
		{"empty line kept", "a\n\nb\n", "\"a\\n\"\n\"\\n\"\n\"b\\n\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeDefinition(tt.in))
		})
	}
}

func TestTraitsBodies(t *testing.T) {
	spec := mustParse(t, "geo", "Point", "float64 x\nfloat64 y\n")
	g := resolve(t, nil, spec)
	digest := gendeps.ComputeDigest(g)

	got := traitsBodies("geo::Point", spec, g, digest)

	assert.Contains(t, got, "template<> inline const char* md5sum<geo::Point>() { return \""+digest.MD5+"\"; }\n")
	assert.Contains(t, got, "template<> inline const char* datatype<geo::Point>() { return \"geo/Point\"; }\n")
	assert.Contains(t, got, "\"float64 x\\n\"\n")
	// Fixed length, no header.
	assert.Contains(t, got, "template<> struct IsFixedSize<geo::Point> : public TrueType {};\n")
	assert.NotContains(t, got, "HasHeader")
	assert.NotContains(t, got, "getHeader")
}

func TestTraitsHeaderPropagation(t *testing.T) {
	header := mustParse(t, "roslib", "Header", "uint32 seq\ntime stamp\nstring frame_id\n")
	scan := mustParse(t, "sensors", "Scan", "Header header\nfloat32[] ranges\n")
	g := resolve(t, mapLookup{"roslib/Header": header}, scan)
	digest := gendeps.ComputeDigest(g)

	got := traitsBodies("sensors::Scan", scan, g, digest)

	assert.Contains(t, got, "template<> struct HasHeader<sensors::Scan> : public TrueType {};\n")
	assert.Contains(t, got, "template<> inline roslib::Header* getHeader(sensors::Scan& m) { return &m.header; }\n")
	// Variable array plus string header field: not fixed size.
	assert.NotContains(t, got, "IsFixedSize")
}

func TestTraitsDecls(t *testing.T) {
	got := traitsDecls("geo::Point")
	for _, want := range []string{
		"template<> inline const char* md5sum<geo::Point>();\n",
		"template<> inline const char* datatype<geo::Point>();\n",
		"template<> inline const char* definition<geo::Point>();\n",
	} {
		require.Contains(t, got, want)
	}
}
