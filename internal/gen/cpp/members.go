package cpp

import (
	"fmt"
	"strings"

	"github.com/robomsg/msggen/internal/msg"
)

// memberDecls emits one declaration per field, each preceded by a
// typedef alias (_<name>_type) so generated and hand-written code can
// recover a field's type without re-deriving it.
func memberDecls(fields []msg.Field) string {
	var b strings.Builder
	for _, f := range fields {
		t := cppType(f.Type)
		fmt.Fprintf(&b, "  typedef %s _%s_type;\n", t, f.Name)
		fmt.Fprintf(&b, "  %s %s;\n\n", t, f.Name)
	}
	return b.String()
}

// constructor emits the default constructor: an initializer list over
// the non-array fields with defined default literals, then a body
// filling fixed-length arrays whose base type has a default. The first
// initializer is led by ':' and the rest by ',' so the emitted list is
// valid C++.
func constructor(name string, fields []msg.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s()\n", name)

	i := 0
	for _, f := range fields {
		if f.Type.IsArray() {
			continue
		}
		var val string
		if f.Type.Base == msg.BaseBuiltin {
			val = defaultValue(f.Type.Builtin)
		}
		if i == 0 {
			b.WriteString("  : ")
		} else {
			b.WriteString("  , ")
		}
		fmt.Fprintf(&b, "%s(%s)\n", f.Name, val)
		i++
	}

	b.WriteString("  {\n")
	for _, f := range fields {
		if f.Type.Array != msg.ArrayFixed || f.Type.Base != msg.BaseBuiltin {
			continue
		}
		if val := defaultValue(f.Type.Builtin); val != "" {
			fmt.Fprintf(&b, "    %s.assign(%s);\n", f.Name, val)
		}
	}
	b.WriteString("  }\n\n")
	return b.String()
}
