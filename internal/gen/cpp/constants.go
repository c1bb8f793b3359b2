package cpp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robomsg/msggen/internal/msg"
)

// ErrUnsupportedConstant marks a constant whose declared type is not a
// numeric or bool kind. This is a schema-authoring error and aborts
// generation.
var ErrUnsupportedConstant = errors.New("unsupported constant type")

// constantDecls emits one static compile-time binding per constant.
func constantDecls(constants []msg.Constant) (string, error) {
	var b strings.Builder
	for _, c := range constants {
		if c.Type.IsArray() || c.Type.Base != msg.BaseBuiltin || !c.Type.Builtin.ConstantKind() {
			return "", fmt.Errorf("constant %s: %w: %s", c.Name, ErrUnsupportedConstant, c.Type)
		}
		fmt.Fprintf(&b, "  static const %s %s = %s;\n", cppType(c.Type), c.Name, c.Value)
	}
	b.WriteString("\n")
	return b.String(), nil
}
