package msg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParseError describes a malformed declaration in a .msg file.
type ParseError struct {
	File string
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, e.Msg, e.Text)
}

// ParseFile parses one .msg file. The message name is the file's base
// name without the extension; pkg is the owning package.
func ParseFile(path, pkg string) (*Spec, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	spec, err := Parse(pkg, name, string(src))
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
		}
		return nil, err
	}
	return spec, nil
}

// Parse parses .msg source text into a Spec. Declarations are one per
// line; '#' starts a comment. A field is "<type> <name>", a constant is
// "<type> <NAME>=<value>".
func Parse(pkg, name, src string) (*Spec, error) {
	spec := &Spec{
		Package: pkg,
		Name:    name,
		Text:    src,
	}

	for i, raw := range strings.Split(src, "\n") {
		line := raw
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.ReplaceAll(line, "\t", " ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		typeTok, rest, ok := strings.Cut(line, " ")
		if !ok {
			return nil, &ParseError{Line: i + 1, Text: raw, Msg: "expected '<type> <name>'"}
		}
		rest = strings.TrimSpace(rest)

		typ, err := parseType(typeTok)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: raw, Msg: err.Error()}
		}

		if nameTok, value, isConst := strings.Cut(rest, "="); isConst {
			nameTok = strings.TrimSpace(nameTok)
			if !validIdent(nameTok) {
				return nil, &ParseError{Line: i + 1, Text: raw, Msg: "invalid constant name"}
			}
			spec.Constants = append(spec.Constants, Constant{
				Type:  typ,
				Name:  nameTok,
				Value: strings.TrimSpace(value),
			})
			continue
		}

		if !validIdent(rest) {
			return nil, &ParseError{Line: i + 1, Text: raw, Msg: "invalid field name"}
		}
		spec.Fields = append(spec.Fields, Field{Type: typ, Name: rest})
	}

	if len(spec.Fields) > 0 {
		first := spec.Fields[0]
		spec.HasHeader = first.Type.Base == BaseHeader && first.Type.Array == ArrayNone
	}
	return spec, nil
}

// parseType parses a type token: a base type with an optional "[]" or
// "[N]" suffix.
func parseType(tok string) (Type, error) {
	var typ Type

	base := tok
	if idx := strings.Index(tok, "["); idx >= 0 {
		if !strings.HasSuffix(tok, "]") {
			return typ, fmt.Errorf("malformed array suffix in type %q", tok)
		}
		inner := tok[idx+1 : len(tok)-1]
		base = tok[:idx]
		if inner == "" {
			typ.Array = ArrayVariable
		} else {
			n, err := strconv.Atoi(inner)
			if err != nil || n < 0 {
				return typ, fmt.Errorf("invalid array length in type %q", tok)
			}
			typ.Array = ArrayFixed
			typ.ArrayLen = n
		}
	}

	switch {
	case base == "Header":
		typ.Base = BaseHeader
	default:
		if b, ok := LookupBuiltin(base); ok {
			typ.Base = BaseBuiltin
			typ.Builtin = b
			break
		}
		typ.Base = BaseComposite
		pkg, name, qualified := strings.Cut(base, "/")
		if qualified {
			if !validIdent(pkg) || !validIdent(name) {
				return typ, fmt.Errorf("invalid message type %q", base)
			}
			typ.Package = pkg
			typ.Name = name
		} else {
			if !validIdent(base) {
				return typ, fmt.Errorf("invalid message type %q", base)
			}
			typ.Name = base
		}
	}
	return typ, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
