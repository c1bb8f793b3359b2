// Package msg holds the in-memory model for parsed .msg message
// definitions: builtin type kinds, field/constant declarations, and the
// Spec for one message type.
package msg

import (
	"fmt"
	"strconv"
)

// Builtin identifies one of the fixed primitive field types.
type Builtin int

const (
	Bool Builtin = iota
	Byte
	Char
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Float32
	Float64
	String
	Time
	Duration
)

var builtinNames = map[string]Builtin{
	"bool":     Bool,
	"byte":     Byte,
	"char":     Char,
	"int8":     Int8,
	"uint8":    Uint8,
	"int16":    Int16,
	"uint16":   Uint16,
	"int32":    Int32,
	"uint32":   Uint32,
	"int64":    Int64,
	"uint64":   Uint64,
	"float32":  Float32,
	"float64":  Float64,
	"string":   String,
	"time":     Time,
	"duration": Duration,
}

var builtinStrings = func() map[Builtin]string {
	m := make(map[Builtin]string, len(builtinNames))
	for name, b := range builtinNames {
		m[b] = name
	}
	return m
}()

// LookupBuiltin maps a type token to its builtin kind.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

func (b Builtin) String() string {
	if s, ok := builtinStrings[b]; ok {
		return s
	}
	return fmt.Sprintf("Builtin(%d)", int(b))
}

// Integral reports whether b is one of the integer kinds (including the
// byte and char aliases).
func (b Builtin) Integral() bool {
	switch b {
	case Byte, Char, Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	}
	return false
}

// Float reports whether b is one of the floating-point kinds.
func (b Builtin) Float() bool {
	return b == Float32 || b == Float64
}

// ConstantKind reports whether b may be used as a constant's declared
// type. Only numeric and bool kinds qualify.
func (b Builtin) ConstantKind() bool {
	return b == Bool || b.Integral() || b.Float()
}

// BaseKind tags the base-type variant of a Type.
type BaseKind int

const (
	// BaseBuiltin is a primitive type requiring no schema lookup.
	BaseBuiltin BaseKind = iota
	// BaseComposite references another message spec by (package, name).
	BaseComposite
	// BaseHeader is the well-known header type, written as a bare
	// "Header" in source and resolved here once during parsing.
	BaseHeader
)

// ArrayKind tags the array modifier of a Type.
type ArrayKind int

const (
	ArrayNone ArrayKind = iota
	ArrayVariable
	ArrayFixed
)

// Type describes a field or constant type: a base variant plus an
// orthogonal array modifier.
type Type struct {
	Base    BaseKind
	Builtin Builtin // valid when Base == BaseBuiltin
	Package string  // valid when Base == BaseComposite; "" means the owning package
	Name    string  // valid when Base == BaseComposite

	Array    ArrayKind
	ArrayLen int // valid when Array == ArrayFixed; always >= 0
}

// IsArray reports whether t carries any array modifier.
func (t Type) IsArray() bool {
	return t.Array != ArrayNone
}

// BaseString renders the base type back to .msg source syntax, without
// the array modifier.
func (t Type) BaseString() string {
	switch t.Base {
	case BaseBuiltin:
		return t.Builtin.String()
	case BaseHeader:
		return "Header"
	default:
		if t.Package == "" {
			return t.Name
		}
		return t.Package + "/" + t.Name
	}
}

// String renders t back to .msg source syntax.
func (t Type) String() string {
	s := t.BaseString()
	switch t.Array {
	case ArrayVariable:
		return s + "[]"
	case ArrayFixed:
		return s + "[" + strconv.Itoa(t.ArrayLen) + "]"
	}
	return s
}

// Field is one declared member of a message.
type Field struct {
	Type Type
	Name string
}

// Constant is one named compile-time value. Value keeps the literal
// text exactly as written in the source.
type Constant struct {
	Type  Type
	Name  string
	Value string
}

// Spec is the parsed representation of one .msg file. Field order is
// serialization order and is preserved exactly. A Spec is never mutated
// after parsing.
type Spec struct {
	Package   string
	Name      string
	Fields    []Field
	Constants []Constant
	// HasHeader is true when the first field is a scalar header field.
	HasHeader bool
	// Text is the raw source text, kept for embedding the full
	// definition into generated output.
	Text string
}

// FullName returns the canonical dotted type name, e.g. "roslib/Log".
func (s *Spec) FullName() string {
	return s.Package + "/" + s.Name
}
