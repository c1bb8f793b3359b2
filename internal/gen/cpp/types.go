// Package cpp compiles a resolved message spec into a C++ header:
// struct definition, type-identity traits, and binary serialization
// routines. Each emitter is a pure function returning a text fragment;
// Generate assembles the fragments into one compilation unit.
package cpp

import (
	"fmt"

	"github.com/robomsg/msggen/internal/msg"
)

// headerCppType is what a bare Header field maps to, regardless of how
// the reference was spelled.
const headerCppType = "roslib::Header"

var builtinCpp = map[msg.Builtin]string{
	msg.Bool:     "uint8_t",
	msg.Byte:     "int8_t",
	msg.Char:     "uint8_t",
	msg.Int8:     "int8_t",
	msg.Uint8:    "uint8_t",
	msg.Int16:    "int16_t",
	msg.Uint16:   "uint16_t",
	msg.Int32:    "int32_t",
	msg.Uint32:   "uint32_t",
	msg.Int64:    "int64_t",
	msg.Uint64:   "uint64_t",
	msg.Float32:  "float",
	msg.Float64:  "double",
	msg.String:   "std::string",
	msg.Time:     "ros::Time",
	msg.Duration: "ros::Duration",
}

// cppType maps a schema type to its C++ type expression. The builtin
// table is exhaustive over the msg.Builtin enumeration; a missing entry
// means the table is out of sync with the model and is a programming
// error, not user input.
func cppType(t msg.Type) string {
	var base string
	switch t.Base {
	case msg.BaseBuiltin:
		var ok bool
		base, ok = builtinCpp[t.Builtin]
		if !ok {
			panic(fmt.Sprintf("cpp: no type mapping for builtin %v", t.Builtin))
		}
	case msg.BaseHeader:
		base = headerCppType
	case msg.BaseComposite:
		if t.Package == "" {
			base = t.Name
		} else {
			base = t.Package + "::" + t.Name
		}
	}

	switch t.Array {
	case msg.ArrayVariable:
		return fmt.Sprintf("std::vector<%s>", base)
	case msg.ArrayFixed:
		return fmt.Sprintf("boost::array<%s, %d>", base, t.ArrayLen)
	}
	return base
}

// defaultValue returns the default literal for a builtin kind, or ""
// for kinds without one (string, time, duration).
func defaultValue(b msg.Builtin) string {
	switch {
	case b == msg.Bool:
		return "false"
	case b.Integral():
		return "0"
	case b.Float():
		return "0.0"
	}
	return ""
}
