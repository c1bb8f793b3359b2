package cpp

import (
	"fmt"
	"strings"

	"github.com/robomsg/msggen/internal/gendeps"
	"github.com/robomsg/msggen/internal/msg"
)

// traitsDecls forward-declares the message_traits specializations.
func traitsDecls(cppMsg string) string {
	var b strings.Builder
	b.WriteString("namespace ros\n{\n")
	b.WriteString("namespace message_traits\n{\n")
	fmt.Fprintf(&b, "template<> inline const char* md5sum<%s>();\n", cppMsg)
	fmt.Fprintf(&b, "template<> inline const char* datatype<%s>();\n", cppMsg)
	fmt.Fprintf(&b, "template<> inline const char* definition<%s>();\n", cppMsg)
	b.WriteString("} // namespace message_traits\n")
	b.WriteString("} // namespace ros\n\n")
	return b.String()
}

// escapeDefinition converts the full definition text into C++ string
// literal fragments, one per source line, each terminated by an escaped
// newline. Backslashes and double quotes are escaped so the text embeds
// safely; one literal per line keeps the embedded definition diffable.
func escapeDefinition(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.ReplaceAll(line, `\`, `\\`)
		line = strings.ReplaceAll(line, `"`, `\"`)
		fmt.Fprintf(&b, "\"%s\\n\"\n", line)
	}
	return b.String()
}

// traitsBodies emits the identity metadata for a spec: content hash,
// canonical datatype name, escaped full definition, and the capability
// markers for header presence and fixed serialized length. Each marker
// is a trait specialization so downstream code can branch on capability
// at the type level.
func traitsBodies(cppMsg string, spec *msg.Spec, g *gendeps.Graph, digest *gendeps.Digest) string {
	var b strings.Builder
	b.WriteString("namespace ros\n{\n")
	b.WriteString("namespace message_traits\n{\n")
	fmt.Fprintf(&b, "template<> inline const char* md5sum<%s>() { return \"%s\"; }\n", cppMsg, digest.MD5)
	fmt.Fprintf(&b, "template<> inline const char* datatype<%s>() { return \"%s\"; }\n", cppMsg, spec.FullName())

	fmt.Fprintf(&b, "template<> inline const char* definition<%s>()\n{\n  return\n", cppMsg)
	b.WriteString(escapeDefinition(digest.FullText))
	b.WriteString(";\n}\n\n")

	if spec.HasHeader {
		fmt.Fprintf(&b, "template<> struct HasHeader<%s> : public TrueType {};\n", cppMsg)
		fmt.Fprintf(&b, "template<> inline %s* getHeader(%s& m) { return &m.%s; }\n",
			headerCppType, cppMsg, spec.Fields[0].Name)
	}
	if isFixedLength(g, spec) {
		fmt.Fprintf(&b, "template<> struct IsFixedSize<%s> : public TrueType {};\n", cppMsg)
	}
	b.WriteString("\n")

	b.WriteString("} // namespace message_traits\n")
	b.WriteString("} // namespace ros\n\n")
	return b.String()
}
