package cpp

import (
	"fmt"
	"strings"

	"github.com/robomsg/msggen/internal/msg"
)

// serializerDecls forward-declares the Serializer specialization.
func serializerDecls(cppMsg string) string {
	var b strings.Builder
	b.WriteString("namespace ros\n{\n")
	b.WriteString("namespace serialization\n{\n")
	fmt.Fprintf(&b, "template<> struct Serializer<%s>\n{\n", cppMsg)
	fmt.Fprintf(&b, "  inline static Buffer write(Buffer buffer, const %s& m);\n", cppMsg)
	fmt.Fprintf(&b, "  inline static Buffer read(Buffer buffer, %s& m);\n", cppMsg)
	fmt.Fprintf(&b, "  inline static uint32_t serializedLength(const %s& m);\n", cppMsg)
	b.WriteString("};\n")
	b.WriteString("} // namespace serialization\n")
	b.WriteString("} // namespace ros\n\n")
	return b.String()
}

// serializerBodies emits write, read, and serializedLength. Each walks
// the field list in declared order, one call to the generic per-element
// primitive per field. Declared order is wire order; no field is ever
// skipped or reordered here.
func serializerBodies(cppMsg string, fields []msg.Field) string {
	var b strings.Builder
	b.WriteString("namespace ros\n{\n")
	b.WriteString("namespace serialization\n{\n\n")

	fmt.Fprintf(&b, "inline Buffer Serializer<%s>::write(Buffer buffer, const %s& m)\n{\n", cppMsg, cppMsg)
	for _, f := range fields {
		fmt.Fprintf(&b, "  buffer = serialize(buffer, m.%s);\n", f.Name)
	}
	b.WriteString("  return buffer;\n}\n\n")

	fmt.Fprintf(&b, "inline Buffer Serializer<%s>::read(Buffer buffer, %s& m)\n{\n", cppMsg, cppMsg)
	for _, f := range fields {
		fmt.Fprintf(&b, "  buffer = deserialize(buffer, m.%s);\n", f.Name)
	}
	b.WriteString("  return buffer;\n}\n\n")

	fmt.Fprintf(&b, "inline uint32_t Serializer<%s>::serializedLength(const %s& m)\n{\n", cppMsg, cppMsg)
	b.WriteString("  uint32_t size = 0;\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "  size += serializationLength(m.%s);\n", f.Name)
	}
	b.WriteString("  return size;\n}\n\n")

	b.WriteString("} // namespace serialization\n")
	b.WriteString("} // namespace ros\n\n")
	return b.String()
}

// legacyMethods emits the virtual accessors on the struct itself that
// delegate to the traits and serializer specializations.
func legacyMethods(cppMsg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  virtual const std::string __getDataType() const { return ros::message_traits::datatype<%s>(); }\n", cppMsg)
	fmt.Fprintf(&b, "  virtual const std::string __getMD5Sum() const { return ros::message_traits::md5sum<%s>(); }\n", cppMsg)
	fmt.Fprintf(&b, "  virtual const std::string __getMessageDefinition() const { return ros::message_traits::definition<%s>(); }\n", cppMsg)
	fmt.Fprintf(&b, "  virtual uint32_t serializationLength() const { return ros::serialization::Serializer<%s>::serializedLength(*this); }\n", cppMsg)
	fmt.Fprintf(&b, "  virtual uint8_t *serialize(uint8_t *write_ptr, uint32_t seq) const { ros::serialization::Buffer b(write_ptr, 1000000000); b = ros::serialization::Serializer<%s>::write(b, *this); return b.data; }\n", cppMsg)
	fmt.Fprintf(&b, "  virtual uint8_t *deserialize(uint8_t *read_ptr) { ros::serialization::Buffer b(read_ptr, 1000000000); b = ros::serialization::Serializer<%s>::read(b, *this); return b.data; }\n\n", cppMsg)
	return b.String()
}
