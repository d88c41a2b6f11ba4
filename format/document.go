package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/classdump/classfile"
)

// document is the generic structure shared by the JSON and YAML encoders.
// It mirrors the class file layout field for field, with counts next to
// the lists they describe.
type document struct {
	Magic             string         `json:"magic" yaml:"magic"`
	MinorVersion      uint16         `json:"minor_version" yaml:"minor_version"`
	MajorVersion      uint16         `json:"major_version" yaml:"major_version"`
	ConstantPoolCount uint16         `json:"constant_pool_count" yaml:"constant_pool_count"`
	ConstantPool      []constant     `json:"constant_pool" yaml:"constant_pool"`
	AccessFlags       []string       `json:"access_flags" yaml:"access_flags"`
	ThisClass         uint16         `json:"this_class" yaml:"this_class"`
	SuperClass        uint16         `json:"super_class" yaml:"super_class"`
	InterfacesCount   int            `json:"interfaces_count" yaml:"interfaces_count"`
	Interfaces        []interfaceRef `json:"interfaces" yaml:"interfaces"`
	FieldsCount       int            `json:"fields_count" yaml:"fields_count"`
	Fields            []member       `json:"fields" yaml:"fields"`
	MethodsCount      int            `json:"methods_count" yaml:"methods_count"`
	Methods           []member       `json:"methods" yaml:"methods"`
	AttributesCount   int            `json:"attributes_count" yaml:"attributes_count"`
	Attributes        []attribute    `json:"attributes" yaml:"attributes"`
}

// constant holds one pool entry keyed by its field names. Slots shadowed
// by a Long or Double are left out; the index key keeps numbering visible.
type constant map[string]any

type interfaceRef struct {
	Tag       string `json:"tag" yaml:"tag"`
	NameIndex uint16 `json:"name_index" yaml:"name_index"`
}

type member struct {
	AccessFlags     []string    `json:"access_flags" yaml:"access_flags"`
	NameIndex       uint16      `json:"name_index" yaml:"name_index"`
	DescriptorIndex uint16      `json:"descriptor_index" yaml:"descriptor_index"`
	AttributesCount int         `json:"attributes_count" yaml:"attributes_count"`
	Attributes      []attribute `json:"attributes" yaml:"attributes"`
}

type attribute struct {
	NameIndex uint16 `json:"attribute_name_index" yaml:"attribute_name_index"`
	Length    uint32 `json:"attribute_length" yaml:"attribute_length"`
	Info      string `json:"info" yaml:"info"`
}

func newDocument(cf *classfile.ClassFile) *document {
	doc := &document{
		Magic:             magicString(cf.Magic),
		MinorVersion:      cf.MinorVersion,
		MajorVersion:      cf.MajorVersion,
		ConstantPoolCount: cf.ConstantPoolCount,
		ConstantPool:      []constant{},
		AccessFlags:       flagList(cf.Flags),
		ThisClass:         cf.ThisClass,
		SuperClass:        cf.SuperClass,
		InterfacesCount:   len(cf.Interfaces),
		Interfaces:        []interfaceRef{},
		FieldsCount:       len(cf.Fields),
		Fields:            []member{},
		MethodsCount:      len(cf.Methods),
		Methods:           []member{},
		AttributesCount:   len(cf.Attributes),
		Attributes:        newAttributes(cf.Attributes),
	}
	for i, entry := range cf.ConstantPool {
		if entry == nil {
			continue
		}
		doc.ConstantPool = append(doc.ConstantPool, newConstant(i+1, entry))
	}
	for _, idx := range cf.Interfaces {
		doc.Interfaces = append(doc.Interfaces, interfaceRef{
			Tag:       classfile.ConstantClass.String(),
			NameIndex: idx,
		})
	}
	for _, f := range cf.Fields {
		doc.Fields = append(doc.Fields, newMember(f.MemberInfo))
	}
	for _, m := range cf.Methods {
		doc.Methods = append(doc.Methods, newMember(m.MemberInfo))
	}
	return doc
}

func newMember(m classfile.MemberInfo) member {
	return member{
		AccessFlags:     flagList(m.Flags),
		NameIndex:       m.NameIndex,
		DescriptorIndex: m.DescriptorIndex,
		AttributesCount: len(m.Attributes),
		Attributes:      newAttributes(m.Attributes),
	}
}

func newAttributes(attrs []classfile.AttributeInfo) []attribute {
	out := make([]attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, attribute{
			NameIndex: a.NameIndex,
			Length:    a.Length,
			Info:      hexBytes(a.Info),
		})
	}
	return out
}

func newConstant(index int, entry classfile.ConstantPoolEntry) constant {
	c := constant{
		"index": index,
		"tag":   entry.Tag().String(),
	}
	switch e := entry.(type) {
	case *classfile.ConstantUtf8Info:
		c["length"] = e.Length
		c["bytes"] = hexBytes(e.Bytes)
		c["value"] = e.String()
	case *classfile.ConstantIntegerInfo:
		c["bytes"] = hexBytes(e.Bytes)
		c["value"] = e.Value()
	case *classfile.ConstantFloatInfo:
		c["bytes"] = hexBytes(e.Bytes)
		c["value"] = floatValue(float64(e.Value()))
	case *classfile.ConstantLongInfo:
		c["high_bytes"] = hexBytes(e.HighBytes)
		c["low_bytes"] = hexBytes(e.LowBytes)
		c["value"] = e.Value()
	case *classfile.ConstantDoubleInfo:
		c["high_bytes"] = hexBytes(e.HighBytes)
		c["low_bytes"] = hexBytes(e.LowBytes)
		c["value"] = floatValue(e.Value())
	case *classfile.ConstantClassInfo:
		c["name_index"] = e.NameIndex
	case *classfile.ConstantStringInfo:
		c["string_index"] = e.StringIndex
	case *classfile.ConstantFieldrefInfo:
		c["class_index"] = e.ClassIndex
		c["name_and_type_index"] = e.NameAndTypeIndex
	case *classfile.ConstantMethodrefInfo:
		c["class_index"] = e.ClassIndex
		c["name_and_type_index"] = e.NameAndTypeIndex
	case *classfile.ConstantInterfaceMethodrefInfo:
		c["class_index"] = e.ClassIndex
		c["name_and_type_index"] = e.NameAndTypeIndex
	case *classfile.ConstantNameAndTypeInfo:
		c["name_index"] = e.NameIndex
		c["descriptor_index"] = e.DescriptorIndex
	case *classfile.ConstantMethodHandleInfo:
		c["reference_kind"] = e.ReferenceKind.String()
		c["reference_index"] = e.ReferenceIndex
	case *classfile.ConstantMethodTypeInfo:
		c["descriptor_index"] = e.DescriptorIndex
	case *classfile.ConstantInvokeDynamicInfo:
		c["bootstrap_method_attr_index"] = e.BootstrapMethodAttrIndex
		c["name_and_type_index"] = e.NameAndTypeIndex
	}
	return c
}

// magicString renders the magic number as upper-case hex with its prefix,
// e.g. "0XCAFEBABE".
func magicString(magic uint32) string {
	return strings.ToUpper(fmt.Sprintf("%#x", magic))
}

// floatValue keeps NaN and the infinities as strings; JSON has no literal
// for them.
func floatValue(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

func hexBytes(b []byte) string {
	return fmt.Sprintf("%X", b)
}

func flagList(flags classfile.FlagSet) []string {
	if flags == nil {
		return []string{}
	}
	return flags
}
