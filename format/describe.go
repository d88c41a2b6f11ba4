package format

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/classdump/classfile"
)

// describeConstant summarises a pool entry with its references resolved,
// e.g. `#1 Sample` for a Class entry.
func describeConstant(cp classfile.ConstantPool, entry classfile.ConstantPoolEntry) string {
	switch e := entry.(type) {
	case *classfile.ConstantUtf8Info:
		return strconv.Quote(e.String())
	case *classfile.ConstantIntegerInfo:
		return strconv.FormatInt(int64(e.Value()), 10)
	case *classfile.ConstantFloatInfo:
		return strconv.FormatFloat(float64(e.Value()), 'g', -1, 32)
	case *classfile.ConstantLongInfo:
		return strconv.FormatInt(e.Value(), 10)
	case *classfile.ConstantDoubleInfo:
		return strconv.FormatFloat(e.Value(), 'g', -1, 64)
	case *classfile.ConstantClassInfo:
		return fmt.Sprintf("#%d %s", e.NameIndex, cp.GetUtf8(e.NameIndex))
	case *classfile.ConstantStringInfo:
		return fmt.Sprintf("#%d %q", e.StringIndex, cp.GetUtf8(e.StringIndex))
	case *classfile.ConstantFieldrefInfo:
		return describeRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantMethodrefInfo:
		return describeRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantInterfaceMethodrefInfo:
		return describeRef(cp, e.ClassIndex, e.NameAndTypeIndex)
	case *classfile.ConstantNameAndTypeInfo:
		return fmt.Sprintf("#%d:#%d %s:%s", e.NameIndex, e.DescriptorIndex,
			cp.GetUtf8(e.NameIndex), cp.GetUtf8(e.DescriptorIndex))
	case *classfile.ConstantMethodHandleInfo:
		return fmt.Sprintf("%s #%d", e.ReferenceKind, e.ReferenceIndex)
	case *classfile.ConstantMethodTypeInfo:
		return fmt.Sprintf("#%d %s", e.DescriptorIndex, cp.GetUtf8(e.DescriptorIndex))
	case *classfile.ConstantInvokeDynamicInfo:
		name, desc := cp.GetNameAndType(e.NameAndTypeIndex)
		return fmt.Sprintf("#%d:#%d %s:%s", e.BootstrapMethodAttrIndex, e.NameAndTypeIndex, name, desc)
	}
	return ""
}

func describeRef(cp classfile.ConstantPool, classIndex, natIndex uint16) string {
	name, desc := cp.GetNameAndType(natIndex)
	return fmt.Sprintf("#%d.#%d %s.%s:%s", classIndex, natIndex, cp.GetClassName(classIndex), name, desc)
}

// classRef names a Class entry, falling back to its raw index.
func classRef(cp classfile.ConstantPool, index uint16) string {
	if name := cp.GetClassName(index); name != "" {
		return fmt.Sprintf("#%d %s", index, name)
	}
	return fmt.Sprintf("#%d", index)
}

func memberName(cp classfile.ConstantPool, m *classfile.MemberInfo) string {
	if name := m.Name(cp); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", m.NameIndex)
}

func attributeName(cp classfile.ConstantPool, a *classfile.AttributeInfo) string {
	if name := a.Name(cp); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", a.NameIndex)
}

// fieldType renders a field's type in source form, or its raw descriptor
// when that does not parse.
func fieldType(cp classfile.ConstantPool, f *classfile.FieldInfo) string {
	if ft, err := f.ParsedDescriptor(cp); err == nil {
		return ft.String()
	}
	return f.Descriptor(cp)
}

func methodSignature(cp classfile.ConstantPool, m *classfile.MethodInfo) string {
	if md, err := m.ParsedDescriptor(cp); err == nil {
		return md.String()
	}
	return m.Descriptor(cp)
}
