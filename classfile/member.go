package classfile

import "fmt"

// MemberInfo is the layout shared by field_info and method_info.
type MemberInfo struct {
	AccessFlags     AccessFlags
	Flags           FlagSet
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (m *MemberInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(m.NameIndex)
}

func (m *MemberInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(m.DescriptorIndex)
}

func (m *MemberInfo) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(m.Attributes, cp, name)
}

func (m *MemberInfo) IsPublic() bool    { return m.AccessFlags.IsPublic() }
func (m *MemberInfo) IsPrivate() bool   { return m.AccessFlags.IsPrivate() }
func (m *MemberInfo) IsProtected() bool { return m.AccessFlags.IsProtected() }
func (m *MemberInfo) IsStatic() bool    { return m.AccessFlags.IsStatic() }
func (m *MemberInfo) IsFinal() bool     { return m.AccessFlags.IsFinal() }
func (m *MemberInfo) IsSynthetic() bool { return m.AccessFlags.IsSynthetic() }

type FieldInfo struct {
	MemberInfo
}

func (f *FieldInfo) IsVolatile() bool  { return f.AccessFlags.IsVolatile() }
func (f *FieldInfo) IsTransient() bool { return f.AccessFlags.IsTransient() }
func (f *FieldInfo) IsEnum() bool      { return f.AccessFlags.IsEnum() }

func (f *FieldInfo) ParsedDescriptor(cp ConstantPool) (*FieldType, error) {
	return ParseFieldDescriptor(f.Descriptor(cp))
}

type MethodInfo struct {
	MemberInfo
}

func (m *MethodInfo) IsSynchronized() bool { return m.AccessFlags.IsSynchronized() }
func (m *MethodInfo) IsBridge() bool       { return m.AccessFlags.IsBridge() }
func (m *MethodInfo) IsVarargs() bool      { return m.AccessFlags.IsVarargs() }
func (m *MethodInfo) IsNative() bool       { return m.AccessFlags.IsNative() }
func (m *MethodInfo) IsAbstract() bool     { return m.AccessFlags.IsAbstract() }
func (m *MethodInfo) IsStrict() bool       { return m.AccessFlags.IsStrict() }

func (m *MethodInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

func (m *MethodInfo) IsStaticInitializer(cp ConstantPool) bool {
	return m.Name(cp) == "<clinit>"
}

func (m *MethodInfo) ParsedDescriptor(cp ConstantPool) (*MethodDescriptor, error) {
	return ParseMethodDescriptor(m.Descriptor(cp))
}

type flagDecoder func(AccessFlags, FlagVocabulary) FlagSet

// decodeMembers reads count field_info or method_info records.
func decodeMembers(r *reader, count uint16, vocabulary FlagVocabulary, flags flagDecoder) ([]MemberInfo, error) {
	members := make([]MemberInfo, count)
	for i := range members {
		mask := AccessFlags(r.readU2())
		m := MemberInfo{
			AccessFlags:     mask,
			Flags:           flags(mask, vocabulary),
			NameIndex:       r.readU2(),
			DescriptorIndex: r.readU2(),
		}
		attributesCount := r.readU2()
		if r.err != nil {
			return nil, fmt.Errorf("%s %d: %w", vocabulary.Kind, i, r.err)
		}
		attrs, err := decodeAttributes(r, attributesCount)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", vocabulary.Kind, i, err)
		}
		m.Attributes = attrs
		members[i] = m
	}
	return members, nil
}

func decodeFields(r *reader, count uint16, flags flagDecoder) ([]FieldInfo, error) {
	members, err := decodeMembers(r, count, FieldFlags, flags)
	if err != nil {
		return nil, err
	}
	fields := make([]FieldInfo, len(members))
	for i, m := range members {
		fields[i] = FieldInfo{MemberInfo: m}
	}
	return fields, nil
}

func decodeMethods(r *reader, count uint16, flags flagDecoder) ([]MethodInfo, error) {
	members, err := decodeMembers(r, count, MethodFlags, flags)
	if err != nil {
		return nil, err
	}
	methods := make([]MethodInfo, len(members))
	for i, m := range members {
		methods[i] = MethodInfo{MemberInfo: m}
	}
	return methods, nil
}
