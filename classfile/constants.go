package classfile

import "fmt"

const (
	Magic = 0xCAFEBABE
)

// AccessFlags is a raw access_flags mask. Some bits mean different things
// depending on the declaration that carries them; FlagVocabulary resolves
// names per kind.
type AccessFlags uint16

const (
	AccPublic    AccessFlags = 1 << 0
	AccPrivate   AccessFlags = 1 << 1
	AccProtected AccessFlags = 1 << 2
	AccStatic    AccessFlags = 1 << 3
	AccFinal     AccessFlags = 1 << 4

	// 0x0020: class, method.
	AccSuper        AccessFlags = 1 << 5
	AccSynchronized AccessFlags = AccSuper

	// 0x0040: field, method.
	AccVolatile AccessFlags = 1 << 6
	AccBridge   AccessFlags = AccVolatile

	// 0x0080: field, method.
	AccTransient AccessFlags = 1 << 7
	AccVarargs   AccessFlags = AccTransient

	AccNative     AccessFlags = 1 << 8
	AccInterface  AccessFlags = 1 << 9
	AccAbstract   AccessFlags = 1 << 10
	AccStrict     AccessFlags = 1 << 11
	AccSynthetic  AccessFlags = 1 << 12
	AccAnnotation AccessFlags = 1 << 13
	AccEnum       AccessFlags = 1 << 14
)

// Has reports whether every bit of want is set.
func (f AccessFlags) Has(want AccessFlags) bool { return f&want == want }

func (f AccessFlags) IsPublic() bool       { return f.Has(AccPublic) }
func (f AccessFlags) IsPrivate() bool      { return f.Has(AccPrivate) }
func (f AccessFlags) IsProtected() bool    { return f.Has(AccProtected) }
func (f AccessFlags) IsStatic() bool       { return f.Has(AccStatic) }
func (f AccessFlags) IsFinal() bool        { return f.Has(AccFinal) }
func (f AccessFlags) IsSuper() bool        { return f.Has(AccSuper) }
func (f AccessFlags) IsSynchronized() bool { return f.Has(AccSynchronized) }
func (f AccessFlags) IsVolatile() bool     { return f.Has(AccVolatile) }
func (f AccessFlags) IsBridge() bool       { return f.Has(AccBridge) }
func (f AccessFlags) IsTransient() bool    { return f.Has(AccTransient) }
func (f AccessFlags) IsVarargs() bool      { return f.Has(AccVarargs) }
func (f AccessFlags) IsNative() bool       { return f.Has(AccNative) }
func (f AccessFlags) IsInterface() bool    { return f.Has(AccInterface) }
func (f AccessFlags) IsAbstract() bool     { return f.Has(AccAbstract) }
func (f AccessFlags) IsStrict() bool       { return f.Has(AccStrict) }
func (f AccessFlags) IsSynthetic() bool    { return f.Has(AccSynthetic) }
func (f AccessFlags) IsAnnotation() bool   { return f.Has(AccAnnotation) }
func (f AccessFlags) IsEnum() bool         { return f.Has(AccEnum) }

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantInvokeDynamic      ConstantTag = 18
)

// ConstantTags lists every tag the decoder understands, in numeric order.
var ConstantTags = []ConstantTag{
	ConstantUtf8,
	ConstantInteger,
	ConstantFloat,
	ConstantLong,
	ConstantDouble,
	ConstantClass,
	ConstantString,
	ConstantFieldref,
	ConstantMethodref,
	ConstantInterfaceMethodref,
	ConstantNameAndType,
	ConstantMethodHandle,
	ConstantMethodType,
	ConstantInvokeDynamic,
}

var constantTagNames = map[ConstantTag]string{
	ConstantUtf8:               "CONSTANT_Utf8",
	ConstantInteger:            "CONSTANT_Integer",
	ConstantFloat:              "CONSTANT_Float",
	ConstantLong:               "CONSTANT_Long",
	ConstantDouble:             "CONSTANT_Double",
	ConstantClass:              "CONSTANT_Class",
	ConstantString:             "CONSTANT_String",
	ConstantFieldref:           "CONSTANT_Fieldref",
	ConstantMethodref:          "CONSTANT_Methodref",
	ConstantInterfaceMethodref: "CONSTANT_InterfaceMethodref",
	ConstantNameAndType:        "CONSTANT_NameAndType",
	ConstantMethodHandle:       "CONSTANT_MethodHandle",
	ConstantMethodType:         "CONSTANT_MethodType",
	ConstantInvokeDynamic:      "CONSTANT_InvokeDynamic",
}

func (t ConstantTag) String() string {
	if name, ok := constantTagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CONSTANT_Unknown(%d)", uint8(t))
}

func (t ConstantTag) Valid() bool {
	_, ok := constantTagNames[t]
	return ok
}

// Wide reports whether entries with this tag occupy two pool slots.
func (t ConstantTag) Wide() bool {
	return t == ConstantLong || t == ConstantDouble
}

// MethodHandleKind is the reference_kind byte of a CONSTANT_MethodHandle.
// Kinds 1 to 4 reference fields, 5 to 9 methods.
type MethodHandleKind uint8

const (
	RefGetField MethodHandleKind = iota + 1
	RefGetStatic
	RefPutField
	RefPutStatic
	RefInvokeVirtual
	RefInvokeStatic
	RefInvokeSpecial
	RefNewInvokeSpecial
	RefInvokeInterface
)

var methodHandleKindNames = [...]string{
	RefGetField:         "REF_getField",
	RefGetStatic:        "REF_getStatic",
	RefPutField:         "REF_putField",
	RefPutStatic:        "REF_putStatic",
	RefInvokeVirtual:    "REF_invokeVirtual",
	RefInvokeStatic:     "REF_invokeStatic",
	RefInvokeSpecial:    "REF_invokeSpecial",
	RefNewInvokeSpecial: "REF_newInvokeSpecial",
	RefInvokeInterface:  "REF_invokeInterface",
}

func (k MethodHandleKind) String() string {
	if k >= 1 && int(k) < len(methodHandleKindNames) {
		return methodHandleKindNames[k]
	}
	return fmt.Sprintf("REF_unknown(%d)", uint8(k))
}

// javaReleases maps class file major versions to the release that introduced them.
var javaReleases = map[uint16]string{
	45: "1.1", 46: "1.2", 47: "1.3", 48: "1.4", 49: "5", 50: "6", 51: "7",
	52: "8", 53: "9", 54: "10", 55: "11", 56: "12", 57: "13", 58: "14",
	59: "15", 60: "16", 61: "17", 62: "18", 63: "19", 64: "20", 65: "21",
	66: "22", 67: "23", 68: "24",
}
