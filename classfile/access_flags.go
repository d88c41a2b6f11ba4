package classfile

import "strings"

// NamedFlag pairs a modifier name with its bit in an access_flags mask.
type NamedFlag struct {
	Name string
	Mask AccessFlags
}

// FlagVocabulary is the ordered set of flags meaningful for one kind of
// declaration. The same bit can carry different names in different
// vocabularies (0x0020 is ACC_SUPER on a class, ACC_SYNCHRONIZED on a method).
type FlagVocabulary struct {
	Kind  string
	Flags []NamedFlag
}

var ClassFlags = FlagVocabulary{
	Kind: "class",
	Flags: []NamedFlag{
		{"ACC_PUBLIC", AccPublic},
		{"ACC_FINAL", AccFinal},
		{"ACC_SUPER", AccSuper},
		{"ACC_INTERFACE", AccInterface},
		{"ACC_ABSTRACT", AccAbstract},
		{"ACC_SYNTHETIC", AccSynthetic},
		{"ACC_ANNOTATION", AccAnnotation},
		{"ACC_ENUM", AccEnum},
	},
}

var FieldFlags = FlagVocabulary{
	Kind: "field",
	Flags: []NamedFlag{
		{"ACC_PUBLIC", AccPublic},
		{"ACC_PRIVATE", AccPrivate},
		{"ACC_PROTECTED", AccProtected},
		{"ACC_STATIC", AccStatic},
		{"ACC_FINAL", AccFinal},
		{"ACC_VOLATILE", AccVolatile},
		{"ACC_TRANSIENT", AccTransient},
		{"ACC_SYNTHETIC", AccSynthetic},
		{"ACC_ENUM", AccEnum},
	},
}

var MethodFlags = FlagVocabulary{
	Kind: "method",
	Flags: []NamedFlag{
		{"ACC_PUBLIC", AccPublic},
		{"ACC_PRIVATE", AccPrivate},
		{"ACC_PROTECTED", AccProtected},
		{"ACC_STATIC", AccStatic},
		{"ACC_FINAL", AccFinal},
		{"ACC_SYNCHRONIZED", AccSynchronized},
		{"ACC_BRIDGE", AccBridge},
		{"ACC_VARARGS", AccVarargs},
		{"ACC_NATIVE", AccNative},
		{"ACC_ABSTRACT", AccAbstract},
		{"ACC_STRICT", AccStrict},
		{"ACC_SYNTHETIC", AccSynthetic},
	},
}

// FlagSet holds flag names in vocabulary order.
type FlagSet []string

func (s FlagSet) Has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

func (s FlagSet) String() string {
	return strings.Join(s, " ")
}

// DecodeAccessFlags names every flag of the vocabulary whose bit is set in mask.
func DecodeAccessFlags(mask AccessFlags, vocabulary FlagVocabulary) FlagSet {
	return decodeAccessFlags(mask, vocabulary, false)
}

// DecodeAccessFlagsInverted names every flag whose bit is clear in mask.
// It reproduces dumps made by tools that tested membership with
// mask&bit == 0, so a zero mask yields the whole vocabulary.
func DecodeAccessFlagsInverted(mask AccessFlags, vocabulary FlagVocabulary) FlagSet {
	return decodeAccessFlags(mask, vocabulary, true)
}

func decodeAccessFlags(mask AccessFlags, vocabulary FlagVocabulary, inverted bool) FlagSet {
	set := FlagSet{}
	for _, f := range vocabulary.Flags {
		if (mask&f.Mask != 0) != inverted {
			set = append(set, f.Name)
		}
	}
	return set
}
