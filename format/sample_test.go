package format

import "github.com/dhamidi/classdump/classfile"

func utf8(s string) *classfile.ConstantUtf8Info {
	return &classfile.ConstantUtf8Info{Length: uint16(len(s)), Bytes: []byte(s)}
}

// sampleClass is the decoded form of
//
//	public class Sample implements Runnable {
//	    public int count;
//	    private static final long BIG = 0x100000002L;
//	    public void run() {}
//	}
func sampleClass() *classfile.ClassFile {
	return &classfile.ClassFile{
		Magic:             classfile.Magic,
		MajorVersion:      52,
		ConstantPoolCount: 23,
		ConstantPool: classfile.ConstantPool{
			utf8("Sample"),                             // 1
			&classfile.ConstantClassInfo{NameIndex: 1}, // 2
			utf8("java/lang/Object"),                   // 3
			&classfile.ConstantClassInfo{NameIndex: 3}, // 4
			utf8("java/lang/Runnable"),                 // 5
			&classfile.ConstantClassInfo{NameIndex: 5}, // 6
			utf8("count"),                              // 7
			utf8("I"),                                  // 8
			utf8("run"),                                // 9
			utf8("()V"),                                // 10
			utf8("Code"),                               // 11
			&classfile.ConstantLongInfo{ // 12
				HighBytes: []byte{0, 0, 0, 1},
				LowBytes:  []byte{0, 0, 0, 2},
			},
			nil,                                                                    // 13
			utf8("SourceFile"),                                                     // 14
			utf8("Sample.java"),                                                    // 15
			&classfile.ConstantStringInfo{StringIndex: 15},                         // 16
			&classfile.ConstantMethodrefInfo{ClassIndex: 4, NameAndTypeIndex: 18},  // 17
			&classfile.ConstantNameAndTypeInfo{NameIndex: 19, DescriptorIndex: 10}, // 18
			utf8("<init>"),                                                         // 19
			utf8("ConstantValue"),                                                  // 20
			utf8("BIG"),                                                            // 21
			utf8("J"),                                                              // 22
		},
		AccessFlags: classfile.AccPublic | classfile.AccSuper,
		Flags:       classfile.FlagSet{"ACC_PUBLIC", "ACC_SUPER"},
		ThisClass:   2,
		SuperClass:  4,
		Interfaces:  []uint16{6},
		Fields: []classfile.FieldInfo{
			{MemberInfo: classfile.MemberInfo{
				AccessFlags:     classfile.AccPublic,
				Flags:           classfile.FlagSet{"ACC_PUBLIC"},
				NameIndex:       7,
				DescriptorIndex: 8,
			}},
			{MemberInfo: classfile.MemberInfo{
				AccessFlags:     classfile.AccPrivate | classfile.AccStatic | classfile.AccFinal,
				Flags:           classfile.FlagSet{"ACC_PRIVATE", "ACC_STATIC", "ACC_FINAL"},
				NameIndex:       21,
				DescriptorIndex: 22,
				Attributes: []classfile.AttributeInfo{
					{NameIndex: 20, Length: 2, Info: []byte{0x00, 0x0C}},
				},
			}},
		},
		Methods: []classfile.MethodInfo{
			{MemberInfo: classfile.MemberInfo{
				AccessFlags:     classfile.AccPublic,
				Flags:           classfile.FlagSet{"ACC_PUBLIC"},
				NameIndex:       9,
				DescriptorIndex: 10,
				Attributes: []classfile.AttributeInfo{
					{NameIndex: 11, Length: 1, Info: []byte{0xB1}},
				},
			}},
		},
		Attributes: []classfile.AttributeInfo{
			{NameIndex: 14, Length: 2, Info: []byte{0x00, 0x0F}},
		},
	}
}
