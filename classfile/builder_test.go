package classfile

import (
	"bytes"
	"encoding/binary"
)

// classBuilder assembles class file bytes for tests.
type classBuilder struct {
	buf bytes.Buffer
}

func (b *classBuilder) u1(v uint8) *classBuilder {
	b.buf.WriteByte(v)
	return b
}

func (b *classBuilder) u2(v uint16) *classBuilder {
	b.buf.Write(binary.BigEndian.AppendUint16(nil, v))
	return b
}

func (b *classBuilder) u4(v uint32) *classBuilder {
	b.buf.Write(binary.BigEndian.AppendUint32(nil, v))
	return b
}

func (b *classBuilder) raw(p ...byte) *classBuilder {
	b.buf.Write(p)
	return b
}

func (b *classBuilder) utf8(s string) *classBuilder {
	return b.u1(uint8(ConstantUtf8)).u2(uint16(len(s))).raw([]byte(s)...)
}

func (b *classBuilder) class(nameIndex uint16) *classBuilder {
	return b.u1(uint8(ConstantClass)).u2(nameIndex)
}

func (b *classBuilder) attribute(nameIndex uint16, info ...byte) *classBuilder {
	return b.u2(nameIndex).u4(uint32(len(info))).raw(info...)
}

func (b *classBuilder) header(minor, major, poolCount uint16) *classBuilder {
	return b.u4(Magic).u2(minor).u2(major).u2(poolCount)
}

func (b *classBuilder) bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// sampleClass encodes the equivalent of
//
//	public class Sample implements Runnable {
//	    public int count;
//	    private static final long BIG = 0x100000002L;
//	    public void run() {}
//	}
//
// With legacy set, each interface index is preceded by a tag byte.
func sampleClass(legacy bool) []byte {
	b := &classBuilder{}
	b.header(0, 52, 19)
	b.utf8("Sample")                      // 1
	b.class(1)                            // 2
	b.utf8("java/lang/Object")            // 3
	b.class(3)                            // 4
	b.utf8("java/lang/Runnable")          // 5
	b.class(5)                            // 6
	b.utf8("count")                       // 7
	b.utf8("I")                           // 8
	b.utf8("run")                         // 9
	b.utf8("()V")                         // 10
	b.utf8("Code")                        // 11
	b.u1(uint8(ConstantLong)).u4(1).u4(2) // 12, 13
	b.utf8("SourceFile")                  // 14
	b.utf8("Sample.java")                 // 15
	b.utf8("BIG")                         // 16
	b.utf8("J")                           // 17
	b.utf8("ConstantValue")               // 18

	b.u2(uint16(AccPublic | AccSuper))
	b.u2(2).u2(4)

	b.u2(1)
	if legacy {
		b.u1(uint8(ConstantClass))
	}
	b.u2(6)

	b.u2(2)
	b.u2(uint16(AccPublic)).u2(7).u2(8).u2(0)
	b.u2(uint16(AccPrivate|AccStatic|AccFinal)).u2(16).u2(17).u2(1)
	b.attribute(18, 0x00, 0x0C)

	b.u2(1)
	b.u2(uint16(AccPublic)).u2(9).u2(10).u2(1)
	b.attribute(11,
		0x00, 0x00,             // max_stack
		0x00, 0x01,             // max_locals
		0x00, 0x00, 0x00, 0x01, // code_length
		0xB1,                   // return
		0x00, 0x00,             // exception_table_length
		0x00, 0x00,             // attributes_count
	)

	b.u2(1)
	b.attribute(14, 0x00, 0x0F)
	return b.bytes()
}
