package classfile

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeAttributes(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}
	b := &classBuilder{}
	b.attribute(7, payload...)
	b.attribute(8)
	b.raw(0x99)

	r := newReader(b.bytes())
	attrs, err := decodeAttributes(r, 2)
	if err != nil {
		t.Fatalf("decodeAttributes: %v", err)
	}
	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].NameIndex != 7 || attrs[0].Length != 5 || !bytes.Equal(attrs[0].Info, payload) {
		t.Errorf("attrs[0] = %+v", attrs[0])
	}
	if attrs[1].NameIndex != 8 || attrs[1].Length != 0 || len(attrs[1].Info) != 0 {
		t.Errorf("attrs[1] = %+v", attrs[1])
	}
	if r.remaining() != 1 || r.readU1() != 0x99 {
		t.Error("cursor not positioned right after the last attribute")
	}
}

func TestDecodeAttributesTruncated(t *testing.T) {
	b := &classBuilder{}
	b.u2(1).u4(10).raw(1, 2, 3)
	_, err := decodeAttributes(newReader(b.bytes()), 1)
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestDecodeAttributesHugeLength(t *testing.T) {
	b := &classBuilder{}
	b.u2(1).u4(0xFFFFFFFF)
	_, err := decodeAttributes(newReader(b.bytes()), 1)
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestDecodeInterfaces(t *testing.T) {
	t.Run("indices", func(t *testing.T) {
		b := &classBuilder{}
		b.u2(3).u2(9)
		got, err := decodeInterfaces(newReader(b.bytes()), 2, false)
		if err != nil {
			t.Fatalf("decodeInterfaces: %v", err)
		}
		if len(got) != 2 || got[0] != 3 || got[1] != 9 {
			t.Errorf("got %v, want [3 9]", got)
		}
	})

	t.Run("tag byte layout", func(t *testing.T) {
		b := &classBuilder{}
		b.u1(7).u2(3).u1(7).u2(9)
		got, err := decodeInterfaces(newReader(b.bytes()), 2, true)
		if err != nil {
			t.Fatalf("decodeInterfaces: %v", err)
		}
		if len(got) != 2 || got[0] != 3 || got[1] != 9 {
			t.Errorf("got %v, want [3 9]", got)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := decodeInterfaces(newReader([]byte{0x00}), 1, false)
		if !errors.Is(err, ErrUnexpectedEndOfInput) {
			t.Errorf("error = %v, want ErrUnexpectedEndOfInput", err)
		}
	})
}

func TestDecodeMembers(t *testing.T) {
	b := &classBuilder{}
	b.u2(uint16(AccPublic | AccStatic)).u2(4).u2(5).u2(1)
	b.attribute(6, 0x01)

	members, err := decodeMembers(newReader(b.bytes()), 1, MethodFlags, DecodeAccessFlags)
	if err != nil {
		t.Fatalf("decodeMembers: %v", err)
	}
	m := members[0]
	if m.NameIndex != 4 || m.DescriptorIndex != 5 {
		t.Errorf("indices = %d, %d", m.NameIndex, m.DescriptorIndex)
	}
	if !m.Flags.Has("ACC_PUBLIC") || !m.Flags.Has("ACC_STATIC") || len(m.Flags) != 2 {
		t.Errorf("Flags = %v", m.Flags)
	}
	if len(m.Attributes) != 1 || m.Attributes[0].NameIndex != 6 {
		t.Errorf("Attributes = %+v", m.Attributes)
	}

	_, err = decodeMembers(newReader(b.bytes()[:7]), 1, FieldFlags, DecodeAccessFlags)
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("truncated member: error = %v", err)
	}
}
