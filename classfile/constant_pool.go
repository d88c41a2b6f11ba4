package classfile

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf16"
	"unicode/utf8"
)

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Length uint16
	Bytes  []byte
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

// String decodes the modified UTF-8 payload.
func (c *ConstantUtf8Info) String() string { return decodeModifiedUtf8(c.Bytes) }

type ConstantIntegerInfo struct {
	Bytes []byte
}

func (c *ConstantIntegerInfo) Tag() ConstantTag { return ConstantInteger }
func (c *ConstantIntegerInfo) Value() int32     { return int32(binary.BigEndian.Uint32(c.Bytes)) }

type ConstantFloatInfo struct {
	Bytes []byte
}

func (c *ConstantFloatInfo) Tag() ConstantTag { return ConstantFloat }
func (c *ConstantFloatInfo) Value() float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(c.Bytes))
}

type ConstantLongInfo struct {
	HighBytes []byte
	LowBytes  []byte
}

func (c *ConstantLongInfo) Tag() ConstantTag { return ConstantLong }
func (c *ConstantLongInfo) Value() int64     { return int64(joinWide(c.HighBytes, c.LowBytes)) }

type ConstantDoubleInfo struct {
	HighBytes []byte
	LowBytes  []byte
}

func (c *ConstantDoubleInfo) Tag() ConstantTag { return ConstantDouble }
func (c *ConstantDoubleInfo) Value() float64 {
	return math.Float64frombits(joinWide(c.HighBytes, c.LowBytes))
}

func joinWide(high, low []byte) uint64 {
	return uint64(binary.BigEndian.Uint32(high))<<32 | uint64(binary.BigEndian.Uint32(low))
}

type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

type ConstantStringInfo struct {
	StringIndex uint16
}

func (c *ConstantStringInfo) Tag() ConstantTag { return ConstantString }

type ConstantFieldrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantFieldrefInfo) Tag() ConstantTag { return ConstantFieldref }

type ConstantMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantMethodrefInfo) Tag() ConstantTag { return ConstantMethodref }

type ConstantInterfaceMethodrefInfo struct {
	ClassIndex       uint16
	NameAndTypeIndex uint16
}

func (c *ConstantInterfaceMethodrefInfo) Tag() ConstantTag { return ConstantInterfaceMethodref }

type ConstantNameAndTypeInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
}

func (c *ConstantNameAndTypeInfo) Tag() ConstantTag { return ConstantNameAndType }

type ConstantMethodHandleInfo struct {
	ReferenceKind  MethodHandleKind
	ReferenceIndex uint16
}

func (c *ConstantMethodHandleInfo) Tag() ConstantTag { return ConstantMethodHandle }

type ConstantMethodTypeInfo struct {
	DescriptorIndex uint16
}

func (c *ConstantMethodTypeInfo) Tag() ConstantTag { return ConstantMethodType }

type ConstantInvokeDynamicInfo struct {
	BootstrapMethodAttrIndex uint16
	NameAndTypeIndex         uint16
}

func (c *ConstantInvokeDynamicInfo) Tag() ConstantTag { return ConstantInvokeDynamic }

// ConstantPool holds entries in file order; pool index i is stored at cp[i-1].
// The slot following a Long or Double is nil.
type ConstantPool []ConstantPoolEntry

// decodeConstantPool reads entries until slots pool slots are filled. With
// singleSlot set, Long and Double count as one slot like every other entry.
func decodeConstantPool(r *reader, slots int, singleSlot bool) (ConstantPool, error) {
	pool := make(ConstantPool, 0, slots)
	for len(pool) < slots {
		index := len(pool) + 1
		entry, err := decodeConstant(r, index)
		if err != nil {
			return nil, err
		}
		pool = append(pool, entry)
		if entry.Tag().Wide() && !singleSlot && len(pool) < slots {
			pool = append(pool, nil)
		}
	}
	return pool, nil
}

func decodeConstant(r *reader, index int) (ConstantPoolEntry, error) {
	raw := r.readU1()
	if r.err != nil {
		return nil, fmt.Errorf("constant pool entry %d tag: %w", index, r.err)
	}

	var entry ConstantPoolEntry
	switch tag := ConstantTag(raw); tag {
	case ConstantFieldref:
		entry = &ConstantFieldrefInfo{ClassIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	case ConstantMethodref:
		entry = &ConstantMethodrefInfo{ClassIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	case ConstantInterfaceMethodref:
		entry = &ConstantInterfaceMethodrefInfo{ClassIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	case ConstantClass:
		entry = &ConstantClassInfo{NameIndex: r.readU2()}
	case ConstantString:
		entry = &ConstantStringInfo{StringIndex: r.readU2()}
	case ConstantUtf8:
		length := r.readU2()
		entry = &ConstantUtf8Info{Length: length, Bytes: r.readBytes(int(length))}
	case ConstantNameAndType:
		entry = &ConstantNameAndTypeInfo{NameIndex: r.readU2(), DescriptorIndex: r.readU2()}
	case ConstantInteger:
		entry = &ConstantIntegerInfo{Bytes: r.readBytes(4)}
	case ConstantFloat:
		entry = &ConstantFloatInfo{Bytes: r.readBytes(4)}
	case ConstantLong:
		entry = &ConstantLongInfo{HighBytes: r.readBytes(4), LowBytes: r.readBytes(4)}
	case ConstantDouble:
		entry = &ConstantDoubleInfo{HighBytes: r.readBytes(4), LowBytes: r.readBytes(4)}
	case ConstantMethodHandle:
		entry = &ConstantMethodHandleInfo{ReferenceKind: MethodHandleKind(r.readU1()), ReferenceIndex: r.readU2()}
	case ConstantMethodType:
		entry = &ConstantMethodTypeInfo{DescriptorIndex: r.readU2()}
	case ConstantInvokeDynamic:
		entry = &ConstantInvokeDynamicInfo{BootstrapMethodAttrIndex: r.readU2(), NameAndTypeIndex: r.readU2()}
	default:
		return nil, &MalformedConstantPoolError{Tag: raw, Index: index}
	}

	if r.err != nil {
		return nil, fmt.Errorf("constant pool entry %d (%s): %w", index, entry.Tag(), r.err)
	}
	return entry, nil
}

func lookup[T ConstantPoolEntry](cp ConstantPool, index uint16) (T, bool) {
	var zero T
	if index == 0 || int(index) > len(cp) {
		return zero, false
	}
	entry, ok := cp[index-1].(T)
	return entry, ok
}

// Entry returns the entry at a 1-based pool index, or nil.
func (cp ConstantPool) Entry(index uint16) ConstantPoolEntry {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if entry, ok := lookup[*ConstantUtf8Info](cp, index); ok {
		return entry.String()
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if entry, ok := lookup[*ConstantClassInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp ConstantPool) GetNameAndType(index uint16) (name, descriptor string) {
	if entry, ok := lookup[*ConstantNameAndTypeInfo](cp, index); ok {
		return cp.GetUtf8(entry.NameIndex), cp.GetUtf8(entry.DescriptorIndex)
	}
	return "", ""
}

func (cp ConstantPool) GetString(index uint16) string {
	if entry, ok := lookup[*ConstantStringInfo](cp, index); ok {
		return cp.GetUtf8(entry.StringIndex)
	}
	return ""
}

func (cp ConstantPool) GetInteger(index uint16) (int32, bool) {
	if entry, ok := lookup[*ConstantIntegerInfo](cp, index); ok {
		return entry.Value(), true
	}
	return 0, false
}

func (cp ConstantPool) GetLong(index uint16) (int64, bool) {
	if entry, ok := lookup[*ConstantLongInfo](cp, index); ok {
		return entry.Value(), true
	}
	return 0, false
}

func (cp ConstantPool) GetFloat(index uint16) (float32, bool) {
	if entry, ok := lookup[*ConstantFloatInfo](cp, index); ok {
		return entry.Value(), true
	}
	return 0, false
}

func (cp ConstantPool) GetDouble(index uint16) (float64, bool) {
	if entry, ok := lookup[*ConstantDoubleInfo](cp, index); ok {
		return entry.Value(), true
	}
	return 0, false
}

func (cp ConstantPool) GetFieldref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantFieldrefInfo](cp, index); ok {
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
		return cp.GetClassName(entry.ClassIndex), name, descriptor
	}
	return "", "", ""
}

func (cp ConstantPool) GetMethodref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantMethodrefInfo](cp, index); ok {
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
		return cp.GetClassName(entry.ClassIndex), name, descriptor
	}
	return "", "", ""
}

func (cp ConstantPool) GetInterfaceMethodref(index uint16) (className, name, descriptor string) {
	if entry, ok := lookup[*ConstantInterfaceMethodrefInfo](cp, index); ok {
		name, descriptor = cp.GetNameAndType(entry.NameAndTypeIndex)
		return cp.GetClassName(entry.ClassIndex), name, descriptor
	}
	return "", "", ""
}

func (cp ConstantPool) GetMethodHandle(index uint16) *ConstantMethodHandleInfo {
	entry, _ := lookup[*ConstantMethodHandleInfo](cp, index)
	return entry
}

func (cp ConstantPool) GetMethodType(index uint16) string {
	if entry, ok := lookup[*ConstantMethodTypeInfo](cp, index); ok {
		return cp.GetUtf8(entry.DescriptorIndex)
	}
	return ""
}

func (cp ConstantPool) GetInvokeDynamic(index uint16) *ConstantInvokeDynamicInfo {
	entry, _ := lookup[*ConstantInvokeDynamicInfo](cp, index)
	return entry
}

// decodeModifiedUtf8 decodes the JVM's modified UTF-8: NUL is encoded as
// 0xC0 0x80 and supplementary characters as two encoded surrogates.
// Malformed sequences decode to U+FFFD.
func decodeModifiedUtf8(b []byte) string {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0 && i+1 < len(b) && b[i+1]&0xC0 == 0x80:
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0 && i+2 < len(b) && b[i+1]&0xC0 == 0x80 && b[i+2]&0xC0 == 0x80:
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			units = append(units, utf8.RuneError)
			i++
		}
	}
	return string(utf16.Decode(units))
}
