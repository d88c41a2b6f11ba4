package classfile

import "fmt"

// AttributeInfo is an attribute kept verbatim; Info is never interpreted.
type AttributeInfo struct {
	NameIndex uint16
	Length    uint32
	Info      []byte
}

func (a *AttributeInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(a.NameIndex)
}

func decodeAttributes(r *reader, count uint16) ([]AttributeInfo, error) {
	attrs := make([]AttributeInfo, count)
	for i := range attrs {
		nameIndex := r.readU2()
		length := r.readU4()
		info := r.readBytes(int(length))
		if r.err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, r.err)
		}
		attrs[i] = AttributeInfo{NameIndex: nameIndex, Length: length, Info: info}
	}
	return attrs, nil
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if attrs[i].Name(cp) == name {
			return &attrs[i]
		}
	}
	return nil
}
