package classfile

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfInput is returned when a read needs more bytes than remain.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrMalformedConstantPool is matched by every *MalformedConstantPoolError.
	ErrMalformedConstantPool = errors.New("malformed constant pool")
)

// MalformedConstantPoolError reports a tag byte that names no known constant.
type MalformedConstantPoolError struct {
	Tag   uint8
	Index int
}

func (e *MalformedConstantPoolError) Error() string {
	return fmt.Sprintf("malformed constant pool: unknown tag %d at index %d", e.Tag, e.Index)
}

func (e *MalformedConstantPoolError) Is(target error) bool {
	return target == ErrMalformedConstantPool
}

// reader is a forward-only cursor over an in-memory class file.
// A failed read leaves pos untouched; the first error sticks and every
// later read returns a zero value.
type reader struct {
	data []byte
	pos  int
	err  error
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) need(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || r.remaining() < n {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEndOfInput, n, r.pos, r.remaining())
		return false
	}
	return true
}

// readUx reads an n-byte big-endian unsigned integer, n in {1, 2, 4}.
func (r *reader) readUx(n int) uint32 {
	if !r.need(n) {
		return 0
	}
	b := r.data[r.pos : r.pos+n]
	var v uint32
	switch n {
	case 1:
		v = uint32(b[0])
	case 2:
		v = uint32(binary.BigEndian.Uint16(b))
	case 4:
		v = binary.BigEndian.Uint32(b)
	default:
		r.err = fmt.Errorf("unsupported integer width %d", n)
		return 0
	}
	r.pos += n
	return v
}

func (r *reader) readU1() uint8  { return uint8(r.readUx(1)) }
func (r *reader) readU2() uint16 { return uint16(r.readUx(2)) }
func (r *reader) readU4() uint32 { return r.readUx(4) }

// readBytes copies the next n bytes so the result never aliases the input.
func (r *reader) readBytes(n int) []byte {
	if !r.need(n) {
		return nil
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:r.pos+n])
	r.pos += n
	return buf
}
