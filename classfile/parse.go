package classfile

import (
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/classdump/internal/logging"
)

type Option func(*decoder)

// WithLogger routes decoder tracing to logger instead of the
// "classdump.classfile" logger.
func WithLogger(logger commonlog.Logger) Option {
	return func(d *decoder) {
		d.log = logger
	}
}

// WithInvertedAccessFlags names the flags whose bits are clear rather than set.
func WithInvertedAccessFlags() Option {
	return func(d *decoder) {
		d.flags = DecodeAccessFlagsInverted
	}
}

// WithInterfaceTagByte expects one extra byte before every interface index.
func WithInterfaceTagByte() Option {
	return func(d *decoder) {
		d.interfaceTagByte = true
	}
}

// WithSingleSlotWideConstants counts Long and Double entries as a single
// constant pool slot.
func WithSingleSlotWideConstants() Option {
	return func(d *decoder) {
		d.singleSlotWide = true
	}
}

type decoder struct {
	log              commonlog.Logger
	flags            flagDecoder
	interfaceTagByte bool
	singleSlotWide   bool
}

func newDecoder(opts []Option) *decoder {
	d := &decoder{
		log:   logging.Get("classfile"),
		flags: DecodeAccessFlags,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func ParseFile(path string, opts ...Option) (*ClassFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Parse(data, opts...)
}

// ParseReader reads rd to the end and decodes the result.
func ParseReader(rd io.Reader, opts ...Option) (*ClassFile, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read class file: %w", err)
	}
	return Parse(data, opts...)
}

// Parse decodes a complete class file. It either returns the whole document
// or an error; partial results are discarded.
func Parse(data []byte, opts ...Option) (*ClassFile, error) {
	return newDecoder(opts).decode(newReader(data))
}

func (d *decoder) decode(r *reader) (*ClassFile, error) {
	cf := &ClassFile{
		Magic:        r.readU4(),
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read header: %w", r.err)
	}
	if cf.Magic != Magic {
		d.log.Debugf("unexpected magic 0x%08X", cf.Magic)
	}

	cf.ConstantPoolCount = r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", r.err)
	}
	var err error
	if cf.ConstantPoolCount > 0 {
		cf.ConstantPool, err = decodeConstantPool(r, int(cf.ConstantPoolCount)-1, d.singleSlotWide)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool: %w", err)
		}
	}
	d.log.Debugf("constant pool: %d slots, %d bytes consumed", len(cf.ConstantPool), r.pos)

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.Flags = d.flags(cf.AccessFlags, ClassFlags)
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()
	interfacesCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", r.err)
	}

	if cf.Interfaces, err = decodeInterfaces(r, interfacesCount, d.interfaceTagByte); err != nil {
		return nil, fmt.Errorf("failed to read interfaces: %w", err)
	}

	fieldsCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read fields count: %w", r.err)
	}
	if cf.Fields, err = decodeFields(r, fieldsCount, d.flags); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}

	methodsCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read methods count: %w", r.err)
	}
	if cf.Methods, err = decodeMethods(r, methodsCount, d.flags); err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}

	attributesCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read attributes count: %w", r.err)
	}
	if cf.Attributes, err = decodeAttributes(r, attributesCount); err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}

	d.log.Debugf("decoded %d interfaces, %d fields, %d methods, %d attributes",
		len(cf.Interfaces), len(cf.Fields), len(cf.Methods), len(cf.Attributes))
	if r.remaining() > 0 {
		d.log.Debugf("%d trailing bytes ignored", r.remaining())
	}
	return cf, nil
}
