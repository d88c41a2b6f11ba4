package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/classdump/classfile"
)

// LineEncoder writes one tab-separated record per line, keyed by its first
// column: class, super, interface, constant, field, method or attribute.
type LineEncoder struct {
	w     io.Writer
	class *classfile.ClassFile
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(cf *classfile.ClassFile) error {
	e.class = cf
	return writeText(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class
	cp := c.ConstantPool

	fmt.Fprintf(&sb, "class\t%s\t%s\t%s\n", c.ClassName(), c.Version(), c.Flags)
	if c.SuperClass != 0 {
		fmt.Fprintf(&sb, "super\t%s\n", c.SuperClassName())
	}
	for _, name := range c.InterfaceNames() {
		fmt.Fprintf(&sb, "interface\t%s\n", name)
	}

	for i, entry := range cp {
		if entry == nil {
			continue
		}
		fmt.Fprintf(&sb, "constant\t%d\t%s\t%s\n", i+1, entry.Tag(), describeConstant(cp, entry))
	}

	for i := range c.Fields {
		f := &c.Fields[i]
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\n", memberName(cp, &f.MemberInfo), fieldType(cp, f), f.Flags)
	}

	for i := range c.Methods {
		m := &c.Methods[i]
		fmt.Fprintf(&sb, "method\t%s\t%s\t%s\n", memberName(cp, &m.MemberInfo), methodSignature(cp, m), m.Flags)
	}

	for i := range c.Attributes {
		a := &c.Attributes[i]
		fmt.Fprintf(&sb, "attribute\t%s\t%d\n", attributeName(cp, a), a.Length)
	}

	return []byte(sb.String()), nil
}
