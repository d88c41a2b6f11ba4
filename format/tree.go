package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/classdump/classfile"
)

// TreeEncoder prints the class file as an indented outline, one section per
// class file table, with pool references resolved next to their indexes.
type TreeEncoder struct {
	w      io.Writer
	styles *Styles
	class  *classfile.ClassFile
}

func NewTreeEncoder(w io.Writer, styles *Styles) *TreeEncoder {
	if styles == nil {
		styles = NewStyles(w, false)
	}
	return &TreeEncoder{w: w, styles: styles}
}

func (e *TreeEncoder) Encode(cf *classfile.ClassFile) error {
	e.class = cf
	return writeText(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class
	cp := c.ConstantPool
	s := e.styles

	title := c.ClassName()
	if title == "" {
		title = "<unnamed>"
	}
	sb.WriteString(s.Title.Render(title) + "\n")
	e.field(&sb, 1, "magic", magicString(c.Magic))
	e.field(&sb, 1, "version", c.Version())
	e.field(&sb, 1, "access_flags", e.flags(c.Flags))
	e.field(&sb, 1, "this_class", classRef(cp, c.ThisClass))
	e.field(&sb, 1, "super_class", classRef(cp, c.SuperClass))

	e.heading(&sb, 1, "constant_pool", int(c.ConstantPoolCount))
	width := len(fmt.Sprintf("#%d", len(cp)))
	for i, entry := range cp {
		if entry == nil {
			continue
		}
		fmt.Fprintf(&sb, "%s%s %s %s\n", indent(2),
			s.Index.Render(fmt.Sprintf("%-*s", width, fmt.Sprintf("#%d", i+1))),
			s.Tag.Render(entry.Tag().String()),
			describeConstant(cp, entry))
	}

	e.heading(&sb, 1, "interfaces", len(c.Interfaces))
	for _, idx := range c.Interfaces {
		fmt.Fprintf(&sb, "%s%s\n", indent(2), classRef(cp, idx))
	}

	e.heading(&sb, 1, "fields", len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		e.member(&sb, memberName(cp, &f.MemberInfo), fieldType(cp, f), &f.MemberInfo)
	}

	e.heading(&sb, 1, "methods", len(c.Methods))
	for i := range c.Methods {
		m := &c.Methods[i]
		e.member(&sb, memberName(cp, &m.MemberInfo), methodSignature(cp, m), &m.MemberInfo)
	}

	e.heading(&sb, 1, "attributes", len(c.Attributes))
	e.attributes(&sb, 2, c.Attributes)

	return []byte(sb.String()), nil
}

func (e *TreeEncoder) field(sb *strings.Builder, depth int, key, value string) {
	fmt.Fprintf(sb, "%s%s %s\n", indent(depth), e.styles.Heading.Render(key+":"), value)
}

func (e *TreeEncoder) heading(sb *strings.Builder, depth int, key string, count int) {
	fmt.Fprintf(sb, "%s%s\n", indent(depth), e.styles.Heading.Render(fmt.Sprintf("%s (%d):", key, count)))
}

func (e *TreeEncoder) member(sb *strings.Builder, name, typ string, m *classfile.MemberInfo) {
	fmt.Fprintf(sb, "%s%s %s %s\n", indent(2),
		e.styles.Name.Render(name), e.styles.Type.Render(typ), e.flags(m.Flags))
	e.attributes(sb, 3, m.Attributes)
}

func (e *TreeEncoder) attributes(sb *strings.Builder, depth int, attrs []classfile.AttributeInfo) {
	cp := e.class.ConstantPool
	for i := range attrs {
		a := &attrs[i]
		fmt.Fprintf(sb, "%s%s %s\n", indent(depth),
			e.styles.Name.Render(attributeName(cp, a)),
			e.styles.Dim.Render(fmt.Sprintf("(%d bytes)", a.Length)))
	}
}

func (e *TreeEncoder) flags(flags classfile.FlagSet) string {
	return e.styles.Flags.Render("[" + flags.String() + "]")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
