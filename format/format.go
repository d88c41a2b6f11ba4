package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/classdump/classfile"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(cf *classfile.ClassFile) error
}

// Names lists the encoders New knows about.
var Names = []string{"tree", "json", "yaml", "line"}

type Options struct {
	// Color enables lipgloss styling in the tree encoder.
	Color bool
}

func New(name string, w io.Writer, opts Options) (Encoder, error) {
	switch name {
	case "tree":
		return NewTreeEncoder(w, NewStyles(w, opts.Color)), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected one of %v)", name, Names)
	}
}

// writeText marshals m and writes the result to w.
func writeText(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
