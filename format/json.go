package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/classdump/classfile"
)

type JSONEncoder struct {
	w     io.Writer
	class *classfile.ClassFile
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(cf *classfile.ClassFile) error {
	e.class = cf
	return writeText(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(newDocument(e.class), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
