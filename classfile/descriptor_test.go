package classfile

import (
	"errors"
	"testing"
)

func TestParseFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc       string
		baseType   string
		className  string
		arrayDepth int
		str        string
	}{
		{"I", "int", "", 0, "int"},
		{"Z", "boolean", "", 0, "boolean"},
		{"Ljava/lang/String;", "", "java/lang/String", 0, "java.lang.String"},
		{"[I", "int", "", 1, "int[]"},
		{"[[D", "double", "", 2, "double[][]"},
		{"[Ljava/lang/Object;", "", "java/lang/Object", 1, "java.lang.Object[]"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			ft, err := ParseFieldDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("ParseFieldDescriptor(%q) error: %v", tt.desc, err)
			}
			if ft.BaseType != tt.baseType {
				t.Errorf("BaseType = %q, want %q", ft.BaseType, tt.baseType)
			}
			if ft.ClassName != tt.className {
				t.Errorf("ClassName = %q, want %q", ft.ClassName, tt.className)
			}
			if ft.ArrayDepth != tt.arrayDepth {
				t.Errorf("ArrayDepth = %d, want %d", ft.ArrayDepth, tt.arrayDepth)
			}
			if ft.String() != tt.str {
				t.Errorf("String() = %q, want %q", ft.String(), tt.str)
			}
		})
	}
}

func TestParseFieldDescriptorInvalid(t *testing.T) {
	for _, desc := range []string{"", "X", "[", "Ljava/lang/String", "L;", "II"} {
		if _, err := ParseFieldDescriptor(desc); !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("ParseFieldDescriptor(%q) error = %v, want ErrInvalidDescriptor", desc, err)
		}
	}
}

func TestParseMethodDescriptor(t *testing.T) {
	tests := []struct {
		desc   string
		params int
		str    string
	}{
		{"()V", 0, "void ()"},
		{"(II)I", 2, "int (int, int)"},
		{"([Ljava/lang/String;)V", 1, "void (java.lang.String[])"},
		{"(JLjava/util/List;Z)[B", 3, "byte[] (long, java.util.List, boolean)"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			md, err := ParseMethodDescriptor(tt.desc)
			if err != nil {
				t.Fatalf("ParseMethodDescriptor(%q) error: %v", tt.desc, err)
			}
			if len(md.Parameters) != tt.params {
				t.Errorf("len(Parameters) = %d, want %d", len(md.Parameters), tt.params)
			}
			if md.String() != tt.str {
				t.Errorf("String() = %q, want %q", md.String(), tt.str)
			}
		})
	}
}

func TestParseMethodDescriptorInvalid(t *testing.T) {
	for _, desc := range []string{"", "V", "(I", "()", "(Q)V", "()VV", "()[V"} {
		if _, err := ParseMethodDescriptor(desc); !errors.Is(err, ErrInvalidDescriptor) {
			t.Errorf("ParseMethodDescriptor(%q) error = %v, want ErrInvalidDescriptor", desc, err)
		}
	}
}
