package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/classdump/classfile"
	"github.com/dhamidi/classdump/format"
)

func newConstantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List constant pool tags and access flag names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			styles := format.NewStyles(out, format.ColorEnabled(a.cfg.Color, out))

			var sb strings.Builder
			sb.WriteString(styles.Heading.Render("constant pool tags:") + "\n")
			for _, tag := range classfile.ConstantTags {
				line := fmt.Sprintf("  %-3d %s", uint8(tag), styles.Tag.Render(tag.String()))
				if tag.Wide() {
					line += " " + styles.Dim.Render("(2 slots)")
				}
				sb.WriteString(line + "\n")
			}

			for _, vocab := range []classfile.FlagVocabulary{classfile.ClassFlags, classfile.FieldFlags, classfile.MethodFlags} {
				sb.WriteString(styles.Heading.Render(vocab.Kind+" access flags:") + "\n")
				for _, flag := range vocab.Flags {
					fmt.Fprintf(&sb, "  0x%04X %s\n", uint16(flag.Mask), styles.Flags.Render(flag.Name))
				}
			}

			_, err := fmt.Fprint(out, sb.String())
			return err
		},
	}
}
