package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/classdump/classfile"
	"github.com/dhamidi/classdump/format"
)

func newDumpCmd(a *app) *cobra.Command {
	var (
		dumpFormat string
		legacy     bool
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a .class file and print its structure",
		Long: `Decode a .class file and print every table it contains.

Use "-" to read the class file from standard input. --legacy reproduces the
layout written by older dumpers: access flags named when their bit is clear,
a tag byte before each interface index, and Long/Double constants that take
a single pool slot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if cmd.Flags().Changed("format") {
				cfg.Format = dumpFormat
			}
			if legacy {
				cfg.Legacy.All()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			filename := args[0]
			var (
				cf  *classfile.ClassFile
				err error
			)
			if filename == "-" {
				cf, err = classfile.ParseReader(cmd.InOrStdin(), cfg.Options()...)
			} else {
				cf, err = classfile.ParseFile(filename, cfg.Options()...)
			}
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}
			a.log.Infof("decoded %s: %s, version %s", filename, cf.ClassName(), cf.Version())

			out := cmd.OutOrStdout()
			enc, err := format.New(cfg.Format, out, format.Options{Color: format.ColorEnabled(cfg.Color, out)})
			if err != nil {
				return err
			}
			if err := enc.Encode(cf); err != nil {
				return fmt.Errorf("encode %s: %w", cfg.Format, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "tree", "output format (tree, json, yaml, line)")
	cmd.Flags().BoolVar(&legacy, "legacy", false, "decode the legacy dumper layout")

	return cmd
}
