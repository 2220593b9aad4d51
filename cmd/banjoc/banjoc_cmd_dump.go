// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsrinivas/fuchsia-sub037/compiler"
	"github.com/vsrinivas/fuchsia-sub037/encoding/asttext"
)

func newDumpCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "dump UNITS...",
		Short: "Compile syntax-tree units and print the validated program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := readUnits(args)
			if err != nil {
				return err
			}
			program, err := compiler.Compile(units...)
			if err != nil {
				return err
			}

			out := io.Writer(cmd.OutOrStdout())
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return asttext.EncodeTo(program, out)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "",
		"Write output here instead of stdout")
	return cmd
}
