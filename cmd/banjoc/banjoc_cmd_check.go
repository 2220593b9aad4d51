// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsrinivas/fuchsia-sub037/compiler"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check UNITS...",
		Short: "Compile syntax-tree units and report the first error, if any",
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
			declCount := 0
			for _, ns := range program.Namespaces {
				declCount += len(ns.Decls)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"library %s: %d declarations\n", program.Primary, declCount)
			return nil
		},
	}
}
