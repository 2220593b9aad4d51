// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

func readUnits(paths []string) ([]*syntax.Node, error) {
	units := make([]*syntax.Node, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		unit, err := syntax.DecodeUnit(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		units = append(units, unit)
	}
	return units, nil
}
