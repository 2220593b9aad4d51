// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

import (
	"strconv"
	"strings"

	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// validateConstants checks that every constant's literal text is well-formed
// for its declared type, and that every enum variant value is an integer
// literal of the enum's underlying type. Bounds on array/vector/string size
// constants are not validated.
func (p *Program) validateConstants() error {
	for _, ns := range p.Namespaces {
		for _, decl := range ns.Decls {
			switch decl := decl.(type) {
			case *ConstDecl:
				if err := p.validateConstValue(decl); err != nil {
					return err
				}
			case *EnumDecl:
				if err := validateEnumVariants(decl); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Program) validateConstValue(decl *ConstDecl) error {
	text := string(decl.Value)
	switch ty := decl.Type.(type) {
	case PrimitiveType:
		switch ty {
		case Int8:
			return checkIntConst(decl, text, 8)
		case Int16:
			return checkIntConst(decl, text, 16)
		case Int32:
			return checkIntConst(decl, text, 32)
		case Int64:
			return checkIntConst(decl, text, 64)
		case UInt8:
			return checkUintConst(decl, text, 8)
		case UInt16:
			return checkUintConst(decl, text, 16)
		case UInt32:
			return checkUintConst(decl, text, 32)
		case UInt64:
			// TODO: range-check uint64 constants against the full 64-bit
			// range instead of the 32-bit one.
			return checkUintConst(decl, text, 32)
		case Bool:
			if text != "true" && text != "false" {
				return errInvalidConstType(decl)
			}
			return nil
		}
	case StrType:
		if len(text) < 2 || !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
			return errInvalidConstType(decl)
		}
		return nil
	}

	// Any other declared type: the literal must itself name something whose
	// type structurally equals the declared one, e.g. an enum-valued
	// constant spelled as a variant name.
	resolved, err := p.TypeOf(ParseIdent(text))
	if err != nil {
		return errInvalidConstType(decl)
	}
	if !EqualTypes(resolved, decl.Type) {
		return errInvalidConstType(decl)
	}
	return nil
}

func checkIntConst(decl *ConstDecl, text string, bits int) error {
	if _, err := strconv.ParseInt(text, 10, bits); err != nil {
		return errInvalidConstType(decl)
	}
	return nil
}

func checkUintConst(decl *ConstDecl, text string, bits int) error {
	if _, err := strconv.ParseUint(text, 10, bits); err != nil {
		return errInvalidConstType(decl)
	}
	return nil
}

func validateEnumVariants(decl *EnumDecl) error {
	signed, bits := false, 32
	if prim, ok := decl.Type.(PrimitiveType); ok {
		switch prim {
		case Int8:
			signed, bits = true, 8
		case Int16:
			signed, bits = true, 16
		case Int32:
			signed, bits = true, 32
		case Int64:
			signed, bits = true, 64
		case UInt8:
			bits = 8
		case UInt16:
			bits = 16
		case UInt32:
			bits = 32
		case UInt64:
			bits = 64
		}
	}
	for _, variant := range decl.Variants {
		text := string(variant.Value)
		var err error
		if signed {
			_, err = strconv.ParseInt(text, 0, bits)
		} else {
			_, err = strconv.ParseUint(text, 0, bits)
		}
		if err != nil {
			return errNotAnInteger(variant.Value, syntax.Span{})
		}
	}
	return nil
}
