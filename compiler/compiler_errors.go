// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

import (
	"fmt"

	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// Error codes, one per rejection reason. Compilation stops at the first
// error; there is no aggregation.
const (
	CodeUnexpectedToken         uint32 = 2001
	CodeUnrecognizedType        uint32 = 2002
	CodeNotAnInteger            uint32 = 2003
	CodeAlreadyPrimaryNamespace uint32 = 2004
	CodeUnImported              uint32 = 2005
	CodeNotYetSupported         uint32 = 2006
	CodeInvalidDeps             uint32 = 2007
	CodeInvalidConstType        uint32 = 2008
	CodeUnresolvedSymbol        uint32 = 2009
)

type Error struct {
	code    uint32
	message string
	span    syntax.Span
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Span() syntax.Span {
	return err.span
}

// ErrCode returns the compiler error code carried by err, or 0 if err is not
// a compiler error.
func ErrCode(err error) uint32 {
	if err, ok := err.(*Error); ok {
		return err.code
	}
	return 0
}

func errUnexpectedToken(node *syntax.Node) error {
	return &Error{
		code:    CodeUnexpectedToken,
		message: fmt.Sprintf("Unexpected '%s' token", node.Rule),
		span:    node.Span,
	}
}

func errUnrecognizedType(spelling string, span syntax.Span) error {
	return &Error{
		code:    CodeUnrecognizedType,
		message: fmt.Sprintf("Unrecognized type %q", spelling),
		span:    span,
	}
}

func errNotAnInteger(value Constant, span syntax.Span) error {
	return &Error{
		code:    CodeNotAnInteger,
		message: fmt.Sprintf("Expected an integer, got %q", string(value)),
		span:    span,
	}
}

func errAlreadyPrimaryNamespace(primary, declared string) error {
	return &Error{
		code: CodeAlreadyPrimaryNamespace,
		message: fmt.Sprintf(
			"Library %q declared while %q is already the primary namespace",
			declared, primary,
		),
	}
}

func errUnImported(namespace string, span syntax.Span) error {
	return &Error{
		code:    CodeUnImported,
		message: fmt.Sprintf("Namespace %q used before import", namespace),
		span:    span,
	}
}

func errNotYetSupported(feature string, span syntax.Span) error {
	return &Error{
		code:    CodeNotYetSupported,
		message: fmt.Sprintf("%s is not yet supported", feature),
		span:    span,
	}
}

func errInvalidDeps() error {
	return &Error{
		code:    CodeInvalidDeps,
		message: "Declarations form a dependency cycle",
	}
}

func errInvalidConstType(decl *ConstDecl) error {
	return &Error{
		code: CodeInvalidConstType,
		message: fmt.Sprintf(
			"Constant '%s' value %q does not match its declared type",
			decl.Name, string(decl.Value),
		),
	}
}

func errUnresolvedSymbol(id Ident) error {
	return &Error{
		code:    CodeUnresolvedSymbol,
		message: fmt.Sprintf("Unidentified symbol '%s'", id),
	}
}
