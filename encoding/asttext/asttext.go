// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package asttext renders a validated program as deterministic,
// source-ordered text. The rendering is stable across runs and suitable for
// golden-file comparison.
package asttext

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsrinivas/fuchsia-sub037/compiler"
)

func Encode(program *compiler.Program) string {
	var buf strings.Builder
	EncodeTo(program, &buf)
	return buf.String()
}

func EncodeTo(program *compiler.Program, w io.Writer) error {
	e := encoder{w: w}
	e.linef("library %s", program.Primary)
	for _, ns := range program.Namespaces {
		if ns.Name != program.Primary {
			e.line("")
			e.linef("namespace %s", ns.Name)
		}
		for _, decl := range ns.Decls {
			e.line("")
			e.visitDecl(decl)
		}
	}
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" && s != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitAttrs(attrs compiler.Attrs) {
	var items []string
	for _, attr := range attrs {
		if attr.Key == "Doc" {
			for _, docLine := range strings.Split(strings.TrimRight(attr.Val, "\n"), "\n") {
				e.linef("///%s", docLine)
			}
			continue
		}
		if attr.HasVal {
			items = append(items, fmt.Sprintf("%s=%q", attr.Key, attr.Val))
		} else {
			items = append(items, attr.Key)
		}
	}
	if len(items) > 0 {
		e.linef("[%s]", strings.Join(items, ", "))
	}
}

func (e *encoder) visitDecl(decl compiler.Decl) {
	switch decl := decl.(type) {
	case *compiler.StructDecl:
		e.visitAttrs(decl.Attrs)
		e.linef("struct %s {", decl.Name)
		e.indent++
		for _, field := range decl.Fields {
			e.visitAttrs(field.Attrs)
			if field.Val != nil {
				e.linef("%s %s = %s", typeString(field.Type), field.Ident, *field.Val)
			} else {
				e.linef("%s %s", typeString(field.Type), field.Ident)
			}
		}
		e.indent--
		e.line("}")
	case *compiler.UnionDecl:
		e.visitAttrs(decl.Attrs)
		e.linef("union %s {", decl.Name)
		e.indent++
		for _, field := range decl.Fields {
			e.visitAttrs(field.Attrs)
			e.linef("%s %s", typeString(field.Type), field.Ident)
		}
		e.indent--
		e.line("}")
	case *compiler.EnumDecl:
		e.visitAttrs(decl.Attrs)
		e.linef("enum %s : %s {", decl.Name, typeString(decl.Type))
		e.indent++
		for _, variant := range decl.Variants {
			e.visitAttrs(variant.Attrs)
			e.linef("%s = %s", variant.Name, variant.Value)
		}
		e.indent--
		e.line("}")
	case *compiler.InterfaceDecl:
		e.visitAttrs(decl.Attrs)
		e.linef("interface %s {", decl.Name)
		e.indent++
		for _, method := range decl.Methods {
			e.visitAttrs(method.Attrs)
			sig := fmt.Sprintf("%s(%s)", method.Name, paramsString(method.In))
			if len(method.Out) > 0 {
				sig += fmt.Sprintf(" -> (%s)", paramsString(method.Out))
			}
			e.line(sig)
		}
		e.indent--
		e.line("}")
	case *compiler.ConstDecl:
		e.visitAttrs(decl.Attrs)
		e.linef("const %s %s = %s", typeString(decl.Type), decl.Name, decl.Value)
	case *compiler.AliasDecl:
		e.linef("using %s = %s", decl.To, decl.From)
	}
}

func paramsString(params []compiler.Param) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, typeString(param.Type)+" "+param.Name)
	}
	return strings.Join(parts, ", ")
}

func typeString(ty compiler.Type) string {
	switch ty := ty.(type) {
	case compiler.PrimitiveType:
		return ty.String()
	case compiler.StrType:
		s := "string"
		if ty.Size != nil {
			s += ":" + ty.Size.String()
		}
		if ty.Nullable {
			s += "?"
		}
		return s
	case compiler.VectorType:
		s := fmt.Sprintf("vector<%s>", typeString(ty.Elem))
		if ty.Size != nil {
			s += ":" + ty.Size.String()
		}
		if ty.Nullable {
			s += "?"
		}
		return s
	case compiler.ArrayType:
		return fmt.Sprintf("array<%s>:%s", typeString(ty.Elem), ty.Size)
	case compiler.HandleType:
		s := "handle"
		if ty.Subtype != compiler.HandleHandle {
			s = fmt.Sprintf("handle<%s>", ty.Subtype)
		}
		if ty.Reference {
			s += "?"
		}
		return s
	case compiler.IdentType:
		s := ty.Ident.String()
		if ty.Reference {
			s += "?"
		}
		return s
	case compiler.StructType:
		return "struct"
	case compiler.UnionType:
		return "union"
	case compiler.EnumType:
		return "enum"
	case compiler.InterfaceType:
		return "interface"
	}
	return "<invalid>"
}
