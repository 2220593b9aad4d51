// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler_test

import (
	"testing"

	"github.com/vsrinivas/fuchsia-sub037/compiler"
	"github.com/vsrinivas/fuchsia-sub037/internal/testutil"
	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// fieldType compiles a single-field struct and returns the field's type.
func fieldType(t *testing.T, ty *syntax.Node) compiler.Type {
	t.Helper()
	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("S", testutil.StructField(ty, "f")),
	))
	testutil.AssertNoError(t, err)
	decl := program.Namespaces[0].Decls[0].(*compiler.StructDecl)
	return decl.Fields[0].Type
}

func fieldTypeErr(t *testing.T, ty *syntax.Node) error {
	t.Helper()
	_, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("S", testutil.StructField(ty, "f")),
	))
	return err
}

func TestPrimitiveTypes(t *testing.T) {
	t.Parallel()

	spellings := map[string]compiler.PrimitiveType{
		"voidptr": compiler.Voidptr,
		"usize":   compiler.USize,
		"bool":    compiler.Bool,
		"int8":    compiler.Int8,
		"int16":   compiler.Int16,
		"int32":   compiler.Int32,
		"int64":   compiler.Int64,
		"uint8":   compiler.UInt8,
		"uint16":  compiler.UInt16,
		"uint32":  compiler.UInt32,
		"uint64":  compiler.UInt64,
		"float32": compiler.Float32,
		"float64": compiler.Float64,
	}
	for spelling, want := range spellings {
		ty := fieldType(t, testutil.Prim(spelling))
		testutil.ExpectEq(t, want, ty.(compiler.PrimitiveType))
		testutil.ExpectEq(t, spelling, want.String())
	}

	err := fieldTypeErr(t, testutil.Prim("int128"))
	testutil.ExpectErrCode(t, compiler.CodeUnrecognizedType, err)
}

func TestHandleTypes(t *testing.T) {
	t.Parallel()

	ty := fieldType(t, testutil.TypeHandle())
	testutil.ExpectEq(t, compiler.HandleType{Subtype: compiler.HandleHandle},
		ty.(compiler.HandleType))

	ty = fieldType(t, testutil.TypeHandle(
		testutil.HandleSubtype("vmo"), testutil.Reference()))
	testutil.ExpectEq(t,
		compiler.HandleType{Subtype: compiler.HandleVmo, Reference: true},
		ty.(compiler.HandleType))

	err := fieldTypeErr(t, testutil.TypeHandle(testutil.HandleSubtype("pipe")))
	testutil.ExpectErrCode(t, compiler.CodeUnrecognizedType, err)
}

func TestHandleSubtypeSpellings(t *testing.T) {
	t.Parallel()

	// Every spelling parses to a distinct kind that prints back as itself.
	spellings := []string{
		"handle", "process", "thread", "vmo", "channel", "event", "port",
		"interrupt", "log", "socket", "resource", "eventpair", "job", "vmar",
		"fifo", "guest", "timer", "bti", "profile", "debuglog",
	}
	kinds := make(map[compiler.HandleKind]struct{})
	for _, spelling := range spellings {
		ty := fieldType(t, testutil.TypeHandle(testutil.HandleSubtype(spelling)))
		kind := ty.(compiler.HandleType).Subtype
		testutil.ExpectEq(t, spelling, kind.String())
		kinds[kind] = struct{}{}
	}
	testutil.ExpectEq(t, len(spellings), len(kinds))
}

func TestStringTypes(t *testing.T) {
	t.Parallel()

	str := fieldType(t, testutil.TypeStr()).(compiler.StrType)
	testutil.ExpectTrue(t, str.Size == nil)
	testutil.ExpectFalse(t, str.Nullable)

	str = fieldType(t, testutil.TypeStr(
		testutil.SizeBound("32"), testutil.Reference())).(compiler.StrType)
	testutil.ExpectEq(t, compiler.Constant("32"), *str.Size)
	testutil.ExpectTrue(t, str.Nullable)
}

func TestVectorTypes(t *testing.T) {
	t.Parallel()

	vec := fieldType(t, testutil.TypeVector(testutil.Prim("uint8"),
		testutil.SizeBound("16"), testutil.Reference())).(compiler.VectorType)
	testutil.ExpectEq(t, compiler.UInt8, vec.Elem.(compiler.PrimitiveType))
	testutil.ExpectEq(t, compiler.Constant("16"), *vec.Size)
	testutil.ExpectTrue(t, vec.Nullable)
}

func TestArrayTypes(t *testing.T) {
	t.Parallel()

	arr := fieldType(t,
		testutil.TypeArray(testutil.Prim("uint8"), "4")).(compiler.ArrayType)
	testutil.ExpectEq(t, compiler.UInt8, arr.Elem.(compiler.PrimitiveType))
	testutil.ExpectEq(t, compiler.Constant("4"), arr.Size)

	// Arrays require a size, unlike vectors.
	err := fieldTypeErr(t,
		syntax.NewNode(syntax.RuleArrayType, testutil.Prim("uint8")))
	testutil.ExpectErrCode(t, compiler.CodeUnexpectedToken, err)
}

func TestIdentifierTypes(t *testing.T) {
	t.Parallel()

	id := fieldType(t, testutil.TypeIdentRef("example.Point")).(compiler.IdentType)
	testutil.ExpectEq(t, compiler.Ident{Namespace: "example", Name: "Point"}, id.Ident)
	testutil.ExpectTrue(t, id.Reference)
}

func TestEqualTypes(t *testing.T) {
	t.Parallel()

	size := compiler.Constant("8")
	testutil.ExpectTrue(t, compiler.EqualTypes(compiler.Int32, compiler.Int32))
	testutil.ExpectFalse(t, compiler.EqualTypes(compiler.Int32, compiler.UInt32))
	testutil.ExpectTrue(t, compiler.EqualTypes(compiler.StrType{}, compiler.StrType{}))
	testutil.ExpectFalse(t, compiler.EqualTypes(
		compiler.StrType{}, compiler.StrType{Size: &size}))
	testutil.ExpectTrue(t, compiler.EqualTypes(
		compiler.VectorType{Elem: compiler.Int8, Size: &size},
		compiler.VectorType{Elem: compiler.Int8, Size: &size}))
	testutil.ExpectFalse(t, compiler.EqualTypes(
		compiler.VectorType{Elem: compiler.Int8},
		compiler.VectorType{Elem: compiler.Int16}))
	testutil.ExpectTrue(t, compiler.EqualTypes(compiler.StructType{}, compiler.StructType{}))
	testutil.ExpectFalse(t, compiler.EqualTypes(compiler.StructType{}, compiler.UnionType{}))
	testutil.ExpectTrue(t, compiler.EqualTypes(
		compiler.IdentType{Ident: compiler.Ident{Name: "Color"}},
		compiler.IdentType{Ident: compiler.Ident{Name: "Color"}}))
}

func declAttrs(t *testing.T, attrBlock *syntax.Node) compiler.Attrs {
	t.Helper()
	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("S", attrBlock),
	))
	testutil.AssertNoError(t, err)
	attrs, ok := program.AttrsOf(compiler.ParseIdent("example.S"))
	testutil.ExpectTrue(t, ok)
	return attrs
}

func TestDocCommentsConcatenate(t *testing.T) {
	t.Parallel()

	attrs := declAttrs(t, testutil.AttrBlock(
		testutil.DocComment("/// A structure.\n"),
		testutil.AttrList(`[Layout="ddk-protocol", Derive]`),
		testutil.DocComment("/// Second line.\n"),
	))

	val, ok := attrs.Get("Layout")
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "ddk-protocol", val)
	testutil.ExpectTrue(t, attrs.Has("Derive"))

	doc, ok := attrs.Doc()
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, " A structure.\n Second line.\n", doc)

	// The doc entry is appended last.
	testutil.ExpectEq(t, "Doc", attrs[len(attrs)-1].Key)
}

func TestAttrDuplicateKeys(t *testing.T) {
	t.Parallel()

	attrs := declAttrs(t, testutil.AttrBlock(
		testutil.AttrList(`[Key="first", Key="second"]`)))
	testutil.ExpectEq(t, 2, len(attrs))

	val, _ := attrs.Get("Key")
	testutil.ExpectEq(t, "first", val)
}

func TestAttrValueQuoting(t *testing.T) {
	t.Parallel()

	// Only the single surrounding quote pair is stripped.
	attrs := declAttrs(t, testutil.AttrBlock(
		testutil.AttrList(`[Plain="v", Empty="", Quoted=""x""]`)))

	val, _ := attrs.Get("Plain")
	testutil.ExpectEq(t, "v", val)
	val, _ = attrs.Get("Empty")
	testutil.ExpectEq(t, "", val)
	val, _ = attrs.Get("Quoted")
	testutil.ExpectEq(t, `"x"`, val)
}

func TestAttrsUnexpectedChild(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("S",
			testutil.AttrBlock(syntax.NewToken(syntax.RuleIdent, "x"))),
	))
	testutil.ExpectErrCode(t, compiler.CodeUnexpectedToken, err)
}
