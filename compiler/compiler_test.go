// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler_test

import (
	"testing"

	"github.com/vsrinivas/fuchsia-sub037/compiler"
	"github.com/vsrinivas/fuchsia-sub037/internal/testutil"
)

func TestEmptyLibrary(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(testutil.File(testutil.Library("example")))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "example", program.Primary)
	testutil.ExpectEq(t, 1, len(program.Namespaces))
	testutil.ExpectEq(t, 0, len(program.Namespaces[0].Decls))
}

func TestSecondPrimaryNamespaceRejected(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(
		testutil.File(testutil.Library("example")),
		testutil.File(testutil.Library("other")),
	)
	testutil.ExpectErrCode(t, compiler.CodeAlreadyPrimaryNamespace, err)
}

func TestMultiFileSingleLibrary(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(
		testutil.File(testutil.Library("example"),
			testutil.Struct("A")),
		testutil.File(testutil.Library("example"),
			testutil.Struct("B")),
	)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(program.Namespaces))
	testutil.ExpectEq(t, 2, len(program.Namespaces[0].Decls))
}

func TestDeclOrderPreserved(t *testing.T) {
	t.Parallel()

	// B depends on A but is declared first; storage order must not follow
	// dependency order.
	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("B",
			testutil.StructField(testutil.TypeIdent("A"), "a")),
		testutil.Struct("A"),
		testutil.Const(testutil.Prim("uint32"), "kMax", "10"),
	))
	testutil.AssertNoError(t, err)

	decls := program.Namespaces[0].Decls
	var names []string
	for _, decl := range decls {
		names = append(names, compiler.DeclName(decl).Name)
	}
	testutil.ExpectSliceEq(t, []string{"B", "A", "kMax"}, names)
}

func TestUsingRequiresEarlierUnit(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Using("ddk"),
	))
	testutil.ExpectErrCode(t, compiler.CodeUnImported, err)

	_, err = compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Using("example"),
	))
	testutil.ExpectNoError(t, err)
}

func TestUsingRenameNotSupported(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.UsingAs("example", "ex"),
	))
	testutil.ExpectErrCode(t, compiler.CodeNotYetSupported, err)
}

func TestAliasRecordedInNamespace(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("Point"),
		testutil.Alias("Location", "Point"),
	))
	testutil.AssertNoError(t, err)

	decls := program.Namespaces[0].Decls
	testutil.ExpectEq(t, 2, len(decls))
	alias, ok := decls[1].(*compiler.AliasDecl)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, "Location", alias.To.Name)
	testutil.ExpectEq(t, "Point", alias.From.Name)
}

func TestDeclBeforeHeaderRejected(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(testutil.File(testutil.Struct("A")))
	testutil.ExpectErrCode(t, compiler.CodeUnexpectedToken, err)
}

func TestStructParsing(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("Point",
			testutil.AttrBlock(testutil.AttrList(`[Packed]`)),
			testutil.StructField(testutil.Prim("int32"), "x"),
			testutil.StructFieldDefault(testutil.Prim("int32"), "y", "7")),
	))
	testutil.AssertNoError(t, err)

	decl := program.Namespaces[0].Decls[0].(*compiler.StructDecl)
	testutil.ExpectEq(t, "Point", decl.Name.Name)
	testutil.ExpectTrue(t, decl.Attrs.Has("Packed"))
	testutil.ExpectEq(t, 2, len(decl.Fields))
	testutil.ExpectEq(t, "x", decl.Fields[0].Ident.Name)
	testutil.ExpectTrue(t, decl.Fields[0].Val == nil)
	testutil.ExpectEq(t, compiler.Constant("7"), *decl.Fields[1].Val)
}

func TestEnumDefaultsToUint32(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Enum("Color",
			testutil.EnumVariant("Red", "1")),
		testutil.Enum("Wide",
			testutil.Prim("int64"),
			testutil.EnumVariant("Deep", "-9000000000")),
	))
	testutil.AssertNoError(t, err)

	color := program.Namespaces[0].Decls[0].(*compiler.EnumDecl)
	testutil.ExpectEq(t, compiler.UInt32, color.Type.(compiler.PrimitiveType))

	wide := program.Namespaces[0].Decls[1].(*compiler.EnumDecl)
	testutil.ExpectEq(t, compiler.Int64, wide.Type.(compiler.PrimitiveType))
}

func TestInterfaceParsing(t *testing.T) {
	t.Parallel()

	program, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Interface("Device",
			testutil.Method("Bind",
				testutil.Params(testutil.Param(testutil.TypeStr(), "name")),
				testutil.Params(testutil.Param(testutil.Prim("int32"), "status"))),
			testutil.Method("Release",
				testutil.Params())),
	))
	testutil.AssertNoError(t, err)

	decl := program.Namespaces[0].Decls[0].(*compiler.InterfaceDecl)
	testutil.ExpectEq(t, 2, len(decl.Methods))

	bind := decl.Methods[0]
	testutil.ExpectEq(t, "Bind", bind.Name)
	testutil.ExpectEq(t, 1, len(bind.In))
	testutil.ExpectEq(t, "name", bind.In[0].Name)
	testutil.ExpectEq(t, 1, len(bind.Out))
	testutil.ExpectEq(t, "status", bind.Out[0].Name)

	release := decl.Methods[1]
	testutil.ExpectEq(t, 0, len(release.In))
	testutil.ExpectEq(t, 0, len(release.Out))
}

func TestUnexpectedDeclChild(t *testing.T) {
	t.Parallel()

	_, err := compiler.Compile(testutil.File(
		testutil.Library("example"),
		testutil.Struct("Point",
			testutil.EnumVariant("Red", "1")),
	))
	testutil.ExpectErrCode(t, compiler.CodeUnexpectedToken, err)
}
