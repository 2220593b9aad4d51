// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package testutil

import (
	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// Builders for hand-assembled syntax-tree units. Tests construct trees
// directly rather than depending on any particular grammar parser.

func File(children ...*syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.RuleFile, children...)
}

func Library(name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleLibraryHeader,
		syntax.NewToken(syntax.RuleCompoundIdent, name))
}

func Using(namespace string) *syntax.Node {
	return syntax.NewNode(syntax.RuleUsing,
		syntax.NewToken(syntax.RuleCompoundIdent, namespace))
}

func UsingAs(namespace, alias string) *syntax.Node {
	return syntax.NewNode(syntax.RuleUsing,
		syntax.NewToken(syntax.RuleCompoundIdent, namespace),
		syntax.NewToken(syntax.RuleIdent, alias))
}

func Alias(to, from string) *syntax.Node {
	return syntax.NewNode(syntax.RuleUsingDecl,
		syntax.NewToken(syntax.RuleCompoundIdent, to),
		syntax.NewToken(syntax.RuleCompoundIdent, from))
}

func Struct(name string, members ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{
		syntax.NewToken(syntax.RuleIdent, name),
	}, members...)
	return syntax.NewNode(syntax.RuleStructDeclaration, children...)
}

func StructField(ty *syntax.Node, name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleStructField,
		ty, syntax.NewToken(syntax.RuleIdent, name))
}

func StructFieldDefault(ty *syntax.Node, name, value string) *syntax.Node {
	return syntax.NewNode(syntax.RuleStructField,
		ty,
		syntax.NewToken(syntax.RuleIdent, name),
		syntax.NewToken(syntax.RuleConstant, value))
}

func Union(name string, members ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{
		syntax.NewToken(syntax.RuleIdent, name),
	}, members...)
	return syntax.NewNode(syntax.RuleUnionDeclaration, children...)
}

func UnionField(ty *syntax.Node, name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleUnionField,
		ty, syntax.NewToken(syntax.RuleIdent, name))
}

func Enum(name string, members ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{
		syntax.NewToken(syntax.RuleIdent, name),
	}, members...)
	return syntax.NewNode(syntax.RuleEnumDeclaration, children...)
}

func EnumVariant(name, value string) *syntax.Node {
	return syntax.NewNode(syntax.RuleEnumVariant,
		syntax.NewToken(syntax.RuleIdent, name),
		syntax.NewToken(syntax.RuleConstant, value))
}

func Interface(name string, members ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{
		syntax.NewToken(syntax.RuleIdent, name),
	}, members...)
	return syntax.NewNode(syntax.RuleInterfaceDeclaration, children...)
}

func Method(name string, paramLists ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{
		syntax.NewToken(syntax.RuleIdent, name),
	}, paramLists...)
	return syntax.NewNode(syntax.RuleMethod, children...)
}

func Params(params ...*syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.RuleParameterList, params...)
}

func Param(ty *syntax.Node, name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleParameter,
		ty, syntax.NewToken(syntax.RuleIdent, name))
}

func Const(ty *syntax.Node, name, value string) *syntax.Node {
	return syntax.NewNode(syntax.RuleConstDeclaration,
		ty,
		syntax.NewToken(syntax.RuleIdent, name),
		syntax.NewToken(syntax.RuleConstant, value))
}

func Prim(spelling string) *syntax.Node {
	return syntax.NewToken(syntax.RulePrimitiveType, spelling)
}

func TypeIdent(name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleIdentifierType,
		syntax.NewToken(syntax.RuleCompoundIdent, name))
}

func TypeIdentRef(name string) *syntax.Node {
	return syntax.NewNode(syntax.RuleIdentifierType,
		syntax.NewToken(syntax.RuleCompoundIdent, name),
		syntax.NewNode(syntax.RuleReference))
}

func TypeStr(extras ...*syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.RuleStringType, extras...)
}

func TypeVector(elem *syntax.Node, extras ...*syntax.Node) *syntax.Node {
	children := append([]*syntax.Node{elem}, extras...)
	return syntax.NewNode(syntax.RuleVectorType, children...)
}

func TypeArray(elem *syntax.Node, size string) *syntax.Node {
	return syntax.NewNode(syntax.RuleArrayType,
		elem, syntax.NewToken(syntax.RuleConstant, size))
}

func TypeHandle(children ...*syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.RuleHandleType, children...)
}

func HandleSubtype(name string) *syntax.Node {
	return syntax.NewToken(syntax.RuleHandleSubtype, name)
}

func Reference() *syntax.Node {
	return syntax.NewNode(syntax.RuleReference)
}

func SizeBound(value string) *syntax.Node {
	return syntax.NewToken(syntax.RuleConstant, value)
}

func AttrBlock(children ...*syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.RuleAttributes, children...)
}

func AttrList(text string) *syntax.Node {
	return syntax.NewToken(syntax.RuleAttributeList, text)
}

func DocComment(text string) *syntax.Node {
	return syntax.NewToken(syntax.RuleDocComment, text)
}
