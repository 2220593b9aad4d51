// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

import (
	"strings"
)

// Ident is a possibly namespace-qualified name. The namespace is empty for
// bare names.
type Ident struct {
	Namespace string
	Name      string
}

// ParseIdent splits a raw dotted name on its last dot. Any string is
// representable; a string with no dot has no namespace.
func ParseIdent(raw string) Ident {
	if i := strings.LastIndexByte(raw, '.'); i >= 0 {
		return Ident{Namespace: raw[:i], Name: raw[i+1:]}
	}
	return Ident{Name: raw}
}

func (id Ident) String() string {
	if id.Namespace == "" {
		return id.Name
	}
	return id.Namespace + "." + id.Name
}

// IsBaseType reports whether the identifier names the kernel status type,
// which is always primitive regardless of declaration lookup.
func (id Ident) IsBaseType() bool {
	return id.Namespace == "zx" && id.Name == "status"
}

// Attr is a single key/value attribute. HasVal distinguishes a bare key from
// a key with an empty value.
type Attr struct {
	Key    string
	Val    string
	HasVal bool
}

// Attrs is the ordered attribute table of a declaration or member. Duplicate
// keys are permitted; lookups return the first match.
type Attrs []Attr

// Get returns the value of the first attribute with the given key.
func (attrs Attrs) Get(key string) (string, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Has reports whether any attribute has the given key.
func (attrs Attrs) Has(key string) bool {
	_, ok := attrs.Get(key)
	return ok
}

// Doc returns the concatenated doc comment, if any.
func (attrs Attrs) Doc() (string, bool) {
	return attrs.Get(docAttrKey)
}

const docAttrKey = "Doc"

// Constant holds the unparsed literal text of a constant expression exactly
// as it appeared in source. Interpretation is deferred until the declared
// type is known.
type Constant string

func (c Constant) String() string {
	return string(c)
}

type StructField struct {
	Attrs Attrs
	Type  Type
	Ident Ident
	Val   *Constant
}

type UnionField struct {
	Attrs Attrs
	Type  Type
	Ident Ident
}

type EnumVariant struct {
	Attrs Attrs
	Name  string
	Value Constant
}

type Param struct {
	Name string
	Type Type
}

type Method struct {
	Attrs Attrs
	Name  string
	In    []Param
	Out   []Param
}

// Decl is a top-level declaration. The variants are *StructDecl, *UnionDecl,
// *EnumDecl, *InterfaceDecl, *ConstDecl, and *AliasDecl. Declarations are
// compared by identity: the dependency graph keys maps and sets by the
// declaration pointer, never by structural equality.
type Decl interface {
	isDecl()
}

type StructDecl struct {
	Attrs  Attrs
	Name   Ident
	Fields []StructField
}

type UnionDecl struct {
	Attrs  Attrs
	Name   Ident
	Fields []UnionField
}

type EnumDecl struct {
	Attrs Attrs
	Name  Ident
	// Type is the underlying representation, always an integer primitive.
	Type     Type
	Variants []EnumVariant
}

type InterfaceDecl struct {
	Attrs   Attrs
	Name    Ident
	Methods []Method
}

type ConstDecl struct {
	Attrs Attrs
	Name  Ident
	Type  Type
	Value Constant
}

// AliasDecl declares To as a synonym resolving, possibly through further
// aliases, to From.
type AliasDecl struct {
	To   Ident
	From Ident
}

func (*StructDecl) isDecl()    {}
func (*UnionDecl) isDecl()     {}
func (*EnumDecl) isDecl()      {}
func (*InterfaceDecl) isDecl() {}
func (*ConstDecl) isDecl()     {}
func (*AliasDecl) isDecl()     {}

// DeclName returns the name a declaration is found under. For aliases this is
// the synonym being introduced.
func DeclName(decl Decl) Ident {
	switch decl := decl.(type) {
	case *StructDecl:
		return decl.Name
	case *UnionDecl:
		return decl.Name
	case *EnumDecl:
		return decl.Name
	case *InterfaceDecl:
		return decl.Name
	case *ConstDecl:
		return decl.Name
	case *AliasDecl:
		return decl.To
	default:
		panic("unreachable")
	}
}

// Namespace is an ordered list of declarations under one library name.
type Namespace struct {
	Name  string
	Decls []Decl
}

// Program is the validated output of Compile. Namespace order and the
// declaration order within each namespace match the input exactly; downstream
// consumers emit declarations in source order.
type Program struct {
	// Primary is the name of the entry namespace, the one whose library
	// header was first encountered.
	Primary    string
	Namespaces []*Namespace
}

// LookupNamespace returns the namespace with the given name, or nil.
func (p *Program) LookupNamespace(name string) *Namespace {
	for _, ns := range p.Namespaces {
		if ns.Name == name {
			return ns
		}
	}
	return nil
}
