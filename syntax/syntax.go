// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package syntax defines the tagged syntax-tree contract between a
// grammar-level parser and the semantic compiler.
//
// A parser produces a tree of nodes, each tagged with the grammar rule it
// matched. Leaf nodes carry the matched source text verbatim; interior nodes
// carry an ordered list of children. The compiler dispatches on tags only and
// never re-tokenizes text.
package syntax

// Rule identifies the grammar rule a node was produced by.
type Rule uint8

const (
	RuleInvalid Rule = iota

	RuleFile
	RuleLibraryHeader
	RuleUsing
	RuleUsingDecl

	RuleStructDeclaration
	RuleUnionDeclaration
	RuleEnumDeclaration
	RuleInterfaceDeclaration
	RuleConstDeclaration

	RuleAttributes
	RuleDocComment
	RuleAttributeList

	RuleIdent
	RuleCompoundIdent

	RulePrimitiveType
	RuleHandleType
	RuleHandleSubtype
	RuleArrayType
	RuleIdentifierType
	RuleStringType
	RuleVectorType
	RuleReference

	RuleConstant

	RuleStructField
	RuleUnionField
	RuleEnumVariant
	RuleMethod
	RuleParameterList
	RuleParameter
)

var ruleNames = map[Rule]string{
	RuleFile:                 "file",
	RuleLibraryHeader:        "library_header",
	RuleUsing:                "using",
	RuleUsingDecl:            "using_decl",
	RuleStructDeclaration:    "struct_declaration",
	RuleUnionDeclaration:     "union_declaration",
	RuleEnumDeclaration:      "enum_declaration",
	RuleInterfaceDeclaration: "interface_declaration",
	RuleConstDeclaration:     "const_declaration",
	RuleAttributes:           "attributes",
	RuleDocComment:           "doc_comment",
	RuleAttributeList:        "attribute_list",
	RuleIdent:                "ident",
	RuleCompoundIdent:        "compound_ident",
	RulePrimitiveType:        "primitive_type",
	RuleHandleType:           "handle_type",
	RuleHandleSubtype:        "handle_subtype",
	RuleArrayType:            "array_type",
	RuleIdentifierType:       "identifier_type",
	RuleStringType:           "string_type",
	RuleVectorType:           "vector_type",
	RuleReference:            "reference",
	RuleConstant:             "constant",
	RuleStructField:          "struct_field",
	RuleUnionField:           "union_field",
	RuleEnumVariant:          "enum_variant",
	RuleMethod:               "method",
	RuleParameterList:        "parameter_list",
	RuleParameter:            "parameter",
}

var rulesByName = func() map[string]Rule {
	byName := make(map[string]Rule, len(ruleNames))
	for rule, name := range ruleNames {
		byName[name] = rule
	}
	return byName
}()

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return "invalid"
}

// RuleFromName returns the rule spelled name, or RuleInvalid.
func RuleFromName(name string) Rule {
	return rulesByName[name]
}

// Span locates a node within its source unit. Parsers that do not track
// positions leave it zero.
type Span struct {
	Start uint32
	Len   uint32
}

func (s Span) IsZero() bool {
	return s.Start == 0 && s.Len == 0
}

// Node is a single syntax-tree node. Exactly one of Text and Children is
// populated, depending on whether the rule is a leaf.
type Node struct {
	Rule     Rule
	Text     string
	Children []*Node
	Span     Span
}

// NewToken returns a leaf node carrying matched source text.
func NewToken(rule Rule, text string) *Node {
	return &Node{Rule: rule, Text: text}
}

// NewNode returns an interior node.
func NewNode(rule Rule, children ...*Node) *Node {
	return &Node{Rule: rule, Children: children}
}

// Child returns the i'th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
