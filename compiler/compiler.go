// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package compiler builds a validated program from parsed syntax-tree units.
//
// Compile assembles the declarations of one or more units into namespaces,
// resolves every type reference against the declaration table, verifies that
// the declarations admit a cycle-free ordering by value containment, and
// checks constant literals against their declared types. The first error
// encountered rejects the whole input.
package compiler

import (
	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// Compile parses the given syntax-tree units into a single Program and
// validates it. Units are consumed in order; the first library header
// encountered names the primary namespace, and later units must declare the
// same library. The returned Program is immutable.
func Compile(units ...*syntax.Node) (*Program, error) {
	b := &programBuilder{
		program: &Program{},
		byName:  make(map[string]*Namespace),
	}
	for _, unit := range units {
		if err := b.addUnit(unit); err != nil {
			return nil, err
		}
	}
	if err := b.program.validateDeclDeps(); err != nil {
		return nil, err
	}
	if err := b.program.validateConstants(); err != nil {
		return nil, err
	}
	return b.program, nil
}

type programBuilder struct {
	program *Program
	byName  map[string]*Namespace
	current *Namespace
}

func (b *programBuilder) addUnit(unit *syntax.Node) error {
	if unit.Rule != syntax.RuleFile {
		return errUnexpectedToken(unit)
	}
	for _, child := range unit.Children {
		switch {
		case child.Rule == syntax.RuleLibraryHeader:
			if err := b.setNamespace(child); err != nil {
				return err
			}
		case child.Rule == syntax.RuleUsing:
			if err := b.addImport(child); err != nil {
				return err
			}
		case child.Rule == syntax.RuleUsingDecl:
			if err := b.addAlias(child); err != nil {
				return err
			}
		case isDeclRule(child.Rule):
			if b.current == nil {
				return errUnexpectedToken(child)
			}
			decl, err := declFromNode(child)
			if err != nil {
				return err
			}
			b.current.Decls = append(b.current.Decls, decl)
		default:
			return errUnexpectedToken(child)
		}
	}
	return nil
}

func (b *programBuilder) setNamespace(node *syntax.Node) error {
	nameNode := node.Child(0)
	if nameNode == nil || nameNode.Rule != syntax.RuleCompoundIdent {
		return errUnexpectedToken(node)
	}
	name := nameNode.Text
	if b.program.Primary == "" {
		b.program.Primary = name
	} else if b.program.Primary != name {
		return errAlreadyPrimaryNamespace(b.program.Primary, name)
	}
	b.current = b.namespace(name)
	return nil
}

func (b *programBuilder) namespace(name string) *Namespace {
	if ns, ok := b.byName[name]; ok {
		return ns
	}
	ns := &Namespace{Name: name}
	b.byName[name] = ns
	b.program.Namespaces = append(b.program.Namespaces, ns)
	return ns
}

// addImport handles a plain `using` import. The referenced namespace must
// have been supplied by an earlier unit; import renaming is unsupported.
func (b *programBuilder) addImport(node *syntax.Node) error {
	nameNode := node.Child(0)
	if nameNode == nil || nameNode.Rule != syntax.RuleCompoundIdent {
		return errUnexpectedToken(node)
	}
	for _, extra := range node.Children[1:] {
		if extra.Rule == syntax.RuleIdent {
			return errNotYetSupported("import renaming", extra.Span)
		}
		return errUnexpectedToken(extra)
	}
	if _, ok := b.byName[nameNode.Text]; !ok {
		return errUnImported(nameNode.Text, nameNode.Span)
	}
	return nil
}

// addAlias records a `using To = From` declaration in the current namespace.
func (b *programBuilder) addAlias(node *syntax.Node) error {
	if b.current == nil {
		return errUnexpectedToken(node)
	}
	toNode := node.Child(0)
	fromNode := node.Child(1)
	if toNode == nil || toNode.Rule != syntax.RuleCompoundIdent {
		return errUnexpectedToken(node)
	}
	if fromNode == nil || fromNode.Rule != syntax.RuleCompoundIdent {
		return errUnexpectedToken(node)
	}
	b.current.Decls = append(b.current.Decls, &AliasDecl{
		To:   ParseIdent(toNode.Text),
		From: ParseIdent(fromNode.Text),
	})
	return nil
}
