// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

// typeToDecl finds the declaration whose full definition a type occurrence
// requires, or nil when the occurrence is forward-declarable: reference
// identifiers and handles, nullable vectors, strings, primitives, and base
// types create no ordering requirement.
func (p *Program) typeToDecl(ty Type) (Decl, error) {
	switch ty := ty.(type) {
	case ArrayType:
		return p.typeToDecl(ty.Elem)
	case VectorType:
		if ty.Nullable {
			return nil, nil
		}
		return p.typeToDecl(ty.Elem)
	case IdentType:
		if ty.Reference || ty.Ident.IsBaseType() {
			return nil, nil
		}
		if _, builtin := builtinTypeSpellings[ty.Ident.Name]; builtin {
			return nil, nil
		}
		return p.lookupDecl(ty.Ident)
	}
	return nil, nil
}

// dependencies collects the set of declarations whose definitions must
// precede decl's. Enums and constants depend on nothing: an enum's
// representation is always primitive, and constant dependency tracking is
// deferred. Self-edges are excluded; by-value self-containment cannot be
// parsed in the first place and must not read as a cycle.
func (p *Program) dependencies(decl Decl) ([]Decl, error) {
	seen := make(map[Decl]struct{})
	var deps []Decl
	add := func(ty Type) error {
		dep, err := p.typeToDecl(ty)
		if err != nil {
			return err
		}
		if dep == nil || dep == decl {
			return nil
		}
		if _, dup := seen[dep]; dup {
			return nil
		}
		seen[dep] = struct{}{}
		deps = append(deps, dep)
		return nil
	}

	switch decl := decl.(type) {
	case *StructDecl:
		for _, field := range decl.Fields {
			if err := add(field.Type); err != nil {
				return nil, err
			}
		}
	case *UnionDecl:
		for _, field := range decl.Fields {
			if err := add(field.Type); err != nil {
				return nil, err
			}
		}
	case *InterfaceDecl:
		for _, method := range decl.Methods {
			for _, param := range method.In {
				if err := add(param.Type); err != nil {
					return nil, err
				}
			}
			for _, param := range method.Out {
				if err := add(param.Type); err != nil {
					return nil, err
				}
			}
		}
	case *AliasDecl:
		if err := add(IdentType{Ident: decl.From}); err != nil {
			return nil, err
		}
	case *EnumDecl, *ConstDecl:
	}
	return deps, nil
}

// validateDeclDeps rejects the program if the value-containment edges among
// declarations admit no linear order. Kahn's algorithm over the full
// declaration set, keyed by declaration identity.
func (p *Program) validateDeclDeps() error {
	var decls []Decl
	for _, ns := range p.Namespaces {
		decls = append(decls, ns.Decls...)
	}

	degrees := make(map[Decl]int, len(decls))
	dependents := make(map[Decl][]Decl, len(decls))
	for _, decl := range decls {
		deps, err := p.dependencies(decl)
		if err != nil {
			return err
		}
		degrees[decl] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], decl)
		}
	}

	var queue []Decl
	for _, decl := range decls {
		if degrees[decl] == 0 {
			queue = append(queue, decl)
		}
	}

	sorted := 0
	for len(queue) > 0 {
		decl := queue[0]
		queue = queue[1:]
		sorted++
		for _, dependent := range dependents[decl] {
			degrees[dependent]--
			if degrees[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if sorted < len(decls) {
		return errInvalidDeps()
	}
	return nil
}
