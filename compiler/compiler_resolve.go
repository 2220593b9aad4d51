// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

// Builtin spellings bypass namespace lookup entirely; a builtin name is
// global and shadows any declaration with the same name.
var builtinTypeSpellings = map[string]Type{
	"voidptr": Voidptr,
	"usize":   USize,
	"bool":    Bool,
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"uint8":   UInt8,
	"uint16":  UInt16,
	"uint32":  UInt32,
	"uint64":  UInt64,
	"float32": Float32,
	"float64": Float64,
	"string":  StrType{},
}

// TypeOf resolves an identifier to the type it denotes, scanning the primary
// namespace's declarations in order. An enum variant name resolves to a
// reference to its enum: the type of an enum value is the enum itself.
// Aliases are followed transitively. A constant name resolves to the
// constant's declared type.
func (p *Program) TypeOf(id Ident) (Type, error) {
	if ty, ok := builtinTypeSpellings[id.Name]; ok {
		return ty, nil
	}
	if id.IsBaseType() {
		return Int32, nil
	}
	if ns := p.LookupNamespace(p.Primary); ns != nil {
		for _, decl := range ns.Decls {
			switch decl := decl.(type) {
			case *InterfaceDecl:
				if decl.Name.Name == id.Name {
					return InterfaceType{}, nil
				}
			case *StructDecl:
				if decl.Name.Name == id.Name {
					return StructType{}, nil
				}
			case *UnionDecl:
				if decl.Name.Name == id.Name {
					return UnionType{}, nil
				}
			case *EnumDecl:
				if decl.Name.Name == id.Name {
					return EnumType{}, nil
				}
				for _, variant := range decl.Variants {
					if variant.Name == id.Name {
						return IdentType{Ident: decl.Name}, nil
					}
				}
			case *AliasDecl:
				if decl.To.Name == id.Name {
					return p.TypeOf(decl.From)
				}
			case *ConstDecl:
				if decl.Name.Name == id.Name {
					return decl.Type, nil
				}
			}
		}
	}
	return nil, errUnresolvedSymbol(id)
}

// AttrsOf returns the attribute table of the declaration the identifier
// names. Unlike TypeOf, the lookup requires an explicit namespace qualifier
// and a miss is not fatal. Aliases are followed as in TypeOf.
func (p *Program) AttrsOf(id Ident) (Attrs, bool) {
	if id.Namespace == "" {
		return nil, false
	}
	ns := p.LookupNamespace(id.Namespace)
	if ns == nil {
		return nil, false
	}
	for _, decl := range ns.Decls {
		switch decl := decl.(type) {
		case *StructDecl:
			if decl.Name.Name == id.Name {
				return decl.Attrs, true
			}
		case *UnionDecl:
			if decl.Name.Name == id.Name {
				return decl.Attrs, true
			}
		case *EnumDecl:
			if decl.Name.Name == id.Name {
				return decl.Attrs, true
			}
		case *InterfaceDecl:
			if decl.Name.Name == id.Name {
				return decl.Attrs, true
			}
		case *ConstDecl:
			if decl.Name.Name == id.Name {
				return decl.Attrs, true
			}
		case *AliasDecl:
			if decl.To.Name == id.Name {
				target := decl.From
				if target.Namespace == "" {
					target.Namespace = id.Namespace
				}
				return p.AttrsOf(target)
			}
		}
	}
	return nil, false
}

// lookupDecl finds the declaration an identifier denotes, following alias
// chains. Unqualified identifiers are searched in the primary namespace.
func (p *Program) lookupDecl(id Ident) (Decl, error) {
	nsName := id.Namespace
	if nsName == "" {
		nsName = p.Primary
	}
	ns := p.LookupNamespace(nsName)
	if ns == nil {
		return nil, errUnresolvedSymbol(id)
	}
	for _, decl := range ns.Decls {
		if alias, ok := decl.(*AliasDecl); ok {
			if alias.To.Name == id.Name {
				target := alias.From
				// An alias target that is a builtin or the base type denotes
				// no declaration.
				if _, builtin := builtinTypeSpellings[target.Name]; builtin {
					return nil, nil
				}
				if target.Namespace == "" {
					target.Namespace = nsName
				}
				if target.IsBaseType() {
					return nil, nil
				}
				return p.lookupDecl(target)
			}
			continue
		}
		if DeclName(decl).Name == id.Name {
			return decl, nil
		}
	}
	return nil, errUnresolvedSymbol(id)
}
