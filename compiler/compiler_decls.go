// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

import (
	"strings"

	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// attrsFromNode extracts the attribute table of a declaration or member.
// Doc comments concatenate in encounter order into a single trailing "Doc"
// entry. Bracketed lists split on commas into key or key=value entries.
// Duplicate keys are kept; lookup returns the first.
func attrsFromNode(node *syntax.Node) (Attrs, error) {
	var attrs Attrs
	var doc strings.Builder
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleDocComment:
			text := child.Text
			if len(text) >= 3 {
				// Strip the '///' marker.
				text = text[3:]
			}
			doc.WriteString(text)
		case syntax.RuleAttributeList:
			list := strings.TrimSuffix(strings.TrimPrefix(child.Text, "["), "]")
			for _, item := range strings.Split(list, ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				if key, val, ok := strings.Cut(item, "="); ok {
					// One surrounding quote pair; inner quotes survive.
					val = strings.TrimSpace(val)
					val = strings.TrimSuffix(strings.TrimPrefix(val, `"`), `"`)
					attrs = append(attrs, Attr{
						Key:    strings.TrimSpace(key),
						Val:    val,
						HasVal: true,
					})
				} else {
					attrs = append(attrs, Attr{Key: item})
				}
			}
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	if doc.Len() > 0 {
		attrs = append(attrs, Attr{Key: docAttrKey, Val: doc.String(), HasVal: true})
	}
	return attrs, nil
}

func isDeclRule(rule syntax.Rule) bool {
	switch rule {
	case syntax.RuleStructDeclaration,
		syntax.RuleUnionDeclaration,
		syntax.RuleEnumDeclaration,
		syntax.RuleInterfaceDeclaration,
		syntax.RuleConstDeclaration:
		return true
	}
	return false
}

func declFromNode(node *syntax.Node) (Decl, error) {
	switch node.Rule {
	case syntax.RuleStructDeclaration:
		return structFromNode(node)
	case syntax.RuleUnionDeclaration:
		return unionFromNode(node)
	case syntax.RuleEnumDeclaration:
		return enumFromNode(node)
	case syntax.RuleInterfaceDeclaration:
		return interfaceFromNode(node)
	case syntax.RuleConstDeclaration:
		return constFromNode(node)
	}
	return nil, errUnexpectedToken(node)
}

func structFromNode(node *syntax.Node) (*StructDecl, error) {
	decl := &StructDecl{}
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Attrs = attrs
		case syntax.RuleIdent:
			decl.Name = ParseIdent(child.Text)
		case syntax.RuleStructField:
			field, err := structFieldFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Fields = append(decl.Fields, field)
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	return decl, nil
}

func structFieldFromNode(node *syntax.Node) (StructField, error) {
	var field StructField
	for _, child := range node.Children {
		switch {
		case child.Rule == syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return field, err
			}
			field.Attrs = attrs
		case isTypeRule(child.Rule):
			ty, err := typeFromNode(child)
			if err != nil {
				return field, err
			}
			field.Type = ty
		case child.Rule == syntax.RuleIdent:
			field.Ident = ParseIdent(child.Text)
		case child.Rule == syntax.RuleConstant:
			val := Constant(child.Text)
			field.Val = &val
		default:
			return field, errUnexpectedToken(child)
		}
	}
	return field, nil
}

func unionFromNode(node *syntax.Node) (*UnionDecl, error) {
	decl := &UnionDecl{}
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Attrs = attrs
		case syntax.RuleIdent:
			decl.Name = ParseIdent(child.Text)
		case syntax.RuleUnionField:
			field, err := unionFieldFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Fields = append(decl.Fields, field)
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	return decl, nil
}

func unionFieldFromNode(node *syntax.Node) (UnionField, error) {
	var field UnionField
	for _, child := range node.Children {
		switch {
		case child.Rule == syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return field, err
			}
			field.Attrs = attrs
		case isTypeRule(child.Rule):
			ty, err := typeFromNode(child)
			if err != nil {
				return field, err
			}
			field.Type = ty
		case child.Rule == syntax.RuleIdent:
			field.Ident = ParseIdent(child.Text)
		default:
			return field, errUnexpectedToken(child)
		}
	}
	return field, nil
}

func enumFromNode(node *syntax.Node) (*EnumDecl, error) {
	// The underlying representation defaults to uint32 when the declaration
	// does not spell one.
	decl := &EnumDecl{Type: UInt32}
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Attrs = attrs
		case syntax.RuleIdent:
			decl.Name = ParseIdent(child.Text)
		case syntax.RulePrimitiveType:
			ty, err := typeFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Type = ty
		case syntax.RuleEnumVariant:
			variant, err := enumVariantFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Variants = append(decl.Variants, variant)
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	return decl, nil
}

func enumVariantFromNode(node *syntax.Node) (EnumVariant, error) {
	var variant EnumVariant
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return variant, err
			}
			variant.Attrs = attrs
		case syntax.RuleIdent:
			variant.Name = child.Text
		case syntax.RuleConstant:
			variant.Value = Constant(child.Text)
		default:
			return variant, errUnexpectedToken(child)
		}
	}
	return variant, nil
}

func interfaceFromNode(node *syntax.Node) (*InterfaceDecl, error) {
	decl := &InterfaceDecl{}
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Attrs = attrs
		case syntax.RuleIdent:
			decl.Name = ParseIdent(child.Text)
		case syntax.RuleMethod:
			method, err := methodFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Methods = append(decl.Methods, method)
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	return decl, nil
}

// methodFromNode splits a method node into a name, an in-parameter list, and
// an optional out-parameter list.
func methodFromNode(node *syntax.Node) (Method, error) {
	var method Method
	sawIn := false
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return method, err
			}
			method.Attrs = attrs
		case syntax.RuleIdent:
			method.Name = child.Text
		case syntax.RuleParameterList:
			params, err := paramsFromNode(child)
			if err != nil {
				return method, err
			}
			if !sawIn {
				method.In = params
				sawIn = true
			} else {
				method.Out = params
			}
		default:
			return method, errUnexpectedToken(child)
		}
	}
	return method, nil
}

func paramsFromNode(node *syntax.Node) ([]Param, error) {
	var params []Param
	for _, child := range node.Children {
		if child.Rule != syntax.RuleParameter {
			return nil, errUnexpectedToken(child)
		}
		var param Param
		for _, part := range child.Children {
			switch {
			case isTypeRule(part.Rule):
				ty, err := typeFromNode(part)
				if err != nil {
					return nil, err
				}
				param.Type = ty
			case part.Rule == syntax.RuleIdent:
				param.Name = part.Text
			default:
				return nil, errUnexpectedToken(part)
			}
		}
		params = append(params, param)
	}
	return params, nil
}

func constFromNode(node *syntax.Node) (*ConstDecl, error) {
	decl := &ConstDecl{}
	for _, child := range node.Children {
		switch child.Rule {
		case syntax.RuleAttributes:
			attrs, err := attrsFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Attrs = attrs
		case syntax.RulePrimitiveType, syntax.RuleIdentifierType, syntax.RuleStringType:
			ty, err := typeFromNode(child)
			if err != nil {
				return nil, err
			}
			decl.Type = ty
		case syntax.RuleIdent:
			decl.Name = ParseIdent(child.Text)
		case syntax.RuleConstant:
			decl.Value = Constant(child.Text)
		default:
			return nil, errUnexpectedToken(child)
		}
	}
	return decl, nil
}
