// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compiler

import (
	"github.com/vsrinivas/fuchsia-sub037/syntax"
)

// Type is the closed set of IDL type shapes. The variants are PrimitiveType,
// StrType, VectorType, ArrayType, HandleType, IdentType, and the four
// resolved-kind markers StructType, UnionType, EnumType, and InterfaceType.
type Type interface {
	isType()
}

// PrimitiveType is a fixed-layout scalar.
type PrimitiveType uint8

const (
	Voidptr PrimitiveType = iota
	USize
	Bool
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
)

// StrType is a byte string, optionally bounded and optionally nullable.
type StrType struct {
	Size     *Constant
	Nullable bool
}

// VectorType is a growable sequence. A nil Size means unbounded.
type VectorType struct {
	Elem     Type
	Size     *Constant
	Nullable bool
}

// ArrayType is a fixed-length sequence. The size is mandatory.
type ArrayType struct {
	Elem Type
	Size Constant
}

// HandleKind is the closed set of kernel object kinds a handle may refer to.
type HandleKind uint8

const (
	HandleHandle HandleKind = iota
	HandleProcess
	HandleThread
	HandleVmo
	HandleChannel
	HandleEvent
	HandlePort
	HandleInterrupt
	HandleLog
	HandleSocket
	HandleResource
	HandleEventPair
	HandleJob
	HandleVmar
	HandleFifo
	HandleGuest
	HandleTimer
	HandleBti
	HandleProfile
	HandleDebugLog
)

// HandleType is a kernel handle, optionally restricted to a subtype.
type HandleType struct {
	Subtype   HandleKind
	Reference bool
}

// IdentType is an unresolved reference to a user-defined type. Reference
// marks the occurrence as nullable/indirect: it does not require the
// referent's full layout and creates no declaration-ordering requirement.
type IdentType struct {
	Ident     Ident
	Reference bool
}

// StructType, UnionType, EnumType, and InterfaceType are the results of
// resolving an identifier against the declaration table. They carry no
// payload; the declaration itself is found separately by name.
type StructType struct{}
type UnionType struct{}
type EnumType struct{}
type InterfaceType struct{}

func (PrimitiveType) isType() {}
func (StrType) isType()       {}
func (VectorType) isType()    {}
func (ArrayType) isType()     {}
func (HandleType) isType()    {}
func (IdentType) isType()     {}
func (StructType) isType()    {}
func (UnionType) isType()     {}
func (EnumType) isType()      {}
func (InterfaceType) isType() {}

var primitiveSpellings = map[string]PrimitiveType{
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
}

var primitiveNames = func() map[PrimitiveType]string {
	names := make(map[PrimitiveType]string, len(primitiveSpellings))
	for spelling, prim := range primitiveSpellings {
		names[prim] = spelling
	}
	return names
}()

func (p PrimitiveType) String() string {
	return primitiveNames[p]
}

var handleSubtypes = map[string]HandleKind{
	"handle":    HandleHandle,
	"process":   HandleProcess,
	"thread":    HandleThread,
	"vmo":       HandleVmo,
	"channel":   HandleChannel,
	"event":     HandleEvent,
	"port":      HandlePort,
	"interrupt": HandleInterrupt,
	"log":       HandleLog,
	"socket":    HandleSocket,
	"resource":  HandleResource,
	"eventpair": HandleEventPair,
	"job":       HandleJob,
	"vmar":      HandleVmar,
	"fifo":      HandleFifo,
	"guest":     HandleGuest,
	"timer":     HandleTimer,
	"bti":       HandleBti,
	"profile":   HandleProfile,
	"debuglog":  HandleDebugLog,
}

var handleSubtypeNames = func() map[HandleKind]string {
	names := make(map[HandleKind]string, len(handleSubtypes))
	for spelling, kind := range handleSubtypes {
		names[kind] = spelling
	}
	return names
}()

func (k HandleKind) String() string {
	return handleSubtypeNames[k]
}

func isTypeRule(rule syntax.Rule) bool {
	switch rule {
	case syntax.RulePrimitiveType,
		syntax.RuleHandleType,
		syntax.RuleArrayType,
		syntax.RuleIdentifierType,
		syntax.RuleStringType,
		syntax.RuleVectorType:
		return true
	}
	return false
}

func typeFromNode(node *syntax.Node) (Type, error) {
	switch node.Rule {
	case syntax.RulePrimitiveType:
		prim, ok := primitiveSpellings[node.Text]
		if !ok {
			return nil, errUnrecognizedType(node.Text, node.Span)
		}
		return prim, nil

	case syntax.RuleHandleType:
		ty := HandleType{Subtype: HandleHandle}
		for _, child := range node.Children {
			switch child.Rule {
			case syntax.RuleHandleSubtype:
				subtype, ok := handleSubtypes[child.Text]
				if !ok {
					return nil, errUnrecognizedType(child.Text, child.Span)
				}
				ty.Subtype = subtype
			case syntax.RuleReference:
				ty.Reference = true
			default:
				return nil, errUnexpectedToken(child)
			}
		}
		return ty, nil

	case syntax.RuleArrayType:
		elemNode := node.Child(0)
		sizeNode := node.Child(1)
		if elemNode == nil || sizeNode == nil || sizeNode.Rule != syntax.RuleConstant {
			return nil, errUnexpectedToken(node)
		}
		elem, err := typeFromNode(elemNode)
		if err != nil {
			return nil, err
		}
		return ArrayType{Elem: elem, Size: Constant(sizeNode.Text)}, nil

	case syntax.RuleIdentifierType:
		nameNode := node.Child(0)
		if nameNode == nil || nameNode.Rule != syntax.RuleCompoundIdent {
			return nil, errUnexpectedToken(node)
		}
		ty := IdentType{Ident: ParseIdent(nameNode.Text)}
		for _, child := range node.Children[1:] {
			if child.Rule != syntax.RuleReference {
				return nil, errUnexpectedToken(child)
			}
			ty.Reference = true
		}
		return ty, nil

	case syntax.RuleStringType:
		ty := StrType{}
		for _, child := range node.Children {
			switch child.Rule {
			case syntax.RuleConstant:
				size := Constant(child.Text)
				ty.Size = &size
			case syntax.RuleReference:
				ty.Nullable = true
			default:
				return nil, errUnexpectedToken(child)
			}
		}
		return ty, nil

	case syntax.RuleVectorType:
		elemNode := node.Child(0)
		if elemNode == nil {
			return nil, errUnexpectedToken(node)
		}
		elem, err := typeFromNode(elemNode)
		if err != nil {
			return nil, err
		}
		ty := VectorType{Elem: elem}
		for _, child := range node.Children[1:] {
			switch child.Rule {
			case syntax.RuleConstant:
				size := Constant(child.Text)
				ty.Size = &size
			case syntax.RuleReference:
				ty.Nullable = true
			default:
				return nil, errUnexpectedToken(child)
			}
		}
		return ty, nil
	}
	return nil, errUnrecognizedType(node.Rule.String(), node.Span)
}

// EqualTypes reports structural equality of two types. Optional sizes compare
// by literal text.
func EqualTypes(a, b Type) bool {
	switch a := a.(type) {
	case PrimitiveType:
		b, ok := b.(PrimitiveType)
		return ok && a == b
	case StrType:
		b, ok := b.(StrType)
		return ok && a.Nullable == b.Nullable && equalSizes(a.Size, b.Size)
	case VectorType:
		b, ok := b.(VectorType)
		return ok && a.Nullable == b.Nullable &&
			equalSizes(a.Size, b.Size) && EqualTypes(a.Elem, b.Elem)
	case ArrayType:
		b, ok := b.(ArrayType)
		return ok && a.Size == b.Size && EqualTypes(a.Elem, b.Elem)
	case HandleType:
		b, ok := b.(HandleType)
		return ok && a == b
	case IdentType:
		b, ok := b.(IdentType)
		return ok && a == b
	case StructType:
		_, ok := b.(StructType)
		return ok
	case UnionType:
		_, ok := b.(UnionType)
		return ok
	case EnumType:
		_, ok := b.(EnumType)
		return ok
	case InterfaceType:
		_, ok := b.(InterfaceType)
		return ok
	}
	return false
}

func equalSizes(a, b *Constant) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
