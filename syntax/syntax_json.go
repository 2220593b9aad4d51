// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package syntax

import (
	"encoding/json"
	"fmt"
)

// The JSON form of a node spells the rule by name, so trees survive across
// parser versions that renumber the Rule constants:
//
//	{"rule": "struct_field", "children": [...]}
//	{"rule": "ident", "text": "foo", "span": {"start": 12, "len": 3}}

type nodeJSON struct {
	Rule     string    `json:"rule"`
	Text     string    `json:"text,omitempty"`
	Children []*Node   `json:"children,omitempty"`
	Span     *spanJSON `json:"span,omitempty"`
}

type spanJSON struct {
	Start uint32 `json:"start"`
	Len   uint32 `json:"len"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Rule:     n.Rule.String(),
		Text:     n.Text,
		Children: n.Children,
	}
	if n.Rule == RuleInvalid {
		return nil, fmt.Errorf("syntax: cannot encode invalid node")
	}
	if !n.Span.IsZero() {
		out.Span = &spanJSON{Start: n.Span.Start, Len: n.Span.Len}
	}
	return json.Marshal(&out)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	rule := RuleFromName(in.Rule)
	if rule == RuleInvalid {
		return fmt.Errorf("syntax: unknown rule %q", in.Rule)
	}
	n.Rule = rule
	n.Text = in.Text
	n.Children = in.Children
	if in.Span != nil {
		n.Span = Span{Start: in.Span.Start, Len: in.Span.Len}
	} else {
		n.Span = Span{}
	}
	return nil
}

// DecodeUnit decodes a single JSON-encoded syntax-tree unit.
func DecodeUnit(data []byte) (*Node, error) {
	node := &Node{}
	if err := json.Unmarshal(data, node); err != nil {
		return nil, err
	}
	return node, nil
}
