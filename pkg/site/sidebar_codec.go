// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package site

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler. Titled entries are written in
// flow style, e.g. [/demos/, Demo].
func (e SidebarEntry) MarshalYAML() (interface{}, error) {
	if !e.HasTitle() {
		return e.path, nil
	}
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.path},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.title},
		},
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (e *SidebarEntry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: sidebar entry must be a string path, got %s", value.Line, value.ShortTag())
		}
		*e = PathOnly(value.Value)
		return nil
	case yaml.SequenceNode:
		if len(value.Content) != 2 {
			return fmt.Errorf("line %d: sidebar entry must be a [path, title] pair, got %d elements", value.Line, len(value.Content))
		}
		for _, n := range value.Content {
			if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
				return fmt.Errorf("line %d: sidebar entry pair elements must be strings", n.Line)
			}
		}
		*e = PathWithTitle(value.Content[0].Value, value.Content[1].Value)
		return nil
	}
	return fmt.Errorf("line %d: sidebar entry must be a path or a [path, title] pair", value.Line)
}

// MarshalJSON implements json.Marshaler
func (e SidebarEntry) MarshalJSON() ([]byte, error) {
	if !e.HasTitle() {
		return json.Marshal(e.path)
	}
	return json.Marshal([2]string{e.path, e.title})
}

// UnmarshalJSON implements json.Unmarshaler
func (e *SidebarEntry) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty sidebar entry")
	}
	switch b[0] {
	case '"':
		var p string
		if err := json.Unmarshal(b, &p); err != nil {
			return err
		}
		*e = PathOnly(p)
		return nil
	case '[':
		var pair []string
		if err := json.Unmarshal(b, &pair); err != nil {
			return fmt.Errorf("sidebar entry pair elements must be strings: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("sidebar entry must be a [path, title] pair, got %d elements", len(pair))
		}
		*e = PathWithTitle(pair[0], pair[1])
		return nil
	}
	return fmt.Errorf("sidebar entry must be a path or a [path, title] pair: %s", string(b))
}
