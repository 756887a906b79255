package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// UnmarshalJSON decodes a node from a model document. Known members decode
// into their fields; sigil-prefixed members land in Extra as *Node, []*Node,
// or the raw decoded value; other unknown members are ignored for forward
// compatibility.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, val := range raw {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(val, &n.ID)
		case "kind":
			err = json.Unmarshal(val, &n.Kind)
		case "name":
			err = json.Unmarshal(val, &n.Name)
		case "category":
			err = json.Unmarshal(val, &n.Category)
		case "type":
			err = json.Unmarshal(val, &n.Type)
		case "family":
			err = json.Unmarshal(val, &n.Family)
		case "value":
			err = json.Unmarshal(val, &n.Value)
		case "parameters":
			err = json.Unmarshal(val, &n.Parameters)
		case "elements":
			err = json.Unmarshal(val, &n.Elements)
		case "transform":
			err = json.Unmarshal(val, &n.Transform)
		case "definition":
			err = json.Unmarshal(val, &n.Definition)
		default:
			if strings.HasPrefix(key, SigilPrefix) {
				if n.Extra == nil {
					n.Extra = make(map[string]any)
				}
				n.Extra[key] = DecodeDynamic(val)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeDynamic decodes a sigil member value: objects become nodes, arrays
// of objects become node sequences, everything else stays a raw value.
// Every loader that accepts node bodies must route sigil members through
// here, or the legacy container patterns become invisible to traversal.
func DecodeDynamic(val json.RawMessage) any {
	trimmed := bytes.TrimSpace(val)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '{':
		node := &Node{}
		if err := json.Unmarshal(trimmed, node); err == nil {
			return node
		}
	case '[':
		var nodes []*Node
		if err := json.Unmarshal(trimmed, &nodes); err == nil {
			return nodes
		}
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil
	}
	return v
}
