// Package yamlhost adapts YAML documents to the jsonlens value model, so
// the full accessor surface works over YAML bytes. YAML mapping keys keep
// their document order, matching the JSON object invariant.
package yamlhost

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonlens"
)

// Bytes returns a host representation over YAML-encoded byte slices.
// Decoding is total: any YAML error, a non-scalar mapping key, or a number
// that is not a finite decimal reports a miss. Encoding renders the
// canonical block form.
func Bytes() jsonlens.Rep[[]byte] { return bytesRep{} }

type bytesRep struct{}

func (bytesRep) Decode(b []byte) (jsonlens.Value, bool) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return jsonlens.Value{}, false
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return jsonlens.NullValue(), true
	}
	return fromNode(root.Content[0])
}

func (bytesRep) Encode(v jsonlens.Value) []byte {
	out, err := yaml.Marshal(toNode(v))
	if err != nil {
		return nil
	}
	return out
}

func fromNode(n *yaml.Node) (jsonlens.Value, bool) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsonlens.NullValue(), true
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return jsonlens.Value{}, false
		}
		return fromNode(n.Alias)
	case yaml.MappingNode:
		ms := make(jsonlens.Members, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return jsonlens.Value{}, false
			}
			v, ok := fromNode(n.Content[i+1])
			if !ok {
				return jsonlens.Value{}, false
			}
			ms = append(ms, jsonlens.Member{Key: k.Value, Value: v})
		}
		return jsonlens.ObjectValue(ms...), true
	case yaml.SequenceNode:
		elems := make([]jsonlens.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, ok := fromNode(c)
			if !ok {
				return jsonlens.Value{}, false
			}
			elems = append(elems, v)
		}
		return jsonlens.ArrayValue(elems...), true
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return jsonlens.Value{}, false
	}
}

func fromScalar(n *yaml.Node) (jsonlens.Value, bool) {
	switch n.Tag {
	case "!!null":
		return jsonlens.NullValue(), true
	case "!!bool":
		switch n.Value {
		case "true", "True", "TRUE":
			return jsonlens.BoolValue(true), true
		case "false", "False", "FALSE":
			return jsonlens.BoolValue(false), true
		}
		return jsonlens.StringValue(n.Value), true
	case "!!int", "!!float":
		if v, ok := jsonlens.NumberString(n.Value); ok {
			return v, true
		}
		// .inf/.nan and radix-prefixed literals have no JSON counterpart.
		return jsonlens.Value{}, false
	default:
		return jsonlens.StringValue(n.Value), true
	}
}

func toNode(v jsonlens.Value) *yaml.Node {
	switch v.Kind() {
	case jsonlens.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case jsonlens.KindBool:
		if v.Boolean() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	case jsonlens.KindNumber:
		text := v.Decimal().Text('f')
		tag := "!!int"
		if strings.ContainsAny(text, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
	case jsonlens.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str()}
	case jsonlens.KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Elems() {
			n.Content = append(n.Content, toNode(e))
		}
		return n
	case jsonlens.KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Fields() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				toNode(m.Value))
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
