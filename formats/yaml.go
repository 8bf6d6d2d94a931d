package formats

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linearmap/linearize"
	"github.com/arthur-debert/linearmap/staticmap"
)

// MarshalYAML encodes m as a YAML mapping with one entry per key, in
// ascending index order. Building a yaml.Node keeps entry order under
// our control; yaml.Marshal on a Go map would sort keys its own way.
func MarshalYAML[K, V any](m *staticmap.Map[K, V], keys KeyCodec[K]) ([]byte, error) {
	node, err := yamlMapping(m, keys, false)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// MarshalYAMLSkipNil encodes a pointer-valued map, omitting entries
// whose value is nil.
func MarshalYAMLSkipNil[K, V any](m *staticmap.Map[K, *V], keys KeyCodec[K]) ([]byte, error) {
	node, err := yamlMapping(m, keys, true)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func yamlMapping[K, V any](m *staticmap.Map[K, V], keys KeyCodec[K], skipNil bool) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	codec := m.Codec()
	for i, v := range m.Slice() {
		if skipNil && isNilValue(v) {
			continue
		}
		name := keys.EncodeKey(codec.DelinearizeUnchecked(i))
		keyNode := &yaml.Node{}
		keyNode.SetString(name)
		valNode := &yaml.Node{}
		if err := valNode.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding value for key %q: %w", name, err)
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
	}
	return mapping, nil
}

// isNilValue reports whether a pointer value boxed in an interface is
// nil. A non-nil interface can still hold a nil pointer.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// UnmarshalYAML decodes a YAML mapping into a new map, with the same
// strictness as UnmarshalJSON.
func UnmarshalYAML[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, V], error) {
	return unmarshalYAML[K, V](data, codec, keys, true)
}

// UnmarshalYAMLZero decodes like UnmarshalYAML but leaves absent keys at
// the zero value of V.
func UnmarshalYAMLZero[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, V], error) {
	return unmarshalYAML[K, V](data, codec, keys, false)
}

// UnmarshalYAMLSkipNil decodes a pointer-valued map: absent keys stay
// nil.
func UnmarshalYAMLSkipNil[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, *V], error) {
	return unmarshalYAML[K, *V](data, codec, keys, false)
}

func unmarshalYAML[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K], strict bool) (*staticmap.Map[K, V], error) {
	table, err := newKeyTable(codec, keys)
	if err != nil {
		return nil, err
	}
	slots := make([]V, codec.Length())
	seen := make([]bool, codec.Length())

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			root = &yaml.Node{Kind: yaml.MappingNode}
		} else {
			root = root.Content[0]
		}
	}
	if root.Kind == 0 {
		// Empty input decodes to a zero node; treat it as an empty
		// mapping so the absence policy decides the outcome.
		root = &yaml.Node{Kind: yaml.MappingNode}
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ShapeError{Want: "mapping", Got: yamlShape(root)}
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		name := keyNode.Value
		idx, ok := table.index[name]
		if !ok {
			return nil, &UnknownKeyError{Key: name}
		}
		if err := valNode.Decode(&slots[idx]); err != nil {
			return nil, fmt.Errorf("decoding value for key %q: %w", name, err)
		}
		seen[idx] = true
	}
	if strict {
		for i, ok := range seen {
			if !ok {
				return nil, &MissingKeyError{Key: table.names[i]}
			}
		}
	}
	return staticmap.Wrap(codec, slots)
}

func yamlShape(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return fmt.Sprintf("node kind %d", n.Kind)
	}
}
