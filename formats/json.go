package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/linearmap/linearize"
	"github.com/arthur-debert/linearmap/staticmap"
)

// MarshalJSON encodes m as a JSON object with one member per key, in
// ascending index order.
func MarshalJSON[K, V any](m *staticmap.Map[K, V], keys KeyCodec[K]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	codec := m.Codec()
	for i, v := range m.Slice() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONEntry(&buf, keys.EncodeKey(codec.DelinearizeUnchecked(i)), v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSONSkipNil encodes a pointer-valued map, omitting entries
// whose value is nil. The result round-trips through
// UnmarshalJSONSkipNil.
func MarshalJSONSkipNil[K, V any](m *staticmap.Map[K, *V], keys KeyCodec[K]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	codec := m.Codec()
	first := true
	for i, v := range m.Slice() {
		if v == nil {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeJSONEntry(&buf, keys.EncodeKey(codec.DelinearizeUnchecked(i)), v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONEntry(buf *bytes.Buffer, name string, value any) error {
	k, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", name, err)
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding value for key %q: %w", name, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// UnmarshalJSON decodes a JSON object into a new map. Every key must be
// present: a missing key fails with a *MissingKeyError, and a key
// outside the key space with an *UnknownKeyError. A repeated key is
// accepted, last occurrence wins.
func UnmarshalJSON[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, V], error) {
	return unmarshalJSON[K, V](data, codec, keys, true)
}

// UnmarshalJSONZero decodes like UnmarshalJSON but leaves absent keys at
// the zero value of V instead of failing.
func UnmarshalJSONZero[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, V], error) {
	return unmarshalJSON[K, V](data, codec, keys, false)
}

// UnmarshalJSONSkipNil decodes a pointer-valued map: absent keys stay
// nil, the inverse of MarshalJSONSkipNil.
func UnmarshalJSONSkipNil[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K]) (*staticmap.Map[K, *V], error) {
	return unmarshalJSON[K, *V](data, codec, keys, false)
}

func unmarshalJSON[K, V any](data []byte, codec linearize.Bijection[K], keys KeyCodec[K], strict bool) (*staticmap.Map[K, V], error) {
	table, err := newKeyTable(codec, keys)
	if err != nil {
		return nil, err
	}
	slots := make([]V, codec.Length())
	seen := make([]bool, codec.Length())

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ShapeError{Want: "object", Got: jsonShape(tok)}
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decoding map key: %w", err)
		}
		name := tok.(string)
		i, ok := table.index[name]
		if !ok {
			return nil, &UnknownKeyError{Key: name}
		}
		if err := dec.Decode(&slots[i]); err != nil {
			return nil, fmt.Errorf("decoding value for key %q: %w", name, err)
		}
		seen[i] = true
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
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

func jsonShape(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return fmt.Sprintf("delimiter %q", t.String())
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
