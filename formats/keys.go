package formats

import (
	"fmt"

	"github.com/arthur-debert/linearmap/linearize"
)

// KeyCodec renders keys as mapping-entry names. Decoding needs no
// inverse: the key space is enumerable, so the parse table is built by
// encoding every key once.
type KeyCodec[K any] interface {
	EncodeKey(key K) string
}

// KeyFunc adapts a plain function to a KeyCodec.
type KeyFunc[K any] func(K) string

func (f KeyFunc[K]) EncodeKey(key K) string { return f(key) }

// FormatKeys renders keys with fmt.Sprint. Good enough for bools,
// integers and stringer types.
func FormatKeys[K any]() KeyCodec[K] {
	return KeyFunc[K](func(key K) string { return fmt.Sprint(key) })
}

// NamedKeys names each key by its index: names[i] is the encoding of
// the key that linearizes to i. Handy for enums whose Go values do not
// print well.
func NamedKeys[K any](codec linearize.Bijection[K], names ...string) (KeyCodec[K], error) {
	if len(names) != codec.Length() {
		return nil, fmt.Errorf("got %d names for %d keys", len(names), codec.Length())
	}
	return KeyFunc[K](func(key K) string { return names[codec.Linearize(key)] }), nil
}

// keyTable holds the encoded name of every key in index order, plus the
// reverse lookup used while decoding.
type keyTable[K any] struct {
	names []string
	index map[string]int
}

func newKeyTable[K any](codec linearize.Bijection[K], keys KeyCodec[K]) (*keyTable[K], error) {
	length := codec.Length()
	t := &keyTable[K]{
		names: make([]string, length),
		index: make(map[string]int, length),
	}
	for i := 0; i < length; i++ {
		name := keys.EncodeKey(codec.DelinearizeUnchecked(i))
		if prev, dup := t.index[name]; dup {
			return nil, fmt.Errorf("key encoding %q is ambiguous: produced by both index %d and %d", name, prev, i)
		}
		t.names[i] = name
		t.index[name] = i
	}
	return t, nil
}
