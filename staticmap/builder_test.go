package staticmap

import (
	"testing"

	"github.com/arthur-debert/linearmap/linearize"
)

func TestBuilder(t *testing.T) {
	codec := linearize.Enum("a", "b", "c")
	b := NewBuilder[string, int](codec)
	if b.Len() != 3 {
		t.Fatalf("builder length should equal key cardinality, got %d", b.Len())
	}

	// The enumerate-over-all-keys discipline guarantees full coverage.
	it := linearize.Values(codec)
	for i := 0; i < b.Len(); i++ {
		k, ok := it.Next()
		if !ok {
			t.Fatalf("key enumeration ended early at %d", i)
		}
		b.SetUnchecked(i, len(k))
	}

	m := b.Finish()
	for _, k := range []string{"a", "b", "c"} {
		if got := m.Get(k); got != 1 {
			t.Errorf("key %s: expected 1, got %d", k, got)
		}
	}
}

func TestBuilderZeroLength(t *testing.T) {
	b := NewBuilder[linearize.Never, int](linearize.NeverCodec())
	if b.Len() != 0 {
		t.Fatalf("expected an empty builder, got length %d", b.Len())
	}
	m := b.Finish()
	if m.Len() != 0 {
		t.Errorf("finished map should be empty")
	}
}
