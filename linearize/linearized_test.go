package linearize

import "testing"

func TestCache(t *testing.T) {
	b := pairCodec()
	for i := 0; i < b.Length(); i++ {
		key := b.DelinearizeUnchecked(i)
		cached := Cache(b, key)
		if cached.Index() != i {
			t.Errorf("cached index for %+v: expected %d, got %d", key, i, cached.Index())
		}
		if got := cached.Delinearize(b); got != key {
			t.Errorf("delinearizing the cached index should recover %+v, got %+v", key, got)
		}
	}
}

func TestCacheRaw(t *testing.T) {
	cached := CacheRaw[bool](1)
	if cached.Index() != 1 {
		t.Errorf("expected raw index 1, got %d", cached.Index())
	}
	if got := cached.Delinearize(Bool()); got != true {
		t.Errorf("raw index 1 should delinearize to true, got %v", got)
	}
}

func TestLinearizedComparable(t *testing.T) {
	a := Cache(Bool(), true)
	b := CacheRaw[bool](1)
	if a != b {
		t.Errorf("equal indices for the same key type should compare equal")
	}
}
