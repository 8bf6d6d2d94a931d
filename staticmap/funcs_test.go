package staticmap

import (
	"hash/maphash"
	"strconv"
	"testing"

	"github.com/arthur-debert/linearmap/linearize"
)

func TestMapValues(t *testing.T) {
	m := NewFromFunc(linearize.Bool(), func(k bool) int {
		if k {
			return 1
		}
		return 0
	})
	out := MapValues(m, func(v int) string { return strconv.Itoa(v * 3) })
	if out.Get(false) != "0" || out.Get(true) != "3" {
		t.Errorf("unexpected transform result: %v", out.Slice())
	}
	// The source map is untouched.
	if m.Get(true) != 1 {
		t.Errorf("MapValues must not mutate its input")
	}
}

func TestMapEntries(t *testing.T) {
	m := NewFromFunc(linearize.Bool(), func(bool) int { return 10 })
	out := MapEntries(m, func(k bool, v int) int {
		if k {
			return v + 1
		}
		return v
	})
	if out.Get(false) != 10 || out.Get(true) != 11 {
		t.Errorf("transform should see the key: %v", out.Slice())
	}
}

func TestEqual(t *testing.T) {
	a := NewFromFunc(linearize.Bool(), func(k bool) int {
		if k {
			return 2
		}
		return 1
	})
	b := NewFromFunc(linearize.Bool(), func(k bool) int {
		if k {
			return 2
		}
		return 1
	})
	if !Equal(a, b) {
		t.Errorf("identical maps should compare equal")
	}
	b.Set(true, 3)
	if Equal(a, b) {
		t.Errorf("maps with a differing slot should not compare equal")
	}
}

func TestEqualFunc(t *testing.T) {
	a := NewFromFunc(linearize.Bool(), func(bool) int { return 2 })
	b := NewFromFunc(linearize.Bool(), func(bool) string { return "2" })
	eq := EqualFunc(a, b, func(x int, y string) bool { return strconv.Itoa(x) == y })
	if !eq {
		t.Errorf("EqualFunc should use the supplied comparison")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"first slot decides", []int{0, 9}, []int{1, 0}, -1},
		{"later slot decides", []int{1, 3}, []int{1, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewFromSlice(linearize.Bool(), tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := NewFromSlice(linearize.Bool(), tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := Compare(a, b); got != tt.want {
				t.Errorf("Compare(%v, %v): expected %d, got %d", tt.a, tt.b, tt.want, got)
			}
		})
	}
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a, _ := NewFromSlice(linearize.Bool(), []int{1, 2})
	b, _ := NewFromSlice(linearize.Bool(), []int{1, 2})
	c, _ := NewFromSlice(linearize.Bool(), []int{2, 1})

	if Hash(seed, a) != Hash(seed, b) {
		t.Errorf("equal maps must hash identically under one seed")
	}
	if Hash(seed, a) == Hash(seed, c) {
		t.Errorf("maps with swapped values should hash differently (same seed)")
	}
}
