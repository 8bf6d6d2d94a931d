package linearize

import "testing"

func TestIterAscendingOrder(t *testing.T) {
	it := Values(Bool())
	if it.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", it.Len())
	}
	if v, ok := it.Next(); !ok || v != false {
		t.Errorf("first value should be false, got %v ok=%v", v, ok)
	}
	if v, ok := it.Next(); !ok || v != true {
		t.Errorf("second value should be true, got %v ok=%v", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("iterator should be exhausted")
	}
	// Exhaustion is stable.
	if _, ok := it.Next(); ok {
		t.Errorf("an exhausted iterator must stay exhausted")
	}
}

func TestIterDoubleEnded(t *testing.T) {
	b := Enum("a", "b", "c", "d")
	it := Values(b)

	if v, _ := it.NextBack(); v != "d" {
		t.Errorf("back should yield d, got %s", v)
	}
	if v, _ := it.Next(); v != "a" {
		t.Errorf("front should yield a, got %s", v)
	}
	if it.Len() != 2 {
		t.Errorf("expected 2 remaining, got %d", it.Len())
	}
	if v, _ := it.NextBack(); v != "c" {
		t.Errorf("back should yield c, got %s", v)
	}
	if v, _ := it.Next(); v != "b" {
		t.Errorf("front should yield b, got %s", v)
	}
	if _, ok := it.NextBack(); ok {
		t.Errorf("ends have met, iterator should be exhausted")
	}
}

func TestIterNth(t *testing.T) {
	b := Enum(0, 1, 2, 3, 4)

	it := Values(b)
	if v, ok := it.Nth(2); !ok || v != 2 {
		t.Errorf("Nth(2) should yield 2, got %d ok=%v", v, ok)
	}
	if v, ok := it.Next(); !ok || v != 3 {
		t.Errorf("after Nth(2) the cursor should sit at 3, got %d ok=%v", v, ok)
	}

	it = Values(b)
	if v, ok := it.NthBack(1); !ok || v != 3 {
		t.Errorf("NthBack(1) should yield 3, got %d ok=%v", v, ok)
	}
	if v, ok := it.NextBack(); !ok || v != 2 {
		t.Errorf("after NthBack(1) the back cursor should sit at 2, got %d ok=%v", v, ok)
	}

	it = Values(b)
	if _, ok := it.Nth(10); ok {
		t.Errorf("Nth past the end should fail")
	}
	if it.Len() != 0 {
		t.Errorf("a failed Nth consumes the rest, %d remaining", it.Len())
	}
}

func TestIterNthNegative(t *testing.T) {
	b := Enum(0, 1, 2)

	// A negative skip must fail, not move the cursor backward onto
	// values already consumed (or to index -1 on a fresh iterator).
	it := Values(b)
	if _, ok := it.Nth(-1); ok {
		t.Errorf("Nth(-1) should fail")
	}
	if it.Len() != 0 {
		t.Errorf("a failed Nth consumes the rest, %d remaining", it.Len())
	}

	it = Values(b)
	it.Next()
	it.Next()
	if _, ok := it.Nth(-2); ok {
		t.Errorf("Nth(-2) should fail, not re-yield consumed values")
	}

	it = Values(b)
	if _, ok := it.NthBack(-1); ok {
		t.Errorf("NthBack(-1) should fail")
	}
	if it.Len() != 0 {
		t.Errorf("a failed NthBack consumes the rest, %d remaining", it.Len())
	}
}

func TestIterLast(t *testing.T) {
	it := Values(Enum("x", "y", "z"))
	if v, ok := it.Last(); !ok || v != "z" {
		t.Errorf("Last should yield z, got %s ok=%v", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Errorf("Last consumes the iterator")
	}
	if _, ok := it.Last(); ok {
		t.Errorf("Last on an exhausted iterator should fail")
	}
}

func TestIterClone(t *testing.T) {
	it := Values(Bool())
	if _, ok := it.Next(); !ok {
		t.Fatal("expected a first value")
	}
	clone := it.Clone()
	if v, ok := it.Next(); !ok || v != true {
		t.Errorf("original should continue with true, got %v ok=%v", v, ok)
	}
	if v, ok := clone.Next(); !ok || v != true {
		t.Errorf("clone should resume from the duplicated position, got %v ok=%v", v, ok)
	}
	if _, ok := clone.Next(); ok {
		t.Errorf("clone should be exhausted")
	}
}

func TestIterAll(t *testing.T) {
	var got []int
	for v := range Values(Enum(10, 20, 30)).All() {
		got = append(got, v)
	}
	want := []int{10, 20, 30}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestIterUint8Complete(t *testing.T) {
	it := Values(Uint8())
	if it.Len() != 256 {
		t.Fatalf("expected 256 values, got %d", it.Len())
	}
	var n int
	prev := -1
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if int(v) != prev+1 {
			t.Fatalf("values must ascend by one: %d after %d", v, prev)
		}
		prev = int(v)
		n++
	}
	if n != 256 {
		t.Errorf("enumeration should visit 256 values, visited %d", n)
	}
}
