package linearize

import "testing"

func TestBool(t *testing.T) {
	b := Bool()
	if b.Length() != 2 {
		t.Fatalf("expected length 2, got %d", b.Length())
	}
	if got := b.Linearize(false); got != 0 {
		t.Errorf("false should linearize to 0, got %d", got)
	}
	if got := b.Linearize(true); got != 1 {
		t.Errorf("true should linearize to 1, got %d", got)
	}
	if b.DelinearizeUnchecked(0) != false {
		t.Errorf("index 0 should delinearize to false")
	}
	if b.DelinearizeUnchecked(1) != true {
		t.Errorf("index 1 should delinearize to true")
	}
}

func TestUnit(t *testing.T) {
	b := Unit()
	if b.Length() != 1 {
		t.Fatalf("expected length 1, got %d", b.Length())
	}
	if got := b.Linearize(struct{}{}); got != 0 {
		t.Errorf("unit should linearize to 0, got %d", got)
	}
}

func TestNever(t *testing.T) {
	b := NeverCodec()
	if b.Length() != 0 {
		t.Fatalf("expected length 0, got %d", b.Length())
	}
	if _, ok := Delinearize(b, 0); ok {
		t.Errorf("delinearize of an uninhabited type should fail for every index")
	}
}

func TestUint8(t *testing.T) {
	b := Uint8()
	if b.Length() != 256 {
		t.Fatalf("expected length 256, got %d", b.Length())
	}
	for _, v := range []uint8{0, 1, 127, 128, 255} {
		if got := b.Linearize(v); got != int(v) {
			t.Errorf("uint8 %d should linearize to itself, got %d", v, got)
		}
		if got := b.DelinearizeUnchecked(int(v)); got != v {
			t.Errorf("index %d should delinearize to %d, got %d", v, v, got)
		}
	}
}

func TestInt8(t *testing.T) {
	b := Int8()
	if b.Length() != 256 {
		t.Fatalf("expected length 256, got %d", b.Length())
	}

	tests := []struct {
		value int8
		index int
	}{
		{-128, 0},
		{-1, 127},
		{0, 128},
		{1, 129},
		{127, 255},
	}
	for _, tt := range tests {
		if got := b.Linearize(tt.value); got != tt.index {
			t.Errorf("int8 %d: expected index %d, got %d", tt.value, tt.index, got)
		}
		if got := b.DelinearizeUnchecked(tt.index); got != tt.value {
			t.Errorf("index %d: expected value %d, got %d", tt.index, tt.value, got)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	u := Uint16()
	s := Int16()
	for i := 0; i < u.Length(); i++ {
		if got := u.Linearize(u.DelinearizeUnchecked(i)); got != i {
			t.Fatalf("uint16 round trip broke at index %d: got %d", i, got)
		}
		if got := s.Linearize(s.DelinearizeUnchecked(i)); got != i {
			t.Fatalf("int16 round trip broke at index %d: got %d", i, got)
		}
	}
}

func TestInt32Width(t *testing.T) {
	// The 2^32 cardinalities are built at run time so this file compiles
	// on 32-bit platforms; on 64-bit they must still come out exact.
	want := int64(1) << 32
	if got := int64(Uint32().Length()); got != want {
		t.Errorf("Uint32 length = %d, want %d", got, want)
	}
	s := Int32()
	if got := int64(s.Length()); got != want {
		t.Errorf("Int32 length = %d, want %d", got, want)
	}
	if got := s.Linearize(-1 << 31); got != 0 {
		t.Errorf("Linearize(MinInt32) = %d, want 0", got)
	}
	if got := s.DelinearizeUnchecked(s.Length() - 1); got != 1<<31-1 {
		t.Errorf("DelinearizeUnchecked(max) = %d, want MaxInt32", got)
	}
}

func TestDelinearizeChecked(t *testing.T) {
	tests := []struct {
		name  string
		index int
		ok    bool
	}{
		{"below range", -1, false},
		{"first", 0, true},
		{"last", 1, true},
		{"past end", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Delinearize(Bool(), tt.index)
			if ok != tt.ok {
				t.Errorf("Delinearize(bool, %d): expected ok=%v, got %v", tt.index, tt.ok, ok)
			}
		})
	}
}

func TestEnum(t *testing.T) {
	type ordering string
	b := Enum[ordering]("less", "equal", "greater")
	if b.Length() != 3 {
		t.Fatalf("expected length 3, got %d", b.Length())
	}

	order := []ordering{"less", "equal", "greater"}
	for i, v := range order {
		if got := b.Linearize(v); got != i {
			t.Errorf("%s should linearize to declared position %d, got %d", v, i, got)
		}
		if got := b.DelinearizeUnchecked(i); got != v {
			t.Errorf("index %d should delinearize to %s, got %s", i, v, got)
		}
	}
}

func TestEnumDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate enum value")
		}
	}()
	Enum("a", "b", "a")
}
