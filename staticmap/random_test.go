package staticmap

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/arthur-debert/linearmap/linearize"
)

func TestNewFromRand(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var draws int
	m := NewFromRand(linearize.Uint8(), rng, func(r *rand.Rand) int {
		draws++
		return r.IntN(1000)
	})
	if draws != 256 {
		t.Errorf("expected one draw per key, got %d", draws)
	}
	if m.Len() != 256 {
		t.Errorf("expected 256 slots, got %d", m.Len())
	}
}

func TestNewFromRandDeterministic(t *testing.T) {
	sample := func(r *rand.Rand) int { return r.IntN(1 << 30) }
	a := NewFromRand(linearize.Bool(), rand.New(rand.NewPCG(7, 7)), sample)
	b := NewFromRand(linearize.Bool(), rand.New(rand.NewPCG(7, 7)), sample)
	if !Equal(a, b) {
		t.Errorf("same seed should produce the same map")
	}
}

func TestSizeHint(t *testing.T) {
	tests := []struct {
		name       string
		codec      linearize.Bijection[uint8]
		perElement int
		want       int
	}{
		{"scales by cardinality", linearize.Uint8(), 4, 1024},
		{"zero per element", linearize.Uint8(), 0, 0},
		{"saturates", linearize.Uint8(), math.MaxInt / 2, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SizeHint(tt.codec, tt.perElement); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSizeHintUninhabited(t *testing.T) {
	if got := SizeHint(linearize.NeverCodec(), 100); got != 0 {
		t.Errorf("an uninhabited key type needs no input, got %d", got)
	}
}
