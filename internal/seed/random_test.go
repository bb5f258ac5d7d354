package seed

import (
	"math/rand"
	"testing"
)

func TestIntBetweenStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		got := intBetween(rng, 6, 14)
		if got < 6 || got > 14 {
			t.Fatalf("intBetween(6, 14) = %d", got)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if chance(rng, 0) {
			t.Fatal("chance(0) fired")
		}
		if !chance(rng, 1) {
			t.Fatal("chance(1) did not fire")
		}
	}
}

func TestPickOneReturnsMember(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		got := pickOne(rng, items)
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("pickOne returned %q", got)
		}
	}
}

func TestFixedSeedIsDeterministic(t *testing.T) {
	first := rand.New(rand.NewSource(42))
	second := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := intBetween(first, 1, 1000)
		b := intBetween(second, 1, 1000)
		if a != b {
			t.Fatalf("draw %d diverged: %d vs %d", i, a, b)
		}
	}
}
