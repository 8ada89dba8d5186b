package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.NextU64(), b.NextU64(); x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
	}
	if NewRand(1).NextU64() == NewRand(2).NextU64() {
		t.Error("neighbouring seeds start on the same value")
	}
	if NewRand(0).NextU64() == 0 {
		t.Error("zero seed produced a stuck generator")
	}
}

func TestRandRangeInclusive(t *testing.T) {
	r := NewRand(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.Range(OffspringMin, OffspringMax)
		if v < OffspringMin || v > OffspringMax {
			t.Fatalf("Range = %d, outside [%d,%d]", v, OffspringMin, OffspringMax)
		}
		seen[v] = true
	}
	if got, want := len(seen), OffspringMax-OffspringMin+1; got != want {
		t.Errorf("saw %d distinct values, want %d", got, want)
	}

	tests := []struct {
		lo, hi, want int
	}{
		{3, 3, 3},
		{5, 2, 5},
	}
	for _, tt := range tests {
		if got := r.Range(tt.lo, tt.hi); got != tt.want {
			t.Errorf("Range(%d,%d) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
	}
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}

func TestRandFloatBounds(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v, outside [0,1)", f)
		}
		if f := r.RangeF(-2, 3); f < -2 || f >= 3 {
			t.Fatalf("RangeF = %v, outside [-2,3)", f)
		}
	}
}
