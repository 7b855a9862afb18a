package random

import (
	"math"
	"testing"
)

func TestDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Uniform(0, 1), b.Uniform(0, 1); x != y {
			t.Fatalf("draw %d: uniform differs %v != %v", i, x, y)
		}
		if x, y := a.Normal(5, 2), b.Normal(5, 2); x != y {
			t.Fatalf("draw %d: normal differs %v != %v", i, x, y)
		}
		if x, y := a.Choice(7), b.Choice(7); x != y {
			t.Fatalf("draw %d: choice differs %v != %v", i, x, y)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 20; i++ {
		if a.Uniform(0, 1) == b.Uniform(0, 1) {
			same++
		}
	}
	if same == 20 {
		t.Error("expected different seeds to produce different sequences")
	}
	if a.Seed() != 1 || b.Seed() != 2 {
		t.Errorf("unexpected seeds %d, %d", a.Seed(), b.Seed())
	}
}

func TestUniformRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Uniform(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("uniform value %v outside [-2, 3)", v)
		}
	}
	if v := s.Uniform(1.5, 1.5); v != 1.5 {
		t.Errorf("expected degenerate range to return 1.5, got %v", v)
	}
}

func TestNormalMoments(t *testing.T) {
	s := New(11)
	const n = 20000

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := s.Normal(10, 2)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)

	if math.Abs(mean-10) > 0.1 {
		t.Errorf("expected mean near 10, got %v", mean)
	}
	if math.Abs(stddev-2) > 0.1 {
		t.Errorf("expected stddev near 2, got %v", stddev)
	}
	if v := s.Normal(3, 0); v != 3 {
		t.Errorf("expected zero stddev to return mean, got %v", v)
	}
}

func TestChoiceRange(t *testing.T) {
	s := New(3)
	counts := make([]int, 2)
	for i := 0; i < 1000; i++ {
		counts[s.Choice(2)]++
	}
	if counts[0] == 0 || counts[1] == 0 {
		t.Errorf("expected both choices to occur, got %v", counts)
	}
}
