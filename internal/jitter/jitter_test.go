package jitter

import "testing"

func TestDefaultStaysInRange(t *testing.T) {
	src := Default()
	for i := 0; i < 1000; i++ {
		v := src.Uniform(-15, 10)
		if v < -15 || v >= 10 {
			t.Fatalf("draw %v out of [-15,10)", v)
		}
	}
}

func TestFixed(t *testing.T) {
	if got := Fixed(0).Uniform(-5, 5); got != -5 {
		t.Fatalf("expected lower bound, got %v", got)
	}
	if got := Fixed(1).Uniform(-5, 5); got != 5 {
		t.Fatalf("expected upper bound, got %v", got)
	}
	if got := Zero().Uniform(-10, 10); got != 0 {
		t.Fatalf("expected zero offset, got %v", got)
	}
}
