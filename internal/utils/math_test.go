package utils

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(Vec{0, 0}, Vec{3, 4}); got != 5 {
		t.Fatalf("Distance = %f, want 5", got)
	}
	if got := Distance(Vec{2, 2}, Vec{2, 2}); got != 0 {
		t.Fatalf("Distance of same point = %f, want 0", got)
	}
}

func TestLerpVecEndpoints(t *testing.T) {
	start, target := Vec{10, 20}, Vec{110, 220}
	if got := LerpVec(start, target, 0); got != start {
		t.Fatalf("LerpVec(0) = %v, want %v", got, start)
	}
	if got := LerpVec(start, target, 1); got != target {
		t.Fatalf("LerpVec(1) = %v, want %v", got, target)
	}
	if got := LerpVec(start, target, 0.5); got != (Vec{60, 120}) {
		t.Fatalf("LerpVec(0.5) = %v, want {60 120}", got)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		to   Vec
		want float64
	}{
		{Vec{1, 0}, 0},
		{Vec{0, 1}, math.Pi / 2},
		{Vec{-1, 0}, math.Pi},
	}
	for _, tc := range tests {
		if got := Angle(Vec{}, tc.to); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("Angle(0 -> %v) = %f, want %f", tc.to, got, tc.want)
		}
	}
}

func TestPointInAnnulusStaysInRing(t *testing.T) {
	rng := NewPRNGService(7)
	center := Vec{500, 500}
	for i := 0; i < 1000; i++ {
		p := PointInAnnulus(rng, center, 50, 200)
		d := Distance(center, p)
		if d < 50-1e-9 || d >= 200+1e-9 {
			t.Fatalf("point %v at distance %f outside [50, 200)", p, d)
		}
	}
}
