package utilstest

import "testing"

func TestScriptedRandom(t *testing.T) {
	r := &ScriptedRandom{Floats: []float64{0.1, 0.2}, Ints: []int{5}, Fallback: 0.9}
	if r.Float64() != 0.1 || r.Float64() != 0.2 || r.Float64() != 0.9 {
		t.Fatalf("scripted floats out of order")
	}
	if got := r.Intn(3); got != 2 {
		t.Fatalf("Intn clamps to n-1: got %d, want 2", got)
	}
	if got := r.Intn(3); got != 0 {
		t.Fatalf("exhausted Intn = %d, want 0", got)
	}
}
