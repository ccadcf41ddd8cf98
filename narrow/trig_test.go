package narrow

import (
	"math"
	"testing"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

const eps = 1e-9

// TestSinNarrowsXInNonzeroCylinder exercises the backward (X-narrowing) path
// when X's solution lies outside the principal cylinder [-pi,pi]: sin(X)=0.5
// with X=[6,7] should tighten X around 2*pi + pi/6, not fail. This is the
// scenario that previously tripped backWrap into unwrapping with the wrong
// (always-zero) cylinder multiplier.
func TestSinNarrowsXInNonzeroCylinder(t *testing.T) {
	in := []ivl.Interval{ivl.New(6, 7, ivl.Real), ivl.Point(0.5, ivl.Real)}
	out, ok := Sin(Params{}, in)
	if !ok {
		t.Fatalf("Sin narrower failed on a satisfiable constraint")
	}
	want := 2*math.Pi + math.Pi/6
	if math.Abs(out[0].Lo-want) > 1e-6 || math.Abs(out[0].Hi-want) > 1e-6 {
		t.Fatalf("X = %v, want tight around %v", out[0], want)
	}
}

// TestSinSatisfiableInFarCylinderDoesNotFail is the review's concrete
// regression case: X entirely within the cylinder one period out from the
// origin, Z unconstrained. The constraint is trivially satisfiable (any X
// in range has a sine in [-1,1]) so narrowing must succeed.
func TestSinSatisfiableInFarCylinderDoesNotFail(t *testing.T) {
	in := []ivl.Interval{ivl.New(2*math.Pi+0.1, 2*math.Pi+0.2, ivl.Real), ivl.New(-1, 1, ivl.Real)}
	out, ok := Sin(Params{}, in)
	if !ok {
		t.Fatalf("Sin narrower reported infeasible on a satisfiable constraint")
	}
	if out[0].Lo < 2*math.Pi+0.1-eps || out[0].Hi > 2*math.Pi+0.2+eps {
		t.Fatalf("X = %v, want unchanged (approx [2pi+0.1, 2pi+0.2])", out[0])
	}
}

func TestCosNarrowsXInNonzeroCylinder(t *testing.T) {
	in := []ivl.Interval{ivl.New(2*math.Pi-1, 2*math.Pi+1, ivl.Real), ivl.Point(1, ivl.Real)}
	out, ok := Cos(Params{}, in)
	if !ok {
		t.Fatalf("Cos narrower failed on a satisfiable constraint")
	}
	if math.Abs(out[0].Lo-2*math.Pi) > 1e-6 || math.Abs(out[0].Hi-2*math.Pi) > 1e-6 {
		t.Fatalf("X = %v, want tight around 2*pi", out[0])
	}
}

func TestTanNarrowsXInNonzeroCylinder(t *testing.T) {
	in := []ivl.Interval{ivl.New(3*math.Pi-1, 3*math.Pi+1, ivl.Real), ivl.Point(0, ivl.Real)}
	out, ok := Tan(Params{}, in)
	if !ok {
		t.Fatalf("Tan narrower failed on a satisfiable constraint")
	}
	if math.Abs(out[0].Lo-3*math.Pi) > 1e-6 || math.Abs(out[0].Hi-3*math.Pi) > 1e-6 {
		t.Fatalf("X = %v, want tight around 3*pi", out[0])
	}
}

func TestSinWideXFallsBackToCodomain(t *testing.T) {
	in := []ivl.Interval{ivl.New(0, 10*math.Pi, ivl.Real), ivl.Universal}
	out, ok := Sin(Params{}, in)
	if !ok {
		t.Fatalf("Sin narrower failed unexpectedly")
	}
	if out[1].Lo != -1 || out[1].Hi != 1 {
		t.Fatalf("Z = %v, want [-1,1]", out[1])
	}
	if out[0].Lo != 0 || out[0].Hi != 10*math.Pi {
		t.Fatalf("X = %v, want unchanged when wrap fails", out[0])
	}
}
