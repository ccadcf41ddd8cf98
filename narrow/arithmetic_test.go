package narrow

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

func approxEqual(a, b ivl.Interval) bool {
	const tol = 1e-9
	near := func(x, y float64) bool {
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			return x == y
		}
		return math.Abs(x-y) <= tol
	}
	return near(a.Lo, b.Lo) && near(a.Hi, b.Hi) && a.Kind == b.Kind
}

func TestAddNarrows(t *testing.T) {
	in := []ivl.Interval{ivl.New(2, 3, ivl.Real), ivl.New(-1, 4, ivl.Real), ivl.Universal}
	out, ok := Add(Params{}, in)
	if !ok {
		t.Fatalf("Add narrower failed unexpectedly")
	}
	want := ivl.New(1, 7, ivl.Real)
	if !approxEqual(out[2], want) {
		t.Errorf("Z = %v, want %v", out[2], want)
	}
}

func TestAddContractsX(t *testing.T) {
	// X+Y=Z with Z tightened should narrow X back via Z-Y.
	in := []ivl.Interval{ivl.Universal, ivl.Point(3, ivl.Real), ivl.New(5, 5, ivl.Real)}
	out, ok := Add(Params{}, in)
	if !ok {
		t.Fatalf("Add narrower failed unexpectedly")
	}
	if !out[0].IsPoint() || out[0].Lo != 2 {
		t.Fatalf("X = %v, want point [2,2]", out[0])
	}
}

func TestMulNarrows(t *testing.T) {
	in := []ivl.Interval{ivl.New(-2, 3, ivl.Real), ivl.New(-1, 4, ivl.Real), ivl.Universal}
	out, ok := Mul(Params{}, in)
	if !ok {
		t.Fatalf("Mul narrower failed unexpectedly")
	}
	want := ivl.New(-8, 12, ivl.Real)
	if !approxEqual(out[2], want) {
		t.Errorf("Z = %v, want %v", out[2], want)
	}
}

func TestMulStraddlingDivisorRefinement(t *testing.T) {
	// Z=[4,4], X=[-1,1] (straddles zero): Y must equal 4/X, and since X
	// straddles, the quotient splits into two half-lines around 0; Y's own
	// existing sign should pick the consistent half.
	in := []ivl.Interval{ivl.New(-1, 1, ivl.Real), ivl.New(1, 100, ivl.Real), ivl.Point(4, ivl.Real)}
	out, ok := Mul(Params{}, in)
	if !ok {
		t.Fatalf("Mul narrower failed unexpectedly")
	}
	if out[1].Lo < 4 {
		t.Fatalf("Y = %v, want lower bound >= 4 (positive half only)", out[1])
	}
}

func TestAbsNarrowsXToBothBranches(t *testing.T) {
	in := []ivl.Interval{ivl.New(-10, 10, ivl.Real), ivl.New(2, 5, ivl.Real)}
	out, ok := Abs(Params{}, in)
	if !ok {
		t.Fatalf("Abs narrower failed unexpectedly")
	}
	if out[0].Lo != -5 || out[0].Hi != 5 {
		t.Fatalf("X = %v, want [-5,5]", out[0])
	}
}

func TestMinMaxPartialDisjoint(t *testing.T) {
	// Z=min(X,Y), X=[10,20] clearly above Z's range -> Y must equal Z.
	in := []ivl.Interval{ivl.New(10, 20, ivl.Real), ivl.Universal, ivl.New(1, 5, ivl.Real)}
	out, ok := Min(Params{}, in)
	if !ok {
		t.Fatalf("Min narrower failed unexpectedly")
	}
	if !cmp.Equal(out[1], out[2]) {
		t.Fatalf("Y = %v, want equal to Z = %v", out[1], out[2])
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	in := []ivl.Interval{ivl.New(0, 1, ivl.Real), ivl.Universal}
	out, ok := Exp(Params{}, in)
	if !ok {
		t.Fatalf("Exp narrower failed unexpectedly")
	}
	if out[1].Lo < 1-1e-9 || out[1].Hi > math.E+1e-6 {
		t.Fatalf("Z = %v, want approx [1,e]", out[1])
	}
}

func TestPowZeroExponent(t *testing.T) {
	in := []ivl.Interval{ivl.New(-5, 5, ivl.Real), ivl.Point(0, ivl.Real), ivl.Universal}
	out, ok := Pow(Params{}, in)
	if !ok {
		t.Fatalf("Pow narrower failed unexpectedly")
	}
	if !out[2].IsPoint() || out[2].Lo != 1 {
		t.Fatalf("Z = %v, want point [1,1] for Y=0", out[2])
	}
}

func TestPowIntegerExponentScenario(t *testing.T) {
	in := []ivl.Interval{ivl.New(-3, -1, ivl.Real), ivl.Point(2, ivl.Real), ivl.Universal}
	out, ok := Pow(Params{}, in)
	if !ok {
		t.Fatalf("Pow narrower failed unexpectedly")
	}
	if out[2].Lo != 1 || out[2].Hi != 9 {
		t.Fatalf("Z = %v, want [1,9]", out[2])
	}
}

func TestIntegralNarrows(t *testing.T) {
	out, ok := Integral(Params{}, []ivl.Interval{ivl.New(1.2, 4.8, ivl.Real)})
	if !ok {
		t.Fatalf("Integral narrower failed unexpectedly")
	}
	if out[0].Lo != 2 || out[0].Hi != 4 {
		t.Fatalf("X = %v, want [2,4]", out[0])
	}
}

func TestIntegralFailsWhenNoIntegerFits(t *testing.T) {
	_, ok := Integral(Params{}, []ivl.Interval{ivl.New(1.1, 1.9, ivl.Real)})
	if ok {
		t.Fatalf("Integral should fail when ceil(Lo)>floor(Hi)")
	}
}
