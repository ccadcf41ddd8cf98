package ivl

import (
	"math"
	"testing"
)

func TestLogDomain(t *testing.T) {
	if got := Log(New(-3, 0, Real)); !got.IsEmpty() {
		t.Fatalf("Log of non-positive Xh should fail, got %v", got)
	}
	got := Log(Point(1, Real))
	if got.Lo > 0 || got.Hi < 0 {
		t.Fatalf("Log(1) = %v, should enclose 0", got)
	}
}

func TestExpNeverNegative(t *testing.T) {
	got := Exp(New(-10, -5, Real))
	if got.Lo < 0 {
		t.Fatalf("Exp(%v) = %v, lower bound must stay >= 0", New(-10, -5, Real), got)
	}
}

// TestIntPowScenario is spec §8 scenario 4: pow(X=[-3,-1], N=[2,2]) ->
// Z=[1,9].
func TestIntPowScenario(t *testing.T) {
	x := New(-3, -1, Real)
	z := IntPow(x, 2)
	if z.Lo != 1 || z.Hi != 9 {
		t.Fatalf("IntPow([-3,-1],2) = %v, want [1,9]", z)
	}
}

func TestIntPowZeroExponent(t *testing.T) {
	// Open question: 0^0 = [1,1] by convention, and this holds for every
	// base, not just nonzero ones.
	if got := IntPow(Point(0, Real), 0); got.Lo != 1 || got.Hi != 1 {
		t.Fatalf("0**0 = %v, want [1,1] by convention", got)
	}
	if got := IntPow(New(-4, 4, Real), 0); got.Lo != 1 || got.Hi != 1 {
		t.Fatalf("X**0 = %v, want [1,1]", got)
	}
}

func TestIntPowExactZeroPreserved(t *testing.T) {
	// Open question: ipowLo(0,N) = ipowHi(0,N) = 0, never nudged outward to
	// a subnormal.
	got := IntPow(New(0, 3, Real), 4)
	if got.Lo != 0 {
		t.Fatalf("IntPow([0,3],4).Lo = %v, want exact 0", got.Lo)
	}
}

func TestIntPowOddPositiveBase(t *testing.T) {
	got := IntPow(New(2, 3, Real), 3)
	if got.Lo != 8 || got.Hi != 27 {
		t.Fatalf("IntPow([2,3],3) = %v, want [8,27]", got)
	}
}

// TestNthRootScenario is spec §8 scenario 4 (continued): nthroot([1,4],
// [2,2], Z=[-5,0]) -> Z=[-2,0].
func TestNthRootScenario(t *testing.T) {
	pow := New(1, 4, Real)
	base := New(-5, 0, Real)
	got := NthRoot(pow, 2, base)
	if got.Lo != -2 || got.Hi != 0 {
		t.Fatalf("NthRoot([1,4],2,base=[-5,0]) = %v, want [-2,0]", got)
	}
}

func TestNthRootPositiveBranchOnly(t *testing.T) {
	// Only pow.Hi bounds the branch (see NthRoot's doc comment); pow.Lo=1 is
	// not propagated into a tighter lower bound.
	got := NthRoot(New(1, 4, Real), 2, New(3, 10, Real))
	if got.Lo != 0 || got.Hi != 2 {
		t.Fatalf("NthRoot with positive base = %v, want [0,2]", got)
	}
}

func TestNthRootOddMonotone(t *testing.T) {
	got := NthRoot(New(-8, 27, Real), 3, New(-100, 100, Real))
	if math.Abs(got.Lo-(-2)) > 1e-9 || math.Abs(got.Hi-3) > 1e-9 {
		t.Fatalf("NthRoot(odd) = %v, want approx [-2,3]", got)
	}
}
