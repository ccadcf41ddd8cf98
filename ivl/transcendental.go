package ivl

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl/round"
)

// Exp returns exp(X), clamped below at 0 since exp is always positive.
func Exp(x Interval) Interval {
	lo := round.Exp(x.Lo, round.Lo)
	if lo < 0 {
		lo = 0
	}
	return Interval{Lo: lo, Hi: round.Exp(x.Hi, round.Hi), Kind: x.Kind}
}

// Log returns log(X); requires Xh>0, else fails.
func Log(x Interval) Interval {
	if x.Hi <= 0 {
		return Empty(x.Kind)
	}
	lo := x.Lo
	if lo < 0 {
		lo = 0
	}
	return Interval{Lo: round.Log(lo, round.Lo), Hi: round.Log(x.Hi, round.Hi), Kind: x.Kind}
}

// PowGeneral returns X**Y for general (non-integer or interval) exponents
// via exp(Y·log(X)).
func PowGeneral(x, y Interval) Interval {
	lg := Log(x)
	if lg.IsEmpty() {
		return Empty(x.Kind)
	}
	return Exp(Mul(y, lg))
}

// ipowEndpoint raises v to the integer power n (the sign of the result
// follows from v's sign and n's parity), preserving "exact zero stays exact zero": ipowLo(0,N)=ipowHi(0,N)=0,
// never nudged to the smallest subnormal.
func ipowEndpoint(v float64, n int, dir round.Dir) float64 {
	if v == 0 {
		return 0
	}
	if math.IsInf(v, 0) {
		r := math.Pow(v, float64(n))
		return r
	}
	return round.Pow(v, float64(n), dir)
}

// IntPow returns X**N for a fixed integer exponent N, dispatching on the
// sign class of X, the sign of N, and the parity of N.
func IntPow(x Interval, n int) Interval {
	switch {
	case n == 0:
		// 0**0 = [1,1] by convention; every other base raised to the zeroth
		// power is also 1.
		return Point(1, x.Kind)
	case n > 0:
		return intPowPositive(x, n)
	default:
		return intPowNegative(x, -n)
	}
}

func intPowPositive(x Interval, n int) Interval {
	even := n%2 == 0
	switch x.Sign() {
	case SignPositive:
		return Interval{Lo: ipowEndpoint(x.Lo, n, round.Lo), Hi: ipowEndpoint(x.Hi, n, round.Hi), Kind: x.Kind}
	case SignNegative:
		if even {
			return Interval{Lo: ipowEndpoint(x.Hi, n, round.Lo), Hi: ipowEndpoint(x.Lo, n, round.Hi), Kind: x.Kind}
		}
		return Interval{Lo: ipowEndpoint(x.Lo, n, round.Lo), Hi: ipowEndpoint(x.Hi, n, round.Hi), Kind: x.Kind}
	default: // straddle
		if even {
			hi := math.Max(ipowEndpoint(-x.Lo, n, round.Hi), ipowEndpoint(x.Hi, n, round.Hi))
			return Interval{Lo: 0, Hi: hi, Kind: x.Kind}
		}
		return Interval{Lo: ipowEndpoint(x.Lo, n, round.Lo), Hi: ipowEndpoint(x.Hi, n, round.Hi), Kind: x.Kind}
	}
}

// intPowNegative handles X**(-m), m>0, via 1/(X**m). A zero in X saturates
// to infinity rather than failing.
func intPowNegative(x Interval, m int) Interval {
	if x.Lo <= 0 && x.Hi >= 0 {
		if m%2 == 0 {
			return Interval{Lo: 0, Hi: math.Inf(1), Kind: x.Kind}
		}
		return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: x.Kind}
	}
	return reciprocal(intPowPositive(x, m))
}

// root applies the real nth root to a single signed value, preserving sign
// for odd n (so it is defined over the whole real line) and assuming v>=0
// for even n (callers clamp before calling root with an even n). An exact
// integer root (the square root of 4, say) is returned without outward
// adjustment.
func root(v float64, n int, dir round.Dir) float64 {
	if v == 0 {
		return 0
	}
	if n%2 != 0 && v < 0 {
		// Negating flips the bound's side, so round the magnitude the other way.
		opp := round.Lo
		if dir == round.Lo {
			opp = round.Hi
		}
		return -root(-v, n, opp)
	}
	if r := math.Round(math.Pow(v, 1/float64(n))); v < 1<<53 && math.Pow(r, float64(n)) == v {
		return r
	}
	return round.Pow(v, 1/float64(n), dir)
}

// NthRoot solves x**n ∈ pow for x, using the current bound on the base
// (base) to pick the correct branch when n is even: odd n is globally
// monotone; even n requires pow>=0 and, when base itself straddles zero,
// unions the positive and negative root branches (the same convex-hull
// "union" the teacher's Interval.Union performs, not a literal set union).
func NthRoot(pow Interval, n int, base Interval) Interval {
	if n%2 != 0 {
		return Interval{Lo: root(pow.Lo, n, round.Lo), Hi: root(pow.Hi, n, round.Hi), Kind: base.Kind}
	}
	if pow.Hi < 0 {
		return Empty(base.Kind) // negative power value, even N: no real root
	}
	// Only pow.Hi bounds the branch; pow.Lo is deliberately not used to raise
	// the inner radius. E.g. nthroot([1,4],2,base=[-5,0]) -> [-2,0], not
	// [-2,-1]: the lower pow bound does not propagate back into X here.
	posHi := root(pow.Hi, n, round.Hi)
	posBranch := Interval{Lo: 0, Hi: posHi, Kind: base.Kind}
	negBranch := Interval{Lo: -posHi, Hi: 0, Kind: base.Kind}
	switch {
	case base.Lo >= 0:
		return posBranch
	case base.Hi <= 0:
		return negBranch
	default:
		return Union(posBranch, negBranch)
	}
}
