package ivl

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl/round"
)

// Empty is a convenience constructor for the failure sentinel (Hi<Lo).
// Narrowers observe IsEmpty on a result and signal failure to the host;
// the arithmetic in this file never interprets it further.
func Empty(k Kind) Interval {
	return Interval{Lo: 1, Hi: 0, Kind: k}
}

// Add returns X+Y, outward rounded for Real intervals and saturating on
// overflow for Integer intervals.
func Add(x, y Interval) Interval {
	if x.Kind == Integer {
		return Interval{Lo: round.IntAdd(x.Lo, y.Lo), Hi: round.IntAdd(x.Hi, y.Hi), Kind: x.Kind}
	}
	return Interval{Lo: round.Add(x.Lo, y.Lo, round.Lo), Hi: round.Add(x.Hi, y.Hi, round.Hi), Kind: x.Kind}
}

// Sub returns X-Y: [Xl-Yh rounded down, Xh-Yl rounded up].
func Sub(x, y Interval) Interval {
	if x.Kind == Integer {
		return Interval{Lo: round.IntSub(x.Lo, y.Hi), Hi: round.IntSub(x.Hi, y.Lo), Kind: x.Kind}
	}
	return Interval{Lo: round.Sub(x.Lo, y.Hi, round.Lo), Hi: round.Sub(x.Hi, y.Lo, round.Hi), Kind: x.Kind}
}

// Negate returns -X.
func Negate(x Interval) Interval {
	return Interval{Lo: -x.Hi, Hi: -x.Lo, Kind: x.Kind}
}

// Mul returns X·Y via the nine-case sign-class dispatch, special-cased to
// [0,0] when either operand is exactly zero.
func Mul(x, y Interval) Interval {
	if x.IsZero() || y.IsZero() {
		return Point(0, x.Kind)
	}
	mulFn := round.Mul
	if x.Kind == Integer {
		mulFn = func(a, b float64, _ round.Dir) float64 { return round.IntMul(a, b) }
	}
	xs, ys := x.Sign(), y.Sign()
	var lo, hi float64
	switch {
	case xs == SignPositive && ys == SignPositive:
		lo, hi = mulFn(x.Lo, y.Lo, round.Lo), mulFn(x.Hi, y.Hi, round.Hi)
	case xs == SignPositive && ys == SignNegative:
		lo, hi = mulFn(x.Hi, y.Lo, round.Lo), mulFn(x.Lo, y.Hi, round.Hi)
	case xs == SignPositive && ys == SignStraddle:
		lo, hi = mulFn(x.Hi, y.Lo, round.Lo), mulFn(x.Hi, y.Hi, round.Hi)
	case xs == SignNegative && ys == SignPositive:
		lo, hi = mulFn(x.Lo, y.Hi, round.Lo), mulFn(x.Hi, y.Lo, round.Hi)
	case xs == SignNegative && ys == SignNegative:
		lo, hi = mulFn(x.Hi, y.Hi, round.Lo), mulFn(x.Lo, y.Lo, round.Hi)
	case xs == SignNegative && ys == SignStraddle:
		lo, hi = mulFn(x.Lo, y.Hi, round.Lo), mulFn(x.Lo, y.Lo, round.Hi)
	case xs == SignStraddle && ys == SignPositive:
		lo, hi = mulFn(x.Lo, y.Hi, round.Lo), mulFn(x.Hi, y.Hi, round.Hi)
	case xs == SignStraddle && ys == SignNegative:
		lo, hi = mulFn(x.Hi, y.Lo, round.Lo), mulFn(x.Lo, y.Lo, round.Hi)
	default: // both straddle
		lo = math.Min(mulFn(x.Lo, y.Hi, round.Lo), mulFn(x.Hi, y.Lo, round.Lo))
		hi = math.Max(mulFn(x.Lo, y.Lo, round.Hi), mulFn(x.Hi, y.Hi, round.Hi))
	}
	return Interval{Lo: lo, Hi: hi, Kind: x.Kind}
}

// reciprocal returns 1/Y for a Y that does not straddle zero (Yl>=0 or
// Yh<=0, including a zero endpoint); Div handles the straddling and
// both-zero cases itself before ever calling this. round.Div's generic
// x/0 rule (copysign(Inf,x)) assumes a point divisor and so always returns
// +Inf for a 1/0 lookup; that is right when the zero endpoint is Y's lower
// bound (a positive-class Y approaching 0 from above) but wrong when it is
// Y's upper bound (a negative-class Y approaching 0 from below, where the
// reciprocal diverges to -Inf) — handled explicitly below instead of
// relying on round.Div to know which side of zero it is on.
func reciprocal(y Interval) Interval {
	lo := round.Div(1, y.Hi, round.Lo)
	if y.Hi == 0 {
		lo = math.Inf(-1)
	}
	hi := round.Div(1, y.Lo, round.Hi)
	if y.Lo == 0 {
		hi = math.Inf(1)
	}
	return Interval{Lo: lo, Hi: hi, Kind: y.Kind}
}

// Div returns X/Y: universal when Y properly straddles zero (or [0,0] when
// X is [0,0]), Y=[0,0] requires X to straddle zero (else fails), and
// division by an endpoint of zero saturates to ±∞ by operand sign (set
// explicitly by reciprocal, not by round.Div's point-divisor rule).
func Div(x, y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty(x.Kind)
	}
	if y.IsZero() {
		if x.Lo <= 0 && x.Hi >= 0 {
			return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: x.Kind}
		}
		return Empty(x.Kind)
	}
	if y.Lo < 0 && y.Hi > 0 {
		// Y properly straddles zero: the safe single-interval enclosure of
		// X/Y is the whole line unless X is exactly zero.
		if x.IsZero() {
			return Point(0, x.Kind)
		}
		return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: x.Kind}
	}
	return Mul(x, reciprocal(y))
}

// Min returns the endpointwise minimum of X and Y.
func Min(x, y Interval) Interval {
	return Interval{Lo: math.Min(x.Lo, y.Lo), Hi: math.Min(x.Hi, y.Hi), Kind: x.Kind}
}

// Max returns the endpointwise maximum of X and Y.
func Max(x, y Interval) Interval {
	return Interval{Lo: math.Max(x.Lo, y.Lo), Hi: math.Max(x.Hi, y.Hi), Kind: x.Kind}
}

// Abs returns |X|.
func Abs(x Interval) Interval {
	switch x.Sign() {
	case SignPositive:
		return x
	case SignNegative:
		return Negate(x)
	default:
		return Interval{Lo: 0, Hi: math.Max(-x.Lo, x.Hi), Kind: x.Kind}
	}
}

// Integral applies inward rounding to integer bounds: low <- ceil(Xl), high
// <- floor(Xh). The result may be empty (ceil(Xl)>floor(Xh)); the caller
// treats that as Narrower failure.
func Integral(x Interval) Interval {
	return Interval{Lo: math.Ceil(x.Lo), Hi: math.Floor(x.Hi), Kind: Integer}
}
