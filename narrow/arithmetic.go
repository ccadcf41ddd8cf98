package narrow

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

// odivNarrow tightens current using the quotient z/divisor: when divisor
// straddles zero, the quotient is split into the two half-lines implied by
// divisor's positive and negative parts. Each half-line is intersected with
// current *before* the two are combined — combining first would hand back
// the full line, since ivl.Union is a convex hull, not a true set union,
// and the hull of two disjoint half-lines is everything in between. This
// order is what keeps only the half-line consistent with current's
// existing bound.
func odivNarrow(z, divisor, current ivl.Interval) ivl.Interval {
	if divisor.Lo < 0 && divisor.Hi > 0 {
		pos := ivl.Intersect(divisor, ivl.Interval{Lo: 0, Hi: math.Inf(1), Kind: divisor.Kind})
		neg := ivl.Intersect(divisor, ivl.Interval{Lo: math.Inf(-1), Hi: 0, Kind: divisor.Kind})
		fromPos := ivl.Intersect(current, ivl.Div(z, pos))
		fromNeg := ivl.Intersect(current, ivl.Div(z, neg))
		return ivl.Union(fromPos, fromNeg)
	}
	return ivl.Intersect(current, ivl.Div(z, divisor))
}

// Add narrows (X,Y,Z) for Z=X+Y.
func Add(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	z = ivl.Intersect(z, ivl.Add(x, y))
	if z.IsEmpty() {
		return nil, false
	}
	x = ivl.Intersect(x, ivl.Sub(z, y))
	if x.IsEmpty() {
		return nil, false
	}
	y = ivl.Intersect(y, ivl.Sub(z, x))
	if y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Mul narrows (X,Y,Z) for Z=X*Y.
func Mul(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	z = ivl.Intersect(z, ivl.Mul(x, y))
	if z.IsEmpty() {
		return nil, false
	}
	if !x.IsZero() {
		y = odivNarrow(z, x, y)
		if y.IsEmpty() {
			return nil, false
		}
	}
	if !y.IsZero() {
		x = odivNarrow(z, y, x)
		if x.IsEmpty() {
			return nil, false
		}
	}
	return []ivl.Interval{x, y, z}, true
}

// Minus narrows (X,Z) for Z=-X.
func Minus(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Negate(x))
	if z.IsEmpty() {
		return nil, false
	}
	x = ivl.Intersect(x, ivl.Negate(z))
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

// Abs narrows (X,Z) for Z=|X|.
func Abs(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Abs(x))
	if z.IsEmpty() {
		return nil, false
	}
	negBranch := ivl.Intersect(ivl.Interval{Lo: -z.Hi, Hi: -z.Lo, Kind: x.Kind}, x)
	posBranch := ivl.Intersect(ivl.Interval{Lo: z.Lo, Hi: z.Hi, Kind: x.Kind}, x)
	x = ivl.Union(negBranch, posBranch)
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

// Min narrows (X,Y,Z) for Z=min(X,Y). Every operand must
// lie in [Zl,+inf) regardless of which sub-case applies: min(x,y)=z<Zl is
// impossible since min(x,y)<=x and min(x,y)<=y. An operand whose entire
// range lies above Z's upper bound (disjoint from (-inf,Zh]) can never be
// the one realizing the minimum, so the other operand is then forced to
// equal Z exactly.
func Min(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	z = ivl.Intersect(z, ivl.Min(x, y))
	if z.IsEmpty() {
		return nil, false
	}
	floor := ivl.Interval{Lo: z.Lo, Hi: math.Inf(1), Kind: z.Kind}
	reach := ivl.Interval{Lo: math.Inf(-1), Hi: z.Hi, Kind: z.Kind}
	x = ivl.Intersect(x, floor)
	y = ivl.Intersect(y, floor)
	switch {
	case ivl.Disjoint(reach, x):
		y = ivl.Intersect(y, z)
	case ivl.Disjoint(reach, y):
		x = ivl.Intersect(x, z)
	}
	if x.IsEmpty() || y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Max narrows (X,Y,Z) for Z=max(X,Y), the mirror image of Min: every
// operand must lie in (-inf,Zh], and an operand disjoint from [Zl,+inf)
// can never be the one realizing the maximum.
func Max(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	z = ivl.Intersect(z, ivl.Max(x, y))
	if z.IsEmpty() {
		return nil, false
	}
	ceiling := ivl.Interval{Lo: math.Inf(-1), Hi: z.Hi, Kind: z.Kind}
	reach := ivl.Interval{Lo: z.Lo, Hi: math.Inf(1), Kind: z.Kind}
	x = ivl.Intersect(x, ceiling)
	y = ivl.Intersect(y, ceiling)
	switch {
	case ivl.Disjoint(reach, x):
		y = ivl.Intersect(y, z)
	case ivl.Disjoint(reach, y):
		x = ivl.Intersect(x, z)
	}
	if x.IsEmpty() || y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Exp narrows (X,Z) for Z=exp(X).
func Exp(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Exp(x))
	if z.IsEmpty() {
		return nil, false
	}
	x = ivl.Intersect(x, ivl.Log(z))
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

func isIntegerValue(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}

// Pow narrows (X,Y,Z) for Z=X**Y across three branches: a zero exponent,
// a fixed integer exponent, and the general case.
func Pow(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]

	if y.IsZero() {
		z = ivl.Intersect(z, ivl.Point(1, z.Kind))
		if z.IsEmpty() {
			return nil, false
		}
		return []ivl.Interval{x, y, z}, true
	}

	if y.IsPoint() && isIntegerValue(y.Lo) {
		n := int(y.Lo)
		z = ivl.Intersect(z, ivl.IntPow(x, n))
		if z.IsEmpty() {
			return nil, false
		}
		x = ivl.Intersect(x, ivl.NthRoot(z, n, x))
		if x.IsEmpty() {
			return nil, false
		}
		return []ivl.Interval{x, y, z}, true
	}

	// General case: X>=0 is required for a real-valued log(X).
	x = ivl.Intersect(x, ivl.Interval{Lo: 0, Hi: math.Inf(1), Kind: x.Kind})
	if x.IsEmpty() {
		return nil, false
	}
	z = ivl.Intersect(z, ivl.PowGeneral(x, y))
	if z.IsEmpty() {
		return nil, false
	}
	yInv := ivl.Div(ivl.Point(1, y.Kind), y)
	x = ivl.Intersect(x, ivl.PowGeneral(z, yInv))
	if x.IsEmpty() {
		return nil, false
	}
	if x.Lo > 0 {
		lx := ivl.Log(x)
		if !lx.IsZero() {
			y = ivl.Intersect(y, ivl.Div(ivl.Log(z), lx))
			if y.IsEmpty() {
				return nil, false
			}
		}
	}
	return []ivl.Interval{x, y, z}, true
}

// Integral narrows (X) by inward-rounding to integer bounds.
func Integral(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x := ivl.Integral(in[0])
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x}, true
}
