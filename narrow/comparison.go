package narrow

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

func boolPoint(v float64) ivl.Interval { return ivl.Point(v, ivl.Boolean) }

// Eq narrows (X,Y,Z) for Z <-> X=Y.
func Eq(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	switch {
	case z.IsPoint() && z.Lo == 1:
		xy := ivl.Intersect(x, y)
		if xy.IsEmpty() {
			return nil, false
		}
		x, y = xy, xy
	case ivl.Disjoint(x, y):
		z = ivl.Intersect(z, boolPoint(0))
	case x.IsPoint() && y.IsPoint() && x.Lo == y.Lo:
		z = ivl.Intersect(z, boolPoint(1))
	default:
		z = ivl.Intersect(z, ivl.BooleanDefault)
	}
	if x.IsEmpty() || y.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Ne narrows (X,Y,Z) for Z <-> X!=Y, the dual of Eq.
func Ne(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	switch {
	case ivl.Disjoint(x, y):
		z = ivl.Intersect(z, boolPoint(1))
	case x.IsPoint() && y.IsPoint() && x.Lo == y.Lo:
		z = ivl.Intersect(z, boolPoint(0))
	default:
		z = ivl.Intersect(z, ivl.BooleanDefault)
	}
	if z.IsEmpty() {
		return nil, false
	}
	if z.IsPoint() && z.Lo == 1 {
		if y.IsPoint() {
			x = ivl.NotEqualPoint(x, y.Lo)
		}
		if x.IsPoint() {
			y = ivl.NotEqualPoint(y, x.Lo)
		}
	}
	if x.IsEmpty() || y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Lt narrows (X,Y,Z) for Z <-> X<Y, using integer boundaries (Yh-1, Xl+1)
// when Z is persistently true and the operands are integer-kinded.
func Lt(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	switch {
	case x.Hi < y.Lo:
		z = ivl.Intersect(z, boolPoint(1))
	case y.Hi <= x.Lo:
		z = ivl.Intersect(z, boolPoint(0))
	default:
		z = ivl.Intersect(z, ivl.BooleanDefault)
	}
	if z.IsEmpty() {
		return nil, false
	}
	if z.IsPoint() && z.Lo == 1 {
		hiBound, loBound := y.Hi, x.Lo
		if x.Kind == ivl.Integer {
			hiBound, loBound = y.Hi-1, x.Lo+1
		}
		x = ivl.Intersect(x, ivl.Interval{Lo: math.Inf(-1), Hi: hiBound, Kind: x.Kind})
		y = ivl.Intersect(y, ivl.Interval{Lo: loBound, Hi: math.Inf(1), Kind: y.Kind})
	}
	if x.IsEmpty() || y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Le narrows (X,Y,Z) for Z <-> X<=Y, delegating the persistently-false case
// to Lt(Y,X): X<=Y is false exactly when Y<X.
func Le(p Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	switch {
	case x.Hi <= y.Lo:
		z = ivl.Intersect(z, boolPoint(1))
	case y.Hi < x.Lo:
		z = ivl.Intersect(z, boolPoint(0))
	default:
		z = ivl.Intersect(z, ivl.BooleanDefault)
	}
	if z.IsEmpty() {
		return nil, false
	}
	switch {
	case z.IsPoint() && z.Lo == 1:
		x = ivl.Intersect(x, ivl.Interval{Lo: math.Inf(-1), Hi: y.Hi, Kind: x.Kind})
		y = ivl.Intersect(y, ivl.Interval{Lo: x.Lo, Hi: math.Inf(1), Kind: y.Kind})
	case z.IsPoint() && z.Lo == 0:
		outs, ok := Lt(p, []ivl.Interval{y, x, boolPoint(1)})
		if !ok {
			return nil, false
		}
		y, x = outs[0], outs[1]
	}
	if x.IsEmpty() || y.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Sub narrows (X,Y,Z) for Z <-> X⊆Y; Y is only tested against and is
// returned unchanged.
func Sub(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	meet := ivl.Intersect(x, y)
	if !meet.IsEmpty() {
		x = meet
		z = ivl.Intersect(z, boolPoint(1))
	} else {
		z = ivl.Intersect(z, boolPoint(0))
	}
	if x.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}
