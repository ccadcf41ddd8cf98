package narrow

import "github.com/ridgeworks/GNU-CLP-BNR/ivl"

// clampBool forces iv into [0,1], the first step every Boolean Narrower
// performs before applying its truth table.
func clampBool(iv ivl.Interval) ivl.Interval {
	return ivl.Intersect(iv, ivl.BooleanDefault)
}

func invertBool(iv ivl.Interval) ivl.Interval {
	return ivl.Interval{Lo: 1 - iv.Hi, Hi: 1 - iv.Lo, Kind: ivl.Boolean}
}

// Not narrows (X,Z) for Z <-> ¬X.
func Not(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := clampBool(in[0]), clampBool(in[1])
	if x.IsPoint() {
		z = ivl.Intersect(z, boolPoint(1-x.Lo))
	}
	if z.IsPoint() {
		x = ivl.Intersect(x, boolPoint(1-z.Lo))
	}
	if x.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

// And narrows (X,Y,Z) for Z <-> X∧Y: Z=1 forces X=Y=1; X=0 (or Y=0) forces
// Z=0; both X,Y known pins Z directly; X=1 plus a known Z forces Y=Z, and
// symmetrically for Y=1.
func And(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := clampBool(in[0]), clampBool(in[1]), clampBool(in[2])
	if z.IsPoint() && z.Lo == 1 {
		x = ivl.Intersect(x, boolPoint(1))
		y = ivl.Intersect(y, boolPoint(1))
	}
	if x.IsPoint() && x.Lo == 0 {
		z = ivl.Intersect(z, boolPoint(0))
	}
	if y.IsPoint() && y.Lo == 0 {
		z = ivl.Intersect(z, boolPoint(0))
	}
	if x.IsPoint() && y.IsPoint() {
		v := 0.0
		if x.Lo == 1 && y.Lo == 1 {
			v = 1
		}
		z = ivl.Intersect(z, boolPoint(v))
	}
	if x.IsPoint() && x.Lo == 1 && z.IsPoint() {
		y = ivl.Intersect(y, boolPoint(z.Lo))
	}
	if y.IsPoint() && y.Lo == 1 && z.IsPoint() {
		x = ivl.Intersect(x, boolPoint(z.Lo))
	}
	if x.IsEmpty() || y.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Or narrows (X,Y,Z) for Z <-> X∨Y, the dual of And.
func Or(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := clampBool(in[0]), clampBool(in[1]), clampBool(in[2])
	if z.IsPoint() && z.Lo == 0 {
		x = ivl.Intersect(x, boolPoint(0))
		y = ivl.Intersect(y, boolPoint(0))
	}
	if x.IsPoint() && x.Lo == 1 {
		z = ivl.Intersect(z, boolPoint(1))
	}
	if y.IsPoint() && y.Lo == 1 {
		z = ivl.Intersect(z, boolPoint(1))
	}
	if x.IsPoint() && y.IsPoint() {
		v := 1.0
		if x.Lo == 0 && y.Lo == 0 {
			v = 0
		}
		z = ivl.Intersect(z, boolPoint(v))
	}
	if x.IsPoint() && x.Lo == 0 && z.IsPoint() {
		y = ivl.Intersect(y, boolPoint(z.Lo))
	}
	if y.IsPoint() && y.Lo == 0 && z.IsPoint() {
		x = ivl.Intersect(x, boolPoint(z.Lo))
	}
	if x.IsEmpty() || y.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Xor narrows (X,Y,Z) for Z <-> X⊕Y.
func Xor(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := clampBool(in[0]), clampBool(in[1]), clampBool(in[2])
	if x.IsPoint() && y.IsPoint() {
		v := 0.0
		if x.Lo != y.Lo {
			v = 1
		}
		z = ivl.Intersect(z, boolPoint(v))
	}
	if x.IsPoint() && z.IsPoint() {
		v := x.Lo
		if z.Lo == 1 {
			v = 1 - x.Lo
		}
		y = ivl.Intersect(y, boolPoint(v))
	}
	if y.IsPoint() && z.IsPoint() {
		v := y.Lo
		if z.Lo == 1 {
			v = 1 - y.Lo
		}
		x = ivl.Intersect(x, boolPoint(v))
	}
	if x.IsEmpty() || y.IsEmpty() || z.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, y, z}, true
}

// Nand narrows (X,Y,Z) for Z <-> ¬(X∧Y), reusing And on the negated
// output rather than duplicating its truth table.
func Nand(p Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	outs, ok := And(p, []ivl.Interval{x, y, invertBool(z)})
	if !ok {
		return nil, false
	}
	return []ivl.Interval{outs[0], outs[1], invertBool(outs[2])}, true
}

// Nor narrows (X,Y,Z) for Z <-> ¬(X∨Y), reusing Or the same way Nand reuses
// And.
func Nor(p Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	outs, ok := Or(p, []ivl.Interval{x, y, invertBool(z)})
	if !ok {
		return nil, false
	}
	return []ivl.Interval{outs[0], outs[1], invertBool(outs[2])}, true
}

// ImB narrows (X,Y,Z) for Z <-> (X⇒Y), implemented as ¬X∨Y so it reuses Or
// rather than a fourth hand-written truth table.
func ImB(p Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, y, z := in[0], in[1], in[2]
	outs, ok := Or(p, []ivl.Interval{invertBool(x), y, z})
	if !ok {
		return nil, false
	}
	return []ivl.Interval{invertBool(outs[0]), outs[1], outs[2]}, true
}
