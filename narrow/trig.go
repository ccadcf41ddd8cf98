package narrow

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

// backWrap inverts one forward sector of sin/cos/tan: it wraps X onto the
// relevant cylinder(s), maps the candidate principal-branch solution
// (already intersected with Z's preimage under the sector reflection) back
// through each cylinder piece using that piece's own multiplier, and unions
// the unwrapped results with X. When wrapping fails outright (X too wide),
// X is left unchanged, mirroring the forward Narrowers' own fallback to the
// full codomain.
func backWrap(x ivl.Interval, period float64, candidate func(xp ivl.Interval) ivl.Interval) ivl.Interval {
	parts := ivl.WrapOrSplit(x, period)
	if parts == nil {
		return x
	}
	result := ivl.Empty(x.Kind)
	for _, p := range parts {
		fit := ivl.Intersect(p.Part, candidate(p.Part))
		if fit.IsEmpty() {
			continue
		}
		result = ivl.Union(result, ivl.Unwrap(fit, period, p.M))
	}
	return ivl.Intersect(x, result)
}

// unionSectorsOverlapping intersects each of candidates with xp before
// unioning them, so a branch that lies outside xp's sector contributes
// nothing instead of forcing the hull all the way out to it. Skipping this
// step is what silently widened the result back to xp whenever only one
// reflected branch actually applied.
func unionSectorsOverlapping(xp ivl.Interval, candidates ...ivl.Interval) ivl.Interval {
	result := ivl.Empty(xp.Kind)
	for _, c := range candidates {
		part := ivl.Intersect(xp, c)
		if part.IsEmpty() {
			continue
		}
		result = ivl.Union(result, part)
	}
	return result
}

// sinInverseOnSector maps a candidate Z back through sin's three monotone
// sectors of a single cylinder: the middle sector via asin directly, the
// outer two via the reflection x = ±π - asin(z).
func sinInverseOnSector(z ivl.Interval) func(ivl.Interval) ivl.Interval {
	return func(xp ivl.Interval) ivl.Interval {
		principal := ivl.Asin(z)
		if principal.IsEmpty() {
			return ivl.Empty(xp.Kind)
		}
		reflectedLeft := ivl.Interval{Lo: -math.Pi - principal.Hi, Hi: -math.Pi - principal.Lo, Kind: xp.Kind}
		reflectedRight := ivl.Interval{Lo: math.Pi - principal.Hi, Hi: math.Pi - principal.Lo, Kind: xp.Kind}
		return unionSectorsOverlapping(xp, principal, reflectedLeft, reflectedRight)
	}
}

// cosInverseOnSector is sinInverseOnSector's analogue for cos's two sectors,
// reflected by negation rather than by ±π - x.
func cosInverseOnSector(z ivl.Interval) func(ivl.Interval) ivl.Interval {
	return func(xp ivl.Interval) ivl.Interval {
		principal := ivl.Acos(z)
		if principal.IsEmpty() {
			return ivl.Empty(xp.Kind)
		}
		negated := ivl.Interval{Lo: -principal.Hi, Hi: -principal.Lo, Kind: xp.Kind}
		return unionSectorsOverlapping(xp, principal, negated)
	}
}

// Sin narrows (X,Z) for Z=sin(X).
func Sin(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Sin(x))
	if z.IsEmpty() {
		return nil, false
	}
	x = backWrap(x, 2*math.Pi, sinInverseOnSector(z))
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

// Cos narrows (X,Z) for Z=cos(X), mirroring Sin.
func Cos(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Cos(x))
	if z.IsEmpty() {
		return nil, false
	}
	x = backWrap(x, 2*math.Pi, cosInverseOnSector(z))
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}

// Tan narrows (X,Z) for Z=tan(X); tan is monotone within a cylinder so no
// reflection is needed on the backward step.
func Tan(_ Params, in []ivl.Interval) ([]ivl.Interval, bool) {
	x, z := in[0], in[1]
	z = ivl.Intersect(z, ivl.Tan(x))
	if z.IsEmpty() {
		return nil, false
	}
	x = backWrap(x, math.Pi, func(ivl.Interval) ivl.Interval { return ivl.Atan(z) })
	if x.IsEmpty() {
		return nil, false
	}
	return []ivl.Interval{x, z}, true
}
