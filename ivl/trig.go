package ivl

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl/round"
)

const (
	sinCosPeriod = 2 * math.Pi
	tanPeriod    = math.Pi
)

// Wrap projects X onto the principal cylinder [-period/2,+period/2] by
// choosing a single integer multiplier m = round(Xl/period) =
// round(Xh/period). It fails (ok=false) when X spans more than one cylinder
// or is wider than one period, leaving the caller to decide how to proceed
// (split at a cylinder boundary, or fall back to the function's full
// codomain).
func Wrap(x Interval, period float64) (xp Interval, m float64, ok bool) {
	if x.Hi-x.Lo > period {
		return Interval{}, 0, false
	}
	ml := math.Round(x.Lo / period)
	mh := math.Round(x.Hi / period)
	if ml != mh {
		return Interval{}, 0, false
	}
	return Interval{Lo: x.Lo - period*ml, Hi: x.Hi - period*ml, Kind: x.Kind}, ml, true
}

// Unwrap is Wrap's inverse: X <- Xp + period*m.
func Unwrap(xp Interval, period, m float64) Interval {
	return Interval{Lo: xp.Lo + period*m, Hi: xp.Hi + period*m, Kind: xp.Kind}
}

// WrappedPart is one piece of WrapOrSplit's output: a sub-interval already
// projected onto its cylinder's principal range, paired with the multiplier
// Unwrap needs to map a solution found on Part back into X's own cylinder.
type WrappedPart struct {
	Part Interval
	M    float64
}

// WrapOrSplit is Wrap generalized to also accept the "adjacent cylinders"
// case (Mh-Ml==1): it splits X at the shared cylinder boundary and returns
// one wrapped piece per cylinder, each carrying its own multiplier, so a
// caller that inverts a function sector-by-sector can unwrap each piece
// through the cylinder it actually came from rather than assuming X sits in
// the principal one.
func WrapOrSplit(x Interval, period float64) []WrappedPart {
	if xp, m, ok := Wrap(x, period); ok {
		return []WrappedPart{{xp, m}}
	}
	if x.Hi-x.Lo > period {
		return nil
	}
	ml := math.Round(x.Lo / period)
	mh := math.Round(x.Hi / period)
	if mh-ml != 1 {
		return nil
	}
	boundary := (ml + 0.5) * period
	left := Interval{Lo: x.Lo - period*ml, Hi: boundary - period*ml, Kind: x.Kind}
	right := Interval{Lo: boundary - period*mh, Hi: x.Hi - period*mh, Kind: x.Kind}
	return []WrappedPart{{left, ml}, {right, mh}}
}

// wrapOrSplit is WrapOrSplit stripped down to the projected parts, for the
// forward Sin/Cos/Tan callers below that never need to unwrap.
func wrapOrSplit(x Interval, period float64) []Interval {
	parts := WrapOrSplit(x, period)
	if parts == nil {
		return nil
	}
	out := make([]Interval, len(parts))
	for i, p := range parts {
		out[i] = p.Part
	}
	return out
}

// monotoneEndpoints safely encloses f(x) for any x in [lo,hi] when f is
// monotone (in either direction) over that range, by evaluating f at both
// endpoints in both rounding directions and taking the outer min/max. This
// avoids hand-encoding which way each trig sector runs.
func monotoneEndpoints(lo, hi float64, f func(float64, round.Dir) float64) Interval {
	a, b := f(lo, round.Lo), f(lo, round.Hi)
	c, d := f(hi, round.Lo), f(hi, round.Hi)
	return Interval{
		Lo: math.Min(math.Min(a, b), math.Min(c, d)),
		Hi: math.Max(math.Max(a, b), math.Max(c, d)),
		Kind: Real,
	}
}

// sinSectors applies sin to xp, a same-cylinder projection already inside
// [-π,π], by splitting it into its three convex monotone sectors and
// unioning the per-sector results.
func sinSectors(xp Interval) Interval {
	sectors := [][2]float64{{-math.Pi, -math.Pi / 2}, {-math.Pi / 2, math.Pi / 2}, {math.Pi / 2, math.Pi}}
	result := Empty(Real)
	for _, s := range sectors {
		part := Intersect(xp, Interval{Lo: s[0], Hi: s[1], Kind: Real})
		if part.IsEmpty() {
			continue
		}
		result = Union(result, monotoneEndpoints(part.Lo, part.Hi, round.Sin))
	}
	return result
}

// cosSectors is sinSectors' analogue for cos's two monotone sectors.
func cosSectors(xp Interval) Interval {
	sectors := [][2]float64{{-math.Pi, 0}, {0, math.Pi}}
	result := Empty(Real)
	for _, s := range sectors {
		part := Intersect(xp, Interval{Lo: s[0], Hi: s[1], Kind: Real})
		if part.IsEmpty() {
			continue
		}
		result = Union(result, monotoneEndpoints(part.Lo, part.Hi, round.Cos))
	}
	return result
}

// Sin returns sin(X). When X is too wide to wrap onto a single or pair of
// adjacent cylinders, it safely falls back to the full codomain [-1,1]
// without touching X: e.g. sin([0,3π]) yields [-1,1] with X untouched
// rather than an unsound tighter enclosure.
func Sin(x Interval) Interval {
	if x.IsEmpty() {
		return Empty(Real)
	}
	parts := wrapOrSplit(x, sinCosPeriod)
	if parts == nil {
		return Interval{Lo: -1, Hi: 1, Kind: Real}
	}
	result := Empty(Real)
	for _, p := range parts {
		result = Union(result, sinSectors(p))
	}
	return result
}

// Cos returns cos(X), mirroring Sin.
func Cos(x Interval) Interval {
	if x.IsEmpty() {
		return Empty(Real)
	}
	parts := wrapOrSplit(x, sinCosPeriod)
	if parts == nil {
		return Interval{Lo: -1, Hi: 1, Kind: Real}
	}
	result := Empty(Real)
	for _, p := range parts {
		result = Union(result, cosSectors(p))
	}
	return result
}

// tanAsymptoteGuard reports whether xp (already wrapped into [-π/2,π/2])
// touches or crosses tan's asymptote, in which case no finite enclosure of
// tan(xp) exists within a single interval.
func tanAsymptoteGuard(xp Interval) bool {
	const edge = math.Pi / 2
	return xp.Lo <= -edge || xp.Hi >= edge
}

// Tan returns tan(X). tan is monotone increasing within a single cylinder
// of period π, so no sector splitting is needed once X is wrapped; a
// sub-interval that reaches the ±π/2 asymptote conservatively widens to the
// universal interval.
func Tan(x Interval) Interval {
	if x.IsEmpty() {
		return Empty(Real)
	}
	parts := wrapOrSplit(x, tanPeriod)
	if parts == nil {
		return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: Real}
	}
	result := Empty(Real)
	for _, p := range parts {
		if tanAsymptoteGuard(p) {
			result = Union(result, Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: Real})
			continue
		}
		result = Union(result, Interval{Lo: round.Tan(p.Lo, round.Lo), Hi: round.Tan(p.Hi, round.Hi), Kind: Real})
	}
	return result
}

// Asin is the monotone increasing inverse of sin restricted to its
// principal branch [-π/2,π/2], domain-clamped to [-1,1].
func Asin(z Interval) Interval {
	lo, hi := z.Lo, z.Hi
	if hi < -1 || lo > 1 {
		return Empty(Real)
	}
	if lo < -1 {
		lo = -1
	}
	if hi > 1 {
		hi = 1
	}
	return Interval{Lo: round.Asin(lo, round.Lo), Hi: round.Asin(hi, round.Hi), Kind: Real}
}

// Acos is monotone decreasing: low <- acos(Xh), high <- acos(Xl).
func Acos(z Interval) Interval {
	lo, hi := z.Lo, z.Hi
	if hi < -1 || lo > 1 {
		return Empty(Real)
	}
	if lo < -1 {
		lo = -1
	}
	if hi > 1 {
		hi = 1
	}
	return Interval{Lo: round.Acos(hi, round.Lo), Hi: round.Acos(lo, round.Hi), Kind: Real}
}

// Atan is monotone increasing over the whole real line.
func Atan(z Interval) Interval {
	return Interval{Lo: round.Atan(z.Lo, round.Lo), Hi: round.Atan(z.Hi, round.Hi), Kind: Real}
}
