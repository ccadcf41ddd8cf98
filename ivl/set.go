package ivl

import "math"

// Intersect returns x ∩ y: [max(Xl,Yl), min(Xh,Yh)]. The result may be
// empty (Hi<Lo); callers that must fail on an empty intersection check
// IsEmpty themselves. A NaN bound on either side (an undefined form such as
// 0/0 or ∞-∞ from package round) makes the result empty.
func Intersect(x, y Interval) Interval {
	if math.IsNaN(x.Lo) || math.IsNaN(x.Hi) || math.IsNaN(y.Lo) || math.IsNaN(y.Hi) {
		return Empty(x.Kind)
	}
	lo := x.Lo
	if y.Lo > lo {
		lo = y.Lo
	}
	hi := x.Hi
	if y.Hi < hi {
		hi = y.Hi
	}
	return Interval{Lo: lo, Hi: hi, Kind: x.Kind}
}

// Union returns x ∪ y: [min(Xl,Yl), max(Xh,Yh)]. Empty is the identity
// element: Union(empty, y) == y and vice versa.
func Union(x, y Interval) Interval {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	lo := x.Lo
	if y.Lo < lo {
		lo = y.Lo
	}
	hi := x.Hi
	if y.Hi > hi {
		hi = y.Hi
	}
	return Interval{Lo: lo, Hi: hi, Kind: x.Kind}
}

// Disjoint reports whether x and y share no point.
func Disjoint(x, y Interval) bool {
	return Intersect(x, y).IsEmpty()
}

// NotEqualPoint implements the integer "X ≠ Y" primitive: when Y is a point
// equal to X's low bound, raise the low bound by one; when equal to the high
// bound, lower the high bound by one; otherwise X is unchanged. Y must be a
// point (IsPoint); callers that know Y is not a point should skip calling
// this and leave X unchanged directly.
func NotEqualPoint(x Interval, yPoint float64) Interval {
	switch {
	case x.Kind == Integer && yPoint == x.Lo:
		return Interval{Lo: x.Lo + 1, Hi: x.Hi, Kind: x.Kind}
	case x.Kind == Integer && yPoint == x.Hi:
		return Interval{Lo: x.Lo, Hi: x.Hi - 1, Kind: x.Kind}
	default:
		return x
	}
}
