// Package round implements outward-rounded evaluation of single elementary
// IEEE-754 operations (FloatRound) and saturating integer arithmetic
// (IntOverflow). Every exported function here absorbs overflow, underflow
// and indeterminate forms internally and never panics: callers in package
// ivl get back either a value that encloses the exact result or a sentinel
// that ivl converts into Narrower failure.
package round

import "math"

// Dir selects which direction a single elementary op should be rounded.
type Dir int

const (
	Lo Dir = iota
	Hi
)

// nextDown returns the greatest representable float64 strictly less than r,
// or r itself at -Inf (where "strictly less" has no representable answer).
func nextDown(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, -1) {
		return r
	}
	return math.Nextafter(r, math.Inf(-1))
}

// nextUp returns the least representable float64 strictly greater than r.
func nextUp(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 1) {
		return r
	}
	return math.Nextafter(r, math.Inf(1))
}

// Adjust nudges r one representable step outward in direction dir:
// lo(r) = nextdown(r), hi(r) = nextup(r). Exact values (integers, infinities)
// should not be passed through Adjust — callers that know a result is exact
// skip rounding entirely.
func Adjust(r float64, dir Dir) float64 {
	if dir == Lo {
		return nextDown(r)
	}
	return nextUp(r)
}

// Eval evaluates a single elementary op f at round-to-nearest (Go's default
// float64 semantics already give round-to-nearest for +,-,*,/ and the
// math package's elementary functions are specified to be within ~1 ulp of
// the exact result) and nudges the result outward by one representable
// step. f must compute exactly one elementary expression; composing several
// ops inside f loses the bit-accuracy guarantee the outward nudge depends on.
func Eval(dir Dir, f func() float64) float64 {
	r := f()
	if math.IsNaN(r) {
		return r
	}
	return Adjust(r, dir)
}

// exactInt reports whether v is an integer of magnitude below 2^53, the range
// in which float64 holds every integer exactly.
func exactInt(v float64) bool {
	return v == math.Trunc(v) && math.Abs(v) < 1<<53
}

// evalExact is Eval for a two-operand op: when both operands and the
// nearest-rounded result are exact integers, the result is exact and is
// returned without the outward nudge.
func evalExact(dir Dir, x, y float64, f func() float64) float64 {
	if r := f(); exactInt(x) && exactInt(y) && exactInt(r) {
		return r
	}
	return Eval(dir, f)
}

// Add returns x+y rounded outward in direction dir: same-sign overflow
// saturates to a correctly signed infinity; x + ±Inf or ±Inf + y is exact
// already.
func Add(x, y float64, dir Dir) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x + y
	}
	r := evalExact(dir, x, y, func() float64 { return x + y })
	if math.IsInf(r, 0) {
		return math.Copysign(r, x)
	}
	return r
}

// Sub returns x-y rounded outward in direction dir.
func Sub(x, y float64, dir Dir) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x - y
	}
	r := evalExact(dir, x, y, func() float64 { return x - y })
	if math.IsInf(r, 0) {
		return math.Copysign(r, x)
	}
	return r
}

// Mul returns x*y rounded outward in direction dir. Overflow saturates to
// copysign(Inf, sign(x)*sign(y)).
func Mul(x, y float64, dir Dir) float64 {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x * y
	}
	r := evalExact(dir, x, y, func() float64 { return x * y })
	if math.IsInf(r, 0) {
		return math.Copysign(r, math.Copysign(1, x)*math.Copysign(1, y))
	}
	return r
}

// Div returns x/y rounded outward in direction dir. Division by zero
// saturates to copysign(Inf, x); 0/0 is an undefined form and is signaled
// via NaN, which ivl converts to Narrower failure.
func Div(x, y float64, dir Dir) float64 {
	if y == 0 {
		if x == 0 {
			return math.NaN()
		}
		return math.Copysign(math.Inf(1), x)
	}
	if math.IsInf(x, 0) && math.IsInf(y, 0) {
		return math.NaN()
	}
	if math.IsInf(x, 0) {
		return math.Copysign(x, math.Copysign(1, x)*math.Copysign(1, y))
	}
	if math.IsInf(y, 0) {
		return 0
	}
	r := evalExact(dir, x, y, func() float64 { return x / y })
	if math.IsInf(r, 0) {
		return math.Copysign(r, math.Copysign(1, x)*math.Copysign(1, y))
	}
	return r
}

// Exp returns exp(x) rounded outward in direction dir. Overflow saturates to
// +Inf.
func Exp(x float64, dir Dir) float64 {
	if math.IsInf(x, 1) {
		return math.Inf(1)
	}
	if math.IsInf(x, -1) {
		return 0
	}
	return Eval(dir, func() float64 { return math.Exp(x) })
}

// Log returns log(x) rounded outward in direction dir. log(0) is defined as
// -Inf; log of a negative number is an undefined form signaled via NaN.
func Log(x float64, dir Dir) float64 {
	switch {
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	case math.IsInf(x, 1):
		return math.Inf(1)
	}
	return Eval(dir, func() float64 { return math.Log(x) })
}

// Pow returns x**y, evaluated with math.Pow and rounded outward in direction
// dir.
func Pow(x, y float64, dir Dir) float64 {
	return evalExact(dir, x, y, func() float64 { return math.Pow(x, y) })
}

// Sin, Cos, Tan, Asin, Acos, Atan apply the named elementary transcendental
// function at round-to-nearest then nudge outward by one ulp. Domain
// validity (e.g. |x|<=1 for Asin/Acos) is the caller's responsibility: ivl
// only calls these once cylinder projection (Wrap) has restricted the
// argument to a sector where the function is defined and monotone.

func Sin(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Sin(x) }) }
func Cos(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Cos(x) }) }
func Tan(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Tan(x) }) }

func Asin(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Asin(x) }) }
func Acos(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Acos(x) }) }
func Atan(x float64, dir Dir) float64 { return Eval(dir, func() float64 { return math.Atan(x) }) }
