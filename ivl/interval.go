// Package ivl implements the interval data model and the pure IntervalOps /
// SetOps / Wrap functions of the narrowing kernel: outward-rounded interval
// arithmetic over closed real, integer and boolean intervals. Every function
// here is pure — it takes Intervals by value and returns fresh Intervals —
// so the host propagation engine may call them freely from any number of
// goroutines without synchronization, as long as it does not share mutable
// state of its own.
package ivl

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl/round"
)

// Kind distinguishes the three interval flavors of the data model. A
// Boolean interval is an Integer interval additionally restricted to
// {[0,0],[1,1],[0,1]}; narrowers enforce that restriction rather than Kind
// itself, so Kind only selects which arithmetic rules (outward float
// rounding vs. integer saturation) apply to an Interval's endpoints.
type Kind uint8

const (
	Real Kind = iota
	Integer
	Boolean
)

// Interval is a closed interval [Lo,Hi], Lo,Hi ∈ ℝ ∪ {-∞,+∞}, Lo ≤ Hi.
// Values are immutable: every function in this package returns a fresh
// Interval rather than mutating its receiver or arguments.
type Interval struct {
	Lo, Hi float64
	Kind   Kind
}

// Universal is the top of the interval lattice, [-∞,+∞].
var Universal = Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Kind: Real}

// RealDefault is the finite default real interval, [-MaxFloat64, +MaxFloat64].
var RealDefault = Interval{Lo: -math.MaxFloat64, Hi: math.MaxFloat64, Kind: Real}

// IntegerDefault is the finite default integer interval, the platform's
// representable integer range.
var IntegerDefault = Interval{Lo: round.IntLo, Hi: round.IntHi, Kind: Integer}

// BooleanDefault is [0,1], the universal boolean interval.
var BooleanDefault = Interval{Lo: 0, Hi: 1, Kind: Boolean}

// Point returns the degenerate interval [v,v] of the given kind.
func Point(v float64, k Kind) Interval {
	return Interval{Lo: v, Hi: v, Kind: k}
}

// New returns the interval [lo,hi] of kind k. It does not validate lo<=hi;
// use IsEmpty to test the result — an empty set is any [H,L] with H<L, and
// Narrowers never return one, they fail instead.
func New(lo, hi float64, k Kind) Interval {
	return Interval{Lo: lo, Hi: hi, Kind: k}
}

// IsEmpty reports whether iv represents the empty set (Hi<Lo).
func (iv Interval) IsEmpty() bool {
	return iv.Hi < iv.Lo
}

// IsPoint reports whether iv contains exactly one value.
func (iv Interval) IsPoint() bool {
	return !iv.IsEmpty() && iv.Lo == iv.Hi
}

// Contains reports whether v lies within iv.
func (iv Interval) Contains(v float64) bool {
	return !iv.IsEmpty() && iv.Lo <= v && v <= iv.Hi
}

// SignClass tags an interval positive (Lo>=0), negative (Hi<=0), or
// straddling zero. Encoded as a tagged sum so the multiplication/division/
// power dispatch tables can exhaustively switch on it instead of repeatedly
// re-deriving sign information from bounds.
type SignClass uint8

const (
	SignPositive SignClass = iota
	SignNegative
	SignStraddle
)

// Sign returns iv's SignClass. An empty interval has no sign class and
// Sign panics; callers must check IsEmpty first, mirroring the closed
// case-table discipline the teacher's binary-op dispatch uses.
func (iv Interval) Sign() SignClass {
	if iv.IsEmpty() {
		panic("ivl: Sign of empty interval")
	}
	switch {
	case iv.Lo >= 0:
		return SignPositive
	case iv.Hi <= 0:
		return SignNegative
	default:
		return SignStraddle
	}
}

// IsZero reports whether iv is the degenerate point [0,0].
func (iv Interval) IsZero() bool {
	return iv.Lo == 0 && iv.Hi == 0
}

func (iv Interval) String() string {
	return "[" + formatBound(iv.Lo) + ", " + formatBound(iv.Hi) + "]"
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return trimFloat(v)
	}
}
