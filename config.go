package clpbnr

// Condition is a bitmask of numeric fault classes, modeled on the
// Context/Condition/Traps shape shared by the decimal-family example repos:
// a small value carried explicitly by the caller rather than a package
// global, naming which faults should trap (fail the narrowing immediately)
// instead of silently widening to a safe enclosure.
type Condition uint32

const (
	// Inexact marks that a FloatRound evaluation needed outward adjustment
	// away from the nearest-rounded result.
	Inexact Condition = 1 << iota
	// Overflow marks that an elementary op saturated to a signed infinity.
	Overflow
	// Undefined marks an indeterminate form (0/0, ∞-∞, ∞/∞) that the kernel
	// converts to narrower failure.
	Undefined
)

// Config carries kernel-wide settings that are not part of any single
// relation's inputs: which Condition classes should trap rather than widen.
// It holds no default interval bounds; those are the package-level
// RealDefault, IntegerDefault and BooleanDefault values. It is a plain
// value, passed explicitly, never stored in package state — no hidden state
// exists beyond the statistics counters.
type Config struct {
	// Traps selects which Condition classes EvalNode callers should treat
	// as fatal to the surrounding host computation rather than recoverable
	// narrowing failure. Nothing in the kernel reads it: EvalNode takes no
	// Config, and every numeric fault is recovered the same way whatever
	// Traps holds (overflow to a signed infinity, an undefined form to
	// Narrower failure).
	Traps Condition
}

// DefaultConfig traps nothing: every numeric fault is recovered silently
// into either a widened interval or a narrower failure.
var DefaultConfig = Config{Traps: 0}
