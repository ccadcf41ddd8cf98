package clpbnr

import (
	"math"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

// Re-exported so host code only ever needs to import this package: the
// universal interval and the finite real/integer/boolean defaults.
var (
	Universal      = ivl.Universal
	RealDefault    = ivl.RealDefault
	IntegerDefault = ivl.IntegerDefault
	BooleanDefault = ivl.BooleanDefault
)

// PositiveInfinity, NegativeInfinity and NotANumber are the three sentinel
// values host code needs when constructing or comparing interval bounds
// directly.
var (
	PositiveInfinity = math.Inf(1)
	NegativeInfinity = math.Inf(-1)
	NotANumber       = math.NaN()
)
