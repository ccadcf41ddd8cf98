// Package clpbnr is the kernel's façade: the single external interface host
// code imports, wrapping package narrow's Narrowers behind one closed
// dispatch table, the way the teacher's vrp package exposes one entry point
// (Solve) over its internal lattice operations.
package clpbnr

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
	"github.com/ridgeworks/GNU-CLP-BNR/kstat"
	"github.com/ridgeworks/GNU-CLP-BNR/narrow"
)

// Params is narrow.Params re-exported so host code never needs to import
// package narrow directly.
type Params = narrow.Params

type narrowFunc func(narrow.Params, []ivl.Interval) ([]ivl.Interval, bool)

type opEntry struct {
	fn    narrowFunc
	arity int
}

// registry is the closed dispatch table of recognized op values, built once
// at package init — the same texture as the teacher's closed switch over
// token.Token in flipToken/negateToken, generalized to a map since the op
// set here is named by string, not by lexer token.
var registry = map[string]opEntry{
	"integral": {narrow.Integral, 1},
	"eq":       {narrow.Eq, 3},
	"ne":       {narrow.Ne, 3},
	"le":       {narrow.Le, 3},
	"lt":       {narrow.Lt, 3},
	"sub":      {narrow.Sub, 3},
	"add":      {narrow.Add, 3},
	"mul":      {narrow.Mul, 3},
	"min":      {narrow.Min, 3},
	"max":      {narrow.Max, 3},
	"abs":      {narrow.Abs, 2},
	"minus":    {narrow.Minus, 2},
	"exp":      {narrow.Exp, 2},
	"pow":      {narrow.Pow, 3},
	"sin":      {narrow.Sin, 2},
	"cos":      {narrow.Cos, 2},
	"tan":      {narrow.Tan, 2},
	"not":      {narrow.Not, 2},
	"and":      {narrow.And, 3},
	"or":       {narrow.Or, 3},
	"xor":      {narrow.Xor, 3},
	"nand":     {narrow.Nand, 3},
	"nor":      {narrow.Nor, 3},
	"imB":      {narrow.ImB, 3},
}

// Stats is the kernel's sole process-wide mutable state: the default
// statistics block EvalNode records every call against. Hosts that want
// isolated counters per worker should call kstat.NewCounters() directly
// instead of relying on this shared default.
var Stats = kstat.NewCounters()

// EvalNode dispatches to the Narrower named by op. It returns a Go error
// only for a malformed request — unrecognized op or wrong arity;
// infeasibility is always communicated by the ok bool, never by error.
func EvalNode(op string, params Params, inputs []ivl.Interval) (outputs []ivl.Interval, ok bool, err error) {
	entry, found := registry[op]
	if !found {
		return nil, false, errors.Wrapf(ErrUnknownOp, "eval_node %s", op)
	}
	if len(inputs) != entry.arity {
		return nil, false, errors.Wrapf(ErrArity, "eval_node %s: want %d inputs, got %d", op, entry.arity, len(inputs))
	}

	start := time.Now()
	outputs, ok = entry.fn(params, inputs)
	Stats.RecordCall(ok, time.Since(start))
	kstat.Trace("eval_node %s(%v) -> %v, ok=%v", op, inputs, outputs, ok)

	if !ok {
		return nil, false, nil
	}
	return outputs, true, nil
}
