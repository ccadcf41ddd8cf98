package clpbnr

import "errors"

// ErrUnknownOp is wrapped with the offending op name by EvalNode. It and
// ErrArity are the only Go errors this package returns, both for a
// malformed request; infeasibility is always the bool return, never these.
var ErrUnknownOp = errors.New("eval_node: unrecognized op")

// ErrArity is wrapped the same way when inputs does not match op's arity.
var ErrArity = errors.New("eval_node: wrong number of inputs")
