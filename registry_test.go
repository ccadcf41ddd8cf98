package clpbnr

import (
	"errors"
	"testing"

	"github.com/ridgeworks/GNU-CLP-BNR/ivl"
)

func TestEvalNodeUnrecognizedOp(t *testing.T) {
	_, ok, err := EvalNode("frobnicate", Params{}, nil)
	if ok {
		t.Fatalf("EvalNode should not succeed on an unrecognized op")
	}
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("err = %v, want wrapping ErrUnknownOp", err)
	}
}

func TestEvalNodeWrongArity(t *testing.T) {
	_, ok, err := EvalNode("add", Params{}, []ivl.Interval{ivl.RealDefault})
	if ok {
		t.Fatalf("EvalNode should not succeed on wrong arity")
	}
	if !errors.Is(err, ErrArity) {
		t.Fatalf("err = %v, want wrapping ErrArity", err)
	}
}

func TestEvalNodeDispatchesAdd(t *testing.T) {
	in := []ivl.Interval{ivl.New(1, 2, ivl.Real), ivl.New(3, 4, ivl.Real), Universal}
	out, ok, err := EvalNode("add", Params{}, in)
	if err != nil {
		t.Fatalf("EvalNode returned unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("EvalNode(add) failed unexpectedly")
	}
	if out[2].Lo != 4 || out[2].Hi != 6 {
		t.Fatalf("Z = %v, want [4,6]", out[2])
	}
}

func TestEvalNodeInfeasibilityIsNotAnError(t *testing.T) {
	in := []ivl.Interval{ivl.New(0, 1, ivl.Real), ivl.New(2, 3, ivl.Real), ivl.Point(1, ivl.Boolean)}
	out, ok, err := EvalNode("eq", Params{}, in)
	if err != nil {
		t.Fatalf("infeasibility must surface as ok=false, not an error; got err=%v", err)
	}
	if ok {
		t.Fatalf("eq with disjoint X,Y and Z forced true should fail")
	}
	if out != nil {
		t.Fatalf("outputs = %v, want nil on failure", out)
	}
}

func TestEvalNodeRecordsStats(t *testing.T) {
	Stats.Reset()
	in := []ivl.Interval{ivl.New(1, 2, ivl.Real), ivl.New(3, 4, ivl.Real), Universal}
	if _, ok, _ := EvalNode("add", Params{}, in); !ok {
		t.Fatalf("EvalNode(add) failed unexpectedly")
	}
	snap := Stats.Snapshot()
	if snap.Calls != 1 {
		t.Fatalf("Calls = %d, want 1", snap.Calls)
	}
	if snap.Fails != 0 {
		t.Fatalf("Fails = %d, want 0", snap.Fails)
	}
}
