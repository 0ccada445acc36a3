package ir

import "github.com/jgrey4296/elgo/internal/nodeid"

// Result is the outcome of a top-level operation (spec §6): Success, possibly carrying
// bindings and the node ids reached, or Fail. It deliberately has no error payload — runtime
// rule/query failure is a value, never an exception (spec §7).
type Result struct {
	Ok       bool
	Path     *Fact
	Bindings []BindingSlice
	Nodes    []nodeid.ID
}

// Success builds a successful result.
func Success(path *Fact, bindings []BindingSlice, nodes []nodeid.ID) Result {
	return Result{Ok: true, Path: path, Bindings: bindings, Nodes: nodes}
}

// SuccessEmpty is a bare success carrying no bindings, used for negation-of-failure (spec §4.2
// step 5) and for plain assert/retract acknowledgements.
func SuccessEmpty() Result {
	return Result{Ok: true, Bindings: []BindingSlice{NewBindingSlice()}}
}

// Fail builds a failed result.
func Fail() Result {
	return Result{Ok: false}
}

// Bool reports success, letting a Result be used directly in a boolean context mirroring the
// source's `bool(success)` checks.
func (r Result) Bool() bool {
	return r.Ok
}
