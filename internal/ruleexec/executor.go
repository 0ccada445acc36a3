package ruleexec

import (
	"github.com/jgrey4296/elgo/internal/arith"
	"github.com/jgrey4296/elgo/internal/binding"
	"github.com/jgrey4296/elgo/internal/dispatch"
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// Result is the outcome of running one node (spec §4.5's state machine sink/exit states).
type Result struct {
	Ok       bool
	Bindings []ir.BindingSlice
	Output   string
	Next     []nodeid.ID
}

func fail() Result { return Result{} }

// Executor runs the condition -> comparison -> selection -> arithmetic -> action -> output
// pipeline against a dispatcher-owned trie and binding stack.
type Executor struct {
	disp     *dispatch.Dispatcher
	stack    *binding.Stack
	registry *Registry
	selector Selector
}

// New builds an Executor sharing disp's trie/store/aliases.
func New(disp *dispatch.Dispatcher, registry *Registry, selector Selector) *Executor {
	if selector == nil {
		selector = NewUniformSelector(1)
	}
	return &Executor{disp: disp, stack: binding.NewStack(), registry: registry, selector: selector}
}

// Run executes the body registered for id (spec §4.5 steps 2-8; the body comes from the
// Registry rather than from step 1's trie extraction).
func (e *Executor) Run(id nodeid.ID) Result {
	body, ok := e.registry.Get(id)
	if !ok {
		return fail()
	}

	e.stack.Push()
	defer e.stack.Pop()

	frame := binding.Frame(e.stack.Top())
	for _, cond := range body.Conditions {
		next, ok := e.runCondition(frame, cond)
		if !ok {
			return fail()
		}
		frame = next
	}
	e.stack.ReplaceTop(frame)

	for _, comp := range body.Comparisons {
		frame = filterFrame(frame, comp)
		if len(frame) == 0 {
			return fail()
		}
	}

	hasForall := bodyHasForall(body)
	var active []ir.BindingSlice
	if hasForall {
		active = frame
	} else {
		idx := e.selector.Select(len(frame))
		active = []ir.BindingSlice{frame[idx]}
	}

	for i, slice := range active {
		updated := slice
		for _, a := range body.Arithmetic {
			updated = e.applyArith(updated, a)
		}
		active[i] = updated
	}

	for _, slice := range active {
		for _, actionFact := range body.Actions {
			bound := actionFact.Bind(slice)
			e.disp.Dispatch(bound)
		}
	}

	output := ""
	if body.Output != nil && len(body.Output.Templates) > 0 {
		idx := e.selector.Select(len(body.Output.Templates))
		outSlice := active[0]
		output = Interpolate(body.Output.Templates[idx], outSlice)
	}

	return Result{Ok: true, Bindings: active, Output: output, Next: e.gateNext(body)}
}

// gateNext filters body.Next down to the candidates whose subtree structurally satisfies
// body.Interface, when one is declared (spec §4.5 step 8, §12.4): a candidate only qualifies as
// a `next` transition if every child key under the interface subtree is also present, under the
// same edge kind, under the candidate.
func (e *Executor) gateNext(body *Body) []nodeid.ID {
	if body.Interface.IsNil() {
		return body.Next
	}
	trie := e.disp.Trie()
	var gated []nodeid.ID
	for _, candidate := range body.Next {
		if trie.StructuralSubset(body.Interface, candidate) {
			gated = append(gated, candidate)
		}
	}
	return gated
}

// runCondition narrows frame by binding each slice into cond and re-querying, mirroring
// ELRuntime.fact_query's per-slice bind-then-query loop.
func (e *Executor) runCondition(frame binding.Frame, cond *ir.Fact) (binding.Frame, bool) {
	if len(frame) == 0 {
		return nil, false
	}
	var out binding.Frame
	for _, slice := range frame {
		bound := cond.AsQuery().Bind(slice)
		result := e.disp.Dispatch(bound)
		if result.Ok {
			out = append(out, result.Bindings...)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// filterFrame retains only the slices that satisfy comp (spec §4.5 step 3).
func filterFrame(frame binding.Frame, comp *ir.Comparison) binding.Frame {
	var out binding.Frame
	for _, slice := range frame {
		if evalComparison(slice, comp) {
			out = append(out, slice)
		}
	}
	return out
}

func evalComparison(slice ir.BindingSlice, comp *ir.Comparison) bool {
	lhsEntry, ok := slice[comp.LHS.Name]
	if !ok {
		return false
	}
	lhs := lhsEntry.Value

	switch comp.Op {
	case ir.CmpIn, ir.CmpNotIn:
		list, ok := comp.RHS.(*ir.ListTerm)
		if !ok {
			return false
		}
		return arith.Compare(comp.Op, lhs, ir.Atom{}, list, nil)
	}

	var rhs ir.Atom
	switch v := comp.RHS.(type) {
	case ir.Atom:
		rhs = v
	case *ir.Variable:
		entry, ok := slice[v.Name]
		if !ok {
			return false
		}
		rhs = entry.Value
	default:
		return false
	}

	var tol *ir.Atom
	if comp.Op == ir.CmpNear {
		tol = comp.NearTolerance
	}
	return arith.Compare(comp.Op, lhs, rhs, nil, tol)
}

// applyArith resolves a's target and rhs against slice and applies the update. A path-variable,
// NodeId, or Fact target rekeys the real trie node, refreshing any binding entries pointing at
// it (spec §4.3 "any binding slice referring to this node by id remains valid"). A non-path
// variable target has no node to rekey: its arithmetic result only rewrites its own slice entry
// (spec §4.5 step 5, §8 scenario 4).
func (e *Executor) applyArith(slice ir.BindingSlice, a *ir.ArithAction) ir.BindingSlice {
	rhs, ok := resolveOperand(a.Rhs, slice)
	if !ok {
		return slice
	}

	if v, isVar := a.Target.(*ir.Variable); isVar && !v.IsPath {
		return e.applyArithToSliceValue(slice, v, a.Op, rhs)
	}

	target, err := e.disp.ResolveArithTarget(a.Target, slice)
	if err != nil {
		return slice
	}

	newValue, err := e.disp.Updater().ApplyToNode(target, a.Op, rhs)
	if err != nil {
		return slice
	}

	out := slice.Clone()
	for name, entry := range out {
		if entry.Node == target {
			out[name] = ir.BindingEntry{Node: target, Value: newValue}
		}
	}
	return out
}

// applyArithToSliceValue applies op to v's currently bound value and rhs, writing the result
// back only into the slice entry named v.Name. The node it was bound at stays untouched.
func (e *Executor) applyArithToSliceValue(slice ir.BindingSlice, v *ir.Variable, op ir.ArithOp, rhs ir.Atom) ir.BindingSlice {
	entry, ok := slice[v.Name]
	if !ok {
		return slice
	}
	newValue, err := e.disp.Updater().ApplyValue(op, entry.Value, rhs)
	if err != nil {
		return slice
	}
	out := slice.Clone()
	out[v.Name] = ir.BindingEntry{Node: entry.Node, Value: newValue}
	return out
}

func resolveOperand(t ir.Term, slice ir.BindingSlice) (ir.Atom, bool) {
	switch v := t.(type) {
	case ir.Atom:
		return v, true
	case *ir.Variable:
		entry, ok := slice[v.Name]
		if !ok {
			return ir.Atom{}, false
		}
		return entry.Value, true
	default:
		return ir.Atom{}, false
	}
}

func bodyHasForall(body *Body) bool {
	for _, a := range body.Actions {
		if a.HasForallBinding() {
			return true
		}
	}
	return false
}
