// Package unify implements the depth-first, variable-branching query engine of spec §4.2,
// grounded on _examples/original_source/ielpy/ELTrie.py's get/sub_get recursion.
package unify

import (
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/jgrey4296/elgo/internal/store"
)

// Unifier runs queries against a node store.
type Unifier struct {
	store   *store.Store
	lastErr error
}

// New builds a Unifier over store.
func New(s *store.Store) *Unifier {
	return &Unifier{store: s}
}

// Err returns the ConsistencyError (if any) diagnosing the most recent Query call's failure,
// distinct from an ordinary no-match ir.Fail() (spec §10.3). Reset on every call.
func (u *Unifier) Err() error {
	return u.lastErr
}

// branch is one in-flight candidate during the depth-first walk: the node reached so far and the
// bindings accumulated to get there.
type branch struct {
	node    nodeid.ID
	binding ir.BindingSlice
}

// Query runs fact (which must satisfy IsValidForQuery) and returns every binding slice under
// which its path exists, honoring negation (spec §4.2 step 5).
func (u *Unifier) Query(fact *ir.Fact) ir.Result {
	u.lastErr = nil
	if !fact.IsValidForQuery() {
		u.lastErr = ir.NewQueryOverNonFactErr("fact lacks a Root...Query shape")
		return ir.Fail()
	}
	root, ok := fact.Root()
	if !ok {
		return ir.Fail()
	}
	start, err := u.resolveRoot(fact, root)
	if err != nil {
		return negateEmptyFail(fact)
	}

	seed := ir.NewBindingSlice()
	if fact.FilledBindings != nil {
		seed = fact.FilledBindings.Clone()
	}
	branches := []branch{{node: start, binding: seed}}

	for _, pair := range fact.Pairs() {
		var next []branch
		for _, b := range branches {
			next = append(next, u.stepPair(b, pair)...)
		}
		branches = next
		if len(branches) == 0 {
			break
		}
	}

	if fact.Negated {
		if len(branches) == 0 {
			return ir.SuccessEmpty()
		}
		return ir.Fail()
	}
	if len(branches) == 0 {
		return ir.Fail()
	}

	slices := make([]ir.BindingSlice, 0, len(branches))
	nodes := make([]nodeid.ID, 0, len(branches))
	for _, b := range branches {
		slices = append(slices, b.binding)
		nodes = append(nodes, b.node)
	}
	return ir.Success(fact, slices, nodes)
}

// stepPair extends one branch across a single path pair, returning zero or more surviving
// branches (zero for a concrete value miss, one for a concrete hit, N for a variable fan-out
// across N children).
func (u *Unifier) stepPair(b branch, pair ir.PairElem) []branch {
	if v, ok := ir.AsVariable(pair.Value); ok {
		return u.stepVariable(b, v, pair.Edge)
	}
	value, ok := ir.AsAtom(pair.Value)
	if !ok {
		// a ListTerm pair can never be path-walked (spec §4.2 "not addressable via path-walk").
		return nil
	}
	childID, found := u.store.ChildByKey(b.node, value.Key())
	if !found {
		return nil
	}
	child, _ := u.store.Get(childID)
	if pair.Edge == ir.EdgeEx && child.Edge != ir.EdgeEx {
		return nil
	}
	return []branch{{node: childID, binding: b.binding}}
}

// stepVariable fans a branch out across every child of b.node, extending the binding with
// {v.name -> (child.id, child.value)}, rejecting any child whose edge kind fails the EX/DOT
// asymmetry and any extension that would clobber an already-bound occurrence of the same
// variable with a different value (spec §4.2 "MUST detect the clobber and reject").
func (u *Unifier) stepVariable(b branch, v *ir.Variable, edge ir.EdgeKind) []branch {
	var out []branch
	for _, child := range u.store.Children(b.node) {
		if edge == ir.EdgeEx && child.Edge != ir.EdgeEx {
			continue
		}
		entry := ir.BindingEntry{Node: child.ID, Value: child.Value}
		if existing, bound := b.binding[v.Name]; bound {
			if existing.Node != entry.Node || !existing.Value.Equal(entry.Value) {
				u.lastErr = ir.NewInconsistentBindingErr(v.Name)
				continue
			}
		}
		out = append(out, branch{node: child.ID, binding: b.binding.WithEntry(v.Name, entry)})
	}
	return out
}

func (u *Unifier) resolveRoot(fact *ir.Fact, root ir.RootElem) (nodeid.ID, error) {
	if root.PathVar == nil {
		return u.store.Root(), nil
	}
	if entry, ok := fact.FilledBindings[root.PathVar.Name]; ok {
		if _, tracked := u.store.Get(entry.Node); tracked {
			return entry.Node, nil
		}
	}
	return nodeid.Nil, store.ErrNoSuchNode
}

func negateEmptyFail(fact *ir.Fact) ir.Result {
	if fact.Negated {
		return ir.SuccessEmpty()
	}
	return ir.Fail()
}
