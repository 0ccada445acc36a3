// Package trie implements the Exclusion Trie: insert/delete/lookup honoring DOT/EX edge
// semantics and exclusion downcasts/upcasts, on top of the node arena in internal/store
// (spec §4.1). Grounded on _examples/original_source/ielpy/ELTrie.py's push/pop/get.
package trie

import (
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/jgrey4296/elgo/internal/store"
)

// Trie wraps a node store with the EX/DOT edge-semantics mutation operations.
type Trie struct {
	store   *store.Store
	lastErr error
}

// New constructs an empty trie (just the root node).
func New() *Trie {
	return &Trie{store: store.New()}
}

// Store exposes the underlying arena for packages that need raw lookup/iteration (unify,
// arith's in-place updates, the dispatcher's Store accessor).
func (t *Trie) Store() *store.Store {
	return t.store
}

// Root returns the identity of the trie's root node.
func (t *Trie) Root() nodeid.ID {
	return t.store.Root()
}

// GetNode is the O(1) by-identity lookup of spec §4.1.
func (t *Trie) GetNode(id nodeid.ID) (*store.Node, bool) {
	return t.store.Get(id)
}

// Children returns a node's children in insertion order (spec §4.1 "iterate").
func (t *Trie) Children(id nodeid.ID) []*store.Node {
	return t.store.Children(id)
}

// Err returns the ConsistencyError (if any) diagnosing the most recent Push/Get/Pop call's
// failure, distinct from an ordinary no-match ir.Fail() (spec §10.3). Reset on every call.
func (t *Trie) Err() error {
	return t.lastErr
}

// Push walks fact's path, creating nodes as needed, honoring EX/DOT edge semantics (spec §4.1).
// Rejects a fact that isn't IsValidForAssertion.
func (t *Trie) Push(fact *ir.Fact) ir.Result {
	t.lastErr = nil
	if !fact.IsValidForAssertion() {
		t.lastErr = ir.NewInvalidAssertionErr("fact is not a valid assertion path")
		return ir.Fail()
	}
	root, ok := fact.Root()
	if !ok {
		return ir.Fail()
	}
	current, err := t.resolveRoot(fact, root)
	if err != nil {
		return ir.Fail()
	}

	for _, pair := range fact.Pairs() {
		value, isAtom := pair.Value.(ir.Atom)
		if !isAtom {
			// terminal list: expansion (internal/dispatch) must have already rewritten this
			// into one flat fact per element before reaching Push.
			return ir.Fail()
		}
		parent := current

		if existingID, found := t.store.ChildByKey(parent, value.Key()); found {
			existing, _ := t.store.Get(existingID)
			if err := t.reconcileEdge(parent, existing, pair.Edge); err != nil {
				return ir.Fail()
			}
			current = existingID
			continue
		}

		// EX handling: clear the parent's other children before adding the new child when the
		// incoming pair asserts EX (spec §4.1).
		if pair.Edge == ir.EdgeEx {
			t.store.ClearChildren(parent)
		} else {
			// a DOT sibling joining an EX child downgrades it to DOT so both coexist (spec §3
			// "a node's edge is EX => its parent has at most one child").
			t.downgradeExSiblings(parent)
		}
		child, err := t.store.NewChild(parent, pair.Edge, value)
		if err != nil {
			return ir.Fail()
		}
		current = child.ID
	}
	return ir.Success(fact, []ir.BindingSlice{ir.NewBindingSlice()}, []nodeid.ID{current})
}

// reconcileEdge applies the EX/DOT up/downcast rule when a pair revisits an existing child
// (spec §4.1): asserting EX clears siblings, asserting DOT into a previously-EX parent
// downgrades it to DOT and lets the new child coexist.
func (t *Trie) reconcileEdge(parent nodeid.ID, existing *store.Node, incoming ir.EdgeKind) error {
	if existing.Edge == incoming {
		return nil
	}
	if incoming == ir.EdgeEx {
		// existing survives as the sole child; every sibling dies (spec §4.1).
		t.store.ClearChildrenExcept(parent, existing.Value.Key())
	}
	// incoming == DOT: downcast, existing keeps coexisting with future siblings
	// (spec §4.1 "permit the new child to coexist").
	return t.store.SetEdge(existing.ID, incoming)
}

// downgradeExSiblings scans parent's existing children for an EX-edge node and downgrades it to
// DOT, so a newly pushed DOT sibling is permitted to coexist with it (spec §3/§8 I3).
func (t *Trie) downgradeExSiblings(parent nodeid.ID) {
	for _, child := range t.store.Children(parent) {
		if child.Edge == ir.EdgeEx {
			_ = t.store.SetEdge(child.ID, ir.EdgeDot)
		}
	}
}

// Pop detaches fact's terminal node from its parent without cascading into its own children
// (spec §4.1). Popping a non-existent path yields Fail, never an error (spec §7).
func (t *Trie) Pop(fact *ir.Fact) ir.Result {
	got := t.Get(fact)
	if !got.Ok || len(got.Nodes) == 0 {
		return ir.Fail()
	}
	target := got.Nodes[0]
	if err := t.store.Detach(target); err != nil {
		return ir.Fail()
	}
	return ir.SuccessEmpty()
}

// Get resolves a concrete (variable-free) fact path to the node it names, applying the same
// EX/DOT matching asymmetry as the unifier's single-branch case (spec §4.2): an EX pair matches
// only an EX-edge child, a DOT pair matches either. It does not branch on variables — callers
// needing variable unification use internal/unify, which is built on top of this trie's node
// store rather than this method.
func (t *Trie) Get(fact *ir.Fact) ir.Result {
	t.lastErr = nil
	root, ok := fact.Root()
	if !ok {
		return ir.Fail()
	}
	current, err := t.resolveRoot(fact, root)
	if err != nil {
		return ir.Fail()
	}
	for _, pair := range fact.Pairs() {
		value, isAtom := pair.Value.(ir.Atom)
		if !isAtom {
			return ir.Fail()
		}
		childID, found := t.store.ChildByKey(current, value.Key())
		if !found {
			return ir.Fail()
		}
		child, _ := t.store.Get(childID)
		if pair.Edge == ir.EdgeEx && child.Edge != ir.EdgeEx {
			return ir.Fail()
		}
		current = childID
	}
	return ir.Success(fact, []ir.BindingSlice{ir.NewBindingSlice()}, []nodeid.ID{current})
}

func (t *Trie) resolveRoot(fact *ir.Fact, root ir.RootElem) (nodeid.ID, error) {
	if root.PathVar == nil {
		return t.store.Root(), nil
	}
	if entry, ok := fact.FilledBindings[root.PathVar.Name]; ok {
		if _, tracked := t.store.Get(entry.Node); tracked {
			return entry.Node, nil
		}
	}
	return nodeid.Nil, store.ErrNoSuchNode
}
