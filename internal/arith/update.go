package arith

import (
	"math/rand"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/jgrey4296/elgo/internal/store"
)

// Updater applies in-place arithmetic updates to trie leaves, preserving node identity via
// Store.Rekey (spec §4.3: "the node's identity MUST be preserved; only its value changes").
type Updater struct {
	store *store.Store
	rng   *rand.Rand
}

// NewUpdater builds an Updater over store, seeded for reproducible rand draws (spec §5 "selection
// and rand MUST allow seeding").
func NewUpdater(s *store.Store, seed int64) *Updater {
	return &Updater{store: s, rng: rand.New(rand.NewSource(seed))}
}

// ApplyToNode computes op(current-value-of-id, rhs) and rekeys id to the result, returning the
// new value. id's identity (and thus any live NodeId bindings referencing it) is unaffected.
func (u *Updater) ApplyToNode(id nodeid.ID, op ir.ArithOp, rhs ir.Atom) (ir.Atom, error) {
	n, ok := u.store.Get(id)
	if !ok {
		return ir.Atom{}, store.ErrNoSuchNode
	}
	result, err := Apply(op, n.Value, rhs, u.rng)
	if err != nil {
		return ir.Atom{}, err
	}
	if err := u.store.Rekey(id, result); err != nil {
		return ir.Atom{}, err
	}
	return result, nil
}

// ApplyValue computes op(lhs, rhs) against the updater's seeded rand source without touching the
// store, for arithmetic targets that bind a value rather than a node identity (spec §4.5 step 5:
// a non-path variable's arithmetic result is only written back into the binding slice).
func (u *Updater) ApplyValue(op ir.ArithOp, lhs, rhs ir.Atom) (ir.Atom, error) {
	return Apply(op, lhs, rhs, u.rng)
}
