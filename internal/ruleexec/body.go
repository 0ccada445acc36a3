// Package ruleexec implements the rule/node execution pipeline of spec §4.5: Conditions,
// Comparisons, Selection, Arithmetic, Actions, Output, Next. Bodies are looked up in a Registry
// by node id; they are not extracted from the trie's child subtrees. Grounded on
// _examples/original_source/ielpy/ELRuntime.py's run_rule/format_comparisons/filter_by_comparisons.
package ruleexec

import (
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// Output is a rule's optional text production: a single template, or several candidates one of
// which Selection picks (spec §4.5 step 7 "a string leaf (or one chosen from a list)").
type Output struct {
	Templates []string
}

// Body is the executable content addressed at one trie node (spec §4.5's named child edges:
// conditions/comparisons/arithmetic/actions/output/next). It is attached to a node by identity
// rather than literally trie-walked, because conditions/actions carry ir.Variable path pairs,
// which (unlike Atoms) are never legal trie node values (spec §3's trie node value is Atom-only;
// §4.7 fact expansion exists precisely because list/variable-shaped terminals cannot live in the
// arena as-is).
type Body struct {
	Conditions  []*ir.Fact
	Comparisons []*ir.Comparison
	Arithmetic  []*ir.ArithAction
	Actions     []*ir.Fact
	Output      *Output
	Next        []nodeid.ID

	// Interface, if set (non-Nil), names a subtree whose child-key shape every candidate in Next
	// must structurally satisfy before the transition is allowed (spec §4.5 step 8, §12.4).
	Interface nodeid.ID
}

// Registry maps rule/node identities to their executable bodies.
type Registry struct {
	bodies map[nodeid.ID]*Body
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bodies: make(map[nodeid.ID]*Body)}
}

// Set attaches body to id, replacing any previous body.
func (r *Registry) Set(id nodeid.ID, body *Body) {
	r.bodies[id] = body
}

// Get returns the body attached to id, if any.
func (r *Registry) Get(id nodeid.ID) (*Body, bool) {
	b, ok := r.bodies[id]
	return b, ok
}

// Delete removes any body attached to id.
func (r *Registry) Delete(id nodeid.ID) {
	delete(r.bodies, id)
}
