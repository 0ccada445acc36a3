package trie

import (
	"errors"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// Node-subtree names a rule/node body organizes its children under (spec §4.5). containsRule
// looks for the first six; ChildKeyInterface names the interface subtree.
const (
	ChildKeyConditions  = "conditions"
	ChildKeyComparisons = "comparisons"
	ChildKeyArithmetic  = "arithmetic"
	ChildKeyActions     = "actions"
	ChildKeyOutput      = "output"
	ChildKeyNext        = "next"
	ChildKeyInterface   = "interface"
)

var ruleChildKeys = []string{
	ChildKeyConditions, ChildKeyComparisons, ChildKeyArithmetic,
	ChildKeyActions, ChildKeyOutput, ChildKeyNext,
}

// ErrCrossEdge is returned by Walk/WalkFrom when the DFS revisits a node, which would mean the trie
// has stopped being a pure tree (spec §4.1 "DFS MUST detect cross-edges... and fail loudly").
var ErrCrossEdge = errors.New("trie: DFS detected a cross-edge (not a tree)")

// Metrics is the result of a structural DFS over the trie (spec §4.1 "Structural metrics").
type Metrics struct {
	MaxDepth  int
	Leaves    []nodeid.ID
	RuleNodes []nodeid.ID
}

type queueEntry struct {
	id    nodeid.ID
	depth int
}

// Walk performs the structural DFS (breadth order internally, matching
// ELTrie.dfs_for_metrics's FIFO queue) from the trie root, detecting cross-edges.
func (t *Trie) Walk() (Metrics, error) {
	return t.WalkFrom(t.Root())
}

// WalkFrom performs the same DFS rooted at an arbitrary node, assessing a single node subtree
// in isolation.
func (t *Trie) WalkFrom(start nodeid.ID) (Metrics, error) {
	processed := make(map[nodeid.ID]bool)
	queue := []queueEntry{{id: start, depth: 0}}
	var m Metrics

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if processed[entry.id] {
			return Metrics{}, ErrCrossEdge
		}
		processed[entry.id] = true

		if entry.depth > m.MaxDepth {
			m.MaxDepth = entry.depth
		}

		children := t.Children(entry.id)
		for _, c := range children {
			queue = append(queue, queueEntry{id: c.ID, depth: entry.depth + 1})
		}
		if len(children) == 0 {
			m.Leaves = append(m.Leaves, entry.id)
		}
		if t.containsRule(entry.id) {
			m.RuleNodes = append(m.RuleNodes, entry.id)
		}
	}
	return m, nil
}

// containsRule reports whether node has at least one child named after a rule-body subtree
// (conditions/comparisons/arithmetic/actions/output/next).
func (t *Trie) containsRule(id nodeid.ID) bool {
	for _, key := range ruleChildKeys {
		if _, ok := t.store.ChildByKey(id, ir.Enum(key).Key()); ok {
			return true
		}
	}
	return false
}
