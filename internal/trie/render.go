package trie

import (
	"strings"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// Render renders id's path from the root as dotted-syntax text (spec §12.3), the inverse of the
// surface grammar's atom rendering: DOT edges join with `.`, EX edges with `!`, floats rendered
// with `d` in place of `.` (carried by Atom.String()).
func (t *Trie) Render(id nodeid.ID) string {
	var chain []*node
	cur := id
	for {
		n, ok := t.store.Get(cur)
		if !ok {
			break
		}
		if !n.HasParent {
			break
		}
		chain = append(chain, &node{id: n.ID, edge: n.Edge, value: n.Value})
		cur = n.Parent
	}
	var b strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		b.WriteString(edgeSep(chain[i].edge))
		b.WriteString(chain[i].value.String())
	}
	if b.Len() == 0 {
		return "."
	}
	return "." + b.String()[1:]
}

type node struct {
	id    nodeid.ID
	edge  ir.EdgeKind
	value ir.Atom
}

func edgeSep(e ir.EdgeKind) string {
	if e == ir.EdgeEx {
		return "!"
	}
	return "."
}

// StructuralSubset reports whether every child key present under a is also present under b,
// recursively (spec §12.4, grounded on PyEL's ELTrieNode.struct_equal child-key-set superset
// check). Used by the rule executor to verify a `.interface` subtree's shape is satisfied by a
// candidate `next` target before allowing the transition.
func (t *Trie) StructuralSubset(a, b nodeid.ID) bool {
	aChildren := t.store.Children(a)
	for _, ac := range aChildren {
		bid, found := t.store.ChildByKey(b, ac.Value.Key())
		if !found {
			return false
		}
		bc, _ := t.store.Get(bid)
		if ac.Edge != bc.Edge {
			return false
		}
		if !t.StructuralSubset(ac.ID, bc.ID) {
			return false
		}
	}
	return true
}
