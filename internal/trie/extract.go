package trie

import (
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// LeafFacts walks every path from root down to each of its leaves and returns one root-anchored
// ir.Fact per leaf (spec §4.5 step 1 "Extract... a leaf is the fact formed by the path from the
// named subtree root to that leaf, root-anchored"). root itself is excluded from the emitted
// path; its children are the first pair of each fact.
func (t *Trie) LeafFacts(root nodeid.ID) []*ir.Fact {
	var out []*ir.Fact
	t.collectLeafFacts(root, nil, &out)
	return out
}

func (t *Trie) collectLeafFacts(id nodeid.ID, prefix []ir.PairElem, out *[]*ir.Fact) {
	children := t.Children(id)
	if len(children) == 0 {
		if len(prefix) == 0 {
			return
		}
		elems := make([]ir.PathElem, 0, len(prefix)+1)
		elems = append(elems, ir.RootElem{})
		for _, p := range prefix {
			elems = append(elems, p)
		}
		*out = append(*out, &ir.Fact{Elements: elems})
		return
	}
	for _, c := range children {
		next := append(append([]ir.PairElem{}, prefix...), ir.PairElem{Value: c.Value, Edge: c.Edge})
		t.collectLeafFacts(c.ID, next, out)
	}
}
