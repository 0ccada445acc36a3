package ir

// PathElem is one step of a Fact's path: Root, Pair, or the Query terminal sentinel (spec §3).
type PathElem interface {
	isPathElem()
}

// RootElem anchors a path at the trie root, or — when PathVar is set — at the node identity
// that variable is bound to (a query whose root is itself a subtree, spec §4.2 step 1).
type RootElem struct {
	Edge    EdgeKind
	PathVar *Variable
}

func (RootElem) isPathElem() {}

// PairElem is an intermediate path step: a concrete value or a variable, plus the edge kind
// governing how its node relates to its parent.
type PairElem struct {
	Value Term // Atom, *Variable, or (terminal position only) *ListTerm
	Edge  EdgeKind
}

func (PairElem) isPathElem() {}

// IsVar reports whether this pair's value is a variable rather than a concrete atom.
func (p PairElem) IsVar() bool {
	_, ok := p.Value.(*Variable)
	return ok
}

// QueryElem is the trailing sentinel marking a Fact as a query rather than an assertion.
type QueryElem struct{}

func (QueryElem) isPathElem() {}
