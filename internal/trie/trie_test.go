package trie

import (
	"testing"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fact(pairs ...ir.PairElem) *ir.Fact {
	elems := make([]ir.PathElem, 0, len(pairs)+1)
	elems = append(elems, ir.RootElem{})
	for _, p := range pairs {
		elems = append(elems, p)
	}
	return &ir.Fact{Elements: elems}
}

func dotPair(a ir.Atom) ir.PairElem { return ir.PairElem{Value: a, Edge: ir.EdgeDot} }
func exPair(a ir.Atom) ir.PairElem  { return ir.PairElem{Value: a, Edge: ir.EdgeEx} }

func TestPushThenGetRoundTrips(t *testing.T) {
	tr := New()
	res := tr.Push(fact(dotPair(ir.Str("a")), dotPair(ir.Str("b"))))
	require.True(t, res.Ok)

	got := tr.Get(fact(dotPair(ir.Str("a")), dotPair(ir.Str("b"))))
	assert.True(t, got.Ok)
	assert.Equal(t, res.Nodes[0], got.Nodes[0])
}

func TestGetMissingPathFails(t *testing.T) {
	tr := New()
	tr.Push(fact(dotPair(ir.Str("a"))))
	got := tr.Get(fact(dotPair(ir.Str("z"))))
	assert.False(t, got.Ok)
}

func TestExDowncastClearsSiblings(t *testing.T) {
	tr := New()
	tr.Push(fact(dotPair(ir.Str("a"))))
	tr.Push(fact(dotPair(ir.Str("b"))))
	require.Equal(t, 2, tr.Store().ChildCount(tr.Root()))

	res := tr.Push(fact(exPair(ir.Str("a"))))
	require.True(t, res.Ok)
	assert.Equal(t, 1, tr.Store().ChildCount(tr.Root()))

	stillA := tr.Get(fact(dotPair(ir.Str("a"))))
	assert.True(t, stillA.Ok)
	goneB := tr.Get(fact(dotPair(ir.Str("b"))))
	assert.False(t, goneB.Ok)
}

func TestDotUpcastPermitsCoexistence(t *testing.T) {
	tr := New()
	tr.Push(fact(exPair(ir.Str("a"))))
	tr.Push(fact(dotPair(ir.Str("a"))))
	res := tr.Push(fact(dotPair(ir.Str("b"))))
	require.True(t, res.Ok)

	assert.Equal(t, 2, tr.Store().ChildCount(tr.Root()))
}

func TestExSiblingDowngradesWhenNewDotSiblingArrives(t *testing.T) {
	tr := New()
	res := tr.Push(fact(exPair(ir.Str("a"))))
	require.True(t, res.Ok)

	res2 := tr.Push(fact(dotPair(ir.Str("b"))))
	require.True(t, res2.Ok)

	assert.Equal(t, 2, tr.Store().ChildCount(tr.Root()))

	aID, found := tr.Store().ChildByKey(tr.Root(), ir.Str("a").Key())
	require.True(t, found)
	aNode, _ := tr.Store().Get(aID)
	assert.Equal(t, ir.EdgeDot, aNode.Edge, "the pre-existing EX child must downgrade to DOT once a new DOT sibling is pushed")

	stillA := tr.Get(fact(dotPair(ir.Str("a"))))
	assert.True(t, stillA.Ok)
	stillB := tr.Get(fact(dotPair(ir.Str("b"))))
	assert.True(t, stillB.Ok)
}

func TestPushInvalidFactSetsConsistencyError(t *testing.T) {
	tr := New()
	res := tr.Push(&ir.Fact{Elements: []ir.PathElem{
		ir.RootElem{},
		ir.PairElem{Value: ir.NewExisVar("x"), Edge: ir.EdgeDot},
	}})
	assert.False(t, res.Ok)
	assert.ErrorIs(t, tr.Err(), ir.ErrInvalidAssertion)
}

func TestGetRejectsExPairOnDotChild(t *testing.T) {
	tr := New()
	tr.Push(fact(dotPair(ir.Str("a"))))
	got := tr.Get(fact(exPair(ir.Str("a"))))
	assert.False(t, got.Ok, "an EX pair must not match a DOT-edge child")
}

func TestPopDetachesWithoutCascading(t *testing.T) {
	tr := New()
	tr.Push(fact(dotPair(ir.Str("a")), dotPair(ir.Str("b"))))

	popRes := tr.Pop(fact(dotPair(ir.Str("a"))))
	require.True(t, popRes.Ok)

	goneA := tr.Get(fact(dotPair(ir.Str("a"))))
	assert.False(t, goneA.Ok)
}

func TestPopNonexistentFails(t *testing.T) {
	tr := New()
	res := tr.Pop(fact(dotPair(ir.Str("nope"))))
	assert.False(t, res.Ok)
}

func TestPushRejectsNonTerminalList(t *testing.T) {
	tr := New()
	res := tr.Push(&ir.Fact{Elements: []ir.PathElem{
		ir.RootElem{},
		ir.PairElem{Value: &ir.ListTerm{Elements: []ir.Term{ir.Int(1)}}, Edge: ir.EdgeDot},
		dotPair(ir.Str("a")),
	}})
	assert.False(t, res.Ok)
}

func TestRenderRootIsDot(t *testing.T) {
	tr := New()
	assert.Equal(t, ".", tr.Render(tr.Root()))
}

func TestRenderRoundTripsPath(t *testing.T) {
	tr := New()
	res := tr.Push(fact(dotPair(ir.Str("a")), exPair(ir.Str("b"))))
	require.True(t, res.Ok)
	assert.Equal(t, `."a"!"b"`, tr.Render(res.Nodes[0]))
}

func TestStructuralSubsetTrueForSubset(t *testing.T) {
	tr := New()
	aRes := tr.Push(fact(dotPair(ir.Str("a"))))
	tr.Push(fact(dotPair(ir.Str("a")), dotPair(ir.Str("x"))))

	bRes := tr.Push(fact(dotPair(ir.Str("b"))))
	tr.Push(fact(dotPair(ir.Str("b")), dotPair(ir.Str("x"))))
	tr.Push(fact(dotPair(ir.Str("b")), dotPair(ir.Str("y"))))

	assert.True(t, tr.StructuralSubset(aRes.Nodes[0], bRes.Nodes[0]))
}

func TestStructuralSubsetFalseWhenMissingChild(t *testing.T) {
	tr := New()
	aRes := tr.Push(fact(dotPair(ir.Str("a"))))
	tr.Push(fact(dotPair(ir.Str("a")), dotPair(ir.Str("x"))))

	bRes := tr.Push(fact(dotPair(ir.Str("b"))))
	tr.Push(fact(dotPair(ir.Str("b")), dotPair(ir.Str("y"))))

	assert.False(t, tr.StructuralSubset(aRes.Nodes[0], bRes.Nodes[0]))
}
