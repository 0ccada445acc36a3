package engine

import (
	"testing"

	"github.com/jgrey4296/elgo/internal/config"
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/ruleexec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fact(pairs ...ir.PairElem) *ir.Fact {
	elems := []ir.PathElem{ir.RootElem{}}
	for _, p := range pairs {
		elems = append(elems, p)
	}
	return &ir.Fact{Elements: elems}
}

func dot(v ir.Term) ir.PairElem { return ir.PairElem{Value: v, Edge: ir.EdgeDot} }

func TestNewWithNilConfigAndLoggerUsesDefaults(t *testing.T) {
	eng := New(nil, nil)
	require.NotNil(t, eng)
	stats, err := eng.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.NodeCount)
}

func TestAssertThenQueryRoundTrips(t *testing.T) {
	eng := New(nil, nil)
	res := eng.Assert(fact(dot(ir.Str("a"))))
	require.True(t, res.Ok)

	q := eng.Query(fact(dot(ir.Str("a"))))
	assert.True(t, q.Ok)
}

func TestDispatchRecordsHistory(t *testing.T) {
	eng := New(nil, nil)
	eng.Assert(fact(dot(ir.Str("a"))))
	eng.Assert(fact(dot(ir.Str("b"))))

	hist := eng.History()
	assert.Len(t, hist, 2)
}

func TestDispatchRespectsFactLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FactLimit = 1 // only the root node itself fits
	eng := New(cfg, nil)

	res := eng.Assert(fact(dot(ir.Str("a"))))
	assert.False(t, res.Ok, "asserting past the fact limit must fail")
}

func TestDefineRuleThenRunRule(t *testing.T) {
	eng := New(nil, nil)
	eng.Assert(fact(dot(ir.Str("base")), dot(ir.Str("x"))))

	ruleRes := eng.Assert(fact(dot(ir.Str("rule"))))
	require.True(t, ruleRes.Ok)
	ruleID := ruleRes.Nodes[0]

	eng.DefineRule(ruleID, &ruleexec.Body{
		Conditions: []*ir.Fact{fact(dot(ir.Str("base")), dot(ir.NewExisVar("v")))},
	})

	result := eng.RunRule(ruleID)
	assert.True(t, result.Ok)
}

func TestStatsReflectsAssertedStructure(t *testing.T) {
	eng := New(nil, nil)
	eng.Assert(fact(dot(ir.Str("a")), dot(ir.Str("b"))))

	stats, err := eng.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, 1, stats.LeafCount)
}
