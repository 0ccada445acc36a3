package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomSpecToAtomVariants(t *testing.T) {
	cases := []struct {
		spec AtomSpec
		want ir.Atom
	}{
		{AtomSpec{Kind: "int", I: 5}, ir.Int(5)},
		{AtomSpec{Kind: "rational", Num: 1, Den: 2}, ir.Rat(1, 2)},
		{AtomSpec{Kind: "float", F: 1.5}, ir.Float(1.5)},
		{AtomSpec{Kind: "string", S: "hi"}, ir.Str("hi")},
		{AtomSpec{Kind: "enum", S: "tag"}, ir.Enum("tag")},
		{AtomSpec{S: "tag"}, ir.Enum("tag")},
	}
	for _, c := range cases {
		got, err := c.spec.ToAtom()
		require.NoError(t, err)
		assert.True(t, got.Equal(c.want))
	}
}

func TestAtomSpecUnknownKindErrors(t *testing.T) {
	_, err := AtomSpec{Kind: "bogus"}.ToAtom()
	assert.Error(t, err)
}

func TestFactSpecToFactBuildsPairs(t *testing.T) {
	fs := FactSpec{Pairs: []PairSpec{
		{Edge: ".", Value: AtomSpec{Kind: "string", S: "a"}},
		{Edge: "!", Value: AtomSpec{Kind: "int", I: 1}},
	}}
	fact, err := fs.ToFact()
	require.NoError(t, err)
	pairs := fact.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, ir.EdgeDot, pairs[0].Edge)
	assert.Equal(t, ir.EdgeEx, pairs[1].Edge)
}

func TestLoadFileAndToFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	content := `
facts:
  - pairs:
      - edge: "."
        value:
          kind: string
          s: a
      - edge: "."
        value:
          kind: int
          i: 1
  - negated: true
    pairs:
      - edge: "."
        value:
          kind: string
          s: b
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Facts, 2)

	facts, err := doc.ToFacts()
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.False(t, facts[0].Negated)
	assert.True(t, facts[1].Negated)
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestToFactsPropagatesAtomError(t *testing.T) {
	doc := &Document{Facts: []FactSpec{{Pairs: []PairSpec{{Value: AtomSpec{Kind: "bogus"}}}}}}
	_, err := doc.ToFacts()
	assert.Error(t, err)
}
