package binding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slice(vars ...string) ir.BindingSlice {
	s := ir.NewBindingSlice()
	for _, v := range vars {
		s[v] = ir.BindingEntry{Node: nodeid.New(), Value: ir.Str(v)}
	}
	return s
}

func TestFrameKeySetAgreesAcrossSlices(t *testing.T) {
	f := Frame{slice("x", "y"), slice("x", "y")}
	keys, ok := f.KeySet()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestFrameKeySetDisagreesFails(t *testing.T) {
	f := Frame{slice("x"), slice("x", "y")}
	_, ok := f.KeySet()
	assert.False(t, ok)
}

func TestFrameKeySetEmptyFails(t *testing.T) {
	f := Frame{}
	_, ok := f.KeySet()
	assert.False(t, ok)
}

func TestPushOnEmptyStackSeedsVacuousFrame(t *testing.T) {
	s := NewStack()
	s.Push()
	assert.Equal(t, 1, s.Depth())
	top := s.Top()
	require.Len(t, top, 1)
	assert.Empty(t, top[0])
}

func TestPushDuplicatesTop(t *testing.T) {
	s := NewStack()
	seed := Frame{slice("x")}
	s.PushFrame(seed)
	s.Push()
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, s.Top(), seed)
}

func TestReplaceTopOverwritesInPlace(t *testing.T) {
	s := NewStack()
	s.PushFrame(Frame{slice("x")})
	s.ReplaceTop(Frame{slice("y")})
	assert.Equal(t, 1, s.Depth())
	got := s.Top()
	_, hasY := got[0]["y"]
	assert.True(t, hasY)
}

func TestPopRemovesTop(t *testing.T) {
	s := NewStack()
	s.PushFrame(Frame{slice("x")})
	s.PushFrame(Frame{slice("y")})
	s.Pop()
	assert.Equal(t, 1, s.Depth())
	got := s.Top()
	_, hasX := got[0]["x"]
	assert.True(t, hasX)
}

func TestPopOnEmptyStackIsNoop(t *testing.T) {
	s := NewStack()
	s.Pop()
	assert.Equal(t, 0, s.Depth())
}

func TestPushDuplicatesTopExactly(t *testing.T) {
	s := NewStack()
	seed := Frame{slice("x", "y")}
	s.PushFrame(seed)
	s.Push()

	if diff := cmp.Diff(seed, s.Top()); diff != "" {
		t.Fatalf("pushed frame diverged from its source (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := Frame{slice("x")}
	clone := f.Clone()
	clone[0] = slice("y")
	_, stillX := f[0]["x"]
	assert.True(t, stillX)
}
