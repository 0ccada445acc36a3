package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewBuildsTextLogger(t *testing.T) {
	l, err := New("debug", "text")
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewBuildsJSONLogger(t *testing.T) {
	l, err := New("info", "json")
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewDefaultsToInfoLevel(t *testing.T) {
	l, err := New("", "text")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestComponentTagsSubsystemName(t *testing.T) {
	base, err := New("info", "text")
	require.NoError(t, err)
	child := Component(base, "trie")
	assert.NotNil(t, child)
}

func TestComponentOnNilBaseReturnsNop(t *testing.T) {
	child := Component(nil, "trie")
	assert.NotNil(t, child)
}
