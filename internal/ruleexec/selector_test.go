package ruleexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformSelectorSingleOrZeroAlwaysZero(t *testing.T) {
	s := NewUniformSelector(1)
	assert.Equal(t, 0, s.Select(0))
	assert.Equal(t, 0, s.Select(1))
}

func TestUniformSelectorWithinRange(t *testing.T) {
	s := NewUniformSelector(7)
	for i := 0; i < 20; i++ {
		idx := s.Select(5)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}
}

func TestUniformSelectorDeterministicWithSameSeed(t *testing.T) {
	s1 := NewUniformSelector(42)
	s2 := NewUniformSelector(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, s1.Select(100), s2.Select(100))
	}
}

func TestFirstSelectorAlwaysZero(t *testing.T) {
	var s FirstSelector
	assert.Equal(t, 0, s.Select(10))
	assert.Equal(t, 0, s.Select(0))
}
