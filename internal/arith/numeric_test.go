package arith

import (
	"math/rand"
	"testing"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIntInt(t *testing.T) {
	got, err := Add(ir.Int(2), ir.Int(3))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), got)
}

func TestAddPromotesToFloat(t *testing.T) {
	got, err := Add(ir.Int(2), ir.Float(0.5))
	require.NoError(t, err)
	assert.Equal(t, ir.Float(2.5), got)
}

func TestAddPromotesToRational(t *testing.T) {
	got, err := Add(ir.Int(1), ir.Rat(1, 2))
	require.NoError(t, err)
	assert.Equal(t, ir.Rat(3, 2), got)
}

func TestDivIntIntExactStaysInt(t *testing.T) {
	got, err := Div(ir.Int(6), ir.Int(3))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(2), got)
}

func TestDivIntIntNonExactNarrowsToRational(t *testing.T) {
	got, err := Div(ir.Int(1), ir.Int(3))
	require.NoError(t, err)
	assert.Equal(t, ir.AtomRational, got.Kind)
	assert.Equal(t, ir.Rat(1, 3), got)
}

func TestDivByZeroErrors(t *testing.T) {
	_, err := Div(ir.Int(1), ir.Int(0))
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestModByZeroErrors(t *testing.T) {
	_, err := Mod(ir.Int(1), ir.Int(0))
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestPowIntExponent(t *testing.T) {
	got, err := Pow(ir.Int(2), ir.Int(10))
	require.NoError(t, err)
	assert.Equal(t, ir.Int(1024), got)
}

func TestAddTypeMismatch(t *testing.T) {
	_, err := Add(ir.Int(1), ir.Str("x"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestLogIgnoresRHS(t *testing.T) {
	got1, err := Log(ir.Float(1), ir.Int(999))
	require.NoError(t, err)
	got2, err := Log(ir.Float(1), ir.Int(-5))
	require.NoError(t, err)
	assert.Equal(t, got1, got2)
}

func TestRandIsDeterministicWithSeededSource(t *testing.T) {
	src1 := rand.New(rand.NewSource(42))
	src2 := rand.New(rand.NewSource(42))
	a, _ := Rand(ir.Int(0), ir.Int(0), src1)
	b, _ := Rand(ir.Int(0), ir.Int(0), src2)
	assert.Equal(t, a, b)
}

func TestApplyDispatchesByOp(t *testing.T) {
	got, err := Apply(ir.ArithAdd, ir.Int(2), ir.Int(3), nil)
	require.NoError(t, err)
	assert.Equal(t, ir.Int(5), got)
}
