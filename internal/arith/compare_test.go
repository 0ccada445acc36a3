package arith

import (
	"testing"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/stretchr/testify/assert"
)

func TestOrderNumeric(t *testing.T) {
	assert.Equal(t, -1, Order(ir.Int(1), ir.Int(2)))
	assert.Equal(t, 1, Order(ir.Float(2), ir.Int(1)))
	assert.Equal(t, 0, Order(ir.Int(2), ir.Float(2)))
}

func TestOrderNonNumericByKey(t *testing.T) {
	assert.Equal(t, -1, Order(ir.Str("a"), ir.Str("b")))
}

func TestContains(t *testing.T) {
	list := &ir.ListTerm{Elements: []ir.Term{ir.Int(1), ir.Int(2), ir.Int(3)}}
	assert.True(t, Contains(ir.Int(2), list))
	assert.False(t, Contains(ir.Int(9), list))
}

func TestNearWithinTolerance(t *testing.T) {
	assert.True(t, Near(ir.Float(1.0), ir.Float(1.05), ir.Float(0.1)))
	assert.False(t, Near(ir.Float(1.0), ir.Float(1.5), ir.Float(0.1)))
}

func TestCompareEQandNE(t *testing.T) {
	assert.True(t, Compare(ir.CmpEQ, ir.Int(5), ir.Int(5), nil, nil))
	assert.True(t, Compare(ir.CmpNE, ir.Int(5), ir.Int(6), nil, nil))
}

func TestCompareOrdering(t *testing.T) {
	assert.True(t, Compare(ir.CmpLT, ir.Int(1), ir.Int(2), nil, nil))
	assert.True(t, Compare(ir.CmpGE, ir.Int(2), ir.Int(2), nil, nil))
}

func TestCompareInAndNotIn(t *testing.T) {
	list := &ir.ListTerm{Elements: []ir.Term{ir.Int(1), ir.Int(2)}}
	assert.True(t, Compare(ir.CmpIn, ir.Int(1), ir.Atom{}, list, nil))
	assert.True(t, Compare(ir.CmpNotIn, ir.Int(9), ir.Atom{}, list, nil))
}

func TestCompareNearRequiresTolerance(t *testing.T) {
	assert.False(t, Compare(ir.CmpNear, ir.Int(1), ir.Int(1), nil, nil))
	tol := ir.Float(0.5)
	assert.True(t, Compare(ir.CmpNear, ir.Float(1.0), ir.Float(1.2), nil, &tol))
}
