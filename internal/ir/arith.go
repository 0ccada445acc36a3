package ir

import "github.com/jgrey4296/elgo/internal/nodeid"

// ArithOp enumerates the arithmetic operators of spec §3/§6.
type ArithOp int

const (
	ArithAdd ArithOp = iota
	ArithSub
	ArithMul
	ArithDiv
	ArithPow
	ArithMod
	ArithRand
	ArithLog
	ArithExp
)

func (op ArithOp) String() string {
	switch op {
	case ArithAdd:
		return "+"
	case ArithSub:
		return "-"
	case ArithMul:
		return "*"
	case ArithDiv:
		return "/"
	case ArithPow:
		return "^"
	case ArithMod:
		return "%"
	case ArithRand:
		return "rnd"
	case ArithLog:
		return "lg"
	case ArithExp:
		return "exp"
	default:
		return "?"
	}
}

// ArithTarget is the destination of an arithmetic update: a fact resolving to a leaf node, a
// variable already bound to a node, or a raw node id (spec §3).
type ArithTarget interface {
	isArithTarget()
}

// NodeIDTarget addresses a node directly by identity.
type NodeIDTarget struct {
	ID nodeid.ID
}

func (NodeIDTarget) isArithTarget() {}

// ArithAction is an in-place numeric update applied to a trie leaf (spec §4.3).
type ArithAction struct {
	Target ArithTarget
	Op     ArithOp
	Rhs    Term // Atom or *Variable
}

func (*ArithAction) isValue() {}
