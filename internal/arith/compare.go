package arith

import "github.com/jgrey4296/elgo/internal/ir"

// Order reports a.Cmp(b) the numeric way: -1, 0, 1. Non-numeric atoms compare by Key() instead
// (spec §6 only defines ordering for numeric atoms, but equality/inequality must still work for
// strings and enums).
func Order(a, b ir.Atom) int {
	if _, okA := numKind(a); okA {
		if _, okB := numKind(b); okB {
			fa, fb := toFloat(a), toFloat(b)
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	ka, kb := a.Key(), b.Key()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// Contains implements CONTAINS/NOTCONTAINS (spec's ∈/∉, text `@`/`!@`): value membership of a in
// the list b, grounded on ELCompFunctions.py's `lambda a, b: a in b`.
func Contains(a ir.Atom, b *ir.ListTerm) bool {
	for _, elem := range b.Elements {
		if atom, ok := ir.AsAtom(elem); ok && atom.Equal(a) {
			return true
		}
	}
	return false
}

// Near implements the `~=(tol)` comparison (spec §3 "near_tolerance"): |a-b| <= tol.
func Near(a, b, tol ir.Atom) bool {
	diff := toFloat(a) - toFloat(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= toFloat(tol)
}

// Compare evaluates a single comparison operator against two resolved atoms (the variable/list
// side already looked up by internal/ruleexec's comparison-filter step), or a list for @/!@.
func Compare(op ir.CompareOp, lhs ir.Atom, rhsAtom ir.Atom, rhsList *ir.ListTerm, tol *ir.Atom) bool {
	switch op {
	case ir.CmpLT:
		return Order(lhs, rhsAtom) < 0
	case ir.CmpLE:
		return Order(lhs, rhsAtom) <= 0
	case ir.CmpGT:
		return Order(lhs, rhsAtom) > 0
	case ir.CmpGE:
		return Order(lhs, rhsAtom) >= 0
	case ir.CmpEQ:
		return lhs.Equal(rhsAtom)
	case ir.CmpNE:
		return !lhs.Equal(rhsAtom)
	case ir.CmpIn:
		return rhsList != nil && Contains(lhs, rhsList)
	case ir.CmpNotIn:
		return rhsList != nil && !Contains(lhs, rhsList)
	case ir.CmpNear:
		if tol == nil {
			return false
		}
		return Near(lhs, rhsAtom, *tol)
	default:
		return false
	}
}
