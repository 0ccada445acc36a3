// Package arith implements the numeric promotion rules, the arithmetic/comparison operator
// tables, and the in-place node update (spec §4.3/§5/§6). Grounded on
// _examples/original_source/ielpy's ELCompFunctions.py COMP_FUNCS/ARITH_FUNCS tables, ported from
// Python's ad-hoc numeric tower to Go's explicit Atom variants.
package arith

import (
	"errors"
	"math"
	"math/rand"

	"github.com/jgrey4296/elgo/internal/ir"
)

// ErrTypeMismatch is returned when an operator is applied to atom kinds it cannot reconcile
// (e.g. arithmetic against a string or enum atom).
var ErrTypeMismatch = errors.New("arith: incompatible atom kinds")

// ErrDivByZero guards the division and modulo operators (spec §6 edge case).
var ErrDivByZero = errors.New("arith: division by zero")

// numKind ranks the numeric atom kinds so Promote can pick the wider of two operands (spec §4.3
// "numeric promotion": int+int -> int; any rational -> rational; any float -> float).
func numKind(a ir.Atom) (int, bool) {
	switch a.Kind {
	case ir.AtomInt:
		return 0, true
	case ir.AtomRational:
		return 1, true
	case ir.AtomFloat:
		return 2, true
	default:
		return 0, false
	}
}

// toFloat widens any numeric atom to float64.
func toFloat(a ir.Atom) float64 {
	switch a.Kind {
	case ir.AtomInt:
		return float64(a.I)
	case ir.AtomRational:
		r := a.R.Normalize()
		return float64(r.Num) / float64(r.Den)
	case ir.AtomFloat:
		return a.F
	default:
		return 0
	}
}

// toRational widens an int or rational atom to a Rational; floats are never silently narrowed.
func toRational(a ir.Atom) ir.Rational {
	switch a.Kind {
	case ir.AtomInt:
		return ir.Rational{Num: a.I, Den: 1}
	case ir.AtomRational:
		return a.R.Normalize()
	default:
		return ir.Rational{}
	}
}

// Promote applies spec §4.3's numeric tower (int < rational < float) and returns both operands
// widened to their common kind.
func Promote(a, b ir.Atom) (ir.Atom, ir.Atom, error) {
	ka, ok := numKind(a)
	if !ok {
		return a, b, ErrTypeMismatch
	}
	kb, ok := numKind(b)
	if !ok {
		return a, b, ErrTypeMismatch
	}
	target := ka
	if kb > target {
		target = kb
	}
	switch target {
	case 0:
		return a, b, nil
	case 1:
		return ir.Atom{Kind: ir.AtomRational, R: toRational(a)}, ir.Atom{Kind: ir.AtomRational, R: toRational(b)}, nil
	default:
		return ir.Float(toFloat(a)), ir.Float(toFloat(b)), nil
	}
}

// Add, Sub, Mul, Div, Pow, Mod apply their operator at the promoted common kind, narrowing
// int/int division back to a rational rather than truncating (spec §4.3 "int/int non-integer
// division produces a rational").

func Add(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	switch x.Kind {
	case ir.AtomInt:
		return ir.Int(x.I + y.I), nil
	case ir.AtomRational:
		return ir.Rat(x.R.Num*y.R.Den+y.R.Num*x.R.Den, x.R.Den*y.R.Den), nil
	default:
		return ir.Float(x.F + y.F), nil
	}
}

func Sub(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	switch x.Kind {
	case ir.AtomInt:
		return ir.Int(x.I - y.I), nil
	case ir.AtomRational:
		return ir.Rat(x.R.Num*y.R.Den-y.R.Num*x.R.Den, x.R.Den*y.R.Den), nil
	default:
		return ir.Float(x.F - y.F), nil
	}
}

func Mul(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	switch x.Kind {
	case ir.AtomInt:
		return ir.Int(x.I * y.I), nil
	case ir.AtomRational:
		return ir.Rat(x.R.Num*y.R.Num, x.R.Den*y.R.Den), nil
	default:
		return ir.Float(x.F * y.F), nil
	}
}

func Div(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	switch x.Kind {
	case ir.AtomInt:
		if y.I == 0 {
			return ir.Atom{}, ErrDivByZero
		}
		if x.I%y.I == 0 {
			return ir.Int(x.I / y.I), nil
		}
		return ir.Rat(x.I, y.I), nil
	case ir.AtomRational:
		if y.R.Num == 0 {
			return ir.Atom{}, ErrDivByZero
		}
		return ir.Rat(x.R.Num*y.R.Den, x.R.Den*y.R.Num), nil
	default:
		if y.F == 0 {
			return ir.Atom{}, ErrDivByZero
		}
		return ir.Float(x.F / y.F), nil
	}
}

func Pow(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	if x.Kind == ir.AtomInt && y.I >= 0 {
		result := int64(1)
		for i := int64(0); i < y.I; i++ {
			result *= x.I
		}
		return ir.Int(result), nil
	}
	return ir.Float(math.Pow(toFloat(x), toFloat(y))), nil
}

func Mod(a, b ir.Atom) (ir.Atom, error) {
	x, y, err := Promote(a, b)
	if err != nil {
		return ir.Atom{}, err
	}
	switch x.Kind {
	case ir.AtomInt:
		if y.I == 0 {
			return ir.Atom{}, ErrDivByZero
		}
		return ir.Int(x.I % y.I), nil
	default:
		fy := toFloat(y)
		if fy == 0 {
			return ir.Atom{}, ErrDivByZero
		}
		return ir.Float(math.Mod(toFloat(x), fy)), nil
	}
}

// Log and Exp ignore their rhs operand (spec §6's deliberate decision, preserved from PyEL where
// the second operand of these two unary-in-spirit operators is never consulted).
func Log(a, _ ir.Atom) (ir.Atom, error) {
	ka, ok := numKind(a)
	if !ok {
		return ir.Atom{}, ErrTypeMismatch
	}
	_ = ka
	return ir.Float(math.Log(toFloat(a))), nil
}

func Exp(a, _ ir.Atom) (ir.Atom, error) {
	if _, ok := numKind(a); !ok {
		return ir.Atom{}, ErrTypeMismatch
	}
	return ir.Float(math.Exp(toFloat(a))), nil
}

// Rand ignores both operands and returns a fresh uniform random float in [0, 1) drawn from src
// (spec's Open Question decision: a real random draw, not PyEL's dead placeholder).
func Rand(_, _ ir.Atom, src *rand.Rand) (ir.Atom, error) {
	return ir.Float(src.Float64()), nil
}

// Apply dispatches to the operator named by op.
func Apply(op ir.ArithOp, a, b ir.Atom, src *rand.Rand) (ir.Atom, error) {
	switch op {
	case ir.ArithAdd:
		return Add(a, b)
	case ir.ArithSub:
		return Sub(a, b)
	case ir.ArithMul:
		return Mul(a, b)
	case ir.ArithDiv:
		return Div(a, b)
	case ir.ArithPow:
		return Pow(a, b)
	case ir.ArithMod:
		return Mod(a, b)
	case ir.ArithLog:
		return Log(a, b)
	case ir.ArithExp:
		return Exp(a, b)
	case ir.ArithRand:
		return Rand(a, b, src)
	default:
		return ir.Atom{}, ErrTypeMismatch
	}
}
