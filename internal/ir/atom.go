// Package ir defines the tagged-variant intermediate representation the parser is expected to
// produce and the dispatcher/trie/unifier/rule executor consume: atomic values, edge kinds,
// variables, path elements, facts, arithmetic actions and comparisons (spec §3).
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// AtomKind tags the variant held by an Atom.
type AtomKind int

const (
	AtomInt AtomKind = iota
	AtomRational
	AtomFloat
	AtomString
	AtomEnum
)

func (k AtomKind) String() string {
	switch k {
	case AtomInt:
		return "int"
	case AtomRational:
		return "rational"
	case AtomFloat:
		return "float"
	case AtomString:
		return "string"
	case AtomEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Rational is a pair of integers. Rat does not reject a zero Den.
type Rational struct {
	Num, Den int64
}

// Normalize reduces the rational to lowest terms with a positive denominator.
func (r Rational) Normalize() Rational {
	if r.Den < 0 {
		r.Num, r.Den = -r.Num, -r.Den
	}
	g := gcd(abs64(r.Num), r.Den)
	if g == 0 {
		return r
	}
	return Rational{Num: r.Num / g, Den: r.Den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Atom is the sum of integer, rational, float, bounded string and enum-tag values described in
// spec §3. Equality is value equality; every variant is comparable via Equal and hashable via
// Key, so a *store.Node's children map can be keyed by Atom without boxing into interface{}.
type Atom struct {
	Kind AtomKind
	I    int64
	R    Rational
	F    float64
	S    string
	E    string
}

// Int constructs an integer atom.
func Int(v int64) Atom { return Atom{Kind: AtomInt, I: v} }

// Rat constructs a (normalized) rational atom.
func Rat(num, den int64) Atom { return Atom{Kind: AtomRational, R: Rational{Num: num, Den: den}.Normalize()} }

// Float constructs a floating-point atom.
func Float(v float64) Atom { return Atom{Kind: AtomFloat, F: v} }

// Str constructs a bounded-string atom.
func Str(v string) Atom { return Atom{Kind: AtomString, S: v} }

// Enum constructs an enum-tag atom (a bare identifier used as a value, not a variable).
func Enum(v string) Atom { return Atom{Kind: AtomEnum, E: v} }

// RootSentinel is the distinguished value held by the trie root node; no fact may assert or
// query an atom equal to it.
var RootSentinel = Atom{Kind: AtomEnum, E: "\x00ROOT\x00"}

// Equal reports value equality between two atoms, not identity.
func (a Atom) Equal(b Atom) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AtomInt:
		return a.I == b.I
	case AtomRational:
		ra, rb := a.R.Normalize(), b.R.Normalize()
		return ra == rb
	case AtomFloat:
		return a.F == b.F
	case AtomString:
		return a.S == b.S
	case AtomEnum:
		return a.E == b.E
	default:
		return false
	}
}

// Key returns a canonical string usable as a map key for a node's children mapping. Distinct
// kinds never collide because each is tagged with a kind prefix.
func (a Atom) Key() string {
	switch a.Kind {
	case AtomInt:
		return "i:" + strconv.FormatInt(a.I, 10)
	case AtomRational:
		r := a.R.Normalize()
		return "r:" + strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
	case AtomFloat:
		return "f:" + strconv.FormatFloat(a.F, 'g', -1, 64)
	case AtomString:
		return "s:" + a.S
	case AtomEnum:
		return "e:" + a.E
	default:
		return "?:"
	}
}

// String renders the atom in dotted surface syntax: integers and rationals as written, floats
// with `d` in place of the decimal point, strings double-quoted, enums bare. Atom itself never
// holds a list — lists are represented at the Fact/PathElement level by ListTerm, kept separate
// from Atom so that every Atom is addressable as a trie map key.
func (a Atom) String() string {
	switch a.Kind {
	case AtomInt:
		return strconv.FormatInt(a.I, 10)
	case AtomRational:
		r := a.R.Normalize()
		return fmt.Sprintf("%d/%d", r.Num, r.Den)
	case AtomFloat:
		s := strconv.FormatFloat(a.F, 'f', -1, 64)
		return strings.Replace(s, ".", "d", 1)
	case AtomString:
		return strconv.Quote(a.S)
	case AtomEnum:
		return a.E
	default:
		return "<?atom>"
	}
}
