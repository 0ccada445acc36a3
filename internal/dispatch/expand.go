// Package dispatch implements fact expansion (spec §4.7) and the single-entry Dispatcher
// (spec §4.6), grounded on _examples/original_source/ielpy's ELRuntime.py add_data/run dispatch
// switch, regularized per the spec's decision to always emit exactly one fact per list element
// (including the empty-list->prefix-alone case), not PyEL's inconsistent extra-copy behavior.
package dispatch

import "github.com/jgrey4296/elgo/internal/ir"

// Expand implements spec §4.7: a fact whose final pair is a list value is rewritten into one
// flat fact per list element (prefix++elem), root-anchored facts in the list concatenated with
// their own root discarded, nested lists recursing, and an empty list yielding the prefix alone.
// A fact with no list terminal expands to itself.
func Expand(fact *ir.Fact) []*ir.Fact {
	terminal, ok := fact.TerminalValue()
	if !ok {
		return []*ir.Fact{fact}
	}
	list, isList := terminal.(*ir.ListTerm)
	if !isList {
		return []*ir.Fact{fact}
	}

	prefix := dropTerminal(fact)
	if len(list.Elements) == 0 {
		return []*ir.Fact{prefix}
	}

	var out []*ir.Fact
	for _, elem := range list.Elements {
		out = append(out, expandElement(prefix, elem)...)
	}
	return out
}

// expandElement builds prefix++elem, recursing into nested lists and root-anchored facts.
func expandElement(prefix *ir.Fact, elem ir.Term) []*ir.Fact {
	switch v := elem.(type) {
	case *ir.Fact:
		// root-anchored: concatenate its pairs onto prefix, discarding its own root.
		merged := appendPairs(prefix, v.Pairs())
		return Expand(merged)
	case *ir.ListTerm:
		merged := appendTerm(prefix, v)
		return Expand(merged)
	default:
		merged := appendTerm(prefix, elem)
		return []*ir.Fact{merged}
	}
}

// dropTerminal returns a copy of fact with its final pair removed.
func dropTerminal(fact *ir.Fact) *ir.Fact {
	pairs := fact.Pairs()
	root, _ := fact.Root()
	out := &ir.Fact{Elements: []ir.PathElem{root}, Negated: fact.Negated, FilledBindings: fact.FilledBindings}
	for _, p := range pairs[:len(pairs)-1] {
		out.Elements = append(out.Elements, p)
	}
	return out
}

// appendPairs returns a copy of prefix with extra pairs appended, each keeping its own edge kind.
func appendPairs(prefix *ir.Fact, extra []ir.PairElem) *ir.Fact {
	out := &ir.Fact{
		Elements:       append(append([]ir.PathElem{}, prefix.Elements...), pairsToElems(extra)...),
		Negated:        prefix.Negated,
		FilledBindings: prefix.FilledBindings,
	}
	return out
}

// appendTerm appends a single terminal value as a new pair, reusing the edge kind of prefix's
// last pair (or DOT if prefix has no pairs yet).
func appendTerm(prefix *ir.Fact, value ir.Term) *ir.Fact {
	edge := ir.EdgeDot
	pairs := prefix.Pairs()
	if len(pairs) > 0 {
		edge = pairs[len(pairs)-1].Edge
	}
	out := &ir.Fact{
		Elements:       append(append([]ir.PathElem{}, prefix.Elements...), ir.PairElem{Value: value, Edge: edge}),
		Negated:        prefix.Negated,
		FilledBindings: prefix.FilledBindings,
	}
	return out
}

func pairsToElems(pairs []ir.PairElem) []ir.PathElem {
	out := make([]ir.PathElem, len(pairs))
	for i, p := range pairs {
		out[i] = p
	}
	return out
}
