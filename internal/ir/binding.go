package ir

import (
	"sort"

	"github.com/jgrey4296/elgo/internal/nodeid"
)

// BindingEntry is one variable's binding: the node it resolved to, and that node's leaf value.
type BindingEntry struct {
	Node  nodeid.ID
	Value Atom
}

// BindingSlice is a complete assignment of values to all variables in one query, tagged with the
// reached node (spec GLOSSARY "Slice"). It is immutable by convention: callers clone before
// mutating (Clone, WithEntry).
type BindingSlice map[string]BindingEntry

// NewBindingSlice returns an empty slice.
func NewBindingSlice() BindingSlice {
	return make(BindingSlice)
}

// Clone returns a shallow copy safe to extend independently of the receiver.
func (s BindingSlice) Clone() BindingSlice {
	out := make(BindingSlice, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// WithEntry returns a new slice equal to s plus (or overriding) one entry, leaving s untouched.
func (s BindingSlice) WithEntry(name string, e BindingEntry) BindingSlice {
	out := s.Clone()
	out[name] = e
	return out
}

// KeySet returns the sorted variable names bound in this slice, used both to render a stable
// signature and to implement the "all slices share the same key set" correctness check (spec §4.2).
func (s BindingSlice) KeySet() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SameKeySet reports whether two slices bind exactly the same variable names.
func (s BindingSlice) SameKeySet(other BindingSlice) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}
