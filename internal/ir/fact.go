package ir

// Fact is an ordered sequence of path elements, optionally negated, optionally a query, with
// any bindings already filled in from an enclosing scope (spec §3).
type Fact struct {
	Elements         []PathElem
	Negated          bool
	DeclaredBindings []*Variable
	FilledBindings   BindingSlice
}

func (*Fact) isTerm()        {}
func (*Fact) isArithTarget() {}
func (*Fact) isValue()       {}

// NewFact builds a fact from a root and its following elements.
func NewFact(root RootElem, rest ...PathElem) *Fact {
	return &Fact{Elements: append([]PathElem{root}, rest...)}
}

// Root returns the fact's leading RootElem. Every well-formed fact has one.
func (f *Fact) Root() (RootElem, bool) {
	if len(f.Elements) == 0 {
		return RootElem{}, false
	}
	r, ok := f.Elements[0].(RootElem)
	return r, ok
}

// Pairs returns the fact's intermediate PairElem steps, i.e. everything but a leading Root and a
// trailing Query sentinel.
func (f *Fact) Pairs() []PairElem {
	out := make([]PairElem, 0, len(f.Elements))
	for _, e := range f.Elements {
		if p, ok := e.(PairElem); ok {
			out = append(out, p)
		}
	}
	return out
}

// IsQuery reports whether the fact's final element is the Query sentinel.
func (f *Fact) IsQuery() bool {
	if len(f.Elements) == 0 {
		return false
	}
	_, ok := f.Elements[len(f.Elements)-1].(QueryElem)
	return ok
}

// IsValidForAssertion implements spec §3: begins with Root, and every non-root element is a
// Pair whose value is not a list.
func (f *Fact) IsValidForAssertion() bool {
	if len(f.Elements) == 0 {
		return false
	}
	if _, ok := f.Elements[0].(RootElem); !ok {
		return false
	}
	for i, e := range f.Elements[1:] {
		p, ok := e.(PairElem)
		if !ok {
			return false
		}
		switch p.Value.(type) {
		case Atom:
			// always fine
		case *ListTerm:
			// A list is only legal as the terminal pair (subject to expansion, §4.7).
			if i != len(f.Elements)-2 {
				return false
			}
		default:
			// assertion facts carry no unbound variables; an unresolved *Variable here means
			// the fact was never fully bound before being handed to the trie.
			return false
		}
	}
	return true
}

// IsValidForQuery implements spec §3: begins with Root (possibly path-variable anchored) and
// ends with Query.
func (f *Fact) IsValidForQuery() bool {
	if len(f.Elements) == 0 {
		return false
	}
	if _, ok := f.Elements[0].(RootElem); !ok {
		return false
	}
	return f.IsQuery()
}

// TerminalValue returns the value of the fact's terminal (non-Query, non-Root) pair, if any.
func (f *Fact) TerminalValue() (Term, bool) {
	pairs := f.Pairs()
	if len(pairs) == 0 {
		return nil, false
	}
	return pairs[len(pairs)-1].Value, true
}

// AsQuery returns a copy of f with a trailing QueryElem appended (a no-op if already a query).
func (f *Fact) AsQuery() *Fact {
	if f.IsQuery() {
		return f
	}
	out := f.clone()
	out.Elements = append(out.Elements, QueryElem{})
	return out
}

// Negate returns a copy of f with Negated toggled.
func (f *Fact) Negate() *Fact {
	out := f.clone()
	out.Negated = !out.Negated
	return out
}

func (f *Fact) clone() *Fact {
	elems := make([]PathElem, len(f.Elements))
	copy(elems, f.Elements)
	return &Fact{
		Elements:         elems,
		Negated:          f.Negated,
		DeclaredBindings: f.DeclaredBindings,
		FilledBindings:   f.FilledBindings,
	}
}

// Bind returns a new fact with slice merged into FilledBindings; the IR value is immutable
// after construction (spec §3 "Lifecycles") so every mutation returns a new *Fact.
func (f *Fact) Bind(slice BindingSlice) *Fact {
	out := f.clone()
	if out.FilledBindings == nil {
		out.FilledBindings = NewBindingSlice()
	} else {
		out.FilledBindings = out.FilledBindings.Clone()
	}
	for k, v := range slice {
		out.FilledBindings[k] = v
	}
	return out
}

// HasForallBinding reports whether any variable referenced in the fact's pairs has FORALL scope.
func (f *Fact) HasForallBinding() bool {
	for _, p := range f.Pairs() {
		if v, ok := p.Value.(*Variable); ok && v.Scope == ScopeForall {
			return true
		}
	}
	if r, ok := f.Root(); ok && r.PathVar != nil && r.PathVar.Scope == ScopeForall {
		return true
	}
	return false
}
