package ir

// Value is the single entry type the Dispatcher acts on (spec §4.6): a Fact (assert, retract,
// or query, branching on its shape), a BindInstruction (global path-variable alias), or an
// ArithAction (in-place numeric update).
type Value interface {
	isValue()
}

// BindInstruction stores or clears a global path-variable alias: `$x <- .path` (empty Root
// unbinds, spec §6).
type BindInstruction struct {
	Name string
	Root *Fact
}

func (*BindInstruction) isValue() {}
