// Package replay defines the YAML serialization of facts used by cmd/elctl's replay subcommand
// and internal/watch's directory watcher (spec §12.2's supplemented history/replay feature).
// Since parsing the dotted surface syntax of spec §6 is explicitly out of scope, both consume
// this structured form instead.
package replay

import (
	"fmt"
	"os"

	"github.com/jgrey4296/elgo/internal/ir"
	"gopkg.in/yaml.v3"
)

// AtomSpec is the YAML shape of an ir.Atom.
type AtomSpec struct {
	Kind string `yaml:"kind"` // int | rational | float | string | enum
	I    int64  `yaml:"i,omitempty"`
	Num  int64  `yaml:"num,omitempty"`
	Den  int64  `yaml:"den,omitempty"`
	F    float64 `yaml:"f,omitempty"`
	S    string  `yaml:"s,omitempty"`
}

// ToAtom converts the spec to an ir.Atom.
func (a AtomSpec) ToAtom() (ir.Atom, error) {
	switch a.Kind {
	case "int":
		return ir.Int(a.I), nil
	case "rational":
		return ir.Rat(a.Num, a.Den), nil
	case "float":
		return ir.Float(a.F), nil
	case "string":
		return ir.Str(a.S), nil
	case "enum", "":
		return ir.Enum(a.S), nil
	default:
		return ir.Atom{}, fmt.Errorf("replay: unknown atom kind %q", a.Kind)
	}
}

// PairSpec is the YAML shape of one fact path step.
type PairSpec struct {
	Edge  string   `yaml:"edge"` // "." or "!"
	Value AtomSpec `yaml:"value"`
}

func (p PairSpec) edgeKind() ir.EdgeKind {
	if p.Edge == "!" {
		return ir.EdgeEx
	}
	return ir.EdgeDot
}

// FactSpec is the YAML shape of one root-anchored fact (no path-variable roots, since replay
// facts are always concrete — spec §12.2's history is a record of concrete asserted/retracted
// state, not of queries).
type FactSpec struct {
	Negated bool       `yaml:"negated"`
	Pairs   []PairSpec `yaml:"pairs"`
}

// ToFact converts the spec into an ir.Fact ready for dispatch.
func (f FactSpec) ToFact() (*ir.Fact, error) {
	fact := &ir.Fact{Elements: []ir.PathElem{ir.RootElem{}}, Negated: f.Negated}
	for _, p := range f.Pairs {
		atom, err := p.Value.ToAtom()
		if err != nil {
			return nil, err
		}
		fact.Elements = append(fact.Elements, ir.PairElem{Value: atom, Edge: p.edgeKind()})
	}
	return fact, nil
}

// Document is the top-level shape of a replay/snapshot YAML file: a flat list of facts to
// assert or retract in order.
type Document struct {
	Facts []FactSpec `yaml:"facts"`
}

// LoadFile reads and parses a replay document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("replay: failed to parse %s: %w", path, err)
	}
	return &doc, nil
}

// ToFacts converts every FactSpec in the document to an ir.Fact, in order.
func (d *Document) ToFacts() ([]*ir.Fact, error) {
	out := make([]*ir.Fact, 0, len(d.Facts))
	for i, fs := range d.Facts {
		f, err := fs.ToFact()
		if err != nil {
			return nil, fmt.Errorf("replay: fact %d: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}
