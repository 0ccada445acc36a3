package dispatch

import (
	"errors"

	"github.com/jgrey4296/elgo/internal/arith"
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/jgrey4296/elgo/internal/store"
	"github.com/jgrey4296/elgo/internal/trie"
	"github.com/jgrey4296/elgo/internal/unify"
)

// ErrUnknownTarget is returned when an ArithAction's target cannot be resolved to a live node.
var ErrUnknownTarget = errors.New("dispatch: arithmetic target does not resolve to a node")

// ErrNonPathTarget is returned when an ArithAction's target is a non-path variable: it binds a
// leaf value, not a node identity, so it has no trie node to rekey (spec §4.5 step 5, §8
// scenario 4 "$y in slice updated but not written back to trie since no path-var").
var ErrNonPathTarget = errors.New("dispatch: arithmetic target is a non-path variable")

// Dispatcher is the single entry point for acting on an ir.Value (spec §4.6): it owns the trie,
// the query engine built over the same store, and the global path-variable alias table that
// bind-instructions populate.
type Dispatcher struct {
	trie    *trie.Trie
	unifier *unify.Unifier
	updater *arith.Updater
	aliases map[string]*ir.Fact
	lastErr error
}

// New builds a Dispatcher over a fresh trie, seeding the arithmetic updater's random source for
// reproducibility (spec §5).
func New(seed int64) *Dispatcher {
	t := trie.New()
	return &Dispatcher{
		trie:    t,
		unifier: unify.New(t.Store()),
		updater: arith.NewUpdater(t.Store(), seed),
		aliases: make(map[string]*ir.Fact),
	}
}

// Trie exposes the underlying trie for packages that need direct structural access (ruleexec's
// StructuralSubset gate on next candidates, the engine's Stats and Trie accessors).
func (d *Dispatcher) Trie() *trie.Trie {
	return d.trie
}

// Store exposes the underlying node arena.
func (d *Dispatcher) Store() *store.Store {
	return d.trie.Store()
}

// Resolve looks up name's last bound path, or (nil, false) if unbound or explicitly unbound by a
// bind-instruction with a nil Root (spec §6 "empty right-hand side unbinds").
func (d *Dispatcher) Resolve(name string) (*ir.Fact, bool) {
	f, ok := d.aliases[name]
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}

// Dispatch acts on value per spec §4.6's branch table.
func (d *Dispatcher) Dispatch(value ir.Value) ir.Result {
	d.lastErr = nil
	switch v := value.(type) {
	case *ir.Fact:
		res := d.dispatchFact(v)
		if v.IsQuery() {
			d.lastErr = d.unifier.Err()
		} else {
			d.lastErr = d.trie.Err()
		}
		return res
	case *ir.BindInstruction:
		return d.dispatchBind(v)
	case *ir.ArithAction:
		return d.dispatchArith(v)
	default:
		return ir.Fail()
	}
}

func (d *Dispatcher) dispatchFact(f *ir.Fact) ir.Result {
	if f.IsQuery() {
		return d.unifier.Query(f)
	}
	if f.Negated {
		return d.trie.Pop(f)
	}
	var last ir.Result
	for _, expanded := range Expand(f) {
		last = d.trie.Push(expanded)
		if !last.Ok {
			return last
		}
	}
	return last
}

func (d *Dispatcher) dispatchBind(b *ir.BindInstruction) ir.Result {
	if b.Root == nil {
		delete(d.aliases, b.Name)
		return ir.SuccessEmpty()
	}
	d.aliases[b.Name] = b.Root
	return ir.SuccessEmpty()
}

func (d *Dispatcher) dispatchArith(a *ir.ArithAction) ir.Result {
	target, err := d.ResolveArithTarget(a.Target, nil)
	if err != nil {
		return ir.Fail()
	}
	rhs, ok := ir.AsAtom(a.Rhs)
	if !ok {
		return ir.Fail()
	}
	if _, err := d.updater.ApplyToNode(target, a.Op, rhs); err != nil {
		return ir.Fail()
	}
	return ir.SuccessEmpty()
}

// ResolveArithTarget implements spec §3's ArithTarget = Fact | Variable | NodeId by resolving
// each variant down to the node it names. slice supplies the current rule-execution binding for
// a Variable target (spec §4.5 step 5 "apply each arithmetic action under the selected slice");
// it may be nil for a top-level arithmetic statement, in which case a Variable target always
// fails since there is no slice to resolve it against. A Variable target only resolves to a node
// when it is a path-variable (IsPath); a non-path variable binds a leaf value rather than a node
// identity and returns ErrNonPathTarget, leaving the caller to update its binding slice directly.
func (d *Dispatcher) ResolveArithTarget(t ir.ArithTarget, slice ir.BindingSlice) (nodeid.ID, error) {
	switch v := t.(type) {
	case ir.NodeIDTarget:
		if _, ok := d.trie.GetNode(v.ID); !ok {
			return nodeid.Nil, ErrUnknownTarget
		}
		return v.ID, nil
	case *ir.Fact:
		res := d.trie.Get(v)
		if !res.Ok || len(res.Nodes) == 0 {
			return nodeid.Nil, ErrUnknownTarget
		}
		return res.Nodes[0], nil
	case *ir.Variable:
		if !v.IsPath {
			return nodeid.Nil, ErrNonPathTarget
		}
		if slice == nil {
			return nodeid.Nil, ErrUnknownTarget
		}
		entry, ok := slice[v.Name]
		if !ok {
			return nodeid.Nil, ErrUnknownTarget
		}
		return entry.Node, nil
	default:
		return nodeid.Nil, ErrUnknownTarget
	}
}

// Updater exposes the dispatcher's seeded arithmetic updater to the rule executor.
func (d *Dispatcher) Updater() *arith.Updater {
	return d.updater
}

// Err returns the ConsistencyError (if any) diagnosing the most recent Dispatch call's failure,
// distinct from an ordinary no-match ir.Fail() (spec §10.3): an invalid assertion fact, an
// inconsistent variable rebinding, or a query over a non-query-shaped fact. It is nil for an
// ordinary failed match and for every successful call.
func (d *Dispatcher) Err() error {
	return d.lastErr
}
