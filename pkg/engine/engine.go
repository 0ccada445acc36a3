// Package engine is the public, mutex-guarded facade over the exclusion-logic knowledge base:
// node store + trie, unifier, binding stack, arithmetic, dispatcher and rule executor, wired
// together the way _examples/theRebelliousNerd-codenerd's pkg/mangle/mangle.go re-exports
// internal/mangle's Engine/Config/Stats shape behind a single mutex-guarded type.
package engine

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jgrey4296/elgo/internal/config"
	"github.com/jgrey4296/elgo/internal/dispatch"
	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/logging"
	"github.com/jgrey4296/elgo/internal/nodeid"
	"github.com/jgrey4296/elgo/internal/ruleexec"
	"github.com/jgrey4296/elgo/internal/trie"
)

// HistoryEntry records one dispatched value and its result (spec §12.2's supplemented
// history/replay feature).
type HistoryEntry struct {
	At     time.Time
	Value  ir.Value
	Result ir.Result
}

// Stats summarizes the engine's current state (spec §12.1's supplemented stats feature).
type Stats struct {
	NodeCount  int
	MaxDepth   int
	LeafCount  int
	RuleCount  int
	HistoryLen int
}

// Engine is the single entry point embedders use: it owns the trie, the rule registry, the
// binding stack, and serializes every call behind one mutex (spec §5: "the engine gives no
// thread-safety guarantee" on its own, so the facade provides one the way the teacher's
// mutex-guarded Engine does around its factstore).
type Engine struct {
	mu      sync.Mutex
	disp    *dispatch.Dispatcher
	exec    *ruleexec.Executor
	bodies  *ruleexec.Registry
	cfg     *config.Config
	log     *zap.Logger
	history []HistoryEntry
}

// New builds an Engine from cfg (nil uses config.DefaultConfig()) and an optional logger (nil
// uses a no-op logger).
func New(cfg *config.Config, log *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	disp := dispatch.New(cfg.SelectorSeed)
	bodies := ruleexec.NewRegistry()
	selector := ruleexec.NewUniformSelector(cfg.SelectorSeed)
	return &Engine{
		disp:   disp,
		exec:   ruleexec.New(disp, bodies, selector),
		bodies: bodies,
		cfg:    cfg,
		log:    logging.Component(log, "engine"),
	}
}

// Dispatch acts on value (spec §4.6), recording it in history.
func (e *Engine) Dispatch(value ir.Value) ir.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cfg.FactLimit > 0 && e.disp.Store().Len() >= e.cfg.FactLimit {
		e.log.Warn("fact limit reached", zap.Int("limit", e.cfg.FactLimit))
		return ir.Fail()
	}

	result := e.disp.Dispatch(value)
	e.history = append(e.history, HistoryEntry{At: time.Now(), Value: value, Result: result})
	return result
}

// Assert is a convenience wrapper for dispatching a plain (non-query) fact.
func (e *Engine) Assert(fact *ir.Fact) ir.Result {
	return e.Dispatch(fact)
}

// Query is a convenience wrapper for dispatching a query-terminated fact.
func (e *Engine) Query(fact *ir.Fact) ir.Result {
	return e.Dispatch(fact.AsQuery())
}

// DefineRule attaches body to id so RunRule(id) can execute it (spec §4.5).
func (e *Engine) DefineRule(id nodeid.ID, body *ruleexec.Body) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bodies.Set(id, body)
}

// RunRule executes the rule/node body attached to id.
func (e *Engine) RunRule(id nodeid.ID) ruleexec.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exec.Run(id)
}

// Trie exposes the underlying trie for read-only structural inspection (Render,
// StructuralSubset, Walk).
func (e *Engine) Trie() *trie.Trie {
	return e.disp.Trie()
}

// History returns every dispatched value and its result, in order (spec §12.2).
func (e *Engine) History() []HistoryEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]HistoryEntry, len(e.history))
	copy(out, e.history)
	return out
}

// Stats reports a structural snapshot of the engine (spec §12.1).
func (e *Engine) Stats() (Stats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	metrics, err := e.disp.Trie().Walk()
	if err != nil {
		return Stats{}, fmt.Errorf("engine: stats: %w", err)
	}
	return Stats{
		NodeCount:  e.disp.Store().Len(),
		MaxDepth:   metrics.MaxDepth,
		LeafCount:  len(metrics.Leaves),
		RuleCount:  len(metrics.RuleNodes),
		HistoryLen: len(e.history),
	}, nil
}
