// Package store owns every trie node by its stable identity and exposes by-id lookup and
// structural iteration (spec §4.1, "Node store": the row is kept a separate package from
// internal/trie's edge-semantics mutation logic, mirroring the spec's component table split).
package store

import (
	"sync"

	"github.com/jgrey4296/elgo/internal/ir"
	"github.com/jgrey4296/elgo/internal/nodeid"
)

// Node is a single trie node: its identity, the edge kind from its parent, its value, its
// parent (if any) and its children in insertion order (spec §3 "Trie node").
type Node struct {
	ID        nodeid.ID
	Edge      ir.EdgeKind
	Value     ir.Atom
	Parent    nodeid.ID
	HasParent bool

	children   map[string]nodeid.ID
	childOrder []string
}

// Store is the arena of all live trie nodes, indexed by identity. A Store is safe for
// concurrent reads; the engine built on top of it serializes writes externally per spec §5
// ("Concurrent use by multiple threads MUST serialize externally"), but the mutex here matches
// the teacher's defensive-locking idiom (internal/mangle/engine.go wraps its store in a mutex
// even though callers are expected to hold the engine's own lock).
type Store struct {
	mu    sync.RWMutex
	root  nodeid.ID
	nodes map[nodeid.ID]*Node
}

// New constructs an empty store containing only the root node.
func New() *Store {
	s := &Store{nodes: make(map[nodeid.ID]*Node)}
	root := &Node{
		ID:         nodeid.New(),
		Edge:       ir.EdgeDot,
		Value:      ir.RootSentinel,
		children:   make(map[string]nodeid.ID),
		childOrder: nil,
	}
	s.root = root.ID
	s.nodes[root.ID] = root
	return s
}

// Root returns the identity of the trie's root node.
func (s *Store) Root() nodeid.ID {
	return s.root
}

// Get returns the node for id, if it is still tracked by the arena.
func (s *Store) Get(id nodeid.ID) (*Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}

// Children returns id's children in insertion order (spec §4.1 "iterate").
func (s *Store) Children(id nodeid.ID) []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(n.childOrder))
	for _, key := range n.childOrder {
		if cid, ok := n.children[key]; ok {
			if c, ok := s.nodes[cid]; ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// ChildByKey looks up the child of parent keyed by an atom's canonical key, O(1).
func (s *Store) ChildByKey(parent nodeid.ID, key string) (nodeid.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[parent]
	if !ok {
		return nodeid.Nil, false
	}
	id, ok := n.children[key]
	return id, ok
}

// ChildCount reports how many live children parent currently has.
func (s *Store) ChildCount(parent nodeid.ID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[parent]
	if !ok {
		return 0
	}
	return len(n.childOrder)
}

// NewChild allocates a fresh node under parent with the given edge kind and value, and links it
// into parent's children mapping under key = value's canonical key (spec §3 invariant).
func (s *Store) NewChild(parent nodeid.ID, edge ir.EdgeKind, value ir.Atom) (*Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.nodes[parent]
	if !ok {
		return nil, ErrNoSuchNode
	}
	child := &Node{
		ID:        nodeid.New(),
		Edge:      edge,
		Value:     value,
		Parent:    parent,
		HasParent: true,
		children:  make(map[string]nodeid.ID),
	}
	key := value.Key()
	if _, exists := p.children[key]; !exists {
		p.childOrder = append(p.childOrder, key)
	}
	p.children[key] = child.ID
	s.nodes[child.ID] = child
	return child, nil
}

// ClearChildren removes every child currently linked under parent (the EX-downcast case, spec
// §4.1 "clear the parent's other children before adding the new child"). Cleared nodes remain
// addressable by identity (spec's pop/EX-downcast lifecycle: a node "dies" by becoming
// unreachable from the root, not by being erased from the arena) but are no longer reachable by
// path-walk from parent.
func (s *Store) ClearChildren(parent nodeid.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.nodes[parent]
	if !ok {
		return
	}
	p.children = make(map[string]nodeid.ID)
	p.childOrder = nil
}

// ClearChildrenExcept removes every child of parent except the one keyed by keepKey. Used when
// an existing child is re-asserted under an EX edge: its siblings die, it survives (spec §4.1).
func (s *Store) ClearChildrenExcept(parent nodeid.ID, keepKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.nodes[parent]
	if !ok {
		return
	}
	keepID, hadKeep := p.children[keepKey]
	p.children = make(map[string]nodeid.ID)
	p.childOrder = nil
	if hadKeep {
		p.children[keepKey] = keepID
		p.childOrder = []string{keepKey}
	}
}

// SetEdge updates the edge kind of an existing node in place (the EX/DOT up/downcast of spec
// §4.1, applied to a child that was re-asserted under a differing edge kind rather than newly
// created).
func (s *Store) SetEdge(id nodeid.ID, edge ir.EdgeKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNoSuchNode
	}
	n.Edge = edge
	return nil
}

// Detach removes id from its parent's children mapping without touching any of id's own
// children (spec §4.1 pop: "does not cascade further").
func (s *Store) Detach(id nodeid.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNoSuchNode
	}
	if !n.HasParent {
		return ErrDetachRoot
	}
	p, ok := s.nodes[n.Parent]
	if !ok {
		return ErrNoSuchNode
	}
	key := n.Value.Key()
	delete(p.children, key)
	for i, k := range p.childOrder {
		if k == key {
			p.childOrder = append(p.childOrder[:i], p.childOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Rekey implements the arithmetic-update relocation of spec §4.3: detach id from its parent,
// overwrite its value, and reinsert it under the new key while preserving its identity.
func (s *Store) Rekey(id nodeid.ID, newValue ir.Atom) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return ErrNoSuchNode
	}
	if !n.HasParent {
		return ErrDetachRoot
	}
	p, ok := s.nodes[n.Parent]
	if !ok {
		return ErrNoSuchNode
	}
	oldKey := n.Value.Key()
	delete(p.children, oldKey)
	for i, k := range p.childOrder {
		if k == oldKey {
			p.childOrder = append(p.childOrder[:i], p.childOrder[i+1:]...)
			break
		}
	}
	n.Value = newValue
	newKey := newValue.Key()
	if _, exists := p.children[newKey]; !exists {
		p.childOrder = append(p.childOrder, newKey)
	}
	p.children[newKey] = id
	return nil
}

// Len reports the number of nodes the arena has ever allocated and still tracks (including any
// orphaned by ClearChildren/Detach, consistent with the "append-only arena" lifecycle above).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
