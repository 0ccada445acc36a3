package store

import "errors"

// ErrNoSuchNode is returned when an operation names a node id the arena no longer tracks.
var ErrNoSuchNode = errors.New("store: no such node")

// ErrDetachRoot is returned when an operation tries to detach or rekey the trie root, which has
// no parent to detach from (spec §3 invariant: "Root has no parent").
var ErrDetachRoot = errors.New("store: root has no parent to detach from")
