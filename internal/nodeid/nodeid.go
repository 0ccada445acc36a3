// Package nodeid defines the opaque stable identity used for every trie node.
//
// Node identities must survive arithmetic-in-place updates (spec §4.3) even though the
// node's key in its parent's children map changes. A bare uuid.UUID gives exactly that:
// cheap to generate, comparable, and carries no relation to the node's value.
package nodeid

import "github.com/google/uuid"

// ID is the opaque identity of a single trie node. The zero value is not a valid node id.
type ID uuid.UUID

// Nil is the zero ID, returned where no node applies (e.g. the parent of the root).
var Nil ID

// New allocates a fresh random identity.
func New() ID {
	return ID(uuid.New())
}

// String renders the identity in its canonical UUID form, for logging only — never part of
// the dotted surface syntax.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the unset identity.
func (id ID) IsNil() bool {
	return id == Nil
}
