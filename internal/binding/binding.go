// Package binding implements the scoped stack of binding frames used by query and rule
// execution (spec §4.4). The binding data types themselves (Slice) live in internal/ir because
// ir.Fact needs them; this package owns only the stack/frame *behavior*.
package binding

import "github.com/jgrey4296/elgo/internal/ir"

// Frame is an ordered list of slices representing disjunctive alternatives — the results of one
// query (spec GLOSSARY "Frame").
type Frame []ir.BindingSlice

// Clone returns an independent copy of the frame.
func (f Frame) Clone() Frame {
	out := make(Frame, len(f))
	copy(out, f)
	return out
}

// KeySet returns the shared variable-name key set of the frame's slices, or nil plus false if
// the frame is empty or its slices disagree (the correctness check of spec §4.2/§8 I4).
func (f Frame) KeySet() ([]string, bool) {
	if len(f) == 0 {
		return nil, false
	}
	first := f[0].KeySet()
	for _, s := range f[1:] {
		if !f[0].SameKeySet(s) {
			return nil, false
		}
	}
	return first, true
}

// Stack is a lexically scoped list of frames for nested query/rule execution (spec §4.4).
type Stack struct {
	frames []Frame
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push duplicates the current top frame onto the stack (spec §4.4 "push duplicates the top"). A
// fresh single-empty-slice frame is pushed when the stack is empty, so the first query in a
// program always has exactly one (vacuous) alternative to narrow.
func (s *Stack) Push() {
	if len(s.frames) == 0 {
		s.frames = append(s.frames, Frame{ir.NewBindingSlice()})
		return
	}
	s.frames = append(s.frames, s.frames[len(s.frames)-1].Clone())
}

// PushFrame pushes a caller-supplied frame, used when a query result should seed the new scope
// directly rather than duplicating the enclosing one.
func (s *Stack) PushFrame(f Frame) {
	s.frames = append(s.frames, f)
}

// Top returns a copy of the current top frame (spec §4.4 "top returns (a copy of) the top").
func (s *Stack) Top() Frame {
	if len(s.frames) == 0 {
		return Frame{ir.NewBindingSlice()}
	}
	return s.frames[len(s.frames)-1].Clone()
}

// ReplaceTop overwrites the current top frame in place.
func (s *Stack) ReplaceTop(f Frame) {
	if len(s.frames) == 0 {
		s.frames = append(s.frames, f)
		return
	}
	s.frames[len(s.frames)-1] = f
}

// Pop removes and discards the current top frame.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports how many frames are currently on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}
