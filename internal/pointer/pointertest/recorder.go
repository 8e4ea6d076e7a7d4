// Package pointertest provides an in-memory pointer.Controller for tests.
package pointertest

import "github.com/stigoleg/wiggle-mouse/internal/pointer"

// Kind tells how the pointer was moved.
type Kind int

const (
	KindNudge Kind = iota
	KindMoveTo
)

// Call is one recorded move.
type Call struct {
	Kind Kind
	Pos  pointer.Position
}

// Recorder keeps the pointer position in memory and records every move.
type Recorder struct {
	Pos   pointer.Position
	Calls []Call
	Reads int

	// UserInput, when set, runs before every read and may move the pointer
	// the way a person would.
	UserInput func(r *Recorder)

	// PositionErr and NudgeErr are returned by the matching methods when set.
	PositionErr error
	NudgeErr    error
}

// New returns a recorder with the pointer at start.
func New(start pointer.Position) *Recorder {
	return &Recorder{Pos: start}
}

func (r *Recorder) Position() (pointer.Position, error) {
	if r.PositionErr != nil {
		return pointer.Position{}, r.PositionErr
	}
	if r.UserInput != nil {
		r.UserInput(r)
	}
	r.Reads++
	return r.Pos, nil
}

func (r *Recorder) MoveTo(p pointer.Position) error {
	r.Calls = append(r.Calls, Call{Kind: KindMoveTo, Pos: p})
	r.Pos = p
	return nil
}

func (r *Recorder) Nudge(p pointer.Position) error {
	if r.NudgeErr != nil {
		return r.NudgeErr
	}
	r.Calls = append(r.Calls, Call{Kind: KindNudge, Pos: p})
	r.Pos = p
	return nil
}

// Nudges returns the positions visited through Nudge, in order.
func (r *Recorder) Nudges() []pointer.Position {
	var out []pointer.Position
	for _, c := range r.Calls {
		if c.Kind == KindNudge {
			out = append(out, c.Pos)
		}
	}
	return out
}
