// Package pointer reads and moves the mouse pointer.
package pointer

import "fmt"

// Position is a pointer location in screen pixels.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Offset returns p moved by dx, dy.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Controller is the pointer capability the scheduler needs.
type Controller interface {
	// Position returns the current pointer location.
	Position() (Position, error)

	// MoveTo places the pointer at p. Idle detectors may not see this as
	// user activity.
	MoveTo(p Position) error

	// Nudge moves the pointer to p by injecting a motion event, which idle
	// detectors treat like a real mouse movement.
	Nudge(p Position) error
}
