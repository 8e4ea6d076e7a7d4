package pointer

import "github.com/go-vgo/robotgo"

// Robot drives the pointer through robotgo.
type Robot struct{}

func (Robot) Position() (Position, error) {
	x, y := robotgo.Location()
	return Position{X: x, Y: y}, nil
}

func (Robot) MoveTo(p Position) error {
	robotgo.Move(p.X, p.Y)
	return nil
}

// Nudge uses robotgo.Move as well; robotgo posts a synthetic motion event
// rather than only setting the cursor location.
func (Robot) Nudge(p Position) error {
	robotgo.Move(p.X, p.Y)
	return nil
}
