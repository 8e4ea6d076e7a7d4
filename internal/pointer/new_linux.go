//go:build linux

package pointer

import "log"

// New returns the best controller for this system and a function that
// releases whatever it opened.
func New() (Controller, func() error) {
	if ds := DetectDisplayServer(); ds != DisplayServerX11 {
		log.Printf("pointer: display server is %s; user movement is only seen through X11", ds)
	}

	u, err := OpenUinput(Robot{})
	if err != nil {
		log.Printf("pointer: uinput unavailable, using robotgo motion events: %v", err)
		return Robot{}, func() error { return nil }
	}
	log.Printf("pointer: using uinput motion events")
	return u, u.Close
}
