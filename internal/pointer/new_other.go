//go:build !linux

package pointer

// New returns the robotgo controller; there is nothing to release.
func New() (Controller, func() error) {
	return Robot{}, func() error { return nil }
}
