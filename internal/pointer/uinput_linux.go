//go:build linux

package pointer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	uinputDeviceName = "wiggle-mouse"
	uinputVendorID   = 0x1234
	uinputProductID  = 0x5678

	evSyn     = 0x00
	evRel     = 0x02
	relX      = 0x00
	relY      = 0x01
	synReport = 0x00
)

var uinputPaths = []string{"/dev/uinput", "/dev/input/uinput"}

type uinputUserDev struct {
	Name         [80]byte
	ID           inputID
	FFEffectsMax uint32
	Absmax       [64]int32
	Absmin       [64]int32
	Absfuzz      [64]int32
	Absflat      [64]int32
}

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// UinputNudger injects relative motion through a virtual uinput mouse for
// Nudge and leaves reads and silent moves to Base. It works where the
// display server ignores synthetic X events.
type UinputNudger struct {
	Base Controller
	file *os.File
}

// OpenUinput creates the virtual mouse device.
func OpenUinput(base Controller) (*UinputNudger, error) {
	var lastErr error
	for _, p := range uinputPaths {
		f, err := os.OpenFile(p, os.O_WRONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			lastErr = err
			continue
		}
		u := &UinputNudger{Base: base, file: f}
		if err := u.setup(); err != nil {
			u.Close()
			return nil, err
		}
		return u, nil
	}
	return nil, fmt.Errorf("open uinput: %w", lastErr)
}

func (u *UinputNudger) setup() error {
	fd := int(u.file.Fd())
	if err := unix.IoctlSetInt(fd, unix.UI_SET_EVBIT, evRel); err != nil {
		return fmt.Errorf("UI_SET_EVBIT EV_REL: %w", err)
	}
	if err := unix.IoctlSetInt(fd, unix.UI_SET_RELBIT, relX); err != nil {
		return fmt.Errorf("UI_SET_RELBIT REL_X: %w", err)
	}
	if err := unix.IoctlSetInt(fd, unix.UI_SET_RELBIT, relY); err != nil {
		return fmt.Errorf("UI_SET_RELBIT REL_Y: %w", err)
	}

	var dev uinputUserDev
	copy(dev.Name[:], uinputDeviceName)
	dev.ID.Bustype = unix.BUS_USB
	dev.ID.Vendor = uinputVendorID
	dev.ID.Product = uinputProductID
	if err := binary.Write(u.file, binary.LittleEndian, &dev); err != nil {
		return fmt.Errorf("write uinput_user_dev: %w", err)
	}
	if err := unix.IoctlSetInt(fd, unix.UI_DEV_CREATE, 0); err != nil {
		return fmt.Errorf("UI_DEV_CREATE: %w", err)
	}
	return nil
}

func (u *UinputNudger) Position() (Position, error) {
	return u.Base.Position()
}

func (u *UinputNudger) MoveTo(p Position) error {
	return u.Base.MoveTo(p)
}

// Nudge emits the relative motion between the current position and p.
func (u *UinputNudger) Nudge(p Position) error {
	cur, err := u.Base.Position()
	if err != nil {
		return err
	}
	return u.move(int32(p.X-cur.X), int32(p.Y-cur.Y))
}

func (u *UinputNudger) move(dx, dy int32) error {
	if u.file == nil {
		return errors.New("uinput device not initialized")
	}
	events := []inputEvent{
		{Type: evRel, Code: relX, Value: dx},
		{Type: evRel, Code: relY, Value: dy},
		{Type: evSyn, Code: synReport, Value: 0},
	}
	for _, ev := range events {
		if err := binary.Write(u.file, binary.LittleEndian, &ev); err != nil {
			return fmt.Errorf("write input event: %w", err)
		}
	}
	return nil
}

// Close destroys the virtual device.
func (u *UinputNudger) Close() error {
	if u.file == nil {
		return nil
	}
	_ = unix.IoctlSetInt(int(u.file.Fd()), unix.UI_DEV_DESTROY, 0)
	err := u.file.Close()
	u.file = nil
	return err
}
