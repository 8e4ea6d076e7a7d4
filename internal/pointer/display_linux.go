//go:build linux

package pointer

import "os"

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// DetectDisplayServer reports whether the session runs on Wayland or X11.
// robotgo reads the pointer through X11, so on Wayland it only sees
// movement over XWayland windows.
func DetectDisplayServer() string {
	return detectDisplayServer(os.Getenv)
}

func detectDisplayServer(getenv func(string) string) string {
	if getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if getenv("XDG_SESSION_TYPE") == DisplayServerWayland {
		return DisplayServerWayland
	}
	if getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	if getenv("XDG_SESSION_TYPE") == DisplayServerX11 {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}
