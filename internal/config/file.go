package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"
)

// FileName is the config file looked up when no path is given.
const FileName = "wiggle_mouse_config.txt"

// DefaultFile is written to disk when the config file does not exist.
const DefaultFile = `# Wiggle mouse config
# Any text following the hash mark is a comment and will be ignored.
# Blank lines are also ignored.
# If you make any changes to this config file, restart the program.

# All times are in seconds
time_between_mouse_movement = 5.0
time_mouse_spends_moving = 1.0
time_between_user_movement_check = 0.5  # Checks every half-second to see if
                                        # the mouse has moved.

# All distances are in pixels
distance_mouse_moves = 40
`

// RawConfig maps keys to their unconverted values. Later lines win over
// earlier ones with the same key.
type RawConfig map[string]string

// EnsureFileExists writes DefaultFile to path if nothing is there yet.
// An existing file is never read or overwritten.
func EnsureFileExists(path string) (created bool, err error) {
	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking config file: %w", err)
	}

	if err := os.WriteFile(path, []byte(DefaultFile), 0o644); err != nil {
		return false, fmt.Errorf("creating config file: %w", err)
	}
	log.Printf("config: created default config at %s", path)
	return true, nil
}

// ParseFile reads the KEY = VALUE pairs from the file at path.
func ParseFile(path string) (RawConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads KEY = VALUE pairs from r. Anything after a '#' is a comment
// and blank lines are skipped.
func Parse(r io.Reader) (RawConfig, error) {
	out := make(RawConfig)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := scanner.Text()

		line, _, _ := strings.Cut(raw, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			return nil, &Error{Cause: ErrMalformedLine, Line: raw}
		}
		out[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return out, nil
}
