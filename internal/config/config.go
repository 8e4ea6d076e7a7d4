// Package config loads the wiggle mouse config file and the command line flags.
package config

import (
	"math"
	"strconv"
	"time"

	"github.com/stigoleg/wiggle-mouse/internal/util"
)

// Keys recognised in the config file.
const (
	KeyTimeBetweenMovement   = "time_between_mouse_movement"
	KeyTimeSpentMoving       = "time_mouse_spends_moving"
	KeyTimeBetweenUserChecks = "time_between_user_movement_check"
	KeyDistance              = "distance_mouse_moves"
)

// Config holds the validated values that drive the scheduler. Times are in
// seconds and distances in pixels.
type Config struct {
	// SwipeTimeDelay is the pause after each single-pixel step of a swipe.
	SwipeTimeDelay           float64
	SwipePixelDistance       int
	UserMovementRecheckDelay float64
	TimeBetweenSwipes        float64
}

// StepDelay returns SwipeTimeDelay as a duration.
func (c Config) StepDelay() time.Duration {
	return util.Seconds(c.SwipeTimeDelay)
}

// RecheckDelay returns UserMovementRecheckDelay as a duration.
func (c Config) RecheckDelay() time.Duration {
	return util.Seconds(c.UserMovementRecheckDelay)
}

// IdleWindow returns TimeBetweenSwipes as a duration.
func (c Config) IdleWindow() time.Duration {
	return util.Seconds(c.TimeBetweenSwipes)
}

// Load parses and validates the config file at path.
func Load(path string) (Config, error) {
	raw, err := ParseFile(path)
	if err != nil {
		return Config{}, err
	}
	return FromRaw(raw)
}

// FromRaw converts and validates raw key/value pairs one key at a time so
// that every failure names the key the user has to fix.
func FromRaw(raw RawConfig) (Config, error) {
	timeBetweenSwipes, err := positiveFloat(raw, KeyTimeBetweenMovement)
	if err != nil {
		return Config{}, err
	}
	recheckDelay, err := positiveFloat(raw, KeyTimeBetweenUserChecks)
	if err != nil {
		return Config{}, err
	}
	distance, err := positiveInt(raw, KeyDistance)
	if err != nil {
		return Config{}, err
	}
	swipeTime, err := positiveFloat(raw, KeyTimeSpentMoving)
	if err != nil {
		return Config{}, err
	}

	if timeBetweenSwipes <= recheckDelay {
		return Config{}, &Error{
			Cause:    ErrInvalidOrdering,
			Key:      KeyTimeBetweenMovement,
			OtherKey: KeyTimeBetweenUserChecks,
		}
	}

	return Config{
		SwipeTimeDelay:           swipeTime / float64(distance),
		SwipePixelDistance:       distance,
		UserMovementRecheckDelay: recheckDelay,
		TimeBetweenSwipes:        timeBetweenSwipes,
	}, nil
}

func lookup(raw RawConfig, key string) (string, error) {
	value, ok := raw[key]
	if !ok {
		return "", &Error{Cause: ErrMissingKey, Key: key}
	}
	return value, nil
}

func positiveFloat(raw RawConfig, key string) (float64, error) {
	value, err := lookup(raw, key)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Cause: ErrInvalidNumber, Key: key, Value: value}
	}
	if f <= 0 {
		return 0, &Error{Cause: ErrNonPositiveValue, Key: key, Value: value}
	}
	return f, nil
}

func positiveInt(raw RawConfig, key string) (int, error) {
	value, err := lookup(raw, key)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &Error{Cause: ErrInvalidNumber, Key: key, Value: value}
	}
	if n <= 0 {
		return 0, &Error{Cause: ErrNonPositiveValue, Key: key, Value: value}
	}
	return n, nil
}
