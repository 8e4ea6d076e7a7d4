package config

import (
	"errors"
	"fmt"
)

// ErrConfig is wrapped by every error produced while loading the config file.
var ErrConfig = errors.New("configuration problem")

// Causes of a configuration problem. Each one wraps ErrConfig.
var (
	ErrMalformedLine    = fmt.Errorf("%w: malformed line", ErrConfig)
	ErrMissingKey       = fmt.Errorf("%w: missing key", ErrConfig)
	ErrInvalidNumber    = fmt.Errorf("%w: invalid number", ErrConfig)
	ErrNonPositiveValue = fmt.Errorf("%w: non-positive value", ErrConfig)
	ErrInvalidOrdering  = fmt.Errorf("%w: invalid ordering", ErrConfig)
)

// Error describes a single problem with the config file in terms a user
// editing the file by hand can act on.
type Error struct {
	// Cause is one of the Err* sentinels above.
	Cause error

	Key      string
	OtherKey string
	Line     string
	Value    string
}

func (e *Error) Error() string {
	switch e.Cause {
	case ErrMalformedLine:
		return fmt.Sprintf("The line `%s` is malformed.\nIt should take the form `KEY = VALUE`.", e.Line)
	case ErrMissingKey:
		return fmt.Sprintf("Unable to find `%s`.\n"+
			"Consider deleting the config file -- a new one with correct\n"+
			"default values will be auto-generated.", e.Key)
	case ErrInvalidNumber:
		return fmt.Sprintf("`%s` is not a valid number (for `%s`).", e.Value, e.Key)
	case ErrNonPositiveValue:
		return fmt.Sprintf("Value for `%s` must be greater than zero.", e.Key)
	case ErrInvalidOrdering:
		return fmt.Sprintf("Value for `%s`\nmust be greater than `%s`.", e.Key, e.OtherKey)
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return ErrConfig.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
