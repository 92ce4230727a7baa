package cie

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every error reporting a channel outside [0,1].
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonFinite reports a NaN or infinite intermediate value computed from
	// valid input.
	ErrNonFinite = errors.New("non-finite value")
)

// ChannelError identifies the channel of a Color that fell outside [0,1].
type ChannelError struct {
	Channel string
	Value   float64
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s: channel %s = %g is outside [0,1]", ErrInvalidInput, e.Channel, e.Value)
}

func (e *ChannelError) Unwrap() error { return ErrInvalidInput }
