package packets

import (
	"errors"
	"fmt"
)

// ErrInsufficientBuffer is returned when the destination buffer is too
// small to hold the fully-validated packet. Nothing has been written and
// the caller may retry with a larger buffer.
var ErrInsufficientBuffer = errors.New("insufficient buffer capacity")

// ErrProtocolViolation is the base error wrapped by every violation
// sentinel below, so callers can match the whole class with errors.Is.
var ErrProtocolViolation = errors.New("protocol violation")

var (
	ErrOversizedLengthIndicator = fmt.Errorf("%w: oversized length indicator", ErrProtocolViolation)
	ErrStringTooLong            = fmt.Errorf("%w: string exceeds 65535 bytes", ErrProtocolViolation)
	ErrInvalidQoS               = fmt.Errorf("%w: invalid qos", ErrProtocolViolation)
	ErrInvalidControlType       = fmt.Errorf("%w: invalid control packet type", ErrProtocolViolation)
	ErrTooManyTopics            = fmt.Errorf("%w: too many topics", ErrProtocolViolation)
	ErrEmptyTopicList           = fmt.Errorf("%w: no topics", ErrProtocolViolation)
	ErrInconsistentWill         = fmt.Errorf("%w: will topic and message must both be set", ErrProtocolViolation)
	ErrInconsistentCredentials  = fmt.Errorf("%w: password set without username", ErrProtocolViolation)
	ErrMissingClientID          = fmt.Errorf("%w: missing client identifier", ErrProtocolViolation)
)
