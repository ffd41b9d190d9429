package yamr

import "errors"

// Sentinel errors for common error conditions
var (
	// Input errors
	ErrInputNotFound = errors.New("input file not found")

	// Job errors
	ErrNilJob          = errors.New("no job configured")
	ErrUnknownExecutor = errors.New("unknown executor")

	// Shuffle errors
	ErrEmptyRecord  = errors.New("empty record cannot be partitioned")
	ErrNoPartitions = errors.New("partition count must be positive")

	// Version/compatibility errors
	ErrIncompatibleVersion = errors.New("incompatible version")
)
