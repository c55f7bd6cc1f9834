// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package obf

import "errors"

// Runtime Errors
var (
	ErrInvalidUTF8 = errors.New("Input is not valid UTF-8 text")
)

// Policy Errors
var (
	ErrNoisePercentOutOfRange = errors.New("Noise insertion percent must be between 0 and 100")
)

// Config Errors
var (
	ErrLedgerPathMissing     = errors.New("Ledger is enabled but its path is empty")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
	ErrTableEntriesMissing   = errors.New("Custom mapping table has no entries")
)
