// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrLocked   = errors.New("Couldn't acquire the ledger lock (is another txtobf running?)")
	ErrNotFound = errors.New("No ledger record for this text")
)

// IncompatibleSchemaError is returned when the ledger on disk was written by
// a different version of txtobf.
type IncompatibleSchemaError struct {
	CurrentVersion  string
	RequiredVersion string
}

func (err *IncompatibleSchemaError) Error() string {
	return fmt.Sprintf("Ledger requires update. Expected schema v%s, got v%s", err.RequiredVersion, err.CurrentVersion)
}
