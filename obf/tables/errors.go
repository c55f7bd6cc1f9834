// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package tables

import "errors"

// Registry Errors
var (
	ErrUnknownTable       = errors.New("Unknown mapping table")
	ErrEmptyTableName     = errors.New("Table name is empty")
	ErrInvalidTableName   = errors.New("Table name must be lowercase letters, digits and dashes, starting with a letter")
	ErrDuplicateTableName = errors.New("Table name is already in use")
)
