// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package utils

import (
	"errors"
	"os"
	"path/filepath"
)

var (
	ErrOutputIsDirectory = errors.New("Output file name is a directory")
	ErrOutputExists      = errors.New("Output file already exists (use --force to overwrite)")
)

// WriteFile writes data to path through a temporary file in the same
// directory, so a failed write never leaves a partial output behind. An
// existing file is only replaced when overwrite is set.
func WriteFile(path string, data []byte, overwrite bool) (err error) {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return ErrOutputIsDirectory
		}
		if !overwrite {
			return ErrOutputExists
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	out, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			os.Remove(out.Name())
		}
	}()
	if _, err = out.Write(data); err != nil {
		out.Close()
		return
	}
	if err = out.Close(); err != nil {
		return
	}
	return os.Rename(out.Name(), path)
}
