// (c) 2021 Jacek Olszak
// This code is licensed under MIT license (see LICENSE for details)

package storage

import (
	"errors"
	"io/fs"
)

// IsArgumentError returns true when the caller passed an invalid argument, such as an empty path.
// Argument errors are returned before any I/O is done.
func IsArgumentError(err error) bool {
	var argErr argumentError
	return errors.As(err, &argErr)
}

// IsNotFound returns true when the file or directory does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func NewArgumentError(msg string) error {
	return argumentError{msg: msg}
}

type argumentError struct {
	msg string
}

func (a argumentError) Error() string {
	return a.msg
}
