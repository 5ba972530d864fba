// SPDX-License-Identifier: MIT

package main

import "errors"

// Exit codes.
const (
	exitOK       = 0
	exitInternal = 1
	exitInput    = 2
)

// inputError marks failures caused by what the user supplied: flags,
// matrix text, vertex indices, config values.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

func asInput(err error) error {
	if err == nil {
		return nil
	}

	return &inputError{err: err}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var in *inputError
	if errors.As(err, &in) {
		return exitInput
	}

	return exitInternal
}
