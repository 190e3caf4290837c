package fatal

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"time"
)

// DefaultGracePeriod is how long Handle waits between reporting a fatal error
// and terminating, so that the asynchronous crash report can be delivered.
const DefaultGracePeriod = 30 * time.Second

// Error marks an error as unrecoverable: the process must report it, wait
// for the grace period and exit.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err as a fatal error with the given message.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsFatal reports whether err is, or wraps, a fatal error.
func IsFatal(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
