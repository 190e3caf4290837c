package onboarding

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
)

// errEmptyResponse is wrapped in a ProviderFetchError when the gateway
// returns neither a result nor an error.
var errEmptyResponse = errors.New("provider returned an empty response")

// MissingFieldError is returned when a field a check depends on is absent
// from the fetched state. Absent fields are never defaulted.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// ProviderFetchError wraps a failure of the control plane.
type ProviderFetchError struct {
	Op  string
	Err error
}

func (e *ProviderFetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ProviderFetchError) Unwrap() error {
	return e.Err
}

// MismatchError is returned when a fetched value differs from the value
// required for onboarding.
type MismatchError struct {
	Field    string
	Expected string
	Actual   string
	// Guidance, if set, points the operator at a remediation.
	Guidance string
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("%s: expected %q, found %q", e.Field, e.Expected, e.Actual)
	if e.Guidance != "" {
		msg += "; " + e.Guidance
	}
	return msg
}

// ValidationFailed is the terminal error of a run. It names the state that
// failed; Err holds the underlying MissingFieldError, ProviderFetchError or
// MismatchError.
type ValidationFailed struct {
	State   State
	Message string
	Err     error
}

func (e *ValidationFailed) Error() string {
	return fmt.Sprintf("onboarding validation failed at %s: %s", e.State, e.Message)
}

func (e *ValidationFailed) Unwrap() error {
	return e.Err
}
