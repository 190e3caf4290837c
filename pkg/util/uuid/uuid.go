package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gofrsuuid "github.com/gofrs/uuid"
)

// Generator produces UUID strings; tests substitute a deterministic one.
type Generator interface {
	Generate() string
}

type defaultGenerator struct{}

func (defaultGenerator) Generate() string {
	return gofrsuuid.Must(gofrsuuid.NewV4()).String()
}

var DefaultGenerator Generator = defaultGenerator{}

// IsValid reports whether u is a UUID in canonical hyphenated form, which
// is the only form Azure subscription IDs take.
func IsValid(u string) bool {
	if len(u) != 36 {
		return false
	}
	_, err := gofrsuuid.FromString(u)
	return err == nil
}
