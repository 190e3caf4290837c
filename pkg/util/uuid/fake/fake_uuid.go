package fake

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azmon-diag/pkg/util/uuid"
)

type fakeGenerator struct {
	words      []string
	currentPos int
}

// NewGenerator returns a Generator handing out predefinedWords in order and
// the empty string once they are exhausted.
func NewGenerator(predefinedWords []string) uuid.Generator {
	return &fakeGenerator{
		words: predefinedWords,
	}
}

func (f *fakeGenerator) Generate() string {
	if f.currentPos >= len(f.words) {
		return ""
	}
	defer func() { f.currentPos++ }()
	return f.words[f.currentPos]
}
