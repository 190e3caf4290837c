package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

type importGroup int

const (
	groupStandard importGroup = iota
	groupThirdParty
	groupLocal
)

func (g importGroup) String() string {
	switch g {
	case groupStandard:
		return "standard library"
	case groupThirdParty:
		return "third party"
	}
	return "local"
}

func groupOf(path string) importGroup {
	switch {
	case isStandardLibrary(path):
		return groupStandard
	case isLocal(path):
		return groupLocal
	}
	return groupThirdParty
}

// validateGroups checks that imports are in blank-line separated groups of
// standard library, third party and local packages, in that order.
func validateGroups(path string, fset *token.FileSet, f *ast.File) []error {
	if strings.HasPrefix(path, "pkg/util/mocks/") {
		return nil
	}

	var errs []error
	var groups []importGroup
	lastLine := -1

	for _, imp := range f.Imports {
		g := groupOf(strings.Trim(imp.Path.Value, `"`))
		line := fset.Position(imp.Pos()).Line

		switch {
		case lastLine == -1 || line > lastLine+1:
			groups = append(groups, g)
		case groups[len(groups)-1] != g:
			errs = append(errs, fmt.Errorf("%s import %s shares a group with %s imports", g, imp.Path.Value, groups[len(groups)-1]))
		}

		lastLine = fset.Position(imp.End()).Line
	}

	for i := 1; i < len(groups); i++ {
		if groups[i] <= groups[i-1] {
			errs = append(errs, fmt.Errorf("%s imports follow %s imports", groups[i], groups[i-1]))
		}
	}

	return errs
}
