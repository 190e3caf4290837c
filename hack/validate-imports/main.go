package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	v, err := newValidator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var rv int
	for _, path := range os.Args[1:] {
		err := filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if strings.HasPrefix(info.Name(), "_") && path != "." {
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(path, ".go") {
				return nil
			}

			fset := &token.FileSet{}

			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				return err
			}

			errs := validateGroups(path, fset, f)
			errs = append(errs, v.validateImports(path, f)...)

			for _, err := range errs {
				fmt.Printf("%s: %v\n", path, err)
				rv = 1
			}

			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			rv = 1
		}
	}
	os.Exit(rv)
}
