package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	_ "embed"
	"fmt"
	"go/ast"
	"regexp"
	"strings"

	"github.com/ghodss/yaml"
)

const modulePath = "github.com/Azure/azmon-diag"

//go:embed allowed-import-names.yaml
var allowedNamesYaml []byte

func isStandardLibrary(path string) bool {
	return !strings.ContainsRune(strings.SplitN(path, "/", 2)[0], '.')
}

func isLocal(path string) bool {
	return path == modulePath || strings.HasPrefix(path, modulePath+"/")
}

func validateUnderscoreImport(path string) error {
	switch path {
	case "embed":
		return nil
	}

	return fmt.Errorf("invalid _ import %s", path)
}

type importValidator struct {
	AllowedNames map[string][]string `json:"allowedImportNames"`
}

func newValidator() (*importValidator, error) {
	v := &importValidator{}

	err := yaml.Unmarshal(allowedNamesYaml, v)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling allowed import names: %w", err)
	}

	return v, nil
}

func (v *importValidator) validateImportName(name, importedAs string) error {
	allowed, ok := v.AllowedNames[name]
	if !ok {
		allowed = acceptableNamesRegex(name)
	}

	if allowed == nil {
		return nil
	}

	for _, a := range allowed {
		if importedAs == a {
			return nil
		}
	}

	return fmt.Errorf("%s is imported as %q, should be %q", name, importedAs, allowed)
}

// acceptableNamesRegex returns a list of acceptable names for an import; empty
// string = no import override; nil list = don't care
func acceptableNamesRegex(path string) []string {
	m := regexp.MustCompile(`^github\.com/Azure/azmon-diag/pkg/util/(log|pem|tls)$`).FindStringSubmatch(path)
	if m != nil {
		return []string{"util" + m[1]}
	}

	m = regexp.MustCompile(`^github\.com/Azure/azmon-diag/pkg/util/mocks/(?:.+/)?([^/]+)$`).FindStringSubmatch(path)
	if m != nil {
		return []string{"mock_" + m[1]}
	}

	return []string{""}
}

func importedAs(spec *ast.ImportSpec) string {
	if spec == nil || spec.Name == nil {
		return ""
	}

	return spec.Name.Name
}

func (v *importValidator) validateImports(path string, f *ast.File) []error {
	if strings.HasPrefix(path, "pkg/util/mocks/") {
		return nil
	}

	var errs []error
	for _, imp := range f.Imports {
		if err := v.validateImport(imp); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (v *importValidator) validateImport(imp *ast.ImportSpec) error {
	packageName := strings.Trim(imp.Path.Value, `"`)

	switch importedAs(imp) {
	case ".":
		// ginkgo and gomega are dot-imported by convention
		if strings.HasPrefix(packageName, "github.com/onsi/") {
			return nil
		}
		return fmt.Errorf("invalid . import %s", packageName)
	case "_":
		return validateUnderscoreImport(packageName)
	}

	switch packageName {
	case "sigs.k8s.io/yaml", "gopkg.in/yaml.v2", "gopkg.in/yaml.v3":
		return fmt.Errorf("%s is imported; use github.com/ghodss/yaml", packageName)
	case "github.com/google/uuid", "github.com/satori/go.uuid":
		return fmt.Errorf("%s is imported; use github.com/gofrs/uuid", packageName)
	case "github.com/golang/mock/gomock":
		return fmt.Errorf("%s is imported; use go.uber.org/mock/gomock", packageName)
	case "log":
		return fmt.Errorf("%s is imported; use github.com/sirupsen/logrus", packageName)
	}

	if isStandardLibrary(packageName) {
		if imp.Name != nil {
			return fmt.Errorf("overridden import %s", packageName)
		}
		return nil
	}

	return v.validateImportName(packageName, importedAs(imp))
}
