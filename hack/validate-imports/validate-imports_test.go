package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	utilerror "github.com/Azure/azmon-diag/test/util/error"
)

func TestValidateImports(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	for _, tt := range []struct {
		name    string
		path    string
		src     string
		wantErr string
	}{
		{
			name: "valid",
			path: "pkg/gateway/azure.go",
			src: `package gateway

import (
	"context"

	azfake "github.com/Azure/azure-sdk-for-go/sdk/azcore/fake"
	"github.com/sirupsen/logrus"

	utillog "github.com/Azure/azmon-diag/pkg/util/log"
	mock_metrics "github.com/Azure/azmon-diag/pkg/util/mocks/metrics"
	testlog "github.com/Azure/azmon-diag/test/util/log"
)
`,
		},
		{
			name: "wrong util alias",
			path: "pkg/env/core.go",
			src: `package env

import (
	"github.com/Azure/azmon-diag/pkg/util/log"
)
`,
			wantErr: `github.com/Azure/azmon-diag/pkg/util/log is imported as "", should be ["utillog"]`,
		},
		{
			name: "forbidden uuid package",
			path: "pkg/util/uuid/uuid.go",
			src: `package uuid

import (
	"github.com/google/uuid"
)
`,
			wantErr: "github.com/google/uuid is imported; use github.com/gofrs/uuid",
		},
		{
			name: "standard library log",
			path: "cmd/azmondiag/main.go",
			src: `package main

import (
	"log"
)
`,
			wantErr: "log is imported; use github.com/sirupsen/logrus",
		},
		{
			name: "overridden standard library import",
			path: "pkg/secureclient/secureclient.go",
			src: `package secureclient

import (
	nethttp "net/http"
)
`,
			wantErr: "overridden import net/http",
		},
		{
			name: "dot import",
			path: "pkg/util/pem/pem_test.go",
			src: `package pem

import (
	. "github.com/stretchr/testify/assert"
)
`,
			wantErr: "invalid . import github.com/stretchr/testify/assert",
		},
		{
			name: "mocks are not checked",
			path: "pkg/util/mocks/gateway/gateway.go",
			src: `package mock_gateway

import (
	context "context"
)
`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parser.ParseFile(&token.FileSet{}, tt.path, tt.src, parser.ImportsOnly)
			require.NoError(t, err)

			errs := v.validateImports(tt.path, f)
			if tt.wantErr == "" {
				require.Empty(t, errs)
				return
			}

			require.Len(t, errs, 1)
			utilerror.AssertErrorMessage(t, errs[0], tt.wantErr)
		})
	}
}

func TestValidateGroups(t *testing.T) {
	for _, tt := range []struct {
		name     string
		src      string
		wantErrs []string
	}{
		{
			name: "ordered groups",
			src: `package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/env"
)
`,
		},
		{
			name: "third party mixed with standard library",
			src: `package main

import (
	"context"
	"github.com/sirupsen/logrus"
)
`,
			wantErrs: []string{`third party import "github.com/sirupsen/logrus" shares a group with standard library imports`},
		},
		{
			name: "local before third party",
			src: `package main

import (
	"github.com/Azure/azmon-diag/pkg/env"

	"github.com/sirupsen/logrus"
)
`,
			wantErrs: []string{"third party imports follow local imports"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			fset := &token.FileSet{}
			f, err := parser.ParseFile(fset, "main.go", tt.src, parser.ImportsOnly)
			require.NoError(t, err)

			errs := validateGroups("main.go", fset, f)
			require.Len(t, errs, len(tt.wantErrs))
			for i, err := range errs {
				utilerror.AssertErrorMessage(t, err, tt.wantErrs[i])
			}
		})
	}
}
