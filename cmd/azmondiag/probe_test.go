package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testlog "github.com/Azure/azmon-diag/test/util/log"
)

func TestGet(t *testing.T) {
	for _, tt := range []struct {
		name     string
		status   int
		wantCode int
	}{
		{
			name:     "ok",
			status:   http.StatusOK,
			wantCode: exitSuccess,
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			wantCode: exitFailure,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, log := testlog.NewCapturingLogger()

			code, err := get(context.Background(), log, srv.Client(), srv.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestGetUnreachable(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, log := testlog.NewCapturingLogger()

	code, err := get(context.Background(), log, srv.Client(), url)
	require.NoError(t, err)
	assert.Equal(t, exitFailure, code)
}
