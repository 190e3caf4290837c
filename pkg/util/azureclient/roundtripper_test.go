package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/azmon-diag/test/util/log"
)

type transporterFunc func(*http.Request) (*http.Response, error)

func (f transporterFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestLoggingPolicy(t *testing.T) {
	for _, tt := range []struct {
		name       string
		transport  transporterFunc
		wantStatus interface{}
		wantErr    bool
	}{
		{
			name: "response is logged",
			transport: func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Header:     http.Header{correlationIdHeader: []string{"00000000-0000-0000-0000-000000000001"}},
					Body:       io.NopCloser(strings.NewReader("{}")),
					Request:    req,
				}, nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "transport failure is logged",
			transport: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			wantStatus: "0",
			wantErr:    true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, log := testlog.NewCapturingLogger()

			pl := runtime.NewPipeline("azureclient", "v0.0.0", runtime.PipelineOptions{}, &policy.ClientOptions{
				Transport:        tt.transport,
				PerRetryPolicies: []policy.Policy{NewLoggingPolicy(log)},
				Retry:            policy.RetryOptions{MaxRetries: -1},
			})

			req, err := runtime.NewRequest(context.Background(), http.MethodGet, "https://management.azure.com/subscriptions/sub/resourceGroups/rg")
			if err != nil {
				t.Fatal(err)
			}

			_, err = pl.Do(req)
			if (err != nil) != tt.wantErr {
				t.Fatal(err)
			}

			for _, e := range testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
				{Message: "HttpRequestStart", Level: logrus.InfoLevel},
				{Message: "HttpRequestEnd", Level: logrus.InfoLevel},
			}) {
				t.Error(e)
			}

			end := h.LastEntry()
			if end.Data[responseCode] != tt.wantStatus {
				t.Errorf("got status %v, want %v", end.Data[responseCode], tt.wantStatus)
			}
			if end.Data["request_path"] != "/subscriptions/sub/resourceGroups/rg" {
				t.Error(end.Data["request_path"])
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not found",
			err:  &azcore.ResponseError{StatusCode: http.StatusNotFound},
			want: true,
		},
		{
			name: "forbidden",
			err:  &azcore.ResponseError{StatusCode: http.StatusForbidden},
		},
		{
			name: "other error",
			err:  errors.New("random error"),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.want {
				t.Error(got)
			}
		})
	}
}
