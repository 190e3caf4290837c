package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_gateway "github.com/Azure/azmon-diag/pkg/util/mocks/gateway"
	"github.com/Azure/azmon-diag/pkg/validate/onboarding"
	utilerror "github.com/Azure/azmon-diag/test/util/error"
	testlog "github.com/Azure/azmon-diag/test/util/log"
)

const (
	clusterSubscription   = "00000000-0000-0000-0000-000000000001"
	workspaceSubscription = "00000000-0000-0000-0000-000000000002"
)

func TestRestoreSubscription(t *testing.T) {
	for _, tt := range []struct {
		name        string
		mocks       func(*mock_gateway.MockInterface)
		wantEntries []testlog.ExpectedLogEntry
	}{
		{
			name: "unchanged",
			mocks: func(gw *mock_gateway.MockInterface) {
				gw.EXPECT().ActiveSubscription().Return(clusterSubscription)
			},
		},
		{
			name: "restored",
			mocks: func(gw *mock_gateway.MockInterface) {
				gw.EXPECT().ActiveSubscription().Return(workspaceSubscription)
				gw.EXPECT().SetActiveSubscription(gomock.Any(), clusterSubscription).Return(nil)
			},
		},
		{
			name: "restore fails",
			mocks: func(gw *mock_gateway.MockInterface) {
				gw.EXPECT().ActiveSubscription().Return(workspaceSubscription)
				gw.EXPECT().SetActiveSubscription(gomock.Any(), clusterSubscription).Return(errors.New("unauthorized"))
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Level:   logrus.WarnLevel,
					Message: "could not restore active subscription " + clusterSubscription + ": unauthorized",
				},
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			gw := mock_gateway.NewMockInterface(controller)
			tt.mocks(gw)

			h, log := testlog.NewCapturingLogger()

			restoreSubscription(log, gw, clusterSubscription)

			for _, err := range testlog.AssertLoggingOutput(h, tt.wantEntries) {
				t.Error(err)
			}
		})
	}
}

func TestResult(t *testing.T) {
	report := &onboarding.Report{RunID: "run-1"}

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Minute))
	defer cancel()

	for _, tt := range []struct {
		name     string
		ctx      context.Context
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "valid",
			ctx:      context.Background(),
			wantCode: exitSuccess,
		},
		{
			name: "validation failed",
			ctx:  context.Background(),
			err: &onboarding.ValidationFailed{
				State:   onboarding.ProvisioningSucceeded,
				Message: "provisioningState mismatch",
			},
			wantCode: exitFailure,
		},
		{
			name:     "deadline exceeded",
			ctx:      expired,
			err:      context.DeadlineExceeded,
			wantCode: exitFailure,
		},
		{
			name:     "unexpected error",
			ctx:      context.Background(),
			err:      errors.New("boom"),
			wantCode: exitFailure,
			wantErr:  "boom",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, log := testlog.NewCapturingLogger()

			code, err := result(tt.ctx, log, report, tt.err)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestParseClusterID(t *testing.T) {
	for _, tt := range []struct {
		name      string
		clusterID string
		wantErr   string
	}{
		{
			name:      "valid",
			clusterID: "/subscriptions/" + clusterSubscription + "/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster",
		},
		{
			name:      "subscription is not a UUID",
			clusterID: "/subscriptions/my-subscription/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster",
			wantErr:   `cluster resource ID /subscriptions/my-subscription/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/cluster has invalid subscription ID "my-subscription"`,
		},
		{
			name:      "not a resource ID",
			clusterID: "cluster",
			wantErr:   "parsing failed for cluster. Invalid resource Id format",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseClusterID(tt.clusterID)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if err == nil {
				assert.Equal(t, clusterSubscription, id.SubscriptionID)
			}
		})
	}
}
