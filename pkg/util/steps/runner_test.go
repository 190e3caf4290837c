package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/azmon-diag/test/util/log"
)

func successfulFunc(context.Context) error { return nil }
func failingFunc(context.Context) error    { return errors.New("oh no!") }

func TestStepRunner(t *testing.T) {
	for _, tt := range []struct {
		name        string
		steps       []Step
		wantEntries []testlog.ExpectedLogEntry
		wantRan     []string
		wantErr     string
	}{
		{
			name: "All successful Actions will have a successful run",
			steps: []Step{
				Action(successfulFunc),
				NamedAction("ProvisioningSucceeded", successfulFunc),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action github.com/Azure/azmon-diag/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action ProvisioningSucceeded]",
					Level:   logrus.InfoLevel,
				},
			},
			wantRan: []string{"ProvisioningSucceeded", "github.com/Azure/azmon-diag/pkg/util/steps.successfulFunc"},
		},
		{
			name: "A failing Action will fail the run",
			steps: []Step{
				NamedAction("ExtensionConfigPresent", successfulFunc),
				NamedAction("ProvisioningSucceeded", failingFunc),
				NamedAction("DomainMatchesCloud", successfulFunc),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action ExtensionConfigPresent]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action ProvisioningSucceeded]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: `step [Action ProvisioningSucceeded] encountered error: oh no!`,
					Level:   logrus.ErrorLevel,
				},
			},
			wantRan: []string{"ExtensionConfigPresent", "ProvisioningSucceeded"},
			wantErr: `oh no!`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			h, log := testlog.NewCapturingLogger()

			durations, err := Run(ctx, log, tt.steps)
			if err != nil && err.Error() != tt.wantErr ||
				err == nil && tt.wantErr != "" {
				t.Error(err)
			}

			var ran []string
			for name := range durations {
				ran = append(ran, name)
			}
			sort.Strings(ran)

			for _, diff := range deep.Equal(ran, tt.wantRan) {
				t.Error(diff)
			}

			for _, e := range testlog.AssertLoggingOutput(h, tt.wantEntries) {
				t.Error(e)
			}
		})
	}
}

func TestMetricsTopic(t *testing.T) {
	for _, tt := range []struct {
		step Step
		want string
	}{
		{
			step: Action(successfulFunc),
			want: "action.successfulFunc",
		},
		{
			step: NamedAction("DailyQuotaWithinExpected", successfulFunc),
			want: "action.DailyQuotaWithinExpected",
		},
	} {
		if got := tt.step.MetricsTopic(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
