package onboarding

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/gateway"
)

// ValidationContext accumulates what the checks learn during a run. It is
// owned by a single run and never shared.
type ValidationContext struct {
	ClusterID            string
	Extension            *gateway.ExtensionState
	Workspace            *WorkspaceState
	ActiveSubscriptionID string
	Diagnostics          []string

	log   *logrus.Entry
	state State
}

// diagnosef records a diagnostic and logs it tagged with the running state.
func (vc *ValidationContext) diagnosef(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	vc.Diagnostics = append(vc.Diagnostics, msg)
	vc.log.WithField("state", string(vc.state)).Info(msg)
}
