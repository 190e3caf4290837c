package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/env"
	"github.com/Azure/azmon-diag/pkg/gateway"
	"github.com/Azure/azmon-diag/pkg/metrics/prometheus"
	"github.com/Azure/azmon-diag/pkg/util/fatal"
	"github.com/Azure/azmon-diag/pkg/util/resource"
	"github.com/Azure/azmon-diag/pkg/util/uuid"
	"github.com/Azure/azmon-diag/pkg/validate/onboarding"
)

func validate(ctx context.Context, log *logrus.Entry, _env env.Core, h *fatal.Handler) (int, error) {
	clusterID := flag.Arg(1)

	id, err := parseClusterID(clusterID)
	if err != nil {
		log.Error(err)
		return exitUsage, nil
	}

	gw, err := gateway.NewAzure(log, _env.Environment(), id.SubscriptionID)
	if err != nil {
		return exitFailure, fatal.New(err, "error when creating the resource manager client")
	}

	if timeout := _env.ValidateTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	m := prometheus.New()
	originalSubscription := gw.ActiveSubscription()

	report, err := onboarding.New(log, gw, _env.Environment(), onboarding.WithMetrics(m)).Run(ctx, clusterID)

	restoreSubscription(log, gw, originalSubscription)

	if path := _env.MetricsFile(); path != "" {
		if err := m.WriteToTextfile(path); err != nil {
			log.Warnf("writing metrics to %s: %v", path, err)
		}
	}

	return result(ctx, log, report, err)
}

// parseClusterID checks that clusterID is a resource ID in a subscription
// the resource manager can address.
func parseClusterID(clusterID string) (*resource.Identifier, error) {
	id, err := resource.Parse(clusterID)
	if err != nil {
		return nil, err
	}

	if !uuid.IsValid(id.SubscriptionID) {
		return nil, fmt.Errorf("cluster resource ID %s has invalid subscription ID %q", clusterID, id.SubscriptionID)
	}

	return id, nil
}

// result maps the outcome of a run to an exit code. A run cut short by its
// deadline has no result.
func result(ctx context.Context, log *logrus.Entry, report *onboarding.Report, err error) (int, error) {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Errorf("validation did not finish before its deadline, onboarding state is unknown")
		return exitFailure, nil
	}

	var vf *onboarding.ValidationFailed
	switch {
	case err == nil:
		log.Infof("run %s: onboarding is valid", report.RunID)
		return exitSuccess, nil
	case errors.As(err, &vf):
		log.Errorf("run %s: %v", report.RunID, vf)
		return exitFailure, nil
	default:
		return exitFailure, err
	}
}

// restoreSubscription switches gw back to subscriptionID if the run changed
// it. Failing to do so is not fatal.
func restoreSubscription(log *logrus.Entry, gw gateway.Interface, subscriptionID string) {
	if strings.EqualFold(gw.ActiveSubscription(), subscriptionID) {
		return
	}

	err := gw.SetActiveSubscription(context.Background(), subscriptionID)
	if err != nil {
		log.Warnf("could not restore active subscription %s: %v", subscriptionID, err)
	}
}
