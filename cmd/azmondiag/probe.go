package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/env"
	"github.com/Azure/azmon-diag/pkg/secureclient"
	"github.com/Azure/azmon-diag/pkg/util/fatal"
	"github.com/Azure/azmon-diag/pkg/util/propertyfile"
)

func probe(ctx context.Context, log *logrus.Entry, _env env.Core, h *fatal.Handler) (int, error) {
	endpoint, err := url.Parse(flag.Arg(1))
	if err != nil || endpoint.Scheme != "https" || endpoint.Host == "" {
		log.Errorf("endpoint %q must be an https URL", flag.Arg(1))
		return exitUsage, nil
	}

	err = _env.ValidateVars(env.PluginConfig)
	if err != nil {
		return exitFailure, fatal.New(err, "invalid environment")
	}

	props, err := propertyfile.Load(_env.PluginConfigPath())
	if err != nil {
		return exitFailure, fatal.New(err, "error when loading plugin configuration")
	}

	c := secureclient.MustBuild(log, h, secureclient.ConfigFromProperties(props))
	if c == nil {
		return exitFailure, nil
	}

	return get(ctx, log, c.Client, endpoint.String())
}

func get(ctx context.Context, log *logrus.Entry, cli *http.Client, endpoint string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return exitFailure, err
	}

	resp, err := cli.Do(req)
	if err != nil {
		log.Errorf("probing %s: %v", endpoint, err)
		return exitFailure, nil
	}
	defer resp.Body.Close()

	log.WithField("status_code", resp.StatusCode).Infof("probed %s: %s", endpoint, resp.Status)

	if resp.StatusCode >= http.StatusBadRequest {
		return exitFailure, nil
	}

	return exitSuccess, nil
}
