package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/azmon-diag/pkg/env"
	"github.com/Azure/azmon-diag/pkg/util/fatal"
	utillog "github.com/Azure/azmon-diag/pkg/util/log"
	"github.com/Azure/azmon-diag/pkg/util/uuid"
)

var (
	gitCommit = "unknown"
)

// command runs a subcommand and returns its exit code. A non-nil error is
// handled as fatal.
type command func(context.Context, *logrus.Entry, env.Core, *fatal.Handler) (int, error)

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), "usage: \n")
	fmt.Fprintf(flag.CommandLine.Output(), "       %s validate {cluster_resource_id}\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s probe {endpoint}\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	log := utillog.GetLogger()

	log.Printf("starting, git commit %s", gitCommit)

	reporter := fatal.NewAsyncReporter(log.WithField("component", "crash-reporter"), uuid.DefaultGenerator)
	h := fatal.NewHandler(log, reporter, fatal.DefaultGracePeriod)

	var code int
	switch strings.ToLower(flag.Arg(0)) {
	case "validate":
		checkArgs(2)
		code = run(ctx, log, h, env.COMPONENT_VALIDATE, validate)
	case "probe":
		checkArgs(2)
		code = run(ctx, log, h, env.COMPONENT_PROBE, probe)
	default:
		usage()
		code = exitUsage
	}

	os.Exit(code)
}

func checkArgs(required int) {
	if len(flag.Args()) != required {
		usage()
		os.Exit(exitUsage)
	}
}

// run sets up the environment and the log file around cmd. Errors are
// handed to h: reported, then the process waits for the grace period before
// exiting.
func run(ctx context.Context, log *logrus.Entry, h *fatal.Handler, component env.ServiceComponent, cmd command) int {
	cfg := viper.New()
	cfg.AutomaticEnv()

	_env, err := env.NewCore(log, component, cfg)
	if err != nil {
		logFile := cfg.GetString(env.LogFile)
		if logFile == "" {
			logFile = env.DefaultLogFile
		}

		addFileSink(log, h, logFile)
		h.Handle(ctx, fatal.New(err, "invalid environment"))
		return exitFailure
	}

	h.GracePeriod = _env.FatalGracePeriod()
	sink := addFileSink(log, h, _env.LogFile())

	code, err := cmd(ctx, _env.Logger(), _env, h)
	if err != nil {
		h.Handle(ctx, err)
		return exitFailure
	}

	if err := h.Reporter.Close(); err != nil {
		log.Warnf("closing crash reporter: %v", err)
	}

	if err := sink.Close(); err != nil {
		log.Warnf("closing log file %s: %v", _env.LogFile(), err)
	}

	return code
}

// addFileSink persists everything logged through log to path. h is changed to
// close the file before it exits.
func addFileSink(log *logrus.Entry, h *fatal.Handler, path string) io.Closer {
	sink := utillog.AddFileSink(log, path)

	exit := h.Exit
	h.Exit = func(code int) {
		_ = sink.Close()
		exit(code)
	}

	return sink
}
