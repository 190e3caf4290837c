package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// FriendlyName returns a "friendly" stringified name of the given func.
func FriendlyName(f interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
}

// shortName drops the package path from a friendly name.
func shortName(fullName string) string {
	sepCheck := func(c rune) bool {
		return c == '/' || c == '.'
	}

	fields := strings.FieldsFunc(strings.TrimSpace(fullName), sepCheck)
	if size := len(fields); size > 0 {
		return fields[size-1]
	}
	return fullName
}

// Step is the interface for steps that Runner can execute.
type Step interface {
	run(ctx context.Context, log *logrus.Entry) error
	Name() string
	String() string
	MetricsTopic() string
}

// Run executes the provided steps in order until one fails or all steps
// are completed. Errors from failed steps are returned directly. The time
// spent in every step that ran, including a failing one, is returned keyed
// by step name.
func Run(ctx context.Context, log *logrus.Entry, steps []Step) (map[string]time.Duration, error) {
	stepTimeRun := make(map[string]time.Duration, len(steps))
	for _, step := range steps {
		log.Infof("running step %s", step)
		startTime := time.Now()
		err := step.run(ctx, log)
		stepTimeRun[step.Name()] = time.Since(startTime)

		if err != nil {
			log.Errorf("step %s encountered error: %s", step, err.Error())
			return stepTimeRun, err
		}
	}
	return stepTimeRun, nil
}
