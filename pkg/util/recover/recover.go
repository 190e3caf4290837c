package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Panic recovers a panic on a background goroutine and logs it with its
// stack, leaving the process running.
func Panic(log *logrus.Entry) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
	}
}
