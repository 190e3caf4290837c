package fatal

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Handler terminates the process on fatal errors.
type Handler struct {
	Log         *logrus.Entry
	Reporter    Reporter
	Clock       clockwork.Clock
	GracePeriod time.Duration
	Exit        func(int)
}

func NewHandler(log *logrus.Entry, reporter Reporter, gracePeriod time.Duration) *Handler {
	return &Handler{
		Log:         log,
		Reporter:    reporter,
		Clock:       clockwork.NewRealClock(),
		GracePeriod: gracePeriod,
		Exit:        os.Exit,
	}
}

// Handle reports err, sleeps for the grace period, logs err and exits with
// status 1. The order matters: exiting before the grace period has elapsed
// can lose the crash report. With the default Exit, Handle does not return.
func (h *Handler) Handle(ctx context.Context, err error) {
	h.Reporter.Report(ctx, err)

	h.Clock.Sleep(h.GracePeriod)

	if cerr := h.Reporter.Close(); cerr != nil {
		h.Log.Warnf("closing crash reporter: %v", cerr)
	}

	h.Log.Error(err)
	h.Exit(1)
}
