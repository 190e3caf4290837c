package fatal

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	mock_fatal "github.com/Azure/azmon-diag/pkg/util/mocks/fatal"
	testlog "github.com/Azure/azmon-diag/test/util/log"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()

	controller := gomock.NewController(t)
	defer controller.Finish()

	reporter := mock_fatal.NewMockReporter(controller)
	clock := clockwork.NewFakeClock()
	hook, log := testlog.NewCapturingLogger()

	exited := make(chan int, 1)
	handler := &Handler{
		Log:         log,
		Reporter:    reporter,
		Clock:       clock,
		GracePeriod: 30 * time.Second,
		Exit: func(code int) {
			exited <- code
		},
	}

	err := New(errors.New("open oms.crt: no such file or directory"), "error when loading cert")

	reported := make(chan struct{})
	gomock.InOrder(
		reporter.EXPECT().Report(ctx, err).Do(func(context.Context, error) {
			close(reported)
		}),
		reporter.EXPECT().Close().Return(nil),
	)

	go handler.Handle(ctx, err)

	<-reported
	clock.BlockUntil(1)
	clock.Advance(29 * time.Second)

	select {
	case <-exited:
		t.Fatal("exited before the grace period elapsed")
	default:
	}

	clock.Advance(time.Second)

	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("exit code %d, expected 1", code)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not exit")
	}

	for _, e := range testlog.AssertLoggingOutput(hook, []testlog.ExpectedLogEntry{
		{
			Message: "error when loading cert: open oms.crt: no such file or directory",
			Level:   logrus.ErrorLevel,
		},
	}) {
		t.Error(e)
	}
}

func TestIsFatal(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "fatal",
			err:  New(errors.New("boom"), "loading cert"),
			want: true,
		},
		{
			name: "wrapped fatal",
			err:  errors.Join(errors.New("context"), New(nil, "bad proxy")),
			want: true,
		},
		{
			name: "plain",
			err:  errors.New("boom"),
		},
		{
			name: "nil",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message and cause",
			err:  New(errors.New("boom"), "error parsing omsproxy url %s", "x"),
			want: "error parsing omsproxy url x: boom",
		},
		{
			name: "message only",
			err:  New(nil, "cert_file_path unset"),
			want: "cert_file_path unset",
		},
		{
			name: "cause only",
			err:  &Error{Err: errors.New("boom")},
			want: "boom",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
