package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry describes an entry the code under test must log. Exactly
// one of Message and MessageRegex is set.
type ExpectedLogEntry struct {
	Message      string
	MessageRegex string
	Level        logrus.Level

	// Fields, if set, must all be present on the entry with equal values.
	// Other fields on the entry are ignored.
	Fields logrus.Fields
}

func (ex ExpectedLogEntry) match(e *logrus.Entry) error {
	if e.Level != ex.Level {
		return fmt.Errorf("level: found %s, expected %s", e.Level, ex.Level)
	}

	switch {
	case ex.Message != "" && ex.MessageRegex != "":
		return errors.New("both Message and MessageRegex are set")
	case ex.Message != "":
		if e.Message != ex.Message {
			return fmt.Errorf("message: found `%s`, expected `%s`", e.Message, ex.Message)
		}
	case ex.MessageRegex != "":
		if !regexp.MustCompile(ex.MessageRegex).MatchString(e.Message) {
			return fmt.Errorf("message: found `%s`, expected to match `%s`", e.Message, ex.MessageRegex)
		}
	default:
		return errors.New("neither Message nor MessageRegex is set")
	}

	for k, v := range ex.Fields {
		got, ok := e.Data[k]
		if !ok {
			return fmt.Errorf("field %s: missing, expected %v", k, v)
		}
		if got != v {
			return fmt.Errorf("field %s: found %v, expected %v", k, got, v)
		}
	}

	return nil
}

// NewCapturingLogger returns an entry whose output is discarded and a hook
// recording everything logged through it.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	return h, logrus.NewEntry(logger)
}

// AssertLoggingOutput matches the entries recorded by h against expected, in
// order. It returns one error per mismatch; none means the output matched.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()

	if len(entries) != len(expected) {
		return []error{fmt.Errorf("got %d log entries, expected %d", len(entries), len(expected))}
	}

	var errs []error
	for i, e := range entries {
		if err := expected[i].match(e); err != nil {
			errs = append(errs, errors.Wrapf(err, "entry #%d", i))
		}
	}

	return errs
}
