package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"
)

// AssertErrorMessage fails t unless err's message is wantMsg. An empty
// wantMsg expects a nil error.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("got no error, expected %q", wantMsg)
	case err != nil && wantMsg == "":
		t.Errorf("got error %q, expected none", err)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error %q, expected %q", err, wantMsg)
	}
}
