package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"
)

const (
	responseCode         = "response_status_code"
	contentLength        = "content_length"
	durationMilliseconds = "duration_milliseconds"
	correlationIdHeader  = "X-Ms-Correlation-Request-Id"
)

type PolicyFunc func(req *policy.Request) (*http.Response, error)

func (p PolicyFunc) Do(req *policy.Request) (*http.Response, error) {
	return p(req)
}

var _ policy.Policy = PolicyFunc(nil)

// NewLoggingPolicy returns a policy logging the start and end of every
// outgoing request to the control plane.
func NewLoggingPolicy(log *logrus.Entry) policy.Policy {
	return PolicyFunc(func(req *policy.Request) (*http.Response, error) {
		return loggingRoundTripper(log, req.Raw(), req.Next)
	})
}

func loggingRoundTripper(log *logrus.Entry, req *http.Request, next func() (*http.Response, error)) (*http.Response, error) {
	requestTime := time.Now()
	l := enrichLogWithRequest(log, req)

	l.Info("HttpRequestStart")

	res, err := next()

	l = enrichLogWithResponse(l, res, requestTime)
	if err != nil {
		l = l.WithError(err)
	}
	l.Info("HttpRequestEnd")

	return res, err
}

func enrichLogWithRequest(l *logrus.Entry, req *http.Request) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"request_method": req.Method,
		"request_URL":    req.URL.Host,
		"request_path":   req.URL.Path,
	})
}

func enrichLogWithResponse(l *logrus.Entry, res *http.Response, requestTime time.Time) *logrus.Entry {
	if res == nil {
		return l.WithFields(logrus.Fields{
			responseCode:         "0",
			durationMilliseconds: time.Since(requestTime).Milliseconds(),
		})
	}

	return l.WithFields(logrus.Fields{
		responseCode:         res.StatusCode,
		contentLength:        res.ContentLength,
		durationMilliseconds: time.Since(requestTime).Milliseconds(),
		"correlation_id":     res.Header.Get(correlationIdHeader),
	})
}
