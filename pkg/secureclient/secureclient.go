package secureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"crypto/tls"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/util/fatal"
	utilpem "github.com/Azure/azmon-diag/pkg/util/pem"
)

// Client is an HTTP client authenticated with a client certificate. It is
// safe for concurrent use.
type Client struct {
	*http.Client
	proxyURL *url.URL
}

// ProxyURL returns the proxy requests are routed through, or nil.
func (c *Client) ProxyURL() *url.URL {
	return c.proxyURL
}

// Build returns a client for cfg. Every error returned is a *fatal.Error:
// callers hand it to a fatal.Handler rather than retrying or defaulting.
func Build(log *logrus.Entry, cfg *ClientConfig) (*Client, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fatal.New(err, "invalid client configuration")
	}

	cert, err := loadCertificate(log, cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fatal.New(err, "error when loading cert")
	}

	proxyURL, err := loadProxy(cfg.ProxyConfigPath)
	if err != nil {
		return nil, fatal.New(err, "error when loading proxy configuration")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}
	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
		log.Infof("routing requests through proxy %s", proxyURL.Redacted())
	}

	return &Client{
		Client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		proxyURL: proxyURL,
	}, nil
}

// MustBuild is Build, handing any error to h. It returns nil only if h.Exit
// returns.
func MustBuild(log *logrus.Entry, h *fatal.Handler, cfg *ClientConfig) *Client {
	c, err := Build(log, cfg)
	if err != nil {
		h.Handle(context.Background(), err)
		return nil
	}
	return c
}

func loadCertificate(log *logrus.Entry, certPath, keyPath string) (tls.Certificate, error) {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, err
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return tls.Certificate{}, err
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, err
	}

	leaf, err := utilpem.ParseFirstCertificate(certPEM)
	if err != nil {
		return tls.Certificate{}, err
	}

	l := log.WithFields(logrus.Fields{
		"subject":   leaf.Subject.String(),
		"not_after": leaf.NotAfter.UTC().Format(time.RFC3339),
	})
	if time.Now().After(leaf.NotAfter) {
		l.Warn("client certificate has expired")
	} else {
		l.Info("loaded client certificate")
	}

	return cert, nil
}

// loadProxy returns nil if path is unset, does not exist or holds only
// whitespace.
func loadProxy(path string) (*url.URL, error) {
	if path == "" {
		return nil, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s := strings.TrimSpace(string(b))
	if s == "" {
		return nil, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("proxy URL " + u.Redacted() + " must have a scheme and host")
	}

	return u, nil
}
