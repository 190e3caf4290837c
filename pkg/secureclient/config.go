package secureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Keys read from the plugin property file.
const (
	CertFilePathKey    = "cert_file_path"
	KeyFilePathKey     = "key_file_path"
	ProxyConfigPathKey = "omsproxy_conf_path"
	DefaultTimeout     = 30 * time.Second
)

// ClientConfig is read once at startup. Changing it requires building a new
// client.
type ClientConfig struct {
	CertPath        string
	KeyPath         string
	ProxyConfigPath string
	Timeout         time.Duration
}

// ConfigFromProperties builds a ClientConfig from a loaded property file.
// Unknown keys are ignored.
func ConfigFromProperties(props map[string]string) *ClientConfig {
	return &ClientConfig{
		CertPath:        props[CertFilePathKey],
		KeyPath:         props[KeyFilePathKey],
		ProxyConfigPath: props[ProxyConfigPathKey],
		Timeout:         DefaultTimeout,
	}
}

// Validate checks that the certificate and key are configured.
func (c *ClientConfig) Validate() error {
	var errs error

	if c.CertPath == "" {
		errs = multierror.Append(errs, errors.New(CertFilePathKey+" is not set"))
	}
	if c.KeyPath == "" {
		errs = multierror.Append(errs, errors.New(KeyFilePathKey+" is not set"))
	}
	if c.Timeout < 0 {
		errs = multierror.Append(errs, errors.New("timeout must not be negative"))
	}

	return errs
}
