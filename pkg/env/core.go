package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/azmon-diag/pkg/util/azureclient"
	"github.com/Azure/azmon-diag/pkg/util/fatal"
)

type ServiceComponent string

const (
	COMPONENT_VALIDATE ServiceComponent = "VALIDATE"
	COMPONENT_PROBE    ServiceComponent = "PROBE"
)

const (
	AzureEnvironment        = "AZURE_ENVIRONMENT"
	FatalGracePeriod        = "AZMON_FATAL_GRACE_PERIOD"
	LogFile                 = "AZMON_LOG_FILE"
	MetricsFile             = "AZMON_METRICS_FILE"
	PluginConfig            = "AZMON_PLUGIN_CONFIG"
	ValidateTimeout         = "AZMON_VALIDATE_TIMEOUT"
	DefaultLogFile          = "azmondiag.log"
	defaultAzureEnvironment = "AzurePublicCloud"
)

// MinFatalGracePeriod is the shortest accepted AZMON_FATAL_GRACE_PERIOD. A
// fatal error always waits before exiting so the crash report can be
// delivered.
const MinFatalGracePeriod = time.Second

// Core collects the configuration every subcommand needs, read from the
// process environment.
type Core interface {
	Environment() *azureclient.CloudEnvironment
	FatalGracePeriod() time.Duration
	LogFile() string
	MetricsFile() string
	PluginConfigPath() string
	ValidateTimeout() time.Duration

	GetEnv(string) string
	ValidateVars(...string) error

	Component() string
	Logger() *logrus.Entry
}

type core struct {
	cfg *viper.Viper

	environment      azureclient.CloudEnvironment
	fatalGracePeriod time.Duration
	validateTimeout  time.Duration

	component    ServiceComponent
	componentLog *logrus.Entry
}

func (c *core) Environment() *azureclient.CloudEnvironment {
	return &c.environment
}

func (c *core) FatalGracePeriod() time.Duration {
	return c.fatalGracePeriod
}

func (c *core) LogFile() string {
	return c.cfg.GetString(LogFile)
}

func (c *core) MetricsFile() string {
	return c.cfg.GetString(MetricsFile)
}

func (c *core) PluginConfigPath() string {
	return c.cfg.GetString(PluginConfig)
}

// ValidateTimeout is zero when no deadline is configured.
func (c *core) ValidateTimeout() time.Duration {
	return c.validateTimeout
}

func (c *core) Component() string {
	return string(c.component)
}

func (c *core) Logger() *logrus.Entry {
	return c.componentLog
}

func (c *core) GetEnv(name string) string {
	return c.cfg.GetString(name)
}

func (c *core) ValidateVars(vars ...string) error {
	return ValidateVars(c.cfg, vars...)
}

// NewCore reads the environment through cfg. cfg is expected to have
// AutomaticEnv enabled.
func NewCore(log *logrus.Entry, component ServiceComponent, cfg *viper.Viper) (Core, error) {
	cfg.SetDefault(AzureEnvironment, defaultAzureEnvironment)
	cfg.SetDefault(FatalGracePeriod, fatal.DefaultGracePeriod.String())
	cfg.SetDefault(LogFile, DefaultLogFile)

	environment, err := azureclient.EnvironmentFromName(cfg.GetString(AzureEnvironment))
	if err != nil {
		return nil, err
	}

	var errs error

	gracePeriod, err := durationVar(cfg, FatalGracePeriod)
	switch {
	case err != nil:
		errs = multierror.Append(errs, err)
	case gracePeriod < MinFatalGracePeriod:
		errs = multierror.Append(errs, fmt.Errorf("environment variable %q must be at least %s", FatalGracePeriod, MinFatalGracePeriod))
	}

	validateTimeout, err := durationVar(cfg, ValidateTimeout)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	if errs != nil {
		return nil, errs
	}

	componentLog := log.WithField("component", strings.ToLower(string(component)))
	componentLog.Infof("running in %s", environment.ActualCloudName)

	return &core{
		cfg: cfg,

		environment:      environment,
		fatalGracePeriod: gracePeriod,
		validateTimeout:  validateTimeout,

		component:    component,
		componentLog: componentLog,
	}, nil
}

// durationVar parses a Go duration string such as "30s". Unset is zero.
func durationVar(cfg *viper.Viper, name string) (time.Duration, error) {
	s := cfg.GetString(name)
	if s == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("environment variable %q: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("environment variable %q must not be negative", name)
	}

	return d, nil
}

// ValidateVars checks that every named variable is set to a non-empty value.
// All unset variables are reported together.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var errs error

	for _, v := range vars {
		if cfg.GetString(v) == "" {
			errs = multierror.Append(errs, fmt.Errorf("environment variable %q unset", v))
		}
	}

	return errs
}
