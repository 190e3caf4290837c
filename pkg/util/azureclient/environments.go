package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"
)

// CloudEnvironment contains additional, cloud-specific information needed to
// validate monitoring onboarding.
type CloudEnvironment struct {
	azure.Environment
	ActualCloudName string
	// LogAnalyticsDomain is the domain suffix the monitoring agent must be
	// configured with to send data to workspaces in this cloud.
	LogAnalyticsDomain string
	Cloud              cloud.Configuration
}

var (
	// PublicCloud contains additional information for the public Azure cloud environment.
	PublicCloud = CloudEnvironment{
		Environment:        azure.PublicCloud,
		ActualCloudName:    "AzureCloud",
		LogAnalyticsDomain: "opinsights.azure.com",
		Cloud:              cloud.AzurePublic,
	}

	// USGovernmentCloud contains additional information for the US Gov cloud environment.
	USGovernmentCloud = CloudEnvironment{
		Environment:        azure.USGovernmentCloud,
		ActualCloudName:    "AzureUSGovernment",
		LogAnalyticsDomain: "opinsights.azure.us",
		Cloud:              cloud.AzureGovernment,
	}

	// ChinaCloud contains additional information for the Azure China cloud environment.
	ChinaCloud = CloudEnvironment{
		Environment:        azure.ChinaCloud,
		ActualCloudName:    "AzureChinaCloud",
		LogAnalyticsDomain: "opinsights.azure.cn",
		Cloud:              cloud.AzureChina,
	}
)

// EnvironmentFromName returns the CloudEnvironment corresponding to the common
// name specified. Both the autorest names (AzurePublicCloud) and the names used
// by the az CLI (AzureCloud) are accepted.
func EnvironmentFromName(name string) (CloudEnvironment, error) {
	for _, e := range []CloudEnvironment{PublicCloud, USGovernmentCloud, ChinaCloud} {
		if strings.EqualFold(name, e.Name) || strings.EqualFold(name, e.ActualCloudName) {
			return e, nil
		}
	}
	return CloudEnvironment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when
// instantiating Azure SDK for Go clients. Every attempt is logged to log. A
// nil transporter selects the SDK's default HTTP client.
func (e *CloudEnvironment) ArmClientOptions(log *logrus.Entry, transporter policy.Transporter) *arm.ClientOptions {
	options := &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:            e.Cloud,
			PerRetryPolicies: []policy.Policy{NewLoggingPolicy(log)},
		},
	}
	if transporter != nil {
		options.Transport = transporter
	}
	return options
}

func (e *CloudEnvironment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
