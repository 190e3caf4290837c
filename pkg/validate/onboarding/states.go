package onboarding

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// State is a check of the onboarding pipeline. States run in the order of
// States and the first failing one ends the run.
type State string

const (
	ExtensionConfigPresent        State = "ExtensionConfigPresent"
	ProvisioningSucceeded         State = "ProvisioningSucceeded"
	DomainMatchesCloud            State = "DomainMatchesCloud"
	WorkspaceResourceExists       State = "WorkspaceResourceExists"
	InsightsSolutionLinked        State = "InsightsSolutionLinked"
	IngestionNetworkAccessEnabled State = "IngestionNetworkAccessEnabled"
	QueryNetworkAccessEnabled     State = "QueryNetworkAccessEnabled"
	DailyQuotaWithinExpected      State = "DailyQuotaWithinExpected"
	Done                          State = "Done"
)

// States lists the checks in execution order. Done is not a check.
var States = []State{
	ExtensionConfigPresent,
	ProvisioningSucceeded,
	DomainMatchesCloud,
	WorkspaceResourceExists,
	InsightsSolutionLinked,
	IngestionNetworkAccessEnabled,
	QueryNetworkAccessEnabled,
	DailyQuotaWithinExpected,
}

const (
	// Extension configuration settings read by the checks.
	WorkspaceResourceIDKey = "logAnalyticsWorkspaceResourceID"
	DomainKey              = "omsagent.domain"

	ProvisioningStateSucceeded = "Succeeded"

	// ExpectedDailyQuotaGb is the only accepted daily cap: -1 means the
	// workspace is not capped.
	ExpectedDailyQuotaGb = -1.0

	SolutionResourceType = "Microsoft.OperationsManagement/solutions"

	SupportHint         = "If the problem persists, contact Azure support with the run ID and the log file of this run."
	privateLinkGuidance = "if the workspace is only reachable through an Azure Monitor Private Link Scope, verify the scope configuration, see https://learn.microsoft.com/azure/azure-monitor/logs/private-link-security"
)
