package onboarding

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/gateway"
	"github.com/Azure/azmon-diag/pkg/metrics"
	"github.com/Azure/azmon-diag/pkg/metrics/noop"
	"github.com/Azure/azmon-diag/pkg/util/azureclient"
	utillog "github.com/Azure/azmon-diag/pkg/util/log"
	"github.com/Azure/azmon-diag/pkg/util/resource"
	"github.com/Azure/azmon-diag/pkg/util/steps"
	"github.com/Azure/azmon-diag/pkg/util/uuid"
)

// Report summarises a run. FailedState is empty when every check passed.
type Report struct {
	RunID       string
	ClusterID   string
	Diagnostics []string
	Durations   map[State]time.Duration
	FailedState State
}

// Validator checks that container monitoring is correctly onboarded on a
// cluster.
type Validator struct {
	log  *logrus.Entry
	gw   gateway.Interface
	env  *azureclient.CloudEnvironment
	m    metrics.Emitter
	uuid uuid.Generator
}

type Option func(*Validator)

// WithMetrics emits per-state durations and the run result to m.
func WithMetrics(m metrics.Emitter) Option {
	return func(v *Validator) {
		v.m = m
	}
}

// WithUUIDGenerator sets the generator of run IDs.
func WithUUIDGenerator(g uuid.Generator) Option {
	return func(v *Validator) {
		v.uuid = g
	}
}

func New(log *logrus.Entry, gw gateway.Interface, env *azureclient.CloudEnvironment, opts ...Option) *Validator {
	v := &Validator{
		log:  log,
		gw:   gw,
		env:  env,
		m:    &noop.Noop{},
		uuid: uuid.DefaultGenerator,
	}

	for _, o := range opts {
		o(v)
	}

	return v
}

// Run executes the checks in order against clusterID and stops at the first
// failure, returning a *ValidationFailed. Run may change the active
// subscription of the gateway; restoring it is up to the caller.
func (v *Validator) Run(ctx context.Context, clusterID string) (*Report, error) {
	_, err := resource.Parse(clusterID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     v.uuid.Generate(),
		ClusterID: clusterID,
		Durations: map[State]time.Duration{},
	}

	log := utillog.EnrichWithResourceID(v.log.WithField("run_id", report.RunID), clusterID)

	vc := &ValidationContext{
		ClusterID:            clusterID,
		ActiveSubscriptionID: v.gw.ActiveSubscription(),
		log:                  log,
	}

	checks := map[State]func(context.Context, *ValidationContext) error{
		ExtensionConfigPresent:        v.checkExtensionConfigPresent,
		ProvisioningSucceeded:         v.checkProvisioningSucceeded,
		DomainMatchesCloud:            v.checkDomainMatchesCloud,
		WorkspaceResourceExists:       v.checkWorkspaceResourceExists,
		InsightsSolutionLinked:        v.checkInsightsSolutionLinked,
		IngestionNetworkAccessEnabled: v.checkIngestionNetworkAccessEnabled,
		QueryNetworkAccessEnabled:     v.checkQueryNetworkAccessEnabled,
		DailyQuotaWithinExpected:      v.checkDailyQuotaWithinExpected,
	}

	s := make([]steps.Step, 0, len(States))
	for _, state := range States {
		s = append(s, step(state, vc, checks[state]))
	}

	durations, err := steps.Run(ctx, log, s)
	for name, d := range durations {
		report.Durations[State(name)] = d
	}

	if err != nil {
		var vf *ValidationFailed
		if errors.As(err, &vf) {
			report.FailedState = vf.State
		}
	} else {
		vc.state = Done
		vc.diagnosef("%s: monitoring onboarding of %s is valid", Done, clusterID)
	}

	report.Diagnostics = vc.Diagnostics
	v.emitMetrics(report)

	return report, err
}

// step adapts a check to the step runner. Check errors become a
// *ValidationFailed naming the state.
func step(state State, vc *ValidationContext, check func(context.Context, *ValidationContext) error) steps.Step {
	return steps.NamedAction(string(state), func(ctx context.Context) error {
		vc.state = state
		err := check(ctx, vc)
		if err == nil {
			return nil
		}

		msg := err.Error() + ". " + SupportHint
		vc.Diagnostics = append(vc.Diagnostics, fmt.Sprintf("%s: %s", state, msg))

		return &ValidationFailed{
			State:   state,
			Message: msg,
			Err:     err,
		}
	})
}

func (v *Validator) emitMetrics(report *Report) {
	for state, d := range report.Durations {
		v.m.EmitFloat("onboarding.step.duration", d.Seconds(), map[string]string{
			"state": string(state),
		})
	}

	result := "succeeded"
	state := Done
	if report.FailedState != "" {
		result = "failed"
		state = report.FailedState
	}

	v.m.EmitGauge("onboarding.result", 1, map[string]string{
		"result": result,
		"state":  string(state),
	})
}

func (v *Validator) checkExtensionConfigPresent(ctx context.Context, vc *ValidationContext) error {
	es, err := v.gw.FetchExtension(ctx, vc.ClusterID)
	if err == nil && es == nil {
		err = errEmptyResponse
	}
	if err != nil {
		return &ProviderFetchError{Op: "fetching extension " + gateway.ExtensionName, Err: err}
	}

	for _, key := range []string{WorkspaceResourceIDKey, DomainKey} {
		if strings.TrimSpace(es.Configuration[key]) == "" {
			return &MissingFieldError{Field: key}
		}
	}

	vc.Extension = es
	vc.diagnosef("%s: extension %s reports workspace %s", ExtensionConfigPresent, gateway.ExtensionName, es.Configuration[WorkspaceResourceIDKey])

	return nil
}

func (v *Validator) checkProvisioningSucceeded(ctx context.Context, vc *ValidationContext) error {
	if vc.Extension.ProvisioningState != ProvisioningStateSucceeded {
		return &MismatchError{
			Field:    "provisioningState",
			Expected: ProvisioningStateSucceeded,
			Actual:   vc.Extension.ProvisioningState,
		}
	}

	vc.diagnosef("%s: extension provisioning state is %s", ProvisioningSucceeded, vc.Extension.ProvisioningState)
	return nil
}

func (v *Validator) checkDomainMatchesCloud(ctx context.Context, vc *ValidationContext) error {
	domain := strings.TrimSpace(vc.Extension.Configuration[DomainKey])

	if !strings.EqualFold(domain, v.env.LogAnalyticsDomain) {
		return &MismatchError{
			Field:    DomainKey,
			Expected: v.env.LogAnalyticsDomain,
			Actual:   domain,
			Guidance: fmt.Sprintf("the extension is configured for a different cloud than %s", v.env.ActualCloudName),
		}
	}

	vc.diagnosef("%s: log domain %s matches %s", DomainMatchesCloud, domain, v.env.ActualCloudName)
	return nil
}

func (v *Validator) checkWorkspaceResourceExists(ctx context.Context, vc *ValidationContext) error {
	workspaceID := strings.TrimSpace(vc.Extension.Configuration[WorkspaceResourceIDKey])

	id, err := resource.Parse(workspaceID)
	if err != nil || !id.IsProvider(resource.ProviderOperationalInsights) || !strings.EqualFold(id.ResourceType, "workspaces") {
		return &MismatchError{
			Field:    WorkspaceResourceIDKey,
			Expected: "a " + resource.ProviderOperationalInsights + "/workspaces resource ID",
			Actual:   workspaceID,
		}
	}

	if !strings.EqualFold(id.SubscriptionID, vc.ActiveSubscriptionID) {
		err = v.gw.SetActiveSubscription(ctx, id.SubscriptionID)
		if err != nil {
			return &ProviderFetchError{Op: "switching active subscription to " + id.SubscriptionID, Err: err}
		}

		vc.diagnosef("%s: switched active subscription from %s to %s", WorkspaceResourceExists, vc.ActiveSubscriptionID, id.SubscriptionID)
		vc.ActiveSubscriptionID = id.SubscriptionID
	}

	rs, err := v.gw.FetchResource(ctx, workspaceID)
	if err == nil && rs == nil {
		err = errEmptyResponse
	}
	if err != nil {
		return &ProviderFetchError{Op: "fetching workspace " + workspaceID, Err: err}
	}

	vc.Workspace = workspaceStateFromResource(*id, rs)
	vc.diagnosef("%s: workspace %s exists in %s", WorkspaceResourceExists, id.ResourceName, rs.Location)

	return nil
}

func (v *Validator) checkInsightsSolutionLinked(ctx context.Context, vc *ValidationContext) error {
	ws := vc.Workspace.ResourceID
	name := fmt.Sprintf("ContainerInsights(%s)", ws.ResourceName)

	resources, err := v.gw.ListResources(ctx, ws.ResourceGroup, name, SolutionResourceType)
	if err != nil {
		return &ProviderFetchError{Op: "listing solutions in resource group " + ws.ResourceGroup, Err: err}
	}

	if len(resources) == 0 {
		return &MismatchError{
			Field:    SolutionResourceType,
			Expected: name,
			Actual:   "",
			Guidance: "the Container Insights solution must be added to the workspace",
		}
	}

	vc.diagnosef("%s: solution %s is linked", InsightsSolutionLinked, resources[0].ID)
	return nil
}

func (v *Validator) checkIngestionNetworkAccessEnabled(ctx context.Context, vc *ValidationContext) error {
	return checkNetworkAccess(vc, IngestionNetworkAccessEnabled, "publicNetworkAccessForIngestion", vc.Workspace.PublicNetworkAccessIngestion)
}

func (v *Validator) checkQueryNetworkAccessEnabled(ctx context.Context, vc *ValidationContext) error {
	return checkNetworkAccess(vc, QueryNetworkAccessEnabled, "publicNetworkAccessForQuery", vc.Workspace.PublicNetworkAccessQuery)
}

func checkNetworkAccess(vc *ValidationContext, state State, field string, access NetworkAccess) error {
	if access == "" {
		return &MissingFieldError{Field: field}
	}

	if access != Enabled {
		return &MismatchError{
			Field:    field,
			Expected: string(Enabled),
			Actual:   string(access),
			Guidance: privateLinkGuidance,
		}
	}

	vc.diagnosef("%s: %s is %s", state, field, access)
	return nil
}

func (v *Validator) checkDailyQuotaWithinExpected(ctx context.Context, vc *ValidationContext) error {
	const field = "workspaceCapping.dailyQuotaGb"

	quota := vc.Workspace.DailyQuotaGb
	if quota == nil {
		return &MissingFieldError{Field: field}
	}

	if *quota != ExpectedDailyQuotaGb {
		return &MismatchError{
			Field:    field,
			Expected: formatQuota(ExpectedDailyQuotaGb),
			Actual:   formatQuota(*quota),
			Guidance: "a daily cap stops ingestion once reached, remove the cap or review it with the workspace owner",
		}
	}

	vc.diagnosef("%s: %s is %s", DailyQuotaWithinExpected, field, formatQuota(*quota))
	return nil
}

func formatQuota(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
