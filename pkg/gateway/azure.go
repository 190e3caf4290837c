package gateway

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azmon-diag/pkg/util/azureclient"
	"github.com/Azure/azmon-diag/pkg/util/resource"
	"github.com/Azure/azmon-diag/pkg/util/uuid"
)

const (
	// ExtensionName is the name of the container monitoring cluster
	// extension.
	ExtensionName = "azuremonitor-containers"

	extensionType = resource.ProviderKubernetesConfiguration + "/extensions"
)

type azureGateway struct {
	log         *logrus.Entry
	env         *azureclient.CloudEnvironment
	credential  azcore.TokenCredential
	transporter policy.Transporter

	mu             sync.RWMutex
	subscriptionID string
	resources      *armresources.Client
}

var _ Interface = &azureGateway{}

// NewAzure returns an Interface backed by Azure Resource Manager, using
// DefaultAzureCredential for authentication.
func NewAzure(log *logrus.Entry, env *azureclient.CloudEnvironment, subscriptionID string) (Interface, error) {
	credential, err := azidentity.NewDefaultAzureCredential(env.DefaultAzureCredentialOptions())
	if err != nil {
		return nil, err
	}

	return NewAzureWithTransport(log, env, subscriptionID, credential, nil)
}

// NewAzureWithTransport is NewAzure with an explicit credential and
// transport, useful for testing with fakes
func NewAzureWithTransport(log *logrus.Entry, env *azureclient.CloudEnvironment, subscriptionID string, credential azcore.TokenCredential, transporter policy.Transporter) (Interface, error) {
	g := &azureGateway{
		log:         log,
		env:         env,
		credential:  credential,
		transporter: transporter,
	}

	err := g.setSubscription(subscriptionID)
	if err != nil {
		return nil, err
	}

	return g, nil
}

func (g *azureGateway) setSubscription(subscriptionID string) error {
	if !uuid.IsValid(subscriptionID) {
		return fmt.Errorf("invalid subscription ID %q", subscriptionID)
	}

	client, err := armresources.NewClient(subscriptionID, g.credential, g.env.ArmClientOptions(g.log, g.transporter))
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.subscriptionID = subscriptionID
	g.resources = client

	return nil
}

func (g *azureGateway) client() *armresources.Client {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resources
}

func (g *azureGateway) ActiveSubscription() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.subscriptionID
}

func (g *azureGateway) SetActiveSubscription(ctx context.Context, subscriptionID string) error {
	previous := g.ActiveSubscription()
	if strings.EqualFold(previous, subscriptionID) {
		return nil
	}

	err := g.setSubscription(subscriptionID)
	if err != nil {
		return errors.Wrapf(err, "switching active subscription to %s", subscriptionID)
	}

	g.log.Infof("switched active subscription from %s to %s", previous, subscriptionID)
	return nil
}

// ExtensionID returns the resource ID of the monitoring extension on the
// cluster.
func ExtensionID(clusterID string) string {
	return strings.TrimSuffix(clusterID, "/") + "/providers/" + extensionType + "/" + ExtensionName
}

func (g *azureGateway) FetchExtension(ctx context.Context, clusterID string) (*ExtensionState, error) {
	id := ExtensionID(clusterID)

	r, err := g.getByID(ctx, id, extensionType)
	if err != nil {
		return nil, err
	}

	props, err := properties(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding extension %s", id)
	}

	es := &ExtensionState{
		Configuration: map[string]string{},
	}

	if ps, ok := props["provisioningState"].(string); ok {
		es.ProvisioningState = ps
	}

	if settings, ok := props["configurationSettings"].(map[string]interface{}); ok {
		for k, v := range settings {
			switch v := v.(type) {
			case nil:
			case string:
				es.Configuration[k] = v
			default:
				es.Configuration[k] = fmt.Sprint(v)
			}
		}
	}

	return es, nil
}

func (g *azureGateway) FetchResource(ctx context.Context, resourceID string) (*ResourceState, error) {
	r, err := g.getByID(ctx, resourceID, "")
	if err != nil {
		return nil, err
	}

	props, err := properties(r)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding resource %s", resourceID)
	}

	return &ResourceState{
		ID:         stringValue(r.ID),
		Name:       stringValue(r.Name),
		Type:       stringValue(r.Type),
		Location:   stringValue(r.Location),
		Properties: props,
	}, nil
}

func (g *azureGateway) getByID(ctx context.Context, resourceID, typ string) (*armresources.GenericResource, error) {
	if typ == "" {
		r, err := resource.Parse(resourceID)
		if err != nil {
			return nil, err
		}
		typ = r.Provider + "/" + r.ResourceType
	}

	resp, err := g.client().GetByID(ctx, resourceID, azureclient.APIVersion(typ), nil)
	if azureclient.IsNotFoundError(err) {
		return nil, errors.Wrapf(err, "resource %s not found", resourceID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching resource %s", resourceID)
	}

	return &resp.GenericResource, nil
}

func (g *azureGateway) ListResources(ctx context.Context, group, name, resourceType string) ([]Resource, error) {
	options := &armresources.ClientListByResourceGroupOptions{}
	if filter := listFilter(name, resourceType); filter != "" {
		options.Filter = to.Ptr(filter)
	}

	var resources []Resource

	pager := g.client().NewListByResourceGroupPager(group, options)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "listing resources in resource group %s", group)
		}

		for _, r := range page.Value {
			if r == nil {
				continue
			}
			resources = append(resources, Resource{
				ID:   stringValue(r.ID),
				Name: stringValue(r.Name),
				Type: stringValue(r.Type),
			})
		}
	}

	return resources, nil
}

func listFilter(name, resourceType string) string {
	var clauses []string
	if name != "" {
		clauses = append(clauses, fmt.Sprintf("name eq '%s'", escapeODataString(name)))
	}
	if resourceType != "" {
		clauses = append(clauses, fmt.Sprintf("resourceType eq '%s'", escapeODataString(resourceType)))
	}
	return strings.Join(clauses, " and ")
}

func escapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func properties(r *armresources.GenericResource) (map[string]interface{}, error) {
	switch p := r.Properties.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return p, nil
	default:
		return nil, fmt.Errorf("unexpected properties type %T", r.Properties)
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
