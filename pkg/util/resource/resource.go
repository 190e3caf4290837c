package resource

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/go-autorest/autorest/azure"
)

// Provider namespaces of the resources the diagnostics inspect.
const (
	ProviderKubernetes              = "Microsoft.Kubernetes"
	ProviderContainerService        = "Microsoft.ContainerService"
	ProviderOperationalInsights     = "Microsoft.OperationalInsights"
	ProviderOperationsManagement    = "Microsoft.OperationsManagement"
	ProviderKubernetesConfiguration = "Microsoft.KubernetesConfiguration"
)

var knownProviders = []string{
	ProviderKubernetes,
	ProviderContainerService,
	ProviderOperationalInsights,
	ProviderOperationsManagement,
	ProviderKubernetesConfiguration,
}

// Identifier is a decomposed, fully qualified resource ID.
type Identifier struct {
	SubscriptionID string
	ResourceGroup  string
	Provider       string
	ResourceType   string
	ResourceName   string
}

// Parse decomposes resourceID. The provider namespace must be one of the
// known namespaces (compared case-insensitively) and every field must be set.
func Parse(resourceID string) (*Identifier, error) {
	r, err := azure.ParseResourceID(resourceID)
	if err != nil {
		return nil, err
	}

	var provider string
	for _, p := range knownProviders {
		if strings.EqualFold(p, r.Provider) {
			provider = r.Provider
			break
		}
	}
	if provider == "" {
		return nil, fmt.Errorf("resource %q has unsupported provider namespace %q", resourceID, r.Provider)
	}

	id := &Identifier{
		SubscriptionID: r.SubscriptionID,
		ResourceGroup:  r.ResourceGroup,
		Provider:       provider,
		ResourceType:   r.ResourceType,
		ResourceName:   r.ResourceName,
	}

	for name, v := range map[string]string{
		"subscription":   id.SubscriptionID,
		"resource group": id.ResourceGroup,
		"resource type":  id.ResourceType,
		"resource name":  id.ResourceName,
	} {
		if v == "" {
			return nil, fmt.Errorf("resource %q has empty %s", resourceID, name)
		}
	}

	return id, nil
}

// String returns the canonical resource ID.
func (id Identifier) String() string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s", id.SubscriptionID, id.ResourceGroup, id.Provider, id.ResourceType, id.ResourceName)
}

// IsProvider reports whether the identifier belongs to the given namespace.
func (id Identifier) IsProvider(provider string) bool {
	return strings.EqualFold(id.Provider, provider)
}
