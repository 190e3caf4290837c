package gateway

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azmon-diag/pkg/$GOPACKAGE Interface

import (
	"context"
)

// Interface is the validator's view of the cloud control plane. Every call
// either returns structured data or fails; implementations do not retry
// beyond what their transport does.
type Interface interface {
	// FetchExtension returns the monitoring extension installed on the
	// cluster.
	FetchExtension(ctx context.Context, clusterID string) (*ExtensionState, error)
	FetchResource(ctx context.Context, resourceID string) (*ResourceState, error)
	// SetActiveSubscription scopes subsequent list calls to subscriptionID.
	SetActiveSubscription(ctx context.Context, subscriptionID string) error
	ActiveSubscription() string
	// ListResources lists resources in group of the active subscription
	// matching name and resourceType. Empty name or resourceType match
	// everything.
	ListResources(ctx context.Context, group, name, resourceType string) ([]Resource, error)
}
