package gateway

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ExtensionState is the state of a cluster extension as reported by the
// control plane.
type ExtensionState struct {
	ProvisioningState string
	Configuration     map[string]string
}

// ResourceState is a single resource with its raw properties.
type ResourceState struct {
	ID         string
	Name       string
	Type       string
	Location   string
	Properties map[string]interface{}
}

// Resource is an item returned by ListResources.
type Resource struct {
	ID   string
	Name string
	Type string
}
