package onboarding

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azmon-diag/pkg/gateway"
	"github.com/Azure/azmon-diag/pkg/util/resource"
)

type NetworkAccess string

const (
	Enabled  NetworkAccess = "Enabled"
	Disabled NetworkAccess = "Disabled"
)

// WorkspaceState holds the workspace properties the checks inspect. Fields
// are zero when the control plane did not return them.
type WorkspaceState struct {
	ResourceID                   resource.Identifier
	PublicNetworkAccessIngestion NetworkAccess
	PublicNetworkAccessQuery     NetworkAccess
	DailyQuotaGb                 *float64
}

func workspaceStateFromResource(id resource.Identifier, rs *gateway.ResourceState) *WorkspaceState {
	ws := &WorkspaceState{
		ResourceID: id,
	}

	if s, ok := rs.Properties["publicNetworkAccessForIngestion"].(string); ok {
		ws.PublicNetworkAccessIngestion = NetworkAccess(s)
	}

	if s, ok := rs.Properties["publicNetworkAccessForQuery"].(string); ok {
		ws.PublicNetworkAccessQuery = NetworkAccess(s)
	}

	if capping, ok := rs.Properties["workspaceCapping"].(map[string]interface{}); ok {
		ws.DailyQuotaGb = number(capping["dailyQuotaGb"])
	}

	return ws
}

// number returns v as a float64 if it holds a JSON number.
func number(v interface{}) *float64 {
	var f float64

	switch v := v.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		var err error
		f, err = v.Float64()
		if err != nil {
			return nil
		}
	default:
		return nil
	}

	return &f
}
