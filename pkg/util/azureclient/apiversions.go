package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
)

// DefaultAPIVersion is used for resource types with no more specific entry.
const DefaultAPIVersion = "2021-04-01"

// keys must be lower case
var apiVersions = map[string]string{
	"microsoft.containerservice":                   "2023-08-01",
	"microsoft.kubernetes":                         "2024-01-01",
	"microsoft.kubernetesconfiguration/extensions": "2022-11-01",
	"microsoft.operationalinsights":                "2022-10-01",
	"microsoft.operationsmanagement":               "2015-11-01-preview",
}

// APIVersion gets the APIVersion from a full resource type
func APIVersion(typ string) string {
	t := strings.ToLower(typ)

	for {
		if apiVersion, ok := apiVersions[t]; ok {
			return apiVersion
		}

		i := strings.LastIndexByte(t, '/')
		if i == -1 {
			break
		}

		t = t[:i]
	}

	return DefaultAPIVersion
}
