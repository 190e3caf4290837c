package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)
