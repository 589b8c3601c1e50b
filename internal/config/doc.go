// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the go-vinted server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Legacy environment variable names
//  4. Environment variables (a .env file is loaded first when present)
//  5. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
