// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the Beatfluencer API.
//
// Each invocation runs one command against the API through an
// [adapter.APIAdapter] and prints the result as indented JSON.
package client
