// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Core concepts:
//   - Validator: generic interface to validate a request value. Supports
//     optional field-level scoping for targeted validation.
//
// Validators are injected into services, which call Validate before any
// store access. Failures are returned as the sentinel errors of this package.
package validators

import "context"

// Validator defines a generic validation interface for request values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
