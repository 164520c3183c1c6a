// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks resolved portal configurations before they are
// served.
//
// A [Validator] accepts an arbitrary value and an optional list of field
// names. When no fields are given every rule known for the value's type is
// applied; otherwise only the named rules run.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
