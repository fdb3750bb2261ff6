// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks cash card requests before they reach the
// store.
//
// A Validator accepts any supported model and, optionally, the names of the
// fields to check. Services receive a Validator by injection, which keeps the
// rules out of the transport and storage layers.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
