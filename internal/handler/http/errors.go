// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoCredentials is returned by NewHandler when the basic auth user or
	// password is empty. The mirror endpoint is never served without auth.
	ErrNoCredentials = errors.New("mirror user and password are required")

	// ErrUnauthorized is logged when a request carries missing or wrong
	// basic auth credentials.
	ErrUnauthorized = errors.New("invalid mirror credentials")
)
