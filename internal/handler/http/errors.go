// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// errInvalidRequestBody is returned when a request body cannot be
	// decoded as the expected JSON document.
	errInvalidRequestBody = errors.New("invalid JSON request body")

	// errRouteNotFound is written for requests that match no registered
	// route.
	errRouteNotFound = errors.New("route not found")

	// errMethodNotAllowed is written for requests that match a registered
	// route with an unsupported HTTP method.
	errMethodNotAllowed = errors.New("method not allowed")
)
