// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired is returned when a request fails with 401 and the
// single permitted refresh attempt could not produce a usable token.
// The stored token has been cleared by the time callers see this.
var ErrAuthRequired = errors.New("authentication required")

// HTTPError is an error response from the backend: the request reached
// the server and the server answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	// Message is the "error" field of the JSON error body, when the
	// backend sent one.
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NetworkError is a transport failure: the request never produced an
// HTTP response. Unlike an authentication failure it never clears the
// stored token — a dead network says nothing about credential validity.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error - please check your connection"
}

func (e *NetworkError) Unwrap() error { return e.Err }
