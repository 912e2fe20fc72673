// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the attendance server.
//
// It exposes route wiring, request handlers and middleware of the REST API.
// Authentication, role guards, request tracing, access logging, metrics and
// rate limiting of attendance submissions are handled in this package before
// requests are delegated to the service layer. Every error response has the
// shape {"message": string}.
package http
