// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the attendance server.
//
// It owns the server lifecycle: startup, and graceful shutdown once the
// run context is cancelled.
package server
