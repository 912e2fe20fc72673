// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements attendctl, the command-line client of the
// attendance server.
//
// Every command builds a [adapter.ServerAdapter] from the layered client
// configuration (defaults, .env, ADAPTER_* environment, then flags), calls
// the server once and prints the JSON result.
package client
