// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit provides fixed-window request limiters keyed by an
// arbitrary string (the student ID for attendance submissions).
//
// [RedisLimiter] shares its counters between server replicas. [MemoryLimiter]
// keeps them in process and is used when no Redis address is configured.
package ratelimit
