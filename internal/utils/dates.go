// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDate is returned by ParseDate for values in neither accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// dateLayouts are tried in order after RFC 3339. The zone-less forms are what
// browser datetime-local inputs submit and are read as UTC.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses an RFC 3339 timestamp, a zone-less YYYY-MM-DDTHH:MM[:SS]
// local date-time or a YYYY-MM-DD date. Values without a zone are taken as
// UTC; a date-only value means midnight of that day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// ParseDateRange parses an optional inclusive range. The range is returned
// only when both bounds are non-empty; otherwise both results are nil.
func ParseDateRange(from, to string) (*time.Time, *time.Time, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, nil, nil
	}

	start, err := ParseDate(from)
	if err != nil {
		return nil, nil, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return nil, nil, err
	}

	return &start, &end, nil
}
