package main

import (
	"strings"
	"time"
)

const DateLayout = "02.01.2006"

// ParseDate parses a strict DD.MM.YYYY date. Impossible calendar dates
// (31.02.2020, 00.01.2020) and trailing text are rejected.
func ParseDate(s string) (time.Time, error) {
	tm, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &MalformedDateError{Value: s}
	}
	return tm, nil
}

// ParseDateRange parses either "DD.MM.YYYY" (lower bound only) or
// "DD.MM.YYYY-DD.MM.YYYY" (both bounds, inclusive).
func ParseDateRange(s string) (from, to *time.Time, err error) {
	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return nil, nil, &MalformedDateError{Value: s}
	}
	f, err := ParseDate(parts[0])
	if err != nil {
		return nil, nil, err
	}
	from = &f
	if len(parts) == 2 {
		t, err := ParseDate(parts[1])
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
