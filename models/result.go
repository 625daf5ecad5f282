// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Result is the status code delivered to publisher callbacks.
type Result int

const (
	ResultOk Result = iota
	ResultServiceUnavailable
	ResultInternalError
	ResultInvalidPayload
	ResultNotRunning
	ResultTransportError
)

var resultNames = map[Result]string{
	ResultOk:                 "Ok",
	ResultServiceUnavailable: "ServiceUnavailable",
	ResultInternalError:      "InternalError",
	ResultInvalidPayload:     "InvalidPayload",
	ResultNotRunning:         "NotRunning",
	ResultTransportError:     "TransportError",
}

// String returns the result name, e.g. "Ok".
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText encodes the result by name so that API payloads stay readable.
func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a result name produced by MarshalText.
func (r *Result) UnmarshalText(text []byte) error {
	for code, name := range resultNames {
		if name == string(text) {
			*r = code
			return nil
		}
	}
	return fmt.Errorf("unknown result %q", text)
}
