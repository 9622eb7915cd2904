// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import "fmt"

// Status is an HTTP status code with classification predicates. The
// zero value means no response was received.
type Status int

// IsInfo reports a 1xx status.
func (s Status) IsInfo() bool { return s >= 100 && s < 200 }

// IsSuccess reports a 2xx status.
func (s Status) IsSuccess() bool { return s >= 200 && s < 300 }

// IsRedirect reports a 3xx status.
func (s Status) IsRedirect() bool { return s >= 300 && s < 400 }

// IsClientError reports a 4xx status.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError reports a 5xx status.
func (s Status) IsServerError() bool { return s >= 500 && s < 600 }

// IsError reports any 4xx or 5xx status.
func (s Status) IsError() bool { return s >= 400 }

// IsOK reports exactly 200.
func (s Status) IsOK() bool { return s == 200 }

// String returns the numeric code, or "no response" for the zero value.
func (s Status) String() string {
	if s == 0 {
		return "no response"
	}
	return fmt.Sprintf("%d", int(s))
}
