// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides the launcher's HTTP download plumbing.
//
// [DownloadFile] is a single-call GET-to-file transfer: it streams the
// response body to a temporary file in the destination directory and
// renames it into place, so a failed or cancelled transfer never
// clobbers an existing file. There are no retries and no resume; the
// caller's context is the only cancellation mechanism. Non-2xx
// responses fail with a bounded excerpt of the error body in the
// message.
//
// [Status] classifies HTTP status codes (IsSuccess, IsClientError,
// and so on) and is returned alongside the error so callers can branch
// on the server's verdict without string matching.
//
// This package depends on no other CNT packages.
package netutil
