// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// MaxErrorBodySize bounds how much of an HTTP error response body is
// read for diagnostic messages. Error pages beyond this are truncated.
const MaxErrorBodySize int64 = 64 << 10

// DownloadFile performs a single GET of url and streams the response
// body to path, creating or truncating the file. The returned Status is
// the server's status code whenever a response was received, including
// on error. There are no retries; cancellation comes from ctx.
//
// A non-2xx response is an error and leaves no file behind. The body is
// written to a temporary file in the destination directory and renamed
// into place on success, so a partially transferred download never
// replaces an existing file.
func DownloadFile(ctx context.Context, url, path string) (Status, error) {
	return download(ctx, http.DefaultClient, url, path)
}

// DownloadFileClient is DownloadFile with a caller-supplied client, for
// custom timeouts and transports.
func DownloadFileClient(ctx context.Context, client *http.Client, url, path string) (Status, error) {
	return download(ctx, client, url, path)
}

func download(ctx context.Context, client *http.Client, url, path string) (Status, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request for %s: %w", url, err)
	}

	response, err := client.Do(request)
	if err != nil {
		return 0, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer response.Body.Close()

	status := Status(response.StatusCode)
	if !status.IsSuccess() {
		return status, fmt.Errorf("downloading %s: server returned %s: %s",
			url, status, errorBody(response.Body))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return status, fmt.Errorf("creating download file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, response.Body); err != nil {
		tmp.Close()
		return status, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return status, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return status, fmt.Errorf("finalizing %s: %w", path, err)
	}
	return status, nil
}

// errorBody reads a bounded prefix of an error response body for use in
// error messages. Read failures yield whatever prefix arrived.
func errorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxErrorBodySize))
	if len(data) == 0 {
		return "(empty body)"
	}
	return string(data)
}
