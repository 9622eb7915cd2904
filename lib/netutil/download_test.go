// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusPredicates(t *testing.T) {
	cases := []struct {
		status  Status
		success bool
		client  bool
		server  bool
		isError bool
	}{
		{200, true, false, false, false},
		{204, true, false, false, false},
		{301, false, false, false, false},
		{404, false, true, false, true},
		{503, false, false, true, true},
	}
	for _, c := range cases {
		if c.status.IsSuccess() != c.success || c.status.IsClientError() != c.client ||
			c.status.IsServerError() != c.server || c.status.IsError() != c.isError {
			t.Errorf("predicates wrong for %d", c.status)
		}
	}
	if !Status(200).IsOK() || Status(201).IsOK() {
		t.Error("IsOK wrong")
	}
	if Status(0).String() != "no response" {
		t.Errorf("zero status String() = %q", Status(0).String())
	}
}

func TestDownloadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload-bytes"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "asset.bin")
	status, err := DownloadFile(context.Background(), server.URL, path)
	if err != nil {
		t.Fatalf("DownloadFile failed: %v", err)
	}
	if !status.IsOK() {
		t.Errorf("status = %v", status)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "payload-bytes" {
		t.Errorf("file contents = %q", data)
	}
}

func TestDownloadFileClient(t *testing.T) {
	// A TLS server with a self-signed certificate is only reachable
	// through the server's own client.
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secure-bytes"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "secure.bin")
	status, err := DownloadFileClient(context.Background(), server.Client(), server.URL, path)
	if err != nil {
		t.Fatalf("DownloadFileClient failed: %v", err)
	}
	if !status.IsOK() {
		t.Errorf("status = %v", status)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "secure-bytes" {
		t.Errorf("file contents = %q", data)
	}
}

func TestDownloadFileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such asset", http.StatusNotFound)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "missing.bin")
	status, err := DownloadFile(context.Background(), server.URL, path)
	if err == nil {
		t.Fatal("404 download succeeded")
	}
	if status != 404 {
		t.Errorf("status = %v, want 404", status)
	}
	if !strings.Contains(err.Error(), "no such asset") {
		t.Errorf("error lacks body excerpt: %v", err)
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("failed download left a file behind")
	}
}

func TestDownloadFileDoesNotClobberOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "existing.bin")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := DownloadFile(context.Background(), server.URL, path); err == nil {
		t.Fatal("500 download succeeded")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("existing file replaced: %q", data)
	}
}

func TestDownloadFileUnreachable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.bin")
	status, err := DownloadFile(context.Background(), "http://127.0.0.1:1/nothing", path)
	if err == nil {
		t.Fatal("unreachable download succeeded")
	}
	if status != 0 {
		t.Errorf("status = %v, want 0 (no response)", status)
	}
}

func TestDownloadFileCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "cancelled.bin")
	if _, err := DownloadFile(ctx, server.URL, path); err == nil {
		t.Fatal("cancelled download succeeded")
	}
}
