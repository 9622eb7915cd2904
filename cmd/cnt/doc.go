// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Cnt is the unified CLI for CNT configuration files and game
// instances. It provides subcommands for reading and editing
// configuration files (config), format conversion (convert), binary
// archiving (snapshot), instance directory management (instance),
// Java runtime discovery (java), and HTTP downloads (download).
package main
