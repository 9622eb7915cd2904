// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package java locates installed Java runtimes by walking well-known
// directories and the PATH.
//
// Discovery is heuristic, not authoritative: an installation is any
// directory with a bin/java executable (bin/java.exe on Windows), its
// version label is the directory name, the vendor is inferred from
// keywords in the path, and JDK-versus-JRE is decided by the directory
// name and then by the presence of javac. The scanner never executes
// the runtime it finds.
//
// [SearchQuick] covers the standard installation roots one level deep
// plus the PATH. [SearchDeep] adds user directories and unpack targets
// (/opt, ~/Downloads, sdkman candidates) and recurses into them, with a
// depth cap so a home-directory scan stays bounded. Both deduplicate by
// installation path and return results sorted by path.
//
// Each [Info] additionally carries a BLAKE3 digest of the java
// executable, which identifies the binary itself, so the same build found
// through two locations hashes identically even though the paths
// differ. Unreadable directories and executables are skipped without
// error; a scan's result is always whatever was reachable.
package java
