// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

// Package instance manages game instance directories. An instance is
// a directory holding an instance.cnt descriptor with the instance
// name and description; everything else in the directory belongs to
// the installation itself.
//
// Key exports:
//
//   - Instance: the descriptor with its on-disk location.
//   - Create, Load, List: directory lifecycle.
//   - Instance.Save: rewrite the descriptor.
//
// This package depends only on the CNT config package.
package instance
