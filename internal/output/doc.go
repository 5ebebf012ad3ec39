// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output encodes filtered documents and renders the supporting views
// (diffs, statistics and spec tables) that commands write.
package output
