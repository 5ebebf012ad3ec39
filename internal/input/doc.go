// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package input reads documents from stdin, local files or S3 and decodes
// them into values the mask package can filter.
package input
