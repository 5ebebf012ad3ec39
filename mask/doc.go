// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package mask selects fields from decoded JSON values using a compact filter
// language, similar in spirit to GraphQL field sets or "partial response"
// masks.
//
// Filter Syntax:
//
// A filter is a comma separated list of terms. Whitespace around terms is
// ignored.
//
//   - "a"       : keep field a and everything below it
//   - "a/b"     : keep field a, but only its field b
//   - "a(b,c)"  : keep field a, but only its fields b and c
//   - "*"       : keep every field not named by another term
//   - "*/id"    : keep only id from every field not named by another term
//   - "0(a)"    : on an array, keep only element 0, and only its field a
//
// Paths and groups can be combined and nested: "a(b/c(d,e),f)".
//
// Arrays:
//
// A filter without numeric keys applied to an array is applied to every
// element, so "items/id" works on a list of records. A filter with numeric
// keys addresses positions instead. The result is as long as one past the
// highest position kept and slots in between that were not kept hold
// Undefined, which encodes as null.
//
// Required Fields:
//
// FilterRequired and Mask also take a required filter. Every path it names
// must exist in the source or no result is produced.
//
// Malformed Filters:
//
// Parsing never fails. Unbalanced parentheses and stray characters produce a
// best-effort Spec rather than an error.
package mask
