// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

import (
	"errors"

	"github.com/tfctl/fieldmask/internal/log"
)

// ErrNotFound is returned by callers that surface a failed required-fields
// check as an error. The functions in this package report it with a false
// ok value instead.
var ErrNotFound = errors.New("required fields not found")

// Filter parses filter and applies it to source.
func Filter(filter string, source any) any {
	return Apply(Parse(filter), source)
}

// FilterRequired applies filter to source if source satisfies required. The
// ok result is false, and the value nil, when it does not. An empty required
// string is always satisfied.
func FilterRequired(filter string, source any, required string) (any, bool) {
	return Compile(filter, required).Apply(source)
}

// Mask is a compiled filter and required spec pair. It is read-only once
// built and may be shared between goroutines.
type Mask struct {
	Filter   Spec
	Required Spec
}

// Compile parses filter and required once for reuse across many sources.
func Compile(filter string, required string) *Mask {
	m := &Mask{
		Filter:   Parse(filter),
		Required: Parse(required),
	}
	log.Debugf("mask compiled: filter=%s, required=%s", m.Filter, m.Required)
	return m
}

// Apply checks the required spec against source and, if satisfied, returns
// the filtered copy.
func (m *Mask) Apply(source any) (any, bool) {
	if !m.Check(source) {
		log.Debugf("required check failed: required=%s", m.Required)
		return nil, false
	}
	return Apply(m.Filter, source), true
}

// Check reports whether source satisfies the required spec.
func (m *Mask) Check(source any) bool {
	return Satisfied(m.Required, source)
}
