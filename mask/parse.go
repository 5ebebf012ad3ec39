// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package mask

import (
	"strings"

	"github.com/tfctl/fieldmask/internal/log"
)

// Parse turns a filter string into a Spec. An empty or all-whitespace string
// yields a nil Spec, which selects everything.
//
// Parsing never fails. Malformed input is resolved deterministically: a stray
// ')' never takes the nesting depth below zero, a '(' without a matching ')'
// groups the rest of its term, and a term with nothing before its first '/' or
// '(' is kept whole as a plain key.
func Parse(filter string) Spec {
	if strings.TrimSpace(filter) == "" {
		return nil
	}

	spec := Spec{}
	for _, term := range splitTerms(filter) {
		key, rest, nested := splitTerm(term)
		if !nested {
			spec[key] = nil
			log.Tracef("leaf parsed: key=%s", key)
			continue
		}
		spec[key] = Parse(rest)
		log.Tracef("group parsed: key=%s, rest=%s", key, rest)
	}

	return spec
}

// splitTerms splits on commas outside any parenthesis group and returns the
// trimmed, non-empty terms in input order.
func splitTerms(filter string) []string {
	var (
		terms []string
		depth int
		start int
	)

	emit := func(end int) {
		if term := strings.TrimSpace(filter[start:end]); term != "" {
			terms = append(terms, term)
		}
		start = end + 1
	}

	for i := 0; i < len(filter); i++ {
		switch filter[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				emit(i)
			}
		}
	}
	emit(len(filter))

	return terms
}

// splitTerm classifies a single term by its first '/' or '('. Nothing can
// open a group before that point, so it is always at depth zero. For a path
// term the rest is everything after the slash; for a group term it is the
// text between the opening '(' and the term's last ')'.
func splitTerm(term string) (key string, rest string, nested bool) {
	i := strings.IndexAny(term, "/(")
	if i < 0 {
		return term, "", false
	}

	key = strings.TrimSpace(term[:i])
	if key == "" {
		return term, "", false
	}

	if term[i] == '/' {
		return key, term[i+1:], true
	}

	end := strings.LastIndexByte(term, ')')
	if end < i {
		return key, term[i+1:], true
	}
	return key, term[i+1 : end], true
}
