// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package textnorm folds arbitrary Unicode strings into a plain ASCII-ish
// search form.
//
// # Usage
//
// Catalogue searches should match "Padme" against "Padmé". This package
// handles normalization and accent removal so both sides of a comparison
// can be folded to the same representation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts an arbitrary Unicode string into a lowercase, accent-free form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase and trims surrounding whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, err := transform.String(t, s)
	if err != nil {
		// Fold is best-effort; an untransformable string is searched verbatim.
		result = s
	}

	return strings.ToLower(strings.TrimSpace(result))
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
