// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starchive/starchive/pkg/textnorm"
)

/*
TestFold asserts accent stripping, case folding, and whitespace trimming so
that search terms and stored names compare on the same form.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain ascii", in: "Tatooine", expected: "tatooine"},
		{name: "acute accent", in: "Padmé", expected: "padme"},
		{name: "mixed accents", in: "Théâtre Français", expected: "theatre francais"},
		{name: "surrounding whitespace", in: "  Leia  ", expected: "leia"},
		{name: "already folded", in: "chewbacca", expected: "chewbacca"},
		{name: "empty", in: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, textnorm.Fold(test.in))
		})
	}
}

func TestFold_Symmetry(t *testing.T) {
	assert.Equal(t, textnorm.Fold("PADMÉ"), textnorm.Fold("padme"))
}
