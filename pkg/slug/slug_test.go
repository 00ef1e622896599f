// Copyright (c) 2026 Melody. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chorogi/melody/pkg/slug"
)

/*
TestFrom verifies the slug pipeline across accents, punctuation, and scripts
that have no ASCII decomposition.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Spring Day", "spring-day"},
		{"accents", "Café del Mar", "cafe-del-mar"},
		{"punctuation", "Don't Stop -- Now!", "don-t-stop-now"},
		{"numbers", "Track 01 (Remix)", "track-01-remix"},
		{"leading_trailing", "  --hello--  ", "hello"},
		{"non_latin_only", "봄날", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
