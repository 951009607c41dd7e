package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello, World!", "hello-world"},
		{"Señor Developer", "seor-developer"},
		{"already-slugged", "already-slugged"},
		{"Under_Score and Space", "under-score-and-space"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input), "failed for input: %s", tt.input)
	}
}

func TestMakePlainText(t *testing.T) {
	tests := []struct {
		title    string
		input    string
		expected string
	}{
		{
			title:    "Plain Text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			title:    "HTML Tags",
			input:    "<p>Hello, <em>World</em>!</p>",
			expected: "Hello, World!",
		},
		{
			title:    "Entities",
			input:    "Fish &amp; Chips",
			expected: "Fish & Chips",
		},
		{
			title:    "Script",
			input:    "Before<script>alert(1)</script> After",
			expected: "Before After",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, makePlainText(tt.input), "failed for title: %s", tt.title)
	}
}

func TestTruncateStringWithEllipsis(t *testing.T) {
	assert.Equal(t, "Hello", truncateStringWithEllipsis("Hello", 10))
	assert.Equal(t, "Hel…", truncateStringWithEllipsis("Hello", 3))
	assert.Equal(t, "…", truncateStringWithEllipsis("Hello", 0))
}
