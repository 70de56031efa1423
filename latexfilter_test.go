package nbexport

import (
	"errors"
	"testing"
)

func TestRemoveMathSpace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "trims inner space",
			input:    "before $ x^2 $ after",
			expected: "before $x^2$ after",
		},
		{
			name:     "already tight",
			input:    "$x$",
			expected: "$x$",
		},
		{
			name:     "multiple regions",
			input:    "$ a $ and $ b $",
			expected: "$a$ and $b$",
		},
		{
			name:     "escaped dollar is not math",
			input:    `costs \$5 total`,
			expected: `costs \$5 total`,
		},
		{
			name:     "region spanning two blank lines is cancelled",
			input:    "$ a\n\nb $",
			expected: "$ a\n\nb $",
		},
		{
			name:     "no math at all",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "unterminated region passes through",
			input:    "text $ x",
			expected: "text $ x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveMathSpace(tt.input); got != tt.expected {
				t.Errorf("RemoveMathSpace(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMarkdownToLaTeXEmpty(t *testing.T) {
	if _, err := MarkdownToLaTeX(""); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("MarkdownToLaTeX(\"\") error = %v, want ErrEmptyContent", err)
	}
}
