package nbexport

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no escapes", input: "plain text", expected: "plain text"},
		{name: "simple color", input: "\x1b[0mhello\x1b[0m", expected: "hello"},
		{name: "bold red", input: "\x1b[1;31mError\x1b[0m: boom", expected: "Error: boom"},
		{name: "traceback style", input: "\x1b[0;32m   1\x1b[0m x = 1", expected: "   1 x = 1"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.expected {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripDollars(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$x^2$", "x^2"},
		{"$$display$$", "display"},
		{"no dollars", "no dollars"},
		{"$only leading", "only leading"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripDollars(tt.input); got != tt.expected {
			t.Errorf("StripDollars(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStripFilesPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "src with double quotes",
			input:    `<img src="files/plot.png"/>`,
			expected: `<img src="plot.png"/>`,
		},
		{
			name:     "href with single quotes",
			input:    `<a href='files/data.csv'>data</a>`,
			expected: `<a href='data.csv'>data</a>`,
		},
		{
			name:     "unquoted attribute",
			input:    `<img src=files/p.png>`,
			expected: `<img src=p.png>`,
		},
		{
			name:     "real URL untouched",
			input:    `<a href="https://example.com/files/x">x</a>`,
			expected: `<a href="https://example.com/files/x">x</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFilesPrefix(tt.input); got != tt.expected {
				t.Errorf("StripFilesPrefix(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCommentOut(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		marker   string
		expected string
	}{
		{name: "single line default marker", input: "x = 1", marker: "", expected: "# x = 1"},
		{name: "multi line", input: "a\nb", marker: "# ", expected: "# a\n# b"},
		{name: "custom marker", input: "line", marker: "// ", expected: "// line"},
		{name: "empty input", input: "", marker: "# ", expected: "# "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommentOut(tt.input, tt.marker); got != tt.expected {
				t.Errorf("CommentOut(%q, %q) = %q, want %q", tt.input, tt.marker, got, tt.expected)
			}
		})
	}
}

func TestGetLines(t *testing.T) {
	text := "a\nb\nc\nd"

	tests := []struct {
		name       string
		start, end int
		expected   string
	}{
		{name: "middle slice", start: 1, end: 3, expected: "b\nc"},
		{name: "from start", start: 0, end: 2, expected: "a\nb"},
		{name: "negative start counts from end", start: -2, end: 4, expected: "c\nd"},
		{name: "negative end", start: 0, end: -1, expected: "a\nb\nc"},
		{name: "out of range clamps", start: 0, end: 100, expected: text},
		{name: "inverted range is empty", start: 3, end: 1, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetLines(text, tt.start, tt.end); got != tt.expected {
				t.Errorf("GetLines(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "short line unchanged",
			input:    "hello world",
			width:    80,
			expected: "hello world",
		},
		{
			name:     "wraps without splitting words",
			input:    "one two three four",
			width:    9,
			expected: "one two\nthree\nfour",
		},
		{
			name:     "preserves existing breaks",
			input:    "a\nb",
			width:    10,
			expected: "a\nb",
		},
		{
			name:     "word longer than width kept whole",
			input:    "supercalifragilistic",
			width:    5,
			expected: "supercalifragilistic",
		},
		{
			name:     "zero width is a no-op",
			input:    "anything at all",
			width:    0,
			expected: "anything at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.input, tt.width); got != tt.expected {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}
