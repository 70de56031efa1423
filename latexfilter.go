package nbexport

import "strings"

// RemoveMathSpace trims the whitespace between enclosing $ symbols and
// the LaTeX math they contain, so "$ x $" becomes "$x$".
//
// A $ not preceded by a backslash opens a math region. A region spanning
// more than two lines is abandoned and its text passes through unchanged.
func RemoveMathSpace(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	withinMath := false
	mathStart := 0
	mathLines := 0
	var last rune
	skip := false

	for i, ch := range text {
		switch {
		case ch == '$' && last != '\\':
			if withinMath {
				// Close the region with trimmed contents.
				withinMath = false
				skip = true
				out.WriteByte('$')
				out.WriteString(strings.TrimSpace(text[mathStart+1 : i]))
				out.WriteByte('$')
			} else {
				withinMath = true
				mathStart = i
				mathLines = 0
			}
		case ch == '\n' && withinMath:
			mathLines++
			if mathLines > 1 {
				// Two line breaks cancel the math region.
				withinMath = false
				out.WriteString(text[mathStart:i])
			}
		}

		last = ch
		if !withinMath && !skip {
			out.WriteRune(ch)
		}
		skip = false
	}

	// Unterminated math region passes through unchanged.
	if withinMath {
		out.WriteString(text[mathStart:])
	}

	return out.String()
}

// MarkdownToLaTeX converts a markdown string to LaTeX via pandoc.
// Returns an error if pandoc is not installed.
func MarkdownToLaTeX(source string) (string, error) {
	return ConvertPandoc(source, "markdown", "latex")
}
