package nbexport

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for output text filters.
var (
	// ANSI color escape sequences as emitted by IPython kernels.
	ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	// Fake "files/" URL prefixes left by the notebook front end.
	filesURLPrefix = regexp.MustCompile(`(src|href)=(['"]?)files/`)
)

// StripANSI removes ANSI color escape sequences from kernel output.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// StripDollars trims dollar symbols from both ends of a math expression.
func StripDollars(s string) string {
	return strings.Trim(s, "$")
}

// StripFilesPrefix rewrites src="files/..." and href="files/..."
// references so they resolve relative to the document.
func StripFilesPrefix(s string) string {
	return filesURLPrefix.ReplaceAllString(s, "$1=$2")
}

// CommentOut prefixes every line with a comment marker, turning code
// into a comment block.
func CommentOut(s, marker string) string {
	if marker == "" {
		marker = "# "
	}
	return marker + strings.Join(strings.Split(s, "\n"), "\n"+marker)
}

// GetLines returns the line range [start, end) of s. Negative bounds
// count from the end, mirroring slice semantics; out-of-range bounds are
// clamped.
func GetLines(s string, start, end int) string {
	lines := strings.Split(s, "\n")

	if start < 0 {
		start += len(lines)
	}
	if end < 0 {
		end += len(lines)
	}
	start = clamp(start, 0, len(lines))
	end = clamp(end, start, len(lines))

	return strings.Join(lines[start:end], "\n")
}

// Wrap breaks text to the given width without splitting words.
// Existing line breaks are preserved.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}

	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine wraps a single line into width-bounded pieces.
func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var wrapped []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			wrapped = append(wrapped, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(wrapped, current)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
