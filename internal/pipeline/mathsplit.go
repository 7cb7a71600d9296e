package pipeline

import "strings"

// Math delimiters. Display math is always checked before inline math so that
// the first "$" of a "$$" pair is never mistaken for an inline delimiter.
const (
	displayDelimiter = "$$"
	inlineDelimiter  = "$"
)

// Segment is one piece of a partitioned input string. Concatenating the Text
// of all segments in order reconstructs the input exactly.
type Segment struct {
	Text string
	Math bool
}

// SplitMath partitions text into an ordered sequence of math and prose
// segments using $...$ and $$...$$ delimiters.
//
// Math segments carry both delimiters verbatim and receive no further
// transformation downstream. A backslash-escaped \$ does not open an inline
// region. An opening delimiter with no matching close is degraded to prose:
// unterminated math is treated as plain text, never as an error.
func SplitMath(text string) []Segment {
	var segments []Segment

	rest := text
	for rest != "" {
		start, delim := nextMathDelimiter(rest)
		if start == -1 {
			segments = append(segments, Segment{Text: rest})
			break
		}

		if start > 0 {
			segments = append(segments, Segment{Text: rest[:start]})
		}

		// Closing delimiter search is a plain substring scan: nesting is not
		// supported, the first close found ends the region however the
		// region was opened.
		contentStart := start + len(delim)
		end := strings.Index(rest[contentStart:], delim)
		if end == -1 {
			segments = append(segments, Segment{Text: rest[start:]})
			break
		}

		stop := contentStart + end + len(delim)
		segments = append(segments, Segment{Text: rest[start:stop], Math: true})
		rest = rest[stop:]
	}

	return segments
}

// nextMathDelimiter locates the earliest opening delimiter in s.
// Returns (-1, "") when no delimiter remains. On an index tie the display
// delimiter wins.
func nextMathDelimiter(s string) (int, string) {
	display := strings.Index(s, displayDelimiter)
	inline := indexInlineDollar(s)

	switch {
	case display == -1 && inline == -1:
		return -1, ""
	case inline == -1:
		return display, displayDelimiter
	case display == -1:
		return inline, inlineDelimiter
	case display <= inline:
		return display, displayDelimiter
	default:
		return inline, inlineDelimiter
	}
}

// indexInlineDollar finds the first "$" usable as an inline math opener: not
// preceded by a backslash escape and not the start of a "$$" pair.
func indexInlineDollar(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '$' {
			i++ // skip the whole pair
			continue
		}
		return i
	}
	return -1
}
