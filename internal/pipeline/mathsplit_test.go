package pipeline

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitMath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Segment
	}{
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "prose only",
			input:    "no math here",
			expected: []Segment{{Text: "no math here"}},
		},
		{
			name:  "inline math surrounded by prose",
			input: "Compute $E=mc^2$ now.",
			expected: []Segment{
				{Text: "Compute "},
				{Text: "$E=mc^2$", Math: true},
				{Text: " now."},
			},
		},
		{
			name:     "display math only",
			input:    "$$\\int_0^1 x\\,dx$$",
			expected: []Segment{{Text: "$$\\int_0^1 x\\,dx$$", Math: true}},
		},
		{
			name:  "display math surrounded by prose",
			input: "a$$b$$c",
			expected: []Segment{
				{Text: "a"},
				{Text: "$$b$$", Math: true},
				{Text: "c"},
			},
		},
		{
			name:  "adjacent inline regions",
			input: "$a$$b$",
			expected: []Segment{
				{Text: "$a$", Math: true},
				{Text: "$b$", Math: true},
			},
		},
		{
			name:  "escaped dollar is not a delimiter",
			input: "price \\$5 and $x$",
			expected: []Segment{
				{Text: "price \\$5 and "},
				{Text: "$x$", Math: true},
			},
		},
		{
			name:  "unterminated inline math degrades to prose",
			input: "Unclosed $math here",
			expected: []Segment{
				{Text: "Unclosed "},
				{Text: "$math here"},
			},
		},
		{
			name:     "unterminated display math degrades to prose",
			input:    "$$x$ y",
			expected: []Segment{{Text: "$$x$ y"}},
		},
		{
			name:  "unterminated display math after prose",
			input: "a$$b",
			expected: []Segment{
				{Text: "a"},
				{Text: "$$b"},
			},
		},
		{
			name:  "inline region spans interior text",
			input: "$5 or $10",
			expected: []Segment{
				{Text: "$5 or $", Math: true},
				{Text: "10"},
			},
		},
		{
			name:  "display before inline",
			input: "$$a$$ then $b$",
			expected: []Segment{
				{Text: "$$a$$", Math: true},
				{Text: " then "},
				{Text: "$b$", Math: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitMath(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitMath(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestSplitMathLossless verifies that concatenating all segment texts
// reconstructs the input exactly, for well-formed and malformed inputs alike.
func TestSplitMathLossless(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a $b$ c",
		"$$x$$",
		"$a$$b$c$$d$$",
		"unclosed $ here",
		"unclosed $$ there",
		"\\$ escaped and $real$",
		"$$a$$b$c$d$$e",
		"$ $$ $",
		"trailing $",
		"$$",
		"$",
	}

	for _, input := range inputs {
		var b strings.Builder
		for _, seg := range SplitMath(input) {
			b.WriteString(seg.Text)
		}
		if b.String() != input {
			t.Errorf("SplitMath(%q) is lossy: reassembled %q", input, b.String())
		}
	}
}

// TestSplitMathPreservesMathVerbatim verifies math segments are byte-identical
// to the delimited span, escaping included.
func TestSplitMathPreservesMathVerbatim(t *testing.T) {
	input := "see $\\frac{a_1}{b^2} & 100\\%$ done"
	segs := SplitMath(input)
	if len(segs) != 3 || !segs[1].Math {
		t.Fatalf("SplitMath(%q) = %#v, want 3 segments with math in the middle", input, segs)
	}
	if want := "$\\frac{a_1}{b^2} & 100\\%$"; segs[1].Text != want {
		t.Errorf("math segment = %q, want %q", segs[1].Text, want)
	}
}
