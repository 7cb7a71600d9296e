package pipeline

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unix unchanged", "a\nb", "a\nb"},
		{"windows", "a\r\nb", "a\nb"},
		{"old mac", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single newline kept", "a\nb", "a\nb"},
		{"double newline kept", "a\n\nb", "a\n\nb"},
		{"triple compressed", "a\n\n\nb", "a\n\nb"},
		{"many compressed", "a\n\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompressBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("CompressBlankLines(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConvertAndRestoreHighlights(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple highlight", "==note==", `\hl{note}`},
		{"highlight in sentence", "see ==this== here", `see \hl{this} here`},
		{"two highlights", "==a== and ==b==", `\hl{a} and \hl{b}`},
		{"no highlight", "plain == broken", "plain == broken"},
		{"empty highlight", "====", `\hl{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RestoreHighlights(ConvertHighlights(tt.input))
			if got != tt.expected {
				t.Errorf("round trip of %q = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPreprocessMarkdown(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	input := "title\r\n\r\n\r\n\r\nbody with ==mark=="
	got := p.PreprocessMarkdown(context.Background(), input)
	want := "title\n\n" + "body with " + highlightStartPlaceholder + "mark" + highlightEndPlaceholder
	if got != want {
		t.Errorf("PreprocessMarkdown() = %q, want %q", got, want)
	}
}

func TestPreprocessMarkdownCancelledContext(t *testing.T) {
	p := &CommonMarkPreprocessor{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\nb"
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("PreprocessMarkdown() with cancelled context = %q, want input unchanged", got)
	}
}
