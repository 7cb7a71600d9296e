package hints

import (
	"strings"
	"testing"
)

func TestForMissingEngine(t *testing.T) {
	got := ForMissingEngine("pdflatex")
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint has wrong prefix: %q", got)
	}
	if !strings.Contains(got, "pdflatex") {
		t.Errorf("hint should name the engine: %q", got)
	}
	if !strings.Contains(got, "--tex-only") {
		t.Errorf("hint should mention --tex-only: %q", got)
	}
}

func TestForTimeout(t *testing.T) {
	got := ForTimeout()
	if !strings.Contains(got, "--timeout") {
		t.Errorf("hint should mention --timeout: %q", got)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Run("with user config path", func(t *testing.T) {
		paths := []string{
			"./md2latex.yaml",
			"/home/u/.config/go-md2latex/config.yaml",
		}
		got := ForConfigNotFound(paths)
		if !strings.Contains(got, "--config") {
			t.Errorf("hint should mention --config: %q", got)
		}
		if !strings.Contains(got, "/home/u/.config/go-md2latex/config.yaml") {
			t.Errorf("hint should suggest the user config path: %q", got)
		}
	})

	t.Run("without user config path", func(t *testing.T) {
		got := ForConfigNotFound([]string{"./md2latex.yaml"})
		if !strings.Contains(got, "--config") {
			t.Errorf("hint should mention --config: %q", got)
		}
		if strings.Contains(got, "create") {
			t.Errorf("hint should not suggest creating a file: %q", got)
		}
	})
}

func TestForOutputDirectory(t *testing.T) {
	got := ForOutputDirectory()
	if !strings.HasPrefix(got, "\n  hint: ") {
		t.Errorf("hint has wrong prefix: %q", got)
	}
}
