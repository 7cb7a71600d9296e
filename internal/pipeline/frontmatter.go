package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yehyu2004/go-md2latex/internal/yamlutil"
)

// ErrFrontMatter indicates a malformed YAML front matter block.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterFence delimits a YAML metadata block at the top of a document.
const frontMatterFence = "---"

// Metadata carries document metadata from a YAML front matter block.
type Metadata struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// ExtractFrontMatter splits a leading YAML front matter block from Markdown
// content. Returns the parsed metadata and the content without the block.
// Content that does not start with a fence passes through with nil metadata.
// Unknown YAML keys are ignored so documents can carry metadata for other
// tools.
func ExtractFrontMatter(content string) (*Metadata, string, error) {
	rest, ok := strings.CutPrefix(content, frontMatterFence+"\n")
	if !ok {
		return nil, content, nil
	}

	block, body, ok := cutFence(rest)
	if !ok {
		return nil, content, fmt.Errorf("%w: missing closing fence", ErrFrontMatter)
	}

	var meta Metadata
	if strings.TrimSpace(block) == "" {
		return &meta, body, nil
	}
	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		return nil, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return &meta, body, nil
}

// cutFence splits rest at the closing front matter fence, which must sit
// alone on its own line. Handles a fence at end of input with no trailing
// newline.
func cutFence(rest string) (block, body string, ok bool) {
	if rest == frontMatterFence {
		return "", "", true
	}
	if body, ok = strings.CutPrefix(rest, frontMatterFence+"\n"); ok {
		return "", body, true
	}
	if block, body, ok = strings.Cut(rest, "\n"+frontMatterFence+"\n"); ok {
		return block, body, true
	}
	if block, ok = strings.CutSuffix(rest, "\n"+frontMatterFence); ok {
		return block, "", true
	}
	return "", "", false
}
