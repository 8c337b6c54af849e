package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// goldmark leaves raw HTML out unless html.WithUnsafe is set.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Typographer),
)

// BioHTML renders the profile bio from Markdown.
func (p *Portfolio) BioHTML() (string, error) {
	return RenderMarkdown(p.Profile.Bio)
}

// RenderMarkdown converts src to HTML with raw HTML stripped.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
