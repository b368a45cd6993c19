package ui

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders assistant markdown for the chat viewport.
type MarkdownRenderer interface {
	Render(markdown string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer with glamour's auto style.
type GlamourRenderer struct{}

// NewGlamourRenderer creates the production renderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders markdown at the given wrap width.
func (GlamourRenderer) Render(markdown string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
