package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdown returns a function that renders markdown using glamour.
// It detects light/dark backgrounds automatically.
func NewMarkdown() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return nil
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
