// ABOUTME: Glamour rendering for the help overlay, one renderer per wrap width
// ABOUTME: Pages are cached by text, width and background so reopening help is free

package btea

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type pageKey struct {
	md    string
	width int
	dark  bool
}

// MarkdownRenderer turns the rules and key table into styled terminal text.
type MarkdownRenderer struct {
	renderers map[pageKey]*glamour.TermRenderer // md is empty in these keys
	pages     map[pageKey]string
}

// NewMarkdownRenderer creates a renderer with empty caches.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		renderers: make(map[pageKey]*glamour.TermRenderer),
		pages:     make(map[pageKey]string),
	}
}

// Render styles md wrapped at width. If glamour fails the raw markdown is
// returned, which is still readable.
func (r *MarkdownRenderer) Render(md string, width int) string {
	if md == "" {
		return ""
	}
	dark := lipgloss.HasDarkBackground()
	key := pageKey{md: md, width: width, dark: dark}
	if page, ok := r.pages[key]; ok {
		return page
	}

	tr, err := r.renderer(width, dark)
	if err != nil {
		return md
	}
	page, err := tr.Render(md)
	if err != nil {
		return md
	}
	page = strings.TrimRight(page, "\n ")
	r.pages[key] = page
	return page
}

func (r *MarkdownRenderer) renderer(width int, dark bool) (*glamour.TermRenderer, error) {
	key := pageKey{width: width, dark: dark}
	if tr, ok := r.renderers[key]; ok {
		return tr, nil
	}
	style := "light"
	if dark {
		style = "dark"
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[key] = tr
	return tr, nil
}
