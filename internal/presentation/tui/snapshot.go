package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/fluix/pkg/domain"
)

var stateStyle = map[domain.State]struct {
	symbol string
	color  string
}{
	domain.StateSuccess: {"✔", "#22c55e"},
	domain.StateError:   {"✖", "#ef4444"},
	domain.StateWarning: {"!", "#f59e0b"},
	domain.StateInfo:    {"i", "#3b82f6"},
	domain.StateLoading: {"…", "#a1a1aa"},
	domain.StateAction:  {"→", "#8b5cf6"},
}

// Renderer draws toaster snapshots as plain terminal text.
type Renderer struct {
	profile  termenv.Profile
	markdown func(string) (string, error)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile forces a colour profile. termenv.Ascii disables colours.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = p
	}
}

// WithMarkdown sets the renderer used for string descriptions.
// A nil function prints descriptions verbatim.
func WithMarkdown(fn func(string) (string, error)) Option {
	return func(r *Renderer) {
		r.markdown = fn
	}
}

// New creates a renderer for the current terminal.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		profile:  termenv.ColorProfile(),
		markdown: NewMarkdown(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns one block per position that holds toasts, in
// domain.Positions order.
func (r *Renderer) Render(s *domain.Snapshot) string {
	if len(s.Toasts) == 0 {
		return "(no toasts)\n"
	}

	var b strings.Builder
	for _, pos := range domain.Positions {
		items := s.At(pos)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "[%s]\n", pos)
		for _, item := range items {
			r.renderItem(&b, item)
		}
	}
	return b.String()
}

func (r *Renderer) renderItem(b *strings.Builder, item domain.Item) {
	style, ok := stateStyle[item.State]
	if !ok {
		style = stateStyle[domain.StateInfo]
	}
	badge := r.profile.String(style.symbol + " " + string(item.State)).Foreground(r.profile.Color(style.color))
	title := r.profile.String(item.Title).Bold()
	if item.Exiting {
		badge = badge.Faint()
		title = title.Faint()
	}

	fmt.Fprintf(b, "  %s  %s  (%s)", badge, title, item.ID)
	if item.Exiting {
		b.WriteString(" exiting")
	}
	b.WriteString("\n")

	if desc := r.description(item.Description); desc != "" {
		for _, line := range strings.Split(desc, "\n") {
			fmt.Fprintf(b, "      %s\n", line)
		}
	}
	if item.Button != nil && item.Button.Title != "" {
		fmt.Fprintf(b, "      [ %s ]\n", item.Button.Title)
	}
}

func (r *Renderer) description(d any) string {
	if d == nil {
		return ""
	}
	text, ok := d.(string)
	if !ok {
		text = fmt.Sprint(d)
	}
	if r.markdown != nil {
		if out, err := r.markdown(text); err == nil {
			text = out
		}
	}
	return strings.TrimSpace(text)
}
