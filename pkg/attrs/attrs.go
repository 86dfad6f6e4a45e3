package attrs

import (
	"strconv"

	"github.com/aretw0/fluix/pkg/domain"
)

// Attrs is a string-keyed, string-valued attribute map applied verbatim by
// the rendering layer.
type Attrs map[string]string

// Context is the presentation state owned by the adapter, not the machine.
type Context struct {
	Ready    bool `json:"ready"`
	Expanded bool `json:"expanded"`
}

// Toast holds the attribute map of every element of a rendered toast.
type Toast struct {
	Viewport    Attrs `json:"viewport"`
	Root        Attrs `json:"root"`
	Canvas      Attrs `json:"canvas"`
	Header      Attrs `json:"header"`
	Badge       Attrs `json:"badge"`
	Title       Attrs `json:"title"`
	Content     Attrs `json:"content"`
	Description Attrs `json:"description"`
	Button      Attrs `json:"button"`
}

// Viewport returns the attributes of the container grouping the toasts of one
// position. An empty layout means domain.LayoutStack.
func Viewport(position domain.Position, layout domain.Layout) Attrs {
	if layout == "" {
		layout = domain.LayoutStack
	}
	return Attrs{
		"data-fluix-viewport": "",
		"data-position":       string(position),
		"data-layout":         string(layout),
		"aria-live":           "polite",
		"role":                "region",
	}
}

// expandEdge is the edge a toast grows towards: away from the screen edge it
// is anchored to.
func expandEdge(p domain.Position) string {
	if p.IsTop() {
		return "bottom"
	}
	return "top"
}

// ForToast maps a resolved item and its presentation context to the full
// attribute contract.
func ForToast(item domain.Item, ctx Context) Toast {
	edge := expandEdge(item.Position)
	state := string(item.State)

	return Toast{
		Viewport: Viewport(item.Position, domain.LayoutStack),
		Root: Attrs{
			"data-fluix-toast": "",
			"data-state":       state,
			"data-theme":       string(item.Theme),
			"data-ready":       strconv.FormatBool(ctx.Ready),
			"data-expanded":    strconv.FormatBool(ctx.Expanded),
			"data-exiting":     strconv.FormatBool(item.Exiting),
			"data-edge":        edge,
			"data-position":    item.Position.Horizontal(),
		},
		Canvas: Attrs{
			"data-fluix-canvas": "",
			"data-edge":         edge,
		},
		Header: Attrs{
			"data-fluix-header": "",
			"data-edge":         edge,
		},
		Badge: Attrs{
			"data-fluix-badge": "",
			"data-state":       state,
		},
		Title: Attrs{
			"data-fluix-title": "",
			"data-state":       state,
		},
		Content: Attrs{
			"data-fluix-content": "",
			"data-edge":          edge,
			"data-visible":       strconv.FormatBool(ctx.Expanded),
		},
		Description: Attrs{
			"data-fluix-description": "",
		},
		Button: Attrs{
			"data-fluix-button": "",
			"data-state":        state,
		},
	}
}
