package domain

import (
	"strconv"
	"time"
)

// Defaults are the process-wide fallbacks applied to every toast.
var Defaults = struct {
	ID        string
	Duration  time.Duration
	Fill      string
	Roundness float64
	Position  Position
	Theme     Theme
	Layout    Layout
}{
	ID:        "fluix-default",
	Duration:  DefaultDuration,
	Fill:      "#FFFFFF",
	Roundness: 16,
	Position:  PositionTopRight,
	Theme:     ThemeLight,
	Layout:    LayoutStack,
}

const (
	// DefaultDuration is the auto-dismiss delay of a toast that sets none.
	DefaultDuration = 6000 * time.Millisecond

	// ExitDuration is how long a dismissed toast stays in the list flagged
	// as exiting before it is removed.
	ExitDuration = DefaultDuration / 10

	// AutoExpandDelay is the default time before a toast expands to show its description.
	AutoExpandDelay = DefaultDuration / 40

	// AutoCollapseDelay is the default time before an expanded toast collapses back.
	AutoCollapseDelay = DefaultDuration - 2000*time.Millisecond
)

// Offset is the viewport spacing. Uniform applies to every edge; per-edge
// values take precedence over it. Values are CSS lengths ("16px", "1rem").
type Offset struct {
	Uniform string `json:"uniform,omitempty" mapstructure:"uniform" yaml:"uniform,omitempty"`
	Top     string `json:"top,omitempty" mapstructure:"top" yaml:"top,omitempty"`
	Right   string `json:"right,omitempty" mapstructure:"right" yaml:"right,omitempty"`
	Bottom  string `json:"bottom,omitempty" mapstructure:"bottom" yaml:"bottom,omitempty"`
	Left    string `json:"left,omitempty" mapstructure:"left" yaml:"left,omitempty"`
}

// OffsetPx returns a uniform offset of n pixels.
func OffsetPx(n float64) *Offset {
	return &Offset{Uniform: Px(n)}
}

// Px formats n as a CSS pixel length.
func Px(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64) + "px"
}

// Sides resolves the offset into its four edges. Empty strings mean "not set".
func (o *Offset) Sides() (top, right, bottom, left string) {
	if o == nil {
		return "", "", "", ""
	}
	top, right, bottom, left = o.Uniform, o.Uniform, o.Uniform, o.Uniform
	if o.Top != "" {
		top = o.Top
	}
	if o.Right != "" {
		right = o.Right
	}
	if o.Bottom != "" {
		bottom = o.Bottom
	}
	if o.Left != "" {
		left = o.Left
	}
	return top, right, bottom, left
}

// Config is the toaster configuration. When used as a patch for
// Machine.Configure, zero fields leave the stored value untouched.
// Its JSON form carries Defaults as an OptionsPayload.
type Config struct {
	Position Position `json:"position,omitempty" mapstructure:"position"`
	Layout   Layout   `json:"layout,omitempty" mapstructure:"layout"`
	Offset   *Offset  `json:"offset,omitempty" mapstructure:"offset"`
	Defaults *Options `json:"defaults,omitempty" mapstructure:"-"`
}

// Merge shallow-merges the non-zero fields of patch into c.
func (c Config) Merge(patch Config) Config {
	if patch.Position != "" {
		c.Position = patch.Position
	}
	if patch.Layout != "" {
		c.Layout = patch.Layout
	}
	if patch.Offset != nil {
		c.Offset = patch.Offset
	}
	if patch.Defaults != nil {
		c.Defaults = patch.Defaults
	}
	return c
}

// Snapshot is the full machine state shared with adapters.
type Snapshot struct {
	Toasts []Item
	Config Config
}

// Find returns the live item with the given id.
func (s *Snapshot) Find(id string) (Item, bool) {
	for _, t := range s.Toasts {
		if t.ID == id && !t.Exiting {
			return t, true
		}
	}
	return Item{}, false
}

// At returns the items anchored at position, in list order.
func (s *Snapshot) At(position Position) []Item {
	var out []Item
	for _, t := range s.Toasts {
		if t.Position == position {
			out = append(out, t)
		}
	}
	return out
}
