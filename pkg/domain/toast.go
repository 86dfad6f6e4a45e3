package domain

import (
	"strings"
	"time"
)

// Position is one of the six screen anchors a toast can be attached to.
type Position string

const (
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionTopRight     Position = "top-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
	PositionBottomRight  Position = "bottom-right"
)

// Positions lists every supported anchor in display order.
var Positions = []Position{
	PositionTopLeft,
	PositionTopCenter,
	PositionTopRight,
	PositionBottomLeft,
	PositionBottomCenter,
	PositionBottomRight,
}

// Valid reports whether p is one of the known anchors.
func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

// IsTop reports whether the anchor sits on the top edge of the viewport.
func (p Position) IsTop() bool { return strings.HasPrefix(string(p), "top") }

// Horizontal returns the horizontal component of the anchor ("left", "center" or "right").
func (p Position) Horizontal() string {
	switch {
	case strings.HasSuffix(string(p), "right"):
		return "right"
	case strings.HasSuffix(string(p), "center"):
		return "center"
	default:
		return "left"
	}
}

// Layout controls how toasts sharing a position are arranged.
type Layout string

const (
	// LayoutStack keeps every live toast of a position in a vertical list.
	LayoutStack Layout = "stack"
	// LayoutNotch compacts a position into a single island.
	LayoutNotch Layout = "notch"
)

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool { return l == LayoutStack || l == LayoutNotch }

// State is the visual state of a toast.
type State string

const (
	StateSuccess State = "success"
	StateError   State = "error"
	StateWarning State = "warning"
	StateInfo    State = "info"
	StateLoading State = "loading"
	StateAction  State = "action"
)

// Theme selects the background/text defaults. Any value is accepted;
// "light" and "dark" are the built-in ones.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Styles maps named sub-elements to opaque style references (class names, tokens...).
type Styles struct {
	Title       string `json:"title,omitempty" mapstructure:"title" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" mapstructure:"description" yaml:"description,omitempty"`
	Badge       string `json:"badge,omitempty" mapstructure:"badge" yaml:"badge,omitempty"`
	Button      string `json:"button,omitempty" mapstructure:"button" yaml:"button,omitempty"`
}

// merge overlays the non-empty fields of over on top of s.
func (s Styles) merge(over Styles) Styles {
	if over.Title != "" {
		s.Title = over.Title
	}
	if over.Description != "" {
		s.Description = over.Description
	}
	if over.Badge != "" {
		s.Badge = over.Badge
	}
	if over.Button != "" {
		s.Button = over.Button
	}
	return s
}

// Button is the optional action button of a toast.
type Button struct {
	Title      string `json:"title" mapstructure:"title"`
	OnActivate func() `json:"-" mapstructure:"-"`
}

// Autopilot configures the automatic expand-then-collapse of a toast.
// A nil *Autopilot means "enabled with default timings".
type Autopilot struct {
	Disabled bool           `json:"disabled,omitempty"`
	Expand   *time.Duration `json:"-"`
	Collapse *time.Duration `json:"-"`
}

// Persistent is the duration sentinel for toasts that never auto-dismiss.
const Persistent time.Duration = -1

// Options are the caller-facing fields of a toast. Zero values mean "unset"
// and fall back to configuration defaults and then process defaults.
type Options struct {
	ID          string
	Title       string
	Description any
	Position    Position
	// Duration is nil when unset. Point it at Persistent to disable auto-dismiss.
	Duration  *time.Duration
	Icon      any
	Styles    Styles
	Fill      string
	Roundness *float64
	Theme     Theme
	Autopilot *Autopilot
	Button    *Button
	State     State
}

// Merge returns base overlaid with over. Caller fields win; Styles are merged
// field by field rather than replaced wholesale.
func (base Options) Merge(over Options) Options {
	out := base
	if over.ID != "" {
		out.ID = over.ID
	}
	if over.Title != "" {
		out.Title = over.Title
	}
	if over.Description != nil {
		out.Description = over.Description
	}
	if over.Position != "" {
		out.Position = over.Position
	}
	if over.Duration != nil {
		out.Duration = over.Duration
	}
	if over.Icon != nil {
		out.Icon = over.Icon
	}
	out.Styles = base.Styles.merge(over.Styles)
	if over.Fill != "" {
		out.Fill = over.Fill
	}
	if over.Roundness != nil {
		out.Roundness = over.Roundness
	}
	if over.Theme != "" {
		out.Theme = over.Theme
	}
	if over.Autopilot != nil {
		out.Autopilot = over.Autopilot
	}
	if over.Button != nil {
		out.Button = over.Button
	}
	if over.State != "" {
		out.State = over.State
	}
	return out
}

// DurationOf returns a pointer to d, for use in Options.Duration.
func DurationOf(d time.Duration) *time.Duration { return &d }

// Float returns a pointer to f, for use in Options.Roundness.
func Float(f float64) *float64 { return &f }

// Item is a resolved, immutable toast snapshot. Consumers must never mutate
// an Item obtained from a snapshot.
type Item struct {
	ID string
	// InstanceID changes on every create/update; consumers use it to tell
	// "same slot, new content" apart from "same content".
	InstanceID  string
	Title       string
	Description any
	Icon        any
	Styles      Styles
	Button      *Button

	State     State
	Theme     Theme
	Position  Position
	Fill      string
	Roundness float64
	// Duration is the resolved auto-dismiss delay, or Persistent.
	Duration time.Duration
	Exiting  bool

	AutoExpandDelay   *time.Duration
	AutoCollapseDelay *time.Duration
}

// IsPersistent reports whether the item never auto-dismisses.
func (i Item) IsPersistent() bool { return i.Duration <= 0 }

// Live reports whether the item is visible and not on its way out.
func (i Item) Live() bool { return !i.Exiting }
