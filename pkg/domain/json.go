package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// itemJSON is the wire form of Item. Durations travel as integer milliseconds.
type itemJSON struct {
	ID                  string   `json:"id"`
	InstanceID          string   `json:"instance_id"`
	Title               string   `json:"title,omitempty"`
	Description         any      `json:"description,omitempty"`
	Icon                any      `json:"icon,omitempty"`
	Styles              *Styles  `json:"styles,omitempty"`
	Button              *Button  `json:"button,omitempty"`
	State               State    `json:"state"`
	Theme               Theme    `json:"theme"`
	Position            Position `json:"position"`
	Fill                string   `json:"fill,omitempty"`
	Roundness           float64  `json:"roundness"`
	DurationMs          *int64   `json:"duration_ms"`
	Exiting             bool     `json:"exiting"`
	AutoExpandDelayMs   *int64   `json:"auto_expand_delay_ms,omitempty"`
	AutoCollapseDelayMs *int64   `json:"auto_collapse_delay_ms,omitempty"`
}

func millis(d *time.Duration) *int64 {
	if d == nil {
		return nil
	}
	ms := d.Milliseconds()
	return &ms
}

func fromMillis(ms *int64) *time.Duration {
	if ms == nil {
		return nil
	}
	d := time.Duration(*ms) * time.Millisecond
	return &d
}

// MarshalJSON encodes the item; persistent durations are encoded as null.
func (i Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{
		ID:                  i.ID,
		InstanceID:          i.InstanceID,
		Title:               i.Title,
		Description:         i.Description,
		Icon:                i.Icon,
		Button:              i.Button,
		State:               i.State,
		Theme:               i.Theme,
		Position:            i.Position,
		Fill:                i.Fill,
		Roundness:           i.Roundness,
		Exiting:             i.Exiting,
		AutoExpandDelayMs:   millis(i.AutoExpandDelay),
		AutoCollapseDelayMs: millis(i.AutoCollapseDelay),
	}
	if i.Styles != (Styles{}) {
		styles := i.Styles
		out.Styles = &styles
	}
	if !i.IsPersistent() {
		out.DurationMs = millis(&i.Duration)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON.
func (i *Item) UnmarshalJSON(data []byte) error {
	var in itemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*i = Item{
		ID:                in.ID,
		InstanceID:        in.InstanceID,
		Title:             in.Title,
		Description:       in.Description,
		Icon:              in.Icon,
		Button:            in.Button,
		State:             in.State,
		Theme:             in.Theme,
		Position:          in.Position,
		Fill:              in.Fill,
		Roundness:         in.Roundness,
		Duration:          Persistent,
		Exiting:           in.Exiting,
		AutoExpandDelay:   fromMillis(in.AutoExpandDelayMs),
		AutoCollapseDelay: fromMillis(in.AutoCollapseDelayMs),
	}
	if in.Styles != nil {
		i.Styles = *in.Styles
	}
	if in.DurationMs != nil {
		i.Duration = time.Duration(*in.DurationMs) * time.Millisecond
	}
	return nil
}

type snapshotJSON struct {
	Toasts []Item `json:"toasts"`
	Config Config `json:"config"`
}

// MarshalJSON encodes the snapshot with an always-present toasts array.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	toasts := s.Toasts
	if toasts == nil {
		toasts = []Item{}
	}
	return json.Marshal(snapshotJSON{Toasts: toasts, Config: s.Config})
}

// UnmarshalJSON decodes a snapshot.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var in snapshotJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Toasts = in.Toasts
	s.Config = in.Config
	return nil
}

type configJSON struct {
	Position Position        `json:"position,omitempty"`
	Layout   Layout          `json:"layout,omitempty"`
	Offset   *Offset         `json:"offset,omitempty"`
	Defaults *OptionsPayload `json:"defaults,omitempty"`
}

// MarshalJSON encodes the config. Defaults travel in their OptionsPayload
// form; a button's OnActivate callback is not encoded.
func (c Config) MarshalJSON() ([]byte, error) {
	out := configJSON{Position: c.Position, Layout: c.Layout, Offset: c.Offset}
	if c.Defaults != nil {
		payload := PayloadOf(*c.Defaults)
		out.Defaults = &payload
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a config, validating the defaults it carries.
func (c *Config) UnmarshalJSON(data []byte) error {
	var in configJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*c = Config{Position: in.Position, Layout: in.Layout, Offset: in.Offset}
	if in.Defaults != nil {
		opts, err := in.Defaults.Options()
		if err != nil {
			return fmt.Errorf("invalid defaults: %w", err)
		}
		c.Defaults = &opts
	}
	return nil
}

// AutopilotPayload is the wire form of Autopilot.
type AutopilotPayload struct {
	Disabled   bool   `json:"disabled,omitempty" mapstructure:"disabled"`
	ExpandMs   *int64 `json:"expand_ms,omitempty" mapstructure:"expand_ms"`
	CollapseMs *int64 `json:"collapse_ms,omitempty" mapstructure:"collapse_ms"`
}

// OptionsPayload is the wire form of Options accepted by the transport adapters.
//
// DurationMs distinguishes three cases: absent (use defaults), null
// (persistent) and a number of milliseconds.
type OptionsPayload struct {
	ID          string            `json:"id,omitempty" mapstructure:"id"`
	Title       string            `json:"title,omitempty" mapstructure:"title"`
	Description any               `json:"description,omitempty" mapstructure:"description"`
	Position    Position          `json:"position,omitempty" mapstructure:"position"`
	DurationMs  json.RawMessage   `json:"duration_ms,omitempty" mapstructure:"-"`
	Icon        any               `json:"icon,omitempty" mapstructure:"icon"`
	Styles      Styles            `json:"styles,omitempty" mapstructure:"styles"`
	Fill        string            `json:"fill,omitempty" mapstructure:"fill"`
	Roundness   *float64          `json:"roundness,omitempty" mapstructure:"roundness"`
	Theme       Theme             `json:"theme,omitempty" mapstructure:"theme"`
	Autopilot   *AutopilotPayload `json:"autopilot,omitempty" mapstructure:"autopilot"`
	ButtonTitle string            `json:"button_title,omitempty" mapstructure:"button_title"`
	State       State             `json:"state,omitempty" mapstructure:"state"`
}

// Options converts the payload into machine Options.
func (p OptionsPayload) Options() (Options, error) {
	if p.Position != "" && !p.Position.Valid() {
		return Options{}, fmt.Errorf("%w: %q", ErrInvalidPosition, p.Position)
	}
	opts := Options{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Position:    p.Position,
		Icon:        p.Icon,
		Styles:      p.Styles,
		Fill:        p.Fill,
		Roundness:   p.Roundness,
		Theme:       p.Theme,
		State:       p.State,
	}
	if raw := bytes.TrimSpace(p.DurationMs); len(raw) > 0 {
		if bytes.Equal(raw, []byte("null")) {
			opts.Duration = DurationOf(Persistent)
		} else {
			var ms int64
			if err := json.Unmarshal(raw, &ms); err != nil {
				return Options{}, fmt.Errorf("invalid duration_ms: %w", err)
			}
			opts.Duration = DurationOf(time.Duration(ms) * time.Millisecond)
		}
	}
	if p.Autopilot != nil {
		opts.Autopilot = &Autopilot{
			Disabled: p.Autopilot.Disabled,
			Expand:   fromMillis(p.Autopilot.ExpandMs),
			Collapse: fromMillis(p.Autopilot.CollapseMs),
		}
	}
	if p.ButtonTitle != "" {
		opts.Button = &Button{Title: p.ButtonTitle}
	}
	return opts, nil
}

// PayloadOf converts machine Options into their wire form. It is the inverse
// of OptionsPayload.Options except for Button.OnActivate.
func PayloadOf(o Options) OptionsPayload {
	p := OptionsPayload{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Position:    o.Position,
		Icon:        o.Icon,
		Styles:      o.Styles,
		Fill:        o.Fill,
		Roundness:   o.Roundness,
		Theme:       o.Theme,
		State:       o.State,
	}
	if o.Duration != nil {
		if *o.Duration <= 0 {
			p.DurationMs = json.RawMessage("null")
		} else {
			p.DurationMs = json.RawMessage(strconv.FormatInt(o.Duration.Milliseconds(), 10))
		}
	}
	if o.Autopilot != nil {
		p.Autopilot = &AutopilotPayload{
			Disabled:   o.Autopilot.Disabled,
			ExpandMs:   millis(o.Autopilot.Expand),
			CollapseMs: millis(o.Autopilot.Collapse),
		}
	}
	if o.Button != nil {
		p.ButtonTitle = o.Button.Title
	}
	return p
}
