package config

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/spring"
)

// ErrInvalidLayout is returned for layouts other than stack and notch.
var ErrInvalidLayout = domain.ErrInvalidLayout

// File is the decoded toaster configuration file.
type File struct {
	Config domain.Config
	Spring spring.Config
}

type fileSchema struct {
	Position domain.Position `mapstructure:"position"`
	Layout   domain.Layout   `mapstructure:"layout"`
	Offset   *domain.Offset  `mapstructure:"offset"`
	Defaults *defaultsSchema `mapstructure:"defaults"`
	Spring   spring.Config   `mapstructure:"spring"`
}

type defaultsSchema struct {
	Title      string                   `mapstructure:"title"`
	Position   domain.Position          `mapstructure:"position"`
	DurationMs *int64                   `mapstructure:"duration_ms"`
	Persistent bool                     `mapstructure:"persistent"`
	Styles     domain.Styles            `mapstructure:"styles"`
	Fill       string                   `mapstructure:"fill"`
	Roundness  *float64                 `mapstructure:"roundness"`
	Theme      domain.Theme             `mapstructure:"theme"`
	State      domain.State             `mapstructure:"state"`
	Autopilot  *domain.AutopilotPayload `mapstructure:"autopilot"`
}

// Load reads and decodes the YAML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document. Unknown keys are ignored.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	var schema fileSchema
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: offsetHook,
		Result:     &schema,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return schema.resolve()
}

func (s fileSchema) resolve() (*File, error) {
	if s.Position != "" && !s.Position.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, s.Position)
	}
	if s.Layout != "" && !s.Layout.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLayout, s.Layout)
	}

	f := &File{
		Config: domain.Config{
			Position: s.Position,
			Layout:   s.Layout,
			Offset:   s.Offset,
		},
		Spring: s.Spring,
	}
	if s.Defaults != nil {
		defaults, err := s.Defaults.options()
		if err != nil {
			return nil, err
		}
		f.Config.Defaults = &defaults
	}
	return f, nil
}

func (d defaultsSchema) options() (domain.Options, error) {
	if d.Position != "" && !d.Position.Valid() {
		return domain.Options{}, fmt.Errorf("defaults: %w: %q", domain.ErrInvalidPosition, d.Position)
	}
	opts := domain.Options{
		Title:     d.Title,
		Position:  d.Position,
		Styles:    d.Styles,
		Fill:      d.Fill,
		Roundness: d.Roundness,
		Theme:     d.Theme,
		State:     d.State,
	}
	switch {
	case d.Persistent:
		opts.Duration = domain.DurationOf(domain.Persistent)
	case d.DurationMs != nil:
		opts.Duration = domain.DurationOf(time.Duration(*d.DurationMs) * time.Millisecond)
	}
	if d.Autopilot != nil {
		ap := &domain.Autopilot{Disabled: d.Autopilot.Disabled}
		if d.Autopilot.ExpandMs != nil {
			ap.Expand = domain.DurationOf(time.Duration(*d.Autopilot.ExpandMs) * time.Millisecond)
		}
		if d.Autopilot.CollapseMs != nil {
			ap.Collapse = domain.DurationOf(time.Duration(*d.Autopilot.CollapseMs) * time.Millisecond)
		}
		opts.Autopilot = ap
	}
	return opts, nil
}

var offsetType = reflect.TypeOf(domain.Offset{})

// offsetHook accepts an offset written as a number (pixels), a CSS length,
// or a per-edge map whose values are numbers or CSS lengths.
func offsetHook(from, to reflect.Type, data any) (any, error) {
	if to != offsetType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return domain.Offset{Uniform: v}, nil
	case map[string]any:
		edges := make(map[string]any, len(v))
		for k, val := range v {
			length, err := cssLength(val)
			if err != nil {
				return nil, fmt.Errorf("offset.%s: %w", k, err)
			}
			edges[k] = length
		}
		return edges, nil
	default:
		length, err := cssLength(data)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		return domain.Offset{Uniform: length}, nil
	}
}

func cssLength(v any) (string, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case int:
		return domain.Px(float64(n)), nil
	case int64:
		return domain.Px(float64(n)), nil
	case float64:
		return domain.Px(n), nil
	default:
		return "", fmt.Errorf("unsupported length %v (%T)", v, v)
	}
}
