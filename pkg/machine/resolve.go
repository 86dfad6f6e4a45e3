package machine

import (
	"time"

	"github.com/aretw0/fluix/pkg/domain"
)

// build resolves opts into an item. Precedence, lowest first: process
// defaults, configured defaults, caller options. fallback is the position of
// the item being replaced, if any.
func (m *Machine) build(opts domain.Options, id string, fallback domain.Position, cfg domain.Config) domain.Item {
	merged := opts
	if cfg.Defaults != nil {
		merged = cfg.Defaults.Merge(opts)
	}

	duration := domain.Defaults.Duration
	if merged.Duration != nil {
		duration = *merged.Duration
	}
	if duration <= 0 {
		duration = domain.Persistent
	}

	item := domain.Item{
		ID:          id,
		InstanceID:  m.newInstanceID(),
		Title:       merged.Title,
		Description: merged.Description,
		Icon:        merged.Icon,
		Styles:      merged.Styles,
		Button:      merged.Button,
		State:       merged.State,
		Theme:       merged.Theme,
		Position:    resolvePosition(opts.Position, fallback, merged.Position, cfg.Position),
		Fill:        merged.Fill,
		Roundness:   domain.Defaults.Roundness,
		Duration:    duration,
	}
	if item.State == "" {
		item.State = domain.StateSuccess
	}
	if item.Theme == "" {
		item.Theme = domain.Defaults.Theme
	}
	if item.Fill == "" {
		item.Fill = domain.Defaults.Fill
	}
	if merged.Roundness != nil {
		item.Roundness = *merged.Roundness
	}
	item.AutoExpandDelay, item.AutoCollapseDelay = resolveAutopilot(merged.Autopilot, duration)
	return item
}

// resolvePosition picks the first set candidate: the caller's position, the
// replaced item's position, the configured defaults, the toaster position.
func resolvePosition(candidates ...domain.Position) domain.Position {
	for _, p := range candidates {
		if p != "" {
			return p
		}
	}
	return domain.Defaults.Position
}

// resolveAutopilot returns the expand and collapse delays, each clamped into
// [0, duration]. Both are nil when autopilot is disabled or the item is
// persistent.
func resolveAutopilot(ap *domain.Autopilot, duration time.Duration) (expand, collapse *time.Duration) {
	if (ap != nil && ap.Disabled) || duration <= 0 {
		return nil, nil
	}
	expandDelay, collapseDelay := domain.AutoExpandDelay, domain.AutoCollapseDelay
	if ap != nil && ap.Expand != nil {
		expandDelay = *ap.Expand
	}
	if ap != nil && ap.Collapse != nil {
		collapseDelay = *ap.Collapse
	}
	return clamp(expandDelay, duration), clamp(collapseDelay, duration)
}

func clamp(d, limit time.Duration) *time.Duration {
	d = max(0, min(d, limit))
	return &d
}
