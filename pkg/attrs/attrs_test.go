package attrs_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fluix/pkg/attrs"
	"github.com/aretw0/fluix/pkg/domain"
)

func makeItem(mutate func(*domain.Item)) domain.Item {
	item := domain.Item{
		ID:         "test-1",
		InstanceID: "inst-1",
		Title:      "Test",
		State:      domain.StateSuccess,
		Theme:      domain.ThemeLight,
		Position:   domain.PositionTopRight,
		Duration:   domain.DefaultDuration,
		Roundness:  16,
	}
	if mutate != nil {
		mutate(&item)
	}
	return item
}

func TestViewport(t *testing.T) {
	v := attrs.Viewport(domain.PositionTopRight, "")
	assert.Equal(t, "", v["data-fluix-viewport"])
	assert.Equal(t, "top-right", v["data-position"])
	assert.Equal(t, "stack", v["data-layout"])
	assert.Equal(t, "polite", v["aria-live"])
	assert.Equal(t, "region", v["role"])

	assert.Equal(t, "bottom-left", attrs.Viewport(domain.PositionBottomLeft, "")["data-position"])
	assert.Equal(t, "notch", attrs.Viewport(domain.PositionTopCenter, domain.LayoutNotch)["data-layout"])
}

func TestForToast_Edges(t *testing.T) {
	tests := []struct {
		position domain.Position
		edge     string
		align    string
	}{
		{domain.PositionTopLeft, "bottom", "left"},
		{domain.PositionTopCenter, "bottom", "center"},
		{domain.PositionTopRight, "bottom", "right"},
		{domain.PositionBottomLeft, "top", "left"},
		{domain.PositionBottomCenter, "top", "center"},
		{domain.PositionBottomRight, "top", "right"},
	}
	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			a := attrs.ForToast(makeItem(func(i *domain.Item) { i.Position = tt.position }), attrs.Context{Ready: true})
			assert.Equal(t, tt.edge, a.Root["data-edge"])
			assert.Equal(t, tt.edge, a.Canvas["data-edge"])
			assert.Equal(t, tt.edge, a.Header["data-edge"])
			assert.Equal(t, tt.edge, a.Content["data-edge"])
			assert.Equal(t, tt.align, a.Root["data-position"])
			assert.Equal(t, string(tt.position), a.Viewport["data-position"])
		})
	}
}

func TestForToast_Context(t *testing.T) {
	item := makeItem(func(i *domain.Item) {
		i.State = domain.StateError
		i.Exiting = true
	})

	a := attrs.ForToast(item, attrs.Context{Ready: true, Expanded: true})
	assert.Equal(t, "error", a.Root["data-state"])
	assert.Equal(t, "true", a.Root["data-ready"])
	assert.Equal(t, "true", a.Root["data-expanded"])
	assert.Equal(t, "true", a.Root["data-exiting"])
	assert.Equal(t, "true", a.Content["data-visible"])

	collapsed := attrs.ForToast(item, attrs.Context{Ready: false})
	assert.Equal(t, "false", collapsed.Root["data-ready"])
	assert.Equal(t, "false", collapsed.Content["data-visible"])
}

func TestForToast_StateIsCarried(t *testing.T) {
	a := attrs.ForToast(makeItem(func(i *domain.Item) { i.State = domain.StateWarning }), attrs.Context{})
	assert.Equal(t, "warning", a.Badge["data-state"])
	assert.Equal(t, "warning", a.Title["data-state"])
	assert.Equal(t, "warning", a.Button["data-state"])
}

func TestForToast_Golden(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		ctx  attrs.Context
	}{
		{
			name: "toast_top_right_collapsed",
			item: makeItem(nil),
			ctx:  attrs.Context{Ready: true},
		},
		{
			name: "toast_bottom_left_exiting_expanded",
			item: makeItem(func(i *domain.Item) {
				i.Position = domain.PositionBottomLeft
				i.State = domain.StateError
				i.Theme = domain.ThemeDark
				i.Exiting = true
			}),
			ctx: attrs.Context{Ready: true, Expanded: true},
		},
		{
			name: "toast_bottom_center_not_ready",
			item: makeItem(func(i *domain.Item) {
				i.Position = domain.PositionBottomCenter
				i.State = domain.StateLoading
			}),
			ctx: attrs.Context{},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.MarshalIndent(attrs.ForToast(tt.item, tt.ctx), "", "  ")
			require.NoError(t, err)
			g.Assert(t, tt.name, out)
		})
	}
}

func TestViewportOffsetStyle(t *testing.T) {
	tests := []struct {
		name     string
		offset   *domain.Offset
		position domain.Position
		want     attrs.Attrs
	}{
		{
			name:     "nil offset",
			offset:   nil,
			position: domain.PositionTopRight,
			want:     attrs.Attrs{},
		},
		{
			name:     "uniform on corner",
			offset:   domain.OffsetPx(24),
			position: domain.PositionTopRight,
			want:     attrs.Attrs{"top": "24px", "right": "24px"},
		},
		{
			name:     "uniform on bottom left",
			offset:   &domain.Offset{Uniform: "1rem"},
			position: domain.PositionBottomLeft,
			want:     attrs.Attrs{"bottom": "1rem", "left": "1rem"},
		},
		{
			name:     "centered gets padding",
			offset:   domain.OffsetPx(16),
			position: domain.PositionBottomCenter,
			want:     attrs.Attrs{"bottom": "16px", "padding-left": "16px", "padding-right": "16px"},
		},
		{
			name:     "per edge overrides",
			offset:   &domain.Offset{Top: "8px", Right: "12px"},
			position: domain.PositionTopLeft,
			want:     attrs.Attrs{"top": "8px"},
		},
		{
			name:     "per edge over uniform",
			offset:   &domain.Offset{Uniform: "4px", Right: "40px"},
			position: domain.PositionTopRight,
			want:     attrs.Attrs{"top": "4px", "right": "40px"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrs.ViewportOffsetStyle(tt.offset, tt.position))
		})
	}
}
