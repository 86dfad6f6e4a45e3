package attrs

import (
	"strings"

	"github.com/aretw0/fluix/pkg/domain"
)

// ViewportOffsetStyle returns the inline CSS placing a viewport at position.
// Only the edges the viewport is anchored to are set; centered viewports get
// the horizontal offsets as padding instead.
func ViewportOffsetStyle(offset *domain.Offset, position domain.Position) Attrs {
	top, right, bottom, left := offset.Sides()
	style := Attrs{}

	p := string(position)
	if strings.HasPrefix(p, "top") && top != "" {
		style["top"] = top
	}
	if strings.HasPrefix(p, "bottom") && bottom != "" {
		style["bottom"] = bottom
	}
	if strings.HasSuffix(p, "right") && right != "" {
		style["right"] = right
	}
	if strings.HasSuffix(p, "left") && left != "" {
		style["left"] = left
	}
	if strings.HasSuffix(p, "center") {
		if left != "" {
			style["padding-left"] = left
		}
		if right != "" {
			style["padding-right"] = right
		}
	}
	return style
}
