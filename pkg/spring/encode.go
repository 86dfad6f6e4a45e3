package spring

import (
	"strconv"
	"strings"
	"sync"
)

const (
	cssPoints       = 50
	keyframeTargets = 30
	animateTargets  = 40
)

// Point is one stop of a piecewise-linear easing curve.
type Point struct {
	// Value is the eased progress, rounded to 3 decimals.
	Value float64 `json:"value" yaml:"value"`
	// Percent is the position of the stop along the total duration (0–100).
	Percent float64 `json:"percent" yaml:"percent"`
}

// CSS is a spring encoded as a CSS linear() easing function.
type CSS struct {
	// Easing is the linear(...) expression, e.g. "linear(0 0%, 0.12 4.3%, ..., 1 100%)".
	Easing     string  `json:"easing" yaml:"easing"`
	DurationMs int     `json:"duration_ms" yaml:"duration_ms"`
	Points     []Point `json:"points" yaml:"points"`
}

// ToCSS simulates cfg and downsamples the trajectory to about 50 stops.
// The final stop is always present.
func ToCSS(cfg Config) *CSS {
	samples := simulate(cfg)
	total := samples[len(samples)-1].t
	step := stride(len(samples), cssPoints)

	points := make([]Point, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		points = append(points, Point{
			Value:   round3(samples[i].x),
			Percent: round3(samples[i].t / total * 100),
		})
	}

	last := samples[len(samples)-1]
	final := Point{Value: round3(last.x), Percent: round3(last.t / total * 100)}
	if points[len(points)-1] != final {
		points = append(points, final)
	}

	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatNumber(p.Value) + " " + formatNumber(p.Percent) + "%"
	}

	return &CSS{
		Easing:     "linear(" + strings.Join(parts, ", ") + ")",
		DurationMs: durationMs(samples),
		Points:     points,
	}
}

// Keyframe is one frame of a single-property spring animation.
type Keyframe struct {
	// Offset is the frame position in [0, 1].
	Offset float64 `json:"offset" yaml:"offset"`
	// Value is interpolated between the animation's end values.
	Value float64 `json:"value" yaml:"value"`
}

// KeyframeSet is a spring encoded as explicit keyframes.
type KeyframeSet struct {
	Frames     []Keyframe `json:"frames" yaml:"frames"`
	DurationMs int        `json:"duration_ms" yaml:"duration_ms"`
}

// Keyframes samples cfg into about 30 frames animating a value from `from`
// to `to`. Strided sampling may skip the literal end frame.
func Keyframes(from, to float64, cfg Config) KeyframeSet {
	samples := simulate(cfg)
	total := samples[len(samples)-1].t
	span := to - from
	step := stride(len(samples), keyframeTargets)

	frames := make([]Keyframe, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		frames = append(frames, Keyframe{
			Offset: samples[i].t / total,
			Value:  from + samples[i].x*span,
		})
	}

	return KeyframeSet{Frames: frames, DurationMs: durationMs(samples)}
}

// Property animates one named property between two values. Unit, when set,
// is appended to every formatted frame value ("px", "%", "deg").
type Property struct {
	From float64 `json:"from" yaml:"from"`
	To   float64 `json:"to" yaml:"to"`
	Unit string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Frame is one multi-property keyframe with formatted values.
type Frame struct {
	Offset float64           `json:"offset" yaml:"offset"`
	Values map[string]string `json:"values" yaml:"values"`
}

// Animation is a multi-property spring animation ready for playback with
// linear timing, the easing being baked into the frames.
type Animation struct {
	Frames     []Frame `json:"frames" yaml:"frames"`
	DurationMs int     `json:"duration_ms" yaml:"duration_ms"`
}

// Animate samples cfg into about 40 frames animating every property in props.
func Animate(props map[string]Property, cfg Config) Animation {
	samples := simulate(cfg)
	total := samples[len(samples)-1].t
	step := stride(len(samples), animateTargets)

	frames := make([]Frame, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		values := make(map[string]string, len(props))
		for name, p := range props {
			v := p.From + samples[i].x*(p.To-p.From)
			values[name] = formatNumber(round3(v)) + p.Unit
		}
		frames = append(frames, Frame{Offset: samples[i].t / total, Values: values})
	}

	return Animation{Frames: frames, DurationMs: durationMs(samples)}
}

var (
	defaultCSS     *CSS
	defaultCSSOnce sync.Once
)

// DefaultCSS returns the CSS encoding of Fluix. It is computed once; every
// call returns the same pointer, which callers must treat as read-only.
func DefaultCSS() *CSS {
	defaultCSSOnce.Do(func() {
		defaultCSS = ToCSS(Fluix)
	})
	return defaultCSS
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
