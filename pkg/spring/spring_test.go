package spring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_EndsExactlyAtTarget(t *testing.T) {
	samples := simulate(Fluix)
	require.NotEmpty(t, samples)

	assert.Equal(t, sample{0, 0}, samples[0])
	last := samples[len(samples)-1]
	assert.Equal(t, 1.0, last.x)
	assert.Equal(t, samples[len(samples)-2].t, last.t, "final sample reuses the settle time")
}

func TestSimulate_StopsAtSafetyCeiling(t *testing.T) {
	// Barely damped: never settles within the window.
	samples := simulate(Config{Stiffness: 10, Damping: 0.01, Mass: 1})
	last := samples[len(samples)-1]
	assert.GreaterOrEqual(t, last.t, MaxDuration)
	assert.Less(t, last.t, MaxDuration+2.0/StepRate)
}

func TestConfig_ZeroFieldsUseDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig, Config{}.resolve())
	assert.Equal(t, Config{Stiffness: 200, Damping: 10, Mass: 1}, Config{Stiffness: 200}.resolve())
}

func TestToCSS_Shape(t *testing.T) {
	css := ToCSS(Config{})

	assert.True(t, strings.HasPrefix(css.Easing, "linear("))
	assert.True(t, strings.HasSuffix(css.Easing, ")"))
	assert.Greater(t, css.DurationMs, 0)
	assert.LessOrEqual(t, css.DurationMs, 3100)
}

func TestToCSS_KnownDurations(t *testing.T) {
	assert.Equal(t, 1442, ToCSS(DefaultConfig).DurationMs)
	assert.Equal(t, 967, ToCSS(Fluix).DurationMs)
}

func TestToCSS_FirstAndFinalPoints(t *testing.T) {
	css := ToCSS(Fluix)
	require.NotEmpty(t, css.Points)

	assert.Equal(t, Point{Value: 0, Percent: 0}, css.Points[0])
	assert.Equal(t, Point{Value: 1, Percent: 100}, css.Points[len(css.Points)-1])
	assert.True(t, strings.HasPrefix(css.Easing, "linear(0 0%, "))
	assert.True(t, strings.HasSuffix(css.Easing, ", 1 100%)"))
}

func TestToCSS_DownsamplesToAboutFiftyPoints(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig, Fluix, {Stiffness: 50}} {
		css := ToCSS(cfg)
		assert.GreaterOrEqual(t, len(css.Points), 40, "%+v", cfg)
		assert.LessOrEqual(t, len(css.Points), 120, "%+v", cfg)
	}
}

func TestToCSS_PointsAreRoundedAndOrdered(t *testing.T) {
	css := ToCSS(Fluix)
	for i, p := range css.Points {
		assert.Equal(t, round3(p.Value), p.Value)
		assert.Equal(t, round3(p.Percent), p.Percent)
		if i > 0 {
			assert.GreaterOrEqual(t, p.Percent, css.Points[i-1].Percent)
		}
	}
}

func TestToCSS_StifferSpringSettlesFaster(t *testing.T) {
	soft := ToCSS(Config{Stiffness: 50, Damping: 10})
	stiff := ToCSS(Config{Stiffness: 200, Damping: 10})
	assert.Less(t, stiff.DurationMs, soft.DurationMs)
}

func TestToCSS_DurationDecreasesAlongStiffnessLadders(t *testing.T) {
	ladders := []struct {
		damping   float64
		stiffness []float64
	}{
		{damping: 10, stiffness: []float64{25, 50, 100, 200}},
		{damping: 18, stiffness: []float64{60, 70, 81}},
		{damping: 20, stiffness: []float64{60, 70, 80, 90, 100}},
	}

	for _, l := range ladders {
		prev := 0
		for i, k := range l.stiffness {
			d := ToCSS(Config{Stiffness: k, Damping: l.damping, Mass: 1}).DurationMs
			if i > 0 {
				assert.Less(t, d, prev, "damping=%v stiffness=%v", l.damping, k)
			}
			prev = d
		}
	}
}

func TestKeyframes_OffsetsSpanTheDuration(t *testing.T) {
	set := Keyframes(0, 100, Config{})
	require.Greater(t, len(set.Frames), 1)

	assert.Equal(t, 0.0, set.Frames[0].Offset)
	assert.GreaterOrEqual(t, set.Frames[len(set.Frames)-1].Offset, 0.9)
	assert.LessOrEqual(t, set.Frames[len(set.Frames)-1].Offset, 1.0)
	assert.Greater(t, set.DurationMs, 0)
}

func TestKeyframes_InterpolatesBetweenEndValues(t *testing.T) {
	set := Keyframes(10, 90, Fluix)

	assert.Equal(t, 10.0, set.Frames[0].Value)
	assert.InDelta(t, 90, set.Frames[len(set.Frames)-1].Value, 1)
	assert.Equal(t, ToCSS(Fluix).DurationMs, set.DurationMs)
}

func TestAnimate_FormatsUnits(t *testing.T) {
	anim := Animate(map[string]Property{
		"height":  {From: 40, To: 120, Unit: "px"},
		"opacity": {From: 0, To: 1},
	}, Fluix)

	require.NotEmpty(t, anim.Frames)
	first := anim.Frames[0]
	assert.Equal(t, 0.0, first.Offset)
	assert.Equal(t, "40px", first.Values["height"])
	assert.Equal(t, "0", first.Values["opacity"])
	assert.GreaterOrEqual(t, len(anim.Frames), 30)
	assert.Equal(t, 967, anim.DurationMs)
}

func TestDefaultCSS_IsCached(t *testing.T) {
	a := DefaultCSS()
	b := DefaultCSS()

	assert.Same(t, a, b)
	assert.Equal(t, ToCSS(Fluix).Easing, a.Easing)
}

func TestFluixPreset(t *testing.T) {
	assert.Equal(t, Config{Stiffness: 170, Damping: 18, Mass: 1}, Fluix)
}
