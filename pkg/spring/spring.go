package spring

import "math"

// Config describes a damped harmonic oscillator. Zero fields take the
// values of DefaultConfig.
type Config struct {
	// Stiffness of the spring. Higher is faster.
	Stiffness float64 `json:"stiffness" yaml:"stiffness"`
	// Damping coefficient. Higher oscillates less.
	Damping float64 `json:"damping" yaml:"damping"`
	// Mass of the animated object. Higher has more inertia.
	Mass float64 `json:"mass" yaml:"mass"`
}

// DefaultConfig is used for any field a Config leaves at zero.
var DefaultConfig = Config{Stiffness: 100, Damping: 10, Mass: 1}

// Fluix is the default animation feel of the toaster.
var Fluix = Config{Stiffness: 170, Damping: 18, Mass: 1}

const (
	// StepRate is the number of integration steps per simulated second.
	StepRate = 120
	// SettleThreshold is the position and velocity tolerance below which the
	// spring is considered at rest.
	SettleThreshold = 0.001
	// MaxDuration caps the simulation, in seconds.
	MaxDuration = 3.0
)

func (c Config) resolve() Config {
	if c.Stiffness == 0 {
		c.Stiffness = DefaultConfig.Stiffness
	}
	if c.Damping == 0 {
		c.Damping = DefaultConfig.Damping
	}
	if c.Mass == 0 {
		c.Mass = DefaultConfig.Mass
	}
	return c
}

// sample is one simulated point: time in seconds and normalized position.
type sample struct {
	t, x float64
}

// simulate integrates the spring from rest at 0 towards 1 and returns the
// trajectory. The last sample is always (t_final, 1).
func simulate(cfg Config) []sample {
	c := cfg.resolve()
	const dt = 1.0 / StepRate

	accel := func(x, v float64) float64 {
		return (-c.Stiffness*(x-1) - c.Damping*v) / c.Mass
	}

	samples := []sample{{0, 0}}
	var x, v, t float64

	for t < MaxDuration {
		// Midpoint step: evaluate acceleration again at the half-step state.
		a := accel(x, v)
		midV := v + a*(dt/2)
		midX := x + v*(dt/2)
		midA := accel(midX, midV)

		v += midA * dt
		x += midV * dt
		t += dt

		samples = append(samples, sample{t, x})

		if math.Abs(x-1) < SettleThreshold && math.Abs(v) < SettleThreshold {
			break
		}
	}

	return append(samples, sample{t, 1})
}

// stride returns the index step that downsamples n samples to roughly target points.
func stride(n, target int) int {
	return max(1, n/target)
}

func durationMs(samples []sample) int {
	return int(math.Round(samples[len(samples)-1].t * 1000))
}

// round3 rounds to 3 decimal places to keep encodings compact.
func round3(n float64) float64 {
	return math.Round(n*1000) / 1000
}
