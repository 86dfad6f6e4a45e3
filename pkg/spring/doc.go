/*
Package spring turns stiffness, damping and mass into reusable motion curves.

The model is a damped harmonic oscillator pulled from 0 to 1:

	x'' = (-stiffness*(x-1) - damping*x') / mass

It is integrated with a midpoint scheme at 120 steps per simulated second,
until both the distance to the target and the velocity fall below
SettleThreshold, or MaxDuration seconds have been simulated. The trajectory is
then encoded in one of two forms:

  - ToCSS: a compact CSS linear() easing plus its duration.
  - Keyframes / Animate: explicit frames for imperative playback.

Callers scale the 0–1 curve to any pair of values. The solver never fails;
degenerate configurations are the caller's responsibility.
*/
package spring
