// Package motion converts the movement parameter into the floating-loop
// animation hint and provides a ready-made oscillator for presentation
// layers that want the per-frame offset computed for them.
package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Config holds the motion tuning constants. Periods are in seconds and
// SlowPeriod must exceed FastPeriod: more movement means a shorter, more
// perceptible loop.
type Config struct {
	MaxAmplitude float64 `json:"max_amplitude"`
	SlowPeriod   float64 `json:"slow_period"`
	FastPeriod   float64 `json:"fast_period"`
}

// DefaultConfig returns the standard motion constants.
func DefaultConfig() Config {
	return Config{
		MaxAmplitude: 12,
		SlowPeriod:   6,
		FastPeriod:   2,
	}
}

// Map derives the animation hint from the movement parameter. At movement 0
// the hint is disabled and the presentation layer must not run the loop at
// all.
func Map(movement float64, cfg Config) types.Motion {
	amplitude := mapping.MapRange(movement, 0, 100, 0, cfg.MaxAmplitude)
	period := mapping.MapRange(movement, 0, 100, cfg.SlowPeriod, cfg.FastPeriod)
	return types.Motion{
		Amplitude: amplitude,
		Period:    time.Duration(period * float64(time.Second)),
		Enabled:   movement > 0 && amplitude > 0,
	}
}

// Float is a looping vertical-offset oscillator: it eases between -Amplitude
// and +Amplitude over one period, forever. A Float built from a disabled
// hint stays at zero.
type Float struct {
	hint  types.Motion
	tween *gween.Tween
	up    bool
	value float64
}

// NewFloat creates an oscillator for the given hint.
func NewFloat(hint types.Motion) *Float {
	f := &Float{hint: hint}
	if hint.Enabled {
		f.up = true
		f.tween = gween.New(float32(-hint.Amplitude), float32(hint.Amplitude), f.halfPeriod(), ease.InOutSine)
	}
	return f
}

func (f *Float) halfPeriod() float32 {
	return float32(f.hint.Period.Seconds() / 2)
}

// Update advances the oscillator by dt seconds and returns the current
// offset in pixels.
func (f *Float) Update(dt float32) float64 {
	if f.tween == nil {
		return 0
	}
	v, finished := f.tween.Update(dt)
	f.value = float64(v)
	if finished {
		// Yoyo: restart in the opposite direction.
		f.up = !f.up
		from, to := float32(f.hint.Amplitude), float32(-f.hint.Amplitude)
		if f.up {
			from, to = to, from
		}
		f.tween = gween.New(from, to, f.halfPeriod(), ease.InOutSine)
	}
	return f.value
}

// Value returns the last computed offset without advancing.
func (f *Float) Value() float64 {
	return f.value
}

// Enabled reports whether the oscillator is running.
func (f *Float) Enabled() bool {
	return f.tween != nil
}
