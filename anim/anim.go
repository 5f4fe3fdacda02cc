// Package anim drives the transition of chart data from one set of values to
// another.
package anim

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultDuration = 500 * time.Millisecond
	DefaultInterval = 16 * time.Millisecond
)

// Animatable is implemented by chart data supporting transitions.
type Animatable interface {
	Update(float64)
	Finish()
}

// Interpolator maps the elapsed fraction of an animation to a scale. Both are
// in [0, 1].
type Interpolator func(float64) float64

func Linear(t float64) float64 {
	return t
}

func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// FrameFunc is called after each update with the scale just applied.
type FrameFunc func(float64) error

type Animator struct {
	Duration     time.Duration
	Interval     time.Duration
	Interpolator Interpolator
	Logger       *zap.Logger
}

// Run updates target on every tick until the animation duration is elapsed,
// then calls Finish exactly once. If ctx is done before, Run returns its error
// and target stays at the last applied scale.
func (a Animator) Run(ctx context.Context, target Animatable, frame FrameFunc) error {
	a = a.withDefaults()

	tick := time.NewTicker(a.Interval)
	defer tick.Stop()

	var (
		start = time.Now()
		count int
		last  float64
	)
	for {
		select {
		case <-ctx.Done():
			a.Logger.Debug("animation cancelled", zap.Int("frames", count), zap.Float64("scale", last))
			return ctx.Err()
		case <-tick.C:
		}
		elapsed := float64(time.Since(start)) / float64(a.Duration)
		if elapsed >= 1 {
			break
		}
		last = clamp(a.Interpolator(elapsed), last)
		target.Update(last)
		count++
		a.Logger.Debug("animation frame", zap.Int("frame", count), zap.Float64("scale", last))
		if frame == nil {
			continue
		}
		if err := frame(last); err != nil {
			return err
		}
	}
	target.Finish()
	a.Logger.Debug("animation finished", zap.Int("frames", count), zap.Duration("elapsed", time.Since(start)))
	if frame != nil {
		return frame(1)
	}
	return nil
}

func (a Animator) withDefaults() Animator {
	if a.Duration <= 0 {
		a.Duration = DefaultDuration
	}
	if a.Interval <= 0 {
		a.Interval = DefaultInterval
	}
	if a.Interpolator == nil {
		a.Interpolator = AccelerateDecelerate
	}
	if a.Logger == nil {
		a.Logger = zap.NewNop()
	}
	return a
}

// Steps returns the scales of an animation made of n frames. The last scale
// is always 1.
func Steps(n int, interp Interpolator) []float64 {
	if n <= 0 {
		return nil
	}
	if interp == nil {
		interp = Linear
	}
	var (
		list = make([]float64, n)
		last float64
	)
	for i := range list {
		last = clamp(interp(float64(i+1)/float64(n)), last)
		list[i] = last
	}
	list[n-1] = 1
	return list
}

// Replay applies every scale to target in order, then calls Finish.
func Replay(target Animatable, scales []float64, frame FrameFunc) error {
	for _, s := range scales {
		target.Update(s)
		if frame == nil {
			continue
		}
		if err := frame(s); err != nil {
			return err
		}
	}
	target.Finish()
	return nil
}

// clamp keeps scale inside [prev, 1] so that scales never go backward.
func clamp(scale, prev float64) float64 {
	if scale < prev {
		scale = prev
	}
	if scale > 1 {
		scale = 1
	}
	return scale
}
