package main

import (
	"context"
	"math"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/render/ebitenrender"
	"github.com/xaionaro-go/curve/pkg/vec"
	"github.com/xaionaro-go/curve/pkg/window"
)

func lissajous(freqX, freqY float64) func(t float64) vec.Vec2 {
	return func(t float64) vec.Vec2 {
		return vec.V2(math.Sin(freqX*t), math.Sin(freqY*t+math.Pi/2))
	}
}

// game pushes a generated sample into the window every period and restages
// the line built from the window on every tick.
type game struct {
	ctx      context.Context
	window   *window.Window[float64, vec.Vec2]
	line     *gl.Line[vec.Vec2]
	renderer *ebitenrender.Renderer
	period   time.Duration
	generate func(t float64) vec.Vec2

	startedAt   time.Time
	sampleCount int
}

var _ ebiten.Game = (*game)(nil)

func (g *game) Update() error {
	g.pushDue(time.Since(g.startedAt))
	if g.window.Len() < g.window.Kind().MinSamples() {
		return nil
	}

	interp, err := g.window.Interpolator(g.ctx)
	if err != nil {
		logger.Warnf(g.ctx, "skipping the frame: %v", err)
		return nil
	}
	if err := g.line.Update(g.ctx, interp); err != nil {
		logger.Warnf(g.ctx, "skipping the frame: %v", err)
		return nil
	}
	if err := g.line.Flush(g.ctx); err != nil {
		logger.Errorf(g.ctx, "unable to flush the line: %v", err)
	}
	return nil
}

// pushDue pushes every sample whose time has come. Sample parameters are
// exact multiples of the period, so they stay uniformly spaced.
func (g *game) pushDue(elapsed time.Duration) {
	for time.Duration(g.sampleCount)*g.period <= elapsed {
		t := (time.Duration(g.sampleCount) * g.period).Seconds()
		sample := interpolation.Sample[float64, vec.Vec2]{T: t, Value: g.generate(t)}
		if err := g.window.Push(sample); err != nil {
			logger.Errorf(g.ctx, "unable to push %v: %v", sample, err)
		}
		g.sampleCount++
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
