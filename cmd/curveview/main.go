package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/interpolation/strategy"
	"github.com/xaionaro-go/curve/pkg/render/ebitenrender"
	"github.com/xaionaro-go/curve/pkg/vec"
	"github.com/xaionaro-go/curve/pkg/window"
	"github.com/xaionaro-go/observability"
)

func main() {
	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	kind := strategy.Default
	pflag.Var(&kind, "algorithm", "interpolation algorithm: "+strategy.Usage())
	windowSize := pflag.Int("window-size", 8, "the amount of most recent samples the curve is built from")
	period := pflag.Duration("period", 200*time.Millisecond, "interval between two generated samples")
	freqX := pflag.Float64("frequency-x", 3, "frequency of the x component of the generated Lissajous figure")
	freqY := pflag.Float64("frequency-y", 2, "frequency of the y component of the generated Lissajous figure")
	segments := pflag.Int("segments", gl.DefaultSegments, "the amount of uniform segments the curve is sampled with")
	tolerance := pflag.Float64("tolerance", 0, "if positive, segments are subdivided until the chord deviation is within it")
	strokeWidth := pflag.Float32("stroke-width", ebitenrender.DefaultStrokeWidth, "line width in pixels")
	pflag.Parse()

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	if *windowSize < 2 {
		logger.Panicf(ctx, "the window must hold at least 2 samples, got %d", *windowSize)
	}
	if *period <= 0 {
		logger.Panicf(ctx, "the period must be positive, got %v", *period)
	}

	renderer := ebitenrender.New()
	renderer.StrokeWidth = *strokeWidth
	renderer.Viewport = ebitenrender.Bounds{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1}

	line, err := gl.NewLine[vec.Vec2](renderer, gl.LineConfig{
		Sampling: gl.Sampling{Segments: *segments, Tolerance: *tolerance},
		Usage:    gl.UsageStream,
	})
	assertNoError(err)

	g := &game{
		ctx:       ctx,
		window:    window.New(kind, vec.Space[vec.Vec2]{}, *windowSize),
		line:      line,
		renderer:  renderer,
		period:    *period,
		generate:  lissajous(*freqX, *freqY),
		startedAt: time.Now(),
	}

	logger.Infof(ctx, "starting: %s over %d samples", kind, *windowSize)
	ebiten.SetWindowTitle("curveview (" + kind.String() + ")")
	ebiten.SetWindowSize(800, 800)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	assertNoError(ebiten.RunGame(g))
	assertNoError(line.Destroy(ctx))
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
