package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/interpolation/strategy"
	"github.com/xaionaro-go/curve/pkg/render/stream"
	"github.com/xaionaro-go/curve/pkg/vec"
	"github.com/xaionaro-go/datacounter"
	"github.com/xaionaro-go/observability"
)

type config struct {
	Kind     interpolation.Kind
	Sampling gl.Sampling
	Usage    gl.Usage
	Type     gl.ElementType
	Eval     []float64
	Format   string

	BufferSize uint
}

func main() {
	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	kind := strategy.Default
	pflag.Var(&kind, "algorithm", "interpolation algorithm: "+strategy.Usage())
	pointsFlag := pflag.String("points", "", "samples: 't:x[,y[,z[,w]]];...', e.g. '0:0,0;1:1,1;2:2,4'")
	segments := pflag.Int("segments", gl.DefaultSegments, "the amount of uniform segments the curve is sampled with")
	tolerance := pflag.Float64("tolerance", 0, "if positive, segments are subdivided until the chord deviation is within it")
	maxDepth := pflag.Int("max-depth", gl.DefaultMaxDepth, "maximal subdivision depth of one segment")
	usage := gl.UsageStatic
	pflag.Var(&usage, "usage", "buffer usage hint: static|dynamic|stream")
	float64Flag := pflag.Bool("float64", false, "encode vertices as float64 instead of float32")
	evalFlag := pflag.Float64Slice("eval", nil, "parameters to evaluate the curve at")
	format := pflag.String("format", "text", "output format: text|binary")
	bufferSize := pflag.Uint("buffer-size", 1<<20, "size of the render stream buffer in bytes")
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

	points, err := parsePoints(*pointsFlag)
	if err != nil {
		fatal(ctx, fmt.Errorf("invalid --points: %w", err))
	}

	elementType := gl.ElementTypeFloat32
	if *float64Flag {
		elementType = gl.ElementTypeFloat64
	}
	*format = strings.ToLower(*format)
	switch *format {
	case "text", "binary":
	default:
		fatal(ctx, fmt.Errorf("unknown format '%s'", *format))
	}

	cfg := config{
		Kind: kind,
		Sampling: gl.Sampling{
			Segments:  *segments,
			Tolerance: *tolerance,
			MaxDepth:  *maxDepth,
		},
		Usage:      usage,
		Type:       elementType,
		Eval:       *evalFlag,
		Format:     *format,
		BufferSize: *bufferSize,
	}
	wc := datacounter.NewWriterCounter(os.Stdout)

	switch len(points[0].Components) {
	case 1:
		err = run[vec.Scalar](ctx, cfg, points, wc, os.Stderr)
	case 2:
		err = run[vec.Vec2](ctx, cfg, points, wc, os.Stderr)
	case 3:
		err = run[vec.Vec3](ctx, cfg, points, wc, os.Stderr)
	case 4:
		err = run[vec.Vec4](ctx, cfg, points, wc, os.Stderr)
	}
	if err != nil {
		fatal(ctx, err)
	}
	logger.Debugf(ctx, "written: %d", wc.Count())
}

func fatal(ctx context.Context, err error) {
	logger.Error(ctx, err)
	belt.Flush(ctx)
	os.Exit(1)
}

func runStream(
	ctx context.Context,
	cfg config,
	renderer *stream.Renderer,
	out io.Writer,
) error {
	if cfg.Format == "binary" {
		_, err := io.Copy(out, renderer)
		if err != nil {
			return fmt.Errorf("unable to copy the frames: %w", err)
		}
		return nil
	}

	for {
		frame, err := stream.ReadFrame(renderer)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to read a frame: %w", err)
		}
		switch frame.Kind {
		case stream.FrameKindUpload:
			if err := printUpload(out, frame.Upload); err != nil {
				return err
			}
		case stream.FrameKindRelease:
			logger.Debugf(ctx, "released %s", frame.Buffer)
		}
	}
}

func printUpload(out io.Writer, upload gl.Upload) error {
	vertices, err := upload.Vertices()
	if err != nil {
		return fmt.Errorf("unable to decode the vertices: %w", err)
	}
	if _, err := fmt.Fprintf(out, "# %s: %d vertices, %s, %s\n", upload.Buffer, upload.VertexCount, upload.Layout.Type, upload.Layout.Usage.GLName()); err != nil {
		return err
	}
	for _, v := range vertices {
		if _, err := fmt.Fprintln(out, formatComponents(v)); err != nil {
			return err
		}
	}
	return nil
}

func formatComponents(v []float64) string {
	var sb strings.Builder
	for idx, c := range v {
		if idx > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	return sb.String()
}
