package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/iamcalledrob/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/render/stream"
	"github.com/xaionaro-go/curve/pkg/vec"
)

func TestParsePoints(t *testing.T) {
	points, err := parsePoints("0:0,0; 1:1,1 ;2:2,4;")
	require.NoError(t, err)
	assert.Equal(t, []point{
		{T: 0, Components: []float64{0, 0}},
		{T: 1, Components: []float64{1, 1}},
		{T: 2, Components: []float64{2, 4}},
	}, points)

	samples := toSamples[vec.Vec2](points)
	assert.Equal(t, vec.V2(2, 4), samples[2].Value)

	for _, bad := range []string{"", "0", "0:x", "a:1", "0:1,2,3,4,5", "0:1;1:1,2"} {
		_, err := parsePoints(bad)
		assert.Error(t, err, bad)
	}
}

func TestRunText(t *testing.T) {
	points, err := parsePoints("0:0;1:1;2:4")
	require.NoError(t, err)

	var out bytes.Buffer
	err = run[vec.Scalar](context.Background(), config{
		Kind:       interpolation.KindLinear,
		Sampling:   gl.Sampling{Segments: 4},
		Eval:       []float64{1.5},
		Format:     "text",
		BufferSize: 1 << 12,
	}, points, &out, io.Discard)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+1+5, out.String())
	assert.Equal(t, "# f(1.5) = 2.5", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "# buffer#"), lines[1])
	assert.Equal(t, []string{"0", "0.5", "1", "2.5", "4"}, lines[2:])
}

func TestRunBinary(t *testing.T) {
	points, err := parsePoints("0:0,0;1:1,1;2:2,4")
	require.NoError(t, err)

	var out, diag bytes.Buffer
	err = run[vec.Vec2](context.Background(), config{
		Kind:       interpolation.KindLinear,
		Sampling:   gl.Sampling{Segments: 2},
		Type:       gl.ElementTypeFloat64,
		Eval:       []float64{0.5, 2},
		Format:     "binary",
		BufferSize: 1 << 12,
	}, points, &out, &diag)
	require.NoError(t, err)
	assert.Equal(t, "f(0.5) = 0.5 0.5\nf(2) = 2 4\n", diag.String())

	frame, err := stream.ReadFrame(&out)
	require.NoError(t, err)
	require.Equal(t, stream.FrameKindUpload, frame.Kind)
	vertices, err := frame.Upload.Vertices()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}, {2, 4}}, vertices)

	frame, err = stream.ReadFrame(&out)
	require.NoError(t, err)
	assert.Equal(t, stream.FrameKindRelease, frame.Kind)
	assert.Zero(t, out.Len())
}

func TestRunStreamsThroughASmallBuffer(t *testing.T) {
	points, err := parsePoints("0:0;1:1;2:4")
	require.NoError(t, err)
	cfg := config{
		Kind:     interpolation.KindLinear,
		Sampling: gl.Sampling{Segments: 4},
		Type:     gl.ElementTypeFloat64,
		Format:   "text",
	}

	// one upload frame of 5 vertices fills the buffer, so the release
	// frame fits only after the upload is drained
	cfg.BufferSize = uint(stream.HeaderSize + 5*8)
	var out bytes.Buffer
	require.NoError(t, run[vec.Scalar](context.Background(), cfg, points, &out, io.Discard))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+5, out.String())
	assert.Equal(t, []string{"0", "0.5", "1", "2.5", "4"}, lines[1:])

	cfg.BufferSize = uint(stream.HeaderSize + 4*8)
	out.Reset()
	err = run[vec.Scalar](context.Background(), cfg, points, &out, io.Discard)
	require.ErrorIs(t, err, circular.ErrNoSpace)
	assert.Zero(t, out.Len())
}
