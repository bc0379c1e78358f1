package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/xaionaro-go/curve/pkg/gl"
)

type FrameKind uint8

const (
	FrameKindUndefined = FrameKind(iota)
	FrameKindUpload
	FrameKindRelease
	EndOfFrameKind
)

func (k FrameKind) String() string {
	switch k {
	case FrameKindUndefined:
		return "undefined"
	case FrameKindUpload:
		return "upload"
	case FrameKindRelease:
		return "release"
	default:
		return fmt.Sprintf("unknown_frame_kind_%d", uint8(k))
	}
}

// frameHeader is the little-endian header preceding every frame; upload
// frames are followed by DataLength bytes of vertex data.
type frameHeader struct {
	Kind          FrameKind
	Components    uint8
	Type          uint8
	Usage         uint8
	Stride        uint32
	Buffer        uint64
	Offset        uint32
	VertexCount   uint32
	TotalVertices uint32
	DataLength    uint32
}

// HeaderSize is the size of a frame header in bytes.
var HeaderSize = binary.Size(frameHeader{})

// Frame is one decoded renderer call.
type Frame struct {
	Kind FrameKind

	// Upload is set for FrameKindUpload.
	Upload gl.Upload

	// Buffer is set for FrameKindRelease.
	Buffer gl.BufferID
}

func encodeUpload(upload gl.Upload) []byte {
	layout := upload.Layout.Normalized()
	hdr := frameHeader{
		Kind:          FrameKindUpload,
		Components:    uint8(layout.Components),
		Type:          uint8(layout.Type),
		Usage:         uint8(layout.Usage),
		Stride:        uint32(layout.Stride),
		Buffer:        uint64(upload.Buffer),
		Offset:        uint32(upload.Offset),
		VertexCount:   uint32(upload.VertexCount),
		TotalVertices: uint32(upload.TotalVertices),
		DataLength:    uint32(len(upload.Data)),
	}
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(upload.Data))
	must(binary.Write(&buf, binary.LittleEndian, hdr))
	buf.Write(upload.Data)
	return buf.Bytes()
}

func encodeRelease(buffer gl.BufferID) []byte {
	var buf bytes.Buffer
	must(binary.Write(&buf, binary.LittleEndian, frameHeader{
		Kind:   FrameKindRelease,
		Buffer: uint64(buffer),
	}))
	return buf.Bytes()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ReadFrame decodes the next frame from r. It returns io.EOF only if r
// ends exactly at a frame boundary.
func ReadFrame(r io.Reader) (Frame, error) {
	var hdr frameHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Frame{}, err
	}

	switch hdr.Kind {
	case FrameKindRelease:
		if hdr.DataLength != 0 {
			return Frame{}, fmt.Errorf("a release frame carries %d bytes of data", hdr.DataLength)
		}
		return Frame{Kind: FrameKindRelease, Buffer: gl.BufferID(hdr.Buffer)}, nil
	case FrameKindUpload:
	default:
		return Frame{}, fmt.Errorf("unknown frame kind %v", hdr.Kind)
	}

	upload := gl.Upload{
		Buffer: gl.BufferID(hdr.Buffer),
		Layout: gl.Layout{
			Components: int(hdr.Components),
			Type:       gl.ElementType(hdr.Type),
			Stride:     int(hdr.Stride),
			Usage:      gl.Usage(hdr.Usage),
		},
		Offset:        int(hdr.Offset),
		VertexCount:   int(hdr.VertexCount),
		TotalVertices: int(hdr.TotalVertices),
	}
	if err := upload.Layout.Validate(); err != nil {
		return Frame{}, fmt.Errorf("invalid layout in the frame header: %w", err)
	}
	if expected := upload.VertexCount * upload.Layout.ByteStride(); int(hdr.DataLength) != expected {
		return Frame{}, fmt.Errorf("the data length %d does not match %d vertices of %d bytes", hdr.DataLength, upload.VertexCount, upload.Layout.ByteStride())
	}

	upload.Data = make([]byte, hdr.DataLength)
	if _, err := io.ReadFull(r, upload.Data); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Frame{}, fmt.Errorf("unable to read %d bytes of vertex data: %w", hdr.DataLength, err)
	}
	return Frame{Kind: FrameKindUpload, Upload: upload}, nil
}
