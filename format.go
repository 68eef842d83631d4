// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// FormatInfo is the fixed pixel-transfer description of a sized
// internal texture format: the base format and data type to pass to
// TexImage2D / ReadPixels, and the bytes per pixel in host memory.
type FormatInfo struct {
	// Base is the base pixel format (e.g., gl.RGBA)
	Base uint32

	// DataType is the element data type (e.g., gl.UNSIGNED_BYTE)
	DataType uint32

	// Bytes is the number of bytes per pixel in host memory
	Bytes int
}

// formatTable maps each supported sized internal format to its
// FormatInfo. A given sized format always maps to the same triple.
var formatTable = map[uint32]FormatInfo{
	gl.R8:                {gl.RED, gl.UNSIGNED_BYTE, 1},
	gl.RG8:               {gl.RG, gl.UNSIGNED_BYTE, 2},
	gl.RGB8:              {gl.RGB, gl.UNSIGNED_BYTE, 3},
	gl.RGBA8:             {gl.RGBA, gl.UNSIGNED_BYTE, 4},
	gl.SRGB8_ALPHA8:      {gl.RGBA, gl.UNSIGNED_BYTE, 4},
	gl.R16F:              {gl.RED, gl.HALF_FLOAT, 2},
	gl.RGB16F:            {gl.RGB, gl.HALF_FLOAT, 6},
	gl.RGBA16F:           {gl.RGBA, gl.HALF_FLOAT, 8},
	gl.R32F:              {gl.RED, gl.FLOAT, 4},
	gl.RGB32F:            {gl.RGB, gl.FLOAT, 12},
	gl.RGBA32F:           {gl.RGBA, gl.FLOAT, 16},
	gl.DEPTH_COMPONENT24: {gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, 4},
	gl.DEPTH_COMPONENT32F: {gl.DEPTH_COMPONENT, gl.FLOAT, 4},
}

// FormatInfoFor returns the FormatInfo for given sized internal
// format, or an error if the format is not supported.
func FormatInfoFor(sized uint32) (FormatInfo, error) {
	fi, ok := formatTable[sized]
	if !ok {
		return FormatInfo{}, fmt.Errorf("glgpu.FormatInfoFor: sized format %#04x not supported", sized)
	}
	return fi, nil
}

// IsDepthFormat returns true if given sized format is a depth format.
func IsDepthFormat(sized uint32) bool {
	fi, ok := formatTable[sized]
	return ok && fi.Base == gl.DEPTH_COMPONENT
}

// RowStride returns the host-memory stride in bytes for a row of
// width pixels at given bytes per pixel, rounded up to the standard
// 4-byte unpack alignment.
func RowStride(width, bytesPerPixel int) int {
	row := width * bytesPerPixel
	return (row + 3) &^ 3
}

// TextureFormat describes the size and GL sized format of a Texture
// or a Framebuffer color target.
type TextureFormat struct {
	// Size of image in pixels
	Size image.Point

	// Format is the sized internal format: RGBA8 is the default
	Format uint32

	// Samples is the number of multisample samples: 0 or 1 = no
	// multisampling, 4 is recommended when used as a 3D render target
	Samples int
}

// NewTextureFormat returns a new TextureFormat with the default
// RGBA8 format and given size.
func NewTextureFormat(width, height int) *TextureFormat {
	tf := &TextureFormat{}
	tf.Defaults()
	tf.Size = image.Point{width, height}
	return tf
}

func (tf *TextureFormat) Defaults() {
	tf.Format = gl.RGBA8
	tf.Samples = 1
}

// String returns a human-readable version of the format.
func (tf *TextureFormat) String() string {
	return fmt.Sprintf("Size: %v  Format: %#04x  MultiSample: %d", tf.Size, tf.Format, tf.Samples)
}

// SetSize sets the width, height.
func (tf *TextureFormat) SetSize(w, h int) {
	tf.Size = image.Point{X: w, Y: h}
}

// Set sets width, height and sized format.
func (tf *TextureFormat) Set(w, h int, sized uint32) {
	tf.SetSize(w, h)
	tf.Format = sized
}

// SetMultisample sets the number of multisample samples.
// Values must be a power of 2; 4 is typically sufficient.
func (tf *TextureFormat) SetMultisample(nsamp int) {
	tf.Samples = nsamp
}

// IsStdRGBA returns true if the format is the standard RGBA8,
// which is compatible with the Go image.RGBA format.
func (tf *TextureFormat) IsStdRGBA() bool {
	return tf.Format == gl.RGBA8
}

// Bounds returns the rectangle defining this image: 0,0,w,h.
func (tf *TextureFormat) Bounds() image.Rectangle {
	return image.Rectangle{Max: tf.Size}
}

// Aspect returns the aspect ratio X / Y.
func (tf *TextureFormat) Aspect() float32 {
	if tf.Size.Y > 0 {
		return float32(tf.Size.X) / float32(tf.Size.Y)
	}
	return 1.3
}

// Info returns the FormatInfo for the sized format.
// Unsupported formats are logged and return the zero value.
func (tf *TextureFormat) Info() FormatInfo {
	fi, err := FormatInfoFor(tf.Format)
	if err != nil {
		slog.Error("glgpu.TextureFormat.Info", "err", err)
	}
	return fi
}

// BytesPerPixel returns the number of bytes required to represent
// one pixel in host memory.
func (tf *TextureFormat) BytesPerPixel() int {
	return tf.Info().Bytes
}

// Stride returns the number of bytes per image row in host memory,
// rounded up to the 4-byte unpack alignment.
// Stride >= Size.X * BytesPerPixel always holds.
func (tf *TextureFormat) Stride() int {
	return RowStride(tf.Size.X, tf.BytesPerPixel())
}

// TotalByteSize returns the total number of bytes required to
// represent the image in host memory: Size.Y * Stride.
func (tf *TextureFormat) TotalByteSize() int {
	return tf.Size.Y * tf.Stride()
}

// Validate returns an error if the size is degenerate or the sized
// format is not in the supported format table.
func (tf *TextureFormat) Validate() error {
	if tf.Size.X <= 0 || tf.Size.Y <= 0 {
		return fmt.Errorf("glgpu.TextureFormat: invalid size %v", tf.Size)
	}
	_, err := FormatInfoFor(tf.Format)
	return err
}

// BufferDims represents the sizes required in host memory to
// represent the pixel data of a texture of a given size, with rows
// padded to the 4-byte unpack alignment.
type BufferDims struct {
	Width           uint64
	Height          uint64
	UnpaddedRowSize uint64
	PaddedRowSize   uint64
}

func NewBufferDims(size image.Point, bytesPerPixel int) *BufferDims {
	bd := &BufferDims{}
	bd.Set(size, bytesPerPixel)
	return bd
}

func (bd *BufferDims) Set(size image.Point, bytesPerPixel int) {
	bd.Width = uint64(size.X)
	bd.Height = uint64(size.Y)
	bd.UnpaddedRowSize = bd.Width * uint64(bytesPerPixel)
	const align = 4 // default GL pack / unpack alignment
	padding := (align - bd.UnpaddedRowSize%align) % align
	bd.PaddedRowSize = bd.UnpaddedRowSize + padding
}

// PaddedSize returns the total padded size of the data.
func (bd *BufferDims) PaddedSize() uint64 {
	return bd.PaddedRowSize * bd.Height
}

// UnpaddedSize returns the total unpadded size of the data.
func (bd *BufferDims) UnpaddedSize() uint64 {
	return bd.UnpaddedRowSize * bd.Height
}

// HasNoPadding returns true if the unpadded and padded row sizes
// are the same.
func (bd *BufferDims) HasNoPadding() bool {
	return bd.UnpaddedRowSize == bd.PaddedRowSize
}
