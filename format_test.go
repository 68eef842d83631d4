// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestFormatInfoFor(t *testing.T) {
	tests := []struct {
		sized uint32
		base  uint32
		dtype uint32
		bytes int
	}{
		{gl.R8, gl.RED, gl.UNSIGNED_BYTE, 1},
		{gl.RG8, gl.RG, gl.UNSIGNED_BYTE, 2},
		{gl.RGB8, gl.RGB, gl.UNSIGNED_BYTE, 3},
		{gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, 4},
		{gl.SRGB8_ALPHA8, gl.RGBA, gl.UNSIGNED_BYTE, 4},
		{gl.R16F, gl.RED, gl.HALF_FLOAT, 2},
		{gl.RGBA16F, gl.RGBA, gl.HALF_FLOAT, 8},
		{gl.R32F, gl.RED, gl.FLOAT, 4},
		{gl.RGB32F, gl.RGB, gl.FLOAT, 12},
		{gl.RGBA32F, gl.RGBA, gl.FLOAT, 16},
		{gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, 4},
		{gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, 4},
	}
	for _, tt := range tests {
		fi, err := FormatInfoFor(tt.sized)
		assert.NoError(t, err)
		assert.Equal(t, tt.base, fi.Base)
		assert.Equal(t, tt.dtype, fi.DataType)
		assert.Equal(t, tt.bytes, fi.Bytes)

		// same sized format always yields the same triple
		fi2, _ := FormatInfoFor(tt.sized)
		assert.Equal(t, fi, fi2)
	}
	_, err := FormatInfoFor(gl.RGB5_A1)
	assert.Error(t, err)
}

func TestIsDepthFormat(t *testing.T) {
	assert.True(t, IsDepthFormat(gl.DEPTH_COMPONENT24))
	assert.True(t, IsDepthFormat(gl.DEPTH_COMPONENT32F))
	assert.False(t, IsDepthFormat(gl.RGBA8))
	assert.False(t, IsDepthFormat(0))
}

func TestRowStride(t *testing.T) {
	tests := []struct {
		width  int
		bpp    int
		stride int
	}{
		{4, 4, 16},
		{5, 4, 20},
		{5, 3, 16}, // 15 -> 16
		{1, 1, 4},
		{4, 1, 4},
		{5, 1, 8},
		{7, 3, 24}, // 21 -> 24
		{8, 2, 16},
	}
	for _, tt := range tests {
		st := RowStride(tt.width, tt.bpp)
		assert.Equal(t, tt.stride, st)
		assert.GreaterOrEqual(t, st, tt.width*tt.bpp)
		assert.Zero(t, st%4)
	}
}

func TestTextureFormat(t *testing.T) {
	tf := NewTextureFormat(5, 3)
	assert.Equal(t, uint32(gl.RGBA8), tf.Format)
	assert.True(t, tf.IsStdRGBA())
	assert.Equal(t, image.Rect(0, 0, 5, 3), tf.Bounds())
	assert.Equal(t, 4, tf.BytesPerPixel())
	assert.Equal(t, 20, tf.Stride())
	assert.Equal(t, 60, tf.TotalByteSize())
	assert.NoError(t, tf.Validate())

	tf.Set(5, 3, gl.RGB8)
	assert.False(t, tf.IsStdRGBA())
	assert.Equal(t, 3, tf.BytesPerPixel())
	assert.Equal(t, 16, tf.Stride()) // 15 padded to 16
	assert.Equal(t, 48, tf.TotalByteSize())

	tf.SetSize(0, 3)
	assert.Error(t, tf.Validate())
	tf.Set(5, 3, gl.RGB5_A1)
	assert.Error(t, tf.Validate())
}

func TestBufferDims(t *testing.T) {
	bd := NewBufferDims(image.Point{5, 3}, 3)
	assert.Equal(t, uint64(15), bd.UnpaddedRowSize)
	assert.Equal(t, uint64(16), bd.PaddedRowSize)
	assert.Equal(t, uint64(45), bd.UnpaddedSize())
	assert.Equal(t, uint64(48), bd.PaddedSize())
	assert.False(t, bd.HasNoPadding())

	bd.Set(image.Point{4, 3}, 4)
	assert.True(t, bd.HasNoPadding())
	assert.Equal(t, bd.UnpaddedSize(), bd.PaddedSize())
}

func TestVectorTypeBytes(t *testing.T) {
	assert.Equal(t, 8, Vec2fVecType.Bytes())
	assert.Equal(t, 12, Vec3fVecType.Bytes())
	assert.Equal(t, 16, Vec4fVecType.Bytes())
	assert.Equal(t, 8, VectorType{Float64, 1}.Bytes())
}
