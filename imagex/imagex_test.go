// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtToFormat(t *testing.T) {
	tests := []struct {
		ext string
		f   Formats
	}{
		{"png", PNG},
		{".png", PNG},
		{"JPG", JPEG},
		{"jpeg", JPEG},
		{"gif", GIF},
		{"tif", TIFF},
		{"tiff", TIFF},
		{"bmp", BMP},
		{"webp", WebP},
		{"ppm", PPMRaw},
	}
	for _, tt := range tests {
		f, err := ExtToFormat(tt.ext)
		assert.NoError(t, err)
		assert.Equal(t, tt.f, f)
	}
	_, err := ExtToFormat("xyz")
	assert.Error(t, err)
	_, err = ExtToFormat("")
	assert.Error(t, err)
}

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			im.SetRGBA(x, y, color.RGBA{byte(x * 60), byte(y * 80), byte(x*y*20 + 5), 255})
		}
	}
	return im
}

func TestPPMRoundTrip(t *testing.T) {
	src := testImage()
	for _, ascii := range []bool{true, false} {
		var buf bytes.Buffer
		err := EncodePPM(&buf, src, ascii)
		assert.NoError(t, err)
		im, err := DecodePPM(&buf)
		assert.NoError(t, err)
		assert.Equal(t, src.Bounds(), im.Bounds())
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				assert.Equal(t, src.RGBAAt(x, y), im.(*image.RGBA).RGBAAt(x, y))
			}
		}
	}
}

func TestPPMViaImageDecode(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	err := Write(src, &buf, PPMRaw)
	assert.NoError(t, err)
	im, f, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, PPMRaw, f)
	assert.Equal(t, src.Bounds(), im.Bounds())

	buf.Reset()
	err = Write(src, &buf, PPM)
	assert.NoError(t, err)
	cfg, ext, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	assert.Equal(t, "ppm", ext)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestPPMHeaderComments(t *testing.T) {
	data := "P3 # the magic\n# a full comment line\n2 1\n# maxval next\n255\n255 0 0  0 255 0\n"
	im, err := DecodePPM(bytes.NewReader([]byte(data)))
	assert.NoError(t, err)
	rgba := im.(*image.RGBA)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba.RGBAAt(1, 0))
}

func TestPPMMaxvalScaling(t *testing.T) {
	data := "P3\n1 1\n15\n15 0 7\n"
	im, err := DecodePPM(bytes.NewReader([]byte(data)))
	assert.NoError(t, err)
	c := im.(*image.RGBA).RGBAAt(0, 0)
	assert.Equal(t, byte(255), c.R)
	assert.Equal(t, byte(0), c.G)
	assert.Equal(t, byte(7*255/15), c.B)
}

func TestPPMErrors(t *testing.T) {
	bad := []string{
		"P5\n2 2\n255\n",            // wrong magic
		"P6\n0 2\n255\n",            // zero width
		"P6\n2 2\n70000\n",          // maxval out of range
		"P6\n2 2\n255\nab",          // short pixel data
		"P3\n1 1\n255\n12 x 9\n",    // bad ascii sample
	}
	for _, s := range bad {
		_, err := DecodePPM(bytes.NewReader([]byte(s)))
		assert.Error(t, err, s)
	}
}

func TestPNGReadWrite(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	err := Write(src, &buf, PNG)
	assert.NoError(t, err)
	im, f, err := Read(&buf)
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, src.Bounds(), im.Bounds())
}
