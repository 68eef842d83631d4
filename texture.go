// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"image/draw"

	"cogentcore.org/core/base/errors"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture manages a 2D texture object. The host-side image, if set,
// is stored in GL row order (bottom row first), so standard Go images
// are flipped vertically on SetImage and flipped back on GrabImage.
type Texture struct {
	init   bool
	handle uint32
	name   string

	// Format is the size and sized format of the texture
	Format TextureFormat

	// img is the pending host image, in GL (bottom-up) row order
	img *image.RGBA
}

// NewTexture returns a new Texture with given name and the default
// RGBA8 format. Call SetImage or SetSize, then Activate.
func NewTexture(name string) *Texture {
	tx := &Texture{name: name}
	tx.Format.Defaults()
	return tx
}

// Name returns the name of the texture.
func (tx *Texture) Name() string {
	return tx.name
}

// SetName sets the name of the texture.
func (tx *Texture) SetName(name string) {
	tx.name = name
}

// Size returns the size of the texture.
func (tx *Texture) Size() image.Point {
	return tx.Format.Size
}

// Bounds returns the bounds of the texture image.
// It is equal to image.Rectangle{Max: tx.Size()}.
func (tx *Texture) Bounds() image.Rectangle {
	return tx.Format.Bounds()
}

// SetSize sets the size of the texture, discarding any pending host
// image of a different size. If the texture has been Activate'd,
// the GPU storage is reallocated on the next Activate or Transfer.
func (tx *Texture) SetSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return errors.Log(fmt.Errorf("glgpu.Texture %s: invalid size %v", tx.name, size))
	}
	if tx.Format.Size == size {
		return nil
	}
	tx.Format.Size = size
	tx.img = nil
	if tx.init {
		tx.Release()
	}
	return nil
}

// SetImage sets the host image to given image, which is converted
// to RGBA format and flipped to GL row order as needed. The texture
// size is set to the image size. The data is uploaded on the next
// Activate or Transfer call.
func (tx *Texture) SetImage(img image.Image) error {
	if img == nil {
		return errors.Log(fmt.Errorf("glgpu.Texture %s: nil image", tx.name))
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return errors.Log(fmt.Errorf("glgpu.Texture %s: invalid image size %v", tx.name, sz))
	}
	// flip to bottom-up row order for GL
	flip := transform.FlipV(img)
	if flip.Stride != 4*sz.X {
		// repack to tight rows; GL unpack assumes contiguous data
		tight := image.NewRGBA(image.Rectangle{Max: sz})
		draw.Draw(tight, tight.Bounds(), flip, flip.Bounds().Min, draw.Src)
		flip = tight
	}
	if tx.Format.Size != sz && tx.init {
		tx.Release()
	}
	tx.Format.Size = sz
	tx.img = flip
	return nil
}

// Activate establishes the GPU resources for the texture if not yet
// done, uploading any pending host image, and binds it as the active
// texture on given texture unit number (0-based).
// Must be called with a current context.
func (tx *Texture) Activate(texNo int) error {
	if !tx.init {
		if err := tx.Format.Validate(); err != nil {
			return errors.Log(err)
		}
		gl.GenTextures(1, &tx.handle)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(texNo))
		gl.BindTexture(gl.TEXTURE_2D, tx.handle)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		tx.init = true
		return tx.Transfer()
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(texNo))
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	return nil
}

// Transfer allocates GPU storage and uploads the pending host image,
// if any, or allocates empty storage of the current size otherwise
// (e.g., for use as a framebuffer color target), and generates
// mipmaps. The texture must be bound (Activate).
func (tx *Texture) Transfer() error {
	fi, err := FormatInfoFor(tx.Format.Format)
	if err != nil {
		return errors.Log(err)
	}
	szx := int32(tx.Format.Size.X)
	szy := int32(tx.Format.Size.Y)
	if tx.img != nil {
		gl.TexImage2D(gl.TEXTURE_2D, 0, int32(tx.Format.Format), szx, szy, 0, fi.Base, fi.DataType, gl.Ptr(tx.img.Pix))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, int32(tx.Format.Format), szx, szy, 0, fi.Base, fi.DataType, nil)
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return ErrCheck("Texture.Transfer " + tx.name)
}

// GrabImage reads the current contents of the texture back from the
// GPU, returning it as a standard top-down RGBA image.
// Only valid for the RGBA8 format, after Activate.
// Must be called with a current context.
func (tx *Texture) GrabImage() (*image.RGBA, error) {
	if !tx.init {
		return nil, errors.Log(fmt.Errorf("glgpu.Texture %s: GrabImage on inactive texture", tx.name))
	}
	if !tx.Format.IsStdRGBA() {
		return nil, errors.Log(fmt.Errorf("glgpu.Texture %s: GrabImage requires RGBA8 format", tx.name))
	}
	img := image.NewRGBA(tx.Bounds())
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if err := ErrCheck("Texture.GrabImage " + tx.name); err != nil {
		return nil, err
	}
	return transform.FlipV(img), nil
}

// Handle returns the GL handle for the texture; only valid after
// Activate.
func (tx *Texture) Handle() uint32 {
	return tx.handle
}

// Release releases the GPU resources associated with the texture
// (requires Activate to re-establish new ones). The handle is owned
// by the driver; releasing an already-released wrapper is a no-op.
func (tx *Texture) Release() {
	if !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}
