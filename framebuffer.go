// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Framebuffer is an offscreen render target: a framebuffer object
// aggregating some number of color texture targets and an optional
// depth renderbuffer. Completeness is checked on every Activate.
type Framebuffer struct {
	init   bool
	handle uint32
	name   string
	size   image.Point

	// Format is the sized internal format of the color targets
	Format uint32

	ncolors  int
	hasDepth bool
	colors   []*Texture
	depth    *Renderbuffer
	depthDat []float32 // cached depth readback
	depthOld bool      // depth cache is out of date since last render
}

// NewFramebuffer returns a new Framebuffer with given unique name and
// size, ncolors RGBA8 color texture targets, and an optional
// DEPTH_COMPONENT32F depth renderbuffer. GPU resources are
// established on the first Activate call.
func NewFramebuffer(name string, size image.Point, ncolors int, depth bool) (*Framebuffer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("glgpu.NewFramebuffer %s: invalid size %v", name, size))
	}
	if ncolors < 0 || ncolors > MaxColorTargets {
		return nil, errors.Log(fmt.Errorf("glgpu.NewFramebuffer %s: invalid number of color targets %d", name, ncolors))
	}
	if ncolors == 0 && !depth {
		return nil, errors.Log(fmt.Errorf("glgpu.NewFramebuffer %s: no color or depth targets", name))
	}
	fb := &Framebuffer{name: name, size: size, ncolors: ncolors, hasDepth: depth}
	fb.Format = gl.RGBA8
	return fb, nil
}

// MaxColorTargets is the number of color attachments supported,
// the GL 3.3 guaranteed minimum for MAX_COLOR_ATTACHMENTS.
const MaxColorTargets = 8

// Name returns the name of the framebuffer.
func (fb *Framebuffer) Name() string {
	return fb.name
}

// Size returns the size of the framebuffer.
func (fb *Framebuffer) Size() image.Point {
	return fb.size
}

// Bounds returns the bounds of the framebuffer's image. It is equal
// to image.Rectangle{Max: fb.Size()}.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rectangle{Max: fb.size}
}

// SetSize sets the size of the framebuffer. If it has been
// Activate'd, this releases and re-establishes the GPU side,
// including all color and depth targets, at the new size.
func (fb *Framebuffer) SetSize(size image.Point) error {
	if fb.size == size {
		return nil
	}
	if size.X <= 0 || size.Y <= 0 {
		return errors.Log(fmt.Errorf("glgpu.Framebuffer %s: invalid size %v", fb.name, size))
	}
	wasInit := fb.init
	if fb.init {
		fb.Release()
	}
	fb.size = size
	if wasInit {
		return fb.Activate()
	}
	return nil
}

// NumColorTargets returns the number of color targets.
func (fb *Framebuffer) NumColorTargets() int {
	return fb.ncolors
}

// ColorTexture returns the i'th color target texture.
// Returns nil if not Activate'd or out of range (error auto logged).
func (fb *Framebuffer) ColorTexture(i int) *Texture {
	if !fb.init || i < 0 || i >= fb.ncolors {
		errors.Log(fmt.Errorf("glgpu.Framebuffer %s: no color texture %d", fb.name, i))
		return nil
	}
	return fb.colors[i]
}

// Activate establishes the GPU resources for the framebuffer and all
// associated targets (if not already done), checks completeness, and
// sets it as the current rendering target with a full viewport.
// Must be called with a current context.
func (fb *Framebuffer) Activate() error {
	if !fb.init {
		gl.GenFramebuffers(1, &fb.handle)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)

		fb.colors = make([]*Texture, fb.ncolors)
		bufs := make([]uint32, fb.ncolors)
		for i := range fb.colors {
			tx := NewTexture(fmt.Sprintf("fb-%s-color%d", fb.name, i))
			tx.Format.Format = fb.Format
			if err := tx.SetSize(fb.size); err != nil {
				return err
			}
			if err := tx.Activate(0); err != nil {
				return err
			}
			// no mipmap chain on render targets
			gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
			gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(i), gl.TEXTURE_2D, tx.Handle(), 0)
			fb.colors[i] = tx
			bufs[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
		}
		if fb.ncolors > 0 {
			gl.DrawBuffers(int32(fb.ncolors), &bufs[0])
		} else {
			gl.DrawBuffer(gl.NONE)
			gl.ReadBuffer(gl.NONE)
		}
		if fb.hasDepth {
			rb, err := NewRenderbuffer(fb.size, gl.DEPTH_COMPONENT32F, 0)
			if err != nil {
				return err
			}
			if err := rb.Activate(); err != nil {
				return err
			}
			gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, rb.Handle())
			fb.depth = rb
		}
		fb.init = true
		fb.depthOld = true
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	}
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return errors.Log(fmt.Errorf("glgpu.Framebuffer %s: not complete: status %#04x", fb.name, status))
	}
	gl.Viewport(0, 0, int32(fb.size.X), int32(fb.size.Y))
	return nil
}

// Handle returns the GL handle for the framebuffer; only valid after
// Activate.
func (fb *Framebuffer) Handle() uint32 {
	return fb.handle
}

// Rendered should be called after rendering to the framebuffer, to
// invalidate cached data read back from the GPU (depth buffer).
func (fb *Framebuffer) Rendered() {
	fb.depthOld = true
}

// GrabImage reads the current contents of the i'th color target back
// from the GPU, returning it as a standard top-down RGBA image.
// Must be called with a current context, after Activate.
func (fb *Framebuffer) GrabImage(i int) (*image.RGBA, error) {
	if !fb.init || i < 0 || i >= fb.ncolors {
		return nil, errors.Log(fmt.Errorf("glgpu.Framebuffer %s: no color target %d to grab", fb.name, i))
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.handle)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + uint32(i))
	img := image.NewRGBA(fb.Bounds())
	gl.ReadPixels(0, 0, int32(fb.size.X), int32(fb.size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if err := ErrCheck("Framebuffer.GrabImage " + fb.name); err != nil {
		return nil, err
	}
	return transform.FlipV(img), nil
}

// grabDepth reads the depth data from the GPU if out of date.
func (fb *Framebuffer) grabDepth() {
	if !fb.depthOld {
		return
	}
	totn := fb.size.X * fb.size.Y
	if len(fb.depthDat) != totn {
		fb.depthDat = make([]float32, totn)
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.handle)
	gl.ReadPixels(0, 0, int32(fb.size.X), int32(fb.size.Y), gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(fb.depthDat))
	ErrCheck("Framebuffer.grabDepth " + fb.name)
	fb.depthOld = false
}

// DepthAt returns the depth-buffer value at given x,y coordinate in
// framebuffer coordinates (Y = 0 at bottom). Must be called with a
// current context, after Activate, with a depth target present.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if !fb.init || !fb.hasDepth {
		return 0
	}
	fb.grabDepth()
	return fb.depthDat[y*fb.size.X+x]
}

// DepthAll returns the entire depth buffer as float32 values of the
// same size as the framebuffer. The slice is an internal reused
// buffer; copy to retain across renders.
func (fb *Framebuffer) DepthAll() []float32 {
	if !fb.init || !fb.hasDepth {
		return nil
	}
	fb.grabDepth()
	return fb.depthDat
}

// Release releases the GPU resources associated with the framebuffer
// and all of its targets (requires Activate to re-establish).
func (fb *Framebuffer) Release() {
	if !fb.init {
		return
	}
	for _, tx := range fb.colors {
		tx.Release()
	}
	fb.colors = nil
	if fb.depth != nil {
		fb.depth.Release()
		fb.depth = nil
	}
	gl.DeleteFramebuffers(1, &fb.handle)
	fb.handle = 0
	fb.init = false
}

// BindDefault binds the default window framebuffer as the rendering
// target, with a viewport of given size.
func BindDefault(size image.Point) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// Pair is a pair of same-format framebuffers for ping-pong iterative
// processing: each iteration reads the previous iteration's output
// texture (Src) while rendering into the other target (Dst), then
// calls Swap.
type Pair struct {
	Fbos [2]*Framebuffer
	cur  int
}

// NewPair returns a new ping-pong Pair of single-color-target
// framebuffers with given base name and size.
func NewPair(name string, size image.Point) (*Pair, error) {
	pr := &Pair{}
	for i := range pr.Fbos {
		fb, err := NewFramebuffer(fmt.Sprintf("%s-%d", name, i), size, 1, false)
		if err != nil {
			return nil, err
		}
		pr.Fbos[i] = fb
	}
	return pr, nil
}

// Activate establishes the GPU resources for both framebuffers,
// leaving Dst bound as the current rendering target.
func (pr *Pair) Activate() error {
	if err := pr.Src().Activate(); err != nil {
		return err
	}
	return pr.Dst().Activate()
}

// Src returns the source framebuffer: the previous iteration's
// output, whose color texture is read by the current pass.
func (pr *Pair) Src() *Framebuffer {
	return pr.Fbos[1-pr.cur]
}

// Dst returns the destination framebuffer: the render target of the
// current pass.
func (pr *Pair) Dst() *Framebuffer {
	return pr.Fbos[pr.cur]
}

// Swap exchanges the roles of the two framebuffers, making the
// just-rendered destination the next source.
func (pr *Pair) Swap() {
	pr.cur = 1 - pr.cur
}

// Release releases both framebuffers.
func (pr *Pair) Release() {
	for _, fb := range pr.Fbos {
		fb.Release()
	}
}
