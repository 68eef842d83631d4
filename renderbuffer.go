// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Renderbuffer manages a renderbuffer object: driver-optimized
// storage for a framebuffer attachment that is rendered to but not
// sampled as a texture (typically the depth target).
type Renderbuffer struct {
	init   bool
	handle uint32

	// Size of the renderbuffer in pixels
	Size image.Point

	// Format is the sized internal format, e.g., gl.DEPTH_COMPONENT32F
	Format uint32

	// Samples is the number of multisample samples; 0 or 1 = none
	Samples int
}

// NewRenderbuffer returns a new Renderbuffer of given size, sized
// internal format, and multisample count, validating the parameters
// against the supported format table.
func NewRenderbuffer(size image.Point, sized uint32, samples int) (*Renderbuffer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("glgpu.NewRenderbuffer: invalid size %v", size))
	}
	if _, err := FormatInfoFor(sized); err != nil {
		return nil, errors.Log(err)
	}
	return &Renderbuffer{Size: size, Format: sized, Samples: samples}, nil
}

// Activate establishes the GPU storage for the renderbuffer if not
// yet done, and binds it as the active renderbuffer.
// Must be called with a current context.
func (rb *Renderbuffer) Activate() error {
	if !rb.init {
		gl.GenRenderbuffers(1, &rb.handle)
		gl.BindRenderbuffer(gl.RENDERBUFFER, rb.handle)
		szx := int32(rb.Size.X)
		szy := int32(rb.Size.Y)
		if rb.Samples > 1 {
			gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(rb.Samples), rb.Format, szx, szy)
		} else {
			gl.RenderbufferStorage(gl.RENDERBUFFER, rb.Format, szx, szy)
		}
		rb.init = true
		return ErrCheck("Renderbuffer.Activate")
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb.handle)
	return nil
}

// Handle returns the GL handle for the renderbuffer; only valid
// after Activate.
func (rb *Renderbuffer) Handle() uint32 {
	return rb.handle
}

// Release releases the GPU resources associated with the
// renderbuffer (requires Activate to re-establish new ones).
func (rb *Renderbuffer) Release() {
	if !rb.init {
		return
	}
	gl.DeleteRenderbuffers(1, &rb.handle)
	rb.handle = 0
	rb.init = false
}
