// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image/color"
	"image/draw"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Drawing functions operate on the current context with the current
// program, render target, and buffer bindings.

// Clear clears the given properties of the current render target.
func Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// ClearColor sets the color to clear the render target to.
func ClearColor(clr color.Color) {
	r, g, b, a := clr.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// DepthTest turns depth testing on or off.
func DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// CullFace sets face culling: front and/or back faces, with ccw
// determining the winding order of front faces.
func CullFace(front, back, ccw bool) {
	if !front && !back {
		gl.Disable(gl.CULL_FACE)
		return
	}
	if ccw {
		gl.FrontFace(gl.CCW)
	} else {
		gl.FrontFace(gl.CW)
	}
	switch {
	case front && back:
		gl.CullFace(gl.FRONT_AND_BACK)
	case front:
		gl.CullFace(gl.FRONT)
	default:
		gl.CullFace(gl.BACK)
	}
	gl.Enable(gl.CULL_FACE)
}

// Op sets the blend function based on the standard draw operation:
// Src disables blending, Over uses premultiplied alpha blending.
func Op(op draw.Op) {
	if op == draw.Over {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// Viewport sets the rendering viewport to given origin and size.
func Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

// Triangles draws non-indexed triangles using all current settings.
func Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}

// TriangleStrips draws a non-indexed triangle strip using all
// current settings.
func TriangleStrips(start, count int) {
	gl.DrawArrays(gl.TRIANGLE_STRIP, int32(start), int32(count))
}

// TrianglesIndexed draws count indexed triangle vertices from the
// currently bound element array buffer.
func TrianglesIndexed(count int) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, 0)
}

// TriangleStripsIndexed draws count indexed triangle-strip vertices
// from the currently bound element array buffer.
func TriangleStripsIndexed(count int) {
	gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, int32(count), gl.UNSIGNED_INT, 0)
}
