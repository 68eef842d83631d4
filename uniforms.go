// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Uniform represents a single standalone uniform variable in a
// Program. The location is resolved when the program is compiled;
// setters require the program to be Activate'd.
type Uniform struct {
	init   bool
	name   string
	handle int32
}

// Name returns the name of the uniform.
func (un *Uniform) Name() string {
	return un.name
}

// Handle returns the uniform location; only valid after the owning
// Program has been compiled.
func (un *Uniform) Handle() int32 {
	return un.handle
}

// SetInt sets an int (or sampler unit number) uniform value.
func (un *Uniform) SetInt(val int32) {
	gl.Uniform1i(un.handle, val)
}

// SetFloat sets a float uniform value.
func (un *Uniform) SetFloat(val float32) {
	gl.Uniform1f(un.handle, val)
}

// SetVector2 sets a vec2 uniform value.
func (un *Uniform) SetVector2(val math32.Vector2) {
	gl.Uniform2f(un.handle, val.X, val.Y)
}

// SetVector3 sets a vec3 uniform value.
func (un *Uniform) SetVector3(val math32.Vector3) {
	gl.Uniform3f(un.handle, val.X, val.Y, val.Z)
}

// SetVector4 sets a vec4 uniform value.
func (un *Uniform) SetVector4(val math32.Vector4) {
	gl.Uniform4f(un.handle, val.X, val.Y, val.Z, val.W)
}

// SetMatrix4 sets a mat4 uniform value, in the column-major layout
// used by both math32 and GL.
func (un *Uniform) SetMatrix4(val *math32.Matrix4) {
	gl.UniformMatrix4fv(un.handle, 1, false, (*float32)(unsafe.Pointer(val)))
}
