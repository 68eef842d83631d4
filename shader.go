// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Shader manages a single shader stage of a Program.
// Create via Program.AddShader; source must be GLSL version 330.
type Shader struct {
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// Name returns the unique name of this shader.
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the type (stage) of the shader.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code of the shader, excluding any null
// terminator (for display purposes).
func (sh *Shader) Source() string {
	return GoString(sh.src)
}

// GPUType returns the GL type id of the given shader type.
func (sh *Shader) GPUType(typ ShaderTypes) uint32 {
	return glShaders[typ]
}

// Compile compiles the shader source. On failure, the driver info
// log is returned in the error. Context must be current.
func (sh *Shader) Compile(src string) error {
	handle := gl.CreateShader(sh.GPUType(sh.typ))

	sh.src = src
	csrc := CString(src)
	csources, free := gl.Strs(csrc)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		return errors.Log(fmt.Errorf("glgpu.Shader %s (%s) failed to compile: %s", sh.name, sh.typ, GoString(msg)))
	}

	sh.handle = handle
	sh.init = true
	return nil
}

// Handle returns the GL handle for this shader; only valid after a
// successful Compile.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Release releases the shader object. The Program does this
// automatically after linking.
func (sh *Shader) Release() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}
