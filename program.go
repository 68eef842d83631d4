// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Program manages a set of shaders and associated uniform and vertex
// input variables. Add all shaders, uniforms, and inputs, then
// Compile, then Activate for rendering.
type Program struct {
	init        bool
	handle      uint32
	name        string
	shaders     map[ShaderTypes]*Shader
	unis        map[string]*Uniform
	ins         map[string]*Vectors
	fragDataVar string
}

// NewProgram returns a new Program with given unique name.
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// AddShader adds a shader of given type, unique name, and GLSL
// source code. Only one shader per type can be added.
func (pr *Program) AddShader(typ ShaderTypes, name string, src string) (*Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[ShaderTypes]*Shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, errors.Log(fmt.Errorf("glgpu.Program %s AddShader: shader of type %s already added", pr.name, typ))
	}
	sh := &Shader{name: name, typ: typ, src: src}
	pr.shaders[typ] = sh
	return sh, nil
}

// ShaderByName returns a shader by its unique name.
// Returns nil if not found (error auto logged).
func (pr *Program) ShaderByName(name string) *Shader {
	for _, sh := range pr.shaders {
		if sh.name == name {
			return sh
		}
	}
	slog.Error("glgpu.Program ShaderByName: not found", "shader", name, "program", pr.name)
	return nil
}

// ShaderByType returns a shader by its type.
// Returns nil if not found (error auto logged).
func (pr *Program) ShaderByType(typ ShaderTypes) *Shader {
	sh, ok := pr.shaders[typ]
	if !ok {
		slog.Error("glgpu.Program ShaderByType: not found", "type", typ.String(), "program", pr.name)
		return nil
	}
	return sh
}

// SetFragDataVar sets the variable name to use for the fragment
// shader's color output (bound to data location 0).
func (pr *Program) SetFragDataVar(name string) {
	pr.fragDataVar = name
}

// AddUniform adds a standalone uniform variable to the program.
// All uniforms must be added before Compile.
func (pr *Program) AddUniform(name string) *Uniform {
	if pr.unis == nil {
		pr.unis = make(map[string]*Uniform)
	}
	u := &Uniform{name: name}
	pr.unis[name] = u
	return u
}

// UniformByName returns a uniform by name.
// Returns nil if not found (error auto logged).
func (pr *Program) UniformByName(name string) *Uniform {
	u, ok := pr.unis[name]
	if !ok {
		slog.Error("glgpu.Program UniformByName: not found", "uniform", name, "program", pr.name)
		return nil
	}
	return u
}

// AddInput adds a Vectors input variable to the program; name must
// equal the 'in' variable name in the vertex shader. The input is
// bound and its location resolved when the program is compiled.
func (pr *Program) AddInput(name string, typ VectorType, role VectorRoles) *Vectors {
	if pr.ins == nil {
		pr.ins = make(map[string]*Vectors)
	}
	v := &Vectors{name: name, typ: typ, role: role}
	pr.ins[name] = v
	return v
}

// InputByName returns an input vectors by name.
// Returns nil if not found (error auto logged).
func (pr *Program) InputByName(name string) *Vectors {
	v, ok := pr.ins[name]
	if !ok {
		slog.Error("glgpu.Program InputByName: not found", "input", name, "program", pr.name)
		return nil
	}
	return v
}

// InputByRole returns an input vectors by role.
// Returns nil if not found (error auto logged).
func (pr *Program) InputByRole(role VectorRoles) *Vectors {
	for _, v := range pr.ins {
		if v.role == role {
			return v
		}
	}
	slog.Error("glgpu.Program InputByRole: not found", "role", role.String(), "program", pr.name)
	return nil
}

// Inputs returns all the input vectors defined for this program.
func (pr *Program) Inputs() []*Vectors {
	if len(pr.ins) == 0 {
		return nil
	}
	vs := make([]*Vectors, 0, len(pr.ins))
	for _, v := range pr.ins {
		vs = append(vs, v)
	}
	return vs
}

// Compile compiles all the shaders and links the program, then
// resolves the locations of all uniform and input variables,
// returning an error (auto logged) if anything is missing.
// The shader objects are released after a successful link.
// Context must be current.
func (pr *Program) Compile() error {
	handle := gl.CreateProgram()
	for _, sh := range pr.shaders {
		if err := sh.Compile(sh.src); err != nil {
			return err
		}
		gl.AttachShader(handle, sh.handle)
	}
	if pr.fragDataVar != "" {
		gl.BindFragDataLocation(handle, 0, gl.Str(CString(pr.fragDataVar)))
	}
	gl.LinkProgram(handle)

	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
		sh.Release()
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(msg))
		return errors.Log(fmt.Errorf("glgpu.Program %s Compile: failed to link: %s", pr.name, GoString(msg)))
	}

	for _, u := range pr.unis {
		u.handle = gl.GetUniformLocation(handle, gl.Str(CString(u.name)))
		if u.handle < 0 {
			return errors.Log(fmt.Errorf("glgpu.Program %s Compile: uniform %s not found", pr.name, u.name))
		}
		u.init = true
	}
	for _, v := range pr.ins {
		loc := gl.GetAttribLocation(handle, gl.Str(CString(v.name)))
		if loc < 0 {
			return errors.Log(fmt.Errorf("glgpu.Program %s Compile: input vectors %s not found", pr.name, v.name))
		}
		v.handle = uint32(loc)
	}

	pr.handle = handle
	pr.init = true
	return nil
}

// Handle returns the GL handle for the program; only valid after a
// successful Compile.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate activates this as the current program.
// Must have been compiled first.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Release releases the GPU resources associated with this program
// (requires Compile and Activate to re-establish).
func (pr *Program) Release() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
