// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "github.com/go-gl/gl/v3.3-core/gl"

// Types are the elemental data types used in buffers and uniforms.
type Types int32

const (
	UndefType Types = iota
	Bool
	Int
	UInt
	Float32
	Float64
)

var typeNames = map[Types]string{
	UndefType: "Undef",
	Bool:      "Bool",
	Int:       "Int",
	UInt:      "UInt",
	Float32:   "Float32",
	Float64:   "Float64",
}

func (tp Types) String() string {
	return typeNames[tp]
}

var glTypes = map[Types]uint32{
	UndefType: gl.FLOAT,
	Bool:      gl.BOOL,
	Int:       gl.INT,
	UInt:      gl.UNSIGNED_INT,
	Float32:   gl.FLOAT,
	Float64:   gl.DOUBLE,
}

// GLType returns the GL type id for this type.
func (tp Types) GLType() uint32 {
	return glTypes[tp]
}

var typeBytes = map[Types]int{
	UndefType: 4,
	Bool:      4,
	Int:       4,
	UInt:      4,
	Float32:   4,
	Float64:   8,
}

// Bytes returns the number of bytes per element of this type.
func (tp Types) Bytes() int {
	return typeBytes[tp]
}

// VectorType is the type of a vertex attribute vector: an elemental
// type and the number of elements per vertex (1-4).
type VectorType struct {
	Type Types
	Vec  int
}

// Standard vector types for vertex attributes.
var (
	Vec2fVecType = VectorType{Float32, 2}
	Vec3fVecType = VectorType{Float32, 3}
	Vec4fVecType = VectorType{Float32, 4}
)

// Bytes returns the number of bytes per vertex for this vector type.
func (vt VectorType) Bytes() int {
	return vt.Vec * vt.Type.Bytes()
}

// VectorRoles are the standard roles of vertex attribute vectors.
type VectorRoles int32

const (
	UndefRole VectorRoles = iota
	VertexPosition
	VertexNormal
	VertexTexcoord
	VertexColor
)

var roleNames = map[VectorRoles]string{
	UndefRole:      "Undef",
	VertexPosition: "VertexPosition",
	VertexNormal:   "VertexNormal",
	VertexTexcoord: "VertexTexcoord",
	VertexColor:    "VertexColor",
}

func (vr VectorRoles) String() string {
	return roleNames[vr]
}

// ShaderTypes are the GL shader stages supported by Program.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader
)

var shaderNames = map[ShaderTypes]string{
	VertexShader:   "VertexShader",
	FragmentShader: "FragmentShader",
	GeometryShader: "GeometryShader",
}

func (st ShaderTypes) String() string {
	return shaderNames[st]
}

var glShaders = map[ShaderTypes]uint32{
	VertexShader:   gl.VERTEX_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
	GeometryShader: gl.GEOMETRY_SHADER,
}

// Usages are the buffer usage hints passed to BufferData.
type Usages int32

const (
	// StaticDraw is for vertex data set once and drawn many times.
	StaticDraw Usages = iota

	// DynamicDraw is for data modified repeatedly from the CPU side.
	DynamicDraw

	// StreamDraw is for data used at most a few times per modification.
	StreamDraw
)

var glUsages = map[Usages]uint32{
	StaticDraw:  gl.STATIC_DRAW,
	DynamicDraw: gl.DYNAMIC_DRAW,
	StreamDraw:  gl.STREAM_DRAW,
}

// GLUsage returns the GL usage hint id.
func (us Usages) GLUsage() uint32 {
	return glUsages[us]
}
