// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorsBufferLayout(t *testing.T) {
	pr := NewProgram("test")
	pos := pr.AddInput("pos", Vec3fVecType, VertexPosition)
	tex := pr.AddInput("tex", Vec2fVecType, VertexTexcoord)

	vb := NewVectorsBuffer(StaticDraw)
	assert.NoError(t, vb.AddVectors(pos))
	assert.NoError(t, vb.AddVectors(tex))
	assert.Equal(t, 2, vb.NumVectors())
	assert.Equal(t, 5, vb.Stride())

	vb.SetLen(3)
	assert.Equal(t, 3, vb.Len())
	assert.Len(t, vb.Data(), 15)

	posDat := []float32{0, 1, 2, 10, 11, 12, 20, 21, 22}
	texDat := []float32{0.0, 0.5, 1.0, 1.5, 2.0, 2.5}
	assert.NoError(t, vb.SetVecData(pos, posDat))
	assert.NoError(t, vb.SetVecData(tex, texDat))

	want := []float32{
		0, 1, 2, 0.0, 0.5,
		10, 11, 12, 1.0, 1.5,
		20, 21, 22, 2.0, 2.5,
	}
	assert.Equal(t, want, []float32(vb.Data()))

	// direct interleaved set round-trips
	assert.NoError(t, vb.SetData(want))
	assert.Equal(t, want, []float32(vb.Data()))
}

func TestVectorsBufferErrors(t *testing.T) {
	pr := NewProgram("test")
	pos := pr.AddInput("pos", Vec3fVecType, VertexPosition)
	other := pr.AddInput("other", Vec2fVecType, UndefRole)

	vb := NewVectorsBuffer(StaticDraw)
	assert.NoError(t, vb.AddVectors(pos))
	vb.SetLen(2)

	// not in the buffer
	assert.Error(t, vb.SetVecData(other, []float32{0, 0, 0, 0}))
	// too short
	assert.Error(t, vb.SetVecData(pos, []float32{0, 0, 0}))
	// interleaved length mismatch
	assert.Error(t, vb.SetData([]float32{1, 2, 3}))
	// non-float32 vertex data
	ints := pr.AddInput("idx", VectorType{Int, 1}, UndefRole)
	assert.Error(t, vb.AddVectors(ints))
}

func TestIndexesBuffer(t *testing.T) {
	ib := NewIndexesBuffer()
	ib.SetLen(6)
	assert.Equal(t, 6, ib.Len())
	ib.Set([]uint32{0, 1, 2, 0, 2, 3})
	assert.Equal(t, uint32(3), ib.Indexes()[5])
}

func TestProgramSetup(t *testing.T) {
	pr := NewProgram("draw")
	_, err := pr.AddShader(VertexShader, "vert", "void main() {}")
	assert.NoError(t, err)
	_, err = pr.AddShader(VertexShader, "vert2", "void main() {}")
	assert.Error(t, err)
	_, err = pr.AddShader(FragmentShader, "frag", "void main() {}")
	assert.NoError(t, err)

	sh := pr.ShaderByName("vert")
	assert.NotNil(t, sh)
	assert.Equal(t, VertexShader, sh.Type())
	assert.Same(t, sh, pr.ShaderByType(VertexShader))

	pr.AddUniform("mvp")
	assert.NotNil(t, pr.UniformByName("mvp"))

	pos := pr.AddInput("pos", Vec3fVecType, VertexPosition)
	assert.Same(t, pos, pr.InputByName("pos"))
	assert.Same(t, pos, pr.InputByRole(VertexPosition))
	assert.Len(t, pr.Inputs(), 1)
}
