// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VectorsBuffer manages an array buffer of interleaved per-vertex
// float32 data together with the vertex array object recording its
// attribute layout. Add all Vectors (in shader declaration order),
// then SetLen, fill data, Activate, Transfer.
type VectorsBuffer struct {
	init   bool
	handle uint32 // array buffer
	vao    uint32 // vertex array object
	usage  Usages
	ln     int // number of vertices
	stride int // floats per vertex across all vectors
	vecs   []*Vectors
	offs   []int // float offset of each vector within a vertex
	data   math32.ArrayF32
}

// NewVectorsBuffer returns a new VectorsBuffer with given usage hint.
func NewVectorsBuffer(usage Usages) *VectorsBuffer {
	return &VectorsBuffer{usage: usage}
}

// AddVectors adds given vectors to the interleaved layout, in order.
// Only Float32-based vector types are supported for vertex data.
func (vb *VectorsBuffer) AddVectors(ve *Vectors) error {
	if ve.typ.Type != Float32 {
		return errors.Log(fmt.Errorf("glgpu.VectorsBuffer: vectors %s: only Float32 vertex data is supported", ve.name))
	}
	vb.vecs = append(vb.vecs, ve)
	vb.offs = append(vb.offs, vb.stride)
	vb.stride += ve.typ.Vec
	if vb.ln > 0 {
		vb.SetLen(vb.ln) // realloc
	}
	return nil
}

// NumVectors returns the number of vectors in the layout.
func (vb *VectorsBuffer) NumVectors() int {
	return len(vb.vecs)
}

// Stride returns the stride of one vertex, in floats.
func (vb *VectorsBuffer) Stride() int {
	return vb.stride
}

// SetLen sets the number of vertices, allocating the host data.
func (vb *VectorsBuffer) SetLen(ln int) {
	vb.ln = ln
	vb.data = make(math32.ArrayF32, ln*vb.stride)
}

// Len returns the number of vertices.
func (vb *VectorsBuffer) Len() int {
	return vb.ln
}

// SetVecData copies given packed per-vertex data for given vectors
// into the proper interleaved positions in the host buffer.
// len(data) must be at least Len * the vector element count.
func (vb *VectorsBuffer) SetVecData(ve *Vectors, data []float32) error {
	vi := -1
	for i, v := range vb.vecs {
		if v == ve {
			vi = i
			break
		}
	}
	if vi < 0 {
		return errors.Log(fmt.Errorf("glgpu.VectorsBuffer: vectors %s not in buffer", ve.name))
	}
	n := ve.typ.Vec
	if len(data) < vb.ln*n {
		return errors.Log(fmt.Errorf("glgpu.VectorsBuffer: vectors %s: data len %d < %d", ve.name, len(data), vb.ln*n))
	}
	off := vb.offs[vi]
	for i := 0; i < vb.ln; i++ {
		copy(vb.data[i*vb.stride+off:i*vb.stride+off+n], data[i*n:(i+1)*n])
	}
	return nil
}

// SetData copies fully-interleaved vertex data directly; len(data)
// must equal Len * Stride.
func (vb *VectorsBuffer) SetData(data []float32) error {
	if len(data) != vb.ln*vb.stride {
		return errors.Log(fmt.Errorf("glgpu.VectorsBuffer: interleaved data len %d != %d", len(data), vb.ln*vb.stride))
	}
	copy(vb.data, data)
	return nil
}

// Data returns the interleaved host data buffer.
func (vb *VectorsBuffer) Data() math32.ArrayF32 {
	return vb.data
}

// Activate establishes the vertex array and buffer objects if not
// yet done, recording the attribute layout for all vectors (whose
// owning program must have been compiled to resolve locations), and
// binds them. Must be called with a current context.
func (vb *VectorsBuffer) Activate() {
	if !vb.init {
		gl.GenVertexArrays(1, &vb.vao)
		gl.GenBuffers(1, &vb.handle)
		gl.BindVertexArray(vb.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
		strideBytes := int32(vb.stride * 4)
		for i, ve := range vb.vecs {
			gl.EnableVertexAttribArray(ve.handle)
			gl.VertexAttribPointerWithOffset(ve.handle, int32(ve.typ.Vec), ve.typ.Type.GLType(), false, strideBytes, uintptr(vb.offs[i]*4))
		}
		vb.init = true
		return
	}
	gl.BindVertexArray(vb.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.handle)
}

// Handle returns the GL handle of the array buffer; only valid after
// Activate.
func (vb *VectorsBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer transfers the host data to the GPU. Activate must have
// been called with no other array buffer bound in between. Uses the
// re-specification strategy per the buffer object streaming docs,
// so it is safe if the buffer is still in use by a prior GL call.
func (vb *VectorsBuffer) Transfer() {
	gl.BufferData(gl.ARRAY_BUFFER, len(vb.data)*4, gl.Ptr(vb.data), vb.usage.GLUsage())
}

// Release releases the GPU resources associated with this buffer and
// its vertex array object (requires Activate to re-establish).
func (vb *VectorsBuffer) Release() {
	if !vb.init {
		return
	}
	gl.DeleteBuffers(1, &vb.handle)
	gl.DeleteVertexArrays(1, &vb.vao)
	vb.handle = 0
	vb.vao = 0
	vb.init = false
}

// IndexesBuffer manages a buffer of uint32 indexes for indexed
// rendering (ELEMENT_ARRAY_BUFFER for DrawElements).
type IndexesBuffer struct {
	init   bool
	handle uint32
	ln     int
	idxs   math32.ArrayU32
}

// NewIndexesBuffer returns a new IndexesBuffer.
func NewIndexesBuffer() *IndexesBuffer {
	return &IndexesBuffer{}
}

// SetLen sets the number of indexes in the buffer.
func (ib *IndexesBuffer) SetLen(ln int) {
	ib.ln = ln
	ib.idxs = make(math32.ArrayU32, ln)
}

// Len returns the number of indexes in the buffer.
func (ib *IndexesBuffer) Len() int {
	return ib.ln
}

// Set sets the indexes by copying given data.
func (ib *IndexesBuffer) Set(idxs math32.ArrayU32) {
	if len(idxs) == 0 {
		return
	}
	if ib.ln == 0 {
		ib.ln = len(idxs)
	}
	if ib.idxs == nil {
		ib.idxs = make(math32.ArrayU32, ib.ln)
	}
	copy(ib.idxs, idxs)
}

// Indexes returns the internal index buffer (can be modified).
func (ib *IndexesBuffer) Indexes() math32.ArrayU32 {
	return ib.idxs
}

// Activate establishes the GPU buffer if not yet done, and binds it
// as the active element array buffer. The owning VectorsBuffer's
// vertex array object should be bound first so the association is
// recorded there.
func (ib *IndexesBuffer) Activate() {
	if !ib.init {
		gl.GenBuffers(1, &ib.handle)
		ib.init = true
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Handle returns the GL handle of the buffer; only valid after
// Activate.
func (ib *IndexesBuffer) Handle() uint32 {
	return ib.handle
}

// Transfer transfers the indexes to the GPU. Activate must have been
// called with no other element buffer bound in between.
func (ib *IndexesBuffer) Transfer() {
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(ib.idxs)*4, gl.Ptr(ib.idxs), gl.STATIC_DRAW)
}

// Release releases the GPU resources associated with this buffer
// (requires Activate to re-establish).
func (ib *IndexesBuffer) Release() {
	if !ib.init {
		return
	}
	gl.DeleteBuffers(1, &ib.handle)
	ib.handle = 0
	ib.init = false
}
