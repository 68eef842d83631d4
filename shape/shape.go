// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates triangle-mesh geometry (plane, box,
// sphere, composed groups) and reads Wavefront OBJ meshes, producing
// vertex, normal, texture-coordinate, and index arrays ready for
// glgpu buffers.
package shape

import "cogentcore.org/core/math32"

// Mesh is an interface for mesh-constructing elements.
type Mesh interface {
	// N returns the number of vertex and index points in this
	// mesh element.
	N() (numVertex, numIndex int)

	// Offsets returns the starting offsets for vertices and indexes
	// in the full mesh arrays, in terms of points, not floats.
	Offsets() (vtxOff, idxOff int)

	// SetOffsets sets the starting offsets for vertices and indexes
	// in the full mesh arrays.
	SetOffsets(vtxOff, idxOff int)

	// Set sets the mesh points into given allocated arrays.
	Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32)

	// BBox returns the bounding box for the mesh, typically centered
	// around 0. Only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base for all mesh elements.
type ShapeBase struct {
	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// position offset, to enable composition of shapes
	Pos math32.Vector3
}

// Offsets returns the starting offsets for vertices and indexes.
func (sb *ShapeBase) Offsets() (vtxOff, idxOff int) {
	return sb.VertexOffset, sb.IndexOffset
}

// SetOffsets sets the starting offsets for vertices and indexes.
func (sb *ShapeBase) SetOffsets(vtxOff, idxOff int) {
	sb.VertexOffset, sb.IndexOffset = vtxOff, idxOff
}

// BBox returns the bounding box for the shape, typically centered
// around 0. Only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Arrays allocates the full vertex, normal, texture-coordinate and
// index arrays for given mesh and sets the mesh points into them.
func Arrays(ms Mesh) (vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	nv, ni := ms.N()
	vertex = make(math32.ArrayF32, nv*3)
	normal = make(math32.ArrayF32, nv*3)
	texcoord = make(math32.ArrayF32, nv*2)
	index = make(math32.ArrayU32, ni)
	ms.Set(vertex, normal, texcoord, index)
	return
}

// BBoxFromVtxs returns the bounding box of the range of vertex
// points starting at given offset.
func BBoxFromVtxs(vertex math32.ArrayF32, vtxOff, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	vidx := vtxOff * 3
	var vtx math32.Vector3
	for vi := 0; vi < numVertex; vi++ {
		vtx.FromSlice(vertex, vidx+vi*3)
		bb.ExpandByPoint(vtx)
	}
	return bb
}
