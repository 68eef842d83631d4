// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Box is a rectangular-shaped solid (cuboid).
type Box struct {
	ShapeBase

	// size along each dimension
	Size math32.Vector3

	// number of segments to divide each plane into (min 1)
	Segs math32.Vector3i
}

// NewBox returns a Box shape with given size.
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Defaults()
	bx.Size.Set(width, height, depth)
	return bx
}

func (bx *Box) Defaults() {
	bx.Size.Set(1, 1, 1)
	bx.Segs.Set(1, 1, 1)
}

func (bx *Box) N() (numVertex, numIndex int) {
	return BoxN(bx.Segs)
}

// Set sets the box points in given allocated arrays.
func (bx *Box) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	hSz := SetBox(vertex, normal, texcoord, index, bx.VertexOffset, bx.IndexOffset, bx.Size, bx.Segs, bx.Pos)
	mn := bx.Pos.Sub(hSz)
	mx := bx.Pos.Add(hSz)
	bx.CBBox.Set(&mn, &mx)
}

// BoxN returns the number of vertex and index points for a box with
// given number of segments per side. In vertex units, not floats.
func BoxN(segs math32.Vector3i) (numVertex, numIndex int) {
	nv, ni := PlaneN(int(segs.X), int(segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = PlaneN(int(segs.X), int(segs.Z))
	numVertex += 2 * nv
	numIndex += 2 * ni
	nv, ni = PlaneN(int(segs.Z), int(segs.Y))
	numVertex += 2 * nv
	numIndex += 2 * ni
	return
}

// SetBox sets box vertex, norm, tex, index data at given starting
// vertex and index offsets, for given 3D size and number of segments
// per side (min 1 enforced). pos is a 3D position offset.
// Returns the half-size of the box.
func SetBox(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, size math32.Vector3, segs math32.Vector3i, pos math32.Vector3) math32.Vector3 {
	hSz := size.DivScalar(2)

	voff := vtxOff
	ioff := idxOff

	// start with neg z as typically back
	nv, ni := PlaneN(int(segs.X), int(segs.Y))
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.X, math32.Y, -1, -1, size.X, size.Y, -hSz.X, -hSz.Y, -hSz.Z, int(segs.X), int(segs.Y), pos) // nz
	voff += nv
	ioff += ni
	nv, ni = PlaneN(int(segs.X), int(segs.Z))
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.X, math32.Z, 1, -1, size.X, size.Z, -hSz.X, -hSz.Z, -hSz.Y, int(segs.X), int(segs.Z), pos) // ny
	voff += nv
	ioff += ni
	nv, ni = PlaneN(int(segs.Z), int(segs.Y))
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.Z, math32.Y, -1, -1, size.Z, size.Y, -hSz.Z, -hSz.Y, hSz.X, int(segs.Z), int(segs.Y), pos) // px
	voff += nv
	ioff += ni
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.Z, math32.Y, 1, -1, size.Z, size.Y, -hSz.Z, -hSz.Y, -hSz.X, int(segs.Z), int(segs.Y), pos) // nx
	voff += nv
	ioff += ni
	nv, ni = PlaneN(int(segs.X), int(segs.Z))
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.X, math32.Z, 1, 1, size.X, size.Z, -hSz.X, -hSz.Z, hSz.Y, int(segs.X), int(segs.Z), pos) // py
	voff += nv
	ioff += ni
	SetPlane(vertex, normal, texcoord, index, voff, ioff, math32.X, math32.Y, 1, -1, size.X, size.Y, -hSz.X, -hSz.Y, hSz.Z, int(segs.X), int(segs.Y), pos) // pz
	return hSz
}
