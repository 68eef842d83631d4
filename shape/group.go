// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Group is a group of meshes composed into one set of arrays.
type Group struct {
	ShapeBase

	// list of meshes in the group
	Meshes []Mesh
}

// NewGroup returns a Group composed of given meshes.
func NewGroup(meshes ...Mesh) *Group {
	return &Group{Meshes: meshes}
}

func (gp *Group) N() (numVertex, numIndex int) {
	for _, ms := range gp.Meshes {
		nv, ni := ms.N()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets the points of all meshes in given allocated arrays,
// updating their offsets in sequence.
func (gp *Group) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	vo := gp.VertexOffset
	io := gp.IndexOffset
	gp.CBBox.SetEmpty()
	for _, ms := range gp.Meshes {
		ms.SetOffsets(vo, io)
		ms.Set(vertex, normal, texcoord, index)
		gp.CBBox.ExpandByBox(ms.BBox())
		nv, ni := ms.N()
		vo += nv
		io += ni
	}
}
