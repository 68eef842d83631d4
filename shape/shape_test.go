// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// checkMesh verifies the basic structural invariants of a generated
// mesh: array sizes match N, all indexes are in range, and all
// normals are unit length.
func checkMesh(t *testing.T, ms Mesh) (vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	t.Helper()
	nv, ni := ms.N()
	vertex, normal, texcoord, index = Arrays(ms)
	assert.Len(t, vertex, nv*3)
	assert.Len(t, normal, nv*3)
	assert.Len(t, texcoord, nv*2)
	assert.Len(t, index, ni)
	for _, ix := range index {
		assert.Less(t, int(ix), nv)
	}
	var nrm math32.Vector3
	for vi := 0; vi < nv; vi++ {
		nrm.FromSlice(normal, vi*3)
		assert.InDelta(t, 1, nrm.Length(), 1e-4)
	}
	return
}

func TestPlaneN(t *testing.T) {
	nv, ni := PlaneN(1, 1)
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni)
	nv, ni = PlaneN(2, 3)
	assert.Equal(t, 12, nv)
	assert.Equal(t, 36, ni)
}

func TestPlane(t *testing.T) {
	pl := NewPlane(2, 4)
	checkMesh(t, pl)
	bb := pl.BBox()
	assert.InDelta(t, 2, bb.Max.X-bb.Min.X, 1e-5)
	assert.InDelta(t, 4, bb.Max.Y-bb.Min.Y, 1e-5) // default plane is in XY
}

func TestBoxN(t *testing.T) {
	nv, ni := BoxN(math32.Vector3i{X: 1, Y: 1, Z: 1})
	assert.Equal(t, 24, nv) // 4 per face
	assert.Equal(t, 36, ni) // 2 triangles per face
}

func TestBox(t *testing.T) {
	bx := NewBox(2, 4, 6)
	checkMesh(t, bx)
	bb := bx.BBox()
	assert.InDelta(t, -1, bb.Min.X, 1e-5)
	assert.InDelta(t, 1, bb.Max.X, 1e-5)
	assert.InDelta(t, -2, bb.Min.Y, 1e-5)
	assert.InDelta(t, 2, bb.Max.Y, 1e-5)
	assert.InDelta(t, -3, bb.Min.Z, 1e-5)
	assert.InDelta(t, 3, bb.Max.Z, 1e-5)
}

func TestSphereSectorN(t *testing.T) {
	// open sector, no caps: all quads
	nv, ni := SphereSectorN(8, 4, 30, 90)
	assert.Equal(t, 9*5, nv)
	assert.Equal(t, 8*4*6, ni)

	// hemisphere from the top: top cap is triangles
	nv, ni = SphereSectorN(8, 4, 0, 90)
	assert.Equal(t, 9*5, nv)
	assert.Equal(t, 8*4*6-8*3, ni)
}

func TestSphere(t *testing.T) {
	sp := NewSphere(2, 16)
	_, _, _, _ = checkMesh(t, sp)
	bb := sp.BBox()
	assert.InDelta(t, -2, bb.Min.Y, 1e-4) // poles are exact
	assert.InDelta(t, 2, bb.Max.Y, 1e-4)
	assert.InDelta(t, -2, bb.Min.X, 0.1) // equator within segment resolution
	assert.InDelta(t, 2, bb.Max.X, 0.1)
}

func TestGroup(t *testing.T) {
	bx := NewBox(1, 1, 1)
	sp := NewSphere(1, 8)
	sp.Pos.Set(3, 0, 0)
	gp := NewGroup(bx, sp)

	nvb, nib := bx.N()
	nvs, nis := sp.N()
	nv, ni := gp.N()
	assert.Equal(t, nvb+nvs, nv)
	assert.Equal(t, nib+nis, ni)

	_, _, _, index := checkMesh(t, gp)

	// second mesh's indexes start past the first mesh's vertices
	vo, io := sp.Offsets()
	assert.Equal(t, nvb, vo)
	assert.Equal(t, nib, io)
	for _, ix := range index[nib:] {
		assert.GreaterOrEqual(t, int(ix), nvb)
	}

	// group bbox spans both
	bb := gp.BBox()
	assert.InDelta(t, -0.5, bb.Min.X, 1e-4)
	assert.Greater(t, bb.Max.X, float32(3.5))
}
