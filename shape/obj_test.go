// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const quadObj = `
# a unit quad in the XY plane
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestReadObjQuad(t *testing.T) {
	tm, err := ReadObj(strings.NewReader(quadObj))
	assert.NoError(t, err)
	nv, ni := tm.N()
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni) // quad fans into 2 triangles
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, []uint32(tm.Index))
	assert.Equal(t, float32(1), tm.Texcoord[4]) // corner 3 u

	// no vn directives: normals computed on Set, facing +Z
	vertex, normal, _, _ := checkMesh(t, tm)
	assert.Equal(t, float32(1), normal[2])
	assert.Equal(t, float32(1), normal[11])

	bb := tm.BBox()
	assert.Equal(t, float32(0), bb.Min.X)
	assert.Equal(t, float32(1), bb.Max.Y)
	assert.Len(t, vertex, 12)
}

func TestReadObjNormalsAndNegative(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f -3//-1 -2//1 -1//1
`
	tm, err := ReadObj(strings.NewReader(src))
	assert.NoError(t, err)
	nv, ni := tm.N()
	assert.Equal(t, 3, nv)
	assert.Equal(t, 3, ni)
	// file normals are kept as is
	assert.Len(t, tm.Normal, 9)
	assert.Equal(t, float32(1), tm.Normal[2])
}

func TestReadObjCornerDedup(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	tm, err := ReadObj(strings.NewReader(src))
	assert.NoError(t, err)
	nv, ni := tm.N()
	assert.Equal(t, 4, nv) // shared corners are deduplicated
	assert.Equal(t, 6, ni)
}

func TestReadObjErrors(t *testing.T) {
	bad := []string{
		"v 0 0 0\nf 1 2 3\n",       // index out of range
		"v 0 0\n",                  // short vertex
		"v 0 0 0\nf 1 2\n",         // face with 2 corners
		"v 0 0 x\n",                // bad float
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf a 2 3\n", // bad index token
		"# comments only\n",        // no faces
	}
	for _, s := range bad {
		_, err := ReadObj(strings.NewReader(s))
		assert.Error(t, err, s)
	}
}
