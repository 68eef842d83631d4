// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"cogentcore.org/core/math32"
)

// Sphere is a sphere mesh, or a sector thereof.
type Sphere struct {
	ShapeBase

	// radius of the sphere
	Radius float32

	// number of segments around the width of the sphere
	// (32 is a reasonable default for a full circle)
	WidthSegs int

	// number of height segments
	// (32 is a reasonable default for a full height)
	HeightSegs int

	// starting radial angle in degrees, relative to the -1,0,0
	// left side starting point
	AngStart float32

	// total radial angle to generate in degrees (max 360)
	AngLen float32

	// starting elevation angle in degrees: 0 = top of sphere,
	// 180 = bottom
	ElevStart float32

	// total elevation angle to generate in degrees (max 180)
	ElevLen float32
}

// NewSphere returns a full Sphere mesh with the specified radius and
// number of segments (resolution) in each dimension.
func NewSphere(radius float32, segs int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.WidthSegs = segs
	sp.HeightSegs = segs
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Radius = 1
	sp.WidthSegs = 32
	sp.HeightSegs = 32
	sp.AngStart = 0
	sp.AngLen = 360
	sp.ElevStart = 0
	sp.ElevLen = 180
}

func (sp *Sphere) N() (numVertex, numIndex int) {
	return SphereSectorN(sp.WidthSegs, sp.HeightSegs, sp.ElevStart, sp.ElevLen)
}

// Set sets the sphere points in given allocated arrays.
func (sp *Sphere) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	sp.CBBox = SetSphereSector(vertex, normal, texcoord, index, sp.VertexOffset, sp.IndexOffset, sp.Radius, sp.WidthSegs, sp.HeightSegs, sp.AngStart, sp.AngLen, sp.ElevStart, sp.ElevLen, sp.Pos)
}

// SphereSectorN returns the number of vertex and index points for a
// sphere sector with given segments and elevation range.
// In vertex units, not floats.
func SphereSectorN(widthSegs, heightSegs int, elevStart, elevLen float32) (numVertex, numIndex int) {
	numVertex = (widthSegs + 1) * (heightSegs + 1)
	numIndex = widthSegs * heightSegs * 6
	elevStRad := math32.DegToRad(elevStart)
	elevEndRad := elevStRad + math32.DegToRad(elevLen)
	if elevStRad <= 0 {
		numIndex -= widthSegs * 3 // top cap is triangles, not quads
	}
	if elevEndRad >= math.Pi {
		numIndex -= widthSegs * 3 // same for bottom cap
	}
	return
}

// SetSphereSector sets sphere sector vertex, norm, tex, index data
// at given starting vertex and index offsets, with the specified
// radius, number of segments in each dimension, radial sector start
// angle and length in degrees (0-360, start at -1,0,0), and
// elevation start angle and length in degrees (0-180, top = 0).
// pos is an arbitrary offset (for composing shapes).
// Returns the bounding box.
func SetSphereSector(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, radius float32, widthSegs, heightSegs int, angStart, angLen, elevStart, elevLen float32, pos math32.Vector3) math32.Box3 {
	angStRad := math32.DegToRad(angStart)
	angLenRad := math32.DegToRad(angLen)
	elevStRad := math32.DegToRad(elevStart)
	elevLenRad := math32.DegToRad(elevLen)
	elevEndRad := elevStRad + elevLenRad

	bb := math32.B3Empty()

	idx := 0
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	vtxRows := make([][]uint32, 0, heightSegs+1)
	var pt, norm math32.Vector3

	for y := 0; y <= heightSegs; y++ {
		vtxRow := make([]uint32, 0, widthSegs+1)
		v := float32(y) / float32(heightSegs)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			px := -radius * math32.Cos(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			py := radius * math32.Cos(elevStRad+v*elevLenRad)
			pz := radius * math32.Sin(angStRad+u*angLenRad) * math32.Sin(elevStRad+v*elevLenRad)
			pt.Set(px, py, pz)
			pt.SetAdd(pos)
			norm.Set(px, py, pz)
			norm = norm.Normal()

			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, norm)
			texcoord.Set(tidx+idx*2, u, 1-v)
			vtxRow = append(vtxRow, uint32(vtxOff+idx))
			bb.ExpandByPoint(pt)
			idx++
		}
		vtxRows = append(vtxRows, vtxRow)
	}

	ii := idxOff
	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			v1 := vtxRows[y][x+1]
			v2 := vtxRows[y][x]
			v3 := vtxRows[y+1][x]
			v4 := vtxRows[y+1][x+1]
			if y != 0 || elevStRad > 0 {
				index.Set(ii, v1, v2, v4)
				ii += 3
			}
			if y != heightSegs-1 || elevEndRad < math.Pi {
				index.Set(ii, v2, v3, v4)
				ii += 3
			}
		}
	}
	return bb
}
