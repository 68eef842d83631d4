// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Plane is a flat 2D plane, which can be oriented along any
// axis facing either positive or negative.
type Plane struct {
	ShapeBase

	// axis along which the horizontal dimension of the plane lies
	WidthAxis math32.Dims

	// axis along which the vertical dimension of the plane lies
	HeightAxis math32.Dims

	// direction of the width axis: 1 or -1
	WidthDir int

	// direction of the height axis: 1 or -1
	HeightDir int

	// width of the plane
	Width float32

	// height of the plane
	Height float32

	// number of segments to divide the width into (min 1)
	WidthSegs int

	// number of segments to divide the height into (min 1)
	HeightSegs int

	// offset along the depth (normal) axis
	Offset float32
}

// NewPlane returns a Plane of given width and height in the XY
// plane, facing positive Z.
func NewPlane(width, height float32) *Plane {
	pl := &Plane{}
	pl.Defaults()
	pl.Width = width
	pl.Height = height
	return pl
}

func (pl *Plane) Defaults() {
	pl.WidthAxis = math32.X
	pl.HeightAxis = math32.Y
	pl.WidthDir = 1
	pl.HeightDir = 1
	pl.Width = 1
	pl.Height = 1
	pl.WidthSegs = 1
	pl.HeightSegs = 1
}

func (pl *Plane) N() (numVertex, numIndex int) {
	return PlaneN(pl.WidthSegs, pl.HeightSegs)
}

// Set sets the plane points in given allocated arrays.
func (pl *Plane) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	pl.CBBox = SetPlane(vertex, normal, texcoord, index, pl.VertexOffset, pl.IndexOffset, pl.WidthAxis, pl.HeightAxis, pl.WidthDir, pl.HeightDir, pl.Width, pl.Height, -pl.Width/2, -pl.Height/2, pl.Offset, pl.WidthSegs, pl.HeightSegs, pl.Pos)
}

// PlaneN returns the number of vertex and index points for a plane
// with given number of segments. In vertex units, not floats.
func PlaneN(wsegs, hsegs int) (numVertex, numIndex int) {
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)
	numVertex = (wsegs + 1) * (hsegs + 1)
	numIndex = wsegs * hsegs * 6
	return
}

// SetPlane sets plane vertex, norm, tex, index data at given
// starting vertex offset (multiply by 3 to get float offset in the
// vertex array) and index offset, with the plane lying along the
// given width and height axes with given +-1 directions, width and
// height sizes, offsets of the start of the width and height
// dimensions, and zoff offset along the depth (normal) axis.
// The normal faces positive along the depth axis if zoff >= 0, else
// negative. pos is an arbitrary offset for composing shapes.
// Returns the bounding box.
func SetPlane(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32, vtxOff, idxOff int, waxis, haxis math32.Dims, wdir, hdir int, width, height, woff, hoff, zoff float32, wsegs, hsegs int, pos math32.Vector3) math32.Box3 {
	w := math32.Z
	if (waxis == math32.X && haxis == math32.Z) || (waxis == math32.Z && haxis == math32.X) {
		w = math32.Y
	} else if (waxis == math32.Z && haxis == math32.Y) || (waxis == math32.Y && haxis == math32.Z) {
		w = math32.X
	}
	wsegs = max(wsegs, 1)
	hsegs = max(hsegs, 1)

	var norm math32.Vector3
	if zoff >= 0 {
		norm.SetDim(w, 1)
	} else {
		norm.SetDim(w, -1)
	}

	fwdir := float32(wdir)
	fhdir := float32(hdir)
	if wdir < 0 {
		woff += width
	}
	if hdir < 0 {
		hoff += height
	}
	segw := width / float32(wsegs)
	segh := height / float32(hsegs)

	bb := math32.B3Empty()

	idx := 0
	vidx := vtxOff * 3
	tidx := vtxOff * 2
	var pt math32.Vector3
	for iy := 0; iy <= hsegs; iy++ {
		for ix := 0; ix <= wsegs; ix++ {
			pt.SetZero()
			pt.SetDim(waxis, float32(ix)*segw*fwdir+woff)
			pt.SetDim(haxis, float32(iy)*segh*fhdir+hoff)
			pt.SetDim(w, zoff)
			pt.SetAdd(pos)
			vertex.SetVector3(vidx+idx*3, pt)
			normal.SetVector3(vidx+idx*3, norm)
			texcoord.Set(tidx+idx*2, float32(ix)/float32(wsegs), float32(iy)/float32(hsegs))
			bb.ExpandByPoint(pt)
			idx++
		}
	}

	vOff := uint32(vtxOff)
	ii := idxOff
	for iy := 0; iy < hsegs; iy++ {
		for ix := 0; ix < wsegs; ix++ {
			a := ix + (wsegs+1)*iy
			b := ix + (wsegs+1)*(iy+1)
			c := (ix + 1) + (wsegs+1)*(iy+1)
			d := (ix + 1) + (wsegs+1)*iy
			index.Set(ii, vOff+uint32(a), vOff+uint32(b), vOff+uint32(d), vOff+uint32(b), vOff+uint32(c), vOff+uint32(d))
			ii += 6
		}
	}
	return bb
}
