// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// TriMesh is an arbitrary triangle mesh with explicit per-point
// data, e.g., as read from a Wavefront OBJ file.
type TriMesh struct {
	ShapeBase

	// packed x,y,z vertex coordinates
	Vertex math32.ArrayF32

	// packed x,y,z vertex normals; computed from faces if empty
	Normal math32.ArrayF32

	// packed u,v texture coordinates; zero-filled if absent
	Texcoord math32.ArrayF32

	// triangle indexes, 3 per face
	Index math32.ArrayU32
}

func (tm *TriMesh) N() (numVertex, numIndex int) {
	return len(tm.Vertex) / 3, len(tm.Index)
}

// Set sets the mesh points in given allocated arrays.
func (tm *TriMesh) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	if len(tm.Normal) != len(tm.Vertex) {
		tm.ComputeNormals()
	}
	nv := len(tm.Vertex) / 3
	vidx := tm.VertexOffset * 3
	tidx := tm.VertexOffset * 2
	copy(vertex[vidx:], tm.Vertex)
	copy(normal[vidx:], tm.Normal)
	if len(tm.Texcoord) == nv*2 {
		copy(texcoord[tidx:], tm.Texcoord)
	}
	vOff := uint32(tm.VertexOffset)
	for i, ix := range tm.Index {
		index[tm.IndexOffset+i] = vOff + ix
	}
	tm.CBBox = BBoxFromVtxs(vertex, tm.VertexOffset, nv)
}

// ComputeNormals computes per-vertex normals by averaging the
// normals of all faces sharing each vertex.
func (tm *TriMesh) ComputeNormals() {
	nv := len(tm.Vertex) / 3
	tm.Normal = make(math32.ArrayF32, nv*3)
	var a, b, c, fn math32.Vector3
	for fi := 0; fi+2 < len(tm.Index); fi += 3 {
		ia, ib, ic := int(tm.Index[fi]), int(tm.Index[fi+1]), int(tm.Index[fi+2])
		a.FromSlice(tm.Vertex, ia*3)
		b.FromSlice(tm.Vertex, ib*3)
		c.FromSlice(tm.Vertex, ic*3)
		fn = b.Sub(a).Cross(c.Sub(a))
		for _, ii := range []int{ia, ib, ic} {
			tm.Normal[ii*3] += fn.X
			tm.Normal[ii*3+1] += fn.Y
			tm.Normal[ii*3+2] += fn.Z
		}
	}
	var n math32.Vector3
	for vi := 0; vi < nv; vi++ {
		n.FromSlice(tm.Normal, vi*3)
		n = n.Normal()
		tm.Normal.SetVector3(vi*3, n)
	}
}

// OpenObj reads a triangle mesh from given Wavefront OBJ file.
func OpenObj(filename string) (*TriMesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer f.Close()
	return ReadObj(f)
}

// objKey identifies a unique v/vt/vn corner combination.
type objKey struct {
	v, vt, vn int
}

// ReadObj reads a triangle mesh in Wavefront OBJ format from given
// reader. Supported directives: v, vt, vn, f (with v, v/vt, v//vn,
// and v/vt/vn corner forms, 1-based or negative relative indexes;
// polygons are triangulated as fans). Everything else is ignored.
func ReadObj(r io.Reader) (*TriMesh, error) {
	var pos, tex, nrm []float32
	tm := &TriMesh{}
	seen := map[objKey]uint32{}

	// resolve turns a 1-based or negative index into 0-based
	resolve := func(ix, n int) (int, error) {
		if ix < 0 {
			ix = n + ix
		} else {
			ix--
		}
		if ix < 0 || ix >= n {
			return 0, fmt.Errorf("index %d out of range (%d)", ix, n)
		}
		return ix, nil
	}

	corner := func(fld string) (uint32, error) {
		parts := strings.Split(fld, "/")
		key := objKey{vt: -1, vn: -1}
		vi, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("bad vertex index %q: %w", parts[0], err)
		}
		if key.v, err = resolve(vi, len(pos)/3); err != nil {
			return 0, err
		}
		if len(parts) > 1 && parts[1] != "" {
			ti, err := strconv.Atoi(parts[1])
			if err != nil {
				return 0, fmt.Errorf("bad texcoord index %q: %w", parts[1], err)
			}
			if key.vt, err = resolve(ti, len(tex)/2); err != nil {
				return 0, err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			ni, err := strconv.Atoi(parts[2])
			if err != nil {
				return 0, fmt.Errorf("bad normal index %q: %w", parts[2], err)
			}
			if key.vn, err = resolve(ni, len(nrm)/3); err != nil {
				return 0, err
			}
		}
		if ix, has := seen[key]; has {
			return ix, nil
		}
		ix := uint32(len(tm.Vertex) / 3)
		tm.Vertex = append(tm.Vertex, pos[key.v*3], pos[key.v*3+1], pos[key.v*3+2])
		if key.vt >= 0 {
			tm.Texcoord = append(tm.Texcoord, tex[key.vt*2], tex[key.vt*2+1])
		} else {
			tm.Texcoord = append(tm.Texcoord, 0, 0)
		}
		if key.vn >= 0 {
			tm.Normal = append(tm.Normal, nrm[key.vn*3], nrm[key.vn*3+1], nrm[key.vn*3+2])
		}
		seen[key] = ix
		return ix, nil
	}

	floats := func(flds []string, n int) ([]float32, error) {
		if len(flds) < n {
			return nil, fmt.Errorf("expected %d values, got %d", n, len(flds))
		}
		fs := make([]float32, n)
		for i := 0; i < n; i++ {
			f, err := strconv.ParseFloat(flds[i], 32)
			if err != nil {
				return nil, err
			}
			fs[i] = float32(f)
		}
		return fs, nil
	}

	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		flds := strings.Fields(line)
		var err error
		switch flds[0] {
		case "v":
			var fs []float32
			if fs, err = floats(flds[1:], 3); err == nil {
				pos = append(pos, fs...)
			}
		case "vt":
			var fs []float32
			if fs, err = floats(flds[1:], 2); err == nil {
				tex = append(tex, fs...)
			}
		case "vn":
			var fs []float32
			if fs, err = floats(flds[1:], 3); err == nil {
				nrm = append(nrm, fs...)
			}
		case "f":
			cnr := flds[1:]
			if len(cnr) < 3 {
				err = fmt.Errorf("face with %d corners", len(cnr))
				break
			}
			var c0, cp, cc uint32
			if c0, err = corner(cnr[0]); err != nil {
				break
			}
			if cp, err = corner(cnr[1]); err != nil {
				break
			}
			for _, fld := range cnr[2:] { // triangulate as a fan
				if cc, err = corner(fld); err != nil {
					break
				}
				tm.Index = append(tm.Index, c0, cp, cc)
				cp = cc
			}
		}
		if err != nil {
			return nil, errors.Log(fmt.Errorf("shape.ReadObj: line %d: %w", ln, err))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Log(err)
	}
	if len(tm.Index) == 0 {
		return nil, errors.Log(fmt.Errorf("shape.ReadObj: no faces found"))
	}
	if len(tm.Normal) != len(tm.Vertex) {
		tm.Normal = nil // partial normals: recompute on Set
	}
	return tm, nil
}
