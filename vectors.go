// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// Vectors is a vertex attribute variable: a named per-vertex vector
// input to a Program. The handle is the attribute location, resolved
// when the program is compiled; VectorsBuffer uses it to bind the
// interleaved data layout.
type Vectors struct {
	name   string
	handle uint32
	typ    VectorType
	role   VectorRoles
}

// Name returns the name of the vectors (the 'in' variable name in
// the vertex shader).
func (ve *Vectors) Name() string {
	return ve.name
}

// Type returns the vector data type.
func (ve *Vectors) Type() VectorType {
	return ve.typ
}

// Role returns the role of the vectors.
func (ve *Vectors) Role() VectorRoles {
	return ve.role
}

// Handle returns the attribute location; only valid after the
// owning Program has been compiled.
func (ve *Vectors) Handle() uint32 {
	return ve.handle
}
