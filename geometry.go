// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "github.com/golang/geo/r3"

// Geometric queries over face boundaries. Attributes are computed on demand
// from current vertex positions rather than cached, so they can never go
// stale across mutations.

const visibilityEps = 1e-7

// FaceNormal returns the unit normal of f, oriented by the face's
// counter-clockwise winding. It is computed as the normalized cross-product
// sum over the boundary cycle, which is exact for planar faces and a
// best-fit for warped ones. A geometrically degenerate face yields the zero
// vector.
func (m *Mesh) FaceNormal(f FaceID) (r3.Vector, error) {
	vs, err := m.FaceVertexIDs(f)
	if err != nil {
		return r3.Vector{}, err
	}
	var n r3.Vector
	for i, v := range vs {
		p := m.mustVert(v).Pos
		q := m.mustVert(vs[(i+1)%len(vs)]).Pos
		n = n.Add(p.Cross(q))
	}
	return n.Normalize(), nil
}

// FaceCenter returns the average position of f's boundary vertices.
func (m *Mesh) FaceCenter(f FaceID) (r3.Vector, error) {
	vs, err := m.FaceVertexIDs(f)
	if err != nil {
		return r3.Vector{}, err
	}
	var c r3.Vector
	for _, v := range vs {
		c = c.Add(m.mustVert(v).Pos)
	}
	return c.Mul(1 / float64(len(vs))), nil
}

// FaceCanSee reports whether p lies strictly on the outside of f's plane,
// i.e. whether the face is front-facing from p. A small epsilon absorbs
// floating-point error for points on the plane.
func (m *Mesh) FaceCanSee(f FaceID, p r3.Vector) (bool, error) {
	n, err := m.FaceNormal(f)
	if err != nil {
		return false, err
	}
	c, err := m.FaceCenter(f)
	if err != nil {
		return false, err
	}
	return p.Sub(c).Dot(n) > visibilityEps, nil
}
