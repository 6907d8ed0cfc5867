// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

// FlipEdge re-diagonalizes the quadrilateral formed by the two triangles
// adjacent to h: the edge connecting the triangles' shared vertices is
// replaced by the edge connecting their opposite vertices. The handles of h
// and its twin stay valid and identify the flipped diagonal; flipping it
// again restores the original adjacency.
//
// FlipEdge fails with ErrFlipRequiresTriangles if either adjacent face is
// missing or not a triangle, and with ErrFlipWouldDuplicateEdge if the new
// diagonal already exists. The mesh is left unchanged on any error.
func (m *Mesh) FlipEdge(h HalfEdgeID) error {
	eh, err := m.HalfEdge(h)
	if err != nil {
		return err
	}
	t := eh.Twin
	et := *m.mustHE(t)
	if eh.Face.IsNil() || et.Face.IsNil() {
		return ErrFlipRequiresTriangles
	}
	for _, f := range []FaceID{eh.Face, et.Face} {
		n, err := m.FaceEdgeCount(f)
		if err != nil {
			return err
		}
		if n != 3 {
			return ErrFlipRequiresTriangles
		}
	}

	// h: a->b in triangle (a,b,c), t: b->a in triangle (b,a,d).
	a, b := eh.Origin, et.Origin
	hn, hp := eh.Next, eh.Prev
	tn, tp := et.Next, et.Prev
	c := m.mustHE(hp).Origin
	d := m.mustHE(tp).Origin

	if c == d {
		return ErrFlipWouldDuplicateEdge
	}
	nbC, err := m.VertexNeighborIDs(c)
	if err != nil {
		return err
	}
	for _, n := range nbC {
		if n == d {
			return ErrFlipWouldDuplicateEdge
		}
	}

	// New triangles: (a,d,c) keeps face of h, (d,b,c) keeps face of t.
	// h becomes d->c, t becomes c->d.
	fa, fb := eh.Face, et.Face
	m.mustHE(h).Origin = d
	m.mustHE(t).Origin = c

	m.mustHE(tn).Next = h
	m.mustHE(h).Prev = tn
	m.mustHE(h).Next = hp
	m.mustHE(hp).Prev = h
	m.mustHE(hp).Next = tn
	m.mustHE(tn).Prev = hp
	m.mustHE(tn).Face = fa
	m.mustFace(fa).Edge = h

	m.mustHE(tp).Next = hn
	m.mustHE(hn).Prev = tp
	m.mustHE(hn).Next = t
	m.mustHE(t).Prev = hn
	m.mustHE(t).Next = tp
	m.mustHE(tp).Prev = t
	m.mustHE(hn).Face = fb
	m.mustFace(fb).Edge = t

	// a and b may have pointed at the removed diagonal.
	if va := m.mustVert(a); va.Edge == h {
		va.Edge = tn
	}
	if vb := m.mustVert(b); vb.Edge == t {
		vb.Edge = hn
	}
	return nil
}
