// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

// RemoveFace deletes f. Its boundary cycle half-edges become faceless
// boundary half-edges; where the twin is already faceless the whole
// undirected edge is deleted and endpoint vertices left without any incident
// edge are pruned.
func (m *Mesh) RemoveFace(f FaceID) error {
	cycle, err := m.FaceEdgeIDs(f)
	if err != nil {
		return err
	}

	for _, h := range cycle {
		m.mustHE(h).Face = NilFace
	}
	m.freeFace(f)

	for _, h := range cycle {
		if m.he(h) == nil {
			// Already deleted as the twin of an earlier cycle edge.
			continue
		}
		if !m.mustHE(m.mustHE(h).Twin).Face.IsNil() {
			continue
		}
		m.deleteBoundaryPair(h)
	}
	return nil
}

// deleteBoundaryPair removes an undirected edge both of whose half-edges are
// faceless, stitching the surrounding boundary cycles back together and
// pruning endpoints that lose their last edge.
func (m *Mesh) deleteBoundaryPair(h HalfEdgeID) {
	t := m.mustHE(h).Twin
	for _, side := range []HalfEdgeID{h, t} {
		e := *m.mustHE(side)
		if e.Prev == e.Twin {
			// side is the only edge at its origin.
			m.freeVertex(e.Origin)
			continue
		}
		after := m.mustHE(e.Twin).Next
		m.mustHE(e.Prev).Next = after
		m.mustHE(after).Prev = e.Prev
		if v := m.mustVert(e.Origin); v.Edge == side {
			v.Edge = after
		}
	}
	m.freeHalfEdge(h)
	m.freeHalfEdge(t)
}

// RemoveVertex deletes an isolated vertex. Vertices with incident half-edges
// are rejected with ErrVertexStillReferenced; remove or collapse their edges
// first.
func (m *Mesh) RemoveVertex(v VertexID) error {
	rec, err := m.Vertex(v)
	if err != nil {
		return err
	}
	if !rec.Edge.IsNil() {
		return ErrVertexStillReferenced
	}
	m.freeVertex(v)
	return nil
}

// DissolveVertex removes an interior vertex of valence three, merging its
// three incident triangles into a single triangular face. The vertex, its
// three edge pairs and the three faces are freed. Any other configuration is
// rejected with ErrDissolveRequiresValenceThree and the mesh is unchanged.
func (m *Mesh) DissolveVertex(v VertexID) error {
	out, err := m.VertexOutgoing(v)
	if err != nil {
		return err
	}
	if len(out) != 3 {
		return ErrDissolveRequiresValenceThree
	}
	faces := make(map[FaceID]bool, 3)
	for _, e := range out {
		f := m.mustHE(e).Face
		if f.IsNil() || faces[f] {
			return ErrDissolveRequiresValenceThree
		}
		n, err := m.FaceEdgeCount(f)
		if err != nil {
			return err
		}
		if n != 3 {
			return ErrDissolveRequiresValenceThree
		}
		faces[f] = true
	}

	// With out[i] = v->n_i in rotation order, next(out[i]) runs n_i->n_{i-1},
	// so the merged triangle's cycle visits the outer edges in reverse
	// rotation order.
	outer := make([]HalfEdgeID, 3)
	for i, e := range out {
		outer[i] = m.mustHE(e).Next
	}

	nf := m.allocFace(Face{Edge: outer[0]})
	for i := range outer {
		g := outer[i]
		gNext := outer[(i+2)%3]
		m.mustHE(g).Face = nf
		m.mustHE(g).Next = gNext
		m.mustHE(gNext).Prev = g
		m.mustVert(m.mustHE(g).Origin).Edge = g
	}

	for _, e := range out {
		twin := m.mustHE(e).Twin
		f := m.mustHE(e).Face
		m.freeHalfEdge(twin)
		m.freeHalfEdge(e)
		m.freeFace(f)
	}
	m.freeVertex(v)
	return nil
}
