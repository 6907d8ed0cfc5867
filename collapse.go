// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

// CollapseEdge contracts the undirected edge of h, merging the destination
// vertex into the origin vertex and returning the survivor. Adjacent
// triangular faces become degenerate and are removed, gluing their outer
// edges into single undirected edges; larger faces and boundary loops simply
// lose one edge. Every half-edge that originated at the removed vertex is
// reassigned to the survivor, which keeps its position. Collapsing the last
// edge of a mesh leaves the survivor isolated.
//
// The collapse is rejected with ErrCollapseWouldCreateNonManifold when the
// link condition fails: the endpoints may share exactly the opposite vertices
// of the adjacent triangular faces, and no others. The mesh is left unchanged
// on any error.
func (m *Mesh) CollapseEdge(h HalfEdgeID) (VertexID, error) {
	eh, err := m.HalfEdge(h)
	if err != nil {
		return NilVertex, err
	}
	t := eh.Twin
	et := *m.mustHE(t)
	a, b := eh.Origin, et.Origin

	faTri, err := m.sideIsTriangle(eh.Face)
	if err != nil {
		return NilVertex, err
	}
	fbTri, err := m.sideIsTriangle(et.Face)
	if err != nil {
		return NilVertex, err
	}

	// Link condition. c and d are the opposite vertices of the triangular
	// side faces; any further shared neighbor would end up doubly connected
	// to the merged vertex.
	sharedWant := make(map[VertexID]bool, 2)
	var c, d VertexID
	if faTri {
		c = m.mustHE(eh.Prev).Origin
		sharedWant[c] = true
	}
	if fbTri {
		d = m.mustHE(et.Prev).Origin
		sharedWant[d] = true
	}
	if faTri && fbTri && c == d {
		return NilVertex, ErrCollapseWouldCreateNonManifold
	}
	nbA, err := m.VertexNeighborIDs(a)
	if err != nil {
		return NilVertex, err
	}
	nbB, err := m.VertexNeighborIDs(b)
	if err != nil {
		return NilVertex, err
	}
	inA := make(map[VertexID]bool, len(nbA))
	for _, n := range nbA {
		inA[n] = true
	}
	for _, n := range nbB {
		if n != a && inA[n] && !sharedWant[n] {
			return NilVertex, ErrCollapseWouldCreateNonManifold
		}
	}

	outB, err := m.VertexOutgoing(b)
	if err != nil {
		return NilVertex, err
	}

	// All preconditions hold; from here every rewrite must complete.

	for _, e := range outB {
		m.mustHE(e).Origin = a
	}

	// The surviving outgoing edge for a: the glued outer edge when the h
	// side face dissolves, the former next of h (now originating at a)
	// otherwise.
	survivor := eh.Next
	if faTri {
		survivor = m.mustHE(eh.Prev).Twin
	}

	m.collapseSide(h, faTri)
	m.collapseSide(t, fbTri)

	m.mustVert(a).Edge = survivor
	m.freeHalfEdge(h)
	m.freeHalfEdge(t)
	m.freeVertex(b)
	if m.he(survivor) == nil {
		// The collapsed edge was the last one at a: a two-edge boundary
		// cycle names the twin as survivor, and the twin is freed above.
		// The merged vertex is isolated.
		m.mustVert(a).Edge = NilHalfEdge
	}
	return a, nil
}

// sideIsTriangle reports whether f is a real triangular face. Boundary sides
// (nil face) count as non-triangles.
func (m *Mesh) sideIsTriangle(f FaceID) (bool, error) {
	if f.IsNil() {
		return false, nil
	}
	n, err := m.FaceEdgeCount(f)
	if err != nil {
		return false, err
	}
	return n == 3, nil
}

// collapseSide removes h from its cycle. A triangular face degenerates to two
// half-edges and is dissolved: the face and both remaining half-edges are
// freed and their twins glued into a single undirected edge. Any other cycle
// (larger face or boundary loop) just shrinks by one edge.
func (m *Mesh) collapseSide(h HalfEdgeID, tri bool) {
	e := *m.mustHE(h)
	if !tri {
		m.mustHE(e.Prev).Next = e.Next
		m.mustHE(e.Next).Prev = e.Prev
		if !e.Face.IsNil() {
			if f := m.mustFace(e.Face); f.Edge == h {
				f.Edge = e.Next
			}
		}
		return
	}

	hn, hp := e.Next, e.Prev
	outer := m.mustHE(hn).Twin
	inner := m.mustHE(hp).Twin
	m.mustHE(outer).Twin = inner
	m.mustHE(inner).Twin = outer

	// The opposite vertex may have pointed into the dissolved triangle.
	opp := m.mustHE(hp).Origin
	if v := m.mustVert(opp); v.Edge == hp {
		v.Edge = outer
	}

	m.freeHalfEdge(hn)
	m.freeHalfEdge(hp)
	m.freeFace(e.Face)
}
