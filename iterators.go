// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

// Traversal iterators. All walks are lazy, read-only and restartable; they
// allocate nothing beyond their own state. Each walk is bounded by the live
// half-edge count at creation, so a cycle that fails to close surfaces
// ErrCorruptTopology instead of spinning.

// FaceEdgeIter walks the half-edges of one boundary cycle in order, following
// Next until the walk returns to its starting half-edge.
type FaceEdgeIter struct {
	m     *Mesh
	start HalfEdgeID
	cur   HalfEdgeID
	limit int
	steps int
	done  bool
	err   error
}

// FaceEdges returns an iterator over the boundary cycle of f.
func (m *Mesh) FaceEdges(f FaceID) (*FaceEdgeIter, error) {
	rec, err := m.Face(f)
	if err != nil {
		return nil, err
	}
	return m.EdgeLoop(rec.Edge)
}

// EdgeLoop returns an iterator over the cycle containing h. Unlike FaceEdges
// it also walks the faceless boundary loops of an open surface.
func (m *Mesh) EdgeLoop(h HalfEdgeID) (*FaceEdgeIter, error) {
	if _, err := m.HalfEdge(h); err != nil {
		return nil, err
	}
	return &FaceEdgeIter{m: m, start: h, cur: h, limit: m.edges.len()}, nil
}

// Next returns the next half-edge of the cycle. It returns false once the
// cycle closes or the walk fails; check Err afterwards.
func (it *FaceEdgeIter) Next() (HalfEdgeID, bool) {
	if it.done || it.err != nil {
		return NilHalfEdge, false
	}
	if it.steps >= it.limit {
		it.err = ErrCorruptTopology
		return NilHalfEdge, false
	}
	h := it.cur
	e := it.m.he(h)
	if e == nil {
		it.err = ErrCorruptTopology
		return NilHalfEdge, false
	}
	it.steps++
	it.cur = e.Next
	if it.cur == it.start {
		it.done = true
	}
	return h, true
}

// Err returns the first error encountered by the walk, if any.
func (it *FaceEdgeIter) Err() error { return it.err }

// Reset rewinds the iterator to its starting half-edge.
func (it *FaceEdgeIter) Reset() {
	it.cur = it.start
	it.steps = 0
	it.done = false
	it.err = nil
}

// VertexEdgeIter walks the outgoing half-edges around a vertex, rotating with
// Twin-then-Next until the starting half-edge recurs. Boundary half-edges
// take part in the rotation like any other.
type VertexEdgeIter struct {
	m     *Mesh
	start HalfEdgeID
	cur   HalfEdgeID
	limit int
	steps int
	done  bool
	err   error
}

// VertexOutgoingEdges returns an iterator over the half-edges whose origin is
// v. An isolated vertex yields an empty walk.
func (m *Mesh) VertexOutgoingEdges(v VertexID) (*VertexEdgeIter, error) {
	rec, err := m.Vertex(v)
	if err != nil {
		return nil, err
	}
	it := &VertexEdgeIter{m: m, start: rec.Edge, cur: rec.Edge, limit: m.edges.len()}
	if rec.Edge.IsNil() {
		it.done = true
	}
	return it, nil
}

// Next returns the next outgoing half-edge around the vertex. It returns
// false once the rotation closes or the walk fails; check Err afterwards.
func (it *VertexEdgeIter) Next() (HalfEdgeID, bool) {
	if it.done || it.err != nil {
		return NilHalfEdge, false
	}
	if it.steps >= it.limit {
		it.err = ErrCorruptTopology
		return NilHalfEdge, false
	}
	h := it.cur
	e := it.m.he(h)
	if e == nil {
		it.err = ErrCorruptTopology
		return NilHalfEdge, false
	}
	twin := it.m.he(e.Twin)
	if twin == nil {
		it.err = ErrCorruptTopology
		return NilHalfEdge, false
	}
	it.steps++
	it.cur = twin.Next
	if it.cur == it.start {
		it.done = true
	}
	return h, true
}

// Err returns the first error encountered by the walk, if any.
func (it *VertexEdgeIter) Err() error { return it.err }

// Reset rewinds the iterator to its starting half-edge.
func (it *VertexEdgeIter) Reset() {
	it.cur = it.start
	it.steps = 0
	it.done = it.start.IsNil()
	it.err = nil
}

// VertexFaceIter walks the faces incident to a vertex, skipping the faceless
// boundary loops. Each incident face is visited exactly once.
type VertexFaceIter struct {
	edges VertexEdgeIter
}

// VertexIncidentFaces returns an iterator over the faces incident to v.
func (m *Mesh) VertexIncidentFaces(v VertexID) (*VertexFaceIter, error) {
	edges, err := m.VertexOutgoingEdges(v)
	if err != nil {
		return nil, err
	}
	return &VertexFaceIter{edges: *edges}, nil
}

// Next returns the next incident face. It returns false once the rotation
// closes or the walk fails; check Err afterwards.
func (it *VertexFaceIter) Next() (FaceID, bool) {
	for {
		h, ok := it.edges.Next()
		if !ok {
			return NilFace, false
		}
		if f := it.edges.m.mustHE(h).Face; !f.IsNil() {
			return f, true
		}
	}
}

// Err returns the first error encountered by the walk, if any.
func (it *VertexFaceIter) Err() error { return it.edges.Err() }

// Reset rewinds the iterator to its starting half-edge.
func (it *VertexFaceIter) Reset() { it.edges.Reset() }

// Slice collectors over the iterators above. The mutation operators use these
// to snapshot local neighborhoods before rewriting links.

// FaceEdgeIDs returns the half-edges of f's boundary cycle in order.
func (m *Mesh) FaceEdgeIDs(f FaceID) ([]HalfEdgeID, error) {
	it, err := m.FaceEdges(f)
	if err != nil {
		return nil, err
	}
	var ids []HalfEdgeID
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		ids = append(ids, h)
	}
	return ids, it.Err()
}

// FaceVertexIDs returns the vertices of f's boundary cycle in order.
func (m *Mesh) FaceVertexIDs(f FaceID) ([]VertexID, error) {
	edges, err := m.FaceEdgeIDs(f)
	if err != nil {
		return nil, err
	}
	ids := make([]VertexID, len(edges))
	for i, h := range edges {
		ids[i] = m.mustHE(h).Origin
	}
	return ids, nil
}

// FaceEdgeCount returns the number of half-edges in f's boundary cycle.
func (m *Mesh) FaceEdgeCount(f FaceID) (int, error) {
	it, err := m.FaceEdges(f)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n, it.Err()
}

// VertexOutgoing returns the half-edges whose origin is v, in rotation order.
func (m *Mesh) VertexOutgoing(v VertexID) ([]HalfEdgeID, error) {
	it, err := m.VertexOutgoingEdges(v)
	if err != nil {
		return nil, err
	}
	var ids []HalfEdgeID
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		ids = append(ids, h)
	}
	return ids, it.Err()
}

// VertexNeighborIDs returns the vertices connected to v by an undirected
// edge, in rotation order.
func (m *Mesh) VertexNeighborIDs(v VertexID) ([]VertexID, error) {
	edges, err := m.VertexOutgoing(v)
	if err != nil {
		return nil, err
	}
	ids := make([]VertexID, len(edges))
	for i, h := range edges {
		ids[i] = m.mustHE(m.mustHE(h).Twin).Origin
	}
	return ids, nil
}

// VertexFaceIDs returns the faces incident to v, in rotation order.
func (m *Mesh) VertexFaceIDs(v VertexID) ([]FaceID, error) {
	it, err := m.VertexIncidentFaces(v)
	if err != nil {
		return nil, err
	}
	var ids []FaceID
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		ids = append(ids, f)
	}
	return ids, it.Err()
}
