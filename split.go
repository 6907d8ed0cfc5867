// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "github.com/golang/geo/r3"

// SplitEdge inserts a new vertex at pos on the undirected edge of h and
// returns it. Both adjacent faces keep their boundary cycle with one extra
// vertex; no face is created or removed. The new vertex and two new half-edge
// pairs are allocated and the old pair is freed, so handles to h and its twin
// dangle after a successful split.
//
// Splitting an edge on the surface boundary is not supported and fails with
// ErrBoundaryEdgeUnsupported; the mesh is left unchanged on any error.
func (m *Mesh) SplitEdge(h HalfEdgeID, pos r3.Vector) (VertexID, error) {
	eh, err := m.HalfEdge(h)
	if err != nil {
		return NilVertex, err
	}
	t := eh.Twin
	et := *m.mustHE(t)
	if eh.Face.IsNil() || et.Face.IsNil() {
		return NilVertex, ErrBoundaryEdgeUnsupported
	}
	if eh.Face == et.Face {
		return NilVertex, ErrCorruptTopology
	}

	a, b := eh.Origin, et.Origin
	hp, hn := eh.Prev, eh.Next
	tp, tn := et.Prev, et.Next
	fa, fb := eh.Face, et.Face

	mid := m.allocVertex(Vertex{Pos: pos})

	// e1/e1t carry the a side of the split edge, e2/e2t the b side:
	//   face fa:  ... hp -> e1(a->mid) -> e2(mid->b) -> hn ...
	//   face fb:  ... tp -> e2t(b->mid) -> e1t(mid->a) -> tn ...
	e1 := m.allocHalfEdge(HalfEdge{Origin: a, Face: fa})
	e1t := m.allocHalfEdge(HalfEdge{Origin: mid, Face: fb})
	e2 := m.allocHalfEdge(HalfEdge{Origin: mid, Face: fa})
	e2t := m.allocHalfEdge(HalfEdge{Origin: b, Face: fb})

	m.mustHE(e1).Twin = e1t
	m.mustHE(e1t).Twin = e1
	m.mustHE(e2).Twin = e2t
	m.mustHE(e2t).Twin = e2

	m.mustHE(hp).Next = e1
	m.mustHE(e1).Prev = hp
	m.mustHE(e1).Next = e2
	m.mustHE(e2).Prev = e1
	m.mustHE(e2).Next = hn
	m.mustHE(hn).Prev = e2

	m.mustHE(tp).Next = e2t
	m.mustHE(e2t).Prev = tp
	m.mustHE(e2t).Next = e1t
	m.mustHE(e1t).Prev = e2t
	m.mustHE(e1t).Next = tn
	m.mustHE(tn).Prev = e1t

	m.mustVert(mid).Edge = e2
	if va := m.mustVert(a); va.Edge == h {
		va.Edge = e1
	}
	if vb := m.mustVert(b); vb.Edge == t {
		vb.Edge = e2t
	}
	if f := m.mustFace(fa); f.Edge == h {
		f.Edge = e1
	}
	if f := m.mustFace(fb); f.Edge == t {
		f.Edge = e2t
	}

	m.freeHalfEdge(h)
	m.freeHalfEdge(t)
	return mid, nil
}
