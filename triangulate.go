// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "github.com/golang/geo/r3"

// TriangulateFace replaces f with a fan of triangles connecting each of its
// boundary edges to a new vertex at apex, and returns the new vertex. A k-gon
// face yields k triangles, k new half-edge pairs and one new vertex; the
// boundary half-edges of f survive in the new triangles, only f itself is
// freed. The apex is usually an interior point of the face, but no geometric
// check is performed.
func (m *Mesh) TriangulateFace(f FaceID, apex r3.Vector) (VertexID, error) {
	cycle, err := m.FaceEdgeIDs(f)
	if err != nil {
		return NilVertex, err
	}

	center := m.allocVertex(Vertex{Pos: apex})
	k := len(cycle)
	leading := make([]HalfEdgeID, k)  // dest(base) -> center
	trailing := make([]HalfEdgeID, k) // center -> origin(base)

	for i, base := range cycle {
		dest := m.mustHE(cycle[(i+1)%k]).Origin
		nf := m.allocFace(Face{Edge: base})
		leading[i] = m.allocHalfEdge(HalfEdge{Origin: dest, Face: nf})
		trailing[i] = m.allocHalfEdge(HalfEdge{Origin: center, Face: nf})

		e := m.mustHE(base)
		e.Face = nf
		e.Next = leading[i]
		e.Prev = trailing[i]
		m.mustHE(leading[i]).Prev = base
		m.mustHE(leading[i]).Next = trailing[i]
		m.mustHE(trailing[i]).Prev = leading[i]
		m.mustHE(trailing[i]).Next = base
	}

	// Each spoke pairs one triangle's leading edge with the next one's
	// trailing edge.
	for i := range cycle {
		l := leading[i]
		t := trailing[(i+1)%k]
		m.mustHE(l).Twin = t
		m.mustHE(t).Twin = l
	}

	m.mustVert(center).Edge = trailing[0]
	m.freeFace(f)
	return center, nil
}
