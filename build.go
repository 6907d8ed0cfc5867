// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Build constructs a Mesh from a polygon soup: a list of vertex positions and
// per-face vertex index cycles. Each face must list at least three distinct
// vertices in consistent (counter-clockwise) winding. Vertices referenced by
// no face are allowed and remain isolated. Vertex and face handles are issued
// in input order, so VertexIDs and FaceIDs of a freshly built mesh line up
// with the soup.
//
// Construction is two-phase: entities are first allocated with placeholder
// links, then every link is patched exactly once. Unmatched half-edges of an
// open surface receive synthesized faceless twins stitched into closed
// boundary loops.
//
// Build fails with ErrDegenerateFace, ErrNonManifoldEdge or
// ErrUnresolvedBoundary; on failure no mesh is returned.
func Build(positions []r3.Vector, faces [][]int) (*Mesh, error) {
	m := &Mesh{}

	vids := make([]VertexID, len(positions))
	for i, p := range positions {
		vids[i] = m.allocVertex(Vertex{Pos: p})
	}

	// halves indexes every face half-edge by its (origin, destination)
	// vertex pair. A collision means two faces traverse the same undirected
	// edge in the same direction: either a third face on the edge, or
	// inconsistent winding. Both are non-manifold input.
	type pairKey struct{ a, b VertexID }
	halves := make(map[pairKey]HalfEdgeID)

	for fi, poly := range faces {
		if len(poly) < 3 {
			return nil, fmt.Errorf("halfedge: face %d has %d vertices: %w", fi, len(poly), ErrDegenerateFace)
		}
		seen := make(map[int]struct{}, len(poly))
		for _, vi := range poly {
			if vi < 0 || vi >= len(positions) {
				return nil, fmt.Errorf("halfedge: face %d references vertex %d of %d: %w",
					fi, vi, len(positions), ErrDegenerateFace)
			}
			if _, dup := seen[vi]; dup {
				return nil, fmt.Errorf("halfedge: face %d repeats vertex %d: %w", fi, vi, ErrDegenerateFace)
			}
			seen[vi] = struct{}{}
		}

		fid := m.allocFace(Face{})
		cycle := make([]HalfEdgeID, len(poly))
		for j, vi := range poly {
			cycle[j] = m.allocHalfEdge(HalfEdge{Origin: vids[vi], Face: fid})
			m.mustVert(vids[vi]).Edge = cycle[j]
		}
		for j, h := range cycle {
			k := (j + 1) % len(poly)
			m.mustHE(h).Next = cycle[k]
			m.mustHE(cycle[k]).Prev = h

			key := pairKey{a: vids[poly[j]], b: vids[poly[k]]}
			if _, dup := halves[key]; dup {
				return nil, fmt.Errorf("halfedge: face %d traverses edge %d-%d in an already used direction: %w",
					fi, poly[j], poly[k], ErrNonManifoldEdge)
			}
			halves[key] = h
		}
		m.mustFace(fid).Edge = cycle[0]
	}

	for key, h := range halves {
		if t, ok := halves[pairKey{a: key.b, b: key.a}]; ok {
			m.mustHE(h).Twin = t
		}
	}

	// Any half-edge still unpaired borders the open surface. Synthesize its
	// faceless twin, then close the twins into boundary loops by matching
	// each loop edge's destination with the boundary edge starting there.
	boundaryAt := make(map[VertexID]HalfEdgeID)
	var boundary []HalfEdgeID
	for key, h := range halves {
		if !m.mustHE(h).Twin.IsNil() {
			continue
		}
		hb := m.allocHalfEdge(HalfEdge{Origin: key.b, Twin: h})
		m.mustHE(h).Twin = hb
		if _, dup := boundaryAt[key.b]; dup {
			return nil, fmt.Errorf("halfedge: boundary forks at a vertex: %w", ErrUnresolvedBoundary)
		}
		boundaryAt[key.b] = hb
		boundary = append(boundary, hb)
	}
	for _, hb := range boundary {
		e := m.mustHE(hb)
		dest := m.mustHE(e.Twin).Origin
		nxt, ok := boundaryAt[dest]
		if !ok {
			return nil, fmt.Errorf("halfedge: boundary loop does not close: %w", ErrUnresolvedBoundary)
		}
		e.Next = nxt
		m.mustHE(nxt).Prev = hb
	}

	return m, nil
}
