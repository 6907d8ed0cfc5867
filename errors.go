// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "errors"

// Input errors, reported by Build. Malformed input is always rejected, never
// silently repaired.
var (
	// ErrNonManifoldEdge means an undirected edge is shared by three or more
	// oriented half-edges, or two faces traverse it in the same direction.
	ErrNonManifoldEdge = errors.New("halfedge: non-manifold edge")

	// ErrDegenerateFace means a face lists fewer than three vertices,
	// repeats a vertex (pinching its cycle), or references a vertex index
	// out of range.
	ErrDegenerateFace = errors.New("halfedge: degenerate face")

	// ErrUnresolvedBoundary means the unmatched half-edges of an open surface
	// cannot be closed into consistent boundary loops.
	ErrUnresolvedBoundary = errors.New("halfedge: unresolved boundary")
)

// Topology-safety errors. Operators check their preconditions before touching
// any link, so on these errors the mesh is unchanged.
var (
	// ErrCollapseWouldCreateNonManifold means collapsing the edge fails the
	// link condition: the endpoints share a neighbor beyond the vertices of
	// the faces adjacent to the edge.
	ErrCollapseWouldCreateNonManifold = errors.New("halfedge: collapse would create non-manifold edge")

	// ErrFlipRequiresTriangles means a face adjacent to the edge is not a
	// triangle (boundary loops included).
	ErrFlipRequiresTriangles = errors.New("halfedge: flip requires two triangular faces")

	// ErrFlipWouldDuplicateEdge means the flipped diagonal already exists.
	ErrFlipWouldDuplicateEdge = errors.New("halfedge: flip would duplicate an existing edge")

	// ErrBoundaryEdgeUnsupported means the operation does not support edges
	// on the surface boundary.
	ErrBoundaryEdgeUnsupported = errors.New("halfedge: operation unsupported on boundary edge")

	// ErrVertexStillReferenced means the vertex still has incident half-edges.
	ErrVertexStillReferenced = errors.New("halfedge: vertex still referenced by half-edges")

	// ErrDissolveRequiresValenceThree means the vertex is not an interior
	// vertex with exactly three incident triangles.
	ErrDissolveRequiresValenceThree = errors.New("halfedge: dissolve requires an interior valence-3 vertex")
)

// Internal consistency errors. These are unreachable through correct use of
// the public API; seeing one means the link structure was corrupted.
var (
	// ErrDanglingHandle means a handle is nil, freed, or from another Mesh.
	ErrDanglingHandle = errors.New("halfedge: dangling handle")

	// ErrCorruptTopology means a link walk did not close into a cycle within
	// the live half-edge count.
	ErrCorruptTopology = errors.New("halfedge: corrupt topology")
)
