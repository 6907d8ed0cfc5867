// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package halfedge implements a half-edge mesh: a topological data structure
// for manifold polygonal surfaces supporting O(1) local adjacency queries and
// incremental mutation (edge splits, collapses, flips, face removal).
//
// Entities are owned by the Mesh and addressed through stable generational
// handles (VertexID, HalfEdgeID, FaceID), never through pointers. Vertex
// positions use r3.Vector from github.com/golang/geo; the package performs no
// vector arithmetic of its own.
//
// A Mesh is not safe for concurrent mutation. Callers must serialize mutating
// calls; read-only traversal from multiple goroutines is safe only while no
// mutation is in progress.
package halfedge

import (
	"github.com/golang/geo/r3"
)

// VertexID is a stable handle to a vertex of a Mesh.
// The zero value is the nil handle.
type VertexID struct {
	idx int32
	gen int32
}

// HalfEdgeID is a stable handle to a half-edge of a Mesh.
// The zero value is the nil handle.
type HalfEdgeID struct {
	idx int32
	gen int32
}

// FaceID is a stable handle to a face of a Mesh.
// The zero value is the nil handle.
type FaceID struct {
	idx int32
	gen int32
}

// Nil handles. A half-edge whose Face is NilFace lies on the surface boundary;
// a vertex whose Edge is NilHalfEdge is isolated.
var (
	NilVertex   VertexID
	NilHalfEdge HalfEdgeID
	NilFace     FaceID
)

// IsNil reports whether id is the nil handle.
func (id VertexID) IsNil() bool { return id.gen == 0 }

// IsNil reports whether id is the nil handle.
func (id HalfEdgeID) IsNil() bool { return id.gen == 0 }

// IsNil reports whether id is the nil handle.
func (id FaceID) IsNil() bool { return id.gen == 0 }

// Vertex is a mesh vertex: a position plus one arbitrary outgoing half-edge.
// Edge is NilHalfEdge for isolated vertices.
type Vertex struct {
	Pos  r3.Vector
	Edge HalfEdgeID
}

// HalfEdge is one of the two oriented half-edges of an undirected mesh edge.
// Twin is the oppositely oriented half-edge of the same undirected edge, Next
// and Prev walk the boundary cycle of Face. Face is NilFace for boundary
// half-edges; their cycles form the closed boundary loops of an open surface.
type HalfEdge struct {
	Origin VertexID
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	Face   FaceID
}

// IsBoundary reports whether e has no adjacent face.
func (e HalfEdge) IsBoundary() bool { return e.Face.IsNil() }

// Face is a mesh face, identified by one half-edge of its boundary cycle.
type Face struct {
	Edge HalfEdgeID
}

// Mesh is a half-edge mesh. It is the sole owner of all vertex, half-edge and
// face records; handles are only valid for the Mesh that issued them.
//
// Use Build to construct a Mesh from a polygon soup.
type Mesh struct {
	verts arena[Vertex]
	edges arena[HalfEdge]
	faces arena[Face]
}

// NumVertices returns the number of live vertices.
func (m *Mesh) NumVertices() int { return m.verts.len() }

// NumHalfEdges returns the number of live half-edges, boundary ones included.
func (m *Mesh) NumHalfEdges() int { return m.edges.len() }

// NumEdges returns the number of undirected edges.
func (m *Mesh) NumEdges() int { return m.edges.len() / 2 }

// NumFaces returns the number of live faces.
func (m *Mesh) NumFaces() int { return m.faces.len() }

// Vertex returns a copy of the vertex record for id.
// It returns ErrDanglingHandle if id is nil, freed or stale.
func (m *Mesh) Vertex(id VertexID) (Vertex, error) {
	v := m.verts.get(id.idx, id.gen)
	if v == nil {
		return Vertex{}, ErrDanglingHandle
	}
	return *v, nil
}

// HalfEdge returns a copy of the half-edge record for id.
// It returns ErrDanglingHandle if id is nil, freed or stale.
func (m *Mesh) HalfEdge(id HalfEdgeID) (HalfEdge, error) {
	e := m.edges.get(id.idx, id.gen)
	if e == nil {
		return HalfEdge{}, ErrDanglingHandle
	}
	return *e, nil
}

// Face returns a copy of the face record for id.
// It returns ErrDanglingHandle if id is nil, freed or stale.
func (m *Mesh) Face(id FaceID) (Face, error) {
	f := m.faces.get(id.idx, id.gen)
	if f == nil {
		return Face{}, ErrDanglingHandle
	}
	return *f, nil
}

// VertexIDs returns the handles of all live vertices in storage order.
func (m *Mesh) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, m.verts.len())
	m.verts.each(func(idx, gen int32, _ *Vertex) bool {
		ids = append(ids, VertexID{idx: idx, gen: gen})
		return true
	})
	return ids
}

// HalfEdgeIDs returns the handles of all live half-edges in storage order.
func (m *Mesh) HalfEdgeIDs() []HalfEdgeID {
	ids := make([]HalfEdgeID, 0, m.edges.len())
	m.edges.each(func(idx, gen int32, _ *HalfEdge) bool {
		ids = append(ids, HalfEdgeID{idx: idx, gen: gen})
		return true
	})
	return ids
}

// FaceIDs returns the handles of all live faces in storage order.
func (m *Mesh) FaceIDs() []FaceID {
	ids := make([]FaceID, 0, m.faces.len())
	m.faces.each(func(idx, gen int32, _ *Face) bool {
		ids = append(ids, FaceID{idx: idx, gen: gen})
		return true
	})
	return ids
}

// MoveVertex sets the position of a vertex. Positions carry no topological
// meaning, so this never invalidates connectivity.
func (m *Mesh) MoveVertex(id VertexID, pos r3.Vector) error {
	v := m.verts.get(id.idx, id.gen)
	if v == nil {
		return ErrDanglingHandle
	}
	v.Pos = pos
	return nil
}

// FacesAdjacent reports whether f and g share an undirected edge.
func (m *Mesh) FacesAdjacent(f, g FaceID) (bool, error) {
	if m.faces.get(g.idx, g.gen) == nil {
		return false, ErrDanglingHandle
	}
	it, err := m.FaceEdges(f)
	if err != nil {
		return false, err
	}
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		if m.mustHE(m.mustHE(h).Twin).Face == g {
			return true, nil
		}
	}
	return false, it.Err()
}

// Internal dereference helpers. Mutation operators validate their input
// handles up front; once past validation every stored link must resolve, so a
// failure here means the link structure itself is corrupt.

func (m *Mesh) vert(id VertexID) *Vertex { return m.verts.get(id.idx, id.gen) }

func (m *Mesh) he(id HalfEdgeID) *HalfEdge { return m.edges.get(id.idx, id.gen) }

func (m *Mesh) face(id FaceID) *Face { return m.faces.get(id.idx, id.gen) }

func (m *Mesh) mustVert(id VertexID) *Vertex {
	v := m.vert(id)
	if v == nil {
		panic("halfedge: corrupt topology: dangling vertex link")
	}
	return v
}

func (m *Mesh) mustHE(id HalfEdgeID) *HalfEdge {
	e := m.he(id)
	if e == nil {
		panic("halfedge: corrupt topology: dangling half-edge link")
	}
	return e
}

func (m *Mesh) mustFace(id FaceID) *Face {
	f := m.face(id)
	if f == nil {
		panic("halfedge: corrupt topology: dangling face link")
	}
	return f
}

func (m *Mesh) allocVertex(v Vertex) VertexID {
	idx, gen := m.verts.alloc(v)
	return VertexID{idx: idx, gen: gen}
}

func (m *Mesh) allocHalfEdge(e HalfEdge) HalfEdgeID {
	idx, gen := m.edges.alloc(e)
	return HalfEdgeID{idx: idx, gen: gen}
}

func (m *Mesh) allocFace(f Face) FaceID {
	idx, gen := m.faces.alloc(f)
	return FaceID{idx: idx, gen: gen}
}

func (m *Mesh) freeVertex(id VertexID) { m.verts.release(id.idx, id.gen) }

func (m *Mesh) freeHalfEdge(id HalfEdgeID) { m.edges.release(id.idx, id.gen) }

func (m *Mesh) freeFace(id FaceID) { m.faces.release(id.idx, id.gen) }
