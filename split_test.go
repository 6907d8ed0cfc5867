// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/2dChan/halfedge/utils"
)

func TestSplitEdge(t *testing.T) {
	positions, faces := utils.Tetrahedron()
	m := mustBuild(t, positions, faces)
	vids := m.VertexIDs()
	a, b := vids[0], vids[1]
	h := findHalfEdge(t, m, a, b)

	pos := r3.Vector{X: 1, Y: 0, Z: 0}
	mid, err := m.SplitEdge(h, pos)
	if err != nil {
		t.Fatalf("SplitEdge(%v) error = %v", h, err)
	}
	mustValidate(t, m)

	if got, want := m.NumVertices(), 5; got != want {
		t.Errorf("NumVertices() = %v, want %v", got, want)
	}
	if got, want := m.NumEdges(), 7; got != want {
		t.Errorf("NumEdges() = %v, want %v", got, want)
	}
	if got, want := m.NumFaces(), 4; got != want {
		t.Errorf("NumFaces() = %v, want %v", got, want)
	}

	rec, err := m.Vertex(mid)
	if err != nil {
		t.Fatalf("Vertex(%v) error = %v", mid, err)
	}
	if rec.Pos != pos {
		t.Errorf("mid position = %v, want %v", rec.Pos, pos)
	}

	// The midpoint connects exactly the split edge's endpoints.
	ns, err := m.VertexNeighborIDs(mid)
	if err != nil {
		t.Fatalf("VertexNeighborIDs(%v) error = %v", mid, err)
	}
	if len(ns) != 2 {
		t.Fatalf("mid neighbors = %v, want [a b]", ns)
	}
	if !(ns[0] == a && ns[1] == b || ns[0] == b && ns[1] == a) {
		t.Errorf("mid neighbors = %v, want {%v, %v}", ns, a, b)
	}

	// Both incident faces gained one side.
	for _, f := range m.FaceIDs() {
		cnt, err := m.FaceEdgeCount(f)
		if err != nil {
			t.Fatalf("FaceEdgeCount(%v) error = %v", f, err)
		}
		fs, err := m.VertexFaceIDs(mid)
		if err != nil {
			t.Fatalf("VertexFaceIDs(%v) error = %v", mid, err)
		}
		want := 3
		for _, g := range fs {
			if g == f {
				want = 4
			}
		}
		if cnt != want {
			t.Errorf("FaceEdgeCount(%v) = %v, want %v", f, cnt, want)
		}
	}

	// The split consumes its input half-edge pair.
	if _, err := m.HalfEdge(h); !errors.Is(err, ErrDanglingHandle) {
		t.Errorf("HalfEdge after split error = %v, want %v", err, ErrDanglingHandle)
	}
}

func TestSplitEdge_BoundaryRejected(t *testing.T) {
	positions, faces := utils.Disk(4)
	m := mustBuild(t, positions, faces)

	var rim HalfEdgeID
	for _, h := range m.HalfEdgeIDs() {
		rec, err := m.HalfEdge(h)
		if err != nil {
			t.Fatalf("HalfEdge(%v) error = %v", h, err)
		}
		if rec.IsBoundary() {
			rim = h
			break
		}
	}
	if rim.IsNil() {
		t.Fatal("no boundary half-edge on an open disk")
	}
	twin, err := m.HalfEdge(rim)
	if err != nil {
		t.Fatalf("HalfEdge(%v) error = %v", rim, err)
	}

	v, e, f := m.NumVertices(), m.NumEdges(), m.NumFaces()
	for _, h := range []HalfEdgeID{rim, twin.Twin} {
		if _, err := m.SplitEdge(h, r3.Vector{}); !errors.Is(err, ErrBoundaryEdgeUnsupported) {
			t.Errorf("SplitEdge(%v) error = %v, want %v", h, err, ErrBoundaryEdgeUnsupported)
		}
	}
	if m.NumVertices() != v || m.NumEdges() != e || m.NumFaces() != f {
		t.Errorf("rejected split changed counts to %v/%v/%v, want %v/%v/%v",
			m.NumVertices(), m.NumEdges(), m.NumFaces(), v, e, f)
	}
	mustValidate(t, m)
}
