// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"testing"

	"github.com/golang/geo/r3"

	"github.com/2dChan/halfedge/utils"
)

func TestTriangulateFace_Cube(t *testing.T) {
	positions, faces := utils.Cube()
	m := mustBuild(t, positions, faces)
	f := m.FaceIDs()[1]

	center, err := m.FaceCenter(f)
	if err != nil {
		t.Fatalf("FaceCenter(%v) error = %v", f, err)
	}
	apex, err := m.TriangulateFace(f, center)
	if err != nil {
		t.Fatalf("TriangulateFace(%v) error = %v", f, err)
	}
	mustValidate(t, m)

	if got, want := m.NumVertices(), 9; got != want {
		t.Errorf("NumVertices() = %v, want %v", got, want)
	}
	if got, want := m.NumEdges(), 16; got != want {
		t.Errorf("NumEdges() = %v, want %v", got, want)
	}
	if got, want := m.NumFaces(), 9; got != want {
		t.Errorf("NumFaces() = %v, want %v", got, want)
	}
	if got, want := eulerCharacteristic(m), 2; got != want {
		t.Errorf("V - E + F = %v, want %v", got, want)
	}

	fs, err := m.VertexFaceIDs(apex)
	if err != nil {
		t.Fatalf("VertexFaceIDs(%v) error = %v", apex, err)
	}
	if got, want := len(fs), 4; got != want {
		t.Errorf("apex incident faces = %v, want %v", got, want)
	}
	for _, g := range fs {
		if cnt, err := m.FaceEdgeCount(g); err != nil || cnt != 3 {
			t.Errorf("FaceEdgeCount(%v) = %v, %v, want 3, nil", g, cnt, err)
		}
	}
}

func TestTriangulateFace_DissolveRoundTrip(t *testing.T) {
	positions, faces := utils.Tetrahedron()
	m := mustBuild(t, positions, faces)
	f := m.FaceIDs()[0]
	before, err := m.FaceVertexIDs(f)
	if err != nil {
		t.Fatalf("FaceVertexIDs(%v) error = %v", f, err)
	}

	apex, err := m.TriangulateFace(f, r3.Vector{X: 0.2, Y: 0.2, Z: 0.2})
	if err != nil {
		t.Fatalf("TriangulateFace(%v) error = %v", f, err)
	}
	mustValidate(t, m)
	if got, want := m.NumFaces(), 6; got != want {
		t.Fatalf("NumFaces() after triangulation = %v, want %v", got, want)
	}

	// The apex of a fanned triangle has valence three, so dissolving it
	// restores the original face.
	if err := m.DissolveVertex(apex); err != nil {
		t.Fatalf("DissolveVertex(%v) error = %v", apex, err)
	}
	mustValidate(t, m)

	if got, want := m.NumVertices(), 4; got != want {
		t.Errorf("NumVertices() = %v, want %v", got, want)
	}
	if got, want := m.NumEdges(), 6; got != want {
		t.Errorf("NumEdges() = %v, want %v", got, want)
	}
	if got, want := m.NumFaces(), 4; got != want {
		t.Errorf("NumFaces() = %v, want %v", got, want)
	}

	// The restored face spans the same vertices as the one fanned out.
	var restored FaceID
	for _, g := range m.FaceIDs() {
		vs, err := m.FaceVertexIDs(g)
		if err != nil {
			t.Fatalf("FaceVertexIDs(%v) error = %v", g, err)
		}
		if isRotation(vs, before) {
			restored = g
			break
		}
	}
	if restored.IsNil() {
		t.Errorf("no face spans the original cycle %v", before)
	}
}
