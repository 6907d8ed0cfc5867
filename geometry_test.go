// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/2dChan/halfedge/utils"
)

func TestFaceNormal_Outward(t *testing.T) {
	tests := []struct {
		name string
		soup func() ([]r3.Vector, [][]int)
	}{
		{"tetrahedron", utils.Tetrahedron},
		{"octahedron", utils.Octahedron},
		{"cube", utils.Cube},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			positions, faces := tt.soup()
			m := mustBuild(t, positions, faces)

			// All solids are centered at the origin, so every outward
			// normal points away from it.
			for _, f := range m.FaceIDs() {
				n, err := m.FaceNormal(f)
				if err != nil {
					t.Fatalf("FaceNormal(%v) error = %v", f, err)
				}
				if math.Abs(n.Norm()-1) > 1e-12 {
					t.Errorf("FaceNormal(%v) norm = %v, want 1", f, n.Norm())
				}
				c, err := m.FaceCenter(f)
				if err != nil {
					t.Fatalf("FaceCenter(%v) error = %v", f, err)
				}
				if n.Dot(c) <= 0 {
					t.Errorf("FaceNormal(%v) = %v points inward at center %v", f, n, c)
				}
			}
		})
	}
}

func TestFaceNormal_CubeTop(t *testing.T) {
	positions, faces := utils.Cube()
	m := mustBuild(t, positions, faces)
	top := m.FaceIDs()[1]

	n, err := m.FaceNormal(top)
	if err != nil {
		t.Fatalf("FaceNormal(%v) error = %v", top, err)
	}
	if want := (r3.Vector{Z: 1}); n.Sub(want).Norm() > 1e-12 {
		t.Errorf("FaceNormal(top) = %v, want %v", n, want)
	}

	c, err := m.FaceCenter(top)
	if err != nil {
		t.Fatalf("FaceCenter(%v) error = %v", top, err)
	}
	if want := (r3.Vector{Z: 1}); c.Sub(want).Norm() > 1e-12 {
		t.Errorf("FaceCenter(top) = %v, want %v", c, want)
	}
}

func TestFaceCanSee(t *testing.T) {
	positions, faces := utils.Cube()
	m := mustBuild(t, positions, faces)
	top := m.FaceIDs()[1]

	tests := []struct {
		name string
		p    r3.Vector
		want bool
	}{
		{"above", r3.Vector{Z: 3}, true},
		{"inside", r3.Vector{}, false},
		{"below", r3.Vector{Z: -3}, false},
		{"in plane", r3.Vector{X: 5, Z: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.FaceCanSee(top, tt.p)
			if err != nil {
				t.Fatalf("FaceCanSee(%v, %v) error = %v", top, tt.p, err)
			}
			if got != tt.want {
				t.Errorf("FaceCanSee(%v, %v) = %v, want %v", top, tt.p, got, tt.want)
			}
		})
	}
}
