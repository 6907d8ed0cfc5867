// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "github.com/golang/geo/r3"

// ToPolygonSoup reconstructs a polygon-soup representation of the mesh:
// vertex positions in storage order plus per-face vertex index cycles walked
// through the traversal layer. Feeding the result back into Build yields a
// topologically equivalent mesh; the vertex order within a face may differ
// from the original input by rotation, never by reflection.
func (m *Mesh) ToPolygonSoup() ([]r3.Vector, [][]int, error) {
	index := make(map[VertexID]int, m.NumVertices())
	positions := make([]r3.Vector, 0, m.NumVertices())
	for _, v := range m.VertexIDs() {
		index[v] = len(positions)
		positions = append(positions, m.mustVert(v).Pos)
	}

	faces := make([][]int, 0, m.NumFaces())
	for _, f := range m.FaceIDs() {
		vs, err := m.FaceVertexIDs(f)
		if err != nil {
			return nil, nil, err
		}
		poly := make([]int, len(vs))
		for i, v := range vs {
			poly[i] = index[v]
		}
		faces = append(faces, poly)
	}
	return positions, faces, nil
}
