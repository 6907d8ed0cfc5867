// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides canonical polygon soups for building half-edge
// meshes: small closed solids and an open disk, all wound counter-clockwise
// as seen from outside.
package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// Tetrahedron returns the polygon soup of a regular tetrahedron centered at
// the origin: 4 vertices and 4 triangles.
func Tetrahedron() ([]r3.Vector, [][]int) {
	positions := []r3.Vector{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	faces := [][]int{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
		{3, 2, 1},
	}
	return positions, faces
}

// Octahedron returns the polygon soup of a square bipyramid centered at the
// origin: 6 vertices and 8 triangles. The four equatorial vertices all have
// valence 4, the two apices valence 4 as well.
func Octahedron() ([]r3.Vector, [][]int) {
	positions := []r3.Vector{
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: -1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
	faces := [][]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 4},
		{0, 4, 3},
		{5, 2, 1},
		{5, 1, 3},
		{5, 4, 2},
		{5, 3, 4},
	}
	return positions, faces
}

// Cube returns the polygon soup of an axis-aligned cube centered at the
// origin: 8 vertices and 6 quadrilateral faces.
func Cube() ([]r3.Vector, [][]int) {
	positions := []r3.Vector{
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
	}
	faces := [][]int{
		{0, 3, 2, 1},
		{4, 5, 6, 7},
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	return positions, faces
}

// Disk returns the polygon soup of an open triangle fan in the z=0 plane: a
// center vertex surrounded by n rim vertices on the unit circle, giving n
// triangles and a single boundary loop of n edges. Disk panics if n < 3.
func Disk(n int) ([]r3.Vector, [][]int) {
	if n < 3 {
		panic("utils: Disk requires n >= 3")
	}
	positions := make([]r3.Vector, 0, n+1)
	positions = append(positions, r3.Vector{})
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		positions = append(positions, r3.Vector{X: math.Cos(a), Y: math.Sin(a)})
	}
	faces := make([][]int, n)
	for i := 0; i < n; i++ {
		faces[i] = []int{0, 1 + i, 1 + (i+1)%n}
	}
	return positions, faces
}

// RandomSpherePoints returns cnt points distributed uniformly on the unit
// sphere, drawn from a generator seeded with seed.
func RandomSpherePoints(cnt int, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)
	for i := range points {
		theta := math.Acos(2*random.Float64() - 1)
		phi := 2 * math.Pi * random.Float64()
		points[i] = r3.Vector{
			X: math.Sin(theta) * math.Cos(phi),
			Y: math.Sin(theta) * math.Sin(phi),
			Z: math.Cos(theta),
		}
	}
	return points
}
