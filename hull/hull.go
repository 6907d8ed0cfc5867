// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull builds closed manifold half-edge meshes from the convex hull
// of a point cloud, using QuickHull for the hull computation.
package hull

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/2dChan/halfedge"
)

const defaultEps = 1e-12

// Options configures the hull computation.
type Options struct {
	Eps float64
}

// Option mutates Options and reports invalid settings.
type Option func(*Options) error

// WithEps sets the QuickHull epsilon used for coplanarity decisions.
// It rejects non-positive values.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("hull: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// New computes the convex hull of points and returns it as a closed manifold
// triangle mesh. Interior points do not appear in the result; hull vertices
// keep their input positions. At least four non-coplanar points are required.
func New(points []r3.Vector, setters ...Option) (*halfedge.Mesh, error) {
	opts := Options{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if len(points) < 4 {
		return nil, errors.New("hull: at least 4 points required")
	}

	qh := new(quickhull.QuickHull)
	// ccw=false yields triangles wound counter-clockwise as seen from
	// outside the hull, matching halfedge's outward-normal convention.
	ch := qh.ConvexHull(points, false, true, opts.Eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("hull: inconsistent number of indices returned from QuickHull")
	}

	// Compact the soup to the vertices the hull actually uses.
	remap := make(map[int]int)
	var positions []r3.Vector
	faces := make([][]int, 0, len(ch.Indices)/3)
	for i := 0; i < len(ch.Indices); i += 3 {
		tri := make([]int, 3)
		for j := 0; j < 3; j++ {
			idx := ch.Indices[i+j]
			ci, ok := remap[idx]
			if !ok {
				ci = len(positions)
				remap[idx] = ci
				positions = append(positions, points[idx])
			}
			tri[j] = ci
		}
		faces = append(faces, tri)
	}
	return halfedge.Build(positions, faces)
}
