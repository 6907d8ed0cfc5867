// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import "fmt"

// Validate checks every structural invariant of the mesh: twin involution,
// next/prev consistency, face cycle membership and termination, vertex
// outgoing-edge origins, and the manifold constraint that no undirected edge
// carries more than two half-edges. It returns nil for a consistent mesh and
// an error wrapping ErrCorruptTopology otherwise.
//
// Correct use of the mutation operators keeps the mesh valid at all times;
// Validate exists for tests and for auditing externally driven edit
// sequences.
func (m *Mesh) Validate() error {
	type pairKey struct{ a, b VertexID }
	directed := make(map[pairKey]bool, m.NumHalfEdges())

	for _, h := range m.HalfEdgeIDs() {
		e := m.mustHE(h)
		t := m.he(e.Twin)
		if t == nil {
			return fmt.Errorf("half-edge twin link dangles: %w", ErrCorruptTopology)
		}
		if e.Twin == h {
			return fmt.Errorf("half-edge is its own twin: %w", ErrCorruptTopology)
		}
		if t.Twin != h {
			return fmt.Errorf("twin(twin(h)) != h: %w", ErrCorruptTopology)
		}
		n := m.he(e.Next)
		p := m.he(e.Prev)
		if n == nil || p == nil {
			return fmt.Errorf("half-edge cycle link dangles: %w", ErrCorruptTopology)
		}
		if n.Prev != h {
			return fmt.Errorf("prev(next(h)) != h: %w", ErrCorruptTopology)
		}
		if p.Next != h {
			return fmt.Errorf("next(prev(h)) != h: %w", ErrCorruptTopology)
		}
		if m.vert(e.Origin) == nil {
			return fmt.Errorf("half-edge origin dangles: %w", ErrCorruptTopology)
		}
		if n.Origin != t.Origin {
			return fmt.Errorf("destination mismatch between next and twin: %w", ErrCorruptTopology)
		}
		if n.Face != e.Face {
			return fmt.Errorf("face changes along a boundary cycle: %w", ErrCorruptTopology)
		}
		key := pairKey{a: e.Origin, b: t.Origin}
		if directed[key] {
			return fmt.Errorf("undirected edge carries more than two half-edges: %w", ErrCorruptTopology)
		}
		directed[key] = true
	}

	for _, f := range m.FaceIDs() {
		anchor := m.mustFace(f).Edge
		if m.he(anchor) == nil {
			return fmt.Errorf("face anchor edge dangles: %w", ErrCorruptTopology)
		}
		it, err := m.EdgeLoop(anchor)
		if err != nil {
			return err
		}
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if m.mustHE(h).Face != f {
				return fmt.Errorf("face cycle contains a half-edge of another face: %w", ErrCorruptTopology)
			}
		}
		if err := it.Err(); err != nil {
			return err
		}
	}

	for _, v := range m.VertexIDs() {
		rec := m.mustVert(v)
		if rec.Edge.IsNil() {
			continue
		}
		e := m.he(rec.Edge)
		if e == nil {
			return fmt.Errorf("vertex outgoing edge dangles: %w", ErrCorruptTopology)
		}
		if e.Origin != v {
			return fmt.Errorf("vertex outgoing edge has another origin: %w", ErrCorruptTopology)
		}
	}
	return nil
}
