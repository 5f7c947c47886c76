package graph

import "github.com/gogpu/draw/geom"

// Transform is a node's derived spatial state: per-axis scale, Euler
// rotation in radians, and displacement. Transforms are recomputed on
// demand rather than stored; see NodeTransform and Dfs.
type Transform struct {
	Scale        geom.Vec3
	Rotation     geom.Euler
	Displacement geom.Vec3
}

// IdentityTransform returns the transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: geom.V3(1, 1, 1)}
}

// IsIdentity reports whether the transform leaves points unchanged.
func (t Transform) IsIdentity() bool {
	return t == IdentityTransform()
}

// Point applies the transform to a point: scale first, then rotation,
// then displacement. The order is load-bearing; reversing it changes the
// result whenever a non-uniform scale meets a rotation.
func (t Transform) Point(p geom.Vec3) geom.Vec3 {
	scaled := p.MulVec(t.Scale)
	rotated := scaled.RotateEuler(t.Rotation)
	return rotated.Add(t.Displacement)
}

// Points applies the transform to every given point, returning a new slice.
func (t Transform) Points(pts []geom.Vec3) []geom.Vec3 {
	out := make([]geom.Vec3, len(pts))
	for i, p := range pts {
		out[i] = t.Point(p)
	}
	return out
}

// apply folds one incoming edge into the transform being accumulated,
// given the parent's already-composed transform.
func (t Transform) apply(parent Transform, kind Kind, weight float32) Transform {
	switch kind.Relative {
	case Position:
		switch kind.Axis {
		case X:
			t.Displacement.X += parent.Displacement.X + weight
		case Y:
			t.Displacement.Y += parent.Displacement.Y + weight
		case Z:
			t.Displacement.Z += parent.Displacement.Z + weight
		}
	case Orientation:
		switch kind.Axis {
		case X:
			t.Rotation.X += parent.Rotation.X + weight
		case Y:
			t.Rotation.Y += parent.Rotation.Y + weight
		case Z:
			t.Rotation.Z += parent.Rotation.Z + weight
		}
	case Scale:
		switch kind.Axis {
		case X:
			t.Scale.X *= parent.Scale.X * weight
		case Y:
			t.Scale.Y *= parent.Scale.Y * weight
		case Z:
			t.Scale.Z *= parent.Scale.Z * weight
		}
	}
	return t
}

// NodeTransform composes the absolute transform of the node at idx by
// walking its incoming edges and, recursively, its parents. It returns
// ok=false if idx does not exist. The origin's transform is always the
// identity.
//
// The walk is recomputed from scratch on every call; scenes are rebuilt
// every frame, so the simplicity is worth the repeated work. Dfs is the
// caching alternative for whole-graph traversal.
func (g *Graph) NodeTransform(idx Index) (Transform, bool) {
	if !g.Contains(idx) {
		return Transform{}, false
	}
	return g.nodeTransform(idx, nil), true
}

// nodeTransform is NodeTransform with an optional memo of already-known
// absolute transforms (used by Dfs).
func (g *Graph) nodeTransform(idx Index, memo map[Index]Transform) Transform {
	if idx == Origin {
		return IdentityTransform()
	}
	if memo != nil {
		if t, ok := memo[idx]; ok {
			return t
		}
	}
	t := IdentityTransform()
	for _, ei := range g.in[idx] {
		rec := g.edges[ei]
		parent := g.nodeTransform(rec.Parent, memo)
		t = t.apply(parent, rec.Kind, rec.Weight)
	}
	return t
}

// NodeVertices transforms the given raw vertices by the node's absolute
// transform. It returns ok=false if idx does not exist.
func (g *Graph) NodeVertices(idx Index, vertices []geom.Vec3) ([]geom.Vec3, bool) {
	t, ok := g.NodeTransform(idx)
	if !ok {
		return nil, false
	}
	return t.Points(vertices), true
}
