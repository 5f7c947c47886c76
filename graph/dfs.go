package graph

import "github.com/gogpu/draw/geom"

// Dfs walks the graph depth-first in parent-before-child order, yielding
// each visited node's absolute transform. Visited transforms are
// memoized so a child composes against its parent's already-computed
// transform instead of re-walking the whole ancestry.
//
// Mutating the graph while a traversal is in progress is not supported;
// the traversal holds indices into the graph's internal storage.
type Dfs struct {
	graph   *Graph
	stack   []Index
	visited map[Index]Transform
}

// NewDfs starts a traversal at the origin.
func NewDfs(g *Graph) *Dfs {
	return NewDfsFrom(g, Origin)
}

// NewDfsFrom starts a traversal at the given node.
func NewDfsFrom(g *Graph, start Index) *Dfs {
	return &Dfs{
		graph:   g,
		stack:   []Index{start},
		visited: make(map[Index]Transform),
	}
}

// NextTransform advances the traversal, returning the next node and its
// absolute transform. ok=false means the traversal is exhausted.
func (d *Dfs) NextTransform() (Index, Transform, bool) {
	for len(d.stack) > 0 {
		idx := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		if _, seen := d.visited[idx]; seen {
			continue
		}
		t := d.graph.nodeTransform(idx, d.visited)
		d.visited[idx] = t

		// Push children in reverse so they pop in graph order.
		children := d.graph.Children(idx)
		for i := len(children) - 1; i >= 0; i-- {
			if _, seen := d.visited[children[i]]; !seen {
				d.stack = append(d.stack, children[i])
			}
		}
		return idx, t, true
	}
	return 0, Transform{}, false
}

// BoundingCuboid folds the transformed vertices of every node visited by
// the traversal into a bounding cuboid. verticesFn supplies the raw
// (untransformed) vertices of a node; it may return nil for nodes with
// no geometry. Returns ok=false iff the traversal yields zero vertices.
func BoundingCuboid(dfs *Dfs, verticesFn func(Index) []geom.Vec3) (geom.Cuboid, bool) {
	var bounds geom.Cuboid
	any := false
	for {
		idx, t, ok := dfs.NextTransform()
		if !ok {
			break
		}
		for _, p := range verticesFn(idx) {
			tp := t.Point(p)
			if !any {
				bounds = geom.CuboidFromPoint(tp)
				any = true
				continue
			}
			bounds = bounds.Extend(tp)
		}
	}
	return bounds, any
}
