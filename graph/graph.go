// Package graph implements the directed acyclic geometry graph that
// positions drawn primitives relative to one another.
//
// Nodes are spatial entities; edges are typed parent-to-child
// relationships, one scalar weight per (axis, relation) pair. A node's
// transform is derived on demand by composing the transforms of its
// parents through its incoming edges. The graph always contains a
// synthetic origin node with the identity transform.
package graph

import "fmt"

// Axis selects one of the three spatial axes of an edge relationship.
type Axis uint8

// Axes.
const (
	X Axis = iota
	Y
	Z
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "unknown"
	}
}

// Relative selects the kind of spatial relationship an edge describes.
type Relative uint8

// Relationship kinds.
const (
	// Position displaces the child along the edge's axis (additive).
	Position Relative = iota
	// Orientation rotates the child about the edge's axis (additive, radians).
	Orientation
	// Scale scales the child along the edge's axis (multiplicative).
	Scale
)

// String returns the relationship name.
func (r Relative) String() string {
	switch r {
	case Position:
		return "Position"
	case Orientation:
		return "Orientation"
	case Scale:
		return "Scale"
	default:
		return "unknown"
	}
}

// Kind fully identifies an edge relationship: one axis, one relation.
// For any child node, at most one incoming edge of a given Kind exists.
type Kind struct {
	Axis     Axis
	Relative Relative
}

// Edge describes a weighted relationship from a parent node.
type Edge struct {
	Parent Index
	Kind   Kind
	Weight float32
}

// PositionEdge is shorthand for a position edge along the given axis.
func PositionEdge(parent Index, axis Axis, weight float32) Edge {
	return Edge{Parent: parent, Kind: Kind{Axis: axis, Relative: Position}, Weight: weight}
}

// OrientationEdge is shorthand for an orientation edge about the given axis.
func OrientationEdge(parent Index, axis Axis, weight float32) Edge {
	return Edge{Parent: parent, Kind: Kind{Axis: axis, Relative: Orientation}, Weight: weight}
}

// ScaleEdge is shorthand for a scale edge along the given axis.
func ScaleEdge(parent Index, axis Axis, weight float32) Edge {
	return Edge{Parent: parent, Kind: Kind{Axis: axis, Relative: Scale}, Weight: weight}
}

// Index identifies a node within its graph. Indices are not reused;
// Clear invalidates all previously returned indices.
type Index int

// Origin is the index of the synthetic root node present in every graph.
const Origin Index = 0

// WouldCycleError reports an edge insertion that was rejected because it
// would have made the graph cyclic. The rejected edge is carried so the
// caller can recover its weight.
type WouldCycleError struct {
	Edge Edge
}

// Error implements the error interface.
func (e *WouldCycleError) Error() string {
	return fmt.Sprintf("graph: edge %v/%v from node %d would create a cycle",
		e.Edge.Kind.Relative, e.Edge.Kind.Axis, e.Edge.Parent)
}

// Node is a vertex of the geometry graph.
type Node interface {
	isNode()
}

// Point is a bare spatial node with no geometry beyond its transformed
// origin. Freshly allocated drawing nodes start as Points.
type Point struct{}

func (Point) isNode() {}

// Primitive marks a node whose geometry has been finalized into the
// shared mesh. The vertex/index ranges live with the owning draw state,
// keyed by this node's index.
type Primitive struct{}

func (Primitive) isNode() {}

// Nested embeds a whole sub-graph as a single node.
type Nested struct {
	Graph *Graph
}

func (Nested) isNode() {}

// edgeRecord is an Edge plus its child endpoint.
type edgeRecord struct {
	Edge
	child Index
}

// Graph is the geometry DAG. The zero value is not usable; construct
// with New. Graph is not safe for concurrent use.
type Graph struct {
	nodes []Node

	// in holds incoming edge indices per child, out holds outgoing edge
	// indices per parent, both in insertion order.
	in  map[Index][]int
	out map[Index][]int

	// edges is append-only within a frame; removed entries are tombstoned
	// so stored indices stay stable.
	edges []edgeRecord
	live  int
}

// New creates a graph containing only the origin node.
func New() *Graph {
	g := &Graph{}
	g.reset()
	return g
}

func (g *Graph) reset() {
	g.nodes = g.nodes[:0]
	g.edges = g.edges[:0]
	g.in = make(map[Index][]int)
	g.out = make(map[Index][]int)
	g.live = 0
	g.nodes = append(g.nodes, Point{})
}

// Clear removes every node and edge, then recreates the origin sentinel.
// All previously returned indices become invalid.
func (g *Graph) Clear() {
	g.reset()
}

// NodeCount returns the number of nodes, including the origin.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	return g.live
}

// Contains reports whether idx refers to a node in the graph.
func (g *Graph) Contains(idx Index) bool {
	return idx >= 0 && int(idx) < len(g.nodes)
}

// Node returns the node at idx, or ok=false if it does not exist.
func (g *Graph) Node(idx Index) (Node, bool) {
	if !g.Contains(idx) {
		return nil, false
	}
	return g.nodes[idx], true
}

// SetNode replaces the node stored at idx. It reports whether idx exists.
// Edges are unaffected.
func (g *Graph) SetNode(idx Index, n Node) bool {
	if !g.Contains(idx) {
		return false
	}
	g.nodes[idx] = n
	return true
}

// AddNode inserts n as an immediate child of the origin, connected by
// zero-weight position edges on all three axes, and returns its index.
func (g *Graph) AddNode(n Node) Index {
	idx := Index(len(g.nodes))
	g.nodes = append(g.nodes, n)
	for _, axis := range []Axis{X, Y, Z} {
		g.insertEdge(Origin, idx, Kind{Axis: axis, Relative: Position}, 0)
	}
	return idx
}

// AddChild inserts n and wires every given edge from parent to it,
// returning the new node's index.
//
// AddChild panics if edges is empty or parent does not exist; both are
// caller bugs with no sensible recovery.
func (g *Graph) AddChild(parent Index, edges []Edge, n Node) Index {
	if len(edges) == 0 {
		panic("graph: AddChild requires at least one edge")
	}
	if !g.Contains(parent) {
		panic(fmt.Sprintf("graph: AddChild parent %d does not exist", parent))
	}
	idx := Index(len(g.nodes))
	g.nodes = append(g.nodes, n)
	for _, e := range edges {
		g.insertEdge(parent, idx, e.Kind, e.Weight)
	}
	return idx
}

// SetEdge ensures exactly one incoming edge of e.Kind on child:
//   - if an edge of the same kind from e.Parent already exists, its
//     weight is updated in place;
//   - if an edge of the same kind from a different parent exists, the
//     stale edge is removed before the new one is added.
//
// If inserting the edge would create a cycle, the graph is left
// unchanged and a *WouldCycleError carrying e is returned.
func (g *Graph) SetEdge(child Index, e Edge) error {
	if !g.Contains(child) || !g.Contains(e.Parent) {
		return fmt.Errorf("graph: SetEdge endpoint missing (parent %d, child %d)", e.Parent, child)
	}

	// Same-kind edge already present?
	stale := -1
	for _, ei := range g.in[child] {
		rec := &g.edges[ei]
		if rec.child != child || rec.Kind != e.Kind {
			continue
		}
		if rec.Parent == e.Parent {
			rec.Weight = e.Weight
			return nil
		}
		stale = ei
		break
	}

	if g.wouldCycle(e.Parent, child) {
		return &WouldCycleError{Edge: e}
	}

	if stale >= 0 {
		g.removeEdge(stale)
	}
	g.insertEdge(e.Parent, child, e.Kind, e.Weight)
	return nil
}

// RemoveParentEdges removes every incoming edge of child whose parent is
// parent, returning the removed edges.
func (g *Graph) RemoveParentEdges(child, parent Index) []Edge {
	var removed []Edge
	ins := g.in[child]
	for i := 0; i < len(ins); {
		ei := ins[i]
		if g.edges[ei].Parent == parent {
			removed = append(removed, g.edges[ei].Edge)
			g.removeEdge(ei)
			ins = g.in[child]
			continue
		}
		i++
	}
	return removed
}

// InEdges returns the live incoming edges of child in insertion order.
func (g *Graph) InEdges(child Index) []Edge {
	var edges []Edge
	for _, ei := range g.in[child] {
		edges = append(edges, g.edges[ei].Edge)
	}
	return edges
}

// Parents returns the distinct parents of child in edge insertion order.
func (g *Graph) Parents(child Index) []Index {
	var parents []Index
	seen := map[Index]bool{}
	for _, ei := range g.in[child] {
		p := g.edges[ei].Parent
		if !seen[p] {
			seen[p] = true
			parents = append(parents, p)
		}
	}
	return parents
}

// Children returns the distinct children of parent in edge insertion order.
func (g *Graph) Children(parent Index) []Index {
	var children []Index
	seen := map[Index]bool{}
	for _, ei := range g.out[parent] {
		c := g.edges[ei].child
		if !seen[c] {
			seen[c] = true
			children = append(children, c)
		}
	}
	return children
}

// insertEdge appends an edge record and wires the adjacency lists.
func (g *Graph) insertEdge(parent, child Index, kind Kind, weight float32) {
	ei := len(g.edges)
	g.edges = append(g.edges, edgeRecord{
		Edge:  Edge{Parent: parent, Kind: kind, Weight: weight},
		child: child,
	})
	g.in[child] = append(g.in[child], ei)
	g.out[parent] = append(g.out[parent], ei)
	g.live++
}

// removeEdge unlinks the edge record at ei from both adjacency lists.
func (g *Graph) removeEdge(ei int) {
	rec := g.edges[ei]
	g.in[rec.child] = removeIndex(g.in[rec.child], ei)
	g.out[rec.Parent] = removeIndex(g.out[rec.Parent], ei)
	g.live--
}

func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// wouldCycle reports whether adding an edge parent -> child would create
// a cycle, i.e. whether parent is reachable from child.
func (g *Graph) wouldCycle(parent, child Index) bool {
	if parent == child {
		return true
	}
	stack := []Index{child}
	visited := map[Index]bool{child: true}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ei := range g.out[n] {
			c := g.edges[ei].child
			if c == parent {
				return true
			}
			if !visited[c] {
				visited[c] = true
				stack = append(stack, c)
			}
		}
	}
	return false
}
