package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/draw/geom"
)

func TestNewContainsOrigin(t *testing.T) {
	g := New()
	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	tr, ok := g.NodeTransform(Origin)
	require.True(t, ok)
	assert.True(t, tr.IsIdentity())
}

func TestAddNodeIdentityTransform(t *testing.T) {
	g := New()
	idx := g.AddNode(Point{})

	// Three zero-weight position edges from the origin.
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []Index{Origin}, g.Parents(idx))

	tr, ok := g.NodeTransform(idx)
	require.True(t, ok)
	assert.True(t, tr.IsIdentity(), "zero-weight edges must not drift the transform")
}

func TestAddChildPanics(t *testing.T) {
	g := New()
	assert.Panics(t, func() {
		g.AddChild(Origin, nil, Point{})
	})
	assert.Panics(t, func() {
		g.AddChild(Index(99), []Edge{PositionEdge(Index(99), X, 1)}, Point{})
	})
}

func TestNodeTransformMissingNode(t *testing.T) {
	g := New()
	_, ok := g.NodeTransform(Index(42))
	assert.False(t, ok)
	_, ok = g.NodeVertices(Index(42), []geom.Vec3{{}})
	assert.False(t, ok)
}

func TestSetEdgeReplacesSameKind(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{})
	c := g.AddNode(Point{})

	require.NoError(t, g.SetEdge(b, PositionEdge(a, X, 5)))
	before := g.EdgeCount()

	// Same kind from a different parent: the stale edge is removed, so
	// the edge count is unchanged.
	require.NoError(t, g.SetEdge(b, PositionEdge(c, X, 7)))
	assert.Equal(t, before, g.EdgeCount())

	var posX []Edge
	for _, e := range g.InEdges(b) {
		if e.Kind == (Kind{Axis: X, Relative: Position}) && e.Parent != Origin {
			posX = append(posX, e)
		}
	}
	require.Len(t, posX, 1)
	assert.Equal(t, c, posX[0].Parent)
	assert.Equal(t, float32(7), posX[0].Weight)
}

func TestSetEdgeUpdatesWeightInPlace(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{})

	require.NoError(t, g.SetEdge(b, PositionEdge(a, Y, 1)))
	count := g.EdgeCount()
	require.NoError(t, g.SetEdge(b, PositionEdge(a, Y, 2)))
	assert.Equal(t, count, g.EdgeCount(), "updating weight must not add an edge")

	tr, ok := g.NodeTransform(b)
	require.True(t, ok)
	assert.Equal(t, float32(2), tr.Displacement.Y)
}

func TestSetEdgeRejectsCycle(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{})

	require.NoError(t, g.SetEdge(b, PositionEdge(a, X, 3)))
	before := g.EdgeCount()

	err := g.SetEdge(a, PositionEdge(b, X, 9))
	require.Error(t, err)

	var wc *WouldCycleError
	require.ErrorAs(t, err, &wc)
	assert.Equal(t, float32(9), wc.Edge.Weight, "rejected edge must carry its weight")
	assert.Equal(t, before, g.EdgeCount(), "graph must be unchanged on rejection")
}

func TestSetEdgeRejectsSelfCycle(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	err := g.SetEdge(a, PositionEdge(a, X, 1))
	var wc *WouldCycleError
	require.ErrorAs(t, err, &wc)
}

func TestTransformCompositionOrder(t *testing.T) {
	g := New()
	n := g.AddChild(Origin, []Edge{
		ScaleEdge(Origin, X, 2),
		ScaleEdge(Origin, Y, 1),
		ScaleEdge(Origin, Z, 1),
		OrientationEdge(Origin, Z, math.Pi/2),
		PositionEdge(Origin, X, 5),
	}, Point{})

	pts, ok := g.NodeVertices(n, []geom.Vec3{geom.V3(1, 0, 0)})
	require.True(t, ok)
	require.Len(t, pts, 1)

	// Scale (2,1,1) then rotate 90 degrees about Z then displace (5,0,0):
	// (1,0,0) -> (2,0,0) -> (0,2,0) -> (5,2,0).
	assert.InDelta(t, 5, pts[0].X, 1e-5)
	assert.InDelta(t, 2, pts[0].Y, 1e-5)
	assert.InDelta(t, 0, pts[0].Z, 1e-5)
}

func TestTransformChainsThroughParents(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	require.NoError(t, g.SetEdge(a, PositionEdge(Origin, X, 10)))

	b := g.AddNode(Point{})
	require.NoError(t, g.SetEdge(b, PositionEdge(a, X, 5)))

	tr, ok := g.NodeTransform(b)
	require.True(t, ok)
	assert.InDelta(t, 15, tr.Displacement.X, 1e-6)
}

func TestDfsParentBeforeChild(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	b := g.AddNode(Point{})
	require.NoError(t, g.SetEdge(b, PositionEdge(a, X, 1)))

	dfs := NewDfs(g)
	var order []Index
	for {
		idx, _, ok := dfs.NextTransform()
		if !ok {
			break
		}
		order = append(order, idx)
	}

	posOf := func(want Index) int {
		for i, idx := range order {
			if idx == want {
				return i
			}
		}
		t.Fatalf("node %d not visited", want)
		return -1
	}
	assert.Equal(t, Origin, order[0])
	assert.Less(t, posOf(a), posOf(b), "parent must be visited before child")
	assert.Len(t, order, 3, "each node visited exactly once")
}

func TestBoundingCuboid(t *testing.T) {
	g := New()
	a := g.AddNode(Point{})
	require.NoError(t, g.SetEdge(a, PositionEdge(Origin, X, 10)))

	verts := map[Index][]geom.Vec3{
		a: {geom.V3(-1, -2, 0), geom.V3(1, 2, 0)},
	}
	bounds, ok := BoundingCuboid(NewDfs(g), func(idx Index) []geom.Vec3 {
		return verts[idx]
	})
	require.True(t, ok)
	assert.InDelta(t, 9, bounds.Min.X, 1e-6)
	assert.InDelta(t, 11, bounds.Max.X, 1e-6)
	assert.InDelta(t, -2, bounds.Min.Y, 1e-6)
	assert.InDelta(t, 2, bounds.Max.Y, 1e-6)
}

func TestBoundingCuboidEmpty(t *testing.T) {
	g := New()
	_, ok := BoundingCuboid(NewDfs(g), func(Index) []geom.Vec3 { return nil })
	assert.False(t, ok)
}

func TestClearRecreatesOrigin(t *testing.T) {
	g := New()
	g.AddNode(Point{})
	g.AddNode(Point{})
	g.Clear()

	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	tr, ok := g.NodeTransform(Origin)
	require.True(t, ok)
	assert.True(t, tr.IsIdentity())
}
