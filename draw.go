// Package draw is a retained-mode drawing API. Calls record primitives
// instead of rasterizing them: each primitive gets a node in a geometry
// graph, its spatial builder chain keeps mutating it, and its geometry is
// tessellated into a shared mesh only when something needs it (a
// dimension query, a relative position, or the end of the frame). The
// finished mesh and per-primitive ranges are handed to an external
// renderer; package render describes that boundary.
//
// A Draw session is single-threaded; handles are lightweight values
// sharing the session pointer.
package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/graph"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
	"github.com/gogpu/draw/text"
)

// DrawnPrimitive is the record of one finalized primitive: where its
// geometry lives in the mesh and how a backend must draw it.
type DrawnPrimitive struct {
	Ranges mesh.Ranges
	Render render.PrimitiveRender
}

// Drawn pairs a finalized primitive with its node and absolute
// transform, ready for a renderer to consume.
type Drawn struct {
	Node      graph.Index
	Transform graph.Transform
	Ranges    mesh.Ranges
	Render    render.PrimitiveRender
}

// Draw is one drawing session: the geometry graph, the shared mesh, the
// scratch buffers every pending primitive claims ranges in, and the
// pending and finalized primitive maps.
//
// Draw is not safe for concurrent use.
type Draw struct {
	graph  *graph.Graph
	mesh   *mesh.Mesh
	buffer *tess.Buffer

	fillTess   *tess.FillTessellator
	strokeTess *tess.StrokeTessellator

	theme Theme
	face  *text.Face

	pending map[graph.Index]Primitive
	drawn   map[graph.Index]DrawnPrimitive

	// lastNode is the implicit parent for the next primitive's relative
	// positioning; it tracks the most recently allocated primitive.
	lastNode graph.Index
}

// Option configures a Draw session.
type Option func(*Draw)

// WithTheme sets the default-color theme.
func WithTheme(t Theme) Option {
	return func(d *Draw) { d.theme = t }
}

// WithFace sets the default face used by text primitives.
func WithFace(f *text.Face) Option {
	return func(d *Draw) { d.face = f }
}

// New creates an empty drawing session.
func New(opts ...Option) *Draw {
	d := &Draw{
		graph:      graph.New(),
		mesh:       mesh.New(),
		buffer:     &tess.Buffer{},
		fillTess:   &tess.FillTessellator{},
		strokeTess: &tess.StrokeTessellator{},
		theme:      DefaultTheme(),
		pending:    make(map[graph.Index]Primitive),
		drawn:      make(map[graph.Index]DrawnPrimitive),
		lastNode:   graph.Origin,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Reset drops every primitive, pending or drawn, and clears the graph,
// the mesh, and the shared scratch buffers in bulk. Handles and ranges
// from before the reset are invalid afterwards.
func (d *Draw) Reset() {
	d.graph.Clear()
	d.mesh.Clear()
	d.buffer.Clear()
	clear(d.pending)
	clear(d.drawn)
	d.lastNode = graph.Origin
}

// Graph exposes the session's geometry graph.
func (d *Draw) Graph() *graph.Graph { return d.graph }

// MeshBuffer exposes the shared mesh for GPU upload.
func (d *Draw) MeshBuffer() *mesh.Mesh { return d.mesh }

// Theme returns the session theme.
func (d *Draw) Theme() Theme { return d.theme }

func (d *Draw) tessContext() *tess.Context {
	return &tess.Context{
		Fill:   d.fillTess,
		Stroke: d.strokeTess,
		Buffer: d.buffer,
		Logger: Logger(),
	}
}

// a allocates a graph node for a new primitive and registers it as
// pending. The node exists immediately so other primitives can position
// themselves relative to it before its geometry is computed. The
// previously allocated primitive becomes this one's implicit positioning
// parent.
func (d *Draw) a(p Primitive) graph.Index {
	idx := d.graph.AddNode(graph.Point{})
	p.props().relativeTo = d.lastNode
	d.pending[idx] = p
	d.lastNode = idx
	return idx
}

// finishDrawing finalizes the primitive at idx if it is still pending.
// The pending entry is removed before geometry is computed so mutually
// relative primitives terminate; the cycle itself still surfaces from
// the edge insertion.
func (d *Draw) finishDrawing(idx graph.Index) error {
	p, ok := d.pending[idx]
	if !ok {
		return nil
	}
	delete(d.pending, idx)
	return d.intoDrawn(idx, p)
}

// FinishRemainingDrawings drains every pending primitive, finalizing
// each in unspecified map order. Every primitive is finalized even when
// an earlier one fails; the first error is returned. A *WouldCycleError
// here indicates mutually relative primitives, a programming mistake.
func (d *Draw) FinishRemainingDrawings() error {
	var first error
	for len(d.pending) > 0 {
		for idx := range d.pending {
			if err := d.finishDrawing(idx); err != nil && first == nil {
				first = err
			}
			break
		}
	}
	return first
}

// intoDrawn tessellates p into the mesh, records its ranges, upgrades
// its node, and resolves every specified spatial property into graph
// edges.
func (d *Draw) intoDrawn(idx graph.Index, p Primitive) error {
	rend, ranges := p.draw(d)
	d.drawn[idx] = DrawnPrimitive{Ranges: ranges, Render: rend}
	d.graph.SetNode(idx, graph.Primitive{})

	props := p.props()
	for _, axis := range []graph.Axis{graph.X, graph.Y, graph.Z} {
		if pos := props.Position[axis]; pos.Set {
			edge, err := d.positionToEdge(axis, pos, props, idx)
			if err != nil {
				return err
			}
			if err := d.graph.SetEdge(idx, edge); err != nil {
				return err
			}
		}
		if o := props.Orientation[axis]; o.set {
			if err := d.graph.SetEdge(idx, graph.OrientationEdge(graph.Origin, axis, o.value)); err != nil {
				return err
			}
		}
		if s := props.Scale[axis]; s.set {
			if err := d.graph.SetEdge(idx, graph.ScaleEdge(graph.Origin, axis, s.value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// positionToEdge resolves one axis of a primitive's position into a
// concrete graph edge.
//
// Absolute positions hang off the origin with the literal weight.
// Scalar positions hang off the positioning parent. Align and Direction
// need the untransformed half-dimension of both the node and its parent
// along the axis, which is exactly where finalization of the two-sided
// relationship is forced.
func (d *Draw) positionToEdge(axis graph.Axis, pos Position, props *Properties, node graph.Index) (graph.Edge, error) {
	switch pos.Kind {
	case PositionAbsolute:
		return graph.PositionEdge(graph.Origin, axis, pos.Value), nil
	case PositionScalar:
		return graph.PositionEdge(props.parentFor(axis), axis, pos.Value), nil
	}

	parent := props.parentFor(axis)
	nodeDim, err := d.forcedDimension(axis, node)
	if err != nil {
		return graph.Edge{}, err
	}
	parentDim, err := d.forcedDimension(axis, parent)
	if err != nil {
		return graph.Edge{}, err
	}
	nodeHalf, parentHalf := nodeDim/2, parentDim/2

	var weight float32
	if pos.Kind == PositionAlign {
		switch pos.Align {
		case AlignMiddle:
			weight = 0
		case AlignStart:
			weight = -(parentHalf - nodeHalf - pos.Value)
		case AlignEnd:
			weight = parentHalf - nodeHalf - pos.Value
		}
	} else {
		weight = parentHalf + nodeHalf + pos.Value
		if pos.Way == Backwards {
			weight = -weight
		}
	}
	return graph.PositionEdge(parent, axis, weight), nil
}

// forcedDimension is the untransformed dimension of a node, finalizing
// it first if it is still pending. Nodes with no geometry (the origin,
// bare points) measure zero.
func (d *Draw) forcedDimension(axis graph.Axis, idx graph.Index) (float32, error) {
	if err := d.finishDrawing(idx); err != nil {
		return 0, err
	}
	dim, _ := d.untransformedDimension(axis, idx)
	return dim, nil
}

func (d *Draw) untransformedDimension(axis graph.Axis, idx graph.Index) (float32, bool) {
	dp, ok := d.drawn[idx]
	if !ok {
		return 0, false
	}
	return axisExtent(d.mesh.PointsInRange(dp.Ranges), axis), true
}

// axisExtent is the max-min spread of points along one axis.
func axisExtent(points []geom.Vec3, axis graph.Axis) float32 {
	if len(points) == 0 {
		return 0
	}
	component := func(p geom.Vec3) float32 {
		switch axis {
		case graph.X:
			return p.X
		case graph.Y:
			return p.Y
		default:
			return p.Z
		}
	}
	min, max := component(points[0]), component(points[0])
	for _, p := range points[1:] {
		c := component(p)
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max - min
}

// UntransformedDimensionOf measures the raw mesh extent of a primitive
// along an axis, finalizing it first if necessary. ok=false means the
// node does not exist or was never drawn. Repeated queries are
// idempotent; finalization happens at most once.
func (d *Draw) UntransformedDimensionOf(axis graph.Axis, idx graph.Index) (float32, bool) {
	if !d.graph.Contains(idx) {
		return 0, false
	}
	if err := d.finishDrawing(idx); err != nil {
		Logger().Warn("finalization failed during dimension query", "node", int(idx), "err", err)
		return 0, false
	}
	return d.untransformedDimension(axis, idx)
}

// DimensionOf measures the graph-transformed extent of a primitive along
// an axis, finalizing it first if necessary.
func (d *Draw) DimensionOf(axis graph.Axis, idx graph.Index) (float32, bool) {
	if _, ok := d.UntransformedDimensionOf(axis, idx); !ok {
		return 0, false
	}
	pts, ok := d.graph.NodeVertices(idx, d.mesh.PointsInRange(d.drawn[idx].Ranges))
	if !ok {
		return 0, false
	}
	return axisExtent(pts, axis), true
}

// XDimensionOf is DimensionOf along X.
func (d *Draw) XDimensionOf(idx graph.Index) (float32, bool) {
	return d.DimensionOf(graph.X, idx)
}

// YDimensionOf is DimensionOf along Y.
func (d *Draw) YDimensionOf(idx graph.Index) (float32, bool) {
	return d.DimensionOf(graph.Y, idx)
}

// ZDimensionOf is DimensionOf along Z.
func (d *Draw) ZDimensionOf(idx graph.Index) (float32, bool) {
	return d.DimensionOf(graph.Z, idx)
}

// Drawings finalizes everything still pending and returns every drawn
// primitive in graph order (parents before children) with its absolute
// transform. A renderer walks this list, binding each primitive's
// texture and drawing its index range over the shared mesh.
func (d *Draw) Drawings() ([]Drawn, error) {
	err := d.FinishRemainingDrawings()
	var out []Drawn
	dfs := graph.NewDfs(d.graph)
	for {
		idx, tr, ok := dfs.NextTransform()
		if !ok {
			break
		}
		dp, drawn := d.drawn[idx]
		if !drawn {
			continue
		}
		out = append(out, Drawn{Node: idx, Transform: tr, Ranges: dp.Ranges, Render: dp.Render})
	}
	return out, err
}

// BoundingBox finalizes everything still pending and folds every drawn
// primitive's transformed vertices into one bounding cuboid. ok=false
// means the session has no geometry.
func (d *Draw) BoundingBox() (geom.Cuboid, bool) {
	if err := d.FinishRemainingDrawings(); err != nil {
		Logger().Warn("finalization failed during bounding box", "err", err)
	}
	return graph.BoundingCuboid(graph.NewDfs(d.graph), func(idx graph.Index) []geom.Vec3 {
		dp, ok := d.drawn[idx]
		if !ok {
			return nil
		}
		return d.mesh.PointsInRange(dp.Ranges)
	})
}
