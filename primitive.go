package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/graph"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/polyline"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

// Primitive is a pending drawing whose geometry has not been tessellated
// yet. Exactly the shape data types in this package implement it.
type Primitive interface {
	props() *Properties
	role() tess.Role
	// draw tessellates the primitive into the session mesh, untransformed;
	// the geometry graph supplies the node transform at consumption time.
	draw(d *Draw) (render.PrimitiveRender, mesh.Ranges)
}

// common is the builder state shared by every shape: spatial properties
// plus color and stroke styling.
type common struct {
	properties Properties

	fillColor   *mesh.Color
	strokeColor *mesh.Color
	noFill      bool
	stroked     bool

	strokeWeight float32
	capStyle     polyline.CapStyle
	joinStyle    polyline.JoinStyle
	tolerance    float32
}

func (c *common) props() *Properties { return &c.properties }

func (c *common) fillOptions() tess.FillOptions {
	return tess.FillOptions{Tolerance: c.tolerance}
}

func (c *common) strokeOptions() tess.StrokeOptions {
	return tess.StrokeOptions{
		Weight:    c.strokeWeight,
		Cap:       polyline.DynamicCap{Style: c.capStyle},
		Join:      polyline.DynamicJoin{Style: c.joinStyle},
		Tolerance: c.tolerance,
	}
}

// eventsFromPoints builds the path events of a polygonal outline.
func eventsFromPoints(points []geom.Vec2, closed bool) []tess.PathEvent {
	if len(points) == 0 {
		return nil
	}
	events := make([]tess.PathEvent, 0, len(points)+1)
	events = append(events, tess.EventBegin{At: points[0]})
	for i := 1; i < len(points); i++ {
		events = append(events, tess.EventLine{From: points[i-1], To: points[i]})
	}
	events = append(events, tess.EventEnd{
		Last:  points[len(points)-1],
		First: points[0],
		Close: closed,
	})
	return events
}

// mergeRanges combines the ranges of two back-to-back passes over the
// same mesh into one span. Either side may be empty.
func mergeRanges(a, b mesh.Ranges) mesh.Ranges {
	if a.Vertices.Len() == 0 && a.Indices.Len() == 0 {
		return b
	}
	if b.Vertices.Len() == 0 && b.Indices.Len() == 0 {
		return a
	}
	return mesh.Ranges{
		Vertices: mesh.Range{Start: a.Vertices.Start, End: b.Vertices.End},
		Indices:  mesh.Range{Start: a.Indices.Start, End: b.Indices.End},
	}
}

// renderSource runs the fill and stroke passes a shape asked for over one
// event source. Fill comes first so a stroke always draws on top.
func renderSource(d *Draw, c *common, role tess.Role, src tess.Source) mesh.Ranges {
	ctx := d.tessContext()
	id := graph.IdentityTransform()
	var ranges mesh.Ranges
	filled := false
	if !c.noFill {
		ranges = tess.RenderPathSource(ctx, src, c.fillColor, id, c.fillOptions(), d.theme, role, d.mesh)
		filled = true
	}
	if c.stroked || c.strokeColor != nil {
		stroke := tess.RenderPathSource(ctx, src, c.strokeColor, id, c.strokeOptions(), d.theme, role, d.mesh)
		if filled {
			ranges = mergeRanges(ranges, stroke)
		} else {
			ranges = stroke
		}
	}
	return ranges
}

// renderOutline is renderSource over a plain polygonal outline.
func renderOutline(d *Draw, c *common, role tess.Role, points []geom.Vec2, closed bool) mesh.Ranges {
	r := d.buffer.PushEvents(eventsFromPoints(points, closed))
	return renderSource(d, c, role, tess.SourceEvents{Events: r})
}

// colorRender is the PrimitiveRender shared by every untextured shape.
func colorRender() render.PrimitiveRender {
	return render.PrimitiveRender{Texture: render.NoTexture, VertexMode: render.VertexModeColor}
}
