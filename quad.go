package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type quadData struct {
	common
	corners [4]geom.Vec2
}

func (*quadData) role() tess.Role { return tess.RoleQuad }

func (q *quadData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	return colorRender(), renderOutline(d, &q.common, q.role(), q.corners[:], true)
}

// Quad is the fluent handle of a four-cornered polygon primitive.
type Quad struct {
	Drawing
}

// Quad starts drawing a quad. The default corners form a
// DefaultRectSide square centered on the node.
func (d *Draw) Quad() Quad {
	data := &quadData{
		corners: geom.RectCorners(geom.Vec2{}, geom.V2(DefaultRectSide, DefaultRectSide)),
	}
	idx := d.a(data)
	return Quad{Drawing{draw: d, index: idx}}
}

func (q Quad) data() *quadData {
	data, _ := q.primitive().(*quadData)
	return data
}

// Points sets the four corners, in outline order.
func (q Quad) Points(a, b, c, d geom.Vec2) Quad {
	if data := q.data(); data != nil {
		data.corners = [4]geom.Vec2{a, b, c, d}
	}
	return q
}

// Color sets the fill color.
func (q Quad) Color(c mesh.Color) Quad {
	if data := q.data(); data != nil {
		data.fillColor = &c
	}
	return q
}

// NoFill suppresses the fill pass.
func (q Quad) NoFill() Quad {
	if data := q.data(); data != nil {
		data.noFill = true
	}
	return q
}

// Stroke adds a stroke pass in the given color.
func (q Quad) Stroke(c mesh.Color) Quad {
	if data := q.data(); data != nil {
		data.strokeColor = &c
		data.stroked = true
	}
	return q
}

// StrokeWeight adds a stroke pass of the given thickness.
func (q Quad) StrokeWeight(w float32) Quad {
	if data := q.data(); data != nil {
		data.strokeWeight = w
		data.stroked = true
	}
	return q
}
