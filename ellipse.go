package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

// DefaultEllipseRadius is the radius of an ellipse drawn without one.
const DefaultEllipseRadius = 50

type ellipseData struct {
	common
	radius     geom.Vec2
	rotation   float32
	resolution int
}

func (*ellipseData) role() tess.Role { return tess.RoleEllipse }

func (e *ellipseData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	points := geom.EllipsePoints(geom.Vec2{}, e.radius, e.rotation, e.resolution)
	return colorRender(), renderOutline(d, &e.common, e.role(), points, true)
}

// Ellipse is the fluent handle of an ellipse primitive.
type Ellipse struct {
	Drawing
}

// Ellipse starts drawing an ellipse centered on its node.
func (d *Draw) Ellipse() Ellipse {
	data := &ellipseData{
		radius:     geom.V2(DefaultEllipseRadius, DefaultEllipseRadius),
		resolution: geom.DefaultEllipseResolution,
	}
	idx := d.a(data)
	return Ellipse{Drawing{draw: d, index: idx}}
}

func (e Ellipse) data() *ellipseData {
	data, _ := e.primitive().(*ellipseData)
	return data
}

// Radius makes the ellipse a circle of the given radius.
func (e Ellipse) Radius(r float32) Ellipse {
	if data := e.data(); data != nil {
		data.radius = geom.V2(r, r)
	}
	return e
}

// RadiusXY sets independent horizontal and vertical radii.
func (e Ellipse) RadiusXY(rx, ry float32) Ellipse {
	if data := e.data(); data != nil {
		data.radius = geom.V2(rx, ry)
	}
	return e
}

// WH sets the ellipse's full width and height.
func (e Ellipse) WH(w, h float32) Ellipse {
	return e.RadiusXY(w/2, h/2)
}

// Rotation rotates the outline points themselves, independent of the
// node's orientation edges.
func (e Ellipse) Rotation(radians float32) Ellipse {
	if data := e.data(); data != nil {
		data.rotation = radians
	}
	return e
}

// Resolution sets the number of outline points.
func (e Ellipse) Resolution(n int) Ellipse {
	if data := e.data(); data != nil {
		data.resolution = n
	}
	return e
}

// Color sets the fill color.
func (e Ellipse) Color(c mesh.Color) Ellipse {
	if data := e.data(); data != nil {
		data.fillColor = &c
	}
	return e
}

// NoFill suppresses the fill pass.
func (e Ellipse) NoFill() Ellipse {
	if data := e.data(); data != nil {
		data.noFill = true
	}
	return e
}

// Stroke adds a stroke pass in the given color.
func (e Ellipse) Stroke(c mesh.Color) Ellipse {
	if data := e.data(); data != nil {
		data.strokeColor = &c
		data.stroked = true
	}
	return e
}

// StrokeWeight adds a stroke pass of the given thickness.
func (e Ellipse) StrokeWeight(w float32) Ellipse {
	if data := e.data(); data != nil {
		data.strokeWeight = w
		data.stroked = true
	}
	return e
}
