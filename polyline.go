package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/polyline"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type polylineData struct {
	common
	source tess.Source
}

func (*polylineData) role() tess.Role { return tess.RoleLine }

func (p *polylineData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	return colorRender(), renderSource(d, &p.common, p.role(), p.source)
}

// Polyline is the fluent handle of an open stroked polyline.
type Polyline struct {
	Drawing
}

// Polyline starts drawing an open stroke through the given points.
func (d *Draw) Polyline(points ...geom.Vec2) Polyline {
	r := d.buffer.PushEvents(eventsFromPoints(points, false))
	data := &polylineData{source: tess.SourceEvents{Events: r}}
	data.noFill = true
	data.stroked = true
	idx := d.a(data)
	return Polyline{Drawing{draw: d, index: idx}}
}

// ColoredPolyline starts drawing an open stroke whose vertices take
// their colors from the nearest source points.
func (d *Draw) ColoredPolyline(points []tess.ColoredPoint) Polyline {
	r := d.buffer.PushColoredPoints(points)
	data := &polylineData{source: tess.SourceColoredPoints{Points: r}}
	data.noFill = true
	data.stroked = true
	idx := d.a(data)
	return Polyline{Drawing{draw: d, index: idx}}
}

func (p Polyline) data() *polylineData {
	data, _ := p.primitive().(*polylineData)
	return data
}

// Weight sets the stroke thickness.
func (p Polyline) Weight(w float32) Polyline {
	if data := p.data(); data != nil {
		data.strokeWeight = w
	}
	return p
}

// Color sets the stroke color. Ignored for colored-point polylines.
func (p Polyline) Color(c mesh.Color) Polyline {
	if data := p.data(); data != nil {
		data.strokeColor = &c
	}
	return p
}

// Caps sets the end cap style.
func (p Polyline) Caps(style polyline.CapStyle) Polyline {
	if data := p.data(); data != nil {
		data.capStyle = style
	}
	return p
}

// Join sets the join style at interior points.
func (p Polyline) Join(style polyline.JoinStyle) Polyline {
	if data := p.data(); data != nil {
		data.joinStyle = style
	}
	return p
}
