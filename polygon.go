package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/polyline"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type polygonData struct {
	common
	source  tess.Source
	texture render.TextureHandle
}

func (*polygonData) role() tess.Role { return tess.RolePolygon }

func (p *polygonData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	rend := colorRender()
	if _, ok := p.source.(tess.SourceTexturedPoints); ok {
		rend = render.PrimitiveRender{Texture: p.texture, VertexMode: render.VertexModeTexture}
	}
	return rend, renderSource(d, &p.common, p.role(), p.source)
}

// Polygon is the fluent handle of a closed polygon primitive. Its point
// data is claimed in the session's shared buffers at construction; the
// fill and optional stroke pass both read the same claimed range.
type Polygon struct {
	Drawing
}

// Polygon starts drawing a closed polygon through the given points.
func (d *Draw) Polygon(points ...geom.Vec2) Polygon {
	r := d.buffer.PushEvents(eventsFromPoints(points, true))
	data := &polygonData{source: tess.SourceEvents{Events: r}}
	idx := d.a(data)
	return Polygon{Drawing{draw: d, index: idx}}
}

// ColoredPolygon starts drawing a closed polygon with authoritative
// per-point colors. The theme and any explicit color are ignored; the
// point colors are the data.
func (d *Draw) ColoredPolygon(points []tess.ColoredPoint) Polygon {
	r := d.buffer.PushColoredPoints(points)
	data := &polygonData{source: tess.SourceColoredPoints{Points: r, Close: true}}
	idx := d.a(data)
	return Polygon{Drawing{draw: d, index: idx}}
}

// TexturedPolygon starts drawing a closed polygon sampling the given
// texture at per-point coordinates.
func (d *Draw) TexturedPolygon(texture render.TextureHandle, points []tess.TexturedPoint) Polygon {
	r := d.buffer.PushTexturedPoints(points)
	data := &polygonData{
		source:  tess.SourceTexturedPoints{Points: r, Close: true},
		texture: texture,
	}
	idx := d.a(data)
	return Polygon{Drawing{draw: d, index: idx}}
}

func (p Polygon) data() *polygonData {
	data, _ := p.primitive().(*polygonData)
	return data
}

// Color sets the fill color. Ignored for colored-point polygons.
func (p Polygon) Color(c mesh.Color) Polygon {
	if data := p.data(); data != nil {
		data.fillColor = &c
	}
	return p
}

// NoFill suppresses the fill pass, leaving only the stroke.
func (p Polygon) NoFill() Polygon {
	if data := p.data(); data != nil {
		data.noFill = true
	}
	return p
}

// Stroke adds a stroke pass over the polygon outline, appended after
// the fill so it draws on top.
func (p Polygon) Stroke(c mesh.Color) Polygon {
	if data := p.data(); data != nil {
		data.strokeColor = &c
		data.stroked = true
	}
	return p
}

// StrokeWeight adds a stroke pass of the given thickness.
func (p Polygon) StrokeWeight(w float32) Polygon {
	if data := p.data(); data != nil {
		data.strokeWeight = w
		data.stroked = true
	}
	return p
}

// Join sets the stroke join style.
func (p Polygon) Join(style polyline.JoinStyle) Polygon {
	if data := p.data(); data != nil {
		data.joinStyle = style
	}
	return p
}
