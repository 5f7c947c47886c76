package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/polyline"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type lineData struct {
	common
	start, end geom.Vec2
}

func (*lineData) role() tess.Role { return tess.RoleLine }

func (l *lineData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	return colorRender(), renderOutline(d, &l.common, l.role(), []geom.Vec2{l.start, l.end}, false)
}

// Line is the fluent handle of a single stroked segment.
type Line struct {
	Drawing
}

// Line starts drawing a stroked segment between two points. A line has
// no fill; its color is the stroke color.
func (d *Draw) Line(start, end geom.Vec2) Line {
	data := &lineData{start: start, end: end}
	data.noFill = true
	data.stroked = true
	idx := d.a(data)
	return Line{Drawing{draw: d, index: idx}}
}

func (l Line) data() *lineData {
	data, _ := l.primitive().(*lineData)
	return data
}

// Points replaces the segment endpoints.
func (l Line) Points(start, end geom.Vec2) Line {
	if data := l.data(); data != nil {
		data.start, data.end = start, end
	}
	return l
}

// Weight sets the stroke thickness.
func (l Line) Weight(w float32) Line {
	if data := l.data(); data != nil {
		data.strokeWeight = w
	}
	return l
}

// Color sets the stroke color.
func (l Line) Color(c mesh.Color) Line {
	if data := l.data(); data != nil {
		data.strokeColor = &c
	}
	return l
}

// Caps sets the end cap style.
func (l Line) Caps(style polyline.CapStyle) Line {
	if data := l.data(); data != nil {
		data.capStyle = style
	}
	return l
}
