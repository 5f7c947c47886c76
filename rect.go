package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

// DefaultRectSide is the width and height of a rect drawn without
// dimensions.
const DefaultRectSide = 100

type rectData struct {
	common
	dims geom.Vec2
}

func (*rectData) role() tess.Role { return tess.RoleRect }

func (r *rectData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	corners := geom.RectCorners(geom.Vec2{}, r.dims)
	return colorRender(), renderOutline(d, &r.common, r.role(), corners[:], true)
}

// Rect is the fluent handle of an axis-aligned rectangle primitive.
type Rect struct {
	Drawing
}

// Rect starts drawing a rectangle centered on its node.
func (d *Draw) Rect() Rect {
	data := &rectData{dims: geom.V2(DefaultRectSide, DefaultRectSide)}
	idx := d.a(data)
	return Rect{Drawing{draw: d, index: idx}}
}

func (r Rect) data() *rectData {
	data, _ := r.primitive().(*rectData)
	return data
}

// WH sets the rectangle's width and height.
func (r Rect) WH(w, h float32) Rect {
	if data := r.data(); data != nil {
		data.dims = geom.V2(w, h)
	}
	return r
}

// W sets the rectangle's width.
func (r Rect) W(w float32) Rect {
	if data := r.data(); data != nil {
		data.dims.X = w
	}
	return r
}

// H sets the rectangle's height.
func (r Rect) H(h float32) Rect {
	if data := r.data(); data != nil {
		data.dims.Y = h
	}
	return r
}

// Color sets the fill color.
func (r Rect) Color(c mesh.Color) Rect {
	if data := r.data(); data != nil {
		data.fillColor = &c
	}
	return r
}

// NoFill suppresses the fill pass.
func (r Rect) NoFill() Rect {
	if data := r.data(); data != nil {
		data.noFill = true
	}
	return r
}

// Stroke adds a stroke pass in the given color.
func (r Rect) Stroke(c mesh.Color) Rect {
	if data := r.data(); data != nil {
		data.strokeColor = &c
		data.stroked = true
	}
	return r
}

// StrokeWeight adds a stroke pass of the given thickness.
func (r Rect) StrokeWeight(w float32) Rect {
	if data := r.data(); data != nil {
		data.strokeWeight = w
		data.stroked = true
	}
	return r
}
