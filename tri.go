package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type triData struct {
	common
	corners [3]geom.Vec2
}

func (*triData) role() tess.Role { return tess.RoleTri }

func (t *triData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	return colorRender(), renderOutline(d, &t.common, t.role(), t.corners[:], true)
}

// Tri is the fluent handle of a triangle primitive.
type Tri struct {
	Drawing
}

// Tri starts drawing a triangle. The default is an upward-pointing
// triangle inscribed in a DefaultRectSide square centered on the node.
func (d *Draw) Tri() Tri {
	half := float32(DefaultRectSide) / 2
	data := &triData{
		corners: [3]geom.Vec2{
			geom.V2(-half, -half),
			geom.V2(half, -half),
			geom.V2(0, half),
		},
	}
	idx := d.a(data)
	return Tri{Drawing{draw: d, index: idx}}
}

func (t Tri) data() *triData {
	data, _ := t.primitive().(*triData)
	return data
}

// Points sets the three corners.
func (t Tri) Points(a, b, c geom.Vec2) Tri {
	if data := t.data(); data != nil {
		data.corners = [3]geom.Vec2{a, b, c}
	}
	return t
}

// Color sets the fill color.
func (t Tri) Color(c mesh.Color) Tri {
	if data := t.data(); data != nil {
		data.fillColor = &c
	}
	return t
}

// NoFill suppresses the fill pass.
func (t Tri) NoFill() Tri {
	if data := t.data(); data != nil {
		data.noFill = true
	}
	return t
}

// Stroke adds a stroke pass in the given color.
func (t Tri) Stroke(c mesh.Color) Tri {
	if data := t.data(); data != nil {
		data.strokeColor = &c
		data.stroked = true
	}
	return t
}

// StrokeWeight adds a stroke pass of the given thickness.
func (t Tri) StrokeWeight(w float32) Tri {
	if data := t.data(); data != nil {
		data.strokeWeight = w
		data.stroked = true
	}
	return t
}
