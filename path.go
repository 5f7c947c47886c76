package draw

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/polyline"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type pathData struct {
	common
	source tess.SourceEvents
}

func (*pathData) role() tess.Role { return tess.RolePath }

func (p *pathData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	return colorRender(), renderSource(d, &p.common, p.role(), p.source)
}

// pathBuilder accumulates path events locally; the shared buffer range
// is claimed only when the path ends.
type pathBuilder struct {
	draw   *Draw
	events []tess.PathEvent
	at     geom.Vec2
	first  geom.Vec2
	open   bool
}

func (b *pathBuilder) moveTo(p geom.Vec2) {
	b.endSubPath(false)
	b.events = append(b.events, tess.EventBegin{At: p})
	b.at, b.first, b.open = p, p, true
}

func (b *pathBuilder) ensureOpen(p geom.Vec2) {
	if !b.open {
		b.moveTo(p)
	}
}

func (b *pathBuilder) lineTo(p geom.Vec2) {
	if !b.open {
		b.moveTo(p)
		return
	}
	b.events = append(b.events, tess.EventLine{From: b.at, To: p})
	b.at = p
}

func (b *pathBuilder) quadraticTo(ctrl, to geom.Vec2) {
	b.ensureOpen(ctrl)
	b.events = append(b.events, tess.EventQuadratic{From: b.at, Ctrl: ctrl, To: to})
	b.at = to
}

func (b *pathBuilder) cubicTo(c1, c2, to geom.Vec2) {
	b.ensureOpen(c1)
	b.events = append(b.events, tess.EventCubic{From: b.at, Ctrl1: c1, Ctrl2: c2, To: to})
	b.at = to
}

// arc approximates a circular arc from angle a1 to a2 with line
// segments, connecting from the current position when a sub-path is
// open.
func (b *pathBuilder) arc(center geom.Vec2, radius, a1, a2 float32) {
	pts := geom.ArcPoints(center, radius, a1, a2, geom.DefaultEllipseResolution, 3)
	for _, p := range pts {
		b.lineTo(p)
	}
}

// roundedRect traces a closed rectangle outline with quarter-circle
// corners. The corner radius is clamped to half the shorter side.
func (b *pathBuilder) roundedRect(center, dims geom.Vec2, radius float32) {
	half := dims.Mul(0.5)
	maxR := math32.Min(half.X, half.Y)
	if radius > maxR {
		radius = maxR
	}
	if radius <= 0 {
		corners := geom.RectCorners(center, dims)
		b.moveTo(corners[0])
		for _, c := range corners[1:] {
			b.lineTo(c)
		}
		b.closeSubPath()
		return
	}
	right, top := center.X+half.X, center.Y+half.Y
	left, bottom := center.X-half.X, center.Y-half.Y
	b.moveTo(geom.V2(right, bottom+radius))
	b.arc(geom.V2(right-radius, top-radius), radius, 0, math32.Pi/2)
	b.arc(geom.V2(left+radius, top-radius), radius, math32.Pi/2, math32.Pi)
	b.arc(geom.V2(left+radius, bottom+radius), radius, math32.Pi, 3*math32.Pi/2)
	b.arc(geom.V2(right-radius, bottom+radius), radius, 3*math32.Pi/2, 2*math32.Pi)
	b.closeSubPath()
}

func (b *pathBuilder) endSubPath(close bool) {
	if !b.open {
		return
	}
	b.events = append(b.events, tess.EventEnd{Last: b.at, First: b.first, Close: close})
	b.open = false
}

func (b *pathBuilder) closeSubPath() {
	b.endSubPath(true)
}

// finish claims the accumulated events in the shared buffer and
// allocates the path's node.
func (b *pathBuilder) finish(stroke bool) Path {
	b.endSubPath(false)
	r := b.draw.buffer.PushEvents(b.events)
	data := &pathData{source: tess.SourceEvents{Events: r}}
	if stroke {
		data.noFill = true
		data.stroked = true
	}
	idx := b.draw.a(data)
	return Path{Drawing{draw: b.draw, index: idx}}
}

// PathInit is a path drawing before fill or stroke has been chosen.
// Selecting one fixes which tessellator will consume the events.
type PathInit struct {
	draw *Draw
}

// Path starts building a path primitive.
func (d *Draw) Path() PathInit {
	return PathInit{draw: d}
}

// Fill makes the path a filled outline.
func (pi PathInit) Fill() PathFill {
	return PathFill{b: &pathBuilder{draw: pi.draw}}
}

// Stroke makes the path a stroked outline.
func (pi PathInit) Stroke() PathStroke {
	return PathStroke{b: &pathBuilder{draw: pi.draw}}
}

// PathFill builds the sub-paths of a filled path.
type PathFill struct {
	b *pathBuilder
}

// MoveTo starts a new sub-path.
func (p PathFill) MoveTo(to geom.Vec2) PathFill { p.b.moveTo(to); return p }

// LineTo appends a straight segment.
func (p PathFill) LineTo(to geom.Vec2) PathFill { p.b.lineTo(to); return p }

// QuadraticTo appends a quadratic Bezier segment.
func (p PathFill) QuadraticTo(ctrl, to geom.Vec2) PathFill {
	p.b.quadraticTo(ctrl, to)
	return p
}

// CubicTo appends a cubic Bezier segment.
func (p PathFill) CubicTo(c1, c2, to geom.Vec2) PathFill {
	p.b.cubicTo(c1, c2, to)
	return p
}

// Arc appends a circular arc from angle a1 to a2.
func (p PathFill) Arc(center geom.Vec2, radius, a1, a2 float32) PathFill {
	p.b.arc(center, radius, a1, a2)
	return p
}

// RoundedRect appends a closed rounded-rectangle sub-path.
func (p PathFill) RoundedRect(center, dims geom.Vec2, radius float32) PathFill {
	p.b.roundedRect(center, dims, radius)
	return p
}

// Close closes the current sub-path back to its first point.
func (p PathFill) Close() PathFill { p.b.closeSubPath(); return p }

// End finishes the path and returns its primitive handle.
func (p PathFill) End() Path { return p.b.finish(false) }

// PathStroke builds the sub-paths of a stroked path.
type PathStroke struct {
	b *pathBuilder
}

// MoveTo starts a new sub-path.
func (p PathStroke) MoveTo(to geom.Vec2) PathStroke { p.b.moveTo(to); return p }

// LineTo appends a straight segment.
func (p PathStroke) LineTo(to geom.Vec2) PathStroke { p.b.lineTo(to); return p }

// QuadraticTo appends a quadratic Bezier segment.
func (p PathStroke) QuadraticTo(ctrl, to geom.Vec2) PathStroke {
	p.b.quadraticTo(ctrl, to)
	return p
}

// CubicTo appends a cubic Bezier segment.
func (p PathStroke) CubicTo(c1, c2, to geom.Vec2) PathStroke {
	p.b.cubicTo(c1, c2, to)
	return p
}

// Arc appends a circular arc from angle a1 to a2.
func (p PathStroke) Arc(center geom.Vec2, radius, a1, a2 float32) PathStroke {
	p.b.arc(center, radius, a1, a2)
	return p
}

// RoundedRect appends a closed rounded-rectangle sub-path.
func (p PathStroke) RoundedRect(center, dims geom.Vec2, radius float32) PathStroke {
	p.b.roundedRect(center, dims, radius)
	return p
}

// Close closes the current sub-path back to its first point.
func (p PathStroke) Close() PathStroke { p.b.closeSubPath(); return p }

// End finishes the path and returns its primitive handle.
func (p PathStroke) End() Path { return p.b.finish(true) }

// Path is the fluent handle of a finished path primitive.
type Path struct {
	Drawing
}

func (p Path) data() *pathData {
	data, _ := p.primitive().(*pathData)
	return data
}

// Color sets the path color, fill or stroke according to how the path
// was built.
func (p Path) Color(c mesh.Color) Path {
	if data := p.data(); data != nil {
		if data.stroked {
			data.strokeColor = &c
		} else {
			data.fillColor = &c
		}
	}
	return p
}

// Weight sets the stroke thickness of a stroked path.
func (p Path) Weight(w float32) Path {
	if data := p.data(); data != nil {
		data.strokeWeight = w
	}
	return p
}

// Caps sets the end cap style of a stroked path.
func (p Path) Caps(style polyline.CapStyle) Path {
	if data := p.data(); data != nil {
		data.capStyle = style
	}
	return p
}

// Join sets the join style of a stroked path.
func (p Path) Join(style polyline.JoinStyle) Path {
	if data := p.data(); data != nil {
		data.joinStyle = style
	}
	return p
}
