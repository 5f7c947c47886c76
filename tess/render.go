package tess

import (
	"log/slog"

	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/graph"
	"github.com/gogpu/draw/mesh"
)

// Role names the kind of primitive asking the theme for a default color.
type Role uint8

// Theme roles, one per primitive kind.
const (
	RoleDefault Role = iota
	RoleEllipse
	RoleRect
	RoleQuad
	RoleTri
	RoleLine
	RolePolygon
	RolePath
	RoleText
	RoleMesh
)

// Theme resolves default fill and stroke colors for primitives drawn
// without an explicit color.
type Theme interface {
	Fill(role Role) mesh.Color
	Stroke(role Role) mesh.Color
}

// Context bundles the reusable tessellators and the shared scratch
// buffer of one drawing session.
type Context struct {
	Fill   *FillTessellator
	Stroke *StrokeTessellator
	Buffer *Buffer

	// Logger receives degenerate-geometry warnings. Nil discards them.
	Logger *slog.Logger
}

func (c *Context) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// RenderPathSource tessellates one primitive's outline into the mesh and
// returns the claimed ranges.
//
// The theme is consulted only for the plain-events source and only when
// color is nil; colored and textured point sources carry their own
// authoritative per-point attributes. Degenerate outlines are logged and
// contribute no geometry; the rest of the frame is unaffected.
func RenderPathSource(ctx *Context, src Source, color *mesh.Color, tr graph.Transform, opts Options, theme Theme, role Role, m *mesh.Mesh) mesh.Ranges {
	switch s := src.(type) {
	case SourceEvents:
		return renderEvents(ctx, s, color, tr, opts, theme, role, m)
	case SourceColoredPoints:
		return renderColoredPoints(ctx, s, tr, opts, m)
	case SourceTexturedPoints:
		return renderTexturedPoints(ctx, s, color, tr, opts, theme, role, m)
	default:
		return m.ExtendWith(nil, nil)
	}
}

// themeColor resolves the effective color for a plain-events primitive.
func themeColor(color *mesh.Color, opts Options, theme Theme, role Role) mesh.Color {
	if color != nil {
		return *color
	}
	if theme == nil {
		return mesh.RGB(1, 1, 1)
	}
	if _, ok := opts.(StrokeOptions); ok {
		return theme.Stroke(role)
	}
	return theme.Fill(role)
}

func tolerance(opts Options) float32 {
	switch o := opts.(type) {
	case FillOptions:
		return o.Tolerance
	case StrokeOptions:
		return o.Tolerance
	default:
		return 0
	}
}

// liftVertex places a flat outline point into the mesh vertex format.
func liftVertex(tr graph.Transform, p geom.Vec2, col mesh.Color, tc geom.Vec2) mesh.Vertex {
	return mesh.Vertex{
		Point:    tr.Point(geom.V3(p.X, p.Y, 0)),
		Color:    col,
		TexCoord: tc,
	}
}

func renderEvents(ctx *Context, src SourceEvents, color *mesh.Color, tr graph.Transform, opts Options, theme Theme, role Role, m *mesh.Mesh) mesh.Ranges {
	contours := FlattenEvents(ctx.Buffer.Events(src.Events), tolerance(opts))
	col := themeColor(color, opts, theme, role)

	var verts []mesh.Vertex
	var indices []uint32
	if so, ok := opts.(StrokeOptions); ok {
		for _, c := range contours {
			if len(c.Points) < 2 {
				continue
			}
			for _, p := range ctx.Stroke.Tessellate(c.Points, c.Closed, so) {
				indices = append(indices, uint32(len(verts)))
				verts = append(verts, liftVertex(tr, p, col, geom.Vec2{}))
			}
		}
	} else {
		for _, c := range contours {
			tris, err := ctx.Fill.Tessellate(c.Points)
			if err != nil {
				ctx.log().Warn("fill tessellation failed", "role", role, "err", err)
				continue
			}
			base := uint32(len(verts))
			for _, p := range c.Points {
				verts = append(verts, liftVertex(tr, p, col, geom.Vec2{}))
			}
			for _, i := range tris {
				indices = append(indices, base+i)
			}
		}
	}
	return m.ExtendWith(verts, indices)
}

func renderColoredPoints(ctx *Context, src SourceColoredPoints, tr graph.Transform, opts Options, m *mesh.Mesh) mesh.Ranges {
	cps := ctx.Buffer.ColoredPoints(src.Points)
	points := make([]geom.Vec2, len(cps))
	for i, cp := range cps {
		points[i] = cp.Point
	}

	var verts []mesh.Vertex
	var indices []uint32
	if so, ok := opts.(StrokeOptions); ok {
		for _, p := range ctx.Stroke.Tessellate(points, src.Close, so) {
			seg, t := closestSegmentParam(points, p)
			col := lerpColor(cps[seg].Color, cps[seg+1].Color, t)
			indices = append(indices, uint32(len(verts)))
			verts = append(verts, liftVertex(tr, p, col, geom.Vec2{}))
		}
	} else {
		tris, err := ctx.Fill.Tessellate(points)
		if err != nil {
			ctx.log().Warn("fill tessellation failed", "source", "colored points", "err", err)
			return m.ExtendWith(nil, nil)
		}
		for _, cp := range cps {
			verts = append(verts, liftVertex(tr, cp.Point, cp.Color, geom.Vec2{}))
		}
		indices = tris
	}
	return m.ExtendWith(verts, indices)
}

func renderTexturedPoints(ctx *Context, src SourceTexturedPoints, color *mesh.Color, tr graph.Transform, opts Options, theme Theme, role Role, m *mesh.Mesh) mesh.Ranges {
	tps := ctx.Buffer.TexturedPoints(src.Points)
	points := make([]geom.Vec2, len(tps))
	for i, tp := range tps {
		points[i] = tp.Point
	}
	col := themeColor(color, opts, theme, role)

	var verts []mesh.Vertex
	var indices []uint32
	if so, ok := opts.(StrokeOptions); ok {
		for _, p := range ctx.Stroke.Tessellate(points, src.Close, so) {
			seg, t := closestSegmentParam(points, p)
			tc := tps[seg].TexCoord.Lerp(tps[seg+1].TexCoord, t)
			indices = append(indices, uint32(len(verts)))
			verts = append(verts, liftVertex(tr, p, col, tc))
		}
	} else {
		tris, err := ctx.Fill.Tessellate(points)
		if err != nil {
			ctx.log().Warn("fill tessellation failed", "source", "textured points", "err", err)
			return m.ExtendWith(nil, nil)
		}
		for _, tp := range tps {
			verts = append(verts, liftVertex(tr, tp.Point, col, tp.TexCoord))
		}
		indices = tris
	}
	return m.ExtendWith(verts, indices)
}

func lerpColor(a, b mesh.Color, t float32) mesh.Color {
	return mesh.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
