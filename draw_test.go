package draw

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/graph"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
	"github.com/gogpu/draw/text"
)

func approx(t *testing.T, got, want, tol float32, msg string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
}

func TestDimensionQueryForcesFinalization(t *testing.T) {
	d := New()
	e := d.Ellipse().Radius(50)

	w, ok := d.UntransformedDimensionOf(graph.X, e.Index())
	if !ok {
		t.Fatal("dimension query on a pending primitive must finalize it")
	}
	approx(t, w, 100, 1e-2, "circle width")

	if _, pending := d.pending[e.Index()]; pending {
		t.Fatal("queried primitive still pending")
	}
}

func TestDimensionQueryIdempotent(t *testing.T) {
	d := New()
	e := d.Ellipse().Radius(25)

	d.UntransformedDimensionOf(graph.X, e.Index())
	vertices := d.MeshBuffer().VertexCount()
	indices := d.MeshBuffer().IndexCount()

	d.UntransformedDimensionOf(graph.Y, e.Index())
	d.XDimensionOf(e.Index())
	if d.MeshBuffer().VertexCount() != vertices || d.MeshBuffer().IndexCount() != indices {
		t.Fatal("repeated dimension queries must not re-tessellate")
	}
}

func TestDimensionOfUnknownNode(t *testing.T) {
	d := New()
	if _, ok := d.XDimensionOf(graph.Index(99)); ok {
		t.Fatal("unknown node must not report a dimension")
	}
	if _, ok := d.XDimensionOf(graph.Origin); ok {
		t.Fatal("the origin has no geometry")
	}
}

func TestTransformedDimensionAppliesScale(t *testing.T) {
	d := New()
	r := d.Rect().WH(100, 50).ScaleX(2)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}
	w, ok := d.XDimensionOf(r.Index())
	if !ok {
		t.Fatal("drawn rect has no dimension")
	}
	approx(t, w, 200, 1e-3, "scaled width")

	uw, _ := d.UntransformedDimensionOf(graph.X, r.Index())
	approx(t, uw, 100, 1e-3, "untransformed width ignores scale")
}

func TestRightOfEdgeWeight(t *testing.T) {
	d := New()
	parent := d.Rect().WH(100, 100)
	child := d.Rect().WH(40, 40).RightOf(parent)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	tr, ok := d.Graph().NodeTransform(child.Index())
	if !ok {
		t.Fatal("child missing from graph")
	}
	// parent half + child half + 0 separation.
	approx(t, tr.Displacement.X, 70, 1e-3, "RightOf displacement")
}

func TestDirectionSeparationAndWay(t *testing.T) {
	d := New()
	parent := d.Rect().WH(100, 100)
	below := d.Rect().WH(20, 20).DirectionY(parent, Backwards, 5)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	tr, _ := d.Graph().NodeTransform(below.Index())
	approx(t, tr.Displacement.Y, -65, 1e-3, "Backwards direction with separation")
}

func TestAlignEdgeWeights(t *testing.T) {
	tests := []struct {
		name   string
		align  Align
		margin float32
		want   float32
	}{
		{"start", AlignStart, 0, -30},
		{"start with margin", AlignStart, 5, -25},
		{"middle", AlignMiddle, 0, 0},
		{"middle ignores margin", AlignMiddle, 9, 0},
		{"end", AlignEnd, 0, 30},
		{"end with margin", AlignEnd, 5, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			parent := d.Rect().WH(100, 100)
			child := d.Rect().WH(40, 40).AlignXTo(parent, tt.align, tt.margin)
			if err := d.FinishRemainingDrawings(); err != nil {
				t.Fatal(err)
			}
			tr, _ := d.Graph().NodeTransform(child.Index())
			approx(t, tr.Displacement.X, tt.want, 1e-3, "align displacement")
		})
	}
}

func TestImplicitParentIsPreviousPrimitive(t *testing.T) {
	d := New()
	d.Rect().WH(10, 10).X(10)
	second := d.Rect().WH(10, 10).RelativeX(5)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	tr, _ := d.Graph().NodeTransform(second.Index())
	approx(t, tr.Displacement.X, 15, 1e-3, "relative displacement composes with parent")
}

func TestMutuallyRelativePrimitivesWouldCycle(t *testing.T) {
	d := New()
	a := d.Rect().WH(10, 10)
	b := d.Rect().WH(10, 10).RightOf(a)
	a.RightOf(b)

	err := d.FinishRemainingDrawings()
	var cycleErr *graph.WouldCycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("want WouldCycleError, got %v", err)
	}
}

func TestPolygonDualPassFillThenStroke(t *testing.T) {
	red := mesh.RGB(1, 0, 0)
	blue := mesh.RGB(0, 0, 1)

	d := New()
	p := d.Polygon(
		geom.V2(-10, -10), geom.V2(10, -10), geom.V2(10, 10), geom.V2(-10, 10),
	).Color(red).Stroke(blue).StrokeWeight(2)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp, ok := d.drawn[p.Index()]
	if !ok {
		t.Fatal("polygon not drawn")
	}
	colors := d.MeshBuffer().Colors()
	if dp.Ranges.Vertices.Len() <= 4 {
		t.Fatal("stroke pass contributed no vertices")
	}
	if colors[dp.Ranges.Vertices.Start] != red {
		t.Fatal("first vertices must come from the fill pass")
	}
	if colors[dp.Ranges.Vertices.End-1] != blue {
		t.Fatal("last vertices must come from the stroke pass")
	}
}

func TestPolygonNoFillStrokesOnly(t *testing.T) {
	blue := mesh.RGB(0, 0, 1)
	d := New()
	p := d.Polygon(
		geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10),
	).NoFill().Stroke(blue)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[p.Index()]
	for _, c := range d.MeshBuffer().Colors()[dp.Ranges.Vertices.Start:dp.Ranges.Vertices.End] {
		if c != blue {
			t.Fatal("stroke-only polygon carries a non-stroke color")
		}
	}
}

func TestColoredPolygonKeepsPointColors(t *testing.T) {
	red := mesh.RGB(1, 0, 0)
	green := mesh.RGB(0, 1, 0)

	d := New(WithTheme(Theme{FillDefault: mesh.RGB(0, 0, 0)}))
	p := d.ColoredPolygon([]tess.ColoredPoint{
		{Point: geom.V2(0, 0), Color: red},
		{Point: geom.V2(10, 0), Color: green},
		{Point: geom.V2(10, 10), Color: red},
	})
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[p.Index()]
	colors := d.MeshBuffer().Colors()
	if colors[dp.Ranges.Vertices.Start] != red || colors[dp.Ranges.Vertices.Start+1] != green {
		t.Fatal("per-point colors are authoritative for colored polygons")
	}
}

func TestTexturedPolygonRendersTextured(t *testing.T) {
	d := New()
	p := d.TexturedPolygon(render.TextureHandle(7), []tess.TexturedPoint{
		{Point: geom.V2(0, 0), TexCoord: geom.V2(0, 0)},
		{Point: geom.V2(10, 0), TexCoord: geom.V2(1, 0)},
		{Point: geom.V2(10, 10), TexCoord: geom.V2(1, 1)},
	})
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[p.Index()]
	if dp.Render.VertexMode != render.VertexModeTexture {
		t.Fatal("textured polygon must render in texture mode")
	}
	if dp.Render.Texture != render.TextureHandle(7) {
		t.Fatal("texture handle lost")
	}
}

func TestLineIsStrokeOnly(t *testing.T) {
	d := New()
	l := d.Line(geom.V2(0, 0), geom.V2(100, 0)).Weight(10)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[l.Index()]
	if dp.Ranges.Indices.Len() == 0 || dp.Ranges.Indices.Len()%3 != 0 {
		t.Fatalf("stroke indices must form whole triangles, got %d", dp.Ranges.Indices.Len())
	}
	h, _ := d.UntransformedDimensionOf(graph.Y, l.Index())
	approx(t, h, 10, 1e-3, "stroke thickness")
}

func TestPathFillAndStrokeBuilders(t *testing.T) {
	d := New()
	filled := d.Path().Fill().
		MoveTo(geom.V2(0, 0)).
		LineTo(geom.V2(20, 0)).
		LineTo(geom.V2(20, 20)).
		Close().
		End()
	stroked := d.Path().Stroke().
		MoveTo(geom.V2(0, 0)).
		QuadraticTo(geom.V2(10, 10), geom.V2(20, 0)).
		End().
		Weight(2)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	if d.drawn[filled.Index()].Ranges.Indices.Len() == 0 {
		t.Fatal("filled path produced no triangles")
	}
	if d.drawn[stroked.Index()].Ranges.Indices.Len() == 0 {
		t.Fatal("stroked path produced no triangles")
	}
}

func TestPathRoundedRectStaysInBounds(t *testing.T) {
	d := New()
	p := d.Path().Fill().
		RoundedRect(geom.Vec2{}, geom.V2(100, 60), 10).
		End()
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	w, _ := d.UntransformedDimensionOf(graph.X, p.Index())
	h, _ := d.UntransformedDimensionOf(graph.Y, p.Index())
	approx(t, w, 100, 1e-2, "rounded rect width")
	approx(t, h, 60, 1e-2, "rounded rect height")
}

func TestMeshPrimitivePassthrough(t *testing.T) {
	d := New()
	verts := []mesh.Vertex{
		{Point: geom.V3(0, 0, 0)},
		{Point: geom.V3(1, 0, 0)},
		{Point: geom.V3(0, 1, 0)},
	}
	m := d.Mesh(verts, []uint32{0, 1, 2})
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[m.Index()]
	if dp.Ranges.Vertices.Len() != 3 || dp.Ranges.Indices.Len() != 3 {
		t.Fatalf("unexpected ranges %+v", dp.Ranges)
	}
	if dp.Render.VertexMode != render.VertexModeColor {
		t.Fatal("untextured mesh must render in color mode")
	}
}

func TestTextWithoutFaceContributesNothing(t *testing.T) {
	d := New()
	tx := d.Text("hello")
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}
	dp := d.drawn[tx.Index()]
	if dp.Ranges.Vertices.Len() != 0 {
		t.Fatal("text without a face must contribute no geometry")
	}
	if dp.Render.VertexMode != render.VertexModeTexture {
		t.Fatal("text renders in texture mode")
	}
}

func TestDrawingsFinalizesAndOrders(t *testing.T) {
	d := New()
	r := d.Rect().WH(10, 10).XY(3, 4)
	drawn, err := d.Drawings()
	if err != nil {
		t.Fatal(err)
	}
	if len(drawn) != 1 {
		t.Fatalf("want 1 drawn primitive, got %d", len(drawn))
	}
	if drawn[0].Node != r.Index() {
		t.Fatal("wrong node")
	}
	approx(t, drawn[0].Transform.Displacement.X, 3, 1e-6, "x displacement")
	approx(t, drawn[0].Transform.Displacement.Y, 4, 1e-6, "y displacement")
	if len(d.pending) != 0 {
		t.Fatal("Drawings must drain pending primitives")
	}
}

func TestBoundingBox(t *testing.T) {
	d := New()
	d.Rect().WH(100, 50).XY(0, 0)
	box, ok := d.BoundingBox()
	if !ok {
		t.Fatal("session with geometry must have a bounding box")
	}
	approx(t, box.Min.X, -50, 1e-3, "min x")
	approx(t, box.Max.X, 50, 1e-3, "max x")
	approx(t, box.Min.Y, -25, 1e-3, "min y")
	approx(t, box.Max.Y, 25, 1e-3, "max y")

	empty := New()
	if _, ok := empty.BoundingBox(); ok {
		t.Fatal("empty session has no bounding box")
	}
}

func TestResetClearsSession(t *testing.T) {
	d := New()
	d.Rect()
	d.Polygon(geom.V2(0, 0), geom.V2(1, 0), geom.V2(1, 1))
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	d.Reset()
	if d.MeshBuffer().VertexCount() != 0 || d.MeshBuffer().IndexCount() != 0 {
		t.Fatal("mesh not cleared")
	}
	if d.Graph().NodeCount() != 1 {
		t.Fatal("graph must hold only the origin after reset")
	}
	drawn, err := d.Drawings()
	if err != nil {
		t.Fatal(err)
	}
	if len(drawn) != 0 {
		t.Fatal("drawn primitives survived reset")
	}
}

func TestThemeFallbackColorsByRole(t *testing.T) {
	pink := mesh.RGB(1, 0, 1)
	theme := DefaultTheme()
	theme.FillColors[tess.RoleRect] = pink

	d := New(WithTheme(theme))
	r := d.Rect().WH(10, 10)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[r.Index()]
	if d.MeshBuffer().Colors()[dp.Ranges.Vertices.Start] != pink {
		t.Fatal("rect must take its fill color from the theme role table")
	}
}

func TestTextEmitsGlyphQuads(t *testing.T) {
	font, err := text.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := text.NewFace(font, text.WithSize(16))

	d := New(WithFace(face))
	tx := d.Text("Hi").Texture(render.TextureHandle(3))
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}

	dp := d.drawn[tx.Index()]
	// Two glyphs, four vertices and six indices each.
	if dp.Ranges.Vertices.Len() != 8 {
		t.Fatalf("want 8 glyph vertices, got %d", dp.Ranges.Vertices.Len())
	}
	if dp.Ranges.Indices.Len() != 12 {
		t.Fatalf("want 12 glyph indices, got %d", dp.Ranges.Indices.Len())
	}
	if dp.Render.Texture != render.TextureHandle(3) || dp.Render.VertexMode != render.VertexModeTexture {
		t.Fatal("text must carry its atlas texture in texture mode")
	}
}

func TestTextWrapsAtWidth(t *testing.T) {
	font, err := text.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face := text.NewFace(font, text.WithSize(16))

	d := New(WithFace(face))
	wide := d.Text("aaaa bbbb")
	wideW, _ := d.UntransformedDimensionOf(graph.X, wide.Index())

	d2 := New(WithFace(face))
	wrapped := d2.Text("aaaa bbbb").MaxWidth(wideW / 2)
	wrappedW, _ := d2.UntransformedDimensionOf(graph.X, wrapped.Index())
	wrappedH, _ := d2.UntransformedDimensionOf(graph.Y, wrapped.Index())

	if wrappedW >= wideW {
		t.Fatal("wrapping must narrow the block")
	}
	unwrappedH, _ := d.UntransformedDimensionOf(graph.Y, wide.Index())
	if wrappedH <= unwrappedH {
		t.Fatal("wrapping must add a second line")
	}
}

func TestRotationEdge(t *testing.T) {
	d := New()
	r := d.Rect().WH(10, 10).RotateZ(math32.Pi / 2)
	if err := d.FinishRemainingDrawings(); err != nil {
		t.Fatal(err)
	}
	tr, _ := d.Graph().NodeTransform(r.Index())
	approx(t, tr.Rotation.Z, math32.Pi/2, 1e-6, "z rotation")
}
