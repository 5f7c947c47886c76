package polyline

import (
	"math"
	"testing"

	"github.com/gogpu/draw/geom"
)

func almostEqual(a, b geom.Vec2, tol float32) bool {
	return geom.V2(a.X-b.X, a.Y-b.Y).Length() <= tol
}

func TestPartsOrder(t *testing.T) {
	pts := []geom.Vec2{
		geom.V2(0, 0),
		geom.V2(10, 0),
		geom.V2(10, 10),
	}
	parts := NewParts(pts, 2, ButtCap{}, MiterJoin{})

	var kinds []PartKind
	for {
		part, ok := parts.Next()
		if !ok {
			break
		}
		kinds = append(kinds, part.Kind)
	}

	want := []PartKind{PartStartCap, PartLine, PartJoin, PartLine, PartEndCap}
	if len(kinds) != len(want) {
		t.Fatalf("got %v parts, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("part %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestPartsPanicsOnShortInput(t *testing.T) {
	for _, pts := range [][]geom.Vec2{nil, {geom.V2(1, 2)}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for %d points", len(pts))
				}
			}()
			NewParts(pts, 1, ButtCap{}, MiterJoin{})
		}()
	}
}

func TestButtCapEmpty(t *testing.T) {
	tris := ButtCap{}.CapTriangles(geom.V2(0, 0), geom.V2(0, 1), geom.V2(0, -1), geom.V2(-1, 0))
	if len(tris) != 0 {
		t.Fatalf("butt cap produced %d triangles, want 0", len(tris))
	}
}

func TestSquareCapExtendsHalfThickness(t *testing.T) {
	// Line pointing right, end at origin, thickness 2 (half 1).
	a := geom.V2(0, 1)
	b := geom.V2(0, -1)
	tris := SquareCap{}.CapTriangles(geom.V2(0, 0), a, b, geom.V2(1, 0))
	if len(tris) != 2 {
		t.Fatalf("square cap produced %d triangles, want 2", len(tris))
	}

	// Every vertex stays within x in [0, 1].
	for _, tri := range tris {
		for _, v := range tri {
			if v.X < -1e-6 || v.X > 1+1e-6 {
				t.Errorf("vertex %v outside extension bounds", v)
			}
		}
	}
}

func TestRoundCapSegmentsScaleWithResolution(t *testing.T) {
	a := geom.V2(0, 1)
	b := geom.V2(0, -1)
	dir := geom.V2(1, 0)
	pivot := geom.V2(0, 0)

	lo := RoundCap{Resolution: 8}.CapTriangles(pivot, a, b, dir)
	hi := RoundCap{Resolution: 64}.CapTriangles(pivot, a, b, dir)
	if len(hi) <= len(lo) {
		t.Fatalf("higher resolution should yield more triangles: %d <= %d", len(hi), len(lo))
	}

	// A half circle of radius 1 bulging along +x: every vertex stays
	// within distance 1 of the pivot and on the outward side.
	for _, tri := range hi {
		for _, v := range tri {
			if d := v.Sub(pivot).Length(); d > 1+1e-4 {
				t.Errorf("vertex %v outside cap radius (%v)", v, d)
			}
			if v.X < -1e-4 {
				t.Errorf("vertex %v bulges inward", v)
			}
		}
	}
}

func TestRoundSegmentsProportionalToAngle(t *testing.T) {
	// A quarter turn should use roughly a quarter of the circle
	// resolution, never fewer than the floor.
	quarter := geom.ArcPoints(geom.V2(0, 0), 1, 0, math.Pi/2, 40, MinArcSegments)
	if got, want := len(quarter)-1, 10; got != want {
		t.Errorf("quarter arc segments: got %d, want %d", got, want)
	}
	tiny := geom.ArcPoints(geom.V2(0, 0), 1, 0, 0.01, 40, MinArcSegments)
	if got := len(tiny) - 1; got != MinArcSegments {
		t.Errorf("tiny arc segments: got %d, want floor %d", got, MinArcSegments)
	}
}

func TestMiterJoinQuad(t *testing.T) {
	a := geom.V2(10, 1)
	b := geom.V2(10, -1)
	il := geom.V2(9, 1)
	ir := geom.V2(11, -1)
	tris := MiterJoin{}.JoinTriangles(a, b, il, ir, TurnLeft)
	if len(tris) != 2 {
		t.Fatalf("miter join produced %d triangles, want 2", len(tris))
	}
}

func TestBevelJoinUsesInsidePivot(t *testing.T) {
	a := geom.V2(1, 0)
	b := geom.V2(-1, 0)
	il := geom.V2(0, 1)
	ir := geom.V2(0, -1)

	left := BevelJoin{}.JoinTriangles(a, b, il, ir, TurnLeft)
	if len(left) != 1 || left[0][2] != il {
		t.Errorf("left turn should pivot on il, got %v", left)
	}
	right := BevelJoin{}.JoinTriangles(a, b, il, ir, TurnRight)
	if len(right) != 1 || right[0][2] != ir {
		t.Errorf("right turn should pivot on ir, got %v", right)
	}
}

func TestCollinearSegmentsNeedNoJoin(t *testing.T) {
	pts := []geom.Vec2{
		geom.V2(0, 0),
		geom.V2(5, 0),
		geom.V2(10, 0),
	}
	parts := NewParts(pts, 2, ButtCap{}, MiterJoin{})
	for {
		part, ok := parts.Next()
		if !ok {
			break
		}
		if part.Kind == PartJoin && len(part.Tris) != 0 {
			t.Fatalf("collinear join produced %d triangles, want 0", len(part.Tris))
		}
	}
}

func TestZeroLengthSegmentBorrowsDirection(t *testing.T) {
	// The last point repeats, so the final segment has no direction of
	// its own. It must inherit the vertical direction of the segment
	// before it, keeping the quad widened along x only.
	pts := []geom.Vec2{
		geom.V2(0, 0),
		geom.V2(0, 10),
		geom.V2(0, 10),
	}
	tris := Triangles(pts, 2, ButtCap{}, MiterJoin{})
	for _, tri := range tris {
		for _, v := range tri {
			if v.Y < -1e-5 || v.Y > 10+1e-5 {
				t.Errorf("vertex %v extends beyond the line ends", v)
			}
		}
	}
	for _, w := range []geom.Vec2{geom.V2(-1, 10), geom.V2(1, 10)} {
		found := false
		for _, tri := range tris {
			for _, v := range tri {
				if almostEqual(v, w, 1e-5) {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("corner %v missing from the degenerate segment", w)
		}
	}
}

func TestTrianglesCoverStraightLine(t *testing.T) {
	pts := []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0)}
	tris := Triangles(pts, 2, ButtCap{}, MiterJoin{})
	if len(tris) != 2 {
		t.Fatalf("straight line: got %d triangles, want 2", len(tris))
	}
	// Corners of the quad.
	want := []geom.Vec2{
		geom.V2(0, 1), geom.V2(0, -1),
		geom.V2(10, 1), geom.V2(10, -1),
	}
	for _, w := range want {
		found := false
		for _, tri := range tris {
			for _, v := range tri {
				if almostEqual(v, w, 1e-5) {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("corner %v missing from quad", w)
		}
	}
}

func TestVerticesTripleTriangleCount(t *testing.T) {
	pts := []geom.Vec2{geom.V2(0, 0), geom.V2(10, 0), geom.V2(10, 10)}
	tris := Triangles(pts, 2, RoundCap{}, RoundJoin{})
	verts := Vertices(pts, 2, RoundCap{}, RoundJoin{})
	if len(verts) != len(tris)*3 {
		t.Fatalf("got %d vertices for %d triangles", len(verts), len(tris))
	}
}

func TestDynamicDispatch(t *testing.T) {
	pivot := geom.V2(0, 0)
	a := geom.V2(0, 1)
	b := geom.V2(0, -1)
	dir := geom.V2(1, 0)

	if n := len(DynamicCap{Style: CapButt}.CapTriangles(pivot, a, b, dir)); n != 0 {
		t.Errorf("dynamic butt: %d triangles, want 0", n)
	}
	if n := len(DynamicCap{Style: CapSquare}.CapTriangles(pivot, a, b, dir)); n != 2 {
		t.Errorf("dynamic square: %d triangles, want 2", n)
	}
	if n := len(DynamicCap{Style: CapRound}.CapTriangles(pivot, a, b, dir)); n < MinArcSegments {
		t.Errorf("dynamic round: %d triangles, want at least %d", n, MinArcSegments)
	}

	il := geom.V2(0.5, 0.5)
	ir := geom.V2(-0.5, -0.5)
	if n := len(DynamicJoin{Style: JoinBevel}.JoinTriangles(a, b, il, ir, TurnLeft)); n != 1 {
		t.Errorf("dynamic bevel: %d triangles, want 1", n)
	}
	if n := len(DynamicJoin{Style: JoinMiter}.JoinTriangles(a, b, il, ir, TurnLeft)); n != 2 {
		t.Errorf("dynamic miter: %d triangles, want 2", n)
	}
}
