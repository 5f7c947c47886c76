package polyline

import "github.com/gogpu/draw/geom"

// PartKind tags which piece of the polyline a Part is.
type PartKind uint8

// Part kinds, in emission order: StartCap, then alternating Line and
// Join, then EndCap.
const (
	PartStartCap PartKind = iota
	PartLine
	PartJoin
	PartEndCap
)

// String returns the kind name.
func (k PartKind) String() string {
	switch k {
	case PartStartCap:
		return "StartCap"
	case PartLine:
		return "Line"
	case PartJoin:
		return "Join"
	case PartEndCap:
		return "EndCap"
	default:
		return "unknown"
	}
}

// Part is one piece of a thick polyline, already triangulated.
type Part struct {
	Kind PartKind
	Tris []Tri
}

// Parts walks a point sequence and yields the pieces of its thick
// rendition in order: the start cap, then each segment quad with a join
// between consecutive segments, then the end cap. Construct with
// NewParts; call Next until ok is false.
type Parts struct {
	points []geom.Vec2
	half   float32
	cap    Capper
	join   Joiner

	seg  int // next segment to emit
	step int // 0 start cap, 1 line, 2 join, 3 end cap, 4 done
}

// NewParts prepares a traversal over the parts of the polyline through
// points with the given full thickness. It panics if fewer than two
// points are given; a thick "line" needs a segment to thicken.
func NewParts(points []geom.Vec2, thickness float32, cap Capper, join Joiner) *Parts {
	if len(points) < 2 {
		panic("polyline: at least two points required")
	}
	return &Parts{
		points: points,
		half:   thickness / 2,
		cap:    cap,
		join:   join,
	}
}

// segmentCount returns the number of segments in the polyline.
func (p *Parts) segmentCount() int {
	return len(p.points) - 1
}

// segmentDir returns the unit direction of segment i. A zero-length
// segment borrows the direction of the nearest earlier segment that has
// one; the fallback covers a fully degenerate prefix.
func (p *Parts) segmentDir(i int, fallback geom.Vec2) geom.Vec2 {
	for ; i >= 0; i-- {
		d := p.points[i+1].Sub(p.points[i])
		if d.LengthSq() != 0 {
			return d.Normalize()
		}
	}
	return fallback
}

// corners returns the four side-offset corners of segment i: start
// left, start right, end left, end right. Left is the side of
// Perp(dir).
func (p *Parts) corners(i int) (sl, sr, el, er geom.Vec2) {
	dir := p.segmentDir(i, geom.V2(1, 0))
	n := dir.Perp().Mul(p.half)
	a, b := p.points[i], p.points[i+1]
	return a.Add(n), a.Sub(n), b.Add(n), b.Sub(n)
}

// Next returns the next part of the polyline. ok=false means the
// traversal is exhausted.
func (p *Parts) Next() (Part, bool) {
	switch p.step {
	case 0:
		p.step = 1
		dir := p.segmentDir(0, geom.V2(1, 0))
		sl, sr, _, _ := p.corners(0)
		return Part{
			Kind: PartStartCap,
			Tris: p.cap.CapTriangles(p.points[0], sr, sl, dir.Neg()),
		}, true

	case 1:
		i := p.seg
		sl, sr, el, er := p.corners(i)
		if i == p.segmentCount()-1 {
			p.step = 3
		} else {
			p.step = 2
		}
		return Part{
			Kind: PartLine,
			Tris: []Tri{
				{sl, el, er},
				{sl, er, sr},
			},
		}, true

	case 2:
		i := p.seg
		p.seg++
		p.step = 1
		return Part{Kind: PartJoin, Tris: p.joinTris(i)}, true

	case 3:
		p.step = 4
		last := p.segmentCount() - 1
		dir := p.segmentDir(last, geom.V2(1, 0))
		_, _, el, er := p.corners(last)
		return Part{
			Kind: PartEndCap,
			Tris: p.cap.CapTriangles(p.points[len(p.points)-1], el, er, dir),
		}, true

	default:
		return Part{}, false
	}
}

// joinTris builds the join wedge between segment i and segment i+1.
func (p *Parts) joinTris(i int) []Tri {
	dirIn := p.segmentDir(i, geom.V2(1, 0))
	dirOut := p.segmentDir(i+1, dirIn)

	_, _, el, er := p.corners(i)

	cross := dirIn.Cross(dirOut)
	if cross == 0 {
		// Collinear segments need no join.
		return nil
	}
	turn := TurnLeft
	if cross < 0 {
		turn = TurnRight
	}

	pivot := p.points[i+1]
	nIn := dirIn.Perp().Mul(p.half)
	nOut := dirOut.Perp().Mul(p.half)
	il := lineIntersect(pivot.Add(nIn), dirIn, pivot.Add(nOut), dirOut)
	ir := lineIntersect(pivot.Sub(nIn), dirIn, pivot.Sub(nOut), dirOut)

	return p.join.JoinTriangles(el, er, il, ir, turn)
}

// lineIntersect returns the intersection of the line through p1 with
// direction d1 and the line through p2 with direction d2. The caller
// guarantees the lines are not parallel.
func lineIntersect(p1, d1, p2, d2 geom.Vec2) geom.Vec2 {
	denom := d1.Cross(d2)
	t := p2.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t))
}

// Triangles flattens every part of the polyline through points into a
// single triangle list.
func Triangles(points []geom.Vec2, thickness float32, cap Capper, join Joiner) []Tri {
	parts := NewParts(points, thickness, cap, join)
	var tris []Tri
	for {
		part, ok := parts.Next()
		if !ok {
			return tris
		}
		tris = append(tris, part.Tris...)
	}
}

// Vertices flattens the polyline's triangles into a vertex list, three
// vertices per triangle.
func Vertices(points []geom.Vec2, thickness float32, cap Capper, join Joiner) []geom.Vec2 {
	tris := Triangles(points, thickness, cap, join)
	out := make([]geom.Vec2, 0, len(tris)*3)
	for _, t := range tris {
		out = append(out, t[0], t[1], t[2])
	}
	return out
}
