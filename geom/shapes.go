package geom

import "github.com/chewxy/math32"

// DefaultEllipseResolution is the number of points used to approximate an
// ellipse outline when the caller does not request a specific resolution.
const DefaultEllipseResolution = 50

// EllipsePoints returns resolution points on the outline of an ellipse
// centered at center with the given radii, rotated by rotation radians.
// A resolution below 3 is clamped to 3.
func EllipsePoints(center, radius Vec2, rotation float32, resolution int) []Vec2 {
	if resolution < 3 {
		resolution = 3
	}
	points := make([]Vec2, resolution)
	step := 2 * math32.Pi / float32(resolution)
	for i := range points {
		angle := rotation + float32(i)*step
		sin, cos := math32.Sincos(angle)
		points[i] = Vec2{
			X: center.X + radius.X*cos,
			Y: center.Y + radius.Y*sin,
		}
	}
	return points
}

// ArcPoints returns points along a circular arc from angle a1 to a2.
// The segment count is proportional to the swept angle relative to the
// full-circle resolution, with a minimum of min segments.
func ArcPoints(center Vec2, radius, a1, a2 float32, resolution, min int) []Vec2 {
	swept := math32.Abs(a2 - a1)
	segments := int(math32.Ceil(swept / (2 * math32.Pi) * float32(resolution)))
	if segments < min {
		segments = min
	}
	points := make([]Vec2, segments+1)
	step := (a2 - a1) / float32(segments)
	for i := range points {
		angle := a1 + float32(i)*step
		sin, cos := math32.Sincos(angle)
		points[i] = Vec2{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		}
	}
	return points
}

// RectCorners returns the four corners of an axis-aligned rectangle
// centered at center, in counter-clockwise order starting bottom-left.
func RectCorners(center, dimensions Vec2) [4]Vec2 {
	half := dimensions.Mul(0.5)
	return [4]Vec2{
		{X: center.X - half.X, Y: center.Y - half.Y},
		{X: center.X + half.X, Y: center.Y - half.Y},
		{X: center.X + half.X, Y: center.Y + half.Y},
		{X: center.X - half.X, Y: center.Y + half.Y},
	}
}

// QuadTriangles splits a quad given as four corners into the two
// triangles (a, b, c) and (a, c, d), returned as six vertices.
func QuadTriangles(corners [4]Vec2) [6]Vec2 {
	return [6]Vec2{
		corners[0], corners[1], corners[2],
		corners[0], corners[2], corners[3],
	}
}

// PolygonCentroid returns the arithmetic mean of the given points.
// Returns the zero vector for an empty slice.
func PolygonCentroid(points []Vec2) Vec2 {
	if len(points) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float32(len(points)))
}
