// Package geom provides the float32 vector and bounding-volume primitives
// shared by the drawing, graph, and tessellation packages.
//
// Positions and displacements share the same vector types; the semantic
// distinction lives in the calling code. All angles are radians.
package geom

import "github.com/chewxy/math32"

// Vec2 represents a 2D point or displacement.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vec2) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians, in (-Pi, Pi].
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// Lerp performs linear interpolation between two vectors.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Rotate returns the vector rotated by the given angle in radians.
func (v Vec2) Rotate(angle float32) Vec2 {
	sin, cos := math32.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float32 {
	return v.Sub(w).Length()
}

// Extend lifts the vector into 3D with the given z component.
func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Vec3 represents a 3D point or displacement.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MulVec returns the component-wise product of two vectors.
func (v Vec3) MulVec(w Vec3) Vec3 {
	return Vec3{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// XY projects the vector onto the XY plane.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// RotateEuler rotates the vector by the given Euler angles, applying the
// X axis rotation first, then Y, then Z.
func (v Vec3) RotateEuler(e Euler) Vec3 {
	out := v
	if e.X != 0 {
		sin, cos := math32.Sincos(e.X)
		out = Vec3{
			X: out.X,
			Y: out.Y*cos - out.Z*sin,
			Z: out.Y*sin + out.Z*cos,
		}
	}
	if e.Y != 0 {
		sin, cos := math32.Sincos(e.Y)
		out = Vec3{
			X: out.X*cos + out.Z*sin,
			Y: out.Y,
			Z: -out.X*sin + out.Z*cos,
		}
	}
	if e.Z != 0 {
		sin, cos := math32.Sincos(e.Z)
		out = Vec3{
			X: out.X*cos - out.Y*sin,
			Y: out.X*sin + out.Y*cos,
			Z: out.Z,
		}
	}
	return out
}

// Euler holds rotation angles in radians, one per axis.
type Euler struct {
	X, Y, Z float32
}

// Add returns the per-axis sum of two Euler rotations.
func (e Euler) Add(f Euler) Euler {
	return Euler{X: e.X + f.X, Y: e.Y + f.Y, Z: e.Z + f.Z}
}
