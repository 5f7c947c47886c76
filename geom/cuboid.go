package geom

// Cuboid is an axis-aligned bounding volume described by its minimum and
// maximum corners.
type Cuboid struct {
	Min, Max Vec3
}

// CuboidFromPoint returns the degenerate cuboid containing only p.
func CuboidFromPoint(p Vec3) Cuboid {
	return Cuboid{Min: p, Max: p}
}

// Extend grows the cuboid to contain p.
func (c Cuboid) Extend(p Vec3) Cuboid {
	if p.X < c.Min.X {
		c.Min.X = p.X
	}
	if p.Y < c.Min.Y {
		c.Min.Y = p.Y
	}
	if p.Z < c.Min.Z {
		c.Min.Z = p.Z
	}
	if p.X > c.Max.X {
		c.Max.X = p.X
	}
	if p.Y > c.Max.Y {
		c.Max.Y = p.Y
	}
	if p.Z > c.Max.Z {
		c.Max.Z = p.Z
	}
	return c
}

// Union returns the smallest cuboid containing both c and d.
func (c Cuboid) Union(d Cuboid) Cuboid {
	return c.Extend(d.Min).Extend(d.Max)
}

// Contains reports whether p lies inside the cuboid (inclusive).
func (c Cuboid) Contains(p Vec3) bool {
	return p.X >= c.Min.X && p.X <= c.Max.X &&
		p.Y >= c.Min.Y && p.Y <= c.Max.Y &&
		p.Z >= c.Min.Z && p.Z <= c.Max.Z
}

// Dimensions returns the extent of the cuboid along each axis.
func (c Cuboid) Dimensions() Vec3 {
	return c.Max.Sub(c.Min)
}

// Center returns the midpoint of the cuboid.
func (c Cuboid) Center() Vec3 {
	return c.Min.Add(c.Max).Mul(0.5)
}

// BoundingCuboid folds the given points into their bounding cuboid.
// Returns ok=false when points is empty.
func BoundingCuboid(points []Vec3) (Cuboid, bool) {
	if len(points) == 0 {
		return Cuboid{}, false
	}
	c := CuboidFromPoint(points[0])
	for _, p := range points[1:] {
		c = c.Extend(p)
	}
	return c, true
}
