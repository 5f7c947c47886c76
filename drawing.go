package draw

import "github.com/gogpu/draw/graph"

// Target is anything a primitive can be positioned relative to. Every
// drawing handle is a Target, as is a bare graph index via NodeTarget.
type Target interface {
	Index() graph.Index
}

// NodeTarget adapts a raw graph index into a positioning Target.
type NodeTarget graph.Index

// Index returns the wrapped graph index.
func (n NodeTarget) Index() graph.Index { return graph.Index(n) }

// Drawing is the spatial half of every primitive handle. Its methods
// mutate the primitive's pending properties and return the handle for
// chaining; once the primitive has been finalized they have no effect.
// Chain shape-specific methods first, spatial methods last.
type Drawing struct {
	draw  *Draw
	index graph.Index
}

// Index returns the handle's graph node.
func (dr Drawing) Index() graph.Index { return dr.index }

// primitive returns the pending primitive behind the handle, or nil once
// it has been finalized.
func (dr Drawing) primitive() Primitive {
	return dr.draw.pending[dr.index]
}

func (dr Drawing) properties() *Properties {
	p := dr.primitive()
	if p == nil {
		return nil
	}
	return p.props()
}

// X places the primitive at an absolute x coordinate.
func (dr Drawing) X(x float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAbsolute(graph.X, x)
	}
	return dr
}

// Y places the primitive at an absolute y coordinate.
func (dr Drawing) Y(y float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAbsolute(graph.Y, y)
	}
	return dr
}

// Z places the primitive at an absolute z coordinate.
func (dr Drawing) Z(z float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAbsolute(graph.Z, z)
	}
	return dr
}

// XY places the primitive at absolute x and y coordinates.
func (dr Drawing) XY(x, y float32) Drawing {
	return dr.X(x).Y(y)
}

// XYZ places the primitive at absolute coordinates on all three axes.
func (dr Drawing) XYZ(x, y, z float32) Drawing {
	return dr.X(x).Y(y).Z(z)
}

// RelativeX displaces the primitive along x from its implicit parent,
// the previously drawn primitive.
func (dr Drawing) RelativeX(x float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.X, x, 0, false)
	}
	return dr
}

// RelativeY displaces the primitive along y from its implicit parent.
func (dr Drawing) RelativeY(y float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.Y, y, 0, false)
	}
	return dr
}

// RelativeZ displaces the primitive along z from its implicit parent.
func (dr Drawing) RelativeZ(z float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.Z, z, 0, false)
	}
	return dr
}

// RelativeXTo displaces the primitive along x from an explicit parent.
func (dr Drawing) RelativeXTo(parent Target, x float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.X, x, parent.Index(), true)
	}
	return dr
}

// RelativeYTo displaces the primitive along y from an explicit parent.
func (dr Drawing) RelativeYTo(parent Target, y float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.Y, y, parent.Index(), true)
	}
	return dr
}

// RelativeZTo displaces the primitive along z from an explicit parent.
func (dr Drawing) RelativeZTo(parent Target, z float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setScalar(graph.Z, z, parent.Index(), true)
	}
	return dr
}

// AlignX anchors the primitive against a side of its implicit parent
// along x, inset by margin. Resolving the anchor finalizes both
// primitives.
func (dr Drawing) AlignX(align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.X, align, margin, 0, false)
	}
	return dr
}

// AlignY anchors the primitive against a side of its implicit parent
// along y, inset by margin.
func (dr Drawing) AlignY(align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.Y, align, margin, 0, false)
	}
	return dr
}

// AlignZ anchors the primitive against a side of its implicit parent
// along z, inset by margin.
func (dr Drawing) AlignZ(align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.Z, align, margin, 0, false)
	}
	return dr
}

// AlignXTo anchors the primitive against a side of an explicit parent
// along x, inset by margin.
func (dr Drawing) AlignXTo(parent Target, align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.X, align, margin, parent.Index(), true)
	}
	return dr
}

// AlignYTo anchors the primitive against a side of an explicit parent
// along y, inset by margin.
func (dr Drawing) AlignYTo(parent Target, align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.Y, align, margin, parent.Index(), true)
	}
	return dr
}

// AlignZTo anchors the primitive against a side of an explicit parent
// along z, inset by margin.
func (dr Drawing) AlignZTo(parent Target, align Align, margin float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setAlign(graph.Z, align, margin, parent.Index(), true)
	}
	return dr
}

// AlignLeft anchors against the left edge of the implicit parent.
func (dr Drawing) AlignLeft() Drawing { return dr.AlignX(AlignStart, 0) }

// AlignRight anchors against the right edge of the implicit parent.
func (dr Drawing) AlignRight() Drawing { return dr.AlignX(AlignEnd, 0) }

// AlignBottom anchors against the bottom edge of the implicit parent.
func (dr Drawing) AlignBottom() Drawing { return dr.AlignY(AlignStart, 0) }

// AlignTop anchors against the top edge of the implicit parent.
func (dr Drawing) AlignTop() Drawing { return dr.AlignY(AlignEnd, 0) }

// AlignMiddleX centers the primitive on its implicit parent along x.
func (dr Drawing) AlignMiddleX() Drawing { return dr.AlignX(AlignMiddle, 0) }

// AlignMiddleY centers the primitive on its implicit parent along y.
func (dr Drawing) AlignMiddleY() Drawing { return dr.AlignY(AlignMiddle, 0) }

// DirectionX places the primitive entirely past a side of parent along
// x, separated by amount. Resolving it finalizes both primitives.
func (dr Drawing) DirectionX(parent Target, way Way, amount float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setDirection(graph.X, way, amount, parent.Index(), true)
	}
	return dr
}

// DirectionY places the primitive entirely past a side of parent along
// y, separated by amount.
func (dr Drawing) DirectionY(parent Target, way Way, amount float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setDirection(graph.Y, way, amount, parent.Index(), true)
	}
	return dr
}

// DirectionZ places the primitive entirely past a side of parent along
// z, separated by amount.
func (dr Drawing) DirectionZ(parent Target, way Way, amount float32) Drawing {
	if p := dr.properties(); p != nil {
		p.setDirection(graph.Z, way, amount, parent.Index(), true)
	}
	return dr
}

// RightOf places the primitive immediately to the right of parent.
func (dr Drawing) RightOf(parent Target) Drawing {
	return dr.DirectionX(parent, Forwards, 0)
}

// LeftOf places the primitive immediately to the left of parent.
func (dr Drawing) LeftOf(parent Target) Drawing {
	return dr.DirectionX(parent, Backwards, 0)
}

// Above places the primitive immediately above parent.
func (dr Drawing) Above(parent Target) Drawing {
	return dr.DirectionY(parent, Forwards, 0)
}

// Below places the primitive immediately below parent.
func (dr Drawing) Below(parent Target) Drawing {
	return dr.DirectionY(parent, Backwards, 0)
}

// InFrontOf places the primitive immediately in front of parent along z.
func (dr Drawing) InFrontOf(parent Target) Drawing {
	return dr.DirectionZ(parent, Forwards, 0)
}

// Behind places the primitive immediately behind parent along z.
func (dr Drawing) Behind(parent Target) Drawing {
	return dr.DirectionZ(parent, Backwards, 0)
}

// RotateX rotates the primitive about the x axis, in radians.
func (dr Drawing) RotateX(radians float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Orientation[graph.X] = scalarProp{value: radians, set: true}
	}
	return dr
}

// RotateY rotates the primitive about the y axis, in radians.
func (dr Drawing) RotateY(radians float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Orientation[graph.Y] = scalarProp{value: radians, set: true}
	}
	return dr
}

// RotateZ rotates the primitive about the z axis, in radians.
func (dr Drawing) RotateZ(radians float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Orientation[graph.Z] = scalarProp{value: radians, set: true}
	}
	return dr
}

// Rotate is RotateZ, the in-plane rotation of 2D drawing.
func (dr Drawing) Rotate(radians float32) Drawing { return dr.RotateZ(radians) }

// ScaleX scales the primitive along the x axis.
func (dr Drawing) ScaleX(s float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Scale[graph.X] = scalarProp{value: s, set: true}
	}
	return dr
}

// ScaleY scales the primitive along the y axis.
func (dr Drawing) ScaleY(s float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Scale[graph.Y] = scalarProp{value: s, set: true}
	}
	return dr
}

// ScaleZ scales the primitive along the z axis.
func (dr Drawing) ScaleZ(s float32) Drawing {
	if p := dr.properties(); p != nil {
		p.Scale[graph.Z] = scalarProp{value: s, set: true}
	}
	return dr
}

// Scale scales the primitive uniformly on all three axes.
func (dr Drawing) Scale(s float32) Drawing {
	return dr.ScaleX(s).ScaleY(s).ScaleZ(s)
}
