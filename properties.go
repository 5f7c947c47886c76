package draw

import "github.com/gogpu/draw/graph"

// Align anchors a primitive against one side of its positioning parent.
type Align uint8

// Alignment anchors along an axis. Start is the negative side (left,
// bottom, back), End the positive side.
const (
	AlignStart Align = iota
	AlignMiddle
	AlignEnd
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignMiddle:
		return "Middle"
	case AlignEnd:
		return "End"
	default:
		return "unknown"
	}
}

// Way is a direction along an axis.
type Way uint8

// Directions. Forwards is the positive side of the axis.
const (
	Forwards Way = iota
	Backwards
)

// String returns the direction name.
func (w Way) String() string {
	switch w {
	case Forwards:
		return "Forwards"
	case Backwards:
		return "Backwards"
	default:
		return "unknown"
	}
}

// PositionKind discriminates how a primitive's position along one axis
// is specified.
type PositionKind uint8

// Position kinds.
const (
	// PositionAbsolute places the primitive at a literal coordinate,
	// measured from the graph origin.
	PositionAbsolute PositionKind = iota
	// PositionScalar displaces the primitive by a literal amount from
	// its positioning parent.
	PositionScalar
	// PositionAlign anchors the primitive against a side of its parent,
	// inset by a margin. Resolving it needs both dimensions.
	PositionAlign
	// PositionDirection places the primitive entirely past a side of its
	// parent, separated by an amount. Resolving it needs both dimensions.
	PositionDirection
)

// Position is one axis of a primitive's pending spatial specification.
// It resolves into a single graph position edge at finalization.
type Position struct {
	Kind PositionKind
	// Value is the absolute coordinate, relative displacement, align
	// margin, or direction separation, depending on Kind.
	Value float32
	Align Align
	Way   Way

	// Parent overrides the implicit positioning parent when HasParent is
	// set.
	Parent    graph.Index
	HasParent bool

	// Set marks the axis as specified; unset axes keep the zero-weight
	// origin edge the node was allocated with.
	Set bool
}

// scalarProp is a specified-or-not float, used for orientation and scale
// axes where zero is a meaningful value.
type scalarProp struct {
	value float32
	set   bool
}

// Properties is the spatial state every pending primitive accumulates
// through its builder chain: one position per axis, one orientation
// angle per axis, one scale factor per axis.
type Properties struct {
	Position    [3]Position
	Orientation [3]scalarProp
	Scale       [3]scalarProp

	// relativeTo is the implicit positioning parent, captured when the
	// primitive is allocated so that finalization order cannot change
	// which node a relative position refers to.
	relativeTo graph.Index
}

// parentFor resolves the positioning parent for one axis: the explicit
// parent if one was given, the implicit one otherwise.
func (p *Properties) parentFor(axis graph.Axis) graph.Index {
	pos := p.Position[axis]
	if pos.HasParent {
		return pos.Parent
	}
	return p.relativeTo
}

func (p *Properties) setAbsolute(axis graph.Axis, v float32) {
	p.Position[axis] = Position{Kind: PositionAbsolute, Value: v, Set: true}
}

func (p *Properties) setScalar(axis graph.Axis, v float32, parent graph.Index, hasParent bool) {
	p.Position[axis] = Position{
		Kind: PositionScalar, Value: v,
		Parent: parent, HasParent: hasParent, Set: true,
	}
}

func (p *Properties) setAlign(axis graph.Axis, align Align, margin float32, parent graph.Index, hasParent bool) {
	p.Position[axis] = Position{
		Kind: PositionAlign, Align: align, Value: margin,
		Parent: parent, HasParent: hasParent, Set: true,
	}
}

func (p *Properties) setDirection(axis graph.Axis, way Way, amount float32, parent graph.Index, hasParent bool) {
	p.Position[axis] = Position{
		Kind: PositionDirection, Way: way, Value: amount,
		Parent: parent, HasParent: hasParent, Set: true,
	}
}
