package tess

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
)

// ColoredPoint pairs a position with a per-point color.
type ColoredPoint struct {
	Point geom.Vec2
	Color mesh.Color
}

// TexturedPoint pairs a position with a per-point texture coordinate.
type TexturedPoint struct {
	Point    geom.Vec2
	TexCoord geom.Vec2
}

// Buffer is the shared scratch space behind every pending primitive of a
// drawing session. Each primitive claims a disjoint range at record time;
// ranges stay valid until Clear, which happens only when the whole
// session resets.
type Buffer struct {
	events   []PathEvent
	colored  []ColoredPoint
	textured []TexturedPoint
}

// PushEvents appends events and returns the claimed range.
func (b *Buffer) PushEvents(events []PathEvent) mesh.Range {
	start := len(b.events)
	b.events = append(b.events, events...)
	return mesh.Range{Start: start, End: len(b.events)}
}

// PushColoredPoints appends points and returns the claimed range.
func (b *Buffer) PushColoredPoints(points []ColoredPoint) mesh.Range {
	start := len(b.colored)
	b.colored = append(b.colored, points...)
	return mesh.Range{Start: start, End: len(b.colored)}
}

// PushTexturedPoints appends points and returns the claimed range.
func (b *Buffer) PushTexturedPoints(points []TexturedPoint) mesh.Range {
	start := len(b.textured)
	b.textured = append(b.textured, points...)
	return mesh.Range{Start: start, End: len(b.textured)}
}

// Events returns the events claimed by r.
func (b *Buffer) Events(r mesh.Range) []PathEvent {
	return b.events[r.Start:r.End]
}

// ColoredPoints returns the colored points claimed by r.
func (b *Buffer) ColoredPoints(r mesh.Range) []ColoredPoint {
	return b.colored[r.Start:r.End]
}

// TexturedPoints returns the textured points claimed by r.
func (b *Buffer) TexturedPoints(r mesh.Range) []TexturedPoint {
	return b.textured[r.Start:r.End]
}

// Clear drops every claimed range. Previously returned ranges become
// invalid.
func (b *Buffer) Clear() {
	b.events = b.events[:0]
	b.colored = b.colored[:0]
	b.textured = b.textured[:0]
}

// Source locates one primitive's outline data inside the shared Buffer.
type Source interface {
	isSource()
}

// SourceEvents references a range of buffered path events.
type SourceEvents struct {
	Events mesh.Range
}

// SourceColoredPoints references a polyline of colored points.
type SourceColoredPoints struct {
	Points mesh.Range
	Close  bool
}

// SourceTexturedPoints references a polyline of textured points.
type SourceTexturedPoints struct {
	Points mesh.Range
	Close  bool
}

func (SourceEvents) isSource()         {}
func (SourceColoredPoints) isSource()  {}
func (SourceTexturedPoints) isSource() {}
