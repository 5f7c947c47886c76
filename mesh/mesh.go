// Package mesh provides append-only vertex and index storage for
// tessellated geometry.
//
// A Mesh is a set of parallel channels (points, colors, texture
// coordinates) plus a shared index channel. Channels only ever grow while
// a frame is being recorded; ranges handed out by ExtendWith stay valid
// until the whole mesh is cleared.
package mesh

// Color is a straight-alpha RGBA color with components in [0, 1].
// It is the per-vertex color attribute format.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Range is a half-open [Start, End) span into a channel.
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges locates one tessellated primitive inside a Mesh.
// Both spans are recorded when the primitive's geometry is appended and
// are never mutated afterwards.
type Ranges struct {
	Vertices Range
	Indices  Range
}

// Channel is an append-only growable buffer of vertex attributes.
// The zero value is ready to use.
type Channel[T any] struct {
	data []T
}

// Push appends a single element and returns its index.
func (c *Channel[T]) Push(v T) int {
	c.data = append(c.data, v)
	return len(c.data) - 1
}

// Extend appends all given elements and returns the claimed range.
func (c *Channel[T]) Extend(vs []T) Range {
	start := len(c.data)
	c.data = append(c.data, vs...)
	return Range{Start: start, End: len(c.data)}
}

// Len returns the number of stored elements.
func (c *Channel[T]) Len() int {
	return len(c.data)
}

// Slice returns the elements within the given range.
// The returned slice aliases the channel's storage; treat it as read-only.
func (c *Channel[T]) Slice(r Range) []T {
	return c.data[r.Start:r.End]
}

// All returns the whole channel contents.
// The returned slice aliases the channel's storage; treat it as read-only.
func (c *Channel[T]) All() []T {
	return c.data
}

// Clear removes all elements but keeps the allocation for reuse.
func (c *Channel[T]) Clear() {
	c.data = c.data[:0]
}
