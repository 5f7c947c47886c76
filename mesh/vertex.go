package mesh

import "github.com/gogpu/draw/geom"

// Vertex is the composite per-vertex format assembled from the mesh's
// parallel channels. Renderers that upload the raw channels directly
// never materialize this type; it exists for CPU-side consumers such as
// bounding-box computation and tests.
type Vertex struct {
	Point    geom.Vec3
	Color    Color
	TexCoord geom.Vec2
}

// Mesh stores tessellated geometry as parallel vertex channels plus a
// triangle index channel. Indices are global: they refer to positions in
// the vertex channels, not to positions within any one primitive's range.
type Mesh struct {
	points    Channel[geom.Vec3]
	colors    Channel[Color]
	texCoords Channel[geom.Vec2]
	indices   Channel[uint32]
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return m.points.Len()
}

// IndexCount returns the number of triangle indices in the mesh.
func (m *Mesh) IndexCount() int {
	return m.indices.Len()
}

// Push appends a single vertex without indices and returns its index.
func (m *Mesh) Push(v Vertex) uint32 {
	i := m.points.Push(v.Point)
	m.colors.Push(v.Color)
	m.texCoords.Push(v.TexCoord)
	return uint32(i)
}

// PushIndex appends one triangle index.
func (m *Mesh) PushIndex(i uint32) {
	m.indices.Push(i)
}

// ExtendWith appends the given vertices and indices, offsetting every
// index by the mesh's current vertex count so they stay globally valid.
// It returns the ranges claimed by this extension.
func (m *Mesh) ExtendWith(vertices []Vertex, indices []uint32) Ranges {
	offset := uint32(m.points.Len())
	vstart := m.points.Len()
	for _, v := range vertices {
		m.points.Push(v.Point)
		m.colors.Push(v.Color)
		m.texCoords.Push(v.TexCoord)
	}
	istart := m.indices.Len()
	for _, i := range indices {
		m.indices.Push(i + offset)
	}
	return Ranges{
		Vertices: Range{Start: vstart, End: m.points.Len()},
		Indices:  Range{Start: istart, End: m.indices.Len()},
	}
}

// Points returns the raw position channel for GPU upload.
func (m *Mesh) Points() []geom.Vec3 {
	return m.points.All()
}

// Colors returns the raw color channel for GPU upload.
func (m *Mesh) Colors() []Color {
	return m.colors.All()
}

// TexCoords returns the raw texture-coordinate channel for GPU upload.
func (m *Mesh) TexCoords() []geom.Vec2 {
	return m.texCoords.All()
}

// Indices returns the raw index channel for GPU upload.
func (m *Mesh) Indices() []uint32 {
	return m.indices.All()
}

// PointsInRange returns the positions claimed by the given ranges.
func (m *Mesh) PointsInRange(r Ranges) []geom.Vec3 {
	return m.points.Slice(r.Vertices)
}

// VertexAt assembles the composite vertex at index i.
func (m *Mesh) VertexAt(i int) Vertex {
	return Vertex{
		Point:    m.points.All()[i],
		Color:    m.colors.All()[i],
		TexCoord: m.texCoords.All()[i],
	}
}

// Clear removes all geometry but keeps allocations for the next frame.
func (m *Mesh) Clear() {
	m.points.Clear()
	m.colors.Clear()
	m.texCoords.Clear()
	m.indices.Clear()
}
