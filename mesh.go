package draw

import (
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
)

type meshData struct {
	common
	vertices []mesh.Vertex
	indices  []uint32
	texture  render.TextureHandle
	textured bool
}

func (*meshData) role() tess.Role { return tess.RoleMesh }

func (m *meshData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	mode := render.VertexModeColor
	if m.textured {
		mode = render.VertexModeTexture
	}
	rend := render.PrimitiveRender{Texture: m.texture, VertexMode: mode}
	return rend, d.mesh.ExtendWith(m.vertices, m.indices)
}

// MeshPrimitive is the fluent handle of a raw triangle mesh primitive.
type MeshPrimitive struct {
	Drawing
}

// Mesh starts drawing caller-supplied triangles. Indices are relative
// to the given vertices; they are offset into the shared mesh at
// finalization.
func (d *Draw) Mesh(vertices []mesh.Vertex, indices []uint32) MeshPrimitive {
	data := &meshData{vertices: vertices, indices: indices}
	idx := d.a(data)
	return MeshPrimitive{Drawing{draw: d, index: idx}}
}

func (m MeshPrimitive) data() *meshData {
	data, _ := m.primitive().(*meshData)
	return data
}

// Texture samples the given texture at the vertices' texture
// coordinates instead of shading from their colors.
func (m MeshPrimitive) Texture(handle render.TextureHandle) MeshPrimitive {
	if data := m.data(); data != nil {
		data.texture = handle
		data.textured = true
	}
	return m
}
