package draw

import (
	"github.com/gogpu/draw/geom"
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/render"
	"github.com/gogpu/draw/tess"
	"github.com/gogpu/draw/text"
)

type textData struct {
	common
	text     string
	face     *text.Face
	maxWidth float32
	wrap     text.WrapMode
	justify  Align
	texture  render.TextureHandle
}

func (*textData) role() tess.Role { return tess.RoleText }

// draw lays the text out line by line and emits one textured quad per
// visible glyph, positioned in glyph-atlas convention by the backend's
// texture. The block is centered on the node.
func (t *textData) draw(d *Draw) (render.PrimitiveRender, mesh.Ranges) {
	rend := render.PrimitiveRender{Texture: t.texture, VertexMode: render.VertexModeTexture}
	face := t.face
	if face == nil {
		face = d.face
	}
	if face == nil {
		Logger().Warn("text drawn without a face", "text", t.text)
		return rend, d.mesh.ExtendWith(nil, nil)
	}

	infos := text.Lines(t.text, face, t.maxWidth, t.wrap)
	metrics := face.Metrics()
	lineHeight := metrics.Height()
	totalHeight := lineHeight * float32(len(infos))
	var blockWidth float32
	for _, info := range infos {
		if info.Width > blockWidth {
			blockWidth = info.Width
		}
	}

	col := d.theme.Fill(t.role())
	if t.fillColor != nil {
		col = *t.fillColor
	}

	var verts []mesh.Vertex
	var indices []uint32
	baseline := totalHeight/2 - metrics.Ascent
	for _, info := range infos {
		s, e := info.ByteRange()
		line := t.text[s:e]

		var pen float32
		switch t.justify {
		case AlignMiddle:
			pen = -info.Width / 2
		case AlignEnd:
			pen = blockWidth/2 - info.Width
		default:
			pen = -blockWidth / 2
		}

		var prev rune
		hasPrev := false
		for _, r := range line {
			if hasPrev {
				pen += face.PairKerning(prev, r)
			}
			min, max, ok := face.GlyphBounds(r)
			if ok && max.X > min.X && max.Y > min.Y {
				// Font bounds grow downward; flip into the y-up world.
				bl := geom.V2(pen+min.X, baseline-max.Y)
				tr := geom.V2(pen+max.X, baseline-min.Y)
				base := uint32(len(verts))
				verts = append(verts,
					mesh.Vertex{Point: bl.Extend(0), Color: col, TexCoord: geom.V2(0, 0)},
					mesh.Vertex{Point: geom.V3(tr.X, bl.Y, 0), Color: col, TexCoord: geom.V2(1, 0)},
					mesh.Vertex{Point: tr.Extend(0), Color: col, TexCoord: geom.V2(1, 1)},
					mesh.Vertex{Point: geom.V3(bl.X, tr.Y, 0), Color: col, TexCoord: geom.V2(0, 1)},
				)
				indices = append(indices, base, base+1, base+2, base, base+2, base+3)
			}
			pen += face.GlyphAdvance(r)
			prev, hasPrev = r, true
		}
		baseline -= lineHeight
	}
	return rend, d.mesh.ExtendWith(verts, indices)
}

// Text is the fluent handle of a text primitive.
type Text struct {
	Drawing
}

// Text starts drawing a block of text centered on its node, using the
// session's default face unless Font overrides it.
func (d *Draw) Text(s string) Text {
	data := &textData{text: s, justify: AlignStart}
	idx := d.a(data)
	return Text{Drawing{draw: d, index: idx}}
}

func (t Text) data() *textData {
	data, _ := t.primitive().(*textData)
	return data
}

// Font sets the face the text is laid out with.
func (t Text) Font(face *text.Face) Text {
	if data := t.data(); data != nil {
		data.face = face
	}
	return t
}

// MaxWidth wraps the text to the given width. Whitespace wrapping is
// the default once a width is set.
func (t Text) MaxWidth(w float32) Text {
	if data := t.data(); data != nil {
		data.maxWidth = w
		if data.wrap == text.WrapNone {
			data.wrap = text.WrapWhitespace
		}
	}
	return t
}

// WrapByCharacter wraps as soon as a glyph would overflow the width.
func (t Text) WrapByCharacter() Text {
	if data := t.data(); data != nil {
		data.wrap = text.WrapCharacter
	}
	return t
}

// WrapByWhitespace wraps at the last whitespace before overflow.
func (t Text) WrapByWhitespace() Text {
	if data := t.data(); data != nil {
		data.wrap = text.WrapWhitespace
	}
	return t
}

// NoWrap disables wrapping; only explicit newlines break lines.
func (t Text) NoWrap() Text {
	if data := t.data(); data != nil {
		data.wrap = text.WrapNone
	}
	return t
}

// Justify aligns each line within the text block.
func (t Text) Justify(align Align) Text {
	if data := t.data(); data != nil {
		data.justify = align
	}
	return t
}

// Color sets the text color.
func (t Text) Color(c mesh.Color) Text {
	if data := t.data(); data != nil {
		data.fillColor = &c
	}
	return t
}

// Texture binds the glyph atlas the backend samples glyph quads from.
func (t Text) Texture(handle render.TextureHandle) Text {
	if data := t.data(); data != nil {
		data.texture = handle
	}
	return t
}
