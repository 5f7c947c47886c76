package draw

import (
	"github.com/gogpu/draw/mesh"
	"github.com/gogpu/draw/tess"
)

// Theme supplies default colors for primitives drawn without an explicit
// color, keyed by primitive role. The zero value is not useful; start
// from DefaultTheme.
type Theme struct {
	// FillDefault and StrokeDefault apply when no per-role entry exists.
	FillDefault   mesh.Color
	StrokeDefault mesh.Color

	// FillColors and StrokeColors override the defaults per role.
	FillColors   map[tess.Role]mesh.Color
	StrokeColors map[tess.Role]mesh.Color
}

// DefaultTheme draws everything in white.
func DefaultTheme() Theme {
	return Theme{
		FillDefault:   mesh.RGB(1, 1, 1),
		StrokeDefault: mesh.RGB(1, 1, 1),
		FillColors:    map[tess.Role]mesh.Color{},
		StrokeColors:  map[tess.Role]mesh.Color{},
	}
}

// Fill resolves the default fill color for a role.
func (t Theme) Fill(role tess.Role) mesh.Color {
	if c, ok := t.FillColors[role]; ok {
		return c
	}
	return t.FillDefault
}

// Stroke resolves the default stroke color for a role.
func (t Theme) Stroke(role tess.Role) mesh.Color {
	if c, ok := t.StrokeColors[role]; ok {
		return c
	}
	return t.StrokeDefault
}

var _ tess.Theme = Theme{}
