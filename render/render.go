// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is the boundary between the drawing core and a GPU
// backend. The core produces flat vertex channels and an index buffer;
// a backend uploads them unchanged and binds textures per primitive as
// described by PrimitiveRender.
package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host implements it (or passes gogpu's implementation through) and
// hands it to whichever backend consumes the drawing core's mesh. The
// core itself never creates a device.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so host code
// written against the gpucontext ecosystem plugs in directly.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, for
// CPU-only consumers and tests.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}

// TextureHandle identifies a texture owned by the backend. The core
// records handles per primitive but never dereferences them.
type TextureHandle uint64

// NoTexture is the zero TextureHandle, meaning no texture is bound.
const NoTexture TextureHandle = 0

// VertexMode tells the backend how to interpret a primitive's vertices.
type VertexMode uint8

const (
	// VertexModeColor shades from the per-vertex color channel.
	VertexModeColor VertexMode = iota
	// VertexModeTexture samples the bound texture at the per-vertex
	// texture coordinates.
	VertexModeTexture
)

// String returns the mode name.
func (m VertexMode) String() string {
	switch m {
	case VertexModeColor:
		return "Color"
	case VertexModeTexture:
		return "Texture"
	default:
		return "unknown"
	}
}

// PrimitiveRender describes how a backend must draw one finalized
// primitive's mesh ranges.
type PrimitiveRender struct {
	// Texture is the texture to bind, or NoTexture.
	Texture TextureHandle
	// VertexMode selects color or textured interpretation.
	VertexMode VertexMode
}

// Per-channel strides in bytes.
const (
	pointStride    = 3 * 4
	colorStride    = 4 * 4
	texCoordStride = 2 * 4
)

// MeshBufferLayouts describes the three vertex buffers a backend binds
// for the core's mesh channels: positions, colors, and texture
// coordinates, at shader locations 0, 1, and 2.
func MeshBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: pointStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		},
		{
			ArrayStride: colorStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 1},
			},
		},
		{
			ArrayStride: texCoordStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 2},
			},
		},
	}
}
