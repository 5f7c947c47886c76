// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestMeshBufferLayouts(t *testing.T) {
	layouts := MeshBufferLayouts()
	if len(layouts) != 3 {
		t.Fatalf("want 3 vertex buffers, got %d", len(layouts))
	}

	wantStrides := []uint64{12, 16, 8}
	for i, l := range layouts {
		if l.ArrayStride != wantStrides[i] {
			t.Fatalf("buffer %d: stride %d, want %d", i, l.ArrayStride, wantStrides[i])
		}
		if len(l.Attributes) != 1 {
			t.Fatalf("buffer %d: want one attribute", i)
		}
		if got := l.Attributes[0].ShaderLocation; got != uint32(i) {
			t.Fatalf("buffer %d: shader location %d", i, got)
		}
		if l.StepMode != gputypes.VertexStepModeVertex {
			t.Fatalf("buffer %d: per-vertex stepping required", i)
		}
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h NullDeviceHandle
	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Fatal("null device must expose nothing")
	}
	if h.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Fatal("null device surface format must be undefined")
	}
	info := h.AdapterInfo()
	if info.Name != "" || info.Type != gpucontext.AdapterTypeUnknown {
		t.Fatalf("null device must report an unknown adapter, got %+v", info)
	}
}

func TestVertexModeString(t *testing.T) {
	if VertexModeColor.String() != "Color" || VertexModeTexture.String() != "Texture" {
		t.Fatal("unexpected mode names")
	}
	if NoTexture != 0 {
		t.Fatal("the zero handle must mean no texture")
	}
}
