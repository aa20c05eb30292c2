package validate

import "github.com/gogpu/gpuvalidate/types"

// validateTextureDescriptor implements the creation-time texture rules,
// which only apply when the descriptor is actually parsed — i.e. when
// the caller supplied a WASM memory snapshot via SetWasmMemory and
// ParseTextureDescriptor produced real field values instead of the
// all-defaults fallback.
func (v *Validator) validateTextureDescriptor(cmdIndex uint32, id uint16, tex types.Texture) {
	rid := ptrU16(id)

	if tex.Usage == 0 {
		v.issues.add(CodeInvalidDescriptor, msgTextureUsageZero, cmdIndex, rid)
	} else if !tex.Usage.Valid() {
		v.issues.add(CodeInvalidDescriptor, msgTextureUsageInvalid, cmdIndex, rid)
	}

	if tex.SampleCount != 1 && tex.SampleCount != 4 {
		v.issues.add(CodeInvalidDescriptor, msgTextureSampleCount, cmdIndex, rid)
	}

	switch tex.Dimension {
	case types.TextureDimension1D:
		if tex.Height != 1 || tex.Depth != 1 || tex.SampleCount != 1 || tex.Format.IsDepthStencil() {
			v.issues.add(CodeInvalidDescriptor, msgTexture1DShape, cmdIndex, rid)
		}
	case types.TextureDimension3D:
		if tex.SampleCount != 1 {
			v.issues.add(CodeInvalidDescriptor, msgTexture3DSampleCount, cmdIndex, rid)
		}
	}

	if tex.SampleCount > 1 {
		if tex.MipLevelCount != 1 {
			v.issues.add(CodeInvalidDescriptor, msgTextureMSAAMipLevels, cmdIndex, rid)
		}
		if tex.Depth != 1 {
			v.issues.add(CodeInvalidDescriptor, msgTextureMSAADepth, cmdIndex, rid)
		}
		if tex.Usage.Has(types.TextureUsageStorageBinding) {
			v.issues.add(CodeInvalidDescriptor, msgTextureMSAANoStorage, cmdIndex, rid)
		}
		if !tex.Usage.Has(types.TextureUsageRenderAttachment) {
			v.issues.add(CodeInvalidDescriptor, msgTextureMSAANeedsAttach, cmdIndex, rid)
		}
	}
}
