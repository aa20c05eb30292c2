package command

import "github.com/gogpu/gpuvalidate/types"

// Descriptor TLV type tags.
const (
	DescTypeSampler            = 0x01
	DescTypeTexture            = 0x02
	DescTypeRenderPass         = 0x03
	DescTypeRenderPipeline     = 0x04
	DescTypeComputePipeline    = 0x05
	DescTypeBindGroup          = 0x06
	DescTypeTextureView        = 0x07
	DescTypeBindGroupLayout    = 0x08
	DescTypeBindGroupLayoutEntry = 0x09
	DescTypePipelineLayout     = 0x0A
)

// Descriptor TLV value-type tags.
const (
	valueTypeU32      = 0x01
	valueTypeStringID = 0x02
	valueTypeArray    = 0x03
	valueTypeNested   = 0x04
	valueTypeBool     = 0x05
	valueTypeU16      = 0x06
	valueTypeEnum     = 0x07
)

// Texture descriptor field ids.
const (
	texFieldWidth         = 0x01
	texFieldHeight        = 0x02
	texFieldDepth         = 0x03
	texFieldMipLevelCount = 0x04
	texFieldSampleCount   = 0x05
	texFieldDimension     = 0x06
	texFieldFormat        = 0x07
	texFieldUsage         = 0x08
)

const maxDescriptorFields = 32

// ParseTextureDescriptor decodes a texture descriptor TLV blob. It only
// has a value when the validator holds a snapshot of the
// producer's WASM memory; the command stream itself carries no
// descriptor bytes, only a {ptr, len} reference into that memory.
//
// Unknown field ids are skipped (their value is still consumed to keep
// the cursor aligned); an unknown value type aborts decoding and returns
// the texture built from the fields seen so far.
func ParseTextureDescriptor(mem []byte) types.Texture {
	tex := types.Texture{
		Width:         1,
		Height:        1,
		Depth:         1,
		Format:        types.TextureFormatRGBA8Unorm,
		SampleCount:   types.DefaultTextureSampleCount,
		MipLevelCount: types.DefaultTextureMipLevelCount,
		Dimension:     types.DefaultTextureDimension,
	}

	if len(mem) < 2 {
		return tex
	}
	if mem[0] != DescTypeTexture {
		return tex
	}

	fieldCount := int(mem[1])
	if fieldCount > maxDescriptorFields {
		fieldCount = maxDescriptorFields
	}

	pos := 2
	for i := 0; i < fieldCount; i++ {
		if pos+2 > len(mem) {
			break
		}
		fieldID := mem[pos]
		valueType := mem[pos+1]
		pos += 2

		valueLen, ok := valueTypeSize(valueType)
		if !ok {
			break
		}
		if pos+valueLen > len(mem) {
			break
		}

		applyTextureField(&tex, fieldID, valueType, mem[pos:pos+valueLen])
		pos += valueLen
	}

	return tex
}

// valueTypeSize returns the byte width of a TLV value type.
func valueTypeSize(valueType byte) (int, bool) {
	switch valueType {
	case valueTypeU32, valueTypeStringID:
		return 4, true
	case valueTypeEnum, valueTypeBool:
		return 1, true
	case valueTypeU16:
		return 2, true
	default:
		// array/nested carry structure this validator does not need to
		// interpret; treat as unsupported so the caller stops cleanly.
		return 0, false
	}
}

func applyTextureField(tex *types.Texture, fieldID byte, valueType byte, raw []byte) {
	switch fieldID {
	case texFieldWidth:
		tex.Width = decodeU32Field(valueType, raw)
	case texFieldHeight:
		tex.Height = decodeU32Field(valueType, raw)
	case texFieldDepth:
		tex.Depth = decodeU32Field(valueType, raw)
	case texFieldMipLevelCount:
		tex.MipLevelCount = uint8(decodeU32Field(valueType, raw))
	case texFieldSampleCount:
		tex.SampleCount = uint8(decodeU32Field(valueType, raw))
	case texFieldDimension:
		tex.Dimension = types.TextureDimension(decodeU32Field(valueType, raw))
	case texFieldFormat:
		tex.Format = types.TextureFormat(decodeU32Field(valueType, raw))
	case texFieldUsage:
		tex.Usage = types.TextureUsage(decodeU32Field(valueType, raw))
	default:
		// Unknown field: value already consumed by the caller, nothing
		// to record.
	}
}

func decodeU32Field(valueType byte, raw []byte) uint32 {
	switch valueType {
	case valueTypeU32:
		return readU32(raw, 0)
	case valueTypeU16:
		return uint32(readU16(raw, 0))
	case valueTypeEnum, valueTypeBool:
		return uint32(raw[0])
	default:
		return 0
	}
}
