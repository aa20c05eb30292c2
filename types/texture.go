package types

// TextureFormat is the coarse format tag carried by a texture descriptor.
// Only the depth-stencil range is semantically meaningful to the
// validator; the rest of the WebGPU format table is out of scope.
type TextureFormat uint8

// TextureFormatRGBA8Unorm is the default format when a descriptor omits one.
const TextureFormatRGBA8Unorm TextureFormat = 0

// depthStencilLow and depthStencilHigh bound the tag range that the
// validator treats as a depth-stencil format.
const (
	depthStencilLow  TextureFormat = 0x10
	depthStencilHigh TextureFormat = 0x1F
)

// IsDepthStencil reports whether f falls in the depth-stencil tag range.
func (f TextureFormat) IsDepthStencil() bool {
	return f >= depthStencilLow && f <= depthStencilHigh
}

// TextureDimension describes the dimensionality of a texture.
type TextureDimension uint8

const (
	// TextureDimension1D is a 1D texture.
	TextureDimension1D TextureDimension = iota
	// TextureDimension2D is a 2D texture.
	TextureDimension2D
	// TextureDimension3D is a 3D texture.
	TextureDimension3D
)

// TextureUsage describes how a texture may be used, as a bit mask. The bit
// assignment matches the WebGPU GPUTextureUsage dictionary.
type TextureUsage uint8

const (
	// TextureUsageCopySrc allows the texture to be a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota
	// TextureUsageCopyDst allows the texture to be a copy destination.
	TextureUsageCopyDst
	// TextureUsageTextureBinding allows texture binding in shaders.
	TextureUsageTextureBinding
	// TextureUsageStorageBinding allows storage binding in shaders.
	TextureUsageStorageBinding
	// TextureUsageRenderAttachment allows use as a render attachment.
	TextureUsageRenderAttachment
)

// textureUsageMask covers every bit the validator recognizes; anything
// outside it is rejected by the texture creation rules.
const textureUsageMask = TextureUsageCopySrc | TextureUsageCopyDst |
	TextureUsageTextureBinding | TextureUsageStorageBinding | TextureUsageRenderAttachment

// Valid reports whether u contains only recognized usage bits.
func (u TextureUsage) Valid() bool {
	return u&^textureUsageMask == 0
}

// Has reports whether u contains every bit in mask.
func (u TextureUsage) Has(mask TextureUsage) bool {
	return u&mask == mask
}

// Texture is the registry record for a created texture.
type Texture struct {
	Width, Height, Depth uint32
	Format               TextureFormat
	Usage                TextureUsage
	SampleCount          uint8
	MipLevelCount        uint8
	Dimension            TextureDimension
	CreatedAt            uint32
}

// Default texture descriptor field values.
const (
	DefaultTextureSampleCount    uint8            = 1
	DefaultTextureMipLevelCount  uint8            = 1
	DefaultTextureDimension      TextureDimension = TextureDimension2D
)
