package types

// Limits is the overridable resource-limits dictionary, trimmed to seven
// fields; callers may override any subset (see the config package's YAML
// overlay).
type Limits struct {
	// MaxBufferSize bounds create_buffer's size field.
	MaxBufferSize uint64
	// MaxComputeWorkgroupsPerDimension bounds each dispatch dimension.
	MaxComputeWorkgroupsPerDimension uint32
	// MaxTextureDimension1D bounds width for 1D textures.
	MaxTextureDimension1D uint32
	// MaxTextureDimension2D bounds width/height for 2D textures.
	MaxTextureDimension2D uint32
	// MaxTextureDimension3D bounds width/height/depth for 3D textures.
	MaxTextureDimension3D uint32
	// MinUniformBufferOffsetAlignment is carried but not read by any
	// check; the W004 uniform-size hint uses a fixed 16-byte alignment.
	MinUniformBufferOffsetAlignment uint32
	// MinStorageBufferOffsetAlignment is carried but not read by any
	// check; the W004 storage-size hint uses a fixed 4-byte alignment.
	MinStorageBufferOffsetAlignment uint32
}

// DefaultLimits returns the default WebGPU resource limits.
func DefaultLimits() Limits {
	return Limits{
		MaxBufferSize:                    268435456, // 256 MiB
		MaxComputeWorkgroupsPerDimension: 65535,
		MaxTextureDimension1D:            8192,
		MaxTextureDimension2D:            8192,
		MaxTextureDimension3D:            2048,
		MinUniformBufferOffsetAlignment:  256,
		MinStorageBufferOffsetAlignment:  256,
	}
}
