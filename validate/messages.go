package validate

// Static diagnostic message catalogue. Every Issue.Message value comes
// from here; none are ever built from input data, which keeps two
// validation runs over the same stream byte-identical.
const (
	msgMissingResource = "referenced resource id is not registered"

	msgDrawOutsidePass         = "draw issued outside a render pass"
	msgDispatchOutsidePass     = "dispatch issued outside a compute pass"
	msgNoBoundPipeline         = "draw or dispatch issued without a bound pipeline"
	msgPipelineKindMismatch    = "bound pipeline kind does not match the active pass"
	msgSetPipelineKindMismatch = "pipeline kind contradicts the active pass"

	msgMemoryBoundsOverflow = "ptr + len overflows u32"
	msgMemoryBoundsExceeded = "ptr + len exceeds the configured WASM memory size"

	msgDuplicateID = "resource id was already registered"

	msgResourceLimitExceeded = "per-kind resource limit (MAX_RESOURCES) reached, resource was not registered"

	msgBufferSizeZero       = "buffer size must be non-zero"
	msgBufferUsageZero      = "buffer usage must be non-zero"
	msgBufferUsageCombo     = "MAP_READ/MAP_WRITE usage combined with a disallowed bit"
	msgBufferUsageExclusive = "MAP_READ and MAP_WRITE are mutually exclusive"
	msgBufferUsageContext   = "buffer usage does not permit this operation"
	msgCopySameBuffer       = "copy source and destination buffer ids must differ"

	msgTextureUsageZero       = "texture usage must be non-zero"
	msgTextureUsageInvalid    = "texture usage contains unrecognized bits"
	msgTextureSampleCount     = "sample_count must be 1 or 4"
	msgTexture1DShape         = "1D textures require height=1, depth=1, sample_count=1, and a non depth-stencil format"
	msgTexture3DSampleCount   = "3D textures require sample_count=1"
	msgTextureMSAAMipLevels   = "multisampled textures require mip_level_count=1"
	msgTextureMSAADepth       = "multisampled textures require depth=1"
	msgTextureMSAANoStorage   = "multisampled textures cannot use STORAGE_BINDING"
	msgTextureMSAANeedsAttach = "multisampled textures require RENDER_ATTACHMENT usage"

	msgEndPassNoOpenPass = "end_pass issued with no open pass"
	msgPassLeftOpen      = "pass left open at end of stream"
	msgBufferSizeLimit   = "buffer size exceeds the configured maximum"
	msgWorkgroupCountX   = "workgroupCountX exceeds the configured maximum"
	msgWorkgroupCountY   = "workgroupCountY exceeds the configured maximum"
	msgWorkgroupCountZ   = "workgroupCountZ exceeds the configured maximum"

	msgNestedPass = "begin_* issued while a pass is already open"

	msgZeroCount = "draw or dispatch issued with a zero dimension"

	msgNullPointer          = "ptr is zero while len is non-zero"
	msgUniformAlignment     = "uniform buffer size is not 16-byte aligned"
	msgStorageAlignment     = "storage buffer size is not 4-byte aligned"
	msgSuspiciousDescriptor = "descriptor blob is unusually large"
)
