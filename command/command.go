package command

// PtrRange is a {ptr, len} reference into the producer's WASM linear
// memory. Every field named *Ptr/*Len in the payload structs below
// packs into one of these for the bounds check in package validate.
type PtrRange struct {
	Ptr uint32
	Len uint32
}

// Command is one decoded entry from the stream. Index is the command's
// ordinal position, assigned by the parser.
type Command struct {
	Index  uint32
	Opcode Opcode
	Params Params
}

// Params is the tagged-variant payload carried by a Command. Concrete
// types below implement it; the dispatcher in package validate performs
// a type switch over Params and consults Command.Opcode where several
// opcodes share one payload type.
type Params interface {
	isParams()
}

// CreateBufferParams decodes create_buffer.
type CreateBufferParams struct {
	ID    uint16
	Size  uint32
	Usage uint8
}

func (CreateBufferParams) isParams() {}

// CreateResourceParams decodes the 10-byte {id, desc_ptr, desc_len} shape
// shared by create_texture, create_sampler, create_bind_group_layout,
// create_pipeline_layout, create_query_set, create_render_bundle,
// create_render_pipeline, create_compute_pipeline, and
// create_image_bitmap.
type CreateResourceParams struct {
	ID      uint16
	Desc    PtrRange
}

func (CreateResourceParams) isParams() {}

// CreateShaderParams decodes create_shader.
type CreateShaderParams struct {
	ID   uint16
	Code PtrRange
}

func (CreateShaderParams) isParams() {}

// CreateBindGroupParams decodes create_bind_group.
type CreateBindGroupParams struct {
	ID       uint16
	LayoutID uint16
	Entries  PtrRange
}

func (CreateBindGroupParams) isParams() {}

// CreateTextureViewParams decodes create_texture_view.
type CreateTextureViewParams struct {
	ID        uint16
	TextureID uint16
	Desc      PtrRange
}

func (CreateTextureViewParams) isParams() {}

// BeginRenderPassParams decodes begin_render_pass.
type BeginRenderPassParams struct {
	ColorID uint16
	LoadOp  uint8
	StoreOp uint8
	DepthID uint16
}

func (BeginRenderPassParams) isParams() {}

// SetPipelineParams decodes set_pipeline.
type SetPipelineParams struct {
	ID uint16
}

func (SetPipelineParams) isParams() {}

// SetBindGroupParams decodes set_bind_group.
type SetBindGroupParams struct {
	Slot uint8
	ID   uint16
}

func (SetBindGroupParams) isParams() {}

// SetVertexBufferParams decodes set_vertex_buffer.
type SetVertexBufferParams struct {
	Slot uint8
	ID   uint16
}

func (SetVertexBufferParams) isParams() {}

// SetIndexBufferParams decodes set_index_buffer.
type SetIndexBufferParams struct {
	ID     uint16
	Format uint8
}

func (SetIndexBufferParams) isParams() {}

// DrawParams decodes draw.
type DrawParams struct {
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

func (DrawParams) isParams() {}

// DrawIndexedParams decodes draw_indexed.
type DrawIndexedParams struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    uint32
	FirstInstance uint32
}

func (DrawIndexedParams) isParams() {}

// DispatchParams decodes dispatch.
type DispatchParams struct {
	X, Y, Z uint32
}

func (DispatchParams) isParams() {}

// ExecuteBundlesParams decodes the variable-length execute_bundles
// payload: a leading u8 count then count u16 bundle ids.
type ExecuteBundlesParams struct {
	BundleIDs []uint16
}

func (ExecuteBundlesParams) isParams() {}

// WriteBufferParams decodes write_buffer.
type WriteBufferParams struct {
	ID     uint16
	Offset uint32
	Data   PtrRange
}

func (WriteBufferParams) isParams() {}

// WriteTimeUniformParams decodes write_time_uniform.
type WriteTimeUniformParams struct {
	ID     uint16
	Offset uint32
	Size   uint16
}

func (WriteTimeUniformParams) isParams() {}

// CopyBufferToBufferParams decodes copy_buffer_to_buffer.
type CopyBufferToBufferParams struct {
	SrcID     uint16
	SrcOffset uint32
	DstID     uint16
	DstOffset uint32
	Size      uint32
}

func (CopyBufferToBufferParams) isParams() {}

// CopyTextureToTextureParams decodes copy_texture_to_texture.
type CopyTextureToTextureParams struct {
	SrcID, DstID  uint16
	Width, Height uint16
}

func (CopyTextureToTextureParams) isParams() {}

// CopyExternalImageToTextureParams decodes copy_external_image_to_texture.
type CopyExternalImageToTextureParams struct {
	BitmapID        uint16
	TextureID       uint16
	MipLevel        uint8
	OriginX, OriginY uint16
}

func (CopyExternalImageToTextureParams) isParams() {}

// WriteBufferFromWasmParams decodes write_buffer_from_wasm.
type WriteBufferFromWasmParams struct {
	BufferID     uint16
	BufferOffset uint32
	Wasm         PtrRange
}

func (WriteBufferFromWasmParams) isParams() {}

// InitWasmModuleParams decodes init_wasm_module.
type InitWasmModuleParams struct {
	ModuleID uint16
	Data     PtrRange
}

func (InitWasmModuleParams) isParams() {}

// CallWasmFuncParams decodes call_wasm_func.
type CallWasmFuncParams struct {
	CallID   uint16
	ModuleID uint16
	Func     PtrRange
	Args     PtrRange
}

func (CallWasmFuncParams) isParams() {}

// CreateTypedArrayParams decodes create_typed_array.
type CreateTypedArrayParams struct {
	ID        uint16
	ArrayType uint8
	Size      uint32
}

func (CreateTypedArrayParams) isParams() {}

// FillParams decodes fill_random and fill_constant, which share a payload
// shape.
type FillParams struct {
	ArrayID uint16
	Offset  uint32
	Count   uint32
	Stride  uint8
	Data    PtrRange // Len is always 0: fill_* carries only a pointer.
}

func (FillParams) isParams() {}

// FillExpressionParams decodes fill_expression. Unlike FillParams, the
// expression length is known but the parser never inlines the bytes; the
// validator only bounds-checks {ExprPtr, ExprLen} against memory.
type FillExpressionParams struct {
	ArrayID  uint16
	Offset   uint32
	Count    uint32
	Stride   uint8
	ExprPtr  uint32
	ExprLen  uint16
}

func (FillExpressionParams) isParams() {}

// WriteBufferFromArrayParams decodes write_buffer_from_array.
type WriteBufferFromArrayParams struct {
	BufferID     uint16
	BufferOffset uint32
	ArrayID      uint16
}

func (WriteBufferFromArrayParams) isParams() {}
