package command

// Opcode identifies the kind of a single command in the stream. The tag
// byte values below are this implementation's own wire assignment — the
// producer side is out of scope here and no numeric tags are fixed
// upstream, so the parser and the (test-only) stream builder in this
// package are the sole authority on them.
type Opcode uint8

const (
	OpCreateBuffer Opcode = iota
	OpCreateTexture
	OpCreateSampler
	OpCreateBindGroupLayout
	OpCreatePipelineLayout
	OpCreateQuerySet
	OpCreateRenderBundle
	OpCreateRenderPipeline
	OpCreateComputePipeline
	OpCreateImageBitmap
	OpCreateShader
	OpCreateBindGroup
	OpCreateTextureView
	OpBeginRenderPass
	OpBeginComputePass
	OpEndPass
	OpSubmit
	OpEnd
	OpSetPipeline
	OpSetBindGroup
	OpSetVertexBuffer
	OpSetIndexBuffer
	OpDraw
	OpDrawIndexed
	OpDispatch
	OpExecuteBundles
	OpWriteBuffer
	OpWriteTimeUniform
	OpCopyBufferToBuffer
	OpCopyTextureToTexture
	OpCopyExternalImageToTexture
	OpWriteBufferFromWasm
	OpInitWasmModule
	OpCallWasmFunc
	OpCreateTypedArray
	OpFillRandom
	OpFillConstant
	OpFillExpression
	OpWriteBufferFromArray
)

// createResourceOpcodes share the 10-byte {id, desc_ptr, desc_len} payload.
// The dispatcher (package validate) still switches on the original
// Opcode, but the parser decodes all of them identically.
var createResourceOpcodes = map[Opcode]bool{
	OpCreateTexture:         true,
	OpCreateSampler:         true,
	OpCreateBindGroupLayout: true,
	OpCreatePipelineLayout:  true,
	OpCreateQuerySet:        true,
	OpCreateRenderBundle:    true,
	OpCreateRenderPipeline:  true,
	OpCreateComputePipeline: true,
	OpCreateImageBitmap:     true,
}

// fixedPayloadSize returns the fixed payload size (tag byte excluded) for
// opcodes whose payload is not variable-length. execute_bundles and
// fill_expression are handled separately by the parser.
func fixedPayloadSize(op Opcode) (size int, ok bool) {
	if createResourceOpcodes[op] {
		return 10, true
	}
	switch op {
	case OpCreateBuffer:
		return 7, true
	case OpCreateShader:
		return 10, true
	case OpCreateBindGroup:
		return 12, true
	case OpCreateTextureView:
		return 12, true
	case OpBeginRenderPass:
		return 6, true
	case OpBeginComputePass, OpEndPass, OpSubmit, OpEnd:
		return 0, true
	case OpSetPipeline:
		return 2, true
	case OpSetBindGroup, OpSetVertexBuffer:
		return 3, true
	case OpSetIndexBuffer:
		return 3, true
	case OpDraw:
		return 16, true
	case OpDrawIndexed:
		return 20, true
	case OpDispatch:
		return 12, true
	case OpWriteBuffer:
		return 14, true
	case OpWriteTimeUniform:
		return 8, true
	case OpCopyBufferToBuffer:
		return 16, true
	case OpCopyTextureToTexture:
		return 8, true
	case OpCopyExternalImageToTexture:
		return 9, true
	case OpWriteBufferFromWasm:
		return 14, true
	case OpInitWasmModule:
		return 10, true
	case OpCallWasmFunc:
		return 20, true
	case OpCreateTypedArray:
		return 7, true
	case OpFillRandom, OpFillConstant:
		return 15, true
	case OpWriteBufferFromArray:
		return 8, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer for log and error messages.
func (op Opcode) String() string {
	switch op {
	case OpCreateBuffer:
		return "create_buffer"
	case OpCreateTexture:
		return "create_texture"
	case OpCreateSampler:
		return "create_sampler"
	case OpCreateBindGroupLayout:
		return "create_bind_group_layout"
	case OpCreatePipelineLayout:
		return "create_pipeline_layout"
	case OpCreateQuerySet:
		return "create_query_set"
	case OpCreateRenderBundle:
		return "create_render_bundle"
	case OpCreateRenderPipeline:
		return "create_render_pipeline"
	case OpCreateComputePipeline:
		return "create_compute_pipeline"
	case OpCreateImageBitmap:
		return "create_image_bitmap"
	case OpCreateShader:
		return "create_shader"
	case OpCreateBindGroup:
		return "create_bind_group"
	case OpCreateTextureView:
		return "create_texture_view"
	case OpBeginRenderPass:
		return "begin_render_pass"
	case OpBeginComputePass:
		return "begin_compute_pass"
	case OpEndPass:
		return "end_pass"
	case OpSubmit:
		return "submit"
	case OpEnd:
		return "end"
	case OpSetPipeline:
		return "set_pipeline"
	case OpSetBindGroup:
		return "set_bind_group"
	case OpSetVertexBuffer:
		return "set_vertex_buffer"
	case OpSetIndexBuffer:
		return "set_index_buffer"
	case OpDraw:
		return "draw"
	case OpDrawIndexed:
		return "draw_indexed"
	case OpDispatch:
		return "dispatch"
	case OpExecuteBundles:
		return "execute_bundles"
	case OpWriteBuffer:
		return "write_buffer"
	case OpWriteTimeUniform:
		return "write_time_uniform"
	case OpCopyBufferToBuffer:
		return "copy_buffer_to_buffer"
	case OpCopyTextureToTexture:
		return "copy_texture_to_texture"
	case OpCopyExternalImageToTexture:
		return "copy_external_image_to_texture"
	case OpWriteBufferFromWasm:
		return "write_buffer_from_wasm"
	case OpInitWasmModule:
		return "init_wasm_module"
	case OpCallWasmFunc:
		return "call_wasm_func"
	case OpCreateTypedArray:
		return "create_typed_array"
	case OpFillRandom:
		return "fill_random"
	case OpFillConstant:
		return "fill_constant"
	case OpFillExpression:
		return "fill_expression"
	case OpWriteBufferFromArray:
		return "write_buffer_from_array"
	default:
		return "unknown_opcode"
	}
}
