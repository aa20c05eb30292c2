package validate

import (
	"github.com/gogpu/gpuvalidate/command"
	"github.com/gogpu/gpuvalidate/types"
)

// dispatch routes one command to its rule set. It is a flat switch over
// opcodes; each arm updates resource/pass state and appends zero or more
// issues to the issue list in a fixed order per opcode, so that a single
// command's diagnostics appear in a deterministic sub-order.
func (v *Validator) dispatch(cmd command.Command) {
	switch p := cmd.Params.(type) {
	case command.CreateBufferParams:
		v.onCreateBuffer(cmd.Index, p)
	case command.CreateResourceParams:
		v.onCreateResource(cmd.Index, cmd.Opcode, p)
	case command.CreateShaderParams:
		v.onCreateShader(cmd.Index, p)
	case command.CreateBindGroupParams:
		v.onCreateBindGroup(cmd.Index, p)
	case command.CreateTextureViewParams:
		v.onCreateTextureView(cmd.Index, p)
	case command.BeginRenderPassParams:
		v.onBeginRenderPass(cmd.Index, p)
	case command.SetPipelineParams:
		v.onSetPipeline(cmd.Index, p)
	case command.SetBindGroupParams:
		v.onSetBindGroup(cmd.Index, p)
	case command.SetVertexBufferParams:
		v.onSetVertexBuffer(cmd.Index, p)
	case command.SetIndexBufferParams:
		v.onSetIndexBuffer(cmd.Index, p)
	case command.DrawParams:
		v.onDraw(cmd.Index, p)
	case command.DrawIndexedParams:
		v.onDrawIndexed(cmd.Index, p)
	case command.DispatchParams:
		v.onDispatch(cmd.Index, p)
	case command.ExecuteBundlesParams:
		// Accepted but not tracked.
	case command.WriteBufferParams:
		v.onWriteBuffer(cmd.Index, p)
	case command.WriteTimeUniformParams:
		v.onWriteTimeUniform(cmd.Index, p)
	case command.CopyBufferToBufferParams:
		v.onCopyBufferToBuffer(cmd.Index, p)
	case command.CopyTextureToTextureParams:
		v.onCopyTextureToTexture(cmd.Index, p)
	case command.CopyExternalImageToTextureParams:
		v.onCopyExternalImageToTexture(cmd.Index, p)
	case command.WriteBufferFromWasmParams:
		v.onWriteBufferFromWasm(cmd.Index, p)
	case command.InitWasmModuleParams:
		v.onInitWasmModule(cmd.Index, p)
	case command.CallWasmFuncParams:
		v.onCallWasmFunc(cmd.Index, p)
	case command.CreateTypedArrayParams:
		v.onCreateTypedArray(cmd.Index, p)
	case command.FillParams:
		v.onFill(cmd.Index, p)
	case command.FillExpressionParams:
		v.onFillExpression(cmd.Index, p)
	case command.WriteBufferFromArrayParams:
		v.onWriteBufferFromArray(cmd.Index, p)
	case nil:
		v.onNoParamsOpcode(cmd.Index, cmd.Opcode)
	}
}

// onNoParamsOpcode handles the four opcodes whose payload is empty
// (begin_compute_pass, end_pass, submit, end).
func (v *Validator) onNoParamsOpcode(cmdIndex uint32, op command.Opcode) {
	switch op {
	case command.OpBeginComputePass:
		v.onBeginPass(cmdIndex, PassStateCompute)
	case command.OpEndPass:
		v.onEndPass(cmdIndex)
	case command.OpSubmit:
		v.resetPassState()
	case command.OpEnd:
		// Trailing unclosed-pass check happens once in Validate, after
		// the whole sequence has been walked.
	}
}

func (v *Validator) resetPassState() {
	v.passState = PassStateNone
	v.pipeline = pipelineRef{}
	v.slots.clear()
}

func (v *Validator) onBeginPass(cmdIndex uint32, state PassState) {
	if v.passState != PassStateNone {
		v.issues.add(CodeNestedPass, msgNestedPass, cmdIndex, nil)
		return
	}
	v.passState = state
	v.pipeline = pipelineRef{}
	v.slots.clear()
	if state == PassStateRender {
		v.everRenderPass = true
	} else {
		v.everComputePass = true
	}
}

func (v *Validator) onBeginRenderPass(cmdIndex uint32, p command.BeginRenderPassParams) {
	if !isSentinel(p.ColorID) && !v.textureViews.Contains(p.ColorID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ColorID))
	}
	if !isSentinel(p.DepthID) && !v.textureViews.Contains(p.DepthID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.DepthID))
	}
	v.onBeginPass(cmdIndex, PassStateRender)
}

func (v *Validator) onEndPass(cmdIndex uint32) {
	if v.passState == PassStateNone {
		v.issues.add(CodePassMismatch, msgEndPassNoOpenPass, cmdIndex, nil)
		return
	}
	v.resetPassState()
}

func (v *Validator) onCreateBuffer(cmdIndex uint32, p command.CreateBufferParams) {
	if v.buffers.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	usage := types.BufferUsage(p.Usage)
	v.validateBufferUsageAtCreation(cmdIndex, p.ID, usage, p.Size)
	if !v.buffers.Insert(p.ID, types.Buffer{Size: p.Size, Usage: usage, CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

// onCreateResource handles the nine opcodes sharing the
// {id, desc_ptr, desc_len} payload, routing each to its own registry by
// opcode. create_bind_group_layout, create_pipeline_layout,
// create_query_set, and create_render_bundle are accepted but not
// tracked.
func (v *Validator) onCreateResource(cmdIndex uint32, op command.Opcode, p command.CreateResourceParams) {
	switch op {
	case command.OpCreateTexture:
		v.onCreateTexture(cmdIndex, p)
	case command.OpCreateSampler:
		v.createTrackedResource(cmdIndex, v.samplers, p.ID, p.Desc)
	case command.OpCreateImageBitmap:
		v.createTrackedResource(cmdIndex, v.imageBitmaps, p.ID, p.Desc)
	case command.OpCreateRenderPipeline:
		v.createPipeline(cmdIndex, v.renderPipelines, p.ID, PipelineKindRender, p.Desc)
	case command.OpCreateComputePipeline:
		v.createPipeline(cmdIndex, v.computePipelines, p.ID, PipelineKindCompute, p.Desc)
	case command.OpCreateBindGroupLayout, command.OpCreatePipelineLayout,
		command.OpCreateQuerySet, command.OpCreateRenderBundle:
		// Not tracked.
	}
}

func (v *Validator) createTrackedResource(cmdIndex uint32, reg *Registry[Resource], id uint16, desc command.PtrRange) {
	if reg.Contains(id) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(id))
		return
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(id), desc)
	v.checkSuspiciousDescriptor(cmdIndex, ptrU16(id), desc)
	if !reg.Insert(id, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(id))
	}
}

func (v *Validator) createPipeline(cmdIndex uint32, reg *Registry[PipelineResource], id uint16, kind PipelineKind, desc command.PtrRange) {
	if reg.Contains(id) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(id))
		return
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(id), desc)
	v.checkSuspiciousDescriptor(cmdIndex, ptrU16(id), desc)
	if !reg.Insert(id, PipelineResource{Kind: kind, CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(id))
	}
}

func (v *Validator) onCreateTexture(cmdIndex uint32, p command.CreateResourceParams) {
	if v.textures.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	if !v.checkMemoryBounds(cmdIndex, ptrU16(p.ID), p.Desc) {
		return
	}
	v.checkSuspiciousDescriptor(cmdIndex, ptrU16(p.ID), p.Desc)

	tex := v.parseTextureDescriptor(p.Desc)
	tex.CreatedAt = cmdIndex
	if v.wasmMemory != nil {
		v.validateTextureDescriptor(cmdIndex, p.ID, tex)
	}
	if !v.textures.Insert(p.ID, tex) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

func (v *Validator) parseTextureDescriptor(desc command.PtrRange) types.Texture {
	if v.wasmMemory == nil {
		return defaultTexture()
	}
	end := uint64(desc.Ptr) + uint64(desc.Len)
	if end > uint64(len(v.wasmMemory)) {
		return defaultTexture()
	}
	return command.ParseTextureDescriptor(v.wasmMemory[desc.Ptr : desc.Ptr+desc.Len])
}

func defaultTexture() types.Texture {
	return types.Texture{
		Width:         1,
		Height:        1,
		Depth:         1,
		Format:        types.TextureFormatRGBA8Unorm,
		SampleCount:   types.DefaultTextureSampleCount,
		MipLevelCount: types.DefaultTextureMipLevelCount,
		Dimension:     types.DefaultTextureDimension,
	}
}

func (v *Validator) onCreateShader(cmdIndex uint32, p command.CreateShaderParams) {
	if v.shaders.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ID), p.Code)
	if !v.shaders.Insert(p.ID, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

func (v *Validator) onCreateBindGroup(cmdIndex uint32, p command.CreateBindGroupParams) {
	if v.bindGroups.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ID), p.Entries)
	v.checkSuspiciousDescriptor(cmdIndex, ptrU16(p.ID), p.Entries)
	if !v.bindGroups.Insert(p.ID, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

func (v *Validator) onCreateTextureView(cmdIndex uint32, p command.CreateTextureViewParams) {
	if v.textureViews.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	if !isSentinel(p.TextureID) && !v.textures.Contains(p.TextureID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.TextureID))
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ID), p.Desc)
	v.checkSuspiciousDescriptor(cmdIndex, ptrU16(p.ID), p.Desc)
	if !v.textureViews.Insert(p.ID, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

func (v *Validator) onSetPipeline(cmdIndex uint32, p command.SetPipelineParams) {
	if rp, ok := v.renderPipelines.Get(p.ID); ok {
		if v.passState != PassStateRender {
			v.issues.add(CodeStateViolation, msgSetPipelineKindMismatch, cmdIndex, ptrU16(p.ID))
		}
		v.pipeline = pipelineRef{id: p.ID, kind: rp.Kind, valid: true}
		return
	}
	if cp, ok := v.computePipelines.Get(p.ID); ok {
		if v.passState != PassStateCompute {
			v.issues.add(CodeStateViolation, msgSetPipelineKindMismatch, cmdIndex, ptrU16(p.ID))
		}
		v.pipeline = pipelineRef{id: p.ID, kind: cp.Kind, valid: true}
		return
	}
	v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ID))
}

func (v *Validator) onSetBindGroup(cmdIndex uint32, p command.SetBindGroupParams) {
	if !v.bindGroups.Contains(p.ID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ID))
		return
	}
	v.bindGroupEverBound[p.ID] = true
	if int(p.Slot) < bindGroupSlots {
		v.slots.bindGroups[p.Slot] = slot{id: p.ID, bound: true}
	}
}

func (v *Validator) onSetVertexBuffer(cmdIndex uint32, p command.SetVertexBufferParams) {
	v.vertexBufferEverBound = true
	buf, ok := v.requireBufferUsage(cmdIndex, p.ID, types.BufferUsageVertex, msgBufferUsageContext)
	if !ok {
		return
	}
	_ = buf
	if int(p.Slot) < vertexBufferSlots {
		v.slots.vertexBuffers[p.Slot] = slot{id: p.ID, bound: true}
	}
}

func (v *Validator) onSetIndexBuffer(cmdIndex uint32, p command.SetIndexBufferParams) {
	v.indexBufferEverBound = true
	v.requireBufferUsage(cmdIndex, p.ID, types.BufferUsageIndex, msgBufferUsageContext)
}

func (v *Validator) onDraw(cmdIndex uint32, p command.DrawParams) {
	v.drawCount++
	if !v.checkDrawDispatchState(cmdIndex, PassStateRender, PipelineKindRender, msgDrawOutsidePass) {
		return
	}
	if p.VertexCount == 0 || p.InstanceCount == 0 {
		v.issues.add(CodeZeroCount, msgZeroCount, cmdIndex, nil)
	}
}

func (v *Validator) onDrawIndexed(cmdIndex uint32, p command.DrawIndexedParams) {
	v.drawCount++
	if !v.checkDrawDispatchState(cmdIndex, PassStateRender, PipelineKindRender, msgDrawOutsidePass) {
		return
	}
	if p.IndexCount == 0 || p.InstanceCount == 0 {
		v.issues.add(CodeZeroCount, msgZeroCount, cmdIndex, nil)
	}
}

func (v *Validator) onDispatch(cmdIndex uint32, p command.DispatchParams) {
	v.dispatchCount++
	v.recordMaxWorkgroup(p.X, p.Y, p.Z)

	if !v.checkDrawDispatchState(cmdIndex, PassStateCompute, PipelineKindCompute, msgDispatchOutsidePass) {
		return
	}
	if p.X == 0 || p.Y == 0 || p.Z == 0 {
		v.issues.add(CodeZeroCount, msgZeroCount, cmdIndex, nil)
	}
	if p.X > v.limits.MaxComputeWorkgroupsPerDimension {
		v.issues.add(CodePassMismatch, msgWorkgroupCountX, cmdIndex, nil)
	}
	if p.Y > v.limits.MaxComputeWorkgroupsPerDimension {
		v.issues.add(CodePassMismatch, msgWorkgroupCountY, cmdIndex, nil)
	}
	if p.Z > v.limits.MaxComputeWorkgroupsPerDimension {
		v.issues.add(CodePassMismatch, msgWorkgroupCountZ, cmdIndex, nil)
	}
}

func (v *Validator) recordMaxWorkgroup(x, y, z uint32) {
	if x > v.maxWorkgroup[0] {
		v.maxWorkgroup[0] = x
	}
	if y > v.maxWorkgroup[1] {
		v.maxWorkgroup[1] = y
	}
	if z > v.maxWorkgroup[2] {
		v.maxWorkgroup[2] = z
	}
}

// checkDrawDispatchState implements the state/pipeline checks shared by
// draw, draw_indexed, and dispatch. It returns false once it has
// recorded an E002, so the caller skips the
// count-specific checks that assume valid state.
func (v *Validator) checkDrawDispatchState(cmdIndex uint32, wantState PassState, wantKind PipelineKind, outsideMsg string) bool {
	if v.passState != wantState {
		v.issues.add(CodeStateViolation, outsideMsg, cmdIndex, nil)
		return false
	}
	if !v.pipeline.valid {
		v.issues.add(CodeStateViolation, msgNoBoundPipeline, cmdIndex, nil)
		return false
	}
	if v.pipeline.kind != wantKind {
		v.issues.add(CodeStateViolation, msgPipelineKindMismatch, cmdIndex, nil)
		return false
	}
	return true
}

func (v *Validator) onWriteBuffer(cmdIndex uint32, p command.WriteBufferParams) {
	_, ok := v.requireBufferUsage(cmdIndex, p.ID, types.BufferUsageCopyDst, msgBufferUsageContext)
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ID), p.Data)
	if ok {
		v.bufferWritten[p.ID] = true
	}
}

func (v *Validator) onWriteTimeUniform(cmdIndex uint32, p command.WriteTimeUniformParams) {
	if _, ok := v.requireBufferUsage(cmdIndex, p.ID, types.BufferUsageCopyDst, msgBufferUsageContext); ok {
		v.bufferWritten[p.ID] = true
	}
}

func (v *Validator) onCopyBufferToBuffer(cmdIndex uint32, p command.CopyBufferToBufferParams) {
	if p.SrcID == p.DstID {
		v.issues.add(CodeInvalidDescriptor, msgCopySameBuffer, cmdIndex, ptrU16(p.SrcID))
	}
	v.requireBufferUsage(cmdIndex, p.SrcID, types.BufferUsageCopySrc, msgBufferUsageContext)
	if _, ok := v.requireBufferUsage(cmdIndex, p.DstID, types.BufferUsageCopyDst, msgBufferUsageContext); ok {
		v.bufferWritten[p.DstID] = true
	}
}

func (v *Validator) onCopyTextureToTexture(cmdIndex uint32, p command.CopyTextureToTextureParams) {
	if !isSentinel(p.SrcID) && !v.textures.Contains(p.SrcID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.SrcID))
	}
	if !isSentinel(p.DstID) && !v.textures.Contains(p.DstID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.DstID))
	}
}

func (v *Validator) onCopyExternalImageToTexture(cmdIndex uint32, p command.CopyExternalImageToTextureParams) {
	if !v.imageBitmaps.Contains(p.BitmapID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.BitmapID))
	}
	if !isSentinel(p.TextureID) && !v.textures.Contains(p.TextureID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.TextureID))
	}
}

func (v *Validator) onWriteBufferFromWasm(cmdIndex uint32, p command.WriteBufferFromWasmParams) {
	_, ok := v.requireBufferUsage(cmdIndex, p.BufferID, types.BufferUsageCopyDst, msgBufferUsageContext)
	v.checkMemoryBounds(cmdIndex, ptrU16(p.BufferID), p.Wasm)
	if ok {
		v.bufferWritten[p.BufferID] = true
	}
}

func (v *Validator) onInitWasmModule(cmdIndex uint32, p command.InitWasmModuleParams) {
	if v.wasmModules.Contains(p.ModuleID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ModuleID))
		return
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ModuleID), p.Data)
	if !v.wasmModules.Insert(p.ModuleID, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ModuleID))
	}
}

func (v *Validator) onCallWasmFunc(cmdIndex uint32, p command.CallWasmFuncParams) {
	if !v.wasmModules.Contains(p.ModuleID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ModuleID))
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ModuleID), p.Func)
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ModuleID), p.Args)
}

func (v *Validator) onCreateTypedArray(cmdIndex uint32, p command.CreateTypedArrayParams) {
	if v.typedArrays.Contains(p.ID) {
		v.issues.add(CodeDuplicateID, msgDuplicateID, cmdIndex, ptrU16(p.ID))
		return
	}
	if !v.typedArrays.Insert(p.ID, Resource{CreatedAt: cmdIndex}) {
		v.issues.add(CodeResourceExhausted, msgResourceLimitExceeded, cmdIndex, ptrU16(p.ID))
	}
}

func (v *Validator) onFill(cmdIndex uint32, p command.FillParams) {
	if !v.typedArrays.Contains(p.ArrayID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ArrayID))
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ArrayID), p.Data)
}

func (v *Validator) onFillExpression(cmdIndex uint32, p command.FillExpressionParams) {
	if !v.typedArrays.Contains(p.ArrayID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ArrayID))
	}
	v.checkMemoryBounds(cmdIndex, ptrU16(p.ArrayID), command.PtrRange{Ptr: p.ExprPtr, Len: uint32(p.ExprLen)})
}

func (v *Validator) onWriteBufferFromArray(cmdIndex uint32, p command.WriteBufferFromArrayParams) {
	if !v.typedArrays.Contains(p.ArrayID) {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(p.ArrayID))
	}
	if _, ok := v.requireBufferUsage(cmdIndex, p.BufferID, types.BufferUsageCopyDst, msgBufferUsageContext); ok {
		v.bufferWritten[p.BufferID] = true
	}
}
