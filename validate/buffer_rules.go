package validate

import "github.com/gogpu/gpuvalidate/types"

// validateBufferUsageAtCreation implements the E006/W004 rules checked
// when a buffer is created.
func (v *Validator) validateBufferUsageAtCreation(cmdIndex uint32, id uint16, usage types.BufferUsage, size uint32) {
	rid := ptrU16(id)

	switch {
	case usage == 0:
		v.issues.add(CodeInvalidDescriptor, msgBufferUsageZero, cmdIndex, rid)
	case usage.Has(types.BufferUsageMapRead) && usage.Has(types.BufferUsageMapWrite):
		v.issues.add(CodeInvalidDescriptor, msgBufferUsageExclusive, cmdIndex, rid)
	case usage.Has(types.BufferUsageMapRead) && usage&^(types.BufferUsageMapRead|types.BufferUsageCopyDst) != 0:
		v.issues.add(CodeInvalidDescriptor, msgBufferUsageCombo, cmdIndex, rid)
	case usage.Has(types.BufferUsageMapWrite) && usage&^(types.BufferUsageMapWrite|types.BufferUsageCopySrc) != 0:
		v.issues.add(CodeInvalidDescriptor, msgBufferUsageCombo, cmdIndex, rid)
	}

	if size == 0 {
		v.issues.add(CodeInvalidDescriptor, msgBufferSizeZero, cmdIndex, rid)
	}
	if uint64(size) > v.limits.MaxBufferSize {
		v.issues.add(CodePassMismatch, msgBufferSizeLimit, cmdIndex, rid)
	}

	if usage.Has(types.BufferUsageUniform) && size%16 != 0 {
		v.issues.add(CodeNullPointer, msgUniformAlignment, cmdIndex, rid)
	}
	if usage.Has(types.BufferUsageStorage) && size%4 != 0 {
		v.issues.add(CodeNullPointer, msgStorageAlignment, cmdIndex, rid)
	}
}

// requireBufferUsage looks up id and, if present, requires it to carry
// mask. A missing id emits E001; a
// present buffer lacking the required bit emits E006. It returns the
// buffer and whether the lookup succeeded, so callers needing the
// record (e.g. copy's same-buffer check) don't look it up twice.
func (v *Validator) requireBufferUsage(cmdIndex uint32, id uint16, mask types.BufferUsage, msg string) (types.Buffer, bool) {
	buf, ok := v.buffers.Get(id)
	if !ok {
		v.issues.add(CodeMissingResource, msgMissingResource, cmdIndex, ptrU16(id))
		return types.Buffer{}, false
	}
	if !buf.Usage.Has(mask) {
		v.issues.add(CodeInvalidDescriptor, msg, cmdIndex, ptrU16(id))
	}
	return buf, true
}
