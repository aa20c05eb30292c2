package validate

import "github.com/gogpu/gpuvalidate/command"

// suspiciousDescriptorThreshold is the W006 heuristic. It is not part of
// any external contract and may be tuned without affecting correctness.
const suspiciousDescriptorThreshold = 256

// addU32Checked adds a and b without widening to a larger integer type,
// reporting overflow via the wraparound that addition of unsigned
// integers produces.
func addU32Checked(a, b uint32) (sum uint32, ok bool) {
	sum = a + b
	return sum, sum >= a
}

// checkMemoryBounds implements the E004/W004 rules shared by every
// opcode that carries a {ptr, len} reference into WASM memory. It
// returns false if an E004 was emitted.
func (v *Validator) checkMemoryBounds(cmdIndex uint32, resourceID *uint16, pr command.PtrRange) bool {
	end, ok := addU32Checked(pr.Ptr, pr.Len)
	if !ok {
		v.issues.add(CodeMemoryBounds, msgMemoryBoundsOverflow, cmdIndex, resourceID)
		return false
	}
	if v.wasmMemorySize > 0 && end > v.wasmMemorySize {
		v.issues.add(CodeMemoryBounds, msgMemoryBoundsExceeded, cmdIndex, resourceID)
		return false
	}
	if v.wasmMemorySize > 0 && pr.Ptr == 0 && pr.Len > 0 {
		v.issues.add(CodeNullPointer, msgNullPointer, cmdIndex, resourceID)
	}
	return true
}

// checkSuspiciousDescriptor emits W006 when a descriptor blob's
// declared length exceeds the heuristic threshold.
func (v *Validator) checkSuspiciousDescriptor(cmdIndex uint32, resourceID *uint16, pr command.PtrRange) {
	if pr.Len > suspiciousDescriptorThreshold {
		v.issues.add(CodeSuspiciousDesc, msgSuspiciousDescriptor, cmdIndex, resourceID)
	}
}
