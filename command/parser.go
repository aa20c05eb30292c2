package command

import (
	"fmt"

	"github.com/gogpu/gpuvalidate/internal/obslog"
)

// MaxCommands is the hard cap on commands accepted from a single stream.
// The parser treats reaching it without a terminal end opcode as
// malformed input.
const MaxCommands = 10000

// ParseErrorKind distinguishes the two structural parse failures the
// parser can raise.
type ParseErrorKind int

const (
	// ParseErrorInvalidFormat covers header/length disagreement and a
	// stream that never reaches a terminal end opcode.
	ParseErrorInvalidFormat ParseErrorKind = iota
	// ParseErrorTruncated covers a payload that runs past the declared
	// total length.
	ParseErrorTruncated
)

// ParseError reports a structural failure to decode a command stream.
// Unlike validation diagnostics (package validate), a ParseError aborts
// decoding entirely — no partial command list is produced.
type ParseError struct {
	Kind    ParseErrorKind
	Offset  int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorInvalidFormat:
		return fmt.Sprintf("invalid_format at offset %d: %s", e.Offset, e.Message)
	case ParseErrorTruncated:
		return fmt.Sprintf("truncated at offset %d: %s", e.Offset, e.Message)
	default:
		return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
	}
}

// IsParseError returns true if err is a *ParseError of the given kind.
func IsParseError(err error, kind ParseErrorKind) bool {
	pe, ok := err.(*ParseError)
	return ok && pe.Kind == kind
}

const headerSize = 8

// Parse decodes a length-prefixed command stream into an ordered command
// sequence. A stream shorter than the header yields an empty,
// error-free sequence (tolerating trivial truncation); a header whose
// total_len disagrees with the buffer, or a stream that never reaches the
// end opcode within MaxCommands iterations, fails with *ParseError.
func Parse(data []byte) ([]Command, error) {
	log := obslog.Logger()

	if len(data) < headerSize {
		return []Command{}, nil
	}

	totalLen := int(readU32(data, 0))
	if totalLen > len(data) {
		log.Error("parse failed", "kind", "invalid_format", "total_len", totalLen, "buf_len", len(data))
		return nil, &ParseError{
			Kind:    ParseErrorInvalidFormat,
			Offset:  0,
			Message: "total_len exceeds buffer length",
		}
	}

	commands := make([]Command, 0, 64)
	pos := headerSize

	for i := 0; i < MaxCommands; i++ {
		if pos >= totalLen {
			log.Error("parse failed", "kind", "invalid_format", "reason", "no terminal end opcode")
			return nil, &ParseError{
				Kind:    ParseErrorInvalidFormat,
				Offset:  pos,
				Message: "stream ended without a terminal end opcode",
			}
		}

		op := Opcode(data[pos])
		pos++

		params, consumed, err := decodePayload(data[:totalLen], pos, op)
		if err != nil {
			log.Error("parse failed", "error", err)
			return nil, err
		}

		commands = append(commands, Command{Index: uint32(i), Opcode: op, Params: params})
		pos += consumed

		if op == OpEnd {
			log.Debug("parse done", "commands", len(commands))
			return commands, nil
		}
	}

	log.Warn("parse stopped at command cap without end opcode", "cap", MaxCommands)
	return nil, &ParseError{
		Kind:    ParseErrorInvalidFormat,
		Offset:  pos,
		Message: "command cap reached without a terminal end opcode",
	}
}

// decodePayload reads and decodes the payload for op starting at pos,
// returning the typed Params and the number of bytes consumed (not
// counting the opcode tag byte already consumed by the caller).
func decodePayload(data []byte, pos int, op Opcode) (Params, int, error) {
	if op == OpExecuteBundles {
		return decodeExecuteBundles(data, pos)
	}
	if op == OpFillExpression {
		return decodeFillExpression(data, pos)
	}

	size, ok := fixedPayloadSize(op)
	if !ok {
		return nil, 0, &ParseError{Kind: ParseErrorInvalidFormat, Offset: pos, Message: "unknown opcode"}
	}
	if pos+size > len(data) {
		return nil, 0, &ParseError{Kind: ParseErrorTruncated, Offset: pos, Message: "payload runs past buffer"}
	}

	params := decodeFixedPayload(data, pos, op, size)
	return params, size, nil
}

func decodeExecuteBundles(data []byte, pos int) (Params, int, error) {
	if pos+1 > len(data) {
		return nil, 0, &ParseError{Kind: ParseErrorTruncated, Offset: pos, Message: "execute_bundles count byte missing"}
	}
	count := int(data[pos])
	total := 1 + 2*count
	if pos+total > len(data) {
		return nil, 0, &ParseError{Kind: ParseErrorTruncated, Offset: pos, Message: "execute_bundles ids run past buffer"}
	}
	ids := make([]uint16, count)
	for i := 0; i < count; i++ {
		ids[i] = readU16(data, pos+1+2*i)
	}
	return ExecuteBundlesParams{BundleIDs: ids}, total, nil
}

func decodeFillExpression(data []byte, pos int) (Params, int, error) {
	const size = 17
	if pos+size > len(data) {
		return nil, 0, &ParseError{Kind: ParseErrorTruncated, Offset: pos, Message: "fill_expression payload runs past buffer"}
	}
	p := FillExpressionParams{
		ArrayID: readU16(data, pos),
		Offset:  readU32(data, pos+2),
		Count:   readU32(data, pos+6),
		Stride:  data[pos+10],
		ExprPtr: readU32(data, pos+11),
		ExprLen: readU16(data, pos+15),
	}
	return p, size, nil
}

// decodeFixedPayload decodes every opcode with a known fixed payload
// size. size has already been bounds-checked by the caller.
func decodeFixedPayload(data []byte, pos int, op Opcode, size int) Params {
	if createResourceOpcodes[op] {
		return CreateResourceParams{
			ID:   readU16(data, pos),
			Desc: PtrRange{Ptr: readU32(data, pos+2), Len: readU32(data, pos+6)},
		}
	}

	switch op {
	case OpCreateBuffer:
		return CreateBufferParams{ID: readU16(data, pos), Size: readU32(data, pos+2), Usage: data[pos+6]}
	case OpCreateShader:
		return CreateShaderParams{ID: readU16(data, pos), Code: PtrRange{Ptr: readU32(data, pos+2), Len: readU32(data, pos+6)}}
	case OpCreateBindGroup:
		return CreateBindGroupParams{
			ID:       readU16(data, pos),
			LayoutID: readU16(data, pos+2),
			Entries:  PtrRange{Ptr: readU32(data, pos+4), Len: readU32(data, pos+8)},
		}
	case OpCreateTextureView:
		return CreateTextureViewParams{
			ID:        readU16(data, pos),
			TextureID: readU16(data, pos+2),
			Desc:      PtrRange{Ptr: readU32(data, pos+4), Len: readU32(data, pos+8)},
		}
	case OpBeginRenderPass:
		return BeginRenderPassParams{
			ColorID: readU16(data, pos),
			LoadOp:  data[pos+2],
			StoreOp: data[pos+3],
			DepthID: readU16(data, pos+4),
		}
	case OpBeginComputePass, OpEndPass, OpSubmit, OpEnd:
		return nil
	case OpSetPipeline:
		return SetPipelineParams{ID: readU16(data, pos)}
	case OpSetBindGroup:
		return SetBindGroupParams{Slot: data[pos], ID: readU16(data, pos+1)}
	case OpSetVertexBuffer:
		return SetVertexBufferParams{Slot: data[pos], ID: readU16(data, pos+1)}
	case OpSetIndexBuffer:
		return SetIndexBufferParams{ID: readU16(data, pos), Format: data[pos+2]}
	case OpDraw:
		return DrawParams{
			VertexCount:   readU32(data, pos),
			InstanceCount: readU32(data, pos+4),
			FirstVertex:   readU32(data, pos+8),
			FirstInstance: readU32(data, pos+12),
		}
	case OpDrawIndexed:
		return DrawIndexedParams{
			IndexCount:    readU32(data, pos),
			InstanceCount: readU32(data, pos+4),
			FirstIndex:    readU32(data, pos+8),
			BaseVertex:    readU32(data, pos+12),
			FirstInstance: readU32(data, pos+16),
		}
	case OpDispatch:
		return DispatchParams{X: readU32(data, pos), Y: readU32(data, pos+4), Z: readU32(data, pos+8)}
	case OpWriteBuffer:
		return WriteBufferParams{
			ID:     readU16(data, pos),
			Offset: readU32(data, pos+2),
			Data:   PtrRange{Ptr: readU32(data, pos+6), Len: readU32(data, pos+10)},
		}
	case OpWriteTimeUniform:
		return WriteTimeUniformParams{ID: readU16(data, pos), Offset: readU32(data, pos+2), Size: readU16(data, pos+6)}
	case OpCopyBufferToBuffer:
		return CopyBufferToBufferParams{
			SrcID:     readU16(data, pos),
			SrcOffset: readU32(data, pos+2),
			DstID:     readU16(data, pos+6),
			DstOffset: readU32(data, pos+8),
			Size:      readU32(data, pos+12),
		}
	case OpCopyTextureToTexture:
		return CopyTextureToTextureParams{
			SrcID:  readU16(data, pos),
			DstID:  readU16(data, pos+2),
			Width:  readU16(data, pos+4),
			Height: readU16(data, pos+6),
		}
	case OpCopyExternalImageToTexture:
		return CopyExternalImageToTextureParams{
			BitmapID:  readU16(data, pos),
			TextureID: readU16(data, pos+2),
			MipLevel:  data[pos+4],
			OriginX:   readU16(data, pos+5),
			OriginY:   readU16(data, pos+7),
		}
	case OpWriteBufferFromWasm:
		return WriteBufferFromWasmParams{
			BufferID:     readU16(data, pos),
			BufferOffset: readU32(data, pos+2),
			Wasm:         PtrRange{Ptr: readU32(data, pos+6), Len: readU32(data, pos+10)},
		}
	case OpInitWasmModule:
		return InitWasmModuleParams{
			ModuleID: readU16(data, pos),
			Data:     PtrRange{Ptr: readU32(data, pos+2), Len: readU32(data, pos+6)},
		}
	case OpCallWasmFunc:
		return CallWasmFuncParams{
			CallID:   readU16(data, pos),
			ModuleID: readU16(data, pos+2),
			Func:     PtrRange{Ptr: readU32(data, pos+4), Len: readU32(data, pos+8)},
			Args:     PtrRange{Ptr: readU32(data, pos+12), Len: readU32(data, pos+16)},
		}
	case OpCreateTypedArray:
		return CreateTypedArrayParams{ID: readU16(data, pos), ArrayType: data[pos+2], Size: readU32(data, pos+3)}
	case OpFillRandom, OpFillConstant:
		return FillParams{
			ArrayID: readU16(data, pos),
			Offset:  readU32(data, pos+2),
			Count:   readU32(data, pos+6),
			Stride:  data[pos+10],
			Data:    PtrRange{Ptr: readU32(data, pos+11), Len: 0},
		}
	case OpWriteBufferFromArray:
		return WriteBufferFromArrayParams{
			BufferID:     readU16(data, pos),
			BufferOffset: readU32(data, pos+2),
			ArrayID:      readU16(data, pos+6),
		}
	default:
		return nil
	}
}
