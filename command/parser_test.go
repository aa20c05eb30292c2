package command

import (
	"encoding/binary"
	"testing"
)

// streamBuilder assembles a raw command-buffer byte stream for parser
// tests. It is test-only scaffolding, not part of the producer contract.
type streamBuilder struct {
	body []byte
}

func newStreamBuilder() *streamBuilder {
	return &streamBuilder{}
}

func (b *streamBuilder) op(op Opcode) *streamBuilder {
	b.body = append(b.body, byte(op))
	return b
}

func (b *streamBuilder) u8(v uint8) *streamBuilder {
	b.body = append(b.body, v)
	return b
}

func (b *streamBuilder) u16(v uint16) *streamBuilder {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	b.body = append(b.body, buf[:]...)
	return b
}

func (b *streamBuilder) u32(v uint32) *streamBuilder {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.body = append(b.body, buf[:]...)
	return b
}

func (b *streamBuilder) createBuffer(id uint16, size uint32, usage uint8) *streamBuilder {
	return b.op(OpCreateBuffer).u16(id).u32(size).u8(usage)
}

func (b *streamBuilder) createShader(id uint16, ptr, length uint32) *streamBuilder {
	return b.op(OpCreateShader).u16(id).u32(ptr).u32(length)
}

func (b *streamBuilder) createRenderPipeline(id uint16) *streamBuilder {
	return b.op(OpCreateRenderPipeline).u16(id).u32(0).u32(0)
}

func (b *streamBuilder) beginRenderPass(colorID uint16, loadOp, storeOp uint8, depthID uint16) *streamBuilder {
	return b.op(OpBeginRenderPass).u16(colorID).u8(loadOp).u8(storeOp).u16(depthID)
}

func (b *streamBuilder) setPipeline(id uint16) *streamBuilder {
	return b.op(OpSetPipeline).u16(id)
}

func (b *streamBuilder) draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) *streamBuilder {
	return b.op(OpDraw).u32(vertexCount).u32(instanceCount).u32(firstVertex).u32(firstInstance)
}

func (b *streamBuilder) endPass() *streamBuilder { return b.op(OpEndPass) }
func (b *streamBuilder) submit() *streamBuilder  { return b.op(OpSubmit) }
func (b *streamBuilder) end() *streamBuilder     { return b.op(OpEnd) }

// build prefixes the accumulated body with an 8-byte header whose first
// four bytes are the little-endian total length of the whole stream.
func (b *streamBuilder) build() []byte {
	total := headerSize + len(b.body)
	out := make([]byte, headerSize, total)
	binary.LittleEndian.PutUint32(out[0:4], uint32(total))
	return append(out, b.body...)
}

func TestParseShortBufferYieldsEmptySequence(t *testing.T) {
	cmds, err := Parse([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("expected empty sequence, got %d commands", len(cmds))
	}
}

func TestParseTotalLenExceedsBufferFails(t *testing.T) {
	data := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(data[0:4], 1000)
	_, err := Parse(data)
	if !IsParseError(err, ParseErrorInvalidFormat) {
		t.Fatalf("expected invalid_format error, got %v", err)
	}
}

func TestParseNoTerminalEndFails(t *testing.T) {
	data := newStreamBuilder().createBuffer(0, 256, 0x20).body
	total := headerSize + len(data)
	stream := make([]byte, headerSize, total)
	binary.LittleEndian.PutUint32(stream[0:4], uint32(total))
	stream = append(stream, data...)

	_, err := Parse(stream)
	if !IsParseError(err, ParseErrorInvalidFormat) {
		t.Fatalf("expected invalid_format error, got %v", err)
	}
}

func TestParseTruncatedPayloadFails(t *testing.T) {
	b := newStreamBuilder().createBuffer(0, 256, 0x20)
	stream := b.build()
	// Cut the stream mid-payload and make total_len match the cut length, so
	// the header agrees with the buffer but the payload runs past total_len.
	short := stream[:len(stream)-2]
	binary.LittleEndian.PutUint32(short[0:4], uint32(len(short)))
	_, err := Parse(short)
	if !IsParseError(err, ParseErrorTruncated) {
		t.Fatalf("expected truncated error, got %v", err)
	}
}

func TestParseMinimalValidRenderSequence(t *testing.T) {
	stream := newStreamBuilder().
		createBuffer(0, 256, 0x20).
		createShader(0, 0, 100).
		createRenderPipeline(0).
		beginRenderPass(0xFFFF, 1, 1, 0xFFFF).
		setPipeline(0).
		draw(3, 1, 0, 0).
		endPass().
		submit().
		end().
		build()

	cmds, err := Parse(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmds) != 9 {
		t.Fatalf("expected 9 commands, got %d", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.Index != uint32(i) {
			t.Errorf("command %d: index = %d, want %d", i, cmd.Index, i)
		}
	}

	buf, ok := cmds[0].Params.(CreateBufferParams)
	if !ok {
		t.Fatalf("command 0: params type = %T, want CreateBufferParams", cmds[0].Params)
	}
	if buf.ID != 0 || buf.Size != 256 || buf.Usage != 0x20 {
		t.Errorf("command 0: got %+v", buf)
	}

	draw, ok := cmds[5].Params.(DrawParams)
	if !ok {
		t.Fatalf("command 5: params type = %T, want DrawParams", cmds[5].Params)
	}
	if draw.VertexCount != 3 || draw.InstanceCount != 1 {
		t.Errorf("command 5: got %+v", draw)
	}
}

func TestParseExecuteBundlesVariableLength(t *testing.T) {
	b := newStreamBuilder()
	b.op(OpExecuteBundles).u8(2).u16(10).u16(20)
	b.end()
	stream := b.build()

	cmds, err := Parse(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eb, ok := cmds[0].Params.(ExecuteBundlesParams)
	if !ok {
		t.Fatalf("params type = %T, want ExecuteBundlesParams", cmds[0].Params)
	}
	if len(eb.BundleIDs) != 2 || eb.BundleIDs[0] != 10 || eb.BundleIDs[1] != 20 {
		t.Errorf("got %+v", eb)
	}
}

func TestParseFillExpression(t *testing.T) {
	b := newStreamBuilder()
	b.op(OpFillExpression).u16(1).u32(0).u32(4).u8(4).u32(100).u16(8)
	b.end()
	stream := b.build()

	cmds, err := Parse(stream)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fe, ok := cmds[0].Params.(FillExpressionParams)
	if !ok {
		t.Fatalf("params type = %T, want FillExpressionParams", cmds[0].Params)
	}
	if fe.ArrayID != 1 || fe.Count != 4 || fe.Stride != 4 || fe.ExprPtr != 100 || fe.ExprLen != 8 {
		t.Errorf("got %+v", fe)
	}
}

func TestOpcodeStringRoundTrip(t *testing.T) {
	cases := []struct {
		op   Opcode
		want string
	}{
		{OpCreateBuffer, "create_buffer"},
		{OpDraw, "draw"},
		{OpEnd, "end"},
		{Opcode(255), "unknown_opcode"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("Opcode(%d).String() = %q, want %q", c.op, got, c.want)
		}
	}
}
