package command

import "encoding/binary"

// readU16 decodes a little-endian u16 at offset. The caller must have
// already established offset+2 <= len(data).
func readU16(data []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(data[offset : offset+2])
}

// readU32 decodes a little-endian u32 at offset. The caller must have
// already established offset+4 <= len(data).
func readU32(data []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(data[offset : offset+4])
}
