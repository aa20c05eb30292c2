package types

import "testing"

func TestBufferUsageHasAndAny(t *testing.T) {
	u := BufferUsageMapRead | BufferUsageCopyDst

	if !u.Has(BufferUsageMapRead) {
		t.Errorf("expected Has(MapRead) to be true")
	}
	if u.Has(BufferUsageMapRead | BufferUsageVertex) {
		t.Errorf("Has should require every bit in the mask")
	}
	if !u.Any(BufferUsageMapRead | BufferUsageVertex) {
		t.Errorf("Any should report true when at least one bit matches")
	}
	if u.Any(BufferUsageVertex | BufferUsageStorage) {
		t.Errorf("Any should report false when no bit matches")
	}
}

func TestTextureUsageHasAndValid(t *testing.T) {
	u := TextureUsageTextureBinding | TextureUsageRenderAttachment

	if !u.Has(TextureUsageTextureBinding) {
		t.Errorf("expected Has(TextureBinding) to be true")
	}
	if u.Has(TextureUsageTextureBinding | TextureUsageStorageBinding) {
		t.Errorf("Has should require every bit in the mask")
	}
	if !u.Valid() {
		t.Errorf("expected a combination of recognized bits to be valid")
	}
	if (TextureUsage(0x80)).Valid() {
		t.Errorf("expected an unrecognized bit to be invalid")
	}
}

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.MaxBufferSize == 0 {
		t.Errorf("expected a non-zero default MaxBufferSize")
	}
	if limits.MaxComputeWorkgroupsPerDimension != 65535 {
		t.Errorf("MaxComputeWorkgroupsPerDimension = %d, want 65535", limits.MaxComputeWorkgroupsPerDimension)
	}
}
