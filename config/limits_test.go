package config

import (
	"strings"
	"testing"

	"github.com/gogpu/gpuvalidate/types"
)

func TestLoadLimitsYAMLEmptyReturnsDefaults(t *testing.T) {
	limits, err := LoadLimitsYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limits != types.DefaultLimits() {
		t.Errorf("got %+v, want defaults", limits)
	}
}

func TestLoadLimitsYAMLPartialOverride(t *testing.T) {
	doc := "max_buffer_size: 1024\nmax_texture_dimension_2d: 4096\n"
	limits, err := LoadLimitsYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := types.DefaultLimits()
	if limits.MaxBufferSize != 1024 {
		t.Errorf("MaxBufferSize = %d, want 1024", limits.MaxBufferSize)
	}
	if limits.MaxTextureDimension2D != 4096 {
		t.Errorf("MaxTextureDimension2D = %d, want 4096", limits.MaxTextureDimension2D)
	}
	if limits.MaxComputeWorkgroupsPerDimension != defaults.MaxComputeWorkgroupsPerDimension {
		t.Errorf("unset field MaxComputeWorkgroupsPerDimension changed: got %d, want %d",
			limits.MaxComputeWorkgroupsPerDimension, defaults.MaxComputeWorkgroupsPerDimension)
	}
	if limits.MaxTextureDimension1D != defaults.MaxTextureDimension1D {
		t.Errorf("unset field MaxTextureDimension1D changed")
	}
}

func TestLoadLimitsYAMLInvalidDocument(t *testing.T) {
	_, err := LoadLimitsYAML(strings.NewReader("not: [valid: yaml"))
	if err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestLoadLimitsYAMLAllFieldsOverridden(t *testing.T) {
	doc := strings.Join([]string{
		"max_buffer_size: 1",
		"max_compute_workgroups_per_dimension: 2",
		"max_texture_dimension_1d: 3",
		"max_texture_dimension_2d: 4",
		"max_texture_dimension_3d: 5",
		"min_uniform_buffer_offset_alignment: 6",
		"min_storage_buffer_offset_alignment: 7",
	}, "\n")

	limits, err := LoadLimitsYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := types.Limits{
		MaxBufferSize:                    1,
		MaxComputeWorkgroupsPerDimension: 2,
		MaxTextureDimension1D:            3,
		MaxTextureDimension2D:            4,
		MaxTextureDimension3D:            5,
		MinUniformBufferOffsetAlignment:  6,
		MinStorageBufferOffsetAlignment:  7,
	}
	if limits != want {
		t.Errorf("got %+v, want %+v", limits, want)
	}
}
