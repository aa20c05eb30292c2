// Package config loads an optional YAML overlay onto the validator's
// default resource limits.
package config

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gpuvalidate/types"
)

// overlay mirrors types.Limits with every field a pointer, so that a
// YAML document overriding only one field leaves the rest untouched.
type overlay struct {
	MaxBufferSize                    *uint64 `yaml:"max_buffer_size"`
	MaxComputeWorkgroupsPerDimension *uint32 `yaml:"max_compute_workgroups_per_dimension"`
	MaxTextureDimension1D            *uint32 `yaml:"max_texture_dimension_1d"`
	MaxTextureDimension2D            *uint32 `yaml:"max_texture_dimension_2d"`
	MaxTextureDimension3D            *uint32 `yaml:"max_texture_dimension_3d"`
	MinUniformBufferOffsetAlignment  *uint32 `yaml:"min_uniform_buffer_offset_alignment"`
	MinStorageBufferOffsetAlignment  *uint32 `yaml:"min_storage_buffer_offset_alignment"`
}

// LoadLimitsYAML reads a YAML document from r and applies it on top of
// types.DefaultLimits, overriding only the fields the document sets.
func LoadLimitsYAML(r io.Reader) (types.Limits, error) {
	limits := types.DefaultLimits()

	data, err := io.ReadAll(r)
	if err != nil {
		return limits, err
	}
	if len(data) == 0 {
		return limits, nil
	}

	var ov overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return limits, err
	}

	if ov.MaxBufferSize != nil {
		limits.MaxBufferSize = *ov.MaxBufferSize
	}
	if ov.MaxComputeWorkgroupsPerDimension != nil {
		limits.MaxComputeWorkgroupsPerDimension = *ov.MaxComputeWorkgroupsPerDimension
	}
	if ov.MaxTextureDimension1D != nil {
		limits.MaxTextureDimension1D = *ov.MaxTextureDimension1D
	}
	if ov.MaxTextureDimension2D != nil {
		limits.MaxTextureDimension2D = *ov.MaxTextureDimension2D
	}
	if ov.MaxTextureDimension3D != nil {
		limits.MaxTextureDimension3D = *ov.MaxTextureDimension3D
	}
	if ov.MinUniformBufferOffsetAlignment != nil {
		limits.MinUniformBufferOffsetAlignment = *ov.MinUniformBufferOffsetAlignment
	}
	if ov.MinStorageBufferOffsetAlignment != nil {
		limits.MinStorageBufferOffsetAlignment = *ov.MinStorageBufferOffsetAlignment
	}

	return limits, nil
}
