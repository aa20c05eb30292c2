// Package types defines the backend-agnostic WebGPU value types that the
// validator reasons about: buffer and texture usage bit masks, texture
// format/dimension tags, and the overridable resource-limit dictionary.
//
// It does not model adapters, backends, or live device negotiation — this
// validator never talks to a GPU, so those concepts have no home here.
package types
