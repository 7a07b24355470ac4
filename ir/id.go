package ir

import "github.com/gogpu/shaderconv/spirv"

// IdAllocator hands out monotonically increasing SPIR-V ids. It is a thin
// accessor over the module builder's own id counter rather than an
// independent counter, so the translator never has two sources of truth
// for "what id comes next" — ir and spirv share one allocator.
type IdAllocator struct {
	builder *spirv.ModuleBuilder
}

// NewIdAllocator creates an allocator backed by builder.
func NewIdAllocator(builder *spirv.ModuleBuilder) *IdAllocator {
	return &IdAllocator{builder: builder}
}

// Alloc returns a fresh id.
func (a *IdAllocator) Alloc() uint32 {
	return a.builder.AllocID()
}

// Bound returns the id-bound: one past the highest id issued.
func (a *IdAllocator) Bound() uint32 {
	return a.builder.Bound()
}
