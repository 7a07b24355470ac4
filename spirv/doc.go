// Package spirv provides SPIR-V module assembly: an instruction encoder,
// a section-ordered module builder, and the opcode/enum constants needed
// to emit a binary a Vulkan driver will accept.
//
// # Binary Writer
//
// The package's low-level binary writer constructs SPIR-V modules
// programmatically using ModuleBuilder:
//
//	builder := spirv.NewModuleBuilder(spirv.Version1_3)
//	builder.AddCapability(spirv.CapabilityShader)
//	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	// Add types
//	floatType := builder.AddTypeFloat(32)
//	vec4Type := builder.AddTypeVector(floatType, 4)
//
//	// Build binary
//	binary := builder.Build()
//
//	// Or get the raw word stream directly, e.g. to hand to a disassembler
//	// without a byte round-trip:
//	words := builder.Words()
//
// # SPIR-V Structure
//
// SPIR-V modules consist of:
//   - Header (magic, version, generator, bound, schema)
//   - Capabilities (required features)
//   - Extensions (optional extensions)
//   - Extended instruction imports (GLSL.std.450, etc.)
//   - Memory model (addressing and memory model)
//   - Entry points (shader entry functions)
//   - Execution modes (shader configuration)
//   - Debug information (strings, source, names)
//   - Annotations (decorations)
//   - Types, constants, and global variables
//   - Function declarations, then function definitions
//
// ModuleBuilder keeps one buffer per section above and concatenates them in
// this order on Build, clearing each afterward.
//
// This package knows nothing about any particular shader bytecode format.
// The convert package and its handler packages (ir, declare, constdef,
// arith) drive it one instruction at a time while decoding a legacy token
// stream.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
