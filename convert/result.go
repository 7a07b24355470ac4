package convert

import (
	"github.com/gogpu/shaderconv/declare"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is one message accumulated during a conversion: an
// unsupported opcode, a register read that never resolved, a type the
// type table could not emit.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Result is everything one shader conversion produces: the SPIR-V word
// blob, the sidecar metadata a Vulkan pipeline needs alongside it, and
// whatever diagnostics were logged along the way.
type Result struct {
	SPIRV []byte

	VertexAttributes   []declare.VertexAttribute
	DescriptorBindings []declare.DescriptorBinding

	Diagnostics []Diagnostic

	// ModuleHandle is whatever ModuleFactory.CreateModule returned. It is
	// zero if no factory was configured or module creation failed; the
	// rest of Result is still populated in that case.
	ModuleHandle uint64
}

// ModuleFactory stands in for the graphics driver: given the finished
// SPIR-V word blob, it creates a driver-side shader module handle.
type ModuleFactory interface {
	CreateModule(spirvWords []byte) (handle uint64, err error)
}
