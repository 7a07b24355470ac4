package declare

// VertexFormat names the per-component SPIR-V/Vulkan vertex attribute
// format, derived purely from component count.
type VertexFormat int

const (
	FormatR32SFloat VertexFormat = iota + 1
	FormatR32G32SFloat
	FormatR32G32B32SFloat
	FormatR32G32B32A32SFloat
)

// FormatForComponentCount maps a write-mask-derived component count (1-4)
// to its vertex attribute format.
func FormatForComponentCount(count int) VertexFormat {
	switch count {
	case 1:
		return FormatR32SFloat
	case 2:
		return FormatR32G32SFloat
	case 3:
		return FormatR32G32B32SFloat
	default:
		return FormatR32G32B32A32SFloat
	}
}

// VertexAttribute describes one vertex input attribute, derived from a
// vertex shader's `DCL v<n>` INPUT declarations.
type VertexAttribute struct {
	Binding  uint32
	Location uint32
	Offset   uint32
	Format   VertexFormat
}

// DescriptorType names the descriptor-set binding kind. Only combined
// image samplers are produced today (the only SAMPLER DCL this module
// translates).
type DescriptorType int

const (
	DescriptorCombinedImageSampler DescriptorType = iota + 1
)

// ShaderStage names which pipeline stage a descriptor binding belongs to.
type ShaderStage int

const (
	StageVertex ShaderStage = iota + 1
	StageFragment
)

// DescriptorBinding describes one descriptor-set layout binding, derived
// from a pixel shader's `DCL s<n>` SAMPLER declarations.
type DescriptorBinding struct {
	Binding uint32
	Type    DescriptorType
	Stage   ShaderStage
	Count   uint32
}

// Sidecar is the non-SPIR-V metadata a conversion produces alongside the
// module word blob.
type Sidecar struct {
	VertexAttributes   []VertexAttribute
	DescriptorBindings []DescriptorBinding

	// InterfaceIDs collects every input/output variable id that must
	// appear in OpEntryPoint's interface list.
	InterfaceIDs []uint32

	// PositionRegister is the vertex OUTPUT usage index recorded for a
	// POSITION-usage declaration, or -1 if none was seen.
	PositionRegister int
}

// NewSidecar creates an empty sidecar with no position register recorded.
func NewSidecar() *Sidecar {
	return &Sidecar{PositionRegister: -1}
}
