// Package spirv provides low-level SPIR-V module assembly: an instruction
// encoder, a section-ordered module builder, and the opcode/enum constants
// needed to emit a binary that a Vulkan driver will accept.
//
// It knows nothing about any particular shader source format. Callers drive
// the builder instruction by instruction; this package is responsible for
// word-count packing, string packing, and assembling sections in the order
// the SPIR-V specification mandates.
package spirv

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// SPIR-V magic number and header constants.
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator
)

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes used by this module's emission paths.
const (
	OpNop                OpCode = 0
	OpSourceContinued    OpCode = 2
	OpSource             OpCode = 3
	OpSourceExtension    OpCode = 4
	OpName               OpCode = 5
	OpMemberName         OpCode = 6
	OpString             OpCode = 7
	OpExtension          OpCode = 10
	OpExtInstImport      OpCode = 11
	OpExtInst            OpCode = 12
	OpMemoryModel        OpCode = 14
	OpEntryPoint         OpCode = 15
	OpExecutionMode      OpCode = 16
	OpCapability         OpCode = 17
	OpTypeVoid           OpCode = 19
	OpTypeBool           OpCode = 20
	OpTypeInt            OpCode = 21
	OpTypeFloat          OpCode = 22
	OpTypeVector         OpCode = 23
	OpTypeMatrix         OpCode = 24
	OpTypeImage          OpCode = 25
	OpTypeSampler        OpCode = 26
	OpTypeSampledImage   OpCode = 27
	OpTypeArray          OpCode = 28
	OpTypeRuntimeArray   OpCode = 29
	OpTypeStruct         OpCode = 30
	OpTypePointer        OpCode = 32
	OpTypeFunction       OpCode = 33
	OpConstantTrue       OpCode = 41
	OpConstantFalse      OpCode = 42
	OpConstant           OpCode = 43
	OpConstantComposite  OpCode = 44
	OpFunction           OpCode = 54
	OpFunctionParameter  OpCode = 55
	OpFunctionEnd        OpCode = 56
	OpFunctionCall       OpCode = 57
	OpVariable           OpCode = 59
	OpLoad               OpCode = 61
	OpStore              OpCode = 62
	OpAccessChain        OpCode = 65
	OpDecorate           OpCode = 71
	OpMemberDecorate     OpCode = 72
	OpDecorationGroup    OpCode = 73
	OpGroupDecorate      OpCode = 74
	OpGroupMemberDecorate OpCode = 75
	OpVectorShuffle      OpCode = 79
	OpCompositeConstruct OpCode = 80
	OpCompositeExtract   OpCode = 81
	OpSampledImage       OpCode = 86
	OpImageSampleImplicitLod OpCode = 87
	OpImageFetch         OpCode = 95
	OpFNegate            OpCode = 127
	OpIAdd               OpCode = 128
	OpFAdd               OpCode = 129
	OpISub               OpCode = 130
	OpFSub               OpCode = 131
	OpIMul               OpCode = 132
	OpFMul               OpCode = 133
	OpDot                OpCode = 148
	OpLogicalAnd         OpCode = 167
	OpSelect             OpCode = 169
	OpLabel              OpCode = 248
	OpBranch             OpCode = 249
	OpBranchConditional  OpCode = 250
	OpKill               OpCode = 252
	OpReturn             OpCode = 253
	OpReturnValue        OpCode = 254
	OpSelectionMerge     OpCode = 247
	OpLoopMerge          OpCode = 246
)

// Capability represents a SPIR-V capability.
type Capability uint32

const (
	CapabilityShader  Capability = 1
	CapabilitySampled1D Capability = 43
)

// AddressingModel selects the memory addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical AddressingModel = 0
)

// MemoryModel selects the client memory model.
type MemoryModel uint32

const (
	MemoryModelGLSL450 MemoryModel = 1
)

// ExecutionModel selects the shader stage an entry point targets.
type ExecutionModel uint32

const (
	ExecutionModelVertex   ExecutionModel = 0
	ExecutionModelFragment ExecutionModel = 4
)

// ExecutionMode further qualifies an entry point's execution.
type ExecutionMode uint32

const (
	ExecutionModeOriginUpperLeft ExecutionMode = 7
	ExecutionModeOriginLowerLeft ExecutionMode = 8
)

// StorageClass represents the storage class of a pointer type or variable.
type StorageClass uint32

const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassPushConstant    StorageClass = 9
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// Dim is the dimensionality of an OpTypeImage.
type Dim uint32

const (
	Dim1D   Dim = 0
	Dim2D   Dim = 1
	Dim3D   Dim = 2
	DimCube Dim = 3
)

// FunctionControl is a mask of function-call optimization hints.
type FunctionControl uint32

const (
	FunctionControlNone FunctionControl = 0
)

// SelectionControl is a mask of selection-merge hints.
type SelectionControl uint32

const (
	SelectionControlNone SelectionControl = 0
)

// LoopControl is a mask of loop-merge hints.
type LoopControl uint32

const (
	LoopControlNone LoopControl = 0
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

const (
	DecorationBlock         Decoration = 2
	DecorationRowMajor      Decoration = 4
	DecorationColMajor      Decoration = 5
	DecorationArrayStride   Decoration = 6
	DecorationMatrixStride  Decoration = 7
	DecorationBuiltIn       Decoration = 11
	DecorationLocation      Decoration = 30
	DecorationBinding       Decoration = 33
	DecorationDescriptorSet Decoration = 34
	DecorationOffset        Decoration = 35
)

// ImageFormat is the texel format of a storage image. Sampled images use
// ImageFormatUnknown, which is all this module ever emits (§4.3 never
// declares a concrete storage format for DCL TEXTURE).
type ImageFormat uint32

const ImageFormatUnknown ImageFormat = 0
