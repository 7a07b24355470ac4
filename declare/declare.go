package declare

import (
	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// Declarer dispatches DCL instructions for one shader conversion, emitting
// OpVariable declarations and populating the sidecar as a side effect.
type Declarer struct {
	builder *spirv.ModuleBuilder
	types   *ir.TypeTable
	regs    *ir.RegisterMap
	Sidecar *Sidecar

	nextVertexLocation   uint32
	nextSamplerBinding   uint32
	interpolantComponent uint32 // running TEXCOORD pixel-input component count; restarts past four components; no location is assigned from it

	warn func(msg string)
}

// NewDeclarer creates a declaration handler sharing state with the rest of
// the conversion.
func NewDeclarer(builder *spirv.ModuleBuilder, types *ir.TypeTable, regs *ir.RegisterMap, warn func(string)) *Declarer {
	return &Declarer{
		builder: builder,
		types:   types,
		regs:    regs,
		Sidecar: NewSidecar(),
		warn:    warn,
	}
}

func componentCountOf(writeMask uint32) int {
	switch writeMask {
	case 0b0001:
		return 1
	case 0b0011:
		return 2
	case 0b0111:
		return 3
	case 0b1111:
		return 4
	default:
		return token.PopCount4(writeMask)
	}
}

// variableType resolves the pointer type for a register declaration:
// scalar Float for component count 1, Vector<Float,N> otherwise.
func (d *Declarer) variableType(storage spirv.StorageClass, componentCount int) (pointerType uint32, pointee uint32) {
	if componentCount <= 1 {
		pointee = d.types.IDFor(ir.TypeDescription{Primary: ir.KindFloat})
	} else {
		pointee = d.types.IDFor(ir.TypeDescription{
			Primary: ir.KindVector, Secondary: ir.KindFloat, ComponentCount: uint32(componentCount),
		})
	}
	if pointee == 0 {
		return 0, 0
	}
	pointerType = d.types.IDFor(ir.TypeDescription{
		Primary: ir.KindPointer, Storage: storage, Arguments: []uint32{pointee},
	})
	return pointerType, pointee
}

// DeclarePixel processes one pixel-shader DCL: usageToken carries usage
// and usage index, registerToken carries the destination register.
func (d *Declarer) DeclarePixel(usageToken, registerToken uint32) {
	usage := token.UsageValue(usageToken)
	regType := token.DecodeRegisterType(registerToken)
	regNumber := token.RegisterNumber(registerToken)
	componentCount := componentCountOf(token.WriteMask(registerToken))

	switch regType {
	case token.RegInput:
		pointerType, pointee := d.variableType(spirv.StorageClassInput, componentCount)
		if pointerType == 0 {
			d.warnf("DCL pixel INPUT: unsupported component count")
			return
		}
		id := d.builder.AddVariable(pointerType, spirv.StorageClassInput)
		d.annotatePointer(id, spirv.StorageClassInput, pointee)
		d.regs.Bind(regType, regNumber, id)
		d.Sidecar.InterfaceIDs = append(d.Sidecar.InterfaceIDs, id)

		if usage == token.UsageTexCoord {
			d.interpolantComponent += uint32(componentCount)
			if d.interpolantComponent > 4 {
				d.interpolantComponent = uint32(componentCount)
			}
		}

	case token.RegTexture:
		floatType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindFloat})
		imageType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindImage, Arguments: []uint32{floatType}})
		pointerType := d.types.IDFor(ir.TypeDescription{
			Primary: ir.KindPointer, Storage: spirv.StorageClassImage, Arguments: []uint32{imageType},
		})
		if pointerType == 0 {
			d.warnf("DCL pixel TEXTURE: type emission failed")
			return
		}
		id := d.builder.AddVariable(pointerType, spirv.StorageClassImage)
		d.annotatePointer(id, spirv.StorageClassImage, imageType)
		d.regs.Bind(regType, regNumber, id)

	case token.RegSampler:
		samplerType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindSampler})
		pointerType := d.types.IDFor(ir.TypeDescription{
			Primary: ir.KindPointer, Storage: spirv.StorageClassUniform, Arguments: []uint32{samplerType},
		})
		if pointerType == 0 {
			d.warnf("DCL pixel SAMPLER: type emission failed")
			return
		}
		id := d.builder.AddVariable(pointerType, spirv.StorageClassUniform)
		d.annotatePointer(id, spirv.StorageClassUniform, samplerType)
		d.regs.Bind(regType, regNumber, id)
		d.builder.AddDecorate(id, spirv.DecorationDescriptorSet, 0)
		d.builder.AddDecorate(id, spirv.DecorationBinding, d.nextSamplerBinding)

		d.Sidecar.DescriptorBindings = append(d.Sidecar.DescriptorBindings, DescriptorBinding{
			Binding: d.nextSamplerBinding,
			Type:    DescriptorCombinedImageSampler,
			Stage:   StageFragment,
			Count:   1,
		})
		d.nextSamplerBinding++

	default:
		d.warnf("DCL pixel: unsupported register type")
	}
}

// DeclareVertex processes one vertex-shader DCL.
func (d *Declarer) DeclareVertex(usageToken, registerToken uint32) {
	usage := token.UsageValue(usageToken)
	usageIndex := token.UsageIndex(usageToken)
	regType := token.DecodeRegisterType(registerToken)
	regNumber := token.RegisterNumber(registerToken)
	componentCount := componentCountOf(token.WriteMask(registerToken))

	switch regType {
	case token.RegInput:
		pointerType, pointee := d.variableType(spirv.StorageClassInput, componentCount)
		if pointerType == 0 {
			d.warnf("DCL vertex INPUT: unsupported component count")
			return
		}
		id := d.builder.AddVariable(pointerType, spirv.StorageClassInput)
		d.annotatePointer(id, spirv.StorageClassInput, pointee)
		d.regs.Bind(regType, regNumber, id)
		d.Sidecar.InterfaceIDs = append(d.Sidecar.InterfaceIDs, id)

		d.Sidecar.VertexAttributes = append(d.Sidecar.VertexAttributes, VertexAttribute{
			Binding:  0,
			Location: d.nextVertexLocation,
			Offset:   0,
			Format:   FormatForComponentCount(componentCount),
		})
		d.nextVertexLocation++

	case token.RegOutput:
		pointerType, pointee := d.variableType(spirv.StorageClassOutput, componentCount)
		if pointerType == 0 {
			d.warnf("DCL vertex OUTPUT: unsupported component count")
			return
		}
		id := d.builder.AddVariable(pointerType, spirv.StorageClassOutput)
		d.annotatePointer(id, spirv.StorageClassOutput, pointee)
		d.regs.Bind(regType, regNumber, id)
		d.Sidecar.InterfaceIDs = append(d.Sidecar.InterfaceIDs, id)

		if usage == token.UsagePosition {
			d.Sidecar.PositionRegister = int(usageIndex)
		}

	default:
		d.warnf("DCL vertex: unsupported register type")
	}
}

// annotatePointer records id's pointer/pointee type so later readers (the
// arithmetic handlers) can tell, from the id alone, that a load is needed
// before the value can feed an operation.
func (d *Declarer) annotatePointer(id uint32, storage spirv.StorageClass, pointee uint32) {
	d.types.Annotate(id, ir.TypeDescription{
		Primary: ir.KindPointer, Storage: storage, Arguments: []uint32{pointee},
	})
}

func (d *Declarer) warnf(msg string) {
	if d.warn != nil {
		d.warn(msg)
	}
}
