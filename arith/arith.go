package arith

import (
	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// Evaluator dispatches arithmetic instructions for one shader conversion.
type Evaluator struct {
	builder *spirv.ModuleBuilder
	types   *ir.TypeTable
	regs    *ir.RegisterMap

	warn func(msg string)
}

// NewEvaluator creates an arithmetic handler sharing state with the rest
// of the conversion.
func NewEvaluator(builder *spirv.ModuleBuilder, types *ir.TypeTable, regs *ir.RegisterMap, warn func(string)) *Evaluator {
	return &Evaluator{builder: builder, types: types, regs: regs, warn: warn}
}

func (e *Evaluator) warnf(msg string) {
	if e.warn != nil {
		e.warn(msg)
	}
}

func componentKind(desc ir.TypeDescription) ir.OpKind {
	if desc.Primary == ir.KindVector || desc.Primary == ir.KindMatrix {
		return desc.Secondary
	}
	return desc.Primary
}

func descFor(kind ir.OpKind, count uint32) ir.TypeDescription {
	if count <= 1 {
		return ir.TypeDescription{Primary: kind}
	}
	return ir.TypeDescription{Primary: ir.KindVector, Secondary: kind, ComponentCount: count}
}

func (e *Evaluator) vectorOrScalarType(kind ir.OpKind, count uint32) uint32 {
	return e.types.IDFor(descFor(kind, count))
}

func destComponentCount(destToken uint32) uint32 {
	n := token.PopCount4(token.WriteMask(destToken))
	if n < 1 || n > 4 {
		n = 4
	}
	return uint32(n)
}

// loadOperand resolves one source parameter token to a value ready to feed
// an instruction: it follows LazyConstant's push-constant materialization,
// loads through a pointer if the register turns out to hold one (checked
// independently for this operand, not inherited from an earlier one in the
// same instruction), applies the source negate modifier, and lowers the
// swizzle using arityMask to size the result.
func (e *Evaluator) loadOperand(srcToken uint32, arityMask uint32) (uint32, ir.OpKind, bool) {
	regType := token.DecodeRegisterType(srcToken)
	regNumber := token.RegisterNumber(srcToken)
	id := e.regs.LazyConstant(regType, regNumber)
	if id == 0 {
		e.warnf("arith: unresolved source register")
		return 0, 0, false
	}

	value := id
	var valueDesc ir.TypeDescription
	knownDesc := false

	if desc, ok := e.types.TypeOf(id); ok {
		if desc.Primary == ir.KindPointer && len(desc.Arguments) == 1 {
			pointee := desc.Arguments[0]
			value = e.builder.AddLoad(pointee, id)
			if pdesc, ok2 := e.types.TypeOf(pointee); ok2 {
				valueDesc, knownDesc = pdesc, true
			}
		} else {
			valueDesc, knownDesc = desc, true
		}
	}

	kind := ir.KindFloat
	componentCount := uint32(4)
	if knownDesc {
		kind = componentKind(valueDesc)
		if valueDesc.Primary == ir.KindVector {
			componentCount = valueDesc.ComponentCount
		} else {
			componentCount = 1
		}
	}

	if token.SourceModifierOf(srcToken) == token.SourceModifierNegate {
		if kind == ir.KindFloat {
			if negType := e.vectorOrScalarType(kind, componentCount); negType != 0 {
				value = e.builder.AddUnaryOp(spirv.OpFNegate, negType, value)
			}
		} else {
			e.warnf("arith: negate modifier unsupported for non-float operand")
		}
	}

	value = ir.LowerSwizzle(e.builder, e.types, srcToken, value, arityMask)
	return value, kind, true
}

// writeDest stores valueID (described by desc) into the register named by
// destToken: through OpStore if that register is backed by an OpVariable,
// or by rebinding directly if it is a plain SSA temp.
func (e *Evaluator) writeDest(destToken uint32, valueID uint32, desc ir.TypeDescription) uint32 {
	e.types.Annotate(valueID, desc)

	regType := token.DecodeRegisterType(destToken)
	regNumber := token.RegisterNumber(destToken)

	if existing, ok := e.regs.Lookup(regType, regNumber); ok {
		if edesc, known := e.types.TypeOf(existing); known && edesc.Primary == ir.KindPointer {
			e.builder.AddStore(existing, valueID)
			return valueID
		}
	}
	e.regs.Bind(regType, regNumber, valueID)
	return valueID
}

// Mov processes MOV dest, src.
func (e *Evaluator) Mov(destToken, srcToken uint32) uint32 {
	value, kind, ok := e.loadOperand(srcToken, token.WriteMask(destToken))
	if !ok {
		return 0
	}
	return e.writeDest(destToken, value, descFor(kind, destComponentCount(destToken)))
}

func (e *Evaluator) binaryArith(destToken, src0, src1 uint32, floatOp, intOp spirv.OpCode, name string) uint32 {
	mask := token.WriteMask(destToken)
	v0, k0, ok0 := e.loadOperand(src0, mask)
	if !ok0 {
		return 0
	}
	v1, k1, ok1 := e.loadOperand(src1, mask)
	if !ok1 {
		return 0
	}
	kind := k0
	if k0 != k1 {
		e.warnf("arith " + name + ": mismatched operand kinds, using the first operand's")
	}

	var opcode spirv.OpCode
	switch kind {
	case ir.KindFloat:
		opcode = floatOp
	case ir.KindInt, ir.KindBool:
		opcode = intOp
	default:
		e.warnf("arith " + name + ": unsupported leaf data type")
		return 0
	}

	count := destComponentCount(destToken)
	resultType := e.vectorOrScalarType(kind, count)
	if resultType == 0 {
		e.warnf("arith " + name + ": unsupported result type")
		return 0
	}

	result := e.builder.AddBinaryOp(opcode, resultType, v0, v1)
	return e.writeDest(destToken, result, descFor(kind, count))
}

// Add processes ADD dest, src0, src1.
func (e *Evaluator) Add(destToken, src0, src1 uint32) uint32 {
	return e.binaryArith(destToken, src0, src1, spirv.OpFAdd, spirv.OpIAdd, "ADD")
}

// Sub processes SUB dest, src0, src1.
func (e *Evaluator) Sub(destToken, src0, src1 uint32) uint32 {
	return e.binaryArith(destToken, src0, src1, spirv.OpFSub, spirv.OpISub, "SUB")
}

// Mul processes MUL dest, src0, src1.
func (e *Evaluator) Mul(destToken, src0, src1 uint32) uint32 {
	return e.binaryArith(destToken, src0, src1, spirv.OpFMul, spirv.OpIMul, "MUL")
}

// dot shares the DP3/DP4 lowering: both sources are read with a fixed
// component arity (3 or 4, never the destination write mask, since the
// dot product's own arity is what the opcode name fixes), OpDot produces
// a scalar, which is then broadcast across however many components the
// destination write mask asks for.
func (e *Evaluator) dot(destToken, src0, src1 uint32, operandArity uint32) uint32 {
	v0, _, ok0 := e.loadOperand(src0, operandArity)
	if !ok0 {
		return 0
	}
	v1, _, ok1 := e.loadOperand(src1, operandArity)
	if !ok1 {
		return 0
	}

	scalarType := e.types.IDFor(ir.TypeDescription{Primary: ir.KindFloat})
	if scalarType == 0 {
		e.warnf("arith DP: unsupported scalar type")
		return 0
	}
	result := e.builder.AddBinaryOp(spirv.OpDot, scalarType, v0, v1)

	count := destComponentCount(destToken)
	final := result
	if count > 1 {
		constituents := make([]uint32, count)
		for i := range constituents {
			constituents[i] = result
		}
		vecType := e.types.IDFor(ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindFloat, ComponentCount: count})
		if vecType == 0 {
			e.warnf("arith DP: unsupported broadcast type")
			return 0
		}
		final = e.builder.AddCompositeConstruct(vecType, constituents...)
	}
	return e.writeDest(destToken, final, descFor(ir.KindFloat, count))
}

// Dp3 processes DP3 dest, src0, src1.
func (e *Evaluator) Dp3(destToken, src0, src1 uint32) uint32 {
	return e.dot(destToken, src0, src1, 0b0111)
}

// Dp4 processes DP4 dest, src0, src1.
func (e *Evaluator) Dp4(destToken, src0, src1 uint32) uint32 {
	return e.dot(destToken, src0, src1, 0b1111)
}

// Mad processes MAD dest, src0, src1, src2: dest = src0*src1 + src2,
// emitting the intermediate multiply before the final add into the fresh
// destination id.
func (e *Evaluator) Mad(destToken, src0, src1, src2 uint32) uint32 {
	mask := token.WriteMask(destToken)
	v0, k0, ok0 := e.loadOperand(src0, mask)
	if !ok0 {
		return 0
	}
	v1, k1, ok1 := e.loadOperand(src1, mask)
	if !ok1 {
		return 0
	}
	v2, _, ok2 := e.loadOperand(src2, mask)
	if !ok2 {
		return 0
	}

	kind := k0
	if k0 != k1 {
		e.warnf("arith MAD: mismatched multiply operand kinds, using the first operand's")
	}

	count := destComponentCount(destToken)
	resultType := e.vectorOrScalarType(kind, count)
	if resultType == 0 {
		e.warnf("arith MAD: unsupported result type")
		return 0
	}

	var mulOp, addOp spirv.OpCode
	switch kind {
	case ir.KindFloat:
		mulOp, addOp = spirv.OpFMul, spirv.OpFAdd
	case ir.KindInt, ir.KindBool:
		mulOp, addOp = spirv.OpIMul, spirv.OpIAdd
	default:
		e.warnf("arith MAD: unsupported leaf data type")
		return 0
	}
	product := e.builder.AddBinaryOp(mulOp, resultType, v0, v1)
	result := e.builder.AddBinaryOp(addOp, resultType, product, v2)
	return e.writeDest(destToken, result, descFor(kind, count))
}

// Tex processes TEX dest, coord, sampler: samples the texture/sampler pair
// declared at the sampler's stage index, combining them with
// OpSampledImage before OpImageSampleImplicitLod.
func (e *Evaluator) Tex(destToken, coordToken, samplerToken uint32) uint32 {
	samplerRegNumber := token.RegisterNumber(samplerToken)

	samplerID, ok := e.regs.Lookup(token.RegSampler, samplerRegNumber)
	if !ok {
		e.warnf("arith TEX: sampler register not declared")
		return 0
	}
	samplerDesc, ok := e.types.TypeOf(samplerID)
	if !ok || samplerDesc.Primary != ir.KindPointer || len(samplerDesc.Arguments) != 1 {
		e.warnf("arith TEX: sampler register has no pointer type")
		return 0
	}
	loadedSampler := e.builder.AddLoad(samplerDesc.Arguments[0], samplerID)

	// Legacy shader models pair a sampler with the texture declared at the
	// same stage index.
	imageID, ok := e.regs.Lookup(token.RegTexture, samplerRegNumber)
	if !ok {
		e.warnf("arith TEX: texture register not declared")
		return 0
	}
	imageDesc, ok := e.types.TypeOf(imageID)
	if !ok || imageDesc.Primary != ir.KindPointer || len(imageDesc.Arguments) != 1 {
		e.warnf("arith TEX: texture register has no pointer type")
		return 0
	}
	imageType := imageDesc.Arguments[0]
	loadedImage := e.builder.AddLoad(imageType, imageID)

	sampledImageType := e.types.IDFor(ir.TypeDescription{Primary: ir.KindSampledImage, Arguments: []uint32{imageType}})
	if sampledImageType == 0 {
		e.warnf("arith TEX: unsupported sampled-image type")
		return 0
	}
	sampledImage := e.builder.AddSampledImage(sampledImageType, loadedImage, loadedSampler)

	coordinate, _, ok := e.loadOperand(coordToken, 0b1111)
	if !ok {
		return 0
	}

	colorType := e.types.IDFor(ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindFloat, ComponentCount: 4})
	if colorType == 0 {
		e.warnf("arith TEX: unsupported color type")
		return 0
	}
	result := e.builder.AddImageSampleImplicitLod(colorType, sampledImage, coordinate)
	return e.writeDest(destToken, result, descFor(ir.KindFloat, 4))
}
