package arith

import (
	"math"
	"testing"

	"github.com/gogpu/shaderconv/constdef"
	"github.com/gogpu/shaderconv/declare"
	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// encodeRegType reproduces the split register-type encoding DecodeRegisterType
// expects: the low 3 bits go in bits 28-30, the next 2 bits in bits 11-12.
func encodeRegType(regType token.RegisterType) uint32 {
	rt := uint32(regType)
	return ((rt & 0x7) << 28) | (((rt >> 3) & 0x3) << 11)
}

func destTok(regType token.RegisterType, regNumber uint32, writeMask uint32) uint32 {
	return encodeRegType(regType) | regNumber | (writeMask << 16)
}

func identitySrcTok(regType token.RegisterType, regNumber uint32) uint32 {
	const identitySwizzle = (0 << 16) | (1 << 18) | (2 << 20) | (3 << 22)
	return encodeRegType(regType) | regNumber | identitySwizzle
}

type fixture struct {
	builder *spirv.ModuleBuilder
	types   *ir.TypeTable
	regs    *ir.RegisterMap
	eval    *Evaluator
	def     *constdef.Definer
	decl    *declare.Declarer
}

func newFixture() *fixture {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := ir.NewTypeTable(builder)
	alloc := ir.NewIdAllocator(builder)
	regs := ir.NewRegisterMap(alloc, types, builder, nil)
	return &fixture{
		builder: builder,
		types:   types,
		regs:    regs,
		eval:    NewEvaluator(builder, types, regs, nil),
		def:     constdef.NewDefiner(builder, types, regs),
		decl:    declare.NewDeclarer(builder, types, regs, nil),
	}
}

func float4(x, y, z, w float32) [4]uint32 {
	return [4]uint32{
		math.Float32bits(x), math.Float32bits(y), math.Float32bits(z), math.Float32bits(w),
	}
}

// findOpcode scans a word stream for the first instance of opcode and
// returns its word count, or 0 if not found.
func findOpcode(words []uint32, opcode spirv.OpCode) uint32 {
	for i := 5; i < len(words); {
		w := words[i]
		wc := w >> 16
		if wc == 0 {
			break
		}
		if spirv.OpCode(w&0xFFFF) == opcode {
			return wc
		}
		i += int(wc)
	}
	return 0
}

func TestEvaluatorAddBindsFreshSSAValue(t *testing.T) {
	f := newFixture()
	f.def.DefineFloat4(destTok(token.RegConst, 0, 0xF), float4(1, 2, 3, 4))
	f.def.DefineFloat4(destTok(token.RegConst, 1, 0xF), float4(5, 6, 7, 8))

	dest := destTok(token.RegTemp, 0, 0xF)
	result := f.eval.Add(dest, identitySrcTok(token.RegConst, 0), identitySrcTok(token.RegConst, 1))
	if result == 0 {
		t.Fatal("Add returned 0")
	}

	got, ok := f.regs.Lookup(token.RegTemp, 0)
	if !ok || got != result {
		t.Fatalf("Lookup(TEMP,0) = (%d,%v), want (%d,true)", got, ok, result)
	}

	if wc := findOpcode(f.builder.Words(), spirv.OpFAdd); wc == 0 {
		t.Fatal("expected an OpFAdd instruction")
	}
}

func TestEvaluatorMulEmitsIntOpcodeForIntConstants(t *testing.T) {
	f := newFixture()
	f.def.DefineInt4(destTok(token.RegConstInt, 0, 0xF), [4]uint32{2, 0, 0, 0})
	f.def.DefineInt4(destTok(token.RegConstInt, 1, 0xF), [4]uint32{3, 0, 0, 0})

	dest := destTok(token.RegTemp, 0, 0xF)
	result := f.eval.Mul(dest, identitySrcTok(token.RegConstInt, 0), identitySrcTok(token.RegConstInt, 1))
	if result == 0 {
		t.Fatal("Mul returned 0")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpIMul); wc == 0 {
		t.Fatal("expected an OpIMul instruction for int operands")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpFMul); wc != 0 {
		t.Fatal("did not expect an OpFMul instruction for int operands")
	}
}

func TestEvaluatorDp3BroadcastsScalarAcrossWriteMask(t *testing.T) {
	f := newFixture()
	f.def.DefineFloat4(destTok(token.RegConst, 0, 0xF), float4(1, 0, 0, 0))
	f.def.DefineFloat4(destTok(token.RegConst, 1, 0xF), float4(1, 0, 0, 0))

	dest := destTok(token.RegTemp, 0, 0xF)
	result := f.eval.Dp3(dest, identitySrcTok(token.RegConst, 0), identitySrcTok(token.RegConst, 1))
	if result == 0 {
		t.Fatal("Dp3 returned 0")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpDot); wc == 0 {
		t.Fatal("expected an OpDot instruction")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpCompositeConstruct); wc == 0 {
		t.Fatal("expected the scalar dot result broadcast via OpCompositeConstruct")
	}
}

func TestEvaluatorMadEmitsMultiplyBeforeAdd(t *testing.T) {
	f := newFixture()
	f.def.DefineFloat4(destTok(token.RegConst, 0, 0xF), float4(2, 2, 2, 2))
	f.def.DefineFloat4(destTok(token.RegConst, 1, 0xF), float4(3, 3, 3, 3))
	f.def.DefineFloat4(destTok(token.RegConst, 2, 0xF), float4(1, 1, 1, 1))

	dest := destTok(token.RegTemp, 0, 0xF)
	result := f.eval.Mad(dest,
		identitySrcTok(token.RegConst, 0),
		identitySrcTok(token.RegConst, 1),
		identitySrcTok(token.RegConst, 2),
	)
	if result == 0 {
		t.Fatal("Mad returned 0")
	}

	words := f.builder.Words()
	mulAt := -1
	addAt := -1
	for i := 5; i < len(words); {
		wc := words[i] >> 16
		if wc == 0 {
			break
		}
		switch spirv.OpCode(words[i] & 0xFFFF) {
		case spirv.OpFMul:
			mulAt = i
		case spirv.OpFAdd:
			if addAt == -1 {
				addAt = i
			}
		}
		i += int(wc)
	}
	if mulAt == -1 || addAt == -1 {
		t.Fatalf("expected both OpFMul and OpFAdd, got mulAt=%d addAt=%d", mulAt, addAt)
	}
	if mulAt >= addAt {
		t.Fatalf("expected OpFMul (at %d) before OpFAdd (at %d)", mulAt, addAt)
	}
}

func TestEvaluatorTexSamplesDeclaredPair(t *testing.T) {
	f := newFixture()
	usageTok := func(usage token.Usage, index uint32) uint32 { return uint32(usage) | (index << 16) }

	f.decl.DeclarePixel(usageTok(0, 0), destTok(token.RegSampler, 0, 0xF))
	f.decl.DeclarePixel(usageTok(0, 0), destTok(token.RegTexture, 0, 0xF))
	f.decl.DeclarePixel(usageTok(token.UsageTexCoord, 0), destTok(token.RegInput, 0, 0b0011))

	dest := destTok(token.RegTemp, 0, 0xF)
	result := f.eval.Tex(dest, identitySrcTok(token.RegInput, 0), identitySrcTok(token.RegSampler, 0))
	if result == 0 {
		t.Fatal("Tex returned 0")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpImageSampleImplicitLod); wc == 0 {
		t.Fatal("expected an OpImageSampleImplicitLod instruction")
	}
	if wc := findOpcode(f.builder.Words(), spirv.OpSampledImage); wc == 0 {
		t.Fatal("expected an OpSampledImage instruction combining the declared pair")
	}
}

func TestEvaluatorMovWarnsOnUnresolvedTempSource(t *testing.T) {
	var warned string
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := ir.NewTypeTable(builder)
	regs := ir.NewRegisterMap(ir.NewIdAllocator(builder), types, builder, func(msg string) { warned = msg })
	eval := NewEvaluator(builder, types, regs, func(msg string) { warned = msg })

	result := eval.Mov(destTok(token.RegTemp, 0, 0xF), identitySrcTok(token.RegTemp, 1))
	if result != 0 {
		t.Fatalf("Mov of an unbound temp register = %d, want 0", result)
	}
	if warned == "" {
		t.Fatal("expected a warning to be logged")
	}
}
