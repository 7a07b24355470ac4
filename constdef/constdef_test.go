package constdef

import (
	"math"
	"testing"

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

func newDefiner() (*Definer, *spirv.ModuleBuilder, *ir.RegisterMap) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := ir.NewTypeTable(builder)
	alloc := ir.NewIdAllocator(builder)
	regs := ir.NewRegisterMap(alloc, types, builder, nil)
	return NewDefiner(builder, types, regs), builder, regs
}

func TestDefineFloat4BindsConstantRegister(t *testing.T) {
	def, _, regs := newDefiner()

	destToken := encodeRegType(token.RegConst)
	values := [4]uint32{
		math.Float32bits(1.0),
		math.Float32bits(0.0),
		math.Float32bits(0.0),
		math.Float32bits(1.0),
	}
	id := def.DefineFloat4(destToken, values)

	got, ok := regs.Lookup(token.RegConst, 0)
	if !ok || got != id {
		t.Fatalf("Lookup(CONST,0) = (%d,%v), want (%d,true)", got, ok, id)
	}
}

func TestDefineBoolEmitsConstantTrueOrFalse(t *testing.T) {
	def, builder, _ := newDefiner()

	def.DefineBool(encodeRegType(token.RegConstBool), 1)

	sawTrue := false
	raw := builder.Words()
	for i := 5; i < len(raw); {
		wc := raw[i] >> 16
		if wc == 0 {
			break
		}
		if spirv.OpCode(raw[i]&0xFFFF) == spirv.OpConstantTrue {
			sawTrue = true
		}
		i += int(wc)
	}
	if !sawTrue {
		t.Fatal("expected an OpConstantTrue instruction for a nonzero DEFB literal")
	}

	words := builder.Build()
	if len(words) == 0 {
		t.Fatal("expected emitted words")
	}
}

func TestDefineBoolFalse(t *testing.T) {
	def, _, regs := newDefiner()

	id := def.DefineBool(encodeRegType(token.RegConstBool), 0)
	if id == 0 {
		t.Fatal("DefineBool should return a nonzero id")
	}

	got, ok := regs.Lookup(token.RegConstBool, 0)
	if !ok || got != id {
		t.Fatalf("Lookup(CONSTBOOL,0) = (%d,%v), want (%d,true)", got, ok, id)
	}
}
