package constdef

import (
	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// Definer handles DEF/DEFI/DEFB constant-definition instructions.
type Definer struct {
	builder *spirv.ModuleBuilder
	types   *ir.TypeTable
	regs    *ir.RegisterMap
}

// NewDefiner creates a constant-definition handler sharing state with the
// rest of the conversion.
func NewDefiner(builder *spirv.ModuleBuilder, types *ir.TypeTable, regs *ir.RegisterMap) *Definer {
	return &Definer{builder: builder, types: types, regs: regs}
}

// DefineFloat4 processes DEF: destToken names the constant register,
// values holds the four literal words, already carrying IEEE-754 float
// bit patterns as stored in the token stream.
func (d *Definer) DefineFloat4(destToken uint32, values [4]uint32) uint32 {
	floatType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindFloat})
	vec4Type := d.types.IDFor(ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindFloat, ComponentCount: 4})

	componentIDs := make([]uint32, 4)
	for i, v := range values {
		componentIDs[i] = d.builder.AddConstant(floatType, v)
	}
	compositeID := d.builder.AddConstantComposite(vec4Type, componentIDs...)
	d.types.Annotate(compositeID, ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindFloat, ComponentCount: 4})

	regType := token.DecodeRegisterType(destToken)
	regNumber := token.RegisterNumber(destToken)
	d.regs.Bind(regType, regNumber, compositeID)
	d.regs.NoteConstantKind(regType, ir.KindFloat)
	return compositeID
}

// DefineInt4 processes DEFI: same shape as DEF with Int components.
func (d *Definer) DefineInt4(destToken uint32, values [4]uint32) uint32 {
	intType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindInt})
	vec4Type := d.types.IDFor(ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindInt, ComponentCount: 4})

	componentIDs := make([]uint32, 4)
	for i, v := range values {
		componentIDs[i] = d.builder.AddConstant(intType, v)
	}
	compositeID := d.builder.AddConstantComposite(vec4Type, componentIDs...)
	d.types.Annotate(compositeID, ir.TypeDescription{Primary: ir.KindVector, Secondary: ir.KindInt, ComponentCount: 4})

	regType := token.DecodeRegisterType(destToken)
	regNumber := token.RegisterNumber(destToken)
	d.regs.Bind(regType, regNumber, compositeID)
	d.regs.NoteConstantKind(regType, ir.KindInt)
	return compositeID
}

// DefineBool processes DEFB: a single 32-bit literal, nonzero meaning
// true. Emits OpConstantTrue/OpConstantFalse, never OpConstant, which is
// not valid for a Bool result type.
func (d *Definer) DefineBool(destToken uint32, value uint32) uint32 {
	boolType := d.types.IDFor(ir.TypeDescription{Primary: ir.KindBool})

	var id uint32
	if value != 0 {
		id = d.builder.AddConstantTrue(boolType)
	} else {
		id = d.builder.AddConstantFalse(boolType)
	}

	d.types.Annotate(id, ir.TypeDescription{Primary: ir.KindBool})

	regType := token.DecodeRegisterType(destToken)
	regNumber := token.RegisterNumber(destToken)
	d.regs.Bind(regType, regNumber, id)
	d.regs.NoteConstantKind(regType, ir.KindBool)
	return id
}
