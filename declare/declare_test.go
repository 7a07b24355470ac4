package declare

import (
	"testing"

	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

func newDeclarer() (*Declarer, *spirv.ModuleBuilder) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := ir.NewTypeTable(builder)
	alloc := ir.NewIdAllocator(builder)
	regs := ir.NewRegisterMap(alloc, types, builder, nil)
	return NewDeclarer(builder, types, regs, nil), builder
}

// destToken builds a destination parameter token, reproducing the split
// register-type encoding DecodeRegisterType expects: the low 3 bits of the
// register type go in bits 28-30, the next 2 bits in bits 11-12.
func destToken(regType token.RegisterType, regNumber uint32, writeMask uint32) uint32 {
	rt := uint32(regType)
	hi3 := rt & 0x7
	lo2 := (rt >> 3) & 0x3
	return (hi3 << 28) | (lo2 << 11) | regNumber | (writeMask << 16)
}

func usageTokenFor(usage token.Usage, index uint32) uint32 {
	return uint32(usage) | (index << 16)
}

func TestDeclareVertexInputWritesVertexAttribute(t *testing.T) {
	d, _ := newDeclarer()

	d.DeclareVertex(usageTokenFor(token.UsagePosition, 0), destToken(token.RegInput, 0, 0xF))

	if len(d.Sidecar.VertexAttributes) != 1 {
		t.Fatalf("VertexAttributes = %d entries, want 1", len(d.Sidecar.VertexAttributes))
	}
	attr := d.Sidecar.VertexAttributes[0]
	if attr.Binding != 0 || attr.Location != 0 || attr.Format != FormatR32G32B32A32SFloat {
		t.Fatalf("unexpected attribute: %+v", attr)
	}
}

func TestDeclareVertexOutputPositionRecordsUsageIndex(t *testing.T) {
	d, _ := newDeclarer()

	d.DeclareVertex(usageTokenFor(token.UsagePosition, 0), destToken(token.RegOutput, 0, 0xF))

	if d.Sidecar.PositionRegister != 0 {
		t.Fatalf("PositionRegister = %d, want 0", d.Sidecar.PositionRegister)
	}
}

func TestDeclarePixelSamplerWritesDescriptorBinding(t *testing.T) {
	d, _ := newDeclarer()

	d.DeclarePixel(usageTokenFor(0, 0), destToken(token.RegSampler, 0, 0xF))

	if len(d.Sidecar.DescriptorBindings) != 1 {
		t.Fatalf("DescriptorBindings = %d entries, want 1", len(d.Sidecar.DescriptorBindings))
	}
	binding := d.Sidecar.DescriptorBindings[0]
	if binding.Binding != 0 || binding.Type != DescriptorCombinedImageSampler || binding.Stage != StageFragment || binding.Count != 1 {
		t.Fatalf("unexpected binding: %+v", binding)
	}
}

func TestDeclareVertexInputLocationIncrementsPerAttribute(t *testing.T) {
	d, _ := newDeclarer()

	d.DeclareVertex(usageTokenFor(token.UsagePosition, 0), destToken(token.RegInput, 0, 0xF))
	d.DeclareVertex(usageTokenFor(token.UsageNormal, 0), destToken(token.RegInput, 1, 0b0111))

	if len(d.Sidecar.VertexAttributes) != 2 {
		t.Fatalf("VertexAttributes = %d entries, want 2", len(d.Sidecar.VertexAttributes))
	}
	if d.Sidecar.VertexAttributes[1].Location != 1 {
		t.Fatalf("second attribute location = %d, want 1", d.Sidecar.VertexAttributes[1].Location)
	}
	if d.Sidecar.VertexAttributes[1].Format != FormatR32G32B32SFloat {
		t.Fatalf("second attribute format = %v, want R32G32B32SFloat", d.Sidecar.VertexAttributes[1].Format)
	}
}
