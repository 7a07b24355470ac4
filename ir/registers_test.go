package ir

import (
	"testing"

	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

func newTestRegisterMap() (*RegisterMap, *spirv.ModuleBuilder) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := NewTypeTable(builder)
	alloc := NewIdAllocator(builder)
	return NewRegisterMap(alloc, types, builder, nil), builder
}

func TestRegisterMapFreshVersionIsSSA(t *testing.T) {
	m, _ := newTestRegisterMap()

	id1 := m.FreshVersion(token.RegTemp, 0)
	id2 := m.FreshVersion(token.RegTemp, 0)

	if id1 == id2 {
		t.Fatal("every write must produce a fresh id")
	}

	got, ok := m.Lookup(token.RegTemp, 0)
	if !ok || got != id2 {
		t.Fatalf("Lookup after two writes = (%d,%v), want (%d,true)", got, ok, id2)
	}
}

func TestRegisterMapConstantBanksAreDistinct(t *testing.T) {
	m, _ := newTestRegisterMap()

	id0 := m.LazyConstant(token.RegConst, 0)
	id2 := m.LazyConstant(token.RegConst2, 0)
	id3 := m.LazyConstant(token.RegConst3, 0)
	id4 := m.LazyConstant(token.RegConst4, 0)

	ids := []uint32{id0, id2, id3, id4}
	for i := range ids {
		for j := range ids {
			if i != j && ids[i] == ids[j] {
				t.Fatalf("constant bank register 0 collided: bank ids = %v", ids)
			}
		}
	}
}

func TestRegisterMapLazyConstantMaterializesPushConstant(t *testing.T) {
	m, _ := newTestRegisterMap()

	id := m.LazyConstant(token.RegConst, 0)
	if id == 0 {
		t.Fatal("LazyConstant should materialize an id for an unbound constant register")
	}

	desc, ok := m.types.TypeOf(id)
	if !ok {
		t.Fatalf("no type recorded for materialized constant id %d", id)
	}
	if desc.Primary != KindPointer || desc.Storage != spirv.StorageClassPushConstant {
		t.Fatalf("materialized constant type = %+v, want Pointer/PushConstant", desc)
	}
}

func TestRegisterMapLazyConstantUnboundNonConstantWarns(t *testing.T) {
	var warned string
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := NewTypeTable(builder)
	m := NewRegisterMap(NewIdAllocator(builder), types, builder, func(msg string) { warned = msg })

	id := m.LazyConstant(token.RegTemp, 0)
	if id != 0 {
		t.Fatalf("LazyConstant on unbound non-constant register = %d, want 0", id)
	}
	if warned == "" {
		t.Fatal("expected a warning to be logged")
	}
}
