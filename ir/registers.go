package ir

import (
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// RegisterKey identifies one logical register after constant-bank
// normalization.
type RegisterKey struct {
	Type   token.RegisterType
	Number uint32
}

const (
	constBank2Offset = 2048
	constBank3Offset = 4096
	constBank4Offset = 6144
)

// normalizeKey folds constant banks 2/3/4 into the bank-1 register-type
// space by offsetting the register number, so a lookup on (CONST2, 0)
// never collides with (CONST, 0).
func normalizeKey(regType token.RegisterType, regNumber uint32) RegisterKey {
	switch regType {
	case token.RegConst2:
		return RegisterKey{Type: token.RegConst, Number: regNumber + constBank2Offset}
	case token.RegConst3:
		return RegisterKey{Type: token.RegConst, Number: regNumber + constBank3Offset}
	case token.RegConst4:
		return RegisterKey{Type: token.RegConst, Number: regNumber + constBank4Offset}
	default:
		return RegisterKey{Type: regType, Number: regNumber}
	}
}

// RegisterMap tracks, for each logical register, the SPIR-V id that
// currently represents its value. Because SPIR-V is SSA, every write
// replaces the entry; reads consult whatever is current.
type RegisterMap struct {
	ids     map[RegisterKey]uint32
	alloc   *IdAllocator
	types   *TypeTable
	builder *spirv.ModuleBuilder

	// bankKind records the scalar kind last observed for a constant bank
	// via DEFI/DEFB, so a later lazily-materialized read of that bank
	// uses the right type instead of always assuming float.
	bankKind map[token.RegisterType]OpKind

	// warn receives one message per unresolvable read of a non-constant
	// register; nil disables the callback.
	warn func(msg string)
}

// NewRegisterMap creates an empty register map.
func NewRegisterMap(alloc *IdAllocator, types *TypeTable, builder *spirv.ModuleBuilder, warn func(string)) *RegisterMap {
	return &RegisterMap{
		ids:      make(map[RegisterKey]uint32, 32),
		alloc:    alloc,
		types:    types,
		builder:  builder,
		bankKind: make(map[token.RegisterType]OpKind, 4),
		warn:     warn,
	}
}

// Bind records id as the current value of the register identified by
// regType/regNumber.
func (m *RegisterMap) Bind(regType token.RegisterType, regNumber uint32, id uint32) {
	m.ids[normalizeKey(regType, regNumber)] = id
}

// Lookup returns the current id bound to a register, if any.
func (m *RegisterMap) Lookup(regType token.RegisterType, regNumber uint32) (uint32, bool) {
	id, ok := m.ids[normalizeKey(regType, regNumber)]
	return id, ok
}

// FreshVersion allocates a new id and binds it as the register's current
// value — the SSA write path: every definition gets a fresh id.
func (m *RegisterMap) FreshVersion(regType token.RegisterType, regNumber uint32) uint32 {
	id := m.alloc.Alloc()
	m.Bind(regType, regNumber, id)
	return id
}

// NoteConstantKind records the scalar kind DEFI/DEFB observed for a
// constant bank, consulted by LazyConstant before it falls back to float.
func (m *RegisterMap) NoteConstantKind(regType token.RegisterType, kind OpKind) {
	m.bankKind[regType] = kind
}

func isConstantBank(regType token.RegisterType) bool {
	switch regType {
	case token.RegConst, token.RegConst2, token.RegConst3, token.RegConst4, token.RegConstInt, token.RegConstBool:
		return true
	default:
		return false
	}
}

// LazyConstant resolves a constant-bank register, materializing a
// PushConstant-backed variable on first read. Returns 0 for a non-constant
// register that was never bound (logged via warn).
func (m *RegisterMap) LazyConstant(regType token.RegisterType, regNumber uint32) uint32 {
	if id, ok := m.Lookup(regType, regNumber); ok {
		return id
	}

	if !isConstantBank(regType) {
		if m.warn != nil {
			m.warn("read of unbound non-constant register")
		}
		return 0
	}

	kind := m.bankKind[regType]
	if kind == 0 {
		kind = KindFloat
	}

	pointee := m.types.IDFor(TypeDescription{
		Primary:        KindVector,
		Secondary:      kind,
		ComponentCount: 4,
	})
	if pointee == 0 {
		return 0
	}
	pointerType := m.types.IDFor(TypeDescription{
		Primary:   KindPointer,
		Storage:   spirv.StorageClassPushConstant,
		Arguments: []uint32{pointee},
	})
	if pointerType == 0 {
		return 0
	}

	id := m.builder.AddVariable(pointerType, spirv.StorageClassPushConstant)
	m.types.Annotate(id, TypeDescription{
		Primary: KindPointer, Storage: spirv.StorageClassPushConstant, Arguments: []uint32{pointee},
	})
	m.Bind(regType, regNumber, id)
	return id
}
