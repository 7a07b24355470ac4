package ir

import (
	"strconv"

	"github.com/gogpu/shaderconv/spirv"
)

// OpKind names the shape a TypeDescription takes; it is not a SPIR-V
// opcode, just a label for the type-table switch.
type OpKind uint8

const (
	KindVoid OpKind = iota
	KindBool
	KindInt
	KindFloat
	KindVector
	KindMatrix
	KindPointer
	KindSampler
	KindImage
	KindSampledImage
	KindFunction
)

// TypeDescription describes a SPIR-V type as a structural tuple. Equality
// is structural: two descriptions with the same fields describe the same
// SPIR-V type and must resolve to the same id.
type TypeDescription struct {
	Primary        OpKind
	Secondary      OpKind
	Ternary        OpKind
	ComponentCount uint32
	Arguments      []uint32 // component/pointee/return/parameter type ids, by Primary

	// Storage is only meaningful when Primary == KindPointer. Pointer
	// types are keyed on (pointee, storage class) together so that the
	// same pointee under different storage classes gets distinct ids
	// with the correct storage class baked into the pointer type itself.
	Storage spirv.StorageClass
}

func (d TypeDescription) key() string {
	b := make([]byte, 0, 32)
	b = append(b, byte(d.Primary), byte(d.Secondary), byte(d.Ternary))
	b = strconv.AppendUint(b, uint64(d.ComponentCount), 10)
	b = append(b, ':')
	if d.Primary == KindPointer {
		b = strconv.AppendUint(b, uint64(d.Storage), 10)
		b = append(b, ':')
	}
	for _, a := range d.Arguments {
		b = strconv.AppendUint(b, uint64(a), 10)
		b = append(b, ',')
	}
	return string(b)
}

// TypeTable is a bidirectional mapping TypeDescription <-> SPIR-V id. A
// lookup that misses allocates a fresh id and emits the type instruction
// into the builder's type/constant section.
type TypeTable struct {
	builder *spirv.ModuleBuilder
	ids     map[string]uint32
	descs   map[uint32]TypeDescription
}

// NewTypeTable creates a type table that emits into builder.
func NewTypeTable(builder *spirv.ModuleBuilder) *TypeTable {
	return &TypeTable{
		builder: builder,
		ids:     make(map[string]uint32, 16),
		descs:   make(map[uint32]TypeDescription, 16),
	}
}

// IDFor returns the id for desc, allocating and emitting it on first use.
// Returns 0 if desc's Primary is not a recognized type (logged by the
// caller, since this package has no diagnostics sink of its own).
func (t *TypeTable) IDFor(desc TypeDescription) uint32 {
	key := desc.key()
	if id, ok := t.ids[key]; ok {
		return id
	}

	id := t.emit(desc)
	if id == 0 {
		return 0
	}
	t.ids[key] = id
	t.descs[id] = desc
	return id
}

// TypeOf looks up the description registered for id.
func (t *TypeTable) TypeOf(id uint32) (TypeDescription, bool) {
	d, ok := t.descs[id]
	return d, ok
}

// Annotate records desc as the type of id without treating id as a
// dedup-eligible type id — used for values that carry a known type but
// were not allocated through IDFor, such as an OpVariable's result.
// Letting TypeOf answer for value ids too gives callers one check (read
// the description, see if Primary is KindPointer) instead of a second
// bookkeeping structure just for "is this a pointer".
func (t *TypeTable) Annotate(id uint32, desc TypeDescription) {
	t.descs[id] = desc
}

func (t *TypeTable) emit(desc TypeDescription) uint32 {
	switch desc.Primary {
	case KindVoid:
		return t.builder.AddTypeVoid()

	case KindBool:
		return t.builder.AddTypeBool()

	case KindInt:
		return t.builder.AddTypeInt(32, true)

	case KindFloat:
		return t.builder.AddTypeFloat(32)

	case KindVector:
		componentType := t.IDFor(TypeDescription{Primary: desc.Secondary})
		if componentType == 0 {
			return 0
		}
		return t.builder.AddTypeVector(componentType, desc.ComponentCount)

	case KindMatrix:
		columnType := t.IDFor(TypeDescription{
			Primary:        KindVector,
			Secondary:      desc.Secondary,
			ComponentCount: desc.ComponentCount,
		})
		if columnType == 0 {
			return 0
		}
		return t.builder.AddTypeMatrix(columnType, desc.ComponentCount)

	case KindPointer:
		if len(desc.Arguments) != 1 {
			return 0
		}
		return t.builder.AddTypePointer(desc.Storage, desc.Arguments[0])

	case KindSampler:
		return t.builder.AddTypeSampler()

	case KindImage:
		if len(desc.Arguments) != 1 {
			return 0
		}
		return t.builder.AddTypeImage(desc.Arguments[0], spirv.Dim2D)

	case KindSampledImage:
		if len(desc.Arguments) != 1 {
			return 0
		}
		return t.builder.AddTypeSampledImage(desc.Arguments[0])

	case KindFunction:
		if len(desc.Arguments) == 0 {
			return 0
		}
		return t.builder.AddTypeFunction(desc.Arguments[0], desc.Arguments[1:]...)

	default:
		return 0
	}
}
