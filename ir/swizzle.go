package ir

import (
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// LowerSwizzle produces the id of the swizzled form of inputID, whose
// source token carries the swizzle field. destWriteMask sizes the output:
// a narrower destination write mask produces a narrower shuffle, never a
// hardcoded 4-wide one.
func LowerSwizzle(builder *spirv.ModuleBuilder, types *TypeTable, tok uint32, inputID uint32, destWriteMask uint32) uint32 {
	components := [4]uint32{
		token.SwizzleComponent(tok, 0),
		token.SwizzleComponent(tok, 1),
		token.SwizzleComponent(tok, 2),
		token.SwizzleComponent(tok, 3),
	}

	if isIdentityOrZero(components) {
		return inputID
	}

	if isBroadcast(components) {
		scalarType := types.IDFor(TypeDescription{Primary: KindFloat})
		if scalarType == 0 {
			return 0
		}
		return builder.AddCompositeExtract(scalarType, inputID, components[0])
	}

	outputCount := token.PopCount4(destWriteMask)
	if outputCount < 1 {
		outputCount = 1
	}
	if outputCount > 4 {
		outputCount = 4
	}

	resultType := types.IDFor(TypeDescription{
		Primary:        KindVector,
		Secondary:      KindFloat,
		ComponentCount: uint32(outputCount),
	})
	if resultType == 0 {
		return 0
	}

	literals := make([]uint32, outputCount)
	copy(literals, components[:outputCount])

	return builder.AddVectorShuffle(resultType, inputID, inputID, literals)
}

func isIdentityOrZero(c [4]uint32) bool {
	identity := true
	zero := true
	for i, v := range c {
		if v != uint32(i) {
			identity = false
		}
		if v != 0 {
			zero = false
		}
	}
	return identity || zero
}

func isBroadcast(c [4]uint32) bool {
	return c[0] == c[1] && c[1] == c[2] && c[2] == c[3]
}
