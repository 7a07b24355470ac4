package token

// SourceModifier is the D3DSPSM_*-style modifier on a source parameter
// token. Only a handful of values feed any handler today, but the field is
// decoded in full since the token layout is fixed width regardless of how
// much of it current opcode coverage uses.
type SourceModifier uint32

const (
	SourceModifierNone   SourceModifier = 0
	SourceModifierNegate SourceModifier = 1
	SourceModifierBias   SourceModifier = 2
	SourceModifierInvert SourceModifier = 3
)

// ResultModifier is the D3DSPDM_*-style modifier on a destination
// parameter token.
type ResultModifier uint32

const (
	ResultModifierNone       ResultModifier = 0
	ResultModifierSaturate   ResultModifier = 1
	ResultModifierPartialPrecision ResultModifier = 2
	ResultModifierCentroid   ResultModifier = 3
)

const (
	srcModMask  = 0x0F000000
	srcModShift = 24

	dstModMask  = 0x00F00000
	dstModShift = 20

	dstShiftMask  = 0x0F000000
	dstShiftShift = 24
)

// SourceModifierOf extracts the source modifier from a source parameter
// token.
func SourceModifierOf(word uint32) SourceModifier {
	return SourceModifier((word & srcModMask) >> srcModShift)
}

// ResultModifierOf extracts the result modifier from a destination
// parameter token.
func ResultModifierOf(word uint32) ResultModifier {
	return ResultModifier((word & dstModMask) >> dstModShift)
}

// ResultShiftOf extracts the result shift scale from a destination
// parameter token (signed 4-bit field, stored as two's complement).
func ResultShiftOf(word uint32) int8 {
	raw := (word & dstShiftMask) >> dstShiftShift
	if raw > 7 {
		return int8(raw) - 16
	}
	return int8(raw)
}
