// Package token decodes the legacy fixed-token shader bytecode stream: a
// flat array of 32-bit little-endian words interpreted as instruction,
// destination, or source operand tokens depending on position.
//
// Stream provides forward-only cursor access; the pure DecodeOpcode/DecodeRegisterType/
// WriteMask/etc. functions decode the bit-fields packed into a single word.
// Register type is split across two disjoint bit-fields that must be
// reassembled — a non-obvious quirk of the original encoding that every
// caller of DecodeRegisterType relies on.
package token
