// Package ir holds the translator's working state for one shader
// conversion: the type table, the id allocator, the register map, and
// swizzle lowering.
//
// Unlike a general-purpose shader IR, there is no expression tree and no
// statement list — the legacy bytecode format is translated in a single
// pass, so ir only needs the bookkeeping a streaming translator requires
// to keep SPIR-V's SSA and type-uniqueness rules satisfied: a structural
// type table keyed by (primary, secondary, ternary, component count,
// arguments), a monotonic id allocator, and a register → current-id map
// rewritten on every write.
package ir
