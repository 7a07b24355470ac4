// Package constdef implements the constant definition handlers: DEF
// (float4), DEFI (int4), and DEFB (bool).
package constdef
