// Package arith implements the arithmetic instruction handlers: MOV, ADD,
// SUB, MUL, DP3, DP4, MAD, and TEX.
package arith
