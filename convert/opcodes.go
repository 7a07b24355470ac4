package convert

import "github.com/gogpu/shaderconv/token"

// paramCount is how many tokens follow an instruction's opcode token:
// one destination plus N source tokens for the arithmetic family, one
// usage plus one register token for DCL, one destination plus four
// literals for DEF/DEFI, one destination plus one literal for DEFB.
//
// Opcodes this module does not implement (RCP, RSQ) still carry an entry
// so the dispatch loop can skip exactly the right number of tokens
// instead of misreading the next instruction's opcode token as an
// operand.
var paramCount = map[token.Opcode]int{
	token.OpNop:   0,
	token.OpMov:   2,
	token.OpAdd:   3,
	token.OpSub:   3,
	token.OpMad:   4,
	token.OpMul:   3,
	token.OpRcp:   2,
	token.OpRsq:   2,
	token.OpDp3:   3,
	token.OpDp4:   3,
	token.OpDcl:   2,
	token.OpDefB:  2,
	token.OpDefI:  5,
	token.OpTex:   3,
	token.OpDef:   5,
	token.OpPhase: 0,
}
