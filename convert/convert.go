// Package convert drives the five-step pipeline that turns a legacy
// shader bytecode token stream into a SPIR-V module and its sidecar:
// header decode, prologue, instruction dispatch, epilogue, and section
// assembly.
package convert

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/shaderconv/arith"
	"github.com/gogpu/shaderconv/constdef"
	"github.com/gogpu/shaderconv/declare"
	"github.com/gogpu/shaderconv/ir"
	"github.com/gogpu/shaderconv/spirv"
	"github.com/gogpu/shaderconv/token"
)

// Converter runs the pipeline. The zero value behaves like
// NewConverter(nil, nil).
type Converter struct {
	factory   ModuleFactory
	debugDump io.Writer
}

// NewConverter creates a converter. factory may be nil, in which case no
// driver module handle is ever requested. debugDump may be nil; when
// set, the raw SPIR-V word blob is written through it in addition to
// being returned in Result.
func NewConverter(factory ModuleFactory, debugDump io.Writer) *Converter {
	return &Converter{factory: factory, debugDump: debugDump}
}

// Convert runs the full pipeline over one shader's token stream.
func (c *Converter) Convert(tokens []uint32) (*Result, error) {
	if len(tokens) == 0 {
		return nil, newConvertError("shaderconv: empty token stream")
	}

	kind := token.HeaderShaderKind(tokens[0])

	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := ir.NewTypeTable(builder)
	alloc := ir.NewIdAllocator(builder)

	var diagnostics []Diagnostic
	warn := func(msg string) {
		slog.Warn(msg, "shaderKind", kind)
		diagnostics = append(diagnostics, Diagnostic{Severity: SeverityWarning, Message: msg})
	}

	regs := ir.NewRegisterMap(alloc, types, builder, warn)
	declarer := declare.NewDeclarer(builder, types, regs, warn)
	definer := constdef.NewDefiner(builder, types, regs)
	evaluator := arith.NewEvaluator(builder, types, regs, warn)

	// Prologue: the legacy format always compiles to a single function,
	// so there is exactly one OpFunction/OpLabel pair to emit up front.
	voidType := types.IDFor(ir.TypeDescription{Primary: ir.KindVoid})
	funcType := types.IDFor(ir.TypeDescription{Primary: ir.KindFunction, Arguments: []uint32{voidType}})
	funcID := builder.AddFunction(funcType, voidType, spirv.FunctionControlNone)
	builder.AddLabel()

	if err := dispatch(tokens, kind, declarer, definer, evaluator, &diagnostics); err != nil {
		return nil, err
	}

	builder.AddReturn()
	builder.AddFunctionEnd()

	builder.AddCapability(spirv.CapabilityShader)
	builder.AddExtInstImport("GLSL.std.450")
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	execModel := spirv.ExecutionModelFragment
	if kind == token.ShaderKindVertex {
		execModel = spirv.ExecutionModelVertex
	}
	builder.AddEntryPoint(execModel, funcID, "main", declarer.Sidecar.InterfaceIDs)
	if execModel == spirv.ExecutionModelFragment {
		builder.AddExecutionMode(funcID, spirv.ExecutionModeOriginLowerLeft)
	}

	words := builder.Build()
	if c.debugDump != nil {
		_, _ = c.debugDump.Write(words)
	}

	result := &Result{
		SPIRV:              words,
		VertexAttributes:   declarer.Sidecar.VertexAttributes,
		DescriptorBindings: declarer.Sidecar.DescriptorBindings,
		Diagnostics:        diagnostics,
	}

	// Module creation stands in for handing the blob to the graphics
	// driver. A nil factory is skipped and leaves the handle zero; a
	// failing factory logs fatal and leaves the handle zero. The sidecar
	// is returned in both cases.
	if c.factory != nil {
		handle, err := c.factory.CreateModule(words)
		if err != nil {
			moduleErr := wrapConvertError(err, "module creation failed")
			slog.Error(moduleErr.Error(), "shaderKind", kind)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Severity: SeverityFatal,
				Message:  moduleErr.Error(),
			})
		} else {
			result.ModuleHandle = handle
		}
	}

	return result, nil
}

// dispatch runs the instruction loop: decode one opcode token at a time,
// route it to the matching handler package, and advance by exactly the
// number of operand tokens that opcode consumes — looked up in
// paramCount even for opcodes with no handler, so the loop never
// desyncs on an instruction it doesn't implement.
func dispatch(
	tokens []uint32,
	kind token.ShaderKind,
	declarer *declare.Declarer,
	definer *constdef.Definer,
	evaluator *arith.Evaluator,
	diagnostics *[]Diagnostic,
) error {
	i := 1
	for i < len(tokens) {
		instr := tokens[i]
		op := token.DecodeOpcode(instr)
		if op == token.OpEnd {
			return nil
		}

		switch op {
		case token.OpDcl:
			if !need(tokens, i, 2) {
				return truncated(op, i)
			}
			if kind == token.ShaderKindVertex {
				declarer.DeclareVertex(tokens[i+1], tokens[i+2])
			} else {
				declarer.DeclarePixel(tokens[i+1], tokens[i+2])
			}
			i += 3

		case token.OpDef:
			if !need(tokens, i, 5) {
				return truncated(op, i)
			}
			definer.DefineFloat4(tokens[i+1], [4]uint32{tokens[i+2], tokens[i+3], tokens[i+4], tokens[i+5]})
			i += 6

		case token.OpDefI:
			if !need(tokens, i, 5) {
				return truncated(op, i)
			}
			definer.DefineInt4(tokens[i+1], [4]uint32{tokens[i+2], tokens[i+3], tokens[i+4], tokens[i+5]})
			i += 6

		case token.OpDefB:
			if !need(tokens, i, 2) {
				return truncated(op, i)
			}
			definer.DefineBool(tokens[i+1], tokens[i+2])
			i += 3

		case token.OpMov:
			if !need(tokens, i, 2) {
				return truncated(op, i)
			}
			evaluator.Mov(tokens[i+1], tokens[i+2])
			i += 3

		case token.OpAdd:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Add(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpSub:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Sub(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpMul:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Mul(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpDp3:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Dp3(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpDp4:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Dp4(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpMad:
			if !need(tokens, i, 4) {
				return truncated(op, i)
			}
			evaluator.Mad(tokens[i+1], tokens[i+2], tokens[i+3], tokens[i+4])
			i += 5

		case token.OpTex:
			if !need(tokens, i, 3) {
				return truncated(op, i)
			}
			evaluator.Tex(tokens[i+1], tokens[i+2], tokens[i+3])
			i += 4

		case token.OpNop, token.OpPhase:
			i += 1 + paramCount[op]

		case token.OpComment:
			i += 1 + int(token.CommentPayloadLength(instr))

		default:
			count, ok := paramCount[op]
			if !ok {
				return newConvertError("shaderconv: unrecognized opcode 0x%04x at token %d", uint32(op), i)
			}
			msg := fmt.Sprintf("unsupported opcode 0x%04x skipped", uint32(op))
			slog.Warn(msg, "shaderKind", kind)
			*diagnostics = append(*diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Message:  msg,
			})
			i += 1 + count
		}
	}
	return nil
}

func need(tokens []uint32, i int, extra int) bool {
	return i+extra < len(tokens)
}

func truncated(op token.Opcode, i int) error {
	return newConvertError("shaderconv: truncated instruction stream at opcode 0x%04x, token %d", uint32(op), i)
}
