package ir

import (
	"testing"

	"github.com/gogpu/shaderconv/spirv"
)

func swizzleToken(x, y, z, w uint32) uint32 {
	return (x << 16) | (y << 18) | (z << 20) | (w << 22)
}

func TestLowerSwizzleIdentityNoOp(t *testing.T) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := NewTypeTable(builder)

	inputID := uint32(42)
	got := LowerSwizzle(builder, types, swizzleToken(0, 1, 2, 3), inputID, 0xF)
	if got != inputID {
		t.Fatalf("identity swizzle returned %d, want unchanged input %d", got, inputID)
	}
}

func TestLowerSwizzleZeroNoOp(t *testing.T) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := NewTypeTable(builder)

	inputID := uint32(7)
	got := LowerSwizzle(builder, types, swizzleToken(0, 0, 0, 0), inputID, 0xF)
	if got != inputID {
		t.Fatalf("all-zero swizzle returned %d, want unchanged input %d", got, inputID)
	}
}

func TestLowerSwizzleBroadcastEmitsCompositeExtract(t *testing.T) {
	builder := spirv.NewModuleBuilder(spirv.Version1_3)
	types := NewTypeTable(builder)

	inputID := uint32(5)
	_ = LowerSwizzle(builder, types, swizzleToken(2, 2, 2, 2), inputID, 0xF)

	words := builder.Words()
	extracts := 0
	for i := 5; i < len(words); {
		wc := words[i] >> 16
		if wc == 0 {
			break
		}
		if spirv.OpCode(words[i]&0xFFFF) == spirv.OpCompositeExtract {
			extracts++
		}
		i += int(wc)
	}
	if extracts != 1 {
		t.Fatalf("broadcast swizzle emitted %d OpCompositeExtract instructions, want 1", extracts)
	}

	binary := builder.Build()
	if len(binary) == 0 {
		t.Fatal("expected emitted words for broadcast swizzle")
	}
}

func TestLowerSwizzleOutputArityMatchesWriteMask(t *testing.T) {
	cases := []struct {
		writeMask uint32
		want      uint32
	}{
		{0b0011, 2},
		{0b0111, 3},
		{0b1111, 4},
	}

	for _, c := range cases {
		builder := spirv.NewModuleBuilder(spirv.Version1_3)
		types := NewTypeTable(builder)

		LowerSwizzle(builder, types, swizzleToken(1, 0, 3, 2), 9, c.writeMask)

		words := builder.Words()
		shuffleWordCount, literalCount := findVectorShuffle(words)
		if shuffleWordCount == 0 {
			t.Fatalf("writeMask=0b%04b: no OpVectorShuffle found", c.writeMask)
		}
		if literalCount != c.want {
			t.Errorf("writeMask=0b%04b: shuffle literal count = %d, want %d", c.writeMask, literalCount, c.want)
		}
	}
}

// findVectorShuffle scans a word stream for an OpVectorShuffle and returns
// its word count and the number of trailing component literals (word count
// minus the fixed opcode/result-type/result-id/vec1/vec2 words).
func findVectorShuffle(words []uint32) (wordCount uint32, literalCount uint32) {
	for i := 5; i < len(words); { // skip the 5-word module header
		w := words[i]
		wc := w >> 16
		op := spirv.OpCode(w & 0xFFFF)
		if wc == 0 {
			break
		}
		if op == spirv.OpVectorShuffle {
			return wc, wc - 5
		}
		i += int(wc)
	}
	return 0, 0
}
