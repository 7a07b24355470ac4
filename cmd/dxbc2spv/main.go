// Command dxbc2spv converts a legacy fixed-function shader bytecode token
// stream into a SPIR-V module and its Vulkan sidecar.
//
// Usage:
//
//	dxbc2spv [options] <input>
//
// Examples:
//
//	dxbc2spv shader.bin                         # Convert, write SPIR-V to stdout
//	dxbc2spv -o shader.spv shader.bin           # Convert to file
//	dxbc2spv -sidecar shader.json shader.bin    # Also emit the sidecar as JSON
package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/shaderconv/convert"
)

var (
	output  = flag.String("o", "", "output file for the SPIR-V module (default: stdout)")
	sidecar = flag.String("sidecar", "", "output file for the vertex-attribute/descriptor-binding sidecar, as JSON")
	debug   = flag.String("debugdump", "", "also write the raw SPIR-V words to this file")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	tokens, err := decodeTokens(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding token stream: %v\n", err)
		os.Exit(1)
	}

	var debugDump io.Writer
	if *debug != "" {
		f, err := os.Create(*debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug dump file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		debugDump = f
	}

	result, err := convert.NewConverter(nil, debugDump).Convert(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conversion error: %v\n", err)
		os.Exit(1)
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s: %s\n", d.Severity, d.Message)
	}

	if err := writeSPIRV(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	if *sidecar != "" {
		if err := writeSidecar(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing sidecar: %v\n", err)
			os.Exit(1)
		}
	}
}

// decodeTokens reads raw as a stream of little-endian uint32 tokens.
func decodeTokens(raw []byte) ([]uint32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("input length %d is not a multiple of 4 bytes", len(raw))
	}
	tokens := make([]uint32, len(raw)/4)
	for i := range tokens {
		tokens[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return tokens, nil
}

func writeSPIRV(result *convert.Result) error {
	if *output == "" {
		_, err := os.Stdout.Write(result.SPIRV)
		return err
	}
	if err := os.WriteFile(*output, result.SPIRV, 0644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d bytes to %s\n", len(result.SPIRV), *output)
	return nil
}

func writeSidecar(result *convert.Result) error {
	payload := struct {
		VertexAttributes   interface{} `json:"vertexAttributes"`
		DescriptorBindings interface{} `json:"descriptorBindings"`
	}{
		VertexAttributes:   result.VertexAttributes,
		DescriptorBindings: result.DescriptorBindings,
	}
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*sidecar, encoded, 0644)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dxbc2spv [options] <input.bin>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  dxbc2spv shader.bin                      Convert to stdout\n")
	fmt.Fprintf(os.Stderr, "  dxbc2spv -o shader.spv shader.bin        Convert to file\n")
	fmt.Fprintf(os.Stderr, "  dxbc2spv -sidecar shader.json shader.bin Also emit the sidecar\n")
}
