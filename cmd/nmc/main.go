package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rgonek/notion-md-converter/converter"
	"github.com/rgonek/notion-md-converter/mdconverter"
)

const (
	modeMarkdown = "md"
	modeBlocks   = "blocks"
)

func main() {
	mode := flag.String("mode", modeMarkdown, "conversion mode: md (markdown to block JSON) or blocks (fetched block JSON to text)")
	strict := flag.Bool("strict", false, "fail on unknown block types when rendering")
	flag.Parse()

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fatalf("failed to read input: %v", err)
	}

	switch *mode {
	case modeMarkdown:
		conv, err := mdconverter.New(mdconverter.Config{})
		if err != nil {
			fatalf("invalid config: %v", err)
		}

		result, err := conv.Convert(string(input))
		if err != nil {
			fatalf("conversion failed: %v", err)
		}
		printWarnings(result.Warnings)

		payload, err := json.MarshalIndent(result.Blocks, "", "  ")
		if err != nil {
			fatalf("failed to marshal blocks: %v", err)
		}
		fmt.Println(string(payload))

	case modeBlocks:
		result, err := converter.New(converter.Config{Strict: *strict}).Convert(input)
		if err != nil {
			fatalf("conversion failed: %v", err)
		}
		printWarnings(result.Warnings)
		fmt.Println(result.Markdown)

	default:
		fatalf("unknown mode %q (allowed: %s, %s)", *mode, modeMarkdown, modeBlocks)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printWarnings(warnings []converter.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", warning.Type, warning.Message)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
