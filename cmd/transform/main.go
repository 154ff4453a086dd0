// Command transform runs the portfolio mappers offline: it reads a resume or
// legacy JSON file, prints the canonical record, and optionally projects it
// onto an editor section or a template view model.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"portfolio-builder/internal/adapter/template"
	"portfolio-builder/internal/model"
	"portfolio-builder/internal/usecase"
)

func main() {
	kind := flag.String("kind", "resume", "input kind: resume, legacy or canonical")
	in := flag.String("in", "-", "input JSON file, - for stdin")
	portfolioType := flag.String("type", model.DefaultPortfolioType, "portfolio type hint")
	tpl := flag.String("template", "", "render the record with this template")
	section := flag.String("section", "", "project the record onto this editor section")
	validate := flag.Bool("validate", false, "print the validation result instead of the record")
	flag.Parse()

	b, err := readInput(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(2)
	}

	p, err := load(*kind, b, *portfolioType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transform: %v\n", err)
		os.Exit(1)
	}

	var out interface{} = p
	switch {
	case *validate:
		out = usecase.Validate(p)
	case *tpl != "":
		out, err = template.Default().Adapt(*tpl, p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(2)
		}
	case *section != "":
		out = usecase.ToComponentProps(p, *section)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(2)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func load(kind string, b []byte, portfolioType string) (*model.Portfolio, error) {
	if kind == "canonical" {
		return model.Decode(b)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	switch kind {
	case "resume":
		return usecase.FromResume(raw, portfolioType)
	case "legacy":
		return usecase.FromLegacy(raw)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
