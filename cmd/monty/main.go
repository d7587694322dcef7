// Command monty runs a Python-subset script: `monty run <file.py>` or
// a bare `monty <file.py>`, or a `monty.yml` manifest in the current
// directory when no script path is given, grounded on the teacher's `cmd/able/main.go`
// run(args)-int / os.Exit(run(...)) shape.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"monty/interpreter/pkg/driver"
	"monty/interpreter/pkg/interpreter"
	"monty/interpreter/pkg/parser"
)

const cliToolVersion = "monty 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	default:
		return runEntry(args)
	}
}

func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", args[1:])
		return 1
	}

	entry, echoResult, err := resolveEntry(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	source, err := os.ReadFile(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", entry, err)
		return 1
	}

	p, err := parser.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize parser: %v\n", err)
		return 1
	}
	defer p.Close()

	mod, err := p.ParseModule(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", entry, err)
		return 1
	}

	interp := interpreter.New(os.Stdout)
	last, hasLast, err := interp.Run(mod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", entry, err)
		return 1
	}
	if echoResult && hasLast {
		fmt.Fprintln(os.Stdout, last.Display())
	}
	return 0
}

// resolveEntry finds the script to run: an explicit path argument
// takes precedence and never echoes a trailing result (no manifest to
// opt in); otherwise a monty.yml manifest in the current directory
// names the entry script and may set echo_result, per SPEC_FULL.md
// §10.2 ("running a bare file directly is always supported").
func resolveEntry(args []string) (string, bool, error) {
	if len(args) == 1 {
		return args[0], false, nil
	}

	manifestPath := filepath.Join(".", "monty.yml")
	if _, err := os.Stat(manifestPath); err != nil {
		return "", false, fmt.Errorf("monty run requires a script path or a monty.yml manifest in the current directory")
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to load manifest: %w", err)
	}
	return manifest.ResolveEntry(), manifest.EchoResult, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  monty run <file.py>")
	fmt.Fprintln(os.Stderr, "  monty <file.py>")
	fmt.Fprintln(os.Stderr, "  monty run   (uses ./monty.yml)")
	fmt.Fprintln(os.Stderr, "  monty version")
}
