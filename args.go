package main

import (
	"fmt"
	"slices"
)

const usageText = `Usage:
  concat [options] [file|folder|glob ...]

Options:
  --help                 Show this help message and exit.
  --version              Print the version and exit.
  --output FILE          Write output to FILE instead of stdout.
  --pdf FILE             Also render the bundle as a PDF.
  --clipboard            Also copy the bundle to the clipboard.
  --gitignore            Skip files ignored by ./.gitignore.
  --interactive          Pick files and folders with a fuzzy finder.
  --tokenizer NAME       Tokenizer for the size report: tiktoken or huggingface.
  --model NAME           Tokenizer model (default o1).
  --tokenizer-file FILE  Local tokenizer.json for the huggingface tokenizer.
  --verbose              Log debug details to stderr.

If no --output is provided, output is written to stdout.
If directories are provided, their contents are included recursively.
Glob patterns are expanded to include matched files recursively.
Git repository URLs are cloned and web pages are included as Markdown.`

// UsageError reports a malformed command line.
type UsageError struct {
	Option string
}

func (e *UsageError) Error() string {
	if e.Option == "--output" || e.Option == "--pdf" || e.Option == "--tokenizer-file" {
		return fmt.Sprintf("%s specified but no file provided.", e.Option)
	}
	return fmt.Sprintf("%s specified but no value provided.", e.Option)
}

// Invocation is the parsed command line. It is built once and never modified.
type Invocation struct {
	ShowHelp    bool
	ShowVersion bool

	OutputPath string // Empty means stdout
	Patterns   []string

	PDFPath     string
	Clipboard   bool
	GitIgnore   bool
	Interactive bool
	Verbose     bool

	Tokenizer     string // Empty means "use settings"
	Model         string
	TokenizerFile string
}

// valueOptions take the next element as their value.
var valueOptions = map[string]func(*Invocation, string){
	"--output":         func(inv *Invocation, v string) { inv.OutputPath = v },
	"--pdf":            func(inv *Invocation, v string) { inv.PDFPath = v },
	"--tokenizer":      func(inv *Invocation, v string) { inv.Tokenizer = v },
	"--model":          func(inv *Invocation, v string) { inv.Model = v },
	"--tokenizer-file": func(inv *Invocation, v string) { inv.TokenizerFile = v },
}

var boolOptions = map[string]func(*Invocation){
	"--version":     func(inv *Invocation) { inv.ShowVersion = true },
	"--clipboard":   func(inv *Invocation) { inv.Clipboard = true },
	"--gitignore":   func(inv *Invocation) { inv.GitIgnore = true },
	"--interactive": func(inv *Invocation) { inv.Interactive = true },
	"--verbose":     func(inv *Invocation) { inv.Verbose = true },
}

// parseInvocation turns raw arguments into an Invocation.
// Only the first occurrence of each option is consumed; repeats are kept as
// patterns. The args slice is not modified.
func parseInvocation(args []string) (Invocation, error) {
	if len(args) == 0 || slices.Contains(args, "--help") {
		return Invocation{ShowHelp: true}, nil
	}

	var inv Invocation
	seen := make(map[string]bool)
	patterns := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if seen[arg] {
			patterns = append(patterns, arg)
			continue
		}
		if set, ok := valueOptions[arg]; ok {
			if i+1 >= len(args) {
				return Invocation{}, &UsageError{Option: arg}
			}
			seen[arg] = true
			set(&inv, args[i+1])
			i++
			continue
		}
		if set, ok := boolOptions[arg]; ok {
			seen[arg] = true
			set(&inv)
			continue
		}
		patterns = append(patterns, arg)
	}

	inv.Patterns = patterns
	return inv, nil
}
