// Package runner executes a single source file end to end: scan, parse,
// interpret, then report success or failure to the caller.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/mprice/ownpy/interpreter"
	"github.com/mprice/ownpy/parser"
	"github.com/mprice/ownpy/reporting"
	"github.com/mprice/ownpy/scanner"
)

// RunFile reads the file at path, interprets it, and writes print output
// to writer. It returns an error if the file cannot be read, or if the
// scanner, parser, or interpreter hits a fatal error — the caller is
// expected to translate a non-nil error into a nonzero process exit
// status, per the file-mode contract.
func RunFile(path string, writer io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", path, err)
	}
	return Run(string(source), writer)
}

// Run scans, parses, and interprets source against a fresh interpreter.
// A scanner error aborts immediately; parser errors are all reported but
// still cause Run to fail once any are found; a runtime error aborts
// execution of the remaining statements.
func Run(source string, writer io.Writer) error {
	tokens, err := scanner.Scan(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return err
	}

	var parseErrors []string
	p := parser.New(tokens, func(msg string) {
		parseErrors = append(parseErrors, msg)
	})
	statements := p.Parse()
	if len(parseErrors) > 0 {
		for _, msg := range parseErrors {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("%d parse error(s)", len(parseErrors))
	}

	in := interpreter.New()
	in.SetWriter(writer)
	if err := in.Run(statements); err != nil {
		fmt.Fprintln(os.Stderr, reportRuntimeError(err))
		return err
	}
	return nil
}

func reportRuntimeError(err error) string {
	if re, ok := err.(*interpreter.RuntimeError); ok {
		return reporting.AtToken(re.Token, re.Message)
	}
	return err.Error()
}
