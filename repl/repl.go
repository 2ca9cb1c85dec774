/*
Package repl implements the Read-Eval-Print Loop for the interpreter.
The REPL provides an interactive environment where users can:
- Enter statements line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the scanner, parser, and interpreter to execute user
input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mprice/ownpy/interpreter"
	"github.com/mprice/ownpy/parser"
	"github.com/mprice/ownpy/scanner"
)

// Color definitions for REPL output.
// - blueColor: decorative lines and separators
// - yellowColor: version/author/license line of the banner
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string
	Author  string
	Line    string // separator line for visual formatting
	License string
	Prompt  string
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates an interpreter instance whose environment persists for the
//    whole session, so a variable declared on one line is visible on the
//    next
// 4. Enters the main read-eval-print loop
//
// The loop continues until the user types '.exit', EOF is encountered
// (Ctrl+D), or readline itself errors.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	in := interpreter.New()
	in.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, in)
	}
}

// executeWithRecovery scans, parses, and interprets one line of input.
// Unlike script mode, the REPL never exits on error: scan errors, parse
// errors, and runtime errors are all printed in red and the loop
// continues so the user can correct the mistake and try again.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, in *interpreter.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime panic] %v\n", recovered)
		}
	}()

	tokens, scanErr := scanner.Scan(line)
	if scanErr != nil {
		redColor.Fprintf(writer, "%s\n", scanErr.Error())
		return
	}

	var parseErrors []string
	p := parser.New(tokens, func(msg string) {
		parseErrors = append(parseErrors, msg)
	})
	statements := p.Parse()
	if len(parseErrors) > 0 {
		for _, msg := range parseErrors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	if err := in.Run(statements); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
