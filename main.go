/*
ownpy is a tree-walking interpreter for a small Lox-descendant scripting
language: scan, parse, and evaluate, either one file at a time or
interactively.

Usage:

	ownpy            interactive prompt
	ownpy <script>   run a script file, then exit
*/
package main

import (
	"fmt"
	"os"

	"github.com/mprice/ownpy/repl"
	"github.com/mprice/ownpy/runner"
)

const (
	banner = `
  ___ __      ___ __  _   _
 / _ \\ \ /\ / / '_ \| | | |
| (_) |\ V  V /| | | | |_| |
 \___/  \_/\_/ |_| |_|\__, |
                       __/ |
                      |___/`
	version = "0.1.0"
	author  = "ownpy contributors"
	line    = "----------------------------------------"
	license = "MIT"
	prompt  = "ownpy >>> "
)

func main() {
	switch len(os.Args) {
	case 1:
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.Start(os.Stdout)
	case 2:
		if err := runner.RunFile(os.Args[1], os.Stdout); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Println("Usage: ownpy [script]")
	}
}
