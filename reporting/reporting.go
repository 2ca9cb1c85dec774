// Package reporting formats the three error kinds (scanner, parser,
// runtime) into the "[line L] Error LOC: MSG" shape spec'd for stdout.
package reporting

import (
	"fmt"

	"github.com/mprice/ownpy/token"
)

// AtToken formats an error located at tok. EOF tokens report "at end";
// every other token reports "at 'LEXEME'".
func AtToken(tok token.Token, message string) string {
	if tok.Kind == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", tok.Line, message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, message)
}

// AtLine formats an error with no token context (a scanner failure, for
// instance), whose location is just a line number.
func AtLine(line int, message string) string {
	return fmt.Sprintf("[line %d] Error: %s", line, message)
}
