// Package scanner turns source text into a stream of tokens.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/mprice/ownpy/reporting"
	"github.com/mprice/ownpy/token"
)

// Error is a fatal scanner failure: an unterminated string, an
// unterminated block comment, or a character no rule recognizes. Scanning
// aborts the current input on the first Error.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return reporting.AtLine(e.Line, e.Message)
}

// Scanner performs lexical analysis of source text one token at a time.
type Scanner struct {
	source string
	start  int // byte index of the current lexeme
	curr   int // next byte to consume
	line   int // 1-based line counter
}

// New creates a Scanner over source, ready to produce tokens.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes the entire source and returns the resulting tokens,
// terminated by exactly one EOF token. It is total unless the source
// contains an unterminated string or block comment, or a character no
// rule recognizes, in which case it fails fatally and returns the tokens
// scanned so far alongside the error.
func Scan(source string) ([]token.Token, error) {
	s := New(source)
	var tokens []token.Token
	for {
		tok, err := s.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (s *Scanner) atEnd() bool {
	return s.curr >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.curr]
	s.curr++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.curr]
}

func (s *Scanner) peekNext() byte {
	if s.curr+1 >= len(s.source) {
		return 0
	}
	return s.source[s.curr+1]
}

// match consumes the next byte only if it equals expected, and reports
// whether it did.
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.curr] != expected {
		return false
	}
	s.curr++
	return true
}

func (s *Scanner) lexeme() string {
	return s.source[s.start:s.curr]
}

func (s *Scanner) emit(kind token.Kind) token.Token {
	return token.New(kind, s.lexeme(), s.line)
}

func (s *Scanner) emitLiteral(kind token.Kind, literal any) token.Token {
	return token.NewLiteral(kind, s.lexeme(), literal, s.line)
}

// next scans and returns the single next token, skipping any preceding
// whitespace and comments.
func (s *Scanner) next() (token.Token, error) {
	if err := s.skipIgnorable(); err != nil {
		return token.Token{}, err
	}
	s.start = s.curr
	if s.atEnd() {
		return token.New(token.EOF, "", s.line), nil
	}

	c := s.advance()
	switch c {
	case '(':
		return s.emit(token.LeftParen), nil
	case ')':
		return s.emit(token.RightParen), nil
	case '{':
		return s.emit(token.LeftBrace), nil
	case '}':
		return s.emit(token.RightBrace), nil
	case ',':
		return s.emit(token.Comma), nil
	case '.':
		return s.emit(token.Dot), nil
	case '-':
		return s.emit(token.Minus), nil
	case '+':
		return s.emit(token.Plus), nil
	case ';':
		return s.emit(token.Semicolon), nil
	case '*':
		return s.emit(token.Star), nil
	case '&':
		return s.emit(token.BitwiseAnd), nil
	case '|':
		return s.emit(token.BitwiseOr), nil
	case '!':
		if s.match('=') {
			return s.emit(token.BangEqual), nil
		}
		return s.emit(token.Bang), nil
	case '=':
		if s.match('=') {
			return s.emit(token.EqualEqual), nil
		}
		return s.emit(token.Equal), nil
	case '<':
		if s.match('=') {
			return s.emit(token.LessEqual), nil
		}
		return s.emit(token.Less), nil
	case '>':
		if s.match('=') {
			return s.emit(token.GreaterEqual), nil
		}
		return s.emit(token.Greater), nil
	case '/':
		// Line and block comments are consumed by skipIgnorable before we
		// ever see a lone '/' here, so this is always the division operator.
		return s.emit(token.Slash), nil
	case '"':
		return s.scanString()
	default:
		if isDigit(c) {
			return s.scanNumber(), nil
		}
		if isAlpha(c) {
			return s.scanIdentifier(), nil
		}
		return token.Token{}, &Error{Line: s.line, Message: fmt.Sprintf("Unexpected character '%c'.", c)}
	}
}

// skipIgnorable consumes whitespace, line comments, and block comments
// ahead of the next token. An unterminated block comment is a fatal error.
func (s *Scanner) skipIgnorable() error {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.curr+1 < len(s.source) && s.source[s.curr+1] == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else if s.curr+1 < len(s.source) && s.source[s.curr+1] == '*' {
				if err := s.skipBlockComment(); err != nil {
					return err
				}
			} else {
				return nil
			}
		default:
			return nil
		}
	}
}

func (s *Scanner) skipBlockComment() error {
	startLine := s.line
	s.advance() // '/'
	s.advance() // '*'
	for {
		if s.atEnd() {
			return &Error{Line: startLine, Message: "Unterminated comment."}
		}
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return nil
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
}

func (s *Scanner) scanString() (token.Token, error) {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		return token.Token{}, &Error{Line: startLine, Message: "Unterminated string."}
	}
	s.advance() // closing quote
	contents := s.source[s.start+1 : s.curr-1]
	return s.emitLiteral(token.String, contents), nil
}

func (s *Scanner) scanNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	isFloat := false
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.lexeme()
	if isFloat {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return s.emitLiteral(token.Number, f)
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		// Lexeme is too large for an int64; fall back to float rather than
		// fail scanning over a magnitude issue.
		f, _ := strconv.ParseFloat(lexeme, 64)
		return s.emitLiteral(token.Number, f)
	}
	return s.emitLiteral(token.Number, i)
}

func (s *Scanner) scanIdentifier() token.Token {
	for isAlphanumeric(s.peek()) {
		s.advance()
	}
	text := s.lexeme()
	if kind, ok := token.Keywords[text]; ok {
		return s.emit(kind)
	}
	return s.emit(token.Identifier)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
