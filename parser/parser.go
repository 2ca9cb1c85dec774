// Package parser implements a hand-written recursive-descent parser with
// error synchronization, turning a token stream into a list of statements.
package parser

import (
	"fmt"

	"github.com/mprice/ownpy/ast"
	"github.com/mprice/ownpy/reporting"
	"github.com/mprice/ownpy/token"
	"github.com/mprice/ownpy/value"
)

// parseError is an internal control-flow error: it carries the offending
// token so the caller can format and report it, then synchronize.
type parseError struct {
	Token   token.Token
	Message string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token.Kind, e.Message)
}

// statementStarters are the token kinds synchronize() treats as the start
// of a new statement, so parsing can resume there after an error.
var statementStarters = map[token.Kind]bool{
	token.Class:  true,
	token.Fun:    true,
	token.Var:    true,
	token.For:    true,
	token.If:     true,
	token.While:  true,
	token.Print:  true,
	token.Return: true,
}

// Parser converts a token slice into a list of ast.Stmt. Errors are
// reported through report rather than returned, so a single Parse call
// can surface more than one error.
type Parser struct {
	tokens  []token.Token
	current int
	report  func(message string)
}

// New creates a Parser over tokens. report is called once per parser error
// with an already-formatted message (see reporting.AtToken); pass a no-op
// if errors should be silently dropped.
func New(tokens []token.Token, report func(string)) *Parser {
	return &Parser{tokens: tokens, report: report}
}

// Parse parses the whole token stream into a list of statements.
//
// On an error, the parser reports it, synchronizes to the next statement
// boundary, and resumes — so the result may hold a partial program and more
// than one error may be reported. If the very first declaration fails, the
// parser gives up on the rest of the input and returns a single
// ExprStmt(Literal(Nil)) instead of a partial list.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.reportParseError(err)
			p.synchronize()
			if len(statements) == 0 {
				return []ast.Stmt{&ast.ExprStmt{Expr: &ast.LiteralExpr{Value: value.Nil}}}
			}
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

func (p *Parser) reportParseError(err error) {
	pe, ok := err.(*parseError)
	if !ok {
		p.report(err.Error())
		return
	}
	p.report(reporting.AtToken(pe.Token, pe.Message))
}

// --- declarations and statements ---

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr = &ast.LiteralExpr{Value: value.Nil}
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.match(token.Print) {
		return p.printStatement()
	}
	if p.match(token.LeftBrace) {
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// --- expressions, low to high precedence ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		val, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if variable, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: variable.Name, Value: val}, nil
		}
		// Invalid target: reported directly (no synchronization) so the
		// already-parsed left side can still be used by the caller.
		p.report(reporting.AtToken(equals, "Invalid assignment target."))
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.bitwise, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) bitwise() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.BitwiseAnd, token.BitwiseOr)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Slash, token.Star)
}

// leftAssocBinary implements the common `next (op next)*` shape shared by
// equality, comparison, bitwise, term, and factor.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: operator, Operand: operand}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: value.Bool(false)}, nil
	case p.match(token.True):
		return &ast.LiteralExpr{Value: value.Bool(true)}, nil
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: value.Nil}, nil
	case p.match(token.Number):
		return &ast.LiteralExpr{Value: numberValue(p.previous())}, nil
	case p.match(token.String):
		return &ast.LiteralExpr{Value: value.String(p.previous().Literal.(string))}, nil
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Inner: expr}, nil
	default:
		return nil, &parseError{Token: p.peek(), Message: "Expect expression."}
	}
}

func numberValue(tok token.Token) value.Value {
	switch lit := tok.Literal.(type) {
	case int64:
		return value.Integer(lit)
	case float64:
		return value.Float(lit)
	default:
		return value.Nil
	}
}

// --- token stream helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, &parseError{Token: p.peek(), Message: message}
}

// synchronize discards tokens until it reaches a likely statement
// boundary: just past a ';', or just before a token that starts a new
// statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		if statementStarters[p.peek().Kind] {
			return
		}
		p.advance()
	}
}
