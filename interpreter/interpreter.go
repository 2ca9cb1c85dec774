// Package interpreter walks the syntax tree produced by the parser,
// evaluating expressions and executing statements against a chain of
// lexically-scoped environments.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/mprice/ownpy/ast"
	"github.com/mprice/ownpy/environment"
	"github.com/mprice/ownpy/token"
	"github.com/mprice/ownpy/value"
)

// RuntimeError is a failure discovered while executing a statement or
// evaluating an expression: a type mismatch, an undefined variable, or a
// division by zero. It carries the offending token so the caller can
// report a line number.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Interpreter holds the state needed to execute a program: the current
// environment and the writer print statements write to.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New creates an Interpreter with a fresh global environment, writing print
// output to os.Stdout.
func New() *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{
		Globals: globals,
		env:     globals,
		Writer:  os.Stdout,
	}
}

// SetWriter redirects print-statement output, primarily for tests.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Run executes a list of statements in order, stopping at the first
// RuntimeError. The environment persists across calls, so a REPL can call
// Run once per line and keep earlier variable bindings in scope.
func (in *Interpreter) Run(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	return expr.Accept(in)
}

// --- statements ---

func (in *Interpreter) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := in.evaluate(s.Expr)
	return err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := in.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.Writer, v.Display())
	return nil
}

// VisitVarStmt declares Name in the current scope. A bare `var x;` is
// parsed with Initializer set to a LiteralExpr(Nil) sentinel; the
// interpreter recognizes that exact shape and skips the Define call
// entirely, leaving the name unbound rather than bound to Nil.
func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	if lit, ok := s.Initializer.(*ast.LiteralExpr); ok && lit.Value.IsNil() {
		return nil
	}
	v, err := in.evaluate(s.Initializer)
	if err != nil {
		return err
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	previous := in.env
	in.env = environment.New(previous)
	defer func() { in.env = previous }()

	for _, stmt := range s.Statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- expressions ---

func (in *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (value.Value, error) {
	return e.Value, nil
}

func (in *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (value.Value, error) {
	return in.evaluate(e.Inner)
}

func (in *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (value.Value, error) {
	v, err := in.env.Get(e.Name.Lexeme)
	if err != nil {
		return value.Nil, &RuntimeError{Token: e.Name, Message: err.Error()}
	}
	return v, nil
}

// VisitAssignExpr evaluates Value and stores it in the nearest scope that
// already declares Name, then yields that same value so assignment can be
// chained or used as a subexpression.
func (in *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (value.Value, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return value.Nil, err
	}
	if err := in.env.Assign(e.Name.Lexeme, v); err != nil {
		return value.Nil, &RuntimeError{Token: e.Name, Message: err.Error()}
	}
	return v, nil
}

func (in *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (value.Value, error) {
	operand, err := in.evaluate(e.Operand)
	if err != nil {
		return value.Nil, err
	}

	switch e.Operator.Kind {
	case token.Minus:
		switch operand.Kind() {
		case value.IntegerKind:
			return value.Integer(-operand.AsInteger()), nil
		case value.FloatKind:
			return value.Float(-operand.AsFloat()), nil
		default:
			return value.Nil, in.typeError(e.Operator, "Invalid data type for -")
		}
	case token.Bang:
		return value.Bool(!operand.Truthy()), nil
	}
	return value.Nil, in.typeError(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return value.Nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return value.Nil, err
	}

	switch e.Operator.Kind {
	case token.EqualEqual:
		return value.Bool(left.Equal(right)), nil
	case token.BangEqual:
		return value.Bool(!left.Equal(right)), nil
	case token.Plus:
		return in.add(e.Operator, left, right)
	case token.Minus, token.Star, token.Slash:
		return in.arithmetic(e.Operator, left, right)
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return in.compare(e.Operator, left, right)
	}
	return value.Nil, in.typeError(e.Operator, "Unknown binary operator.")
}

// add implements '+', which is overloaded over numbers (int+int, float+
// float) and strings (concatenation); mixed numeric kinds and any
// combination involving a non-numeric, non-string operand are errors.
func (in *Interpreter) add(op token.Token, left, right value.Value) (value.Value, error) {
	if left.Kind() == value.StringKind && right.Kind() == value.StringKind {
		return value.String(left.AsString() + right.AsString()), nil
	}
	if left.Kind() == value.IntegerKind && right.Kind() == value.IntegerKind {
		return value.Integer(left.AsInteger() + right.AsInteger()), nil
	}
	if left.Kind() == value.FloatKind && right.Kind() == value.FloatKind {
		return value.Float(left.AsFloat() + right.AsFloat()), nil
	}
	return value.Nil, in.typeError(op, "Invalid operator")
}

// arithmetic implements '-', '*', '/' over same-kind numeric operands. No
// implicit promotion between integer and float is performed.
func (in *Interpreter) arithmetic(op token.Token, left, right value.Value) (value.Value, error) {
	if left.Kind() != right.Kind() || (left.Kind() != value.IntegerKind && left.Kind() != value.FloatKind) {
		return value.Nil, in.typeError(op, "Invalid operator")
	}

	if left.Kind() == value.IntegerKind {
		l, r := left.AsInteger(), right.AsInteger()
		switch op.Kind {
		case token.Minus:
			return value.Integer(l - r), nil
		case token.Star:
			return value.Integer(l * r), nil
		case token.Slash:
			if r == 0 {
				return value.Nil, &RuntimeError{Token: op, Message: "Division by zero."}
			}
			return value.Integer(l / r), nil
		}
	}

	l, r := left.AsFloat(), right.AsFloat()
	switch op.Kind {
	case token.Minus:
		return value.Float(l - r), nil
	case token.Star:
		return value.Float(l * r), nil
	case token.Slash:
		return value.Float(l / r), nil
	}
	return value.Nil, in.typeError(op, "Unknown arithmetic operator.")
}

// compare implements the four ordering operators, defined over same-kind
// numeric operands only.
func (in *Interpreter) compare(op token.Token, left, right value.Value) (value.Value, error) {
	if left.Kind() != right.Kind() || (left.Kind() != value.IntegerKind && left.Kind() != value.FloatKind) {
		return value.Nil, in.typeError(op, "Invalid operator")
	}

	var less, equal bool
	if left.Kind() == value.IntegerKind {
		l, r := left.AsInteger(), right.AsInteger()
		less, equal = l < r, l == r
	} else {
		l, r := left.AsFloat(), right.AsFloat()
		less, equal = l < r, l == r
	}

	switch op.Kind {
	case token.Less:
		return value.Bool(less), nil
	case token.LessEqual:
		return value.Bool(less || equal), nil
	case token.Greater:
		return value.Bool(!less && !equal), nil
	case token.GreaterEqual:
		return value.Bool(!less), nil
	}
	return value.Nil, in.typeError(op, "Unknown comparison operator.")
}

func (in *Interpreter) typeError(op token.Token, message string) error {
	return &RuntimeError{Token: op, Message: message}
}
