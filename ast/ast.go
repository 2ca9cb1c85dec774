// Package ast defines the syntax tree node shapes produced by the parser
// and walked by the interpreter: six expression kinds and four statement
// kinds, each owned by its parent node.
package ast

import (
	"github.com/mprice/ownpy/token"
	"github.com/mprice/ownpy/value"
)

// Visitor dispatches over every expression and statement kind. The
// interpreter and any other tree walker (a printer, for instance)
// implements it.
type Visitor interface {
	VisitBinaryExpr(e *BinaryExpr) (value.Value, error)
	VisitGroupingExpr(e *GroupingExpr) (value.Value, error)
	VisitLiteralExpr(e *LiteralExpr) (value.Value, error)
	VisitUnaryExpr(e *UnaryExpr) (value.Value, error)
	VisitVariableExpr(e *VariableExpr) (value.Value, error)
	VisitAssignExpr(e *AssignExpr) (value.Value, error)

	VisitPrintStmt(s *PrintStmt) error
	VisitExprStmt(s *ExprStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
}

// Expr is any expression node. Accept dispatches to the matching Visitor
// method and returns whatever that method returns.
type Expr interface {
	Accept(v Visitor) (value.Value, error)
}

// Stmt is any statement node.
type Stmt interface {
	Accept(v Visitor) error
}

// BinaryExpr is `left op right`, e.g. `1 + 2`.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *BinaryExpr) Accept(v Visitor) (value.Value, error) { return v.VisitBinaryExpr(e) }

// GroupingExpr is a parenthesized expression: `(inner)`.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) Accept(v Visitor) (value.Value, error) { return v.VisitGroupingExpr(e) }

// LiteralExpr wraps a constant value fixed at parse time.
type LiteralExpr struct {
	Value value.Value
}

func (e *LiteralExpr) Accept(v Visitor) (value.Value, error) { return v.VisitLiteralExpr(e) }

// UnaryExpr is `op operand`, e.g. `-x` or `!done`.
type UnaryExpr struct {
	Operator token.Token
	Operand  Expr
}

func (e *UnaryExpr) Accept(v Visitor) (value.Value, error) { return v.VisitUnaryExpr(e) }

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) Accept(v Visitor) (value.Value, error) { return v.VisitVariableExpr(e) }

// AssignExpr is `name = value`. Right-associative; the parser guarantees
// Name was parsed from a Variable expression (or reports an error while
// still returning a usable tree — see parser.go).
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) Accept(v Visitor) (value.Value, error) { return v.VisitAssignExpr(e) }

// PrintStmt evaluates Expr and writes its display form.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) Accept(v Visitor) error { return v.VisitPrintStmt(s) }

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Accept(v Visitor) error { return v.VisitExprStmt(s) }

// VarStmt declares Name, optionally initialized by Initializer.
//
// Absence of an initializer is encoded by the parser as a LiteralExpr
// wrapping value.Nil; the interpreter recognizes that exact shape and
// skips defining the variable at all, per spec's documented (if
// surprising) var-without-initializer behavior.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v Visitor) error { return v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` sequence of statements executed in a fresh
// child scope.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v Visitor) error { return v.VisitBlockStmt(s) }
