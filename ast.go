// ast.go — the Expression and Statement sum types the parser builds and the
// evaluator walks.
//
// Each node exclusively owns its children: the tree is finite, acyclic, and
// built bottom-up. Nodes are Go interfaces implemented by small structs, with
// exhaustive type switches at every consumer (the evaluator, the printer) in
// place of any visitor or virtual-dispatch indirection.
package lox

// Expression is a Lox expression-tree node. The concrete types below are its
// only implementations.
type Expression interface {
	Span() Span
}

// Binary is `left operator right`, e.g. `1 + 2` or `a == b`.
type Binary struct {
	Left     Expression
	Operator Token
	Right    Expression
}

func (b *Binary) Span() Span { return Merge(b.Left.Span(), b.Right.Span()) }

// Grouping is a parenthesized expression: `( inner )`.
type Grouping struct {
	Inner    Expression
	OpenSpan Span // span of the "(" token, widened to include ")"
}

func (g *Grouping) Span() Span { return g.OpenSpan }

// Unary is `operator inner`, e.g. `-x` or `!flag`.
type Unary struct {
	Operator Token
	Inner    Expression
}

func (u *Unary) Span() Span { return Merge(u.Operator.Span, u.Inner.Span()) }

// LiteralBool is the literal `true` or `false`.
type LiteralBool struct {
	Value bool
	At    Span
}

func (l *LiteralBool) Span() Span { return l.At }

// LiteralNil is the literal `nil`.
type LiteralNil struct {
	At Span
}

func (l *LiteralNil) Span() Span { return l.At }

// LiteralNumber is a numeric literal already converted to float64.
type LiteralNumber struct {
	Value float64
	At    Span
}

func (l *LiteralNumber) Span() Span { return l.At }

// LiteralString is a string literal; Value is the verbatim body between the
// quotes (no escape processing — see spec Non-goals).
type LiteralString struct {
	Value string
	At    Span
}

func (l *LiteralString) Span() Span { return l.At }

// Statement is a top-level Lox statement. The concrete types below are its
// only implementations.
type Statement interface {
	Span() Span
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expression
}

func (s *ExpressionStmt) Span() Span { return s.Expr.Span() }

// PrintStmt evaluates an expression and writes its display form to the
// output sink.
type PrintStmt struct {
	Expr Expression
}

func (s *PrintStmt) Span() Span { return s.Expr.Span() }
