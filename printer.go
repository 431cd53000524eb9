// printer.go — S-expression-like pretty printer for Expression trees.
//
// ExpressionToString renders a Binary as "(operator left right)", a
// Grouping as "(group inner)", a Unary as "(operator inner)", and a
// literal as its own display form — the same parenthesized prefix style
// the book's reference AST printer uses, useful both for tests asserting
// tree shape and for the REPL's `:ast` introspection command.
package lox

import (
	"strconv"
	"strings"
)

// ExpressionToString renders e as a fully-parenthesized S-expression.
func ExpressionToString(e Expression) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expression) {
	switch n := e.(type) {
	case *Binary:
		parenthesize(b, n.Operator.Lexeme(), n.Left, n.Right)
	case *Grouping:
		parenthesize(b, "group", n.Inner)
	case *Unary:
		parenthesize(b, n.Operator.Lexeme(), n.Inner)
	case *LiteralBool:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *LiteralNil:
		b.WriteString("nil")
	case *LiteralNumber:
		b.WriteString(formatNumberLiteral(n.Value))
	case *LiteralString:
		b.WriteString(n.Value)
	default:
		b.WriteString("<?>")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expression) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}

// formatNumberLiteral renders a float64 the way Go's default float
// formatting would (the "host's double-to-string"), used so that
// ExpressionToString round-trips a Number literal's numeric text.
func formatNumberLiteral(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
