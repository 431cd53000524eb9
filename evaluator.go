// evaluator.go — tree-walking evaluation of Statement/Expression trees.
//
// Evaluator holds nothing but the output sink: there is no variable
// environment in this core (see spec Non-goals — no scoping, no
// assignment), so evaluating the same side-effect-free expression twice
// always produces an equal Value. Evaluate runs statements strictly in
// order and stops at the first RuntimeError; statements after a failing one
// are never executed.
package lox

// Evaluator executes statements, writing `print` output to Sink.
type Evaluator struct {
	Sink func(line string)
}

// NewEvaluator returns an Evaluator that writes print output via sink.
func NewEvaluator(sink func(line string)) *Evaluator {
	return &Evaluator{Sink: sink}
}

// Evaluate runs statements in order against sink, stopping at the first
// RuntimeError.
func Evaluate(statements []Statement, sink func(line string)) error {
	ev := NewEvaluator(sink)
	for _, stmt := range statements {
		if err := ev.execStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execStatement(stmt Statement) *RuntimeError {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := ev.evalExpr(s.Expr)
		return err
	case *PrintStmt:
		v, err := ev.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		ev.Sink(Display(v))
		return nil
	default:
		return nil
	}
}

func (ev *Evaluator) evalExpr(expr Expression) (Value, *RuntimeError) {
	switch e := expr.(type) {
	case *LiteralBool:
		return VBool(e.Value), nil
	case *LiteralNil:
		return VNil, nil
	case *LiteralNumber:
		return VNumber(e.Value), nil
	case *LiteralString:
		return VString(e.Value), nil
	case *Grouping:
		return ev.evalExpr(e.Inner)
	case *Unary:
		return ev.evalUnary(e)
	case *Binary:
		return ev.evalBinary(e)
	default:
		panic("lox: unhandled expression type in evalExpr")
	}
}

func (ev *Evaluator) evalUnary(e *Unary) (Value, *RuntimeError) {
	v, err := ev.evalExpr(e.Inner)
	if err != nil {
		return Value{}, err
	}
	switch e.Operator.Kind {
	case Bang:
		return VBool(!Truthy(v)), nil
	case Minus:
		if v.Kind != KindNumber {
			return Value{}, &RuntimeError{Kind: WrongType, Expected: "number", Got: v, At: e.Span()}
		}
		return VNumber(-v.Number), nil
	default:
		panic("lox: unary operator other than '!' or '-'")
	}
}

func (ev *Evaluator) evalBinary(e *Binary) (Value, *RuntimeError) {
	left, err := ev.evalExpr(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := ev.evalExpr(e.Right)
	if err != nil {
		return Value{}, err
	}

	switch e.Operator.Kind {
	case Plus:
		return evalPlus(left, right, e.Span())
	case Minus:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VNumber(n1 - n2), nil
	case Star:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VNumber(n1 * n2), nil
	case Slash:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		if n2 == 0.0 {
			return Value{}, &RuntimeError{Kind: DivisionByZero, At: e.Span()}
		}
		return VNumber(n1 / n2), nil
	case Greater:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VBool(n1 > n2), nil
	case GreaterEqual:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VBool(n1 >= n2), nil
	case Less:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VBool(n1 < n2), nil
	case LessEqual:
		n1, n2, err := bothNumbers(left, right, e.Span())
		if err != nil {
			return Value{}, err
		}
		return VBool(n1 <= n2), nil
	case EqualEqual:
		return VBool(ValuesEqual(left, right)), nil
	case BangEqual:
		return VBool(!ValuesEqual(left, right)), nil
	default:
		panic("lox: unhandled binary operator")
	}
}

// evalPlus implements `+`'s dual number/string typing (spec §4.F "+ typing
// detail"): both numbers sum, both strings concatenate, and any mismatch
// reports WrongType against whichever operand isn't of the type the other
// one demands.
func evalPlus(left, right Value, at Span) (Value, *RuntimeError) {
	if left.Kind == KindNumber && right.Kind == KindNumber {
		return VNumber(left.Number + right.Number), nil
	}
	if left.Kind == KindString && right.Kind == KindString {
		return VString(left.Str + right.Str), nil
	}
	if left.Kind == KindNumber {
		return Value{}, &RuntimeError{Kind: WrongType, Expected: "number", Got: right, At: at}
	}
	if right.Kind == KindNumber {
		return Value{}, &RuntimeError{Kind: WrongType, Expected: "number", Got: left, At: at}
	}
	if left.Kind == KindString {
		return Value{}, &RuntimeError{Kind: WrongType, Expected: "string", Got: right, At: at}
	}
	if right.Kind == KindString {
		return Value{}, &RuntimeError{Kind: WrongType, Expected: "string", Got: left, At: at}
	}
	return Value{}, &RuntimeError{Kind: WrongType, Expected: "number or string", Got: left, At: at}
}

func bothNumbers(left, right Value, at Span) (float64, float64, *RuntimeError) {
	if left.Kind != KindNumber {
		return 0, 0, &RuntimeError{Kind: WrongType, Expected: "number", Got: left, At: at}
	}
	if right.Kind != KindNumber {
		return 0, 0, &RuntimeError{Kind: WrongType, Expected: "number", Got: right, At: at}
	}
	return left.Number, right.Number, nil
}
