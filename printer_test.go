package lox

import "testing"

func Test_ExpressionToString_Binary(t *testing.T) {
	e := &Binary{
		Left:     &LiteralNumber{Value: 1},
		Operator: Token{Kind: Plus},
		Right:    &LiteralNumber{Value: 2},
	}
	if got := ExpressionToString(e); got != "(+ 1 2)" {
		t.Fatalf("got %q", got)
	}
}

func Test_ExpressionToString_Grouping(t *testing.T) {
	e := &Grouping{Inner: &LiteralNumber{Value: 5}}
	if got := ExpressionToString(e); got != "(group 5)" {
		t.Fatalf("got %q", got)
	}
}

func Test_ExpressionToString_Unary(t *testing.T) {
	e := &Unary{Operator: Token{Kind: Minus}, Inner: &LiteralNumber{Value: 3}}
	if got := ExpressionToString(e); got != "(- 3)" {
		t.Fatalf("got %q", got)
	}
}

func Test_ExpressionToString_Literals(t *testing.T) {
	cases := []struct {
		e    Expression
		want string
	}{
		{&LiteralBool{Value: true}, "true"},
		{&LiteralBool{Value: false}, "false"},
		{&LiteralNil{}, "nil"},
		{&LiteralString{Value: "hi"}, "hi"},
	}
	for _, c := range cases {
		if got := ExpressionToString(c.e); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func Test_ExpressionToString_Nesting(t *testing.T) {
	// -(1 + 2) * (4 - 3)
	e := &Binary{
		Left: &Unary{
			Operator: Token{Kind: Minus},
			Inner:    &Grouping{Inner: &Binary{Left: &LiteralNumber{Value: 1}, Operator: Token{Kind: Plus}, Right: &LiteralNumber{Value: 2}}},
		},
		Operator: Token{Kind: Star},
		Right:    &Grouping{Inner: &Binary{Left: &LiteralNumber{Value: 4}, Operator: Token{Kind: Minus}, Right: &LiteralNumber{Value: 3}}},
	}
	want := "(* (- (group (+ 1 2))) (group (- 4 3)))"
	if got := ExpressionToString(e); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func Test_ExpressionToString_NumberRoundTrip(t *testing.T) {
	e := &LiteralNumber{Value: 123.456}
	want := formatNumberLiteral(123.456)
	if got := ExpressionToString(e); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
