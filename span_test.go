package lox

import "testing"

func Test_SingleLine_Width(t *testing.T) {
	cases := []struct {
		name     string
		line     int
		col      int
		width    int
		wantSpan Span
	}{
		{"paren", 1, 5, 1, Span{1, 1, 5, 5}},
		{"greaterEqual", 2, 3, 2, Span{2, 2, 3, 4}},
		{"while", 4, 1, 5, Span{4, 4, 1, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SingleLine(c.line, c.col, c.width)
			if got != c.wantSpan {
				t.Fatalf("SingleLine(%d,%d,%d) = %+v, want %+v", c.line, c.col, c.width, got, c.wantSpan)
			}
		})
	}
}

func Test_Merge_Idempotent(t *testing.T) {
	s := SingleLine(3, 4, 2)
	if got := Merge(s, s); got != s {
		t.Fatalf("Merge(s,s) = %+v, want %+v", got, s)
	}
}

func Test_Merge_Associative(t *testing.T) {
	a := SingleLine(1, 1, 1)
	b := SingleLine(2, 3, 1)
	c := SingleLine(1, 10, 2)

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	if left != right {
		t.Fatalf("merge not associative: %+v vs %+v", left, right)
	}
}

func Test_Merge_SpansMultipleLines(t *testing.T) {
	open := SinglePoint(1, 1)
	close := SinglePoint(2, 8)
	got := Merge(open, close)
	want := Span{LineStart: 1, LineEnd: 2, ColStart: 1, ColEnd: 8}
	if got != want {
		t.Fatalf("Merge(open,close) = %+v, want %+v", got, want)
	}
}

func Test_Span_IsSingleLine(t *testing.T) {
	if !SingleLine(1, 1, 1).IsSingleLine() {
		t.Fatalf("expected single-line span")
	}
	multi := Merge(SinglePoint(1, 1), SinglePoint(2, 1))
	if multi.IsSingleLine() {
		t.Fatalf("expected multi-line span")
	}
}

func Test_Span_String(t *testing.T) {
	cases := []struct {
		span Span
		want string
	}{
		{SinglePoint(6, 6), "6:6"},
		{SingleLine(1, 1, 2), "1:1-2"},
		{Span{LineStart: 1, LineEnd: 2, ColStart: 1, ColEnd: 8}, "1:1-2:8"},
	}
	for _, c := range cases {
		if got := c.span.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
