// token.go — the closed set of lexical token kinds the scanner can produce.
//
// Token is a plain value: a Kind, the Span it occupies, and — for the three
// literal kinds (Identifier, String, Number) — the raw text that carries the
// payload. Number literals keep their raw lexeme here; the parser, not the
// scanner, is responsible for converting "123." into a float64.
package lox

// TokenKind is a closed sum of every lexical category the scanner emits.
type TokenKind int

const (
	Eof TokenKind = iota

	// Punctuation / fixed-width operators.
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals carrying a payload in Token.Text.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While
)

// keywords maps reserved identifiers to their keyword TokenKind. Any
// identifier not in this table scans as TokenKind Identifier.
var keywords = map[string]TokenKind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// fixedLexemes holds the canonical surface text for every token kind whose
// lexeme never varies with content — everything except Eof and the three
// literal kinds, whose text lives in Token.Text.
var fixedLexemes = map[TokenKind]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
}

// Token is one lexical unit: its kind, its span in the source, and — for
// Identifier/String/Number — the text of the literal.
type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

// Lexeme returns the canonical surface text of a token: the fixed
// operator/keyword spelling, the literal payload for Identifier/String/
// Number, or "" for Eof.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Eof:
		return ""
	case Identifier, String, Number:
		return t.Text
	default:
		return fixedLexemes[t.Kind]
	}
}

// String implements fmt.Stringer for readable diagnostics and test failures.
func (t Token) String() string {
	if t.Kind == Eof {
		return "Eof"
	}
	return t.Lexeme()
}
