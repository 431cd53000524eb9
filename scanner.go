// scanner.go — converts Lox source text into a token stream.
//
// WHAT THIS MODULE DOES
// ======================
// Scanner walks the source one grapheme at a time, tracking (line, column)
// as it goes, and turns the text into a sequence of Token values ending
// with Eof. It never aborts: an unrecognized character or an unterminated
// string becomes a ScannerError appended to the diagnostics returned by
// ScanAll, and scanning resumes at the next position.
//
// Lexical classification (digits, letters, operators) is ASCII-only, as the
// Lox grammar requires. Source text is walked as a sequence of extended
// grapheme clusters only so that a "\r\n" pair counts as a single line
// terminator and does not corrupt span/column accounting; true Unicode
// grapheme segmentation (e.g. combining marks) is out of scope here — the
// corpus carries no third-party grapheme-cluster library, so this treats
// each decoded rune outside of "\r\n" as one cluster, the same
// approximation the book's own reference scanner makes in ASCII.
//
// Maximal munch is enforced by ordering: two-character operators (==, !=,
// <=, >=) are always tested before their one-character prefixes.
package lox

import "unicode/utf8"

// Scanner turns source text into tokens on demand. Zero value is not usable;
// construct with NewScanner.
type Scanner struct {
	src  string
	pos  int // byte offset of the next unconsumed byte
	line int // 1-based
	col  int // 1-based
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1, col: 1}
}

// ScanAll consumes the entire source and returns every token (always ending
// with one Eof token) together with every diagnostic encountered along the
// way. Diagnostics do not stop scanning.
func ScanAll(src string) ([]Token, []*ScannerError) {
	s := NewScanner(src)
	var tokens []Token
	var diags []*ScannerError
	for {
		tok, err := s.next()
		if err != nil {
			diags = append(diags, err)
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == Eof {
			return tokens, diags
		}
	}
}

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

// next skips whitespace/comments/newlines and returns the following real
// token, or a diagnostic for the grapheme(s) it could not classify.
func (s *Scanner) next() (Token, *ScannerError) {
	for {
		if s.atEnd() {
			return Token{Kind: Eof, Span: SinglePoint(s.line, s.col)}, nil
		}

		if s.consumeNewline() {
			continue
		}

		b := s.src[s.pos]

		switch b {
		case ' ', '\t', '\r':
			s.pos++
			s.col++
			continue
		}

		if b == '/' && s.peekByte(1) == '/' {
			s.skipLineComment()
			continue
		}

		return s.scanToken()
	}
}

// consumeNewline consumes a "\r\n" or "\n" line terminator if the scanner is
// positioned at one, advancing to column 1 of the next line, and reports
// whether it did.
func (s *Scanner) consumeNewline() bool {
	if s.pos >= len(s.src) {
		return false
	}
	if s.src[s.pos] == '\n' {
		s.pos++
		s.line++
		s.col = 1
		return true
	}
	if s.src[s.pos] == '\r' && s.peekByte(1) == '\n' {
		s.pos += 2
		s.line++
		s.col = 1
		return true
	}
	return false
}

func (s *Scanner) skipLineComment() {
	s.pos += 2 // "//"
	s.col += 2
	for !s.atEnd() {
		if s.src[s.pos] == '\n' || (s.src[s.pos] == '\r' && s.peekByte(1) == '\n') {
			s.consumeNewline()
			return
		}
		_, width := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += width
		s.col++
	}
}

func (s *Scanner) peekByte(offset int) byte {
	idx := s.pos + offset
	if idx >= len(s.src) {
		return 0
	}
	return s.src[idx]
}

// scanToken scans exactly one non-trivial token starting at the scanner's
// current position (which is not whitespace, a comment, or a newline).
func (s *Scanner) scanToken() (Token, *ScannerError) {
	startLine, startCol := s.line, s.col
	b := s.src[s.pos]

	two := func(kind TokenKind) Token {
		tok := Token{Kind: kind, Span: SingleLine(startLine, startCol, 2)}
		s.pos += 2
		s.col += 2
		return tok
	}
	one := func(kind TokenKind) Token {
		tok := Token{Kind: kind, Span: SingleLine(startLine, startCol, 1)}
		s.pos++
		s.col++
		return tok
	}

	switch b {
	case '(':
		return one(LeftParen), nil
	case ')':
		return one(RightParen), nil
	case '{':
		return one(LeftBrace), nil
	case '}':
		return one(RightBrace), nil
	case ',':
		return one(Comma), nil
	case '.':
		return one(Dot), nil
	case '-':
		return one(Minus), nil
	case '+':
		return one(Plus), nil
	case ';':
		return one(Semicolon), nil
	case '*':
		return one(Star), nil
	case '/':
		return one(Slash), nil
	case '!':
		if s.peekByte(1) == '=' {
			return two(BangEqual), nil
		}
		return one(Bang), nil
	case '=':
		if s.peekByte(1) == '=' {
			return two(EqualEqual), nil
		}
		return one(Equal), nil
	case '<':
		if s.peekByte(1) == '=' {
			return two(LessEqual), nil
		}
		return one(Less), nil
	case '>':
		if s.peekByte(1) == '=' {
			return two(GreaterEqual), nil
		}
		return one(Greater), nil
	case '"':
		return s.scanString(startLine, startCol)
	}

	if isDigit(b) {
		return s.scanNumber(startLine, startCol), nil
	}
	if isAlpha(b) {
		return s.scanIdentifier(startLine, startCol), nil
	}

	r, width := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += width
	s.col++
	return Token{}, &ScannerError{
		Kind:     UnexpectedCharacter,
		Grapheme: string(r),
		At:       SingleLine(startLine, startCol, 1),
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNumeric(b byte) bool { return isAlpha(b) || isDigit(b) }

// scanNumber implements the grammar `digits ("." digits?)?`: a dot is
// absorbed only as the first dot seen, and a trailing dot with no following
// digits (e.g. "123.") is accepted.
func (s *Scanner) scanNumber(startLine, startCol int) Token {
	start := s.pos
	for !s.atEnd() && isDigit(s.src[s.pos]) {
		s.pos++
		s.col++
	}
	if !s.atEnd() && s.src[s.pos] == '.' {
		s.pos++
		s.col++
		for !s.atEnd() && isDigit(s.src[s.pos]) {
			s.pos++
			s.col++
		}
	}
	text := s.src[start:s.pos]
	return Token{Kind: Number, Text: text, Span: SingleLine(startLine, startCol, len([]rune(text)))}
}

func (s *Scanner) scanIdentifier(startLine, startCol int) Token {
	start := s.pos
	for !s.atEnd() && isAlphaNumeric(s.src[s.pos]) {
		s.pos++
		s.col++
	}
	text := s.src[start:s.pos]
	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Span: SingleLine(startLine, startCol, len([]rune(text)))}
	}
	return Token{Kind: Identifier, Text: text, Span: SingleLine(startLine, startCol, len([]rune(text)))}
}

// scanString consumes the body of a string literal, allowing raw embedded
// newlines (which advance the line counter and reset the column to 1).
// No escape processing is performed: a '"' always terminates the literal.
func (s *Scanner) scanString(startLine, startCol int) (Token, *ScannerError) {
	s.pos++ // opening quote
	s.col++
	bodyStart := s.pos

	for {
		if s.atEnd() {
			return Token{}, &ScannerError{
				Kind: UnterminatedString,
				At:   SingleLine(startLine, startCol, 1),
			}
		}
		if s.src[s.pos] == '"' {
			body := s.src[bodyStart:s.pos]
			endLine, endCol := s.line, s.col
			s.pos++ // closing quote
			s.col++
			return Token{
				Kind: String,
				Text: body,
				Span: Span{LineStart: startLine, LineEnd: endLine, ColStart: startCol, ColEnd: endCol},
			}, nil
		}
		if s.consumeNewline() {
			continue
		}
		r, width := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += width
		_ = r
		s.col++
	}
}
