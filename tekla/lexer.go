package tekla

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

type Lexer struct {
	source   *bufio.Reader
	keywords keywordTable

	currPos Pos
	prevPos Pos

	// token read past a line boundary by ReadSequenceOfTokens
	pending *Token

	errors  []IllegalToken
	readErr error
}

func NewLexer(source io.Reader) *Lexer {
	return &Lexer{
		source:   bufio.NewReader(source),
		keywords: newKeywordTable(),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Lex scans src to the end and returns the tokens, terminated by TokenEOF, and the lexical errors.
func Lex(src string) ([]Token, []IllegalToken) {
	lexer := NewLexer(strings.NewReader(src))
	tokens := lexer.ReadUntilEOF()
	return tokens, lexer.Errors()
}

func (l *Lexer) readRune() (rune, bool) {
	r, _, err := l.source.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && l.readErr == nil {
			l.readErr = err
		}
		return 0, false
	}

	l.prevPos = l.currPos
	if r == '\n' {
		l.currPos.Line++
		l.currPos.Column = 1
	} else {
		l.currPos.Column++
	}

	return r, true
}

// unreadRune must follow a successful readRune.
func (l *Lexer) unreadRune() {
	if err := l.source.UnreadRune(); err != nil {
		panic(err)
	}
	l.currPos = l.prevPos
}

// match consumes the next rune if it is want.
func (l *Lexer) match(want rune) bool {
	r, ok := l.readRune()
	if !ok {
		return false
	}
	if r != want {
		l.unreadRune()
		return false
	}
	return true
}

// NextToken returns the next token. Past the end of input it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	if l.pending != nil {
		t := *l.pending
		l.pending = nil
		return t
	}

	for {
		startPos := l.currPos
		r, ok := l.readRune()
		if !ok {
			return Token{Kind: TokenEOF, Pos: startPos}
		}

		simple := func(kind TokenKind) Token {
			return Token{Kind: kind, Pos: startPos}
		}
		compound := func(next rune, single, double TokenKind) Token {
			if l.match(next) {
				return simple(double)
			}
			return simple(single)
		}

		switch r {
		case ' ', '\t', '\r', '\n':
			continue
		case '(':
			return simple(TokenLParen)
		case ')':
			return simple(TokenRParen)
		case '{':
			return simple(TokenLBrace)
		case '}':
			return simple(TokenRBrace)
		case ',':
			return simple(TokenComma)
		case ';':
			return simple(TokenSemicolon)
		case '<':
			return compound('=', TokenLess, TokenLessEqual)
		case '>':
			return compound('=', TokenGreater, TokenGreaterEqual)
		case '!':
			return compound('=', TokenBang, TokenNotEqual)
		case '=':
			return compound('=', TokenEqual, TokenEqualEqual)
		case '+':
			return compound('=', TokenPlus, TokenPlusEqual)
		case '-':
			return compound('=', TokenMinus, TokenMinusEqual)
		case '*':
			return compound('=', TokenStar, TokenStarEqual)
		case '&':
			return compound('&', TokenBitwiseAnd, TokenAnd)
		case '|':
			return compound('|', TokenBitwiseOr, TokenOr)
		case '/':
			if l.match('/') {
				l.skipComment()
				continue
			}
			return compound('=', TokenSlash, TokenSlashEqual)
		case '"':
			return l.scanString(startPos)
		}

		switch {
		case isAlpha(r):
			l.unreadRune()
			return l.scanIdentifier(startPos)
		case isDigit(r):
			l.unreadRune()
			return l.scanNumber(startPos)
		}

		return l.illegal("unknown token", string(r), startPos)
	}
}

func (l *Lexer) illegal(desc string, text string, pos Pos) Token {
	t := Token{
		Kind: TokenIllegal,
		Text: text,
		Pos:  pos,
	}
	l.errors = append(l.errors, IllegalToken{
		Token: t,
		Desc:  desc,
	})
	return t
}

func (l *Lexer) skipComment() {
	for {
		r, ok := l.readRune()
		if !ok || r == '\n' {
			return
		}
	}
}

func (l *Lexer) scanIdentifier(startPos Pos) Token {
	var sb strings.Builder
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !isAlpha(r) && !isDigit(r) && r != '_' {
			l.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	ident := sb.String()
	if kind, ok := l.keywords.lookup(ident); ok {
		return Token{Kind: kind, Pos: startPos}
	}
	return Token{
		Kind: TokenIdentifier,
		Text: ident,
		Pos:  startPos,
	}
}

// scanNumber consumes the whole lexeme, so that 12ab or 1.2.3 is reported once instead of split.
func (l *Lexer) scanNumber(startPos Pos) Token {
	var sb strings.Builder
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !isDigit(r) && !isAlpha(r) && r != '_' && r != '.' {
			l.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	if !isNumberLexeme(text) {
		return l.illegal("invalid number", text, startPos)
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.illegal("invalid number", text, startPos)
	}
	return Token{
		Kind:   TokenInteger,
		Text:   text,
		Number: n,
		Pos:    startPos,
	}
}

// isNumberLexeme accepts digits with at most one fractional part.
func isNumberLexeme(s string) bool {
	intPart, frac, hasDot := strings.Cut(s, ".")
	if !allDigits(intPart) {
		return false
	}
	if hasDot {
		return allDigits(frac)
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// strings never span lines
func (l *Lexer) scanString(startPos Pos) Token {
	var sb strings.Builder
	for {
		r, ok := l.readRune()
		if !ok {
			return l.illegal("unterminated string", `"`+sb.String(), startPos)
		}
		if r == '\n' {
			l.unreadRune()
			return l.illegal("unterminated string", `"`+sb.String(), startPos)
		}
		if r == '"' {
			break
		}
		sb.WriteRune(r)
	}
	return Token{
		Kind: TokenString,
		Text: sb.String(),
		Pos:  startPos,
	}
}

// ReadUntilEOF returns the remaining tokens including the terminating TokenEOF.
func (l *Lexer) ReadUntilEOF() []Token {
	var tokens []Token
	for {
		t := l.NextToken()
		tokens = append(tokens, t)
		if t.Kind == TokenEOF {
			return tokens
		}
	}
}

// ReadSequenceOfTokens returns the tokens of the next non-empty source line.
// The sequence is not terminated by TokenEOF.
func (l *Lexer) ReadSequenceOfTokens() []Token {
	var tokens []Token
	line := 0
	for {
		t := l.NextToken()
		if t.Kind == TokenEOF {
			return tokens
		}
		if line == 0 {
			line = t.Pos.Line
		} else if t.Pos.Line != line {
			l.pending = &t
			return tokens
		}
		tokens = append(tokens, t)
	}
}

func (l *Lexer) HadError() bool {
	return len(l.errors) > 0
}

func (l *Lexer) Errors() []IllegalToken {
	return l.errors
}

// Err returns the first non-EOF error of the underlying reader.
func (l *Lexer) Err() error {
	return l.readErr
}

func isAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
