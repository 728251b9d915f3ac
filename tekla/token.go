package tekla

import "fmt"

type TokenKind uint8

const (
	TokenIllegal TokenKind = iota
	TokenEOF

	TokenLet
	TokenIdentifier
	TokenFunction
	TokenPrint

	TokenInteger
	TokenString
	TokenTrue
	TokenFalse

	TokenFor
	TokenIf
	TokenElse
	TokenWhile
	TokenReturn
	TokenBang

	TokenBreak
	TokenContinue

	TokenAnd
	TokenOr
	TokenBitwiseAnd
	TokenBitwiseOr

	TokenGreater
	TokenLess
	TokenEqual
	TokenPlus
	TokenMinus
	TokenSlash
	TokenStar
	TokenGreaterEqual
	TokenLessEqual
	TokenEqualEqual
	TokenStarEqual
	TokenPlusEqual
	TokenMinusEqual
	TokenSlashEqual
	TokenNotEqual
	TokenNil

	TokenComma
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	numTokenKinds
)

// kind names are part of the diagnostic and printer output and must not change
var tokenKindNames = [numTokenKinds]string{
	TokenIllegal:      "Illegal",
	TokenEOF:          "EOF",
	TokenLet:          "Let",
	TokenIdentifier:   "Identifier",
	TokenFunction:     "Function",
	TokenPrint:        "Print",
	TokenInteger:      "Integer",
	TokenString:       "String",
	TokenTrue:         "True",
	TokenFalse:        "False",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenElse:         "Else",
	TokenWhile:        "While",
	TokenReturn:       "Return",
	TokenBang:         "Bang",
	TokenBreak:        "Break",
	TokenContinue:     "Continue",
	TokenAnd:          "And",
	TokenOr:           "Or",
	TokenBitwiseAnd:   "BitwiseAnd",
	TokenBitwiseOr:    "BitwiseOr",
	TokenGreater:      "Greater",
	TokenLess:         "Less",
	TokenEqual:        "Equal",
	TokenPlus:         "Plus",
	TokenMinus:        "Minus",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenGreaterEqual: "Greater_Equal",
	TokenLessEqual:    "Less_Equal",
	TokenEqualEqual:   "Equal_Equal",
	TokenStarEqual:    "Star_Equal",
	TokenPlusEqual:    "Plus_Equal",
	TokenMinusEqual:   "Minus_Equal",
	TokenSlashEqual:   "Slash_Equal",
	TokenNotEqual:     "Not_Equal",
	TokenNil:          "Nil",
	TokenComma:        "Comma",
	TokenSemicolon:    "Semicolon",
	TokenLParen:       "LParen",
	TokenRParen:       "RParen",
	TokenLBrace:       "LBrace",
	TokenRBrace:       "RBrace",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// HasValue reports whether tokens of this kind carry a payload.
func (k TokenKind) HasValue() bool {
	switch k {
	case TokenIdentifier, TokenString, TokenInteger:
		return true
	}
	return false
}

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Kind TokenKind
	// identifier name, string contents, number lexeme or the raw text of an illegal token
	Text   string
	Number float64
	Pos    Pos
}

func (t Token) KindEqual(other Token) bool {
	return t.Kind == other.Kind
}

func (t Token) ValueEqual(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenIdentifier, TokenString:
		return t.Text == other.Text
	case TokenInteger:
		return t.Number == other.Number
	}
	return true
}

func (t Token) String() string {
	if t.Kind.HasValue() || t.Kind == TokenIllegal {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// IllegalToken is a lexical diagnostic. The lexer emits a token of kind
// TokenIllegal in the stream and keeps the described form in its error list.
type IllegalToken struct {
	Token
	Desc string
}

func (i IllegalToken) Error() string {
	return fmt.Sprintf("illegal token: %s '%s' in line %d", i.Desc, i.Text, i.Pos.Line)
}

func (i IllegalToken) Position() Pos {
	return i.Pos
}
