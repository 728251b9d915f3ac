package tekla

type keywordTable map[string]TokenKind

func newKeywordTable() keywordTable {
	return keywordTable{
		"let":      TokenLet,
		"if":       TokenIf,
		"else":     TokenElse,
		"for":      TokenFor,
		"func":     TokenFunction,
		"while":    TokenWhile,
		"return":   TokenReturn,
		"true":     TokenTrue,
		"false":    TokenFalse,
		"print":    TokenPrint,
		"break":    TokenBreak,
		"continue": TokenContinue,
		"nil":      TokenNil,
		"and":      TokenAnd,
	}
}

func (k keywordTable) lookup(ident string) (TokenKind, bool) {
	kind, ok := k[ident]
	return kind, ok
}
