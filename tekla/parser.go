package tekla

import (
	"errors"
	"fmt"
	"slices"
)

type ParseError struct {
	Msg   string
	Token Token
}

func (e *ParseError) Error() string {
	if e.Token.Kind == TokenEOF {
		return fmt.Sprintf("syntax error at end: %s", e.Msg)
	}
	return fmt.Sprintf("syntax error: %s at line %d on token %s", e.Msg, e.Token.Pos.Line, e.Token.Kind)
}

func (e *ParseError) Position() Pos {
	return e.Token.Pos
}

// Parser is a recursive descent parser, one method per grammar rule.
// A failing declaration is recorded and skipped, parsing resumes at the next statement boundary.
type Parser struct {
	tokens  []Token
	current int
	errors  []*ParseError
}

func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		var pos Pos
		if len(tokens) > 0 {
			pos = tokens[len(tokens)-1].Pos
		}
		tokens = append(slices.Clip(tokens), Token{
			Kind: TokenEOF,
			Pos:  pos,
		})
	}
	return &Parser{
		tokens: tokens,
	}
}

func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) HadErrors() bool {
	return len(p.errors) > 0
}

func (p *Parser) Errors() []*ParseError {
	return p.errors
}

func (p *Parser) declaration() Stmt {
	stmt, err := p.parseDeclaration()
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			parseErr = &ParseError{
				Msg:   err.Error(),
				Token: p.peek(),
			}
		}
		p.errors = append(p.errors, parseErr)
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) parseDeclaration() (Stmt, error) {
	if p.match(TokenLet) {
		return p.letDeclaration()
	}
	return p.statement()
}

func (p *Parser) letDeclaration() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "expected an identifier after 'let'")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenEqual) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "expected ';' after the variable declaration"); err != nil {
		return nil, err
	}
	return &LetStmt{
		Name:        name,
		Initializer: initializer,
	}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TokenPrint):
		return p.printStatement()
	case p.match(TokenLBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{
			Statements: stmts,
		}, nil
	case p.match(TokenIf):
		return p.ifStatement()
	case p.match(TokenWhile):
		return p.whileStatement()
	case p.match(TokenFor):
		return p.forStatement()
	case p.match(TokenBreak):
		keyword := p.previous()
		if _, err := p.consume(TokenSemicolon, "expected ';' after 'break'"); err != nil {
			return nil, err
		}
		return &BreakStmt{
			Keyword: keyword,
		}, nil
	case p.match(TokenContinue):
		keyword := p.previous()
		if _, err := p.consume(TokenSemicolon, "expected ';' after 'continue'"); err != nil {
			return nil, err
		}
		return &ContinueStmt{
			Keyword: keyword,
		}, nil
	case p.check(TokenFunction), p.check(TokenReturn):
		return nil, p.errorAt(p.peek(), "functions are not supported")
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (Stmt, error) {
	keyword := p.previous()
	if _, err := p.consume(TokenLParen, "expected '(' after 'print'"); err != nil {
		return nil, err
	}
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRParen, "expected ')' after print argument"); err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &PrintStmt{
		Keyword: keyword,
		Expr:    expr,
	}, nil
}

// block parses the declarations after an already consumed '{'.
func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(TokenRBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(TokenRBrace, "expected '}' at the end of the block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) bracedBlock(what string) (Stmt, error) {
	if _, err := p.consume(TokenLBrace, "expected '{' at the start of "+what); err != nil {
		return nil, err
	}
	stmts, err := p.block()
	if err != nil {
		return nil, err
	}
	return &BlockStmt{
		Statements: stmts,
	}, nil
}

func (p *Parser) parenthesizedCondition(what string) (Expr, error) {
	if _, err := p.consume(TokenLParen, "expected '(' after '"+what+"'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRParen, "expected ')' after '"+what+"' condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *Parser) ifStatement() (Stmt, error) {
	cond, err := p.parenthesizedCondition("if")
	if err != nil {
		return nil, err
	}

	thenBranch, err := p.bracedBlock("then clause")
	if err != nil {
		return nil, err
	}

	var elseBranch Stmt
	if p.match(TokenElse) {
		if p.match(TokenIf) {
			elseBranch, err = p.ifStatement()
		} else {
			elseBranch, err = p.bracedBlock("else clause")
		}
		if err != nil {
			return nil, err
		}
	}

	return &IfStmt{
		Condition: cond,
		Then:      thenBranch,
		Else:      elseBranch,
	}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	cond, err := p.parenthesizedCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{
		Condition: cond,
		Body:      body,
	}, nil
}

// forStatement desugars into { init; while (cond) body } with the increment kept on the loop.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(TokenLParen, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	switch {
	case p.match(TokenSemicolon):
	case p.match(TokenLet):
		init, err = p.letDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(TokenSemicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(TokenRParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenRParen, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if cond == nil {
		cond = &Literal{Value: true}
	}
	var loop Stmt = &WhileStmt{
		Condition: cond,
		Body:      body,
		Increment: increment,
	}
	if init != nil {
		loop = &BlockStmt{
			Statements: []Stmt{init, loop},
		}
	}
	return loop, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{
		Expr: expr,
	}, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

var compoundAssignOps = map[TokenKind]TokenKind{
	TokenPlusEqual:  TokenPlus,
	TokenMinusEqual: TokenMinus,
	TokenStarEqual:  TokenStar,
	TokenSlashEqual: TokenSlash,
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if !p.match(TokenEqual, TokenPlusEqual, TokenMinusEqual, TokenStarEqual, TokenSlashEqual) {
		return expr, nil
	}
	op := p.previous()

	// right associative
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	variable, ok := expr.(*Variable)
	if !ok {
		return nil, p.errorAt(op, "invalid assignment target")
	}

	if binOp, ok := compoundAssignOps[op.Kind]; ok {
		value = &Binary{
			Operator: Token{
				Kind: binOp,
				Pos:  op.Pos,
			},
			Left: &Variable{
				Name: variable.Name,
			},
			Right: value,
		}
	}

	return &Assign{
		Name:  variable.Name,
		Value: value,
	}, nil
}

func (p *Parser) logicOr() (Expr, error) {
	return p.logical(p.logicAnd, TokenOr)
}

func (p *Parser) logicAnd() (Expr, error) {
	return p.logical(p.equality, TokenAnd)
}

func (p *Parser) logical(next func() (Expr, error), kind TokenKind) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &Logical{
			Operator: op,
			Left:     expr,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	return p.binary(p.comparison, TokenNotEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

// binary parses a left associative level: next (op next)*
func (p *Parser) binary(next func() (Expr, error), kinds ...TokenKind) (Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Operator: op,
			Left:     expr,
			Right:    right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{
			Operator: op,
			Operand:  operand,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(TokenFalse):
		return &Literal{Value: false}, nil
	case p.match(TokenTrue):
		return &Literal{Value: true}, nil
	case p.match(TokenNil):
		return &Literal{Value: nil}, nil
	case p.match(TokenInteger):
		return &Literal{Value: p.previous().Number}, nil
	case p.match(TokenString):
		return &Literal{Value: p.previous().Text}, nil
	case p.match(TokenIdentifier):
		return &Variable{Name: p.previous()}, nil
	case p.match(TokenLParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &Grouping{Inner: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "expected an expression")
}

// synchronize discards tokens until the probable start of the next statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenFunction, TokenLet, TokenFor, TokenIf, TokenWhile, TokenReturn, TokenPrint:
			return
		}
		p.advance()
	}
}

func (p *Parser) consume(kind TokenKind, msg string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.errorAt(p.peek(), msg)
}

func (p *Parser) errorAt(token Token, msg string) error {
	return &ParseError{
		Msg:   msg,
		Token: token,
	}
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

// Parse lexes and parses src. Lexical errors are returned before parsing is attempted.
func Parse(src string) ([]Stmt, error) {
	tokens, illegals := Lex(src)
	if len(illegals) > 0 {
		errs := make([]error, 0, len(illegals))
		for _, illegal := range illegals {
			errs = append(errs, illegal)
		}
		return nil, errors.Join(errs...)
	}
	parser := NewParser(tokens)
	stmts := parser.Parse()
	if parser.HadErrors() {
		errs := make([]error, 0, len(parser.errors))
		for _, err := range parser.errors {
			errs = append(errs, err)
		}
		return nil, errors.Join(errs...)
	}
	return stmts, nil
}
