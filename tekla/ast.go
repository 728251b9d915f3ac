package tekla

// Expr is one of *Literal, *Grouping, *Unary, *Binary, *Logical, *Variable, *Assign.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value Value
}

type Grouping struct {
	Inner Expr
}

type Unary struct {
	Operator Token
	Operand  Expr
}

type Binary struct {
	Operator Token
	Left     Expr
	Right    Expr
}

// Logical is a short-circuiting && or ||.
type Logical struct {
	Operator Token
	Left     Expr
	Right    Expr
}

type Variable struct {
	Name Token
}

type Assign struct {
	Name  Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

// Stmt is one of *ExpressionStmt, *PrintStmt, *LetStmt, *BlockStmt, *IfStmt, *WhileStmt, *BreakStmt, *ContinueStmt.
type Stmt interface {
	stmtNode()
}

type ExpressionStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Keyword Token
	Expr    Expr
}

type LetStmt struct {
	Name        Token
	Initializer Expr // nil declares the name as nil
}

type BlockStmt struct {
	Statements []Stmt
}

type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // may be nil
}

type WhileStmt struct {
	Condition Expr
	Body      Stmt
	// Increment is set for loops desugared from for. It runs after every
	// iteration that completes normally or by continue.
	Increment Expr
}

type BreakStmt struct {
	Keyword Token
}

type ContinueStmt struct {
	Keyword Token
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*LetStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}

// SingleExpression reports whether stmts is exactly one bare expression statement.
func SingleExpression(stmts []Stmt) (Expr, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	stmt, ok := stmts[0].(*ExpressionStmt)
	if !ok {
		return nil, false
	}
	return stmt.Expr, true
}
