package tekla

import (
	"fmt"
)

// Signal is a pending non-local transfer out of a statement.
type Signal uint8

const (
	SignalNone Signal = iota
	SignalBreak
	SignalContinue
)

func (s Signal) String() string {
	switch s {
	case SignalBreak:
		return "break"
	case SignalContinue:
		return "continue"
	}
	return "none"
}

// Completion is the outcome of a statement that did not fail.
// Only loops consume break and continue, every other statement forwards them.
type Completion struct {
	Signal Signal
	Token  Token
}

func (i *Interpreter) execute(stmt Stmt) (Completion, error) {
	switch stmt := stmt.(type) {

	case *ExpressionStmt:
		_, err := i.evaluate(stmt.Expr)
		return Completion{}, err

	case *PrintStmt:
		v, err := i.evaluate(stmt.Expr)
		if err != nil {
			return Completion{}, err
		}
		if _, err := fmt.Fprintln(i.out, FormatValue(v)); err != nil {
			return Completion{}, &RuntimeError{
				Msg:   fmt.Sprintf("write output: %v", err),
				Token: stmt.Keyword,
			}
		}
		return Completion{}, nil

	case *LetStmt:
		var v Value
		if stmt.Initializer != nil {
			var err error
			v, err = i.evaluate(stmt.Initializer)
			if err != nil {
				return Completion{}, err
			}
		}
		i.env.Define(stmt.Name.Text, v)
		return Completion{}, nil

	case *BlockStmt:
		return i.executeBlock(stmt.Statements)

	case *IfStmt:
		cond, err := i.evaluate(stmt.Condition)
		if err != nil {
			return Completion{}, err
		}
		if isTruthy(cond) {
			return i.execute(stmt.Then)
		}
		if stmt.Else != nil {
			return i.execute(stmt.Else)
		}
		return Completion{}, nil

	case *WhileStmt:
		return i.executeWhile(stmt)

	case *BreakStmt:
		return Completion{
			Signal: SignalBreak,
			Token:  stmt.Keyword,
		}, nil

	case *ContinueStmt:
		return Completion{
			Signal: SignalContinue,
			Token:  stmt.Keyword,
		}, nil

	}

	panic(fmt.Errorf("unknown statement type: %T", stmt))
}

func (i *Interpreter) executeBlock(stmts []Stmt) (Completion, error) {
	id := i.env.Push()
	defer i.env.Pop(id)

	for _, stmt := range stmts {
		completion, err := i.execute(stmt)
		if err != nil || completion.Signal != SignalNone {
			return completion, err
		}
	}
	return Completion{}, nil
}

func (i *Interpreter) executeWhile(stmt *WhileStmt) (Completion, error) {
	for {
		cond, err := i.evaluate(stmt.Condition)
		if err != nil {
			return Completion{}, err
		}
		if !isTruthy(cond) {
			return Completion{}, nil
		}

		completion, err := i.execute(stmt.Body)
		if err != nil {
			return Completion{}, err
		}
		if completion.Signal == SignalBreak {
			return Completion{}, nil
		}

		if stmt.Increment != nil {
			if _, err := i.evaluate(stmt.Increment); err != nil {
				return Completion{}, err
			}
		}
	}
}
