package tekla

import (
	"fmt"
	"strings"
)

// Sprint renders an expression in parenthesized prefix form, e.g. (Plus (Minus 123) (group 45.23)).
// Statements are rendered on one line each.
func Sprint(node any) string {
	var sb strings.Builder
	switch node := node.(type) {
	case Expr:
		printExpr(&sb, node)
	case Stmt:
		printStmt(&sb, node)
	case []Stmt:
		for idx, stmt := range node {
			if idx > 0 {
				sb.WriteString("\n")
			}
			printStmt(&sb, stmt)
		}
	default:
		panic(fmt.Errorf("cannot print %T", node))
	}
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case *Literal:
		sb.WriteString(FormatValue(expr.Value))
	case *Grouping:
		parenthesize(sb, "group", expr.Inner)
	case *Unary:
		parenthesize(sb, expr.Operator.Kind.String(), expr.Operand)
	case *Binary:
		parenthesize(sb, expr.Operator.Kind.String(), expr.Left, expr.Right)
	case *Logical:
		parenthesize(sb, expr.Operator.Kind.String(), expr.Left, expr.Right)
	case *Variable:
		parenthesize(sb, "Var "+expr.Name.Text)
	case *Assign:
		parenthesize(sb, "Equal", &Literal{Value: expr.Name.Text}, expr.Value)
	default:
		panic(fmt.Errorf("unknown expression type: %T", expr))
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteString(" ")
		printExpr(sb, expr)
	}
	sb.WriteString(")")
}

func printStmt(sb *strings.Builder, stmt Stmt) {
	switch stmt := stmt.(type) {
	case *ExpressionStmt:
		printExpr(sb, stmt.Expr)
		sb.WriteString(";")
	case *PrintStmt:
		sb.WriteString("print ")
		printExpr(sb, stmt.Expr)
		sb.WriteString(";")
	case *LetStmt:
		sb.WriteString("let ")
		sb.WriteString(stmt.Name.Text)
		if stmt.Initializer != nil {
			sb.WriteString(" = ")
			printExpr(sb, stmt.Initializer)
		}
		sb.WriteString(";")
	case *BlockStmt:
		sb.WriteString("{")
		for _, s := range stmt.Statements {
			sb.WriteString(" ")
			printStmt(sb, s)
		}
		sb.WriteString(" }")
	case *IfStmt:
		sb.WriteString("if ")
		printExpr(sb, stmt.Condition)
		sb.WriteString(" ")
		printStmt(sb, stmt.Then)
		if stmt.Else != nil {
			sb.WriteString(" else ")
			printStmt(sb, stmt.Else)
		}
	case *WhileStmt:
		sb.WriteString("while ")
		printExpr(sb, stmt.Condition)
		if stmt.Increment != nil {
			sb.WriteString(" step ")
			printExpr(sb, stmt.Increment)
		}
		sb.WriteString(" ")
		printStmt(sb, stmt.Body)
	case *BreakStmt:
		sb.WriteString("break;")
	case *ContinueStmt:
		sb.WriteString("continue;")
	default:
		panic(fmt.Errorf("unknown statement type: %T", stmt))
	}
}
