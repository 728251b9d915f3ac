package tekla

import (
	"fmt"
)

func (i *Interpreter) evaluate(expr Expr) (Value, error) {
	switch expr := expr.(type) {

	case *Literal:
		return expr.Value, nil

	case *Grouping:
		return i.evaluate(expr.Inner)

	case *Unary:
		return i.evalUnary(expr)

	case *Binary:
		return i.evalBinary(expr)

	case *Logical:
		left, err := i.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		switch expr.Operator.Kind {
		case TokenOr:
			if isTruthy(left) {
				return true, nil
			}
		case TokenAnd:
			if !isTruthy(left) {
				return false, nil
			}
		default:
			return nil, &RuntimeError{
				Msg:   fmt.Sprintf("unknown logical operator %s", expr.Operator.Kind),
				Token: expr.Operator,
			}
		}
		right, err := i.evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		return isTruthy(right), nil

	case *Variable:
		v, ok := i.env.Get(expr.Name.Text)
		if !ok {
			return nil, &RuntimeError{
				Msg:   fmt.Sprintf("undefined variable '%s'", expr.Name.Text),
				Token: expr.Name,
			}
		}
		return v, nil

	case *Assign:
		v, err := i.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if !i.env.Assign(expr.Name.Text, v) {
			return nil, &RuntimeError{
				Msg:   fmt.Sprintf("undefined variable '%s'", expr.Name.Text),
				Token: expr.Name,
			}
		}
		return v, nil

	}

	panic(fmt.Errorf("unknown expression type: %T", expr))
}

func (i *Interpreter) evalUnary(expr *Unary) (Value, error) {
	operand, err := i.evaluate(expr.Operand)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Kind {
	case TokenMinus:
		n, ok := operand.(float64)
		if !ok {
			return nil, &RuntimeError{
				Msg:   fmt.Sprintf("operand must be a number, got %s", typeName(operand)),
				Token: expr.Operator,
			}
		}
		return -n, nil
	case TokenBang:
		return !isTruthy(operand), nil
	}

	return nil, &RuntimeError{
		Msg:   fmt.Sprintf("unknown unary operator %s", expr.Operator.Kind),
		Token: expr.Operator,
	}
}

func (i *Interpreter) evalBinary(expr *Binary) (Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	op := expr.Operator

	switch op.Kind {

	case TokenEqualEqual:
		return isEqual(left, right), nil
	case TokenNotEqual:
		return !isEqual(left, right), nil

	case TokenPlus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, &RuntimeError{
			Msg:   "operands must be two numbers or two strings",
			Token: op,
		}

	}

	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	switch op.Kind {
	case TokenMinus:
		return l - r, nil
	case TokenStar:
		return l * r, nil
	case TokenSlash:
		return l / r, nil
	case TokenGreater:
		return l > r, nil
	case TokenGreaterEqual:
		return l >= r, nil
	case TokenLess:
		return l < r, nil
	case TokenLessEqual:
		return l <= r, nil
	}

	return nil, &RuntimeError{
		Msg:   fmt.Sprintf("unknown binary operator %s", op.Kind),
		Token: op,
	}
}

func numberOperands(op Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &RuntimeError{
			Msg:   fmt.Sprintf("operands must be numbers, got %s and %s", typeName(left), typeName(right)),
			Token: op,
		}
	}
	return l, r, nil
}
