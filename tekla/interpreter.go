package tekla

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type RuntimeError struct {
	Msg   string
	Token Token
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s on line %d", e.Msg, e.Token.Pos.Line)
}

func (e *RuntimeError) Position() Pos {
	return e.Token.Pos
}

type Interpreter struct {
	env    *Environment
	out    io.Writer
	logger *slog.Logger
	errors []*RuntimeError
}

type Option func(*Interpreter)

func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		env:    NewEnvironment(),
		out:    os.Stdout,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret executes stmts in order and stops at the first runtime error.
// The global scope survives between calls, so one interpreter serves a whole REPL session.
func (i *Interpreter) Interpret(stmts []Stmt) error {
	i.errors = nil
	i.logger.Debug("interpret", "statements", len(stmts))

	for _, stmt := range stmts {
		completion, err := i.execute(stmt)
		if err != nil {
			return i.fail(err)
		}
		switch completion.Signal {
		case SignalBreak:
			return i.fail(&RuntimeError{
				Msg:   "break outside of a loop",
				Token: completion.Token,
			})
		case SignalContinue:
			return i.fail(&RuntimeError{
				Msg:   "continue outside of a loop",
				Token: completion.Token,
			})
		}
	}

	return nil
}

// Evaluate evaluates a single expression in the global scope, recording errors like Interpret.
func (i *Interpreter) Evaluate(expr Expr) (Value, error) {
	i.errors = nil
	v, err := i.evaluate(expr)
	if err != nil {
		return nil, i.fail(err)
	}
	return v, nil
}

func (i *Interpreter) fail(err error) error {
	var runtimeErr *RuntimeError
	if !errors.As(err, &runtimeErr) {
		runtimeErr = &RuntimeError{
			Msg: err.Error(),
		}
	}
	i.errors = append(i.errors, runtimeErr)
	i.logger.Debug("runtime error",
		"error", runtimeErr.Msg,
		"line", runtimeErr.Token.Pos.Line,
	)
	return runtimeErr
}

func (i *Interpreter) HadError() bool {
	return len(i.errors) > 0
}

// Errors returns the runtime errors of the last run.
func (i *Interpreter) Errors() []*RuntimeError {
	return i.errors
}

func (i *Interpreter) Globals() map[string]Value {
	return i.env.Globals()
}

func (i *Interpreter) Environment() *Environment {
	return i.env
}
