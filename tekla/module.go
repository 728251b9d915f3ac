package tekla

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tekla/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output receives the text of print statements.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type MakeInterpreter func() *Interpreter

func (Module) MakeInterpreter(
	output Output,
	logger logs.Logger,
) MakeInterpreter {
	return func() *Interpreter {
		return NewInterpreter(
			WithOutput(output),
			WithLogger(logger.With("component", "interpreter")),
		)
	}
}
