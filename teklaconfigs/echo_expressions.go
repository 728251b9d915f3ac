package teklaconfigs

import (
	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/configs"
)

// EchoExpressions makes the REPL print the value of a line that is a single expression.
type EchoExpressions bool

var _ configs.Configurable = EchoExpressions(false)

func (EchoExpressions) ConfigExpr() string {
	return "echo_expressions"
}

var noEchoFlag = cmds.Switch("-no-echo", "do not print values of expression lines")

func (Module) EchoExpressions(
	loader configs.Loader,
) EchoExpressions {
	if *noEchoFlag {
		return false
	}
	if v := configs.First[*bool](loader, EchoExpressions(false).ConfigExpr()); v != nil {
		return EchoExpressions(*v)
	}
	return true
}
