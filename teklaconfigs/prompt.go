package teklaconfigs

import (
	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/configs"
	"github.com/reusee/tekla/vars"
)

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) ConfigExpr() string {
	return "prompt"
}

const DefaultPrompt = ">>> "

var promptFlag = cmds.Var[string]("-prompt", "REPL prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return vars.FirstNonZero(
		Prompt(*promptFlag),
		configs.Lookup[Prompt](loader),
		DefaultPrompt,
	)
}
