package teklaconfigs

import (
	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/configs"
	"github.com/reusee/tekla/vars"
)

// Color enables ANSI colors in diagnostics.
type Color bool

var _ configs.Configurable = Color(false)

func (Color) ConfigExpr() string {
	return "color"
}

var colorFlag = cmds.Switch("-color", "color diagnostics")

func (Module) Color(
	loader configs.Loader,
) Color {
	return Color(*colorFlag || vars.DerefOrZero(
		configs.First[*bool](loader, Color(false).ConfigExpr()),
	))
}
