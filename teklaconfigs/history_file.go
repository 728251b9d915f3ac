package teklaconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/configs"
	"github.com/reusee/tekla/vars"
)

// HistoryFile is the readline history path. Empty means no history.
type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigExpr() string {
	return "history_file"
}

var (
	historyFileFlag = cmds.Var[string]("-history", "REPL history file")
	noHistoryFlag   = cmds.Switch("-no-history", "do not keep REPL history")
)

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if *noHistoryFlag {
		return ""
	}

	var defaultPath string
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = filepath.Join(home, ".tekla_history")
	}

	return vars.FirstNonZero(
		HistoryFile(*historyFileFlag),
		configs.Lookup[HistoryFile](loader),
		HistoryFile(defaultPath),
	)
}
