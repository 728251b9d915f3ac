package teklaconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/configs"
	"github.com/reusee/tekla/logs"
	"github.com/reusee/tekla/modes"
)

//go:embed schema.cue
var schema string

var configFileFlag = cmds.Var[string]("-config", "read settings from this CUE file first")

var filenames = []string{
	"tekla.cue",
	".tekla.cue",
}

// ConfigPaths lists candidate config files, nearest first.
func ConfigPaths() (paths []string) {
	if workingDir, err := os.Getwd(); err == nil {
		for _, filename := range filenames {
			paths = append(paths, filepath.Join(workingDir, filename))
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		for _, filename := range filenames {
			paths = append(paths, filepath.Join(configDir, filename))
		}
	}
	for _, filename := range filenames {
		paths = append(paths, filepath.Join("/etc", filename))
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if *configFileFlag != "" {
		paths = append(paths, *configFileFlag)
	}

	if mode.LoadsConfigFiles() {
		for _, path := range ConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
