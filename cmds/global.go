package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(fn func(arg string) error) {
	GlobalExecutor.Fallback(fn)
}

// Execute runs args against the global executor and exits with usage on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
