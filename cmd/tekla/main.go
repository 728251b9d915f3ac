package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tekla/cmds"
	"github.com/reusee/tekla/debugs"
	"github.com/reusee/tekla/logs"
	"github.com/reusee/tekla/modes"
	"github.com/reusee/tekla/tekla"
)

var (
	fileFlag   = cmds.Var[string]("-file", "run a script file")
	tokensFlag = cmds.Switch("-tokens", "print tokens, one source line per output line, instead of running")
	astFlag    = cmds.Switch("-ast", "print the syntax tree instead of running")
	tapFlag    = cmds.Switch("-tap", "open a starlark tap on the interpreter after running")
)

var scripts []string

func init() {
	cmds.Fallback(func(arg string) error {
		scripts = append(scripts, arg)
		return nil
	})
}

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag != "" {
		scripts = append([]string{*fileFlag}, scripts...)
	}

	exitCode := 0
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		ctx context.Context,
		logger logs.Logger,
		makeInterpreter tekla.MakeInterpreter,
		runFile RunFile,
		repl REPL,
		tap debugs.Tap,
	) {
		interp := makeInterpreter()

		if len(scripts) == 0 {
			if err := repl(ctx, interp); err != nil {
				logger.Error("repl", "error", err)
				exitCode = 1
			}
		}

		for _, path := range scripts {
			if err := runFile(ctx, interp, path); err != nil {
				exitCode = 1
				break
			}
		}

		if *tapFlag {
			tap(ctx, "after run", interp)
		}
	})

	os.Exit(exitCode)
}
