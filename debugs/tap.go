package debugs

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tekla/logs"
	"github.com/reusee/tekla/tekla"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin that inspects and drives interp.
type Tap func(ctx context.Context, what string, interp *tekla.Interpreter)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, interp *tekla.Interpreter) {
		globals := interp.Globals()
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, tapGlobals(interp))
	}
}

// tapGlobals holds the interpreter's global variables plus builtins:
//
//	run(src)       execute statements in interp
//	eval(src)      evaluate one expression in interp
//	set(name, v)   define a global
//	tokens(src)    lex src
//	ast(src)       parse src and render the tree
//	globals()      current global variables
//	reset()        drop every variable
func tapGlobals(interp *tekla.Interpreter) starlark.StringDict {
	dict := make(starlark.StringDict)
	for name, value := range interp.Globals() {
		dict[name] = toStarlarkValue(value)
	}

	dict["run"] = starlark.NewBuiltin("run", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src); err != nil {
			return nil, err
		}
		stmts, err := tekla.Parse(src)
		if err != nil {
			return nil, err
		}
		if err := interp.Interpret(stmts); err != nil {
			return nil, err
		}
		return starlark.None, nil
	})

	dict["eval"] = starlark.NewBuiltin("eval", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src); err != nil {
			return nil, err
		}
		src = strings.TrimSpace(src)
		if !strings.HasSuffix(src, ";") {
			src += ";"
		}
		stmts, err := tekla.Parse(src)
		if err != nil {
			return nil, err
		}
		expr, ok := tekla.SingleExpression(stmts)
		if !ok {
			return nil, errors.New("not a single expression")
		}
		value, err := interp.Evaluate(expr)
		if err != nil {
			return nil, err
		}
		return toStarlarkValue(value), nil
	})

	dict["set"] = starlark.NewBuiltin("set", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name string
		var value starlark.Value
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &value); err != nil {
			return nil, err
		}
		v, err := fromStarlarkValue(value)
		if err != nil {
			return nil, err
		}
		interp.Environment().Define(name, v)
		return starlark.None, nil
	})

	dict["tokens"] = starlark.NewBuiltin("tokens", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src); err != nil {
			return nil, err
		}
		tokens, illegals := tekla.Lex(src)
		if len(illegals) > 0 {
			return toStarlarkValue(illegals), nil
		}
		return toStarlarkValue(tokens), nil
	})

	dict["ast"] = starlark.NewBuiltin("ast", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "src", &src); err != nil {
			return nil, err
		}
		stmts, err := tekla.Parse(src)
		if err != nil {
			return nil, err
		}
		return starlark.String(tekla.Sprint(stmts)), nil
	})

	dict["globals"] = starlark.NewBuiltin("globals", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}
		globals := make(map[string]any)
		for name, value := range interp.Globals() {
			globals[name] = value
		}
		return toStarlarkValue(globals), nil
	})

	dict["reset"] = starlarkutil.MakeFunc("reset", func() {
		interp.Environment().Reset()
	})

	return dict
}
