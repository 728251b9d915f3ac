package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tekla/debugs"
	"github.com/reusee/tekla/tekla"
	"github.com/reusee/tekla/teklaconfigs"
)

type Module struct {
	dscope.Module
	Tekla   tekla.Module
	Configs teklaconfigs.Module
	Debugs  debugs.Module
}

// Diagnostics receives lexer, parser and runtime error reports.
type Diagnostics io.Writer

func (Module) Diagnostics() Diagnostics {
	return os.Stderr
}

type DumpMode uint8

const (
	DumpNone DumpMode = iota
	DumpTokens
	DumpAST
)

func (Module) DumpMode() DumpMode {
	switch {
	case *tokensFlag:
		return DumpTokens
	case *astFlag:
		return DumpAST
	}
	return DumpNone
}
