package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/tekla/logs"
	"github.com/reusee/tekla/tekla"
	"github.com/reusee/tekla/teklaconfigs"
)

const continuationPrompt = "... "

// LineReader is implemented by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type REPL func(ctx context.Context, interp *tekla.Interpreter) error

func (Module) REPL(
	prompt teklaconfigs.Prompt,
	historyFile teklaconfigs.HistoryFile,
	serveLines ServeLines,
) REPL {
	return func(ctx context.Context, interp *tekla.Interpreter) error {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}
		defer rl.Close()
		return serveLines(ctx, interp, rl)
	}
}

// ServeLines runs input line by line until EOF or "exit".
// Input with unclosed braces or parentheses is continued on the next line.
type ServeLines func(ctx context.Context, interp *tekla.Interpreter, lines LineReader) error

func (Module) ServeLines(
	prompt teklaconfigs.Prompt,
	echo teklaconfigs.EchoExpressions,
	runSource RunSource,
	newSpan logs.NewSpan,
	logger logs.Logger,
) ServeLines {
	return func(ctx context.Context, interp *tekla.Interpreter, lines LineReader) error {
		ctx, _ = newSpan(ctx, "repl")

		var buf strings.Builder
		num := 0
		reset := func() {
			buf.Reset()
			lines.SetPrompt(string(prompt))
		}

		for {
			line, err := lines.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				reset()
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}

			if buf.Len() == 0 {
				switch strings.TrimSpace(line) {
				case "":
					continue
				case "exit":
					return nil
				}
			}
			buf.WriteString(line)
			buf.WriteString("\n")

			content := buf.String()
			if unclosed(content) {
				lines.SetPrompt(continuationPrompt)
				continue
			}
			reset()

			if echo {
				content = terminate(content)
			}
			num++
			src := tekla.NewSource(fmt.Sprintf("<repl:%d>", num), content)
			lineCtx, _ := newSpan(ctx, "line")
			if err := runSource(lineCtx, interp, src, bool(echo)); err != nil && !errors.Is(err, ErrFailed) {
				return err
			}
			logger.DebugContext(lineCtx, "line done", "globals", len(interp.Globals()))
		}
	}
}

// unclosed reports whether src opens more braces or parentheses than it closes.
// Sources with lexical errors are never unclosed, so they are reported at once.
func unclosed(src string) bool {
	tokens, illegals := tekla.Lex(src)
	if len(illegals) > 0 {
		return false
	}
	depth := 0
	for _, token := range tokens {
		switch token.Kind {
		case tekla.TokenLBrace, tekla.TokenLParen:
			depth++
		case tekla.TokenRBrace, tekla.TokenRParen:
			depth--
		}
	}
	return depth > 0
}

// terminate appends the ';' that a bare expression typed at the prompt usually lacks.
func terminate(src string) string {
	trimmed := strings.TrimRight(src, " \t\r\n")
	if trimmed == "" || strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}") {
		return src
	}
	return trimmed + ";\n"
}
