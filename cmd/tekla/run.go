package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/tekla/logs"
	"github.com/reusee/tekla/tekla"
)

// ErrFailed is returned after the diagnostics of a failed run have been reported.
var ErrFailed = errors.New("run failed")

// RunSource lexes, parses and interprets src, stopping at the first stage that reports errors.
// With echo, a source holding a single expression has its value printed.
type RunSource func(ctx context.Context, interp *tekla.Interpreter, src *tekla.Source, echo bool) error

func (Module) RunSource(
	output tekla.Output,
	mode DumpMode,
	report Report,
	logger logs.Logger,
	newSpan logs.NewSpan,
) RunSource {
	return func(ctx context.Context, interp *tekla.Interpreter, src *tekla.Source, echo bool) error {
		ctx, _ = newSpan(ctx, "run "+src.Name)

		lexer := tekla.NewLexer(strings.NewReader(src.Content))

		if mode == DumpTokens {
			for {
				seq := lexer.ReadSequenceOfTokens()
				if len(seq) == 0 {
					break
				}
				strs := make([]string, 0, len(seq))
				for _, token := range seq {
					strs = append(strs, token.String())
				}
				fmt.Fprintf(output, "%d: %s\n", seq[0].Pos.Line, strings.Join(strs, " "))
			}
			if lexer.HadError() {
				for _, illegal := range lexer.Errors() {
					report(src, illegal)
				}
				return ErrFailed
			}
			return lexer.Err()
		}

		tokens := lexer.ReadUntilEOF()
		if err := lexer.Err(); err != nil {
			return err
		}
		if lexer.HadError() {
			logger.InfoContext(ctx, "lexical errors", "count", len(lexer.Errors()))
			for _, illegal := range lexer.Errors() {
				report(src, illegal)
			}
			return ErrFailed
		}

		parser := tekla.NewParser(tokens)
		stmts := parser.Parse()
		if parser.HadErrors() {
			logger.InfoContext(ctx, "syntax errors", "count", len(parser.Errors()))
			for _, err := range parser.Errors() {
				report(src, err)
			}
			return ErrFailed
		}
		logger.DebugContext(ctx, "parsed",
			"tokens", len(tokens),
			"statements", len(stmts),
		)

		if mode == DumpAST {
			if len(stmts) > 0 {
				fmt.Fprintln(output, tekla.Sprint(stmts))
			}
			return nil
		}

		if expr, ok := tekla.SingleExpression(stmts); ok && echo {
			value, err := interp.Evaluate(expr)
			if err != nil {
				report(src, err)
				return ErrFailed
			}
			fmt.Fprintln(output, tekla.FormatValue(value))
			return nil
		}

		if err := interp.Interpret(stmts); err != nil {
			report(src, err)
			return ErrFailed
		}
		return nil
	}
}

type RunFile func(ctx context.Context, interp *tekla.Interpreter, path string) error

func (Module) RunFile(
	runSource RunSource,
	report Report,
	newSpan logs.NewSpan,
) RunFile {
	return func(ctx context.Context, interp *tekla.Interpreter, path string) error {
		ctx, _ = newSpan(ctx, "file")
		content, err := os.ReadFile(path)
		if err != nil {
			err = logs.WrapSpan(ctx, fmt.Errorf("read script: %w", err))
			report(nil, err)
			return err
		}
		return runSource(ctx, interp, tekla.NewSource(path, string(content)), false)
	}
}
