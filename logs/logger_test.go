package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		logger.Warn("test", "hello", "world!")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "hello=world!") {
			t.Fatalf("got %v", out)
		}
		if !strings.Contains(out, "program=tekla") {
			t.Fatalf("got %v", out)
		}
	})
}

func TestHandlerWithAttrsKeepsSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("s1"))
		logger.With("component", "x").Log(ctx, slog.LevelError, "boom")
		if !strings.Contains(buf.String(), "logs.span=s1") {
			t.Fatalf("got %v", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}
